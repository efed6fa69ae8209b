// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"superprecios/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler      *handler.ProductHandler
	SpecialPriceHandler *handler.SpecialPriceHandler
	HealthHandler       *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler      *handler.ProductHandler
	specialPriceHandler *handler.SpecialPriceHandler
	healthHandler       *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:      params.ProductHandler,
		specialPriceHandler: params.SpecialPriceHandler,
		healthHandler:       params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)
		api.GET("/productos", r.productHandler.ListProducts)

		specialPrices := api.Group("/precios-especiales")
		{
			specialPrices.GET("", r.specialPriceHandler.ListSpecialPrices)
			specialPrices.POST("", r.specialPriceHandler.SubmitSpecialPrice)
			specialPrices.GET("/check", r.specialPriceHandler.CheckSpecialPrice)
			specialPrices.DELETE("/:id", r.specialPriceHandler.DeleteSpecialPrice)
		}
	}
}
