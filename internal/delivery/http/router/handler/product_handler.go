// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"superprecios/internal/delivery/http/response"
	"superprecios/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog-facing handlers.
type ProductHandler struct {
	uc     usecase.PricingUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.PricingUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts returns the catalog with per-user pricing applied. The
// idUsuario query parameter is optional; without it the plain catalog view
// is returned.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	userID := c.QueryParam("idUsuario")

	products, err := h.uc.ListResolvedProducts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Productos obtenidos correctamente")
}
