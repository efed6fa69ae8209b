package handler

import (
	"net/http"

	"superprecios/internal/delivery/http/response"
	"superprecios/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the service readiness endpoint.
type HealthHandler struct {
	uc usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(uc usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

// healthResponse is the body of the health endpoint. Readiness travels in the
// body rather than the status code: the endpoint answers 200 as long as the
// process is up, and the storage flag tells clients whether writes will work.
type healthResponse struct {
	Status       string `json:"status"`
	StorageReady bool   `json:"storage_ready"`
}

// HealthCheck reports process liveness and backing store readiness.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ready := h.uc.StorageReady(c.Request().Context())

	body := healthResponse{
		Status:       "ok",
		StorageReady: ready,
	}
	if !ready {
		body.Status = "degraded"
	}

	return response.Success(c, http.StatusOK, body, "Health check")
}
