package handler

import (
	"log/slog"
	"net/http"

	"superprecios/internal/delivery/http/response"
	"superprecios/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SpecialPriceHandler holds dependencies for special price handlers.
type SpecialPriceHandler struct {
	pricingUC      usecase.PricingUsecase
	specialPriceUC usecase.SpecialPriceUsecase
	logger         *slog.Logger
}

// NewSpecialPriceHandler is the constructor for SpecialPriceHandler, injected by Fx.
func NewSpecialPriceHandler(pricingUC usecase.PricingUsecase, specialPriceUC usecase.SpecialPriceUsecase, logger *slog.Logger) *SpecialPriceHandler {
	return &SpecialPriceHandler{
		pricingUC:      pricingUC,
		specialPriceUC: specialPriceUC,
		logger:         logger,
	}
}

// submitSpecialPriceRequest is the wire form of a submission. The price is a
// pointer so an omitted field is distinguishable from an explicit zero, which
// is a valid price.
type submitSpecialPriceRequest struct {
	UserID    string   `json:"idUsuario" validate:"required"`
	ProductID string   `json:"idProducto" validate:"required"`
	Price     *float64 `json:"precioEspecial" validate:"required"`
	Note      string   `json:"notas"`
}

// checkSpecialPriceResponse is the body of the existence check endpoint.
type checkSpecialPriceResponse struct {
	HasSpecialPrice bool `json:"has_special_price"`
	Record          any  `json:"record,omitempty"`
}

// deleteSpecialPriceResponse is the body of the delete endpoint.
type deleteSpecialPriceResponse struct {
	Deleted bool `json:"deleted"`
}

// SubmitSpecialPrice handles creation and update of a special price. The
// store resolves both through the same upsert, so the handler does not need
// to know whether the pair already existed.
func (h *SpecialPriceHandler) SubmitSpecialPrice(c echo.Context) error {
	var req submitSpecialPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "El cuerpo de la solicitud no es válido")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Faltan campos obligatorios: idUsuario, idProducto, precioEspecial")
	}

	specialPrice, err := h.pricingUC.SubmitSpecialPrice(c.Request().Context(), &usecase.SubmitSpecialPriceInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Price:     *req.Price,
		Note:      req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, specialPrice, "Precio especial guardado correctamente")
}

// ListSpecialPrices returns stored records newest-first, optionally filtered
// by idUsuario.
func (h *SpecialPriceHandler) ListSpecialPrices(c echo.Context) error {
	userID := c.QueryParam("idUsuario")

	specialPrices, err := h.specialPriceUC.ListSpecialPrices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, specialPrices, "Precios especiales obtenidos correctamente")
}

// CheckSpecialPrice reports whether a (user, product) pair has a record.
// Absence is a plain negative answer, not a 404.
func (h *SpecialPriceHandler) CheckSpecialPrice(c echo.Context) error {
	userID := c.QueryParam("idUsuario")
	productID := c.QueryParam("idProducto")
	if userID == "" || productID == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "Faltan parámetros obligatorios: idUsuario, idProducto")
	}

	specialPrice, exists, err := h.specialPriceUC.CheckSpecialPrice(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	body := checkSpecialPriceResponse{HasSpecialPrice: exists}
	if exists {
		body.Record = specialPrice
	}

	return response.Success(c, http.StatusOK, body, "Consulta realizada correctamente")
}

// DeleteSpecialPrice removes a record by ID. A malformed ID is a client
// error; a well-formed but unknown ID reports deleted=false.
func (h *SpecialPriceHandler) DeleteSpecialPrice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "El identificador no es válido")
	}

	deleted, err := h.specialPriceUC.DeleteSpecialPrice(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Precio especial eliminado correctamente"
	if !deleted {
		message = "No existe un precio especial con ese identificador"
	}

	return response.Success(c, http.StatusOK, deleteSpecialPriceResponse{Deleted: deleted}, message)
}
