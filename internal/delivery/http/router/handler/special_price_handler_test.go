package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"superprecios/internal/delivery/http/validator"
	"superprecios/internal/domain/entity"
	mockUC "superprecios/internal/mocks/usecase"
	"superprecios/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestHandler(t *testing.T) (*SpecialPriceHandler, *mockUC.MockPricingUsecase, *mockUC.MockSpecialPriceUsecase) {
	mockPricing := mockUC.NewMockPricingUsecase(t)
	mockSpecial := mockUC.NewMockSpecialPriceUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSpecialPriceHandler(mockPricing, mockSpecial, logger), mockPricing, mockSpecial
}

func TestSpecialPriceHandler_SubmitSpecialPrice_Created(t *testing.T) {
	handler, mockPricing, _ := newTestHandler(t)

	stored := &entity.SpecialPrice{
		ID:        uuid.New(),
		UserID:    "user-1",
		ProductID: "p1",
		Price:     80.0,
	}

	mockPricing.EXPECT().
		SubmitSpecialPrice(mock.Anything, &usecase.SubmitSpecialPriceInput{
			UserID:    "user-1",
			ProductID: "p1",
			Price:     80.0,
			Note:      "mayorista",
		}).
		Return(stored, nil)

	e := newTestEcho()
	body := `{"idUsuario":"user-1","idProducto":"p1","precioEspecial":80,"notas":"mayorista"}`
	req := httptest.NewRequest(http.MethodPost, "/api/precios-especiales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SubmitSpecialPrice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), stored.ID.String())
}

func TestSpecialPriceHandler_SubmitSpecialPrice_MissingPrice(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	e := newTestEcho()
	body := `{"idUsuario":"user-1","idProducto":"p1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/precios-especiales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SubmitSpecialPrice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestSpecialPriceHandler_SubmitSpecialPrice_ZeroPriceBound(t *testing.T) {
	handler, mockPricing, _ := newTestHandler(t)

	mockPricing.EXPECT().
		SubmitSpecialPrice(mock.Anything, &usecase.SubmitSpecialPriceInput{
			UserID:    "user-1",
			ProductID: "p1",
			Price:     0,
		}).
		Return(&entity.SpecialPrice{UserID: "user-1", ProductID: "p1"}, nil)

	e := newTestEcho()
	body := `{"idUsuario":"user-1","idProducto":"p1","precioEspecial":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/precios-especiales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SubmitSpecialPrice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSpecialPriceHandler_CheckSpecialPrice_Miss(t *testing.T) {
	handler, _, mockSpecial := newTestHandler(t)

	mockSpecial.EXPECT().
		CheckSpecialPrice(mock.Anything, "user-1", "p1").
		Return(nil, false, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/precios-especiales/check?idUsuario=user-1&idProducto=p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CheckSpecialPrice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"has_special_price":false`)
}

func TestSpecialPriceHandler_CheckSpecialPrice_MissingParams(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/precios-especiales/check?idUsuario=user-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CheckSpecialPrice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestSpecialPriceHandler_DeleteSpecialPrice_Unknown(t *testing.T) {
	handler, _, mockSpecial := newTestHandler(t)

	id := uuid.New()
	mockSpecial.EXPECT().
		DeleteSpecialPrice(mock.Anything, id).
		Return(false, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/precios-especiales/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.DeleteSpecialPrice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":false`)
}

func TestSpecialPriceHandler_DeleteSpecialPrice_InvalidID(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/precios-especiales/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.DeleteSpecialPrice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
