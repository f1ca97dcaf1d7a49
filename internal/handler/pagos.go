package handler

import (
	"net/http"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/middleware"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/service"

	"github.com/gin-gonic/gin"
)

const pagoNoEncontrado = "Pago no encontrado"

type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler { return &PagosHandler{svc: svc} }

// Crear godoc
// @Summary Registrar pago
// @Tags pagos
// @Accept json
// @Produce json
// @Param body body dto.PagoRequest true "Pago"
// @Success 201 {object} dto.PagoResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError "Venta pagada o monto mayor al saldo"
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/pagos [post]
func (h *PagosHandler) Crear(c *gin.Context) {
	var req dto.PagoRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.CrearPago(c.Request.Context(), middleware.OwnerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PagosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarPagos(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PagosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c, "id", pagoNoEncontrado)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPago(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PagosHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "id", pagoNoEncontrado)
	if !ok {
		return
	}
	if err := h.svc.EliminarPago(c.Request.Context(), middleware.OwnerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
