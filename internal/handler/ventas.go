package handler

import (
	"net/http"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/middleware"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/service"

	"github.com/gin-gonic/gin"
)

const ventaNoEncontrada = "Venta no encontrada"

type VentasHandler struct {
	svc   service.VentaService
	pagos service.PagoService
}

func NewVentasHandler(svc service.VentaService, pagos service.PagoService) *VentasHandler {
	return &VentasHandler{svc: svc, pagos: pagos}
}

// Crear godoc
// @Summary Registrar venta
// @Description Una venta al contado genera su pago automaticamente.
// @Tags ventas
// @Accept json
// @Produce json
// @Param body body dto.VentaRequest true "Venta"
// @Success 201 {object} dto.VentaResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/ventas [post]
func (h *VentasHandler) Crear(c *gin.Context) {
	var req dto.VentaRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.CrearVenta(c.Request.Context(), middleware.OwnerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Listar ventas
// @Tags ventas
// @Produce json
// @Param estado query string false "PAGADO | PENDIENTE"
// @Param desde query string false "YYYY-MM-DD"
// @Param hasta query string false "YYYY-MM-DD"
// @Success 200 {array} dto.VentaResponse
// @Router /v1/ventas [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarVentas(c.Request.Context(), middleware.OwnerID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) ListarPendientes(c *gin.Context) {
	resp, err := h.svc.ListarVentasPendientes(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c, "id", ventaNoEncontrada)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerVenta(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Editar venta
// @Description Si cambia el monto total o el tipo de pago, el saldo se recalcula desde los pagos.
// @Tags ventas
// @Accept json
// @Produce json
// @Param id path string true "ID"
// @Param body body dto.VentaRequest true "Venta"
// @Success 200 {object} dto.VentaResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/ventas/{id} [put]
func (h *VentasHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id", ventaNoEncontrada)
	if !ok {
		return
	}
	var req dto.VentaRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarVenta(c.Request.Context(), middleware.OwnerID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "id", ventaNoEncontrada)
	if !ok {
		return
	}
	if err := h.svc.EliminarVenta(c.Request.Context(), middleware.OwnerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VentasHandler) ListarPagos(c *gin.Context) {
	id, ok := paramID(c, "id", ventaNoEncontrada)
	if !ok {
		return
	}
	resp, err := h.pagos.ListarPagosPorVenta(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
