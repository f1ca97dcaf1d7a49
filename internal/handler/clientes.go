package handler

import (
	"net/http"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/middleware"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/service"

	"github.com/gin-gonic/gin"
)

const clienteNoEncontrado = "Cliente no encontrado"

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Crear godoc
// @Summary Registrar cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param body body dto.ClienteRequest true "Cliente"
// @Success 201 {object} dto.ClienteResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/clientes [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.ClienteRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.OwnerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c, "id", clienteNoEncontrado)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), middleware.OwnerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id", clienteNoEncontrado)
	if !ok {
		return
	}
	var req dto.ClienteRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.OwnerID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary Eliminar cliente
// @Description Falla con 409 si el cliente tiene ventas.
// @Tags clientes
// @Param id path string true "ID"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/clientes/{id} [delete]
func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "id", clienteNoEncontrado)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.OwnerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
