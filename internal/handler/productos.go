package handler

import (
	"net/http"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/middleware"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/service"

	"github.com/gin-gonic/gin"
)

const productoNoEncontrado = "Producto no encontrado"

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear godoc
// @Summary Registrar producto o servicio
// @Tags productos
// @Accept json
// @Produce json
// @Param body body dto.ProductoRequest true "Producto"
// @Success 201 {object} dto.ProductoResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/productos [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.ProductoRequest
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

func (h *ProductosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c, "id", productoNoEncontrado)
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

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id", productoNoEncontrado)
	if !ok {
		return
	}
	var req dto.ProductoRequest
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

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "id", productoNoEncontrado)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.OwnerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
