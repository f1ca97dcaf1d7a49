package handler

import (
	"net/http"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/middleware"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumen godoc
// @Summary Indicadores del negocio
// @Tags dashboard
// @Produce json
// @Param desde query string false "YYYY-MM-DD"
// @Param hasta query string false "YYYY-MM-DD"
// @Param periodo query string false "dia | mes | anio"
// @Success 200 {object} dto.DashboardResponse
// @Router /v1/dashboard [get]
func (h *DashboardHandler) Resumen(c *gin.Context) {
	var filter dto.DashboardFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), middleware.OwnerID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
