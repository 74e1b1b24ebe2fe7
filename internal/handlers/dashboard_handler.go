package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sicat_management/internal/services"
	"github.com/sicat_management/pkg/utils"
)

// DashboardHandler trata a consulta do painel.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler cria um DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary devolve as contagens do painel.
// @Summary Consulta o resumo do painel
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=models.DashboardSummary}
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary()
	if err != nil {
		utils.RespondInternalServerError(c, "Falha ao calcular o resumo do painel")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, summary, "")
}
