package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sicat_management/internal/auth"
	"github.com/sicat_management/internal/changes"
	"github.com/sicat_management/internal/models"
	"github.com/sicat_management/internal/repositories"
	"github.com/sicat_management/internal/services"
	"github.com/sicat_management/pkg/utils"
)

// ThirdPartyHandler trata as rotas de terceiros.
type ThirdPartyHandler struct {
	service *services.ThirdPartyService
}

// NewThirdPartyHandler cria um ThirdPartyHandler.
func NewThirdPartyHandler(service *services.ThirdPartyService) *ThirdPartyHandler {
	return &ThirdPartyHandler{service: service}
}

// ThirdPartyListResponse é o corpo da resposta da listagem de terceiros.
type ThirdPartyListResponse struct {
	Items      []models.ThirdParty `json:"items"`
	Pagination PaginationInfo      `json:"pagination"`
}

// Create cadastra um novo terceiro.
// @Summary Cadastra um terceiro
// @Tags terceiros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.Snapshot true "Dados do terceiro"
// @Success 201 {object} utils.SuccessResponse{data=models.ThirdParty}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /terceiros [post]
func (h *ThirdPartyHandler) Create(c *gin.Context) {
	var data models.Snapshot
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	tp, err := h.service.Create(data, actingUser(c))
	if err != nil {
		if errors.Is(err, repositories.ErrCPFExists) {
			utils.RespondConflictError(c, err.Error())
			return
		}
		// Erros de campo obrigatório e de CPF já vêm com mensagem pronta.
		utils.RespondValidationError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, tp, "Terceiro cadastrado com sucesso")
}

// List devolve uma página de terceiros. Perfis de unidade enxergam apenas os
// registros lotados na própria unidade, independentemente dos filtros.
// @Summary Lista terceiros
// @Tags terceiros
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param search query string false "Termo de busca"
// @Param searchBy query string false "Campo de busca (name, cpf, razaoSocial)"
// @Param status query string false "Filtro por status"
// @Param entidade query string false "Filtro por entidade"
// @Param insalubridade query string false "Filtro por insalubridade"
// @Success 200 {object} utils.SuccessResponse{data=ThirdPartyListResponse}
// @Router /terceiros [get]
func (h *ThirdPartyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := repositories.ThirdPartyListFilter{
		Page:          page,
		Limit:         limit,
		Search:        c.Query("search"),
		SearchBy:      c.Query("searchBy"),
		Status:        c.Query("status"),
		Entidade:      c.Query("entidade"),
		Insalubridade: c.Query("insalubridade"),
	}

	if profile, ok := c.Get(auth.ContextProfile); ok {
		if p, ok := profile.(string); ok && models.RestrictedProfile(p) {
			if unidade, ok := c.Get(auth.ContextUnidade); ok {
				filter.RestrictUnidade, _ = unidade.(string)
			}
		}
	}

	items, total, err := h.service.List(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "Falha ao listar os terceiros")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, ThirdPartyListResponse{
		Items:      items,
		Pagination: newPaginationInfo(page, limit, total),
	}, "")
}

// Get devolve um terceiro com o histórico completo.
// @Summary Consulta um terceiro
// @Tags terceiros
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do terceiro"
// @Success 200 {object} utils.SuccessResponse{data=models.ThirdParty}
// @Failure 404 {object} utils.ErrorResponse
// @Router /terceiros/{id} [get]
func (h *ThirdPartyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	tp, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrThirdPartyNotFound) {
			utils.RespondNotFoundError(c, "Terceiro")
			return
		}
		utils.RespondInternalServerError(c, "Falha ao consultar o terceiro")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, tp, "")
}

// ApplyChange aplica uma alteração tipada sobre o terceiro. Toda mutação de
// um registro existente passa por aqui; não há edição livre de campos.
// @Summary Aplica uma alteração a um terceiro
// @Tags terceiros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do terceiro"
// @Param payload body models.ThirdPartyChangePayload true "Alteração"
// @Success 200 {object} utils.SuccessResponse{data=models.ThirdParty}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /terceiros/{id}/alteracoes [post]
func (h *ThirdPartyHandler) ApplyChange(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var payload models.ThirdPartyChangePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	tp, err := h.service.ApplyChange(id, payload, actingUser(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrThirdPartyNotFound):
			utils.RespondNotFoundError(c, "Terceiro")
		case errors.Is(err, services.ErrStaleRecord):
			utils.RespondConflictError(c, err.Error())
		case errors.Is(err, services.ErrCompanyNotFound),
			errors.Is(err, services.ErrCargoUnavailable):
			utils.RespondValidationError(c, err)
		case changes.IsValidationError(err):
			utils.RespondValidationError(c, err)
		default:
			utils.RespondInternalServerError(c, "Falha ao aplicar a alteração")
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, tp, "Alteração aplicada com sucesso")
}

// History devolve a visão de exibição do histórico do terceiro, da entrada
// mais recente para a mais antiga, com os diffs reconstruídos dos snapshots.
// @Summary Consulta o histórico de um terceiro
// @Tags terceiros
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do terceiro"
// @Success 200 {object} utils.SuccessResponse{data=[]changes.EntryView}
// @Failure 404 {object} utils.ErrorResponse
// @Router /terceiros/{id}/historico [get]
func (h *ThirdPartyHandler) History(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	views, err := h.service.History(id)
	if err != nil {
		if errors.Is(err, services.ErrThirdPartyNotFound) {
			utils.RespondNotFoundError(c, "Terceiro")
			return
		}
		utils.RespondInternalServerError(c, "Falha ao consultar o histórico")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, views, "")
}

// FieldConfig devolve a configuração de visibilidade/edição dos campos para
// o tipo de alteração informado (ou a configuração padrão, sem tipo).
// @Summary Consulta a configuração de campos por tipo de alteração
// @Tags terceiros
// @Produce json
// @Security BearerAuth
// @Param changeType query string false "Rótulo do tipo de alteração"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /terceiros/config-campos [get]
func (h *ThirdPartyHandler) FieldConfig(c *gin.Context) {
	label := c.Query("changeType")
	if label == "" {
		utils.RespondSuccess(c, http.StatusOK, changes.DefaultFieldConfig(), "")
		return
	}

	changeType, ok := changes.Parse(label)
	if !ok || changeType == changes.TypeCreation {
		utils.RespondError(c, http.StatusBadRequest, changes.ErrUnknownChangeType.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, changes.FieldConfigFor(changeType), "")
}
