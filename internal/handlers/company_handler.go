package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sicat_management/internal/models"
	"github.com/sicat_management/internal/repositories"
	"github.com/sicat_management/internal/services"
	"github.com/sicat_management/pkg/utils"
)

// CompanyHandler trata as rotas de empresas contratadas.
type CompanyHandler struct {
	service *services.CompanyService
}

// NewCompanyHandler cria um CompanyHandler.
func NewCompanyHandler(service *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create cadastra uma empresa.
// @Summary Cadastra uma empresa
// @Tags empresas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body models.Company true "Dados da empresa"
// @Success 201 {object} utils.SuccessResponse{data=models.Company}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /empresas [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := h.service.Create(&company); err != nil {
		if errors.Is(err, repositories.ErrCNPJExists) {
			utils.RespondConflictError(c, err.Error())
			return
		}
		utils.RespondValidationError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, company, "Empresa cadastrada com sucesso")
}

// List devolve todas as empresas com seus contratos.
// @Summary Lista empresas
// @Tags empresas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]models.Company}
// @Router /empresas [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.service.List()
	if err != nil {
		utils.RespondInternalServerError(c, "Falha ao listar as empresas")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, companies, "")
}

// Get devolve uma empresa com contratos.
// @Summary Consulta uma empresa
// @Tags empresas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da empresa"
// @Success 200 {object} utils.SuccessResponse{data=models.Company}
// @Failure 404 {object} utils.ErrorResponse
// @Router /empresas/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	company, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			utils.RespondNotFoundError(c, "Empresa")
			return
		}
		utils.RespondInternalServerError(c, "Falha ao consultar a empresa")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, company, "")
}

// AddContract anexa um contrato à empresa.
// @Summary Cadastra um contrato para a empresa
// @Tags empresas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da empresa"
// @Param data body models.Contract true "Dados do contrato"
// @Success 201 {object} utils.SuccessResponse{data=models.Contract}
// @Failure 404 {object} utils.ErrorResponse
// @Router /empresas/{id}/contratos [post]
func (h *CompanyHandler) AddContract(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var contract models.Contract
	if err := c.ShouldBindJSON(&contract); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := h.service.AddContract(id, &contract); err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			utils.RespondNotFoundError(c, "Empresa")
			return
		}
		utils.RespondInternalServerError(c, "Falha ao cadastrar o contrato")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, contract, "Contrato cadastrado com sucesso")
}

// CargoOptions devolve os cargos disponíveis na empresa, derivados dos
// serviços prestados nos contratos ativos.
// @Summary Consulta os cargos disponíveis da empresa
// @Tags empresas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da empresa"
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Failure 404 {object} utils.ErrorResponse
// @Router /empresas/{id}/cargos [get]
func (h *CompanyHandler) CargoOptions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	options, err := h.service.CargoOptions(id)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			utils.RespondNotFoundError(c, "Empresa")
			return
		}
		utils.RespondInternalServerError(c, "Falha ao consultar os cargos")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, options, "")
}
