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

// UserHandler trata as rotas de usuários internos.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler cria um UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// UserRequest é o corpo das requisições de cadastro e edição de usuário.
type UserRequest struct {
	NIF      string `json:"nif"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Unidade  string `json:"unidade"`
	Profile  string `json:"profile"`
}

// Create cadastra um usuário. A senha só trafega no corpo da requisição e é
// armazenada como hash.
// @Summary Cadastra um usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body UserRequest true "Dados do usuário"
// @Success 201 {object} utils.SuccessResponse{data=models.User}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /usuarios [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	user := models.User{
		NIF:     req.NIF,
		Name:    req.Name,
		Email:   req.Email,
		Unidade: req.Unidade,
		Profile: req.Profile,
	}

	if err := h.service.Create(&user, req.Password, actingUser(c)); err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			utils.RespondConflictError(c, err.Error())
			return
		}
		utils.RespondValidationError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, user, "Usuário cadastrado com sucesso")
}

// List devolve todos os usuários.
// @Summary Lista usuários
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]models.User}
// @Router /usuarios [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List()
	if err != nil {
		utils.RespondInternalServerError(c, "Falha ao listar os usuários")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, users, "")
}

// Update grava alterações cadastrais do usuário, registrando quem editou.
// @Summary Edita um usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param data body UserRequest true "Dados do usuário"
// @Success 200 {object} utils.SuccessResponse{data=models.User}
// @Failure 404 {object} utils.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	updated := models.User{
		NIF:     req.NIF,
		Name:    req.Name,
		Unidade: req.Unidade,
		Profile: req.Profile,
	}

	user, err := h.service.Update(id, &updated, req.Password, actingUser(c))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondNotFoundError(c, "Usuário")
			return
		}
		utils.RespondValidationError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, user, "Usuário atualizado com sucesso")
}
