package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sicat_management/configs"
	"github.com/sicat_management/internal/auth"
	"github.com/sicat_management/internal/models"
	"github.com/sicat_management/internal/services"
	"github.com/sicat_management/pkg/utils"
)

// tokenTTL é a validade dos tokens de acesso emitidos no login.
const tokenTTL = 8 * time.Hour

// AuthHandler trata login e logout.
type AuthHandler struct {
	userService *services.UserService
}

// NewAuthHandler cria um AuthHandler.
func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// LoginRequest é o corpo da requisição de login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse é o corpo da resposta de login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login autentica o usuário e emite um JWT com JTI.
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credenciais"
// @Success 200 {object} utils.SuccessResponse{data=LoginResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "E-mail e senha são obrigatórios")
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
		return
	}

	now := time.Now()
	claims := auth.Claims{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Profile: user.Profile,
		Unidade: user.Unidade,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.AppConfig.JWTSecret))
	if err != nil {
		utils.RespondInternalServerError(c, "Falha ao gerar o token de acesso")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, LoginResponse{Token: signed, User: user}, "Login realizado com sucesso")
}

// Logout invalida o token atual adicionando seu JTI à lista de recusados.
// @Summary Logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, hasJTI := c.Get(auth.ContextJTI)
	exp, hasExp := c.Get(auth.ContextExp)
	if !hasJTI || !hasExp {
		utils.RespondError(c, http.StatusBadRequest, "Token sem as informações necessárias para logout")
		return
	}

	jtiStr, okJTI := jti.(string)
	expTime, okExp := exp.(time.Time)
	if !okJTI || !okExp {
		utils.RespondError(c, http.StatusBadRequest, "Token sem as informações necessárias para logout")
		return
	}

	auth.AddToDenylist(jtiStr, expTime)
	utils.RespondSuccess(c, http.StatusOK, nil, "Logout realizado com sucesso")
}
