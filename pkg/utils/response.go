package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse é o envelope padrão de sucesso da API.
type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse é o envelope padrão de erro da API.
type ErrorResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// RespondSuccess envia uma resposta de sucesso no envelope padrão.
func RespondSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// RespondError envia uma resposta de erro no envelope padrão.
func RespondError(c *gin.Context, status int, message string, details ...string) {
	response := ErrorResponse{
		Status:  "error",
		Message: message,
	}
	if len(details) > 0 {
		response.Details = details
	}
	c.JSON(status, response)
}

// RespondValidationError envia um erro de validação (400) com a mensagem do
// próprio erro, que já vem pronta para o usuário.
func RespondValidationError(c *gin.Context, err error) {
	RespondError(c, http.StatusBadRequest, err.Error())
}

// RespondUnauthorizedError envia um erro de autenticação (401) e aborta a
// cadeia de handlers.
func RespondUnauthorizedError(c *gin.Context, message ...string) {
	msg := "Não autenticado ou token inválido/expirado"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Status:  "error",
		Message: msg,
	})
}

// RespondNotFoundError envia um erro de recurso não encontrado (404).
func RespondNotFoundError(c *gin.Context, resourceName string) {
	RespondError(c, http.StatusNotFound, resourceName+" não encontrado(a)")
}

// RespondConflictError envia um erro de conflito (409), usado para CPF/CNPJ
// duplicados e gravações sobre registro desatualizado.
func RespondConflictError(c *gin.Context, message string) {
	RespondError(c, http.StatusConflict, message)
}

// RespondInternalServerError envia um erro interno (500) sem vazar detalhes
// de infraestrutura para o cliente.
func RespondInternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "Erro interno do servidor"
	}
	RespondError(c, http.StatusInternalServerError, message)
}
