package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sicat_management/internal/auth"
)

// PaginationInfo descreve a paginação de uma listagem.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// newPaginationInfo calcula os metadados de paginação.
func newPaginationInfo(page, limit int, total int64) PaginationInfo {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PaginationInfo{
		CurrentPage: page,
		PageSize:    limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// actingUser devolve o nome do usuário autenticado no contexto; sem
// autenticação, a autoria das alterações cai em "Sistema".
func actingUser(c *gin.Context) string {
	if name, ok := c.Get(auth.ContextName); ok {
		if s, ok := name.(string); ok && s != "" {
			return s
		}
	}
	return "Sistema"
}
