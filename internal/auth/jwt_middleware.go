package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sicat_management/configs"
	"github.com/sicat_management/pkg/utils"
)

// Chaves do contexto Gin preenchidas pelo middleware.
const (
	ContextUserID  = "userID"
	ContextName    = "userName"
	ContextEmail   = "userEmail"
	ContextProfile = "userProfile"
	ContextUnidade = "userUnidade"
	ContextJTI     = "jti"
	ContextExp     = "exp"
)

// Claims define as declarações customizadas do JWT. O JTI vem do
// jwt.RegisteredClaims embutido.
type Claims struct {
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
	Unidade string `json:"unidade,omitempty"`
	jwt.RegisteredClaims
}

var (
	// tokenDenylist guarda os JTIs de tokens deslogados até o vencimento
	// original de cada um. Lista em memória: reiniciar o serviço a descarta.
	tokenDenylist = make(map[string]time.Time)
	denylistMutex = &sync.RWMutex{}
)

// AddToDenylist registra o JTI na lista de tokens recusados e aproveita para
// remover entradas já vencidas.
func AddToDenylist(jti string, expiresAt time.Time) {
	denylistMutex.Lock()
	defer denylistMutex.Unlock()

	tokenDenylist[jti] = expiresAt

	now := time.Now()
	for id, exp := range tokenDenylist {
		if now.After(exp) {
			delete(tokenDenylist, id)
		}
	}
}

// IsTokenDenylisted informa se o JTI está na lista de recusados e ainda não
// venceu.
func IsTokenDenylisted(jti string) bool {
	denylistMutex.RLock()
	defer denylistMutex.RUnlock()

	expTime, found := tokenDenylist[jti]
	if !found {
		return false
	}
	return time.Now().Before(expTime)
}

// JWTMiddleware valida o Bearer Token do cabeçalho Authorization e grava as
// declarações no contexto para os handlers seguintes.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondUnauthorizedError(c, "Cabeçalho Authorization é obrigatório")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondUnauthorizedError(c, "Cabeçalho Authorization deve estar no formato Bearer {token}")
			return
		}

		tokenString := parts[1]
		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
			}
			return []byte(configs.AppConfig.JWTSecret), nil
		})

		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenMalformed):
				utils.RespondUnauthorizedError(c, "Token malformado")
			case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
				utils.RespondUnauthorizedError(c, "Token expirado ou ainda não válido")
			case errors.Is(err, jwt.ErrSignatureInvalid):
				utils.RespondUnauthorizedError(c, "Assinatura do token inválida")
			default:
				utils.RespondUnauthorizedError(c, "Token inválido")
			}
			return
		}

		if !token.Valid {
			utils.RespondUnauthorizedError(c, "Token inválido")
			return
		}

		if claims.ID == "" {
			utils.RespondUnauthorizedError(c, "Token sem JTI")
			return
		}

		if IsTokenDenylisted(claims.ID) {
			utils.RespondUnauthorizedError(c, "Token invalidado (logout)")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextName, claims.Name)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextProfile, claims.Profile)
		c.Set(ContextUnidade, claims.Unidade)
		c.Set(ContextJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ContextExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}
