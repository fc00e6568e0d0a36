package controllers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminRequired valida o segredo compartilhado das rotas administrativas
// (header Authorization: Bearer <segredo>). O segredo vem da config, passado
// explicitamente — nada de estado global — e a comparação é em tempo
// constante. Rejeita antes de qualquer handler rodar.
func AdminRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		token := strings.TrimSpace(h[len("Bearer "):])
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
