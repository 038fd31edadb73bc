package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health confirma que o serviço e o banco respondem.
func (h *Handler) Health(c *gin.Context) {
	count, err := h.Catalogo.Count(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Graça Presentes Backend rodando!",
		"features": gin.H{
			"whatsapp_integration": true,
			"database":             "MongoDB",
			"products_count":       count,
		},
	})
}
