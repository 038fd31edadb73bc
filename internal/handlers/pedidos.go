package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"graca_presentes_backend/internal/models"
)

// ListarPedidos devolve todos os pedidos, mais recentes primeiro.
func (h *Handler) ListarPedidos(c *gin.Context) {
	pedidos, err := h.Pedidos.List(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// CriarPedido registra o pedido e devolve o link de WhatsApp com a
// referência curta. Reenviar o mesmo corpo cria um segundo pedido: não há
// chave de idempotência.
func (h *Handler) CriarPedido(c *gin.Context) {
	var np models.NovoPedido
	if err := c.ShouldBindJSON(&np); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	criado, err := h.Pedidos.Create(c.Request.Context(), np)
	if err != nil {
		respondErro(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Pedido criado com sucesso!",
		"pedido_id":     criado.ID.Hex(),
		"whatsapp_link": criado.WhatsAppLink,
	})
}
