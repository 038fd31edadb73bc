package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"graca_presentes_backend/internal/models"
)

// ListarProdutos devolve todos os produtos, mais recentes primeiro.
func (h *Handler) ListarProdutos(c *gin.Context) {
	produtos, err := h.Catalogo.List(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, produtos)
}

// CriarProduto cadastra um novo produto.
func (h *Handler) CriarProduto(c *gin.Context) {
	var p models.Produto
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Catalogo.Create(c.Request.Context(), p)
	if err != nil {
		respondErro(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"produto_id": id.Hex(),
		"message":    "Produto cadastrado com sucesso",
	})
}
