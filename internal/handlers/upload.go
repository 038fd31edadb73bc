package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type uploadImagemRequest struct {
	ImagemBase64 string `json:"imagem_base64"`
	ProdutoID    string `json:"produto_id"`
}

// UploadImagem armazena a imagem no backend ativo e grava a URL resultante
// no produto. Mesmo produto e mesmo formato sobrescrevem a imagem anterior.
func (h *Handler) UploadImagem(c *gin.Context) {
	var req uploadImagemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido."})
		return
	}

	if req.ImagemBase64 == "" || req.ProdutoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Imagem e ID do produto são obrigatórios."})
		return
	}

	img, err := h.Imagens.Store(c.Request.Context(), req.ImagemBase64, req.ProdutoID)
	if err != nil {
		respondErro(c, err)
		return
	}

	if err := h.Catalogo.AttachImage(c.Request.Context(), req.ProdutoID, img.URL, img.PublicID); err != nil {
		respondErro(c, err)
		return
	}

	resp := gin.H{
		"success":    true,
		"imagem_url": img.URL,
		"message":    "Imagem salva com sucesso!",
	}
	if img.PublicID != "" {
		resp["public_id"] = img.PublicID
	}
	c.JSON(http.StatusOK, resp)
}
