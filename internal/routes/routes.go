package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"graca_presentes_backend/internal/handlers"
)

// RegisterRoutes registra a API, a pasta pública de uploads e o fallback de
// SPA (qualquer GET não casado serve o index.html).
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, uploadsDir string) {
	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/produtos", h.ListarProdutos)
		api.POST("/produtos", h.CriarProduto)
		api.GET("/pedidos", h.ListarPedidos)
		api.POST("/pedidos", h.CriarPedido)
		api.POST("/upload-imagem", h.UploadImagem)
	}

	r.Static("/uploads", uploadsDir)

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.File("index.html")
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada."})
	})
}
