package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"graca_presentes_backend/internal/models"
	"graca_presentes_backend/internal/services"
	"graca_presentes_backend/internal/storage"
)

// CatalogoService é o que os handlers precisam do catálogo de produtos.
type CatalogoService interface {
	Create(ctx context.Context, p models.Produto) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Produto, error)
	AttachImage(ctx context.Context, produtoID, imagemURL, publicID string) error
	Count(ctx context.Context) (int64, error)
}

// PedidoService é o que os handlers precisam do serviço de pedidos.
type PedidoService interface {
	Create(ctx context.Context, np models.NovoPedido) (*services.PedidoCriado, error)
	List(ctx context.Context) ([]models.Pedido, error)
}

// Handler agrupa as dependências dos endpoints. Tudo chega por referência no
// startup — nenhum estado de pacote.
type Handler struct {
	Catalogo CatalogoService
	Pedidos  PedidoService
	Imagens  storage.ImageStore
}

// respondErro traduz a taxonomia de erros para status HTTP. Qualquer falha
// fora da taxonomia vira 500 com mensagem genérica e log detalhado no
// servidor; o processo nunca cai por erro de requisição.
func respondErro(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrClienteInvalido):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados do cliente são obrigatórios"})
	case errors.Is(err, storage.ErrImagemInvalida):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de imagem base64 inválido."})
	case errors.Is(err, services.ErrProdutoNaoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado."})
	case errors.Is(err, storage.ErrBackendIndisponivel):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Serviço de imagens indisponível."})
	default:
		log.Printf("❌ Erro inesperado: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ocorreu um erro inesperado no servidor."})
	}
}
