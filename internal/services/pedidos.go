package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"graca_presentes_backend/internal/models"
	"graca_presentes_backend/internal/whatsapp"
)

// ErrClienteInvalido indica pedido sem nome de cliente. Nada é persistido.
var ErrClienteInvalido = errors.New("dados do cliente são obrigatórios")

// Pedidos implementa criação e listagem de pedidos.
type Pedidos struct {
	col      *mongo.Collection
	telefone string // destino fixo do link de WhatsApp
}

func NewPedidos(col *mongo.Collection, telefone string) *Pedidos {
	return &Pedidos{col: col, telefone: telefone}
}

// PedidoCriado é o resultado de Create: o id gerado pelo banco e o deep link
// de notificação derivado dele.
type PedidoCriado struct {
	ID           primitive.ObjectID
	WhatsAppLink string
}

// Create valida o mínimo (nome do cliente) e persiste o pedido como veio:
// itens embutidos verbatim e total declarado pelo cliente, sem recomputar
// contra o catálogo. O link de WhatsApp carrega os 6 últimos caracteres do
// id gerado como referência curta.
func (s *Pedidos) Create(ctx context.Context, np models.NovoPedido) (*PedidoCriado, error) {
	if np.Cliente.Nome == "" {
		return nil, ErrClienteInvalido
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	pedido := models.Pedido{
		ClienteNome:     np.Cliente.Nome,
		ClienteEmail:    np.Cliente.Email,
		ClienteTelefone: np.Cliente.Telefone,
		EnderecoEntrega: np.Cliente.Endereco,
		Observacoes:     np.Cliente.Observacoes,
		Total:           np.Total,
		Itens:           np.Itens,
		Status:          models.StatusRecebido,
		DataCriacao:     time.Now(),
	}

	res, err := s.col.InsertOne(ctx, pedido)
	if err != nil {
		return nil, err
	}

	id := res.InsertedID.(primitive.ObjectID)
	mensagem := whatsapp.MensagemPedido(whatsapp.Referencia(id.Hex()))

	return &PedidoCriado{
		ID:           id,
		WhatsAppLink: whatsapp.Link(s.telefone, mensagem),
	}, nil
}

// List devolve todos os pedidos, mais recentes primeiro.
func (s *Pedidos) List(ctx context.Context) ([]models.Pedido, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dataCriacao", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pedidos := []models.Pedido{}
	if err := cursor.All(ctx, &pedidos); err != nil {
		return nil, err
	}

	return pedidos, nil
}
