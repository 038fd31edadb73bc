package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusRecebido é o único estado de pedido que existe: não há endpoint de
// transição, todo pedido nasce e permanece "recebido".
const StatusRecebido = "recebido"

// Pedido é o documento da collection "pedidos". Os itens são embutidos
// verbatim no documento (denormalização) — não há integridade referencial
// contra o catálogo e o total é o declarado pelo cliente.
type Pedido struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClienteNome     string             `bson:"cliente_nome" json:"cliente_nome"`
	ClienteEmail    string             `bson:"cliente_email,omitempty" json:"cliente_email,omitempty"`
	ClienteTelefone string             `bson:"cliente_telefone,omitempty" json:"cliente_telefone,omitempty"`
	EnderecoEntrega string             `bson:"endereco_entrega,omitempty" json:"endereco_entrega,omitempty"`
	Observacoes     string             `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
	Total           float64            `bson:"total" json:"total"`
	Itens           []map[string]any   `bson:"itens" json:"itens"`
	Status          string             `bson:"status" json:"status"`
	DataCriacao     time.Time          `bson:"dataCriacao" json:"dataCriacao"`
}

// Cliente é o bloco de dados do comprador no corpo de POST /api/pedidos.
type Cliente struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	Endereco    string `json:"endereco"`
	Observacoes string `json:"observacoes"`
}

// NovoPedido é o corpo de POST /api/pedidos.
type NovoPedido struct {
	Cliente Cliente          `json:"cliente"`
	Itens   []map[string]any `json:"itens"`
	Total   float64          `json:"total"`
}
