package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Valores aplicados quando o cadastro não informa os campos de exibição.
const (
	IconePadrao     = "box"
	CorPadrao       = "gray"
	GradientePadrao = "from-gray-400 to-gray-600"
)

// Produto é o documento da collection "produtos". O _id do Mongo é exposto
// como "id" no JSON — projeção de leitura, nunca um campo duplicado gravado.
type Produto struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome          string             `bson:"nome,omitempty" json:"nome"`
	Preco         *float64           `bson:"preco,omitempty" json:"preco,omitempty"`
	PrecoOriginal *float64           `bson:"preco_original,omitempty" json:"preco_original,omitempty"`
	Categoria     string             `bson:"categoria,omitempty" json:"categoria"`
	Descricao     string             `bson:"descricao,omitempty" json:"descricao"`
	ImagemURL     string             `bson:"imagem_url,omitempty" json:"imagem_url"`
	PublicID      string             `bson:"public_id,omitempty" json:"public_id,omitempty"`
	Icone         string             `bson:"icone" json:"icone"`
	Cor           string             `bson:"cor" json:"cor"`
	CorGradiente  string             `bson:"cor_gradiente" json:"cor_gradiente"`
	Desconto      float64            `bson:"desconto" json:"desconto"`
	Novo          bool               `bson:"novo" json:"novo"`
	MaisVendido   bool               `bson:"mais_vendido" json:"mais_vendido"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// AplicarPadroes preenche os campos de exibição omitidos. Desconto, novo e
// mais_vendido já nascem com os defaults (0/false) pelo zero value e são
// sempre persistidos, então todo produto gravado tem esses campos não nulos.
func (p *Produto) AplicarPadroes() {
	if p.Icone == "" {
		p.Icone = IconePadrao
	}
	if p.Cor == "" {
		p.Cor = CorPadrao
	}
	if p.CorGradiente == "" {
		p.CorGradiente = GradientePadrao
	}
}
