package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"graca_presentes_backend/internal/models"
)

func TestCreatePedidoSemNomeFalhaAntesDePersistir(t *testing.T) {
	// Collection nil: se a validação deixasse passar, o insert explodiria.
	s := NewPedidos(nil, "5519987790800")

	casos := []models.NovoPedido{
		{},
		{Cliente: models.Cliente{Email: "ana@example.com", Telefone: "11999990000"}},
		{Cliente: models.Cliente{Nome: ""}, Total: 59.8},
	}

	for _, np := range casos {
		_, err := s.Create(context.Background(), np)
		assert.ErrorIs(t, err, ErrClienteInvalido)
	}
}
