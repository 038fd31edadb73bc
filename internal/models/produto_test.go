package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAplicarPadroes(t *testing.T) {
	t.Run("campos omitidos recebem os defaults documentados", func(t *testing.T) {
		p := Produto{Nome: "Caneca"}
		p.AplicarPadroes()

		assert.Equal(t, "box", p.Icone)
		assert.Equal(t, "gray", p.Cor)
		assert.Equal(t, "from-gray-400 to-gray-600", p.CorGradiente)
		assert.Zero(t, p.Desconto)
		assert.False(t, p.Novo)
		assert.False(t, p.MaisVendido)
	})

	t.Run("campos informados não são tocados", func(t *testing.T) {
		p := Produto{
			Icone:        "gift",
			Cor:          "pink",
			CorGradiente: "from-pink-400 to-rose-600",
			Desconto:     15,
			Novo:         true,
		}
		p.AplicarPadroes()

		assert.Equal(t, "gift", p.Icone)
		assert.Equal(t, "pink", p.Cor)
		assert.Equal(t, "from-pink-400 to-rose-600", p.CorGradiente)
		assert.Equal(t, float64(15), p.Desconto)
		assert.True(t, p.Novo)
	})
}
