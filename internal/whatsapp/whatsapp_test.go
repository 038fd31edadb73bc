package whatsapp

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferencia(t *testing.T) {
	assert.Equal(t, "c8d9e0", Referencia("65a5b1c2d3e4f5a6b7c8d9e0"))
	assert.Equal(t, "abc", Referencia("abc"))
	assert.Equal(t, "", Referencia(""))
}

func TestLink(t *testing.T) {
	mensagem := MensagemPedido("c8d9e0")
	link := Link("5519987790800", mensagem)

	u, err := url.Parse(link)
	require.NoError(t, err)

	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "api.whatsapp.com", u.Host)
	assert.Equal(t, "/send", u.Path)

	// O texto percorre o encode/decode sem perda.
	q := u.Query()
	assert.Equal(t, "5519987790800", q.Get("phone"))
	assert.Equal(t, "📦 Novo pedido #c8d9e0 recebido na Graça Presentes!", q.Get("text"))
}

func TestMensagemPedidoCarregaReferencia(t *testing.T) {
	assert.Contains(t, MensagemPedido("6789ab"), "#6789ab")
}
