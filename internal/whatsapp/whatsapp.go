// Package whatsapp monta o deep link de notificação de pedido. O link é
// apenas informativo: abrir é decisão de quem recebeu a resposta, nenhuma
// entrega é confirmada pelo servidor.
package whatsapp

import (
	"fmt"
	"net/url"
)

const apiURL = "https://api.whatsapp.com/send"

// MensagemPedido monta o texto de notificação com a referência curta do
// pedido (os 6 últimos caracteres do id gerado).
func MensagemPedido(referencia string) string {
	return fmt.Sprintf("📦 Novo pedido #%s recebido na Graça Presentes!", referencia)
}

// Link devolve o deep link com o telefone de destino e a mensagem
// percent-encoded.
func Link(telefone, mensagem string) string {
	return fmt.Sprintf("%s?phone=%s&text=%s", apiURL, telefone, url.QueryEscape(mensagem))
}

// Referencia extrai a referência curta de um id de pedido.
func Referencia(pedidoID string) string {
	if len(pedidoID) <= 6 {
		return pedidoID
	}
	return pedidoID[len(pedidoID)-6:]
}
