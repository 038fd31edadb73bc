package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrImagemInvalida indica um data URI que não segue
	// data:image/<subtipo>;base64,<payload> ou cujo payload não decodifica.
	ErrImagemInvalida = errors.New("formato de imagem base64 inválido")

	// ErrBackendIndisponivel indica que o backend remoto de imagens não pôde
	// ser inicializado. É uma condição distinta de erro genérico: o chamador
	// precisa saber que pode cair para o armazenamento local.
	ErrBackendIndisponivel = errors.New("backend de imagens não inicializado")
)

// Imagem é o resultado de um armazenamento: a URL pública e, no backend
// remoto, o identificador do objeto.
type Imagem struct {
	URL      string
	PublicID string
}

// ImageStore armazena a imagem de um produto e devolve onde ela ficou.
// O backend ativo é escolhido uma única vez no startup.
type ImageStore interface {
	Store(ctx context.Context, dataURI, produtoID string) (Imagem, error)
}

var dataURIRe = regexp.MustCompile(`^data:image/([A-Za-z-+/]+);base64,(.+)$`)

// parseDataURI valida e decodifica o data URI antes de qualquer escrita.
func parseDataURI(dataURI string) (subtipo string, dados []byte, err error) {
	m := dataURIRe.FindStringSubmatch(dataURI)
	if m == nil {
		return "", nil, ErrImagemInvalida
	}
	dados, err = base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrImagemInvalida, err)
	}
	return m[1], dados, nil
}

// nomeArquivo deriva o nome determinístico do arquivo a partir do produto e
// do subtipo detectado. Mesmo produto, mesmo subtipo → mesmo nome, então a
// regravação sobrescreve a anterior (last-write-wins).
func nomeArquivo(produtoID, subtipo string) string {
	return fmt.Sprintf("produto_%s.%s", produtoID, subtipo)
}

// Indisponivel é instalado no lugar do backend remoto quando a inicialização
// falhou; toda tentativa de uso vira ErrBackendIndisponivel.
type Indisponivel struct{}

func (Indisponivel) Store(context.Context, string, string) (Imagem, error) {
	return Imagem{}, ErrBackendIndisponivel
}
