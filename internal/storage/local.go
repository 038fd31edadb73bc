package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local grava as imagens em disco e serve de volta sob /uploads.
type Local struct {
	dir string
}

// NewLocal cria o diretório de uploads se ainda não existir.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de uploads: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Store(_ context.Context, dataURI, produtoID string) (Imagem, error) {
	subtipo, dados, err := parseDataURI(dataURI)
	if err != nil {
		return Imagem{}, err
	}

	nome := nomeArquivo(produtoID, subtipo)
	if err := os.WriteFile(filepath.Join(l.dir, nome), dados, 0o644); err != nil {
		return Imagem{}, fmt.Errorf("erro ao salvar imagem em disco: %w", err)
	}

	return Imagem{URL: "/uploads/" + nome}, nil
}
