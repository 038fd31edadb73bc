package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"graca_presentes_backend/internal/config"
)

// Minio é o backend remoto de imagens: os bytes decodificados vão para o
// bucket sob a pasta "produtos" e a chave do objeto faz o papel de public_id.
type Minio struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinio inicializa o cliente e garante o bucket. Credenciais ausentes ou
// endpoint inacessível fazem a inicialização falhar — o chamador decide o que
// instalar no lugar (ver storage.Indisponivel).
func NewMinio(ctx context.Context, cfg *config.Config) (*Minio, error) {
	if cfg.MinioEndpoint == "" || cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" || cfg.MinioBucket == "" {
		return nil, errors.New("credenciais do MinIO ausentes (MINIO_ENDPOINT / MINIO_ACCESS_KEY / MINIO_SECRET_KEY / MINIO_BUCKET)")
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar bucket MinIO: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("erro ao criar bucket MinIO: %w", err)
		}
		log.Println("🪣 Bucket criado:", cfg.MinioBucket)
	}

	publicBase := cfg.MinioPublicURL
	if publicBase == "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s", scheme, cfg.MinioEndpoint)
	}

	log.Println("✅ Conectado ao MinIO:", cfg.MinioEndpoint)

	return &Minio{
		client:     client,
		bucket:     cfg.MinioBucket,
		publicBase: publicBase,
	}, nil
}

func (m *Minio) Store(ctx context.Context, dataURI, produtoID string) (Imagem, error) {
	subtipo, dados, err := parseDataURI(dataURI)
	if err != nil {
		return Imagem{}, err
	}

	// Chave determinística: reenviar a imagem do mesmo produto sobrescreve o
	// objeto anterior, igual ao backend local.
	objectName := "produtos/" + nomeArquivo(produtoID, subtipo)

	_, err = m.client.PutObject(ctx, m.bucket, objectName,
		bytes.NewReader(dados), int64(len(dados)),
		minio.PutObjectOptions{ContentType: "image/" + subtipo})
	if err != nil {
		return Imagem{}, fmt.Errorf("erro no upload para o MinIO: %w", err)
	}

	return Imagem{
		URL:      fmt.Sprintf("%s/%s/%s", m.publicBase, m.bucket, objectName),
		PublicID: objectName,
	}, nil
}
