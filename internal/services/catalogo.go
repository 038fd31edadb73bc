package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"graca_presentes_backend/internal/models"
)

const (
	produtosCacheKey = "produtos:all"
	produtosCacheTTL = 10 * time.Minute

	// Limite por round-trip no banco. O driver não impõe timeout próprio,
	// então o corte fica aqui, na borda do serviço.
	opTimeout = 10 * time.Second
)

// ErrProdutoNaoEncontrado indica que o update de imagem não casou com nenhum
// produto (MatchedCount == 0) ou que o id informado nem é um ObjectID.
var ErrProdutoNaoEncontrado = errors.New("produto não encontrado")

// Catalogo implementa criação, listagem e anexação de imagem de produtos.
type Catalogo struct {
	col   *mongo.Collection
	cache *redis.Client // opcional; nil desliga o cache de listagem
}

func NewCatalogo(col *mongo.Collection, cache *redis.Client) *Catalogo {
	return &Catalogo{col: col, cache: cache}
}

// Create normaliza os defaults, carimba o createdAt do servidor (o do cliente
// é ignorado) e insere o produto. Nenhuma validação além disso: nome e preço
// ausentes são persistidos como vieram.
func (s *Catalogo) Create(ctx context.Context, p models.Produto) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	p.ID = primitive.NilObjectID
	p.AplicarPadroes()
	p.CreatedAt = time.Now()

	res, err := s.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.invalidarCache()
	return res.InsertedID.(primitive.ObjectID), nil
}

// List devolve todos os produtos, mais recentes primeiro. O _id vira "id" na
// serialização — projeção de leitura via tag, nada é gravado duplicado.
func (s *Catalogo) List(ctx context.Context) ([]models.Produto, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if s.cache != nil {
		if val, err := s.cache.Get(ctx, produtosCacheKey).Result(); err == nil && val != "" {
			var cached []models.Produto
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	produtos := []models.Produto{}
	if err := cursor.All(ctx, &produtos); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(produtos); err == nil {
			s.cache.Set(ctx, produtosCacheKey, data, produtosCacheTTL)
		}
	}

	return produtos, nil
}

// AttachImage grava a URL (e o public_id, quando houver) no produto indicado.
// Só esses campos mudam; o resto do documento fica intacto.
func (s *Catalogo) AttachImage(ctx context.Context, produtoID, imagemURL, publicID string) error {
	objID, err := primitive.ObjectIDFromHex(produtoID)
	if err != nil {
		return ErrProdutoNaoEncontrado
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{"imagem_url": imagemURL}
	if publicID != "" {
		set["public_id"] = publicID
	}

	res, err := s.col.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProdutoNaoEncontrado
	}

	s.invalidarCache()
	return nil
}

// Count conta os produtos cadastrados (usado pelo health check).
func (s *Catalogo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *Catalogo) invalidarCache() {
	if s.cache != nil {
		s.cache.Del(context.Background(), produtosCacheKey)
	}
}
