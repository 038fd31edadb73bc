package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"graca_presentes_backend/internal/config"
)

// Store é o handle único do MongoDB, criado uma vez no startup e passado por
// referência para quem precisar dele. Nada de singleton de pacote: quem não
// recebeu o Store não fala com o banco.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New conecta ao MongoDB e valida a conexão com um ping. Uma única tentativa:
// se falhar, o chamador deve abortar o processo (fail-fast — o serviço é
// inútil sem o banco).
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("erro ao verificar a conexão com o MongoDB: %w", err)
	}

	log.Println("✅ Conectado ao MongoDB com sucesso!")

	return &Store{
		client: client,
		db:     client.Database(cfg.MongoDB),
	}, nil
}

// Produtos retorna a collection de produtos.
func (s *Store) Produtos() *mongo.Collection {
	return s.db.Collection("produtos")
}

// Pedidos retorna a collection de pedidos.
func (s *Store) Pedidos() *mongo.Collection {
	return s.db.Collection("pedidos")
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// NewRedis abre o cliente Redis usado como cache de listagem. O cache é
// opcional: sem REDIS_HOST o serviço roda sem cache, sem abortar o startup.
func NewRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.RedisHost == "" {
		log.Println("⚠️  Redis não configurado — listagens sem cache")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️  Redis inacessível — listagens sem cache:", err)
		return nil
	}

	log.Println("✅ Conectado ao Redis")
	return client
}
