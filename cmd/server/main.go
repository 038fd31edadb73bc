package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"graca_presentes_backend/internal/config"
	"graca_presentes_backend/internal/database"
	"graca_presentes_backend/internal/handlers"
	"graca_presentes_backend/internal/routes"
	"graca_presentes_backend/internal/services"
	"graca_presentes_backend/internal/storage"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Fase 1: adquirir recursos. Falha aqui é fatal — o serviço não sobe
	// sem banco. Não há retry: uma tentativa define sucesso ou aborto.
	store, err := database.New(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Erro ao conectar ao MongoDB: %v", err)
	}

	cache := database.NewRedis(ctx, cfg)
	imagens := initImageStore(ctx, cfg)

	h := &handlers.Handler{
		Catalogo: services.NewCatalogo(store.Produtos(), cache),
		Pedidos:  services.NewPedidos(store.Pedidos(), cfg.WhatsAppPhone),
		Imagens:  imagens,
	}

	// Fase 2: servir.
	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r, h, cfg.UploadsDir)

	log.Println("🚀 GRAÇA PRESENTES - Servidor iniciado!")
	log.Println("📍 URL: http://localhost:" + cfg.Port)
	log.Println("💾 Banco de dados: MongoDB")
	log.Println("🖼️  Backend de imagens:", cfg.ImageBackend)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Falha ao iniciar o servidor: %v", err)
	}
}

// initImageStore escolhe o backend de imagens uma única vez, no startup.
// Backend remoto sem credenciais não derruba o processo: o sentinela
// Indisponivel faz cada upload responder 503 até o deploy ser corrigido.
func initImageStore(ctx context.Context, cfg *config.Config) storage.ImageStore {
	switch cfg.ImageBackend {
	case config.ImageBackendMinio:
		m, err := storage.NewMinio(ctx, cfg)
		if err != nil {
			log.Println("⚠️  Backend remoto de imagens indisponível:", err)
			return storage.Indisponivel{}
		}
		return m
	default:
		l, err := storage.NewLocal(cfg.UploadsDir)
		if err != nil {
			log.Fatalf("❌ Erro ao preparar a pasta de uploads: %v", err)
		}
		return l
	}
}
