package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Backends de imagem suportados. A escolha é feita uma única vez no startup,
// nunca por requisição.
const (
	ImageBackendLocal = "local"
	ImageBackendMinio = "minio"
)

type Config struct {
	MongoURI string
	MongoDB  string
	Port     string

	ImageBackend string
	UploadsDir   string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string

	RedisHost     string
	RedisPassword string

	WhatsAppPhone string
}

// Load carrega o .env (se existir) e monta a configuração a partir das
// variáveis de ambiente. MONGODB_URI é obrigatória — sem banco o serviço
// não tem razão de existir, então o startup aborta.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Nenhum arquivo .env encontrado — usando as variáveis de ambiente do sistema")
	} else {
		log.Println("✅ Arquivo .env carregado com sucesso")
	}

	cfg := &Config{
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDB:        getenvDefault("MONGODB_DB", "graca_presentes"),
		Port:           getenvDefault("PORT", "8000"),
		ImageBackend:   getenvDefault("IMAGE_BACKEND", ImageBackendLocal),
		UploadsDir:     getenvDefault("UPLOADS_DIR", "uploads"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		MinioPublicURL: os.Getenv("MINIO_PUBLIC_URL"),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		WhatsAppPhone:  getenvDefault("WHATSAPP_PHONE", "5519987790800"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("❌ A variável de ambiente MONGODB_URI não está definida. Crie um arquivo .env.")
	}

	return cfg
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
