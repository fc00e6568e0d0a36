package main

import (
	"log"
	"os"

	"promptlab/config"
	dbpkg "promptlab/db"
	"promptlab/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// =====================
// ENV esperadas
// =====================
//
// Providers
// - OPENAI_API_KEY                (chat padrão + DALL-E)
// - ANTHROPIC_API_KEY             (modelos claude-*)
// - OPENAI_BASE_URL               (opcional, testes)
// - ANTHROPIC_BASE_URL            (opcional, testes)
//
// Server
// - ADMIN_SECRET                  (fallback quando o config.json não define)
// - AUTOMIGRATE                   (=1 cria/atualiza as tabelas no boot)
//
// =====================

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente mesmo.
	_ = godotenv.Load()

	configPath := "config/config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg := config.Get(configPath)

	dbpkg.SetConfigurations(cfg)
	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("promptlab listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
