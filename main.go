package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()
	cfg := loadConfig()

	// Lightweight migrate command: `./kasku migrate` runs the schema
	// migration and exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		cfg.AutoMigrate = true
		initDB(cfg)
		fmt.Println("migration completed")
		return
	}

	initDB(cfg)

	r := gin.Default()
	setupRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
