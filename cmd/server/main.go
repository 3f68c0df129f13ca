package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Shudderr/timesheet-parser/internal/api"
	"github.com/Shudderr/timesheet-parser/internal/config"
	"github.com/Shudderr/timesheet-parser/internal/storage"
)

func main() {
	cfg := config.LoadConfig()

	var store api.HistoryStore
	if cfg.DatabaseURL != "" {
		db, err := storage.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database could not connect %v", err)
		}
		defer db.Close()

		if err := db.Init(context.Background()); err != nil {
			log.Fatalf("database init failed %v", err)
		}
		store = db
	} else {
		log.Println("DATABASE_URL not set, parse history disabled")
	}

	handler := &api.Handler{
		Parser: &api.ParseService{OCRLanguage: cfg.OCRLanguage},
		Store:  store,
		Target: cfg.TargetName,
	}

	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Next()
	})

	handler.Register(r)

	log.Printf("server running on port %s\n", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
