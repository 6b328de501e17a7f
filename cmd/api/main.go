package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/glowdesk/salon-api/internal/config"
	dbpkg "github.com/glowdesk/salon-api/internal/db"
	"github.com/glowdesk/salon-api/internal/notify"
	"github.com/glowdesk/salon-api/internal/routes"
)

func main() {

	// A missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	reminders := notify.NewReminderService(db, cfg)
	reminders.StartScheduler()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
