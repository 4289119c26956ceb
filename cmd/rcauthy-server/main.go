package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"rcauthy.net/rcauthy/core"
	"rcauthy.net/rcauthy/infrastructure/communication"
	"rcauthy.net/rcauthy/web/handlers"
)

// Dev-only default; override with RCAUTHY_SIGNING_SECRET.
const devSigningSecret = "IxrAjDoa2FqElO7IhrSrUJELhUckePEPVpaePlS/Xaw="

func main() {
	r := gin.Default()

	dbPath := os.Getenv("RCAUTHY_DB")
	if dbPath == "" {
		dbPath = "rcauthy.db"
	}
	fmt.Printf("using database: %s\n", dbPath)

	db, err := core.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := core.SeedEmployees(db); err != nil {
		log.Fatal(err)
	}

	base64Secret := os.Getenv("RCAUTHY_SIGNING_SECRET")
	if base64Secret == "" {
		base64Secret = devSigningSecret
	}
	signingKey, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		log.Fatal("Failed to decode signing secret:", err)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	h := &handlers.Handler{
		Svc:          core.NewService(db),
		SigningKey:   signingKey,
		Base64Secret: base64Secret,
		TokenTTL:     8 * time.Hour,
		Notifier:     communication.ConnectSlack(),
	}
	h.Register(r)

	addr := os.Getenv("RCAUTHY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
