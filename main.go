package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/usamaikram-xs-00008/menu-qr-gen/configs"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/mailer"
	"github.com/usamaikram-xs-00008/menu-qr-gen/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect db failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedRoles(); err != nil {
		log.Fatalf("seed roles failed: %v", err)
	}
	if err := configs.SeedSuperAdmin(cfg); err != nil {
		log.Fatalf("seed super admin failed: %v", err)
	}

	// Mail
	var m mailer.Mailer = mailer.LogMailer{}
	if cfg.SMTPHost != "" {
		m = &mailer.SMTPMailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		}
	}

	// HTTP
	r := gin.Default()

	// Serve generated QR images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, cfg, m)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
