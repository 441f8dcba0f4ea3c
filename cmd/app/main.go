package main

import (
	"socialnet/internal/app"
	"socialnet/pkg/config"
	"socialnet/pkg/logger"
)

// @title           Socialnet API
// @version         1.0
// @description     Users, posts, comments, likes, follows and blocks.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == config.DefaultJWTSecret || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.NewWithLevel(cfg.LogLevel)

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error("Failed to initialize application: %v", err)
		panic(err)
	}

	if err := a.Run(); err != nil {
		log.Error("Server stopped with error: %v", err)
		panic(err)
	}
}
