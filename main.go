package main

import (
	"WProject/config"
	"WProject/logger"
	relay "WProject/service/relay"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.TokenEnabled() {
		logger.Info("wormhole token auth enabled")
	} else {
		logger.Warn("wormhole token auth disabled")
	}

	s := relay.NewServer(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	s.RegisterRoutes(r)

	logger.Infof("wormhole listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatalf("HTTP server failed: %v", err)
	}
}
