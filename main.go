package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"linguaai/flashcards-api/app"
	"linguaai/flashcards-api/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrNoSecret) {
			fmt.Fprintf(os.Stderr, "No JWT secret set. Set SECRET_KEY or jwt.secret, for example:\n\n\tSECRET_KEY=%s\n\n", config.GenSecret())
			os.Exit(1)
		}
		panic(err)
	}

	if err := app.MakeLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	d, err := app.NewDeps(cfg)
	if err != nil {
		zap.L().Fatal("Failed to set up dependencies", zap.Error(err))
	}

	router := app.NewRouter(d)

	addr := ":" + strconv.Itoa(cfg.Host.Port)
	zap.L().Info("Server starting", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		zap.L().Fatal("Server stopped", zap.Error(err))
	}
}
