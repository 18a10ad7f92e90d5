// cmd/songify/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"songify/config"
	"songify/internal/api"
	"songify/internal/api/handlers/songs"
	"songify/internal/lib/logger/utils"
	"songify/internal/metrics"
	"songify/internal/models"
	"songify/internal/service"
	"songify/internal/storage/memory"
)

// @title Songify API
// @version 1.0
// @description In-memory song catalogue with full CRUD.

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Logger.Sync()

	utils.Logger.Info("Starting Songify API")
	utils.Logger.Debug("Configuration loaded", zap.Any("config", cfg))

	var seed map[int]models.Song
	if cfg.SeedSongs {
		seed = memory.DefaultSongs()
	}
	store := memory.NewStorage(cfg.IDPolicy, seed)
	songService := service.NewSongService(store)
	songHandlers := songs.NewSongHandlers(songService)
	m := metrics.New(func() int { return songService.CountSongs(context.Background()) })

	router := api.NewRouter(songHandlers, m)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		utils.Logger.Info("Server starting", zap.String("address", server.Addr), zap.String("id_policy", string(cfg.IDPolicy)))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	utils.Logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
