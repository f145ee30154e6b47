package main

import (
	"context"
	"fmt"

	"dashboard-srv/config"
	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/dashboard"
	dashboardUC "dashboard-srv/internal/dashboard/usecase"
	"dashboard-srv/internal/event"
	eventRedis "dashboard-srv/internal/event/delivery/redis"
	eventUC "dashboard-srv/internal/event/usecase"
	"dashboard-srv/internal/httpserver"
	"dashboard-srv/internal/refresh"
	refreshUC "dashboard-srv/internal/refresh/usecase"
	"dashboard-srv/pkg/discord"
	"dashboard-srv/pkg/log"
	pkgRedis "dashboard-srv/pkg/redis"
	"dashboard-srv/pkg/scope"
)

// @title Dashboard Service API
// @description Per-user dashboard state service with a WebSocket event stream.
// @version 1.0
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	jwtManager, err := scope.New(cfg.JWT.SecretKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	discordClient, err := discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Discord: ", err)
		return
	}

	// The hub fans events out to this instance's WebSocket clients.
	hub := eventUC.NewHub(logger, cfg.WebSocket.MaxConnections)

	// With Redis configured, events also cross instances: stores publish
	// to Redis, every instance's subscriber feeds its own hub. Without
	// it, stores publish straight to the local hub.
	var (
		redisClient pkgRedis.IRedis
		subscriber  *eventRedis.Subscriber
	)
	var publisher event.Publisher = hub
	if cfg.Redis.Host != "" {
		redisClient, err = pkgRedis.New(pkgRedis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer redisClient.Close()
		logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

		publisher = eventRedis.NewPublisher(redisClient, logger)
		subscriber = eventRedis.NewSubscriber(redisClient, hub, logger)
	}

	sessions, err := dashboardUC.New(logger, dashboard.Config{
		MaxAlerts:          cfg.Dashboard.MaxAlerts,
		MaxNotes:           cfg.Dashboard.MaxNotes,
		MaxNoteLength:      cfg.Dashboard.MaxNoteLength,
		ExclusiveModals:    cfg.Dashboard.ExclusiveModals,
		MaxSessions:        cfg.Dashboard.MaxSessions,
		SessionIdleTimeout: cfg.Dashboard.SessionIdleTimeout,
	}, publisher)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session registry: ", err)
		return
	}

	var refresher refresh.Service
	if cfg.Refresh.Enabled {
		refresher, err = refreshUC.New(logger, refresh.Config{
			Enabled:  cfg.Refresh.Enabled,
			Interval: cfg.Refresh.Interval,
		}, func(tickCtx context.Context, input alert.CreateInput) {
			sessions.ForEachSession(func(s *dashboard.Session) {
				if _, err := s.Alerts.Add(tickCtx, input); err != nil {
					logger.Warnf(tickCtx, "refresh: add alert for user %s: %v", s.UserID, err)
				}
			})
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize refresh simulator: ", err)
			return
		}
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:     cfg.HTTPServer.Port,
		Mode:     cfg.HTTPServer.Mode,
		WSConfig: cfg.WebSocket,

		Sessions:      sessions,
		EvictInterval: cfg.Dashboard.SessionEvictInterval,
		Hub:           hub,
		Subscriber:    subscriber,
		Refresher:     refresher,

		JWTManager: jwtManager,
		Redis:      redisClient,
		Discord:    discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
