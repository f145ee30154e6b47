package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"dashboard-srv/config"
	"dashboard-srv/internal/dashboard"
	eventRedis "dashboard-srv/internal/event/delivery/redis"
	eventUC "dashboard-srv/internal/event/usecase"
	"dashboard-srv/internal/refresh"
	"dashboard-srv/pkg/discord"
	"dashboard-srv/pkg/log"
	pkgRedis "dashboard-srv/pkg/redis"
	"dashboard-srv/pkg/scope"
)

// HTTPServer wires the HTTP surface of the dashboard service.
// New() only assembles and validates dependencies; Run() (in
// httpserver.go) starts background services and serves.
type HTTPServer struct {
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string

	sessions dashboard.UseCase
	hub      *eventUC.Hub
	wsConfig config.WebSocketConfig

	// evictInterval is the period of the idle-session eviction loop;
	// zero disables it.
	evictInterval time.Duration
	evictStop     chan struct{}
	evictDone     chan struct{}

	// subscriber mirrors events across instances; nil when Redis is not
	// configured.
	subscriber *eventRedis.Subscriber
	// refresher simulates the periodic data refresh; nil when disabled.
	refresher refresh.Service

	jwtMgr  scope.Manager
	redis   pkgRedis.IRedis
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port     int
	Mode     string
	WSConfig config.WebSocketConfig

	Sessions      dashboard.UseCase
	EvictInterval time.Duration
	Hub           *eventUC.Hub
	Subscriber    *eventRedis.Subscriber
	Refresher     refresh.Service

	JWTManager scope.Manager
	Redis      pkgRedis.IRedis
	Discord    discord.IDiscord
}

// New creates an HTTPServer. No goroutines are started here.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:           gin.New(),
		logger:        logger,
		port:          cfg.Port,
		environment:   cfg.Mode,
		sessions:      cfg.Sessions,
		hub:           cfg.Hub,
		wsConfig:      cfg.WSConfig,
		evictInterval: cfg.EvictInterval,
		evictStop:     make(chan struct{}),
		evictDone:     make(chan struct{}),
		subscriber:    cfg.Subscriber,
		refresher:     cfg.Refresher,
		jwtMgr:        cfg.JWTManager,
		redis:         cfg.Redis,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.sessions == nil {
		return errors.New("session registry is required")
	}
	if s.hub == nil {
		return errors.New("event hub is required")
	}
	if s.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}
	return nil
}
