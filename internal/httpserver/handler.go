package httpserver

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	agendaHTTP "dashboard-srv/internal/agenda/delivery/http"
	alertHTTP "dashboard-srv/internal/alert/delivery/http"
	chartHTTP "dashboard-srv/internal/chart/delivery/http"
	dashboardHTTP "dashboard-srv/internal/dashboard/delivery/http"
	"dashboard-srv/internal/event/delivery/ws"
	"dashboard-srv/internal/middleware"
	modalHTTP "dashboard-srv/internal/modal/delivery/http"
	noteHTTP "dashboard-srv/internal/note/delivery/http"

	// Executes the init function in docs.go which registers the Swagger spec.
	_ "dashboard-srv/docs"
)

const Api = "/api/v1"

func (s *HTTPServer) mapHandlers() error {
	s.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	s.gin.Use(middleware.Recovery(s.logger, s.discord))

	// Health check endpoints (no auth required)
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readyCheck)
	s.gin.GET("/live", s.liveCheck)

	// Swagger UI
	s.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Event stream. Auth happens inside the handler via query token.
	wsHandler := ws.New(s.hub, s.jwtMgr, s.logger, ws.Config{
		PingInterval:    s.wsConfig.PingInterval,
		PongWait:        s.wsConfig.PongWait,
		WriteWait:       s.wsConfig.WriteWait,
		MaxMessageSize:  s.wsConfig.MaxMessageSize,
		ReadBufferSize:  s.wsConfig.ReadBufferSize,
		WriteBufferSize: s.wsConfig.WriteBufferSize,
	})
	wsHandler.RegisterRoutes(s.gin)

	mw := middleware.New(s.logger, s.jwtMgr)
	api := s.gin.Group(Api)

	modalHTTP.New(s.sessions, s.logger, s.discord).RegisterRoutes(api, mw)
	alertHTTP.New(s.sessions, s.logger, s.discord).RegisterRoutes(api, mw)
	noteHTTP.New(s.sessions, s.logger, s.discord).RegisterRoutes(api, mw)
	chartHTTP.New(s.sessions, s.logger, s.discord).RegisterRoutes(api, mw)
	agendaHTTP.New(s.sessions, s.logger, s.discord).RegisterRoutes(api, mw)
	dashboardHTTP.New(s.sessions, s.logger, s.discord).RegisterRoutes(api, mw)

	return nil
}
