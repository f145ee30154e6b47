package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/discord"
	"dashboard-srv/pkg/errors"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/scope"
)

type Handler struct {
	sessions dashboard.UseCase
	logger   log.Logger
	discord  discord.IDiscord
}

func New(sessions dashboard.UseCase, logger log.Logger, d discord.IDiscord) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
		discord:  d,
	}
}

func (h *Handler) session(c *gin.Context) (*dashboard.Session, model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return nil, model.Scope{}, errors.NewUnauthorizedHTTPError()
	}
	s, err := h.sessions.Session(c.Request.Context(), sc)
	if err != nil {
		if err == dashboard.ErrSessionLimitReached {
			return nil, model.Scope{}, errors.NewHTTPError(50301, "Session limit reached", http.StatusServiceUnavailable)
		}
		return nil, model.Scope{}, err
	}
	return s, sc, nil
}
