package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run starts the HTTP server and all background services, then blocks
// until a shutdown signal arrives:
//  1. Map HTTP handlers and routes
//  2. Start the event hub (and the Redis subscriber when configured)
//  3. Start the refresh simulator and the idle-session eviction loop
//  4. Serve HTTP, wait for SIGINT/SIGTERM, shut everything down
func (s *HTTPServer) Run() error {
	ctx := context.Background()

	if err := s.mapHandlers(); err != nil {
		s.logger.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	go s.hub.Run()
	s.logger.Info(ctx, "Event hub started")

	if s.subscriber != nil {
		if err := s.subscriber.Start(); err != nil {
			s.logger.Fatalf(ctx, "Failed to start Redis subscriber: %v", err)
			return err
		}
		s.logger.Info(ctx, "Redis event subscriber started")
	}

	if s.refresher != nil {
		s.refresher.Start()
		s.logger.Info(ctx, "Refresh simulator started")
	}

	if s.evictInterval > 0 {
		go s.evictLoop()
		s.logger.Infof(ctx, "Session eviction loop started (every %s)", s.evictInterval)
	} else {
		close(s.evictDone)
	}

	go func() {
		if err := s.gin.Run(fmt.Sprintf(":%d", s.port)); err != nil {
			s.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	s.logger.Infof(ctx, "HTTP server started on port: %d", s.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s.logger.Info(ctx, <-ch)
	s.logger.Info(ctx, "Stopping dashboard service...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if s.refresher != nil {
		if err := s.refresher.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorf(ctx, "Refresh simulator shutdown error: %v", err)
		}
	}
	close(s.evictStop)
	select {
	case <-s.evictDone:
	case <-shutdownCtx.Done():
		s.logger.Error(ctx, "Session eviction loop shutdown timed out")
	}
	if err := s.hub.Shutdown(shutdownCtx); err != nil {
		s.logger.Errorf(ctx, "Event hub shutdown error: %v", err)
	}
	if s.subscriber != nil {
		if err := s.subscriber.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorf(ctx, "Redis subscriber shutdown error: %v", err)
		}
	}

	return nil
}

// evictLoop periodically drops sessions idle past the configured timeout
// so the registry never fills up with abandoned users.
func (s *HTTPServer) evictLoop() {
	defer close(s.evictDone)
	ticker := time.NewTicker(s.evictInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sessions.EvictIdle(context.Background(), time.Now())
		case <-s.evictStop:
			return
		}
	}
}
