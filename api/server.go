package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/service"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/datazip-inc/rogue-records/utils/safego"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

const shutdownTimeout = 10 * time.Second

// Server is the web dashboard over a Service. client may be nil, in which
// case upload requests are refused.
type Server struct {
	service *service.Service
	client  *destination.Client
	router  *chi.Mux
}

func NewServer(svc *service.Service, client *destination.Client) *Server {
	s := &Server{service: svc, client: client, router: chi.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.health)
	r.Handle("/metrics", s.service.Metrics().Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Post("/generate", s.generate)
		r.Post("/clean", s.clean)
		r.Post("/upload", s.upload)
		r.Get("/files", s.files)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debugf("%s %s %d %s [%s]", r.Method, r.URL.Path, ww.Status(), time.Since(started), middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := safego.Go(func() error {
		logger.Infof("dashboard listening on %s", addr)
		return server.ListenAndServe()
	})

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down dashboard")
		return server.Shutdown(shutdownCtx)
	}
}
