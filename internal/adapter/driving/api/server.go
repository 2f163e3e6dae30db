package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/diillson/agent-pricing-factory/internal/application/usecase"
	"github.com/diillson/agent-pricing-factory/internal/domain/repository"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
)

const maxBodyBytes = 1 << 20

// Server expõe os cálculos via HTTP. Cada requisição recebe um store novo,
// então nada do que um cliente envia afeta outro.
type Server struct {
	newStore func() repository.ParameterStore
	console  types.ConsoleInterface
}

// NewServer cria o servidor HTTP.
func NewServer(newStore func() repository.ParameterStore, console types.ConsoleInterface) *Server {
	return &Server{newStore: newStore, console: console}
}

// Routes monta o router chi com todas as rotas da API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/defaults", s.handleDefaults)
		r.Post("/tco", compute(s, usecase.ComputeTCO))
		r.Post("/simulation", compute(s, usecase.ComputeSimulation))
		r.Post("/efficiency", compute(s, usecase.ComputeEfficiency))
		r.Post("/models", compute(s, usecase.ComputeModels))
	})
	return r
}

// ListenAndServe atende em addr até o contexto ser cancelado.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.console.LogInfo("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.console.LogInfo("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	namespace := r.URL.Query().Get("namespace")
	writeJSON(w, http.StatusOK, s.newStore().Describe(namespace))
}

// compute aplica o corpo da requisição (um perfil JSON plano, qualquer
// namespace) sobre os padrões e responde com o resultado do cálculo.
func compute[T any](s *Server, run func(repository.ParameterStore) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.newStore()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if len(body) > 0 {
			if _, err := store.Import(body, ""); err != nil {
				writeError(w, statusFor(err), err)
				return
			}
		}

		result, err := run(store)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrMalformedProfile):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUnknownParameter), errors.Is(err, types.ErrInvalidParameters):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
