package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/core"
)

// Register wires every board route onto the mux and returns the handler the
// server should run, with the CORS wrapper applied.
func Register(mux *http.ServeMux, log *slog.Logger, svc *core.Service, timeout time.Duration) http.Handler {
	// ping
	mux.Handle("GET /ping", NewPingHandler(log, svc, timeout))

	// login
	mux.Handle("POST /login", NewLoginHandler(log, svc, timeout))

	// lookups
	mux.Handle("GET /categoria", NewListCategoriesHandler(log, svc, timeout))
	mux.Handle("GET /prioridades", NewListPrioritiesHandler(log, svc, timeout))
	mux.Handle("GET /status", NewListStatusesHandler(log, svc, timeout))

	// tasks
	mux.Handle("GET /tarefas", NewListTasksHandler(log, svc, timeout))
	mux.Handle("GET /tarefas/status/{statusId}", NewListTasksByStatusHandler(log, svc, timeout))
	mux.Handle("GET /tarefas/{id}", NewGetTaskHandler(log, svc, timeout))
	mux.Handle("POST /tarefas", NewCreateTaskHandler(log, svc, timeout))
	mux.Handle("DELETE /tarefas/{id}", NewDeleteTaskHandler(log, svc, timeout))

	return withCORS(mux)
}

// withCORS mirrors the permissive credentialed policy the board's web
// client expects: echo the origin, allow credentials, short-circuit
// preflights.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
