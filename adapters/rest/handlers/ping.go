package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/core"
	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/pkg/res"
)

func NewPingHandler(log *slog.Logger, p core.Pinger, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			log.Warn("ping failed", "error", err)
			res.Json(w, map[string]string{"db": "down"}, http.StatusServiceUnavailable)
			return
		}
		res.Json(w, map[string]string{"db": "ok"}, http.StatusOK)
	}
}
