package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/adapters/rest"
	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/core"
	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/pkg/res"
)

func NewLoginHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.LoginIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "Informe usuario e senha", http.StatusBadRequest)
			return
		}

		if in.Usuario == "" || in.Senha == "" {
			res.Error(w, "Informe usuario e senha", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		u, err := svc.Login(ctx, in.Usuario, in.Senha)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, rest.NewLogin(u), http.StatusOK)
	}
}
