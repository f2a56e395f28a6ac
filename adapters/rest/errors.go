package rest

import (
	"errors"
	"net/http"

	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/core"
	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/pkg/res"
)

// WriteErr maps core sentinels onto the wire contract. Store faults fall
// through to a bare 500.
func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidArgs):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrInvalidCredentials):
		res.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
	case errors.Is(err, core.ErrTaskNotFound):
		res.Error(w, "Tarefa não encontrada", http.StatusNotFound)
	default:
		res.Error(w, "internal error", http.StatusInternalServerError)
	}
}
