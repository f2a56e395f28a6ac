package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/adapters/rest"
	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/core"
	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/pkg/res"
)

func NewListTasksHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListTasks(ctx)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, rest.NewTaskList(items), http.StatusOK)
	}
}

func NewListTasksByStatusHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statusID, err := strconv.ParseInt(r.PathValue("statusId"), 10, 64)
		if err != nil {
			res.Error(w, "invalid status id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		// zero matches is an empty array, not an error
		items, err := svc.ListTasksByStatus(ctx, statusID)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, rest.NewTaskList(items), http.StatusOK)
	}
}

func NewGetTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || id <= 0 {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		d, err := svc.GetTaskDetails(ctx, id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, rest.NewTaskDetails(d), http.StatusOK)
	}
}

func NewCreateTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if !in.Complete() {
			res.Error(w, "Todos os campos obrigatórios devem ser informados", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		id, err := svc.CreateTask(ctx, in.Task())
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, rest.CreatedOut{ID: id, Message: "Tarefa criada com sucesso"}, http.StatusCreated)
	}
}

func NewDeleteTaskHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || id <= 0 {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := svc.DeleteTask(ctx, id); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, rest.MessageOut{Message: fmt.Sprintf("Tarefa %d deletada com sucesso", id)}, http.StatusOK)
	}
}
