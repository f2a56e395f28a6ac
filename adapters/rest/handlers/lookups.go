package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/adapters/rest"
	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/core"
	"github.com/Vibranovski/Back-end-MVP-1-Eng-Software/pkg/res"
)

func NewListCategoriesHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListCategories(ctx)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, rest.NewCategoryList(items), http.StatusOK)
	}
}

func NewListPrioritiesHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListPriorities(ctx)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, rest.NewPriorityList(items), http.StatusOK)
	}
}

func NewListStatusesHandler(_ *slog.Logger, svc *core.Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListStatuses(ctx)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, rest.NewStatusList(items), http.StatusOK)
	}
}
