package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/espresso-tracker/internal/middlewares"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

// newAuthedRequest builds a request as the router would hand it to a handler:
// acting user in the context and, when id is non-empty, the {id} URL param.
func newAuthedRequest(method, target, body string, user *models.User, id string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)

	ctx := req.Context()
	if user != nil {
		ctx = middlewares.WithUser(ctx, user)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}
