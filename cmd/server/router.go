package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inkwell/inkwell-api/internal/api"
	"github.com/inkwell/inkwell-api/internal/api/middleware"
	"github.com/inkwell/inkwell-api/internal/platform/logger"
)

// requestLogger derives a request-scoped logger carrying the request id
// and stores it in the context for handlers and gates.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLog := log.With("request_id", chimiddleware.GetReqID(r.Context()))
			next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), reqLog)))
		})
	}
}

// byMethod dispatches to a per-method handler. It sits behind Allow,
// which has already rejected anything outside the map.
func byMethod(handlers map[string]middleware.Handler) middleware.Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		return handlers[r.Method](w, r)
	}
}

// setupRouter builds the full route table. Every API route is wrapped
// in the same gate chain, outermost first:
//
//	Translate(Allow(EnsureConnected(Authenticate?(ValidateBody?(handler)))))
//
// Method validation runs before the database gate so an unsupported
// method never triggers a connection attempt.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(app.logger))
	r.Use(middleware.Metrics)
	if app.config.Server.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(
			app.config.Server.RateLimitRPS,
			app.config.Server.RateLimitBurst,
		)
		r.Use(limiter.Handler)
	}

	v := middleware.NewValidator()

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.tokenService,
		app.passwordHasher,
		app.logger,
	)
	articleHandler := api.NewArticleHandler(app.articleStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.articleStore, app.logger)

	// connected wires the shared prefix of every chain.
	connected := func(methods []string, next middleware.Handler) http.HandlerFunc {
		return middleware.Translate(app.logger,
			middleware.Allow(methods,
				middleware.EnsureConnected(app.dbManager, next)))
	}
	authed := func(next middleware.Handler) middleware.Handler {
		return middleware.Authenticate(app.tokenService, app.userStore, next)
	}

	r.Handle("/api/auth/register", connected([]string{http.MethodPost},
		middleware.ValidateBody[api.RegisterRequest](v, authHandler.Register)))
	r.Handle("/api/auth/login", connected([]string{http.MethodPost},
		middleware.ValidateBody[api.LoginRequest](v, authHandler.Login)))

	r.Handle("/api/articles", connected(
		[]string{http.MethodGet, http.MethodPost},
		byMethod(map[string]middleware.Handler{
			http.MethodGet: articleHandler.List,
			http.MethodPost: authed(
				middleware.ValidateBody[api.ArticleCreateRequest](v, articleHandler.Create)),
		})))

	r.Handle("/api/articles/{slug}", connected(
		[]string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete},
		byMethod(map[string]middleware.Handler{
			http.MethodGet: articleHandler.Get,
			http.MethodPut: authed(
				middleware.ValidateBody[api.ArticleUpdateRequest](v, articleHandler.Update)),
			http.MethodPatch: authed(
				middleware.ValidateBody[api.ArticlePatchRequest](v, articleHandler.Patch)),
			http.MethodDelete: authed(articleHandler.Delete),
		})))

	r.Handle("/api/articles/{slug}/comments", connected([]string{http.MethodPost},
		authed(middleware.ValidateBody[api.CommentRequest](v, commentHandler.Create))))

	r.Handle("/api/articles/{slug}/comments/{id}", connected(
		[]string{http.MethodGet, http.MethodPut, http.MethodDelete},
		byMethod(map[string]middleware.Handler{
			http.MethodGet: commentHandler.Get,
			http.MethodPut: authed(
				middleware.ValidateBody[api.CommentRequest](v, commentHandler.Update)),
			http.MethodDelete: authed(commentHandler.Delete),
		})))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
