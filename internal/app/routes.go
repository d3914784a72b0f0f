package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/auth/login"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/auth/refresh"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/auth/register"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/auth/token"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/magazine/magazinecreate"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/magazine/magazinelist"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/magazine/magazineread"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/magazine/magazineremove"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/magazine/magazineupdate"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/plan/plancreate"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/plan/planlist"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/plan/planread"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/plan/planremove"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/plan/planupdate"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/subscription/create"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/subscription/list"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/subscription/read"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/subscription/remove"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/subscription/update"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/user/deactivate"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/user/me"
	"github.com/eroshevich/magazine-subscription-service/internal/http/handlers/user/resetpassword"
	"github.com/eroshevich/magazine-subscription-service/internal/http/middlewarectx"
	"github.com/eroshevich/magazine-subscription-service/internal/services"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *services.AuthService,
	magazineService *services.MagazineService,
	planService *services.PlanService,
	subscriptionService *services.SubscriptionService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/users/register", register.New(logger, authService).ServeHTTP)
	r.Post("/users/login", login.New(logger, authService).ServeHTTP)
	r.Post("/users/token/refresh", refresh.New(logger, authService).ServeHTTP)
	r.Post("/users/reset-password", resetpassword.New(logger, authService).ServeHTTP)
	r.Post("/token/", token.New(logger, authService).ServeHTTP)

	r.Route("/magazines", func(r chi.Router) {
		r.Get("/", magazinelist.New(logger, magazineService).ServeHTTP)
		r.Post("/", magazinecreate.New(logger, magazineService).ServeHTTP)
		r.Get("/{id}", magazineread.New(logger, magazineService).ServeHTTP)
		r.Put("/{id}", magazineupdate.New(logger, magazineService).ServeHTTP)
		r.Delete("/{id}", magazineremove.New(logger, magazineService).ServeHTTP)
	})

	r.Route("/plans", func(r chi.Router) {
		r.Get("/", planlist.New(logger, planService).ServeHTTP)
		r.Post("/", plancreate.New(logger, planService).ServeHTTP)
		r.Get("/{id}", planread.New(logger, planService).ServeHTTP)
		r.Put("/{id}", planupdate.New(logger, planService).ServeHTTP)
		r.Delete("/{id}", planremove.New(logger, planService).ServeHTTP)
	})

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/users/me", me.New(logger, authService).ServeHTTP)
		r.Delete("/users/deactivate/{username}", deactivate.New(logger, authService).ServeHTTP)
		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", list.New(logger, subscriptionService).ServeHTTP)
			r.Post("/", create.New(logger, subscriptionService).ServeHTTP)
			r.Get("/{id}", read.New(logger, subscriptionService).ServeHTTP)
			r.Put("/{id}", update.New(logger, subscriptionService).ServeHTTP)
			r.Delete("/{id}", remove.New(logger, subscriptionService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
