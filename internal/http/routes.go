package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/observability/statsd"
	"github.com/taskhive/taskhive-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth     AuthServiceInterface
	Users    *service.UserService
	Labels   *service.LabelService
	Projects *service.ProjectService
	Tasks    *service.TaskService

	// Metrics is optional. When set, request metrics are emitted for
	// every handled request.
	Metrics statsd.Sink

	Logger *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authHandlers := &AuthHandlers{Svc: services.Auth, Logger: logger}
	userHandlers := &UserHandlers{Svc: services.Users}
	labelHandlers := &LabelHandlers{Svc: services.Labels}
	projectHandlers := &ProjectHandlers{Svc: services.Projects}
	taskHandlers := &TaskHandlers{Svc: services.Tasks}

	registerAuthRoutes(mux, authHandlers, services.Auth)
	registerLabelRoutes(mux, labelHandlers, services.Auth)
	registerUserRoutes(mux, userHandlers, services.Auth)
	registerProjectRoutes(mux, projectHandlers, services.Auth)
	registerTaskRoutes(mux, taskHandlers, services.Auth)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var h http.Handler = mux
	if services.Metrics != nil {
		h = Metrics(services.Metrics)(h)
	}
	return Recover(logger)(Logging(logger)(h))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, auth GuardService) {
	mux.HandleFunc("POST /auth/google", h.GoogleSignIn)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.Handle("GET /auth/me", RequireAuth(auth)(http.HandlerFunc(h.Me)))
}

// registerLabelRoutes wires the label catalog: public reads, admin writes.
func registerLabelRoutes(mux *http.ServeMux, h *LabelHandlers, auth GuardService) {
	adminOnly := RequireRole(auth, domainauth.RoleAdmin)

	mux.HandleFunc("GET /labels", h.List)
	mux.HandleFunc("GET /labels/{id}", h.GetByID)
	mux.Handle("POST /labels", adminOnly(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /labels/{id}", adminOnly(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /labels/{id}", adminOnly(http.HandlerFunc(h.Delete)))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers, auth GuardService) {
	wrap := RequireAuth(auth)

	mux.Handle("GET /users/profile", wrap(http.HandlerFunc(h.Profile)))
	mux.Handle("PUT /users/profile", wrap(http.HandlerFunc(h.UpdateProfile)))
	mux.Handle("GET /users/login-history", wrap(http.HandlerFunc(h.LoginHistory)))
}

func registerProjectRoutes(mux *http.ServeMux, h *ProjectHandlers, auth GuardService) {
	registerCRUD(mux, crudRoutes{
		Base:       "/projects",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.GetByID,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: RequireAuth(auth),
	})
}

func registerTaskRoutes(mux *http.ServeMux, h *TaskHandlers, auth GuardService) {
	wrap := RequireAuth(auth)

	mux.Handle("GET /projects/{id}/tasks", wrap(http.HandlerFunc(h.ListByProject)))
	mux.Handle("POST /projects/{id}/tasks", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET /tasks/{id}", wrap(http.HandlerFunc(h.GetByID)))
	mux.Handle("PUT /tasks/{id}", wrap(http.HandlerFunc(h.Update)))
	mux.Handle("PUT /tasks/{id}/move", wrap(http.HandlerFunc(h.Move)))
	mux.Handle("DELETE /tasks/{id}", wrap(http.HandlerFunc(h.Delete)))
}

// registerCRUD registers standard CRUD routes for a resource base path, applying mw if non-nil.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
