package http

//go:generate swag init -g router.go -d . --parseDependency -o ../../../api/console --ot go,json --packageName console

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cirrustranslate/console/internal/console/assist"
	"github.com/cirrustranslate/console/internal/console/domain"
	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/internal/console/store"
	"github.com/cirrustranslate/console/pkg/httpx"
	"github.com/cirrustranslate/console/pkg/jwtx"
	"github.com/cirrustranslate/console/pkg/slogx"

	_ "github.com/cirrustranslate/console/api/console" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	managerOnly = []string{string(domain.RoleManager)}
	staff       = []string{string(domain.RoleManager), string(domain.RoleTranslator)}
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	BootstrapService  *service.BootstrapService
	SessionService    *service.SessionService
	InviteService     *service.InviteService
	ClientService     *service.ClientService
	TranslatorService *service.TranslatorService
	ProjectService    *service.ProjectService
	WorkflowService   *service.WorkflowService
	DashboardService  *service.DashboardService
	SnapshotService   *service.SnapshotService
	AssistService     *assist.Service
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger, "/livez", "/readyz"),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerBootstrap()
	r.registerSession()
	r.registerInvites()
	r.registerRoster()
	r.registerProjects()
	r.registerAssist()
	r.registerSnapshot()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Cirrus Translate Console API
//	@version					0.1.0
//	@description				Back office for a translation agency: invitations, roster, project workflow and translation assist.
//	@contact.name				Cirrus Translate
//	@contact.url				https://github.com/cirrustranslate/console
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//	@host						localhost:8080
//	@BasePath					/
//	@schemes					http https
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token as "Bearer <token>"
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with bearer authentication, a role check and a per-account
// rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig, roles ...string) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	if len(roles) > 0 {
		mws = append(mws, httpx.RequireRole(roles...))
	}
	mws = append(mws, httpx.RateLimitByAccount(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerSystem() {
	// Monitoring may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	r.Mux.Handle("GET /v1/bootstrap",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	// One-time setup endpoint
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(http.HandlerFunc(h.HandleBootstrap),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService}

	// Sign-in attempts are limited by IP to slow password guessing
	r.Mux.Handle("POST /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /v1/me", r.secured(h.HandleMe, httpx.LenientLimit))
}

func (r *Router) registerInvites() {
	h := &InviteHandler{InviteService: r.InviteService}

	r.Mux.Handle("GET /v1/invites", r.secured(h.HandleList, httpx.ModerateLimit, managerOnly...))

	// Public: the token is the credential
	r.Mux.Handle("GET /v1/invites/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleResolve),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/{token}/redeem",
		httpx.Chain(http.HandlerFunc(h.HandleRedeem),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerRoster() {
	c := &ClientsHandler{ClientService: r.ClientService}
	r.Mux.Handle("POST /v1/clients", r.secured(c.HandleInvite, httpx.ModerateLimit, managerOnly...))
	r.Mux.Handle("GET /v1/clients", r.secured(c.HandleList, httpx.LenientLimit, managerOnly...))
	r.Mux.Handle("GET /v1/clients/{id}", r.secured(c.HandleGet, httpx.LenientLimit, managerOnly...))
	r.Mux.Handle("PUT /v1/clients/{id}/rates", r.secured(c.HandleUpdateRates, httpx.ModerateLimit, managerOnly...))

	t := &TranslatorsHandler{TranslatorService: r.TranslatorService}
	r.Mux.Handle("POST /v1/translators", r.secured(t.HandleInvite, httpx.ModerateLimit, managerOnly...))
	r.Mux.Handle("GET /v1/translators", r.secured(t.HandleList, httpx.LenientLimit, managerOnly...))
	r.Mux.Handle("GET /v1/translators/{id}", r.secured(t.HandleGet, httpx.LenientLimit, managerOnly...))
	r.Mux.Handle("PUT /v1/translators/{id}/rates", r.secured(t.HandleUpdateRates, httpx.ModerateLimit, managerOnly...))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{
		ProjectService:   r.ProjectService,
		WorkflowService:  r.WorkflowService,
		DashboardService: r.DashboardService,
	}

	r.Mux.Handle("POST /v1/projects", r.secured(h.HandleCreate, httpx.ModerateLimit, managerOnly...))
	r.Mux.Handle("GET /v1/projects", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/projects/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/projects/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, managerOnly...))
	r.Mux.Handle("PUT /v1/projects/{id}/translators",
		r.secured(h.HandleAssign, httpx.ModerateLimit, managerOnly...))

	// Workflow: managers and assigned translators
	r.Mux.Handle("PUT /v1/projects/{id}/status", r.secured(h.HandleSetStatus, httpx.ModerateLimit, staff...))
	r.Mux.Handle("POST /v1/projects/{id}/finalize", r.secured(h.HandleFinalize, httpx.ModerateLimit, staff...))
	r.Mux.Handle("GET /v1/workflow/steps", r.secured(h.HandleSteps, httpx.LenientLimit))

	r.Mux.Handle("GET /v1/dashboard", r.secured(h.HandleDashboard, httpx.LenientLimit, managerOnly...))
}

func (r *Router) registerAssist() {
	h := &AssistHandler{AssistService: r.AssistService}

	// Each call goes to a paid external API
	r.Mux.Handle("POST /v1/assist/draft", r.secured(h.HandleDraft, httpx.ModerateLimit, staff...))
	r.Mux.Handle("POST /v1/assist/review", r.secured(h.HandleReview, httpx.ModerateLimit, staff...))
}

func (r *Router) registerSnapshot() {
	h := &SnapshotHandler{
		SnapshotService:  r.SnapshotService,
		BootstrapService: r.BootstrapService,
	}

	r.Mux.Handle("GET /v1/snapshot", r.secured(h.HandleExport, httpx.StrictLimit, managerOnly...))
	// Import only works before setup, so it is guarded like bootstrap
	r.Mux.Handle("POST /v1/snapshot",
		httpx.Chain(http.HandlerFunc(h.HandleImport),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}
