package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/pezeshkyar/checkup_backend/config"
	"github.com/pezeshkyar/checkup_backend/internal/api/http/handler"
	"github.com/pezeshkyar/checkup_backend/internal/api/http/middleware"
	"github.com/pezeshkyar/checkup_backend/internal/repo"
	"github.com/pezeshkyar/checkup_backend/internal/service/auth"
	"github.com/pezeshkyar/checkup_backend/internal/service/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/service/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/service/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/service/media"
	"github.com/pezeshkyar/checkup_backend/internal/service/patient"
	"github.com/pezeshkyar/checkup_backend/internal/service/question"
	"github.com/pezeshkyar/checkup_backend/internal/service/user"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
	pasetotoken "github.com/pezeshkyar/checkup_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client
	Auth       authorize.IAuthorization
	DB         *repo.Client
	UserSvc    user.Service
	AuthSvc    auth.Service
	PatientSvc patient.Service
	ClinicSvc  clinic.Service
	DoctorSvc  doctor.Service
	QuestionSvc question.Service
	CheckupSvc checkup.Service
	MediaSvc   media.Service
	PasetoMgr  *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	clinicCtx := middleware.ClinicContext(r.p.DB)
	clinicHeader := middleware.ClinicHeader(r.p.DB)

	// Permission helpers
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	requireSelf := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfPermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	clinicH := handler.NewClinicHandler(r.p.ClinicSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	questionH := handler.NewQuestionHandler(r.p.QuestionSvc, r.p.DoctorSvc)
	checkupH := handler.NewCheckupHandler(r.p.CheckupSvc)
	mediaH := handler.NewMediaHandler(r.p.MediaSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired)
	r.registerPatientRoutes(api, patientH, authRequired, requireSelf, requirePerm)
	r.registerClinicRoutes(api, clinicH, authRequired, clinicCtx, requirePerm)
	r.registerDoctorRoutes(api, doctorH, authRequired, requirePerm)
	r.registerQuestionRoutes(api, questionH, authRequired, clinicHeader, requirePerm)
	r.registerCheckupRoutes(api, checkupH, authRequired, clinicCtx, requirePerm, requireSelf)
	r.registerMediaRoutes(api, mediaH, authRequired, clinicCtx, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
