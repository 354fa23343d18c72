package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pezeshkyar/checkup_backend/internal/api/http/handler"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
)

func (r *Router) registerCheckupRoutes(
	api fiber.Router,
	h *handler.CheckupHandler,
	authRequired fiber.Handler,
	clinicCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Template authoring lives under the clinic it belongs to
	clinics := api.Group("/clinics/:id", authRequired, clinicCtx)
	clinics.Post("/checkups", requirePerm(authorize.ResourceClinicCheckup, authorize.ActionCreate), h.CreateTemplate)

	// Template catalogue: browsing is open to any signed-in user
	templates := api.Group("/checkup-templates", authRequired)
	templates.Get("/", h.ListTemplates)
	templates.Get("/:id", h.GetTemplate)
	templates.Patch("/:id", requirePerm(authorize.ResourceClinicCheckup, authorize.ActionUpdate), h.UpdateTemplate)
	templates.Delete("/:id", requirePerm(authorize.ResourceClinicCheckup, authorize.ActionDelete), h.DeleteTemplate)

	// Analysis authoring
	templates.Get("/:id/analyzes", requirePerm(authorize.ResourceAnalysis, authorize.ActionRead), h.ListAnalyzes)
	templates.Post("/:id/analyzes", requirePerm(authorize.ResourceAnalysis, authorize.ActionCreate), h.CreateAnalyze)
	templates.Delete("/:id/analyzes/:aid", requirePerm(authorize.ResourceAnalysis, authorize.ActionDelete), h.DeleteAnalyze)

	analyzes := api.Group("/analyzes", authRequired)
	analyzes.Post("/:id/interpretations", requirePerm(authorize.ResourceAnalysis, authorize.ActionUpdate), h.AddInterpretation)

	interpretations := api.Group("/interpretations", authRequired)
	interpretations.Post("/:id/suggestions", requirePerm(authorize.ResourceSuggestion, authorize.ActionCreate), h.AddSuggestion)

	// Sessions: self domain covers the patient and their supervisors
	checkups := api.Group("/checkups", authRequired)
	checkups.Get("/", requireSelf(authorize.ResourceCheckup, authorize.ActionList), h.List)
	checkups.Post("/", requireSelf(authorize.ResourceCheckup, authorize.ActionCreate), h.Start)
	checkups.Get("/:id", requireSelf(authorize.ResourceCheckup, authorize.ActionRead), h.Get)
	checkups.Post("/:id/answers", requireSelf(authorize.ResourceCheckup, authorize.ActionExecute), h.AddAnswers)
	checkups.Post("/:id/complete", requireSelf(authorize.ResourceCheckup, authorize.ActionExecute), h.Complete)
	checkups.Get("/:id/result", requireSelf(authorize.ResourceCheckup, authorize.ActionRead), h.Result)
}
