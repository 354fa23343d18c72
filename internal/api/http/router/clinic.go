package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pezeshkyar/checkup_backend/internal/api/http/handler"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
)

func (r *Router) registerClinicRoutes(
	api fiber.Router,
	h *handler.ClinicHandler,
	authRequired fiber.Handler,
	clinicCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Groups (platform administration)
	groups := api.Group("/clinic-groups", authRequired)
	groups.Get("/", h.ListGroups)
	groups.Post("/", requirePerm(authorize.ResourceClinicGroup, authorize.ActionCreate), h.CreateGroup)
	groups.Delete("/:id", requirePerm(authorize.ResourceClinicGroup, authorize.ActionDelete), h.DeleteGroup)

	// Real clinics (external referral directory)
	realClinics := api.Group("/real-clinics", authRequired)
	realClinics.Get("/", h.ListRealClinics)
	realClinics.Post("/", requirePerm(authorize.ResourceRealClinic, authorize.ActionCreate), h.CreateRealClinic)
	realClinics.Delete("/:id", requirePerm(authorize.ResourceRealClinic, authorize.ActionDelete), h.DeleteRealClinic)

	// Clinics
	clinics := api.Group("/clinics")
	clinics.Get("/", h.List)
	clinics.Get("/:id", h.Get) // accepts a uuid or a slug
	clinics.Post("/", authRequired, h.Create)

	mgmt := clinics.Group("/:id", authRequired, clinicCtx)
	mgmt.Patch("/", requirePerm(authorize.ResourceClinic, authorize.ActionUpdate), h.Update)
	mgmt.Delete("/", requirePerm(authorize.ResourceClinic, authorize.ActionDelete), h.Delete)

	// Alerts
	mgmt.Get("/alerts", requirePerm(authorize.ResourceAlert, authorize.ActionRead), h.ListAlerts)
	mgmt.Post("/alerts", requirePerm(authorize.ResourceAlert, authorize.ActionCreate), h.CreateAlert)
	mgmt.Patch("/alerts/:aid", requirePerm(authorize.ResourceAlert, authorize.ActionUpdate), h.UpdateAlert)
	mgmt.Delete("/alerts/:aid", requirePerm(authorize.ResourceAlert, authorize.ActionDelete), h.DeleteAlert)
}
