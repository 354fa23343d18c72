package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pezeshkyar/checkup_backend/internal/api/http/handler"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	h *handler.PatientHandler,
	authRequired fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	// Platform administration (sys domain)
	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), h.List)

	// Self-service
	patients.Post("/", h.Create)
	patients.Get("/me", h.Me)
	patients.Get("/supervised", h.Supervised)

	// Profile access by id. The self domain gates patient operations; the
	// service layer enforces ownership on nested resources.
	p := patients.Group("/:id")
	p.Get("/", requireSelf(authorize.ResourcePatient, authorize.ActionRead), h.Get)
	p.Patch("/", requireSelf(authorize.ResourcePatient, authorize.ActionUpdate), h.Update)
	p.Delete("/", requireSelf(authorize.ResourcePatient, authorize.ActionDelete), h.Delete)

	// Supervisors
	p.Get("/supervisors", requireSelf(authorize.ResourceSupervisor, authorize.ActionRead), h.ListSupervisors)
	p.Post("/supervisors", requireSelf(authorize.ResourceSupervisor, authorize.ActionCreate), h.AddSupervisor)
	p.Delete("/supervisors/:sid", requireSelf(authorize.ResourceSupervisor, authorize.ActionDelete), h.RemoveSupervisor)
}
