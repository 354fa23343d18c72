package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pezeshkyar/checkup_backend/internal/api/http/handler"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	h *handler.DoctorHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public directory
	doctors := api.Group("/doctors")
	doctors.Get("/", h.List)
	doctors.Get("/:id", h.Get)

	// Administration (sys domain)
	doctors.Post("/", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionCreate), h.Create)
	doctors.Patch("/:id", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), h.Update)
	doctors.Delete("/:id", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionDelete), h.Delete)

	// Real doctors (external referral directory)
	realDoctors := api.Group("/real-doctors", authRequired)
	realDoctors.Get("/", h.ListRealDoctors)
	realDoctors.Post("/", requirePerm(authorize.ResourceRealDoctor, authorize.ActionCreate), h.CreateRealDoctor)
	realDoctors.Delete("/:id", requirePerm(authorize.ResourceRealDoctor, authorize.ActionDelete), h.DeleteRealDoctor)
}
