package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pezeshkyar/checkup_backend/internal/api/http/handler"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
)

func (r *Router) registerMediaRoutes(
	api fiber.Router,
	h *handler.MediaHandler,
	authRequired fiber.Handler,
	clinicCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	mgmt := api.Group("/clinics/:id", authRequired, clinicCtx)

	mgmt.Get("/media", requirePerm(authorize.ResourceMedia, authorize.ActionRead), h.List)
	mgmt.Post("/media", requirePerm(authorize.ResourceMedia, authorize.ActionCreate), h.Upload)
	mgmt.Delete("/media/:mid", requirePerm(authorize.ResourceMedia, authorize.ActionDelete), h.Delete)

	mgmt.Get("/clinic-media", h.ListPublished)
	mgmt.Post("/clinic-media", requirePerm(authorize.ResourceClinicMedia, authorize.ActionCreate), h.Publish)
	mgmt.Delete("/clinic-media/:mid", requirePerm(authorize.ResourceClinicMedia, authorize.ActionDelete), h.Unpublish)

	// Presigned download for published material
	media := api.Group("/media", authRequired)
	media.Get("/:id/download", h.Download)
}
