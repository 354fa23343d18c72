package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pezeshkyar/checkup_backend/internal/api/http/handler"
	"github.com/pezeshkyar/checkup_backend/pkg/authorize"
)

func (r *Router) registerQuestionRoutes(
	api fiber.Router,
	h *handler.QuestionHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	questions := api.Group("/questions", authRequired, clinicHeader)

	questions.Get("/", requirePerm(authorize.ResourceQuestion, authorize.ActionList), h.List)
	questions.Post("/", requirePerm(authorize.ResourceQuestion, authorize.ActionCreate), h.Create)

	// Flowchart layout batch save
	questions.Post("/layout", requirePerm(authorize.ResourceQuestion, authorize.ActionUpdate), h.SaveLayout)

	questions.Get("/:id", requirePerm(authorize.ResourceQuestion, authorize.ActionRead), h.Get)
	questions.Patch("/:id", requirePerm(authorize.ResourceQuestion, authorize.ActionUpdate), h.Update)
	questions.Delete("/:id", requirePerm(authorize.ResourceQuestion, authorize.ActionDelete), h.Delete)

	// Body-part taxonomy. Reads are open to any signed-in user; writes are
	// platform administration.
	organs := api.Group("/organs", authRequired)
	organs.Get("/", h.ListOrgans)
	organs.Post("/", requirePerm(authorize.ResourceOrgan, authorize.ActionManage), h.CreateOrgan)
	organs.Delete("/:id", requirePerm(authorize.ResourceOrgan, authorize.ActionManage), h.DeleteOrgan)
}
