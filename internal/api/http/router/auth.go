package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pezeshkyar/checkup_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	group := api.Group("/auth")
	group.Post("/otp", h.RequestOTP)
	group.Post("/verify-otp", h.VerifyOTP)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
	group.Post("/verify-identity", authRequired, h.VerifyIdentity)
}
