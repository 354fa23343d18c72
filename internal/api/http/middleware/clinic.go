package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entclinic "github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
)

// ClinicContext reads the clinic ID from the :id URL param, validates the
// clinic exists and is active, and stores the clinic_id in Locals so
// RequirePermission enforces in the clinic domain.
func ClinicContext(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Params("id")
		clinicID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid clinic id")
		}

		exists, err := db.Clinic.Query().
			Where(entclinic.ID(clinicID), entclinic.IsActive(true), entclinic.DeletedAtIsNil()).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		c.Locals(LocalsClinicID, clinicID.String())
		return c.Next()
	}
}

// ClinicHeader reads the clinic ID from the X-Clinic-ID header (used for
// non-nested clinic-scoped routes like /questions and /media). It sets the
// same Locals key as ClinicContext so RequirePermission works identically.
func ClinicHeader(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get("X-Clinic-ID")
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Clinic-ID header is required")
		}

		clinicID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Clinic-ID value")
		}

		exists, err := db.Clinic.Query().
			Where(entclinic.ID(clinicID), entclinic.IsActive(true), entclinic.DeletedAtIsNil()).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		c.Locals(LocalsClinicID, clinicID.String())
		return c.Next()
	}
}
