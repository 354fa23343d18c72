package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/service/patient"
	pasetotoken "github.com/pezeshkyar/checkup_backend/pkg/paseto"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

type patientProfileBody struct {
	Gender         *string  `json:"gender"`
	BirthDate      *string  `json:"birth_date"` // RFC 3339 date
	HeightCm       *float64 `json:"height_cm"`
	WeightKg       *float64 `json:"weight_kg"`
	MedicalHistory *string  `json:"medical_history"`
}

func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// POST /api/v1/patients  (self-service: the profile belongs to the caller)
func (h *PatientHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body patientProfileBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	birth, err := parseBirthDate(body.BirthDate)
	if err != nil {
		return badRequest(c, "birth_date must be yyyy-mm-dd")
	}

	p, err := h.svc.Create(c.Context(), patient.CreateProfileRequest{
		UserID:         claims.UserID,
		Gender:         body.Gender,
		BirthDate:      birth,
		HeightCm:       body.HeightCm,
		WeightKg:       body.WeightKg,
		MedicalHistory: body.MedicalHistory,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// GET /api/v1/patients/me
func (h *PatientHandler) Me(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.GetByUserID(c.Context(), claims.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// GET /api/v1/patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid profile id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// GET /api/v1/patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	res, err := h.svc.List(c.Context(), patient.ListProfilesRequest{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
		Order:   c.Query("order"),
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, res)
}

// PATCH /api/v1/patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid profile id")
	}

	var body patientProfileBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	birth, err := parseBirthDate(body.BirthDate)
	if err != nil {
		return badRequest(c, "birth_date must be yyyy-mm-dd")
	}

	p, err := h.svc.Update(c.Context(), id, patient.UpdateProfileRequest{
		Gender:         body.Gender,
		BirthDate:      birth,
		HeightCm:       body.HeightCm,
		WeightKg:       body.WeightKg,
		MedicalHistory: body.MedicalHistory,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /api/v1/patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid profile id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/patients/:id/supervisors
func (h *PatientHandler) AddSupervisor(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid profile id")
	}

	var body struct {
		UserID       string `json:"user_id"`
		RelativeType string `json:"relative_type"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	supervisorUserID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	sup, err := h.svc.AddSupervisor(c.Context(), id, patient.AddSupervisorRequest{
		UserID:       supervisorUserID,
		RelativeType: body.RelativeType,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, sup)
}

// GET /api/v1/patients/:id/supervisors
func (h *PatientHandler) ListSupervisors(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid profile id")
	}

	sups, err := h.svc.ListSupervisors(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, sups)
}

// DELETE /api/v1/patients/:id/supervisors/:sid
func (h *PatientHandler) RemoveSupervisor(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid profile id")
	}
	sid, err := uuid.Parse(c.Params("sid"))
	if err != nil {
		return badRequest(c, "invalid supervisor id")
	}

	if err := h.svc.RemoveSupervisor(c.Context(), id, sid); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// GET /api/v1/patients/supervised
func (h *PatientHandler) Supervised(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	profiles, err := h.svc.SupervisedProfiles(c.Context(), claims.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, profiles)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrProfileAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrSupervisorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrSupervisorExists):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrSelfSupervision):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
