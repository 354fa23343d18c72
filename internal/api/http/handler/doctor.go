package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

// POST /api/v1/doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		UserID      string  `json:"user_id"`
		ClinicID    *string `json:"clinic_id"`
		Specialty   *string `json:"specialty"`
		MedicalCode *string `json:"medical_code"`
		Bio         *string `json:"bio"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	req := doctor.CreateDoctorRequest{
		UserID:      userID,
		Specialty:   body.Specialty,
		MedicalCode: body.MedicalCode,
		Bio:         body.Bio,
	}
	if body.ClinicID != nil && *body.ClinicID != "" {
		cid, err := uuid.Parse(*body.ClinicID)
		if err != nil {
			return badRequest(c, "invalid clinic_id")
		}
		req.ClinicID = &cid
	}

	d, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return created(c, d)
}

// GET /api/v1/doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	req := doctor.ListDoctorsRequest{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
	}
	if cid := c.Query("clinic_id"); cid != "" {
		parsed, err := uuid.Parse(cid)
		if err != nil {
			return badRequest(c, "invalid clinic_id")
		}
		req.ClinicID = &parsed
	}
	if spec := c.Query("specialty"); spec != "" {
		req.Specialty = &spec
	}
	if verified := c.Query("verified"); verified != "" {
		b := verified == "true"
		req.Verified = &b
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, res)
}

// GET /api/v1/doctors/:id
func (h *DoctorHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	d, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, d)
}

// PATCH /api/v1/doctors/:id
func (h *DoctorHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		ClinicID   *string `json:"clinic_id"`
		Specialty  *string `json:"specialty"`
		Bio        *string `json:"bio"`
		IsVerified *bool   `json:"is_verified"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := doctor.UpdateDoctorRequest{
		Specialty:  body.Specialty,
		Bio:        body.Bio,
		IsVerified: body.IsVerified,
	}
	if body.ClinicID != nil && *body.ClinicID != "" {
		cid, err := uuid.Parse(*body.ClinicID)
		if err != nil {
			return badRequest(c, "invalid clinic_id")
		}
		req.ClinicID = &cid
	}

	d, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, d)
}

// DELETE /api/v1/doctors/:id
func (h *DoctorHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapDoctorError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Real doctors
// ---------------------------------------------------------------------------

// POST /api/v1/real-doctors
func (h *DoctorHandler) CreateRealDoctor(c fiber.Ctx) error {
	var body struct {
		FullName  string  `json:"full_name"`
		Specialty *string `json:"specialty"`
		Phone     *string `json:"phone"`
		Address   *string `json:"address"`
		City      *string `json:"city"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FullName == "" {
		return badRequest(c, "full_name is required")
	}

	rd, err := h.svc.CreateRealDoctor(c.Context(), doctor.CreateRealDoctorRequest{
		FullName:  body.FullName,
		Specialty: body.Specialty,
		Phone:     body.Phone,
		Address:   body.Address,
		City:      body.City,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}
	return created(c, rd)
}

// GET /api/v1/real-doctors
func (h *DoctorHandler) ListRealDoctors(c fiber.Ctx) error {
	rds, err := h.svc.ListRealDoctors(c.Context(), c.Query("search"))
	if err != nil {
		return mapDoctorError(c, err)
	}
	return ok(c, rds)
}

// DELETE /api/v1/real-doctors/:id
func (h *DoctorHandler) DeleteRealDoctor(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid real doctor id")
	}
	if err := h.svc.DeleteRealDoctor(c.Context(), id); err != nil {
		return mapDoctorError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrRealDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrDoctorAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, doctor.ErrMedicalCodeTaken):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
