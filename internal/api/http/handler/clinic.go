package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/service/clinic"
	pasetotoken "github.com/pezeshkyar/checkup_backend/pkg/paseto"
)

type ClinicHandler struct {
	svc clinic.Service
}

func NewClinicHandler(svc clinic.Service) *ClinicHandler {
	return &ClinicHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Groups
// ---------------------------------------------------------------------------

// POST /api/v1/clinic-groups
func (h *ClinicHandler) CreateGroup(c fiber.Ctx) error {
	var body struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	g, err := h.svc.CreateGroup(c.Context(), clinic.CreateGroupRequest{
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return created(c, g)
}

// GET /api/v1/clinic-groups
func (h *ClinicHandler) ListGroups(c fiber.Ctx) error {
	groups, err := h.svc.ListGroups(c.Context())
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, groups)
}

// DELETE /api/v1/clinic-groups/:id
func (h *ClinicHandler) DeleteGroup(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid group id")
	}
	if err := h.svc.DeleteGroup(c.Context(), id); err != nil {
		return mapClinicError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Clinics
// ---------------------------------------------------------------------------

// POST /api/v1/clinics
func (h *ClinicHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		GroupID     *string `json:"group_id"`
		Title       string  `json:"title"`
		Slug        string  `json:"slug"`
		Description *string `json:"description"`
		Phone       *string `json:"phone"`
		Address     *string `json:"address"`
		City        *string `json:"city"`
		Province    *string `json:"province"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" || body.Slug == "" {
		return badRequest(c, "title and slug are required")
	}

	var groupID *uuid.UUID
	if body.GroupID != nil && *body.GroupID != "" {
		gid, err := uuid.Parse(*body.GroupID)
		if err != nil {
			return badRequest(c, "invalid group_id")
		}
		groupID = &gid
	}

	cl, err := h.svc.Create(c.Context(), clinic.CreateClinicRequest{
		GroupID:     groupID,
		Title:       body.Title,
		Slug:        body.Slug,
		Description: body.Description,
		Phone:       body.Phone,
		Address:     body.Address,
		City:        body.City,
		Province:    body.Province,
		ManagerID:   claims.UserID,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return created(c, cl)
}

// GET /api/v1/clinics
func (h *ClinicHandler) List(c fiber.Ctx) error {
	req := clinic.ListClinicsRequest{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
		Search:  c.Query("search"),
	}
	if city := c.Query("city"); city != "" {
		req.City = &city
	}
	if gid := c.Query("group_id"); gid != "" {
		parsed, err := uuid.Parse(gid)
		if err != nil {
			return badRequest(c, "invalid group_id")
		}
		req.GroupID = &parsed
	}
	if active := c.Query("active"); active != "" {
		b := active == "true"
		req.Active = &b
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, res)
}

// GET /api/v1/clinics/:id
func (h *ClinicHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// Fall back to slug lookup for public clinic pages
		cl, slugErr := h.svc.GetBySlug(c.Context(), c.Params("id"))
		if slugErr != nil {
			return mapClinicError(c, slugErr)
		}
		return ok(c, cl)
	}

	cl, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, cl)
}

// PATCH /api/v1/clinics/:id
func (h *ClinicHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	var body struct {
		GroupID     *string `json:"group_id"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		LogoKey     *string `json:"logo_key"`
		Phone       *string `json:"phone"`
		Address     *string `json:"address"`
		City        *string `json:"city"`
		Province    *string `json:"province"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := clinic.UpdateClinicRequest{
		Title:       body.Title,
		Description: body.Description,
		LogoKey:     body.LogoKey,
		Phone:       body.Phone,
		Address:     body.Address,
		City:        body.City,
		Province:    body.Province,
		IsActive:    body.IsActive,
	}
	if body.GroupID != nil && *body.GroupID != "" {
		gid, err := uuid.Parse(*body.GroupID)
		if err != nil {
			return badRequest(c, "invalid group_id")
		}
		req.GroupID = &gid
	}

	cl, err := h.svc.Update(c.Context(), id, req)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, cl)
}

// DELETE /api/v1/clinics/:id
func (h *ClinicHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapClinicError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Real clinics
// ---------------------------------------------------------------------------

// POST /api/v1/real-clinics
func (h *ClinicHandler) CreateRealClinic(c fiber.Ctx) error {
	var body struct {
		Title   string  `json:"title"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
		City    *string `json:"city"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	rc, err := h.svc.CreateRealClinic(c.Context(), clinic.CreateRealClinicRequest{
		Title:   body.Title,
		Phone:   body.Phone,
		Address: body.Address,
		City:    body.City,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return created(c, rc)
}

// GET /api/v1/real-clinics
func (h *ClinicHandler) ListRealClinics(c fiber.Ctx) error {
	rcs, err := h.svc.ListRealClinics(c.Context(), c.Query("search"))
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, rcs)
}

// DELETE /api/v1/real-clinics/:id
func (h *ClinicHandler) DeleteRealClinic(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid real clinic id")
	}
	if err := h.svc.DeleteRealClinic(c.Context(), id); err != nil {
		return mapClinicError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Alerts
// ---------------------------------------------------------------------------

// POST /api/v1/clinics/:id/alerts
func (h *ClinicHandler) CreateAlert(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	var body struct {
		Title         string  `json:"title"`
		Description   *string `json:"description"`
		Severity      string  `json:"severity"`
		ReminderCount int     `json:"reminder_count"`
		ReminderUnit  string  `json:"reminder_unit"`
		Channel       string  `json:"channel"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	a, err := h.svc.CreateAlert(c.Context(), clinicID, clinic.CreateAlertRequest{
		Title:         body.Title,
		Description:   body.Description,
		Severity:      body.Severity,
		ReminderCount: body.ReminderCount,
		ReminderUnit:  body.ReminderUnit,
		Channel:       body.Channel,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return created(c, a)
}

// GET /api/v1/clinics/:id/alerts
func (h *ClinicHandler) ListAlerts(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}
	alerts, err := h.svc.ListAlerts(c.Context(), clinicID)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, alerts)
}

// PATCH /api/v1/clinics/:id/alerts/:aid
func (h *ClinicHandler) UpdateAlert(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}
	alertID, err := uuid.Parse(c.Params("aid"))
	if err != nil {
		return badRequest(c, "invalid alert id")
	}

	var body struct {
		Title         *string `json:"title"`
		Description   *string `json:"description"`
		Severity      *string `json:"severity"`
		ReminderCount *int    `json:"reminder_count"`
		ReminderUnit  *string `json:"reminder_unit"`
		Channel       *string `json:"channel"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.UpdateAlert(c.Context(), clinicID, alertID, clinic.UpdateAlertRequest{
		Title:         body.Title,
		Description:   body.Description,
		Severity:      body.Severity,
		ReminderCount: body.ReminderCount,
		ReminderUnit:  body.ReminderUnit,
		Channel:       body.Channel,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, a)
}

// DELETE /api/v1/clinics/:id/alerts/:aid
func (h *ClinicHandler) DeleteAlert(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}
	alertID, err := uuid.Parse(c.Params("aid"))
	if err != nil {
		return badRequest(c, "invalid alert id")
	}
	if err := h.svc.DeleteAlert(c.Context(), clinicID, alertID); err != nil {
		return mapClinicError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapClinicError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, clinic.ErrClinicNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrGroupNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrRealClinicNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrAlertNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrSlugTaken):
		return conflict(c, err.Error())
	case errors.Is(err, clinic.ErrClinicInactive):
		return forbidden(c, err.Error())
	default:
		return internalError(c)
	}
}
