package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/service/checkup"
	pasetotoken "github.com/pezeshkyar/checkup_backend/pkg/paseto"
)

type CheckupHandler struct {
	svc checkup.Service
}

func NewCheckupHandler(svc checkup.Service) *CheckupHandler {
	return &CheckupHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Templates
// ---------------------------------------------------------------------------

// POST /api/v1/clinics/:id/checkups
func (h *CheckupHandler) CreateTemplate(c fiber.Ctx) error {
	clinicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	var body struct {
		Title              string  `json:"title"`
		Description        *string `json:"description"`
		RequiredTimeMin    int     `json:"required_time_minutes"`
		RequiredAuth       bool    `json:"required_auth"`
		QuestionCount      int     `json:"question_count"`
		Approvers          *string `json:"approvers"`
		StartingQuestionID *string `json:"starting_question_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	startID, err := parseOptionalUUID(body.StartingQuestionID, "starting_question_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	t, err := h.svc.CreateTemplate(c.Context(), checkup.CreateTemplateRequest{
		ClinicID:           clinicID,
		Title:              body.Title,
		Description:        body.Description,
		RequiredTimeMin:    body.RequiredTimeMin,
		RequiredAuth:       body.RequiredAuth,
		QuestionCount:      body.QuestionCount,
		Approvers:          body.Approvers,
		StartingQuestionID: startID,
	})
	if err != nil {
		return mapCheckupError(c, err)
	}
	return created(c, t)
}

// GET /api/v1/checkup-templates
func (h *CheckupHandler) ListTemplates(c fiber.Ctx) error {
	req := checkup.ListTemplatesRequest{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
		Search:  c.Query("search"),
	}
	if cid := c.Query("clinic_id"); cid != "" {
		parsed, err := uuid.Parse(cid)
		if err != nil {
			return badRequest(c, "invalid clinic_id")
		}
		req.ClinicID = &parsed
	}
	if active := c.Query("active"); active != "" {
		b := active == "true"
		req.Active = &b
	}

	res, err := h.svc.ListTemplates(c.Context(), req)
	if err != nil {
		return mapCheckupError(c, err)
	}
	return ok(c, res)
}

// GET /api/v1/checkup-templates/:id
func (h *CheckupHandler) GetTemplate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid template id")
	}

	t, err := h.svc.GetTemplate(c.Context(), id)
	if err != nil {
		return mapCheckupError(c, err)
	}
	return ok(c, t)
}

// PATCH /api/v1/checkup-templates/:id
func (h *CheckupHandler) UpdateTemplate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid template id")
	}

	var body struct {
		Title              *string `json:"title"`
		Description        *string `json:"description"`
		RequiredTimeMin    *int    `json:"required_time_minutes"`
		RequiredAuth       *bool   `json:"required_auth"`
		QuestionCount      *int    `json:"question_count"`
		Approvers          *string `json:"approvers"`
		StartingQuestionID *string `json:"starting_question_id"`
		IsActive           *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	startID, err := parseOptionalUUID(body.StartingQuestionID, "starting_question_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	t, err := h.svc.UpdateTemplate(c.Context(), id, checkup.UpdateTemplateRequest{
		Title:              body.Title,
		Description:        body.Description,
		RequiredTimeMin:    body.RequiredTimeMin,
		RequiredAuth:       body.RequiredAuth,
		QuestionCount:      body.QuestionCount,
		Approvers:          body.Approvers,
		StartingQuestionID: startID,
		IsActive:           body.IsActive,
	})
	if err != nil {
		return mapCheckupError(c, err)
	}
	return ok(c, t)
}

// DELETE /api/v1/checkup-templates/:id
func (h *CheckupHandler) DeleteTemplate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid template id")
	}
	if err := h.svc.DeleteTemplate(c.Context(), id); err != nil {
		return mapCheckupError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Analysis authoring
// ---------------------------------------------------------------------------

// POST /api/v1/checkup-templates/:id/analyzes
func (h *CheckupHandler) CreateAnalyze(c fiber.Ctx) error {
	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid template id")
	}

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

	a, err := h.svc.CreateAnalyze(c.Context(), templateID, checkup.CreateAnalyzeRequest{
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		return mapCheckupError(c, err)
	}
	return created(c, a)
}

// GET /api/v1/checkup-templates/:id/analyzes
func (h *CheckupHandler) ListAnalyzes(c fiber.Ctx) error {
	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid template id")
	}

	analyzes, err := h.svc.ListAnalyzes(c.Context(), templateID)
	if err != nil {
		return mapCheckupError(c, err)
	}
	return ok(c, analyzes)
}

// DELETE /api/v1/checkup-templates/:id/analyzes/:aid
func (h *CheckupHandler) DeleteAnalyze(c fiber.Ctx) error {
	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid template id")
	}
	analyzeID, err := uuid.Parse(c.Params("aid"))
	if err != nil {
		return badRequest(c, "invalid analyze id")
	}

	if err := h.svc.DeleteAnalyze(c.Context(), templateID, analyzeID); err != nil {
		return mapCheckupError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/analyzes/:id/interpretations
func (h *CheckupHandler) AddInterpretation(c fiber.Ctx) error {
	analyzeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid analyze id")
	}

	var body struct {
		Title   string  `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}

	i, err := h.svc.AddInterpretation(c.Context(), analyzeID, checkup.AddInterpretationRequest{
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		return mapCheckupError(c, err)
	}
	return created(c, i)
}

// POST /api/v1/interpretations/:id/suggestions
func (h *CheckupHandler) AddSuggestion(c fiber.Ctx) error {
	interpretationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid interpretation id")
	}

	var body struct {
		DoctorID      *string `json:"doctor_id"`
		RealDoctorID  *string `json:"real_doctor_id"`
		ClinicID      *string `json:"clinic_id"`
		RealClinicID  *string `json:"real_clinic_id"`
		ClinicMediaID *string `json:"clinic_media_id"`
		Note          *string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := checkup.AddSuggestionRequest{Note: body.Note}
	for _, f := range []struct {
		raw  *string
		dst  **uuid.UUID
		name string
	}{
		{body.DoctorID, &req.DoctorID, "doctor_id"},
		{body.RealDoctorID, &req.RealDoctorID, "real_doctor_id"},
		{body.ClinicID, &req.ClinicID, "clinic_id"},
		{body.RealClinicID, &req.RealClinicID, "real_clinic_id"},
		{body.ClinicMediaID, &req.ClinicMediaID, "clinic_media_id"},
	} {
		id, err := parseOptionalUUID(f.raw, f.name)
		if err != nil {
			return badRequest(c, err.Error())
		}
		*f.dst = id
	}

	s, err := h.svc.AddSuggestion(c.Context(), interpretationID, req)
	if err != nil {
		return mapCheckupError(c, err)
	}
	return created(c, s)
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// POST /api/v1/checkups
func (h *CheckupHandler) Start(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientProfileID string  `json:"patient_profile_id"`
		ClinicCheckupID  *string `json:"clinic_checkup_id"`
		ClinicID         *string `json:"clinic_id"`
		Description      *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	profileID, err := uuid.Parse(body.PatientProfileID)
	if err != nil {
		return badRequest(c, "invalid patient_profile_id")
	}
	templateID, err := parseOptionalUUID(body.ClinicCheckupID, "clinic_checkup_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	clinicID, err := parseOptionalUUID(body.ClinicID, "clinic_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	ck, err := h.svc.Start(c.Context(), claims.UserID, checkup.StartCheckupRequest{
		PatientProfileID: profileID,
		ClinicCheckupID:  templateID,
		ClinicID:         clinicID,
		Description:      body.Description,
	})
	if err != nil {
		return mapCheckupError(c, err)
	}
	return created(c, ck)
}

// GET /api/v1/checkups/:id
func (h *CheckupHandler) Get(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid checkup id")
	}

	ck, err := h.svc.GetByID(c.Context(), id, claims.UserID)
	if err != nil {
		return mapCheckupError(c, err)
	}
	return ok(c, ck)
}

// GET /api/v1/checkups
func (h *CheckupHandler) List(c fiber.Ctx) error {
	req := checkup.ListCheckupsRequest{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
	}
	if pid := c.Query("patient_profile_id"); pid != "" {
		parsed, err := uuid.Parse(pid)
		if err != nil {
			return badRequest(c, "invalid patient_profile_id")
		}
		req.PatientProfileID = &parsed
	}
	if cid := c.Query("clinic_id"); cid != "" {
		parsed, err := uuid.Parse(cid)
		if err != nil {
			return badRequest(c, "invalid clinic_id")
		}
		req.ClinicID = &parsed
	}
	if completed := c.Query("completed"); completed != "" {
		b := completed == "true"
		req.Completed = &b
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapCheckupError(c, err)
	}
	return ok(c, res)
}

// POST /api/v1/checkups/:id/answers
func (h *CheckupHandler) AddAnswers(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid checkup id")
	}

	var body struct {
		Answers []struct {
			QuestionID string  `json:"question_id"`
			OptionID   string  `json:"option_id"`
			RawValue   *string `json:"raw_value"`
		} `json:"answers"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Answers) == 0 {
		return badRequest(c, "answers is required")
	}

	answers := make([]checkup.AnswerInput, 0, len(body.Answers))
	for _, a := range body.Answers {
		qid, err := uuid.Parse(a.QuestionID)
		if err != nil {
			return badRequest(c, "invalid question_id")
		}
		oid, err := uuid.Parse(a.OptionID)
		if err != nil {
			return badRequest(c, "invalid option_id")
		}
		answers = append(answers, checkup.AnswerInput{
			QuestionID: qid,
			OptionID:   oid,
			RawValue:   a.RawValue,
		})
	}

	saved, err := h.svc.AddAnswers(c.Context(), id, claims.UserID, answers)
	if err != nil {
		return mapCheckupError(c, err)
	}
	return created(c, saved)
}

// POST /api/v1/checkups/:id/complete
func (h *CheckupHandler) Complete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid checkup id")
	}

	ck, err := h.svc.Complete(c.Context(), id, claims.UserID)
	if err != nil {
		return mapCheckupError(c, err)
	}
	return ok(c, ck)
}

// GET /api/v1/checkups/:id/result
func (h *CheckupHandler) Result(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid checkup id")
	}

	res, err := h.svc.Result(c.Context(), id, claims.UserID)
	if err != nil {
		// Kept from the original client contract: an ownership miss on
		// the result route answers 200 with a message body, not 403.
		if errors.Is(err, checkup.ErrNotCheckupOwner) {
			return ok(c, fiber.Map{"checkup": err.Error()})
		}
		return mapCheckupError(c, err)
	}
	return ok(c, res)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapCheckupError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, checkup.ErrTemplateNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, checkup.ErrCheckupNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, checkup.ErrAnalyzeNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, checkup.ErrInterpretationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, checkup.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, checkup.ErrQuestionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, checkup.ErrClinicNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, checkup.ErrClinicRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, checkup.ErrOptionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, checkup.ErrStartingQuestion):
		return badRequest(c, err.Error())
	case errors.Is(err, checkup.ErrOptionMismatch):
		return badRequest(c, err.Error())
	case errors.Is(err, checkup.ErrAlreadyCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, checkup.ErrTemplateInactive):
		return forbidden(c, err.Error())
	case errors.Is(err, checkup.ErrIdentityRequired):
		return forbidden(c, err.Error())
	case errors.Is(err, checkup.ErrNotCheckupOwner):
		return forbidden(c, err.Error())
	default:
		return internalError(c)
	}
}
