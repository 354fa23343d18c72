package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/service/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/service/question"
	pasetotoken "github.com/pezeshkyar/checkup_backend/pkg/paseto"
)

type QuestionHandler struct {
	svc     question.Service
	doctors doctor.Service
}

func NewQuestionHandler(svc question.Service, doctors doctor.Service) *QuestionHandler {
	return &QuestionHandler{svc: svc, doctors: doctors}
}

// callerDoctor resolves the authenticated user's doctor record. Question
// authoring is doctor-only; RBAC gates the route, this resolves authorship.
func (h *QuestionHandler) callerDoctor(c fiber.Ctx) (uuid.UUID, error) {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	d, err := h.doctors.GetByUserID(c.Context(), claims.UserID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "question authoring requires a doctor record")
	}
	return d.ID, nil
}

// ---------------------------------------------------------------------------
// Request bodies
// ---------------------------------------------------------------------------

type bandBody struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type optionBody struct {
	Title             string     `json:"title"`
	Weight            int        `json:"weight"`
	Interpretation    *string    `json:"interpretation"`
	Tutorial          *string    `json:"tutorial"`
	AlertID           *string    `json:"alert_id"`
	SuggestedDoctorID *string    `json:"suggested_doctor_id"`
	SuggestedClinicID *string    `json:"suggested_clinic_id"`
	IsBranch          bool       `json:"is_branch"`
	ConnectQuestionID *string    `json:"connect_question_id"`
	NumberRanges      []bandBody `json:"number_ranges"`
	DateRanges        []bandBody `json:"date_ranges"`
	EquationRanges    []bandBody `json:"equation_ranges"`
}

func parseUUIDs(ss []string, name string) ([]uuid.UUID, error) {
	if ss == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(ss))
	for _, s := range ss {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errors.New("invalid " + name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalUUID(s *string, name string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &id, nil
}

func toBands(bs []bandBody) []question.Band {
	if len(bs) == 0 {
		return nil
	}
	out := make([]question.Band, len(bs))
	for i, b := range bs {
		out[i] = question.Band{Lower: b.Lower, Upper: b.Upper}
	}
	return out
}

func toOptionInputs(bodies []optionBody) ([]question.OptionInput, error) {
	opts := make([]question.OptionInput, 0, len(bodies))
	for _, b := range bodies {
		alertID, err := parseOptionalUUID(b.AlertID, "alert_id")
		if err != nil {
			return nil, err
		}
		docID, err := parseOptionalUUID(b.SuggestedDoctorID, "suggested_doctor_id")
		if err != nil {
			return nil, err
		}
		clinID, err := parseOptionalUUID(b.SuggestedClinicID, "suggested_clinic_id")
		if err != nil {
			return nil, err
		}
		connID, err := parseOptionalUUID(b.ConnectQuestionID, "connect_question_id")
		if err != nil {
			return nil, err
		}

		opts = append(opts, question.OptionInput{
			Title:             b.Title,
			Weight:            b.Weight,
			Interpretation:    b.Interpretation,
			Tutorial:          b.Tutorial,
			AlertID:           alertID,
			SuggestedDoctorID: docID,
			SuggestedClinicID: clinID,
			IsBranch:          b.IsBranch,
			ConnectQuestionID: connID,
			NumberRanges:      toBands(b.NumberRanges),
			DateRanges:        toBands(b.DateRanges),
			EquationRanges:    toBands(b.EquationRanges),
		})
	}
	return opts, nil
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// POST /api/v1/questions
func (h *QuestionHandler) Create(c fiber.Ctx) error {
	doctorID, err := h.callerDoctor(c)
	if err != nil {
		return err
	}

	var body struct {
		ClinicID     *string      `json:"clinic_id"`
		Title        *string      `json:"title"`
		Prompt       string       `json:"prompt"`
		QuestionType string       `json:"question_type"`
		ExpertLevel  string       `json:"expert_level"`
		Priority     string       `json:"priority"`
		DateType     string       `json:"date_type"`
		IsStarter    bool         `json:"is_starter"`
		IsEquation   bool         `json:"is_equation"`
		Equation     *string      `json:"equation"`
		OrganIDs     []string     `json:"organ_ids"`
		Options      []optionBody `json:"options"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	clinicID, err := parseOptionalUUID(body.ClinicID, "clinic_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	organIDs, err := parseUUIDs(body.OrganIDs, "organ_ids")
	if err != nil {
		return badRequest(c, err.Error())
	}
	opts, err := toOptionInputs(body.Options)
	if err != nil {
		return badRequest(c, err.Error())
	}

	q, err := h.svc.Create(c.Context(), question.CreateQuestionRequest{
		DoctorID:     doctorID,
		ClinicID:     clinicID,
		Title:        body.Title,
		Prompt:       body.Prompt,
		QuestionType: body.QuestionType,
		ExpertLevel:  body.ExpertLevel,
		Priority:     body.Priority,
		DateType:     body.DateType,
		IsStarter:    body.IsStarter,
		IsEquation:   body.IsEquation,
		Equation:     body.Equation,
		OrganIDs:     organIDs,
		Options:      opts,
	})
	if err != nil {
		return mapQuestionError(c, err)
	}
	return created(c, q)
}

// GET /api/v1/questions
func (h *QuestionHandler) List(c fiber.Ctx) error {
	req := question.ListQuestionsRequest{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 20),
		Search:  c.Query("search"),
	}
	if did := c.Query("doctor_id"); did != "" {
		parsed, err := uuid.Parse(did)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &parsed
	}
	if cid := c.Query("clinic_id"); cid != "" {
		parsed, err := uuid.Parse(cid)
		if err != nil {
			return badRequest(c, "invalid clinic_id")
		}
		req.ClinicID = &parsed
	}
	if starter := c.Query("starter"); starter != "" {
		b := starter == "true"
		req.Starter = &b
	}
	// Space-separated organ names, any-match
	if organs := c.Query("organs"); organs != "" {
		req.Organs = strings.Fields(organs)
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, res)
}

// GET /api/v1/questions/:id
func (h *QuestionHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	q, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, q)
}

// PATCH /api/v1/questions/:id
func (h *QuestionHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}
	doctorID, err := h.callerDoctor(c)
	if err != nil {
		return err
	}

	var body struct {
		Title        *string      `json:"title"`
		Prompt       *string      `json:"prompt"`
		QuestionType *string      `json:"question_type"`
		ExpertLevel  *string      `json:"expert_level"`
		Priority     *string      `json:"priority"`
		DateType     *string      `json:"date_type"`
		IsStarter    *bool        `json:"is_starter"`
		IsEquation   *bool        `json:"is_equation"`
		Equation     *string      `json:"equation"`
		OrganIDs     []string     `json:"organ_ids"`
		Options      []optionBody `json:"options"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := question.UpdateQuestionRequest{
		Title:        body.Title,
		Prompt:       body.Prompt,
		QuestionType: body.QuestionType,
		ExpertLevel:  body.ExpertLevel,
		Priority:     body.Priority,
		DateType:     body.DateType,
		IsStarter:    body.IsStarter,
		IsEquation:   body.IsEquation,
		Equation:     body.Equation,
	}
	if body.OrganIDs != nil {
		ids, err := parseUUIDs(body.OrganIDs, "organ_ids")
		if err != nil {
			return badRequest(c, err.Error())
		}
		req.OrganIDs = ids
	}
	if body.Options != nil {
		opts, err := toOptionInputs(body.Options)
		if err != nil {
			return badRequest(c, err.Error())
		}
		req.Options = opts
	}

	q, err := h.svc.Update(c.Context(), id, doctorID, req)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, q)
}

// DELETE /api/v1/questions/:id
func (h *QuestionHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}
	doctorID, err := h.callerDoctor(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Context(), id, doctorID); err != nil {
		return mapQuestionError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/questions/layout
func (h *QuestionHandler) SaveLayout(c fiber.Ctx) error {
	var body struct {
		Items []struct {
			QuestionID        string   `json:"question_id"`
			Visible           *bool    `json:"visible"`
			SrcX              *float64 `json:"src_x"`
			SrcY              *float64 `json:"src_y"`
			DesX              *float64 `json:"des_x"`
			DesY              *float64 `json:"des_y"`
			BranchCount       *int     `json:"branch_count"`
			ConnectQuestionID *string  `json:"connect_question_id"`
			ClearConnect      bool     `json:"clear_connect"`
			Options           []struct {
				OptionID          string   `json:"option_id"`
				X                 *float64 `json:"x"`
				Y                 *float64 `json:"y"`
				IsBranch          *bool    `json:"is_branch"`
				ConnectQuestionID *string  `json:"connect_question_id"`
				ClearConnect      bool     `json:"clear_connect"`
			} `json:"options"`
		} `json:"items"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Items) == 0 {
		return badRequest(c, "items is required")
	}

	items := make([]question.LayoutItem, 0, len(body.Items))
	for _, it := range body.Items {
		qid, err := uuid.Parse(it.QuestionID)
		if err != nil {
			return badRequest(c, "invalid question_id")
		}
		connID, err := parseOptionalUUID(it.ConnectQuestionID, "connect_question_id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		item := question.LayoutItem{
			QuestionID:        qid,
			Visible:           it.Visible,
			SrcX:              it.SrcX,
			SrcY:              it.SrcY,
			DesX:              it.DesX,
			DesY:              it.DesY,
			BranchCount:       it.BranchCount,
			ConnectQuestionID: connID,
			ClearConnect:      it.ClearConnect,
		}
		for _, ob := range it.Options {
			oid, err := uuid.Parse(ob.OptionID)
			if err != nil {
				return badRequest(c, "invalid option_id")
			}
			oConnID, err := parseOptionalUUID(ob.ConnectQuestionID, "connect_question_id")
			if err != nil {
				return badRequest(c, err.Error())
			}
			item.Options = append(item.Options, question.OptionLayout{
				OptionID:          oid,
				X:                 ob.X,
				Y:                 ob.Y,
				IsBranch:          ob.IsBranch,
				ConnectQuestionID: oConnID,
				ClearConnect:      ob.ClearConnect,
			})
		}
		items = append(items, item)
	}

	report, err := h.svc.SaveLayout(c.Context(), items)
	if err != nil {
		return mapQuestionError(c, err)
	}
	// The flow editor predates the per-item report and keys off the
	// overall message, so both are returned.
	return ok(c, fiber.Map{
		"message": "operation done successfully",
		"report":  report,
	})
}

// ---------------------------------------------------------------------------
// Organ taxonomy
// ---------------------------------------------------------------------------

// POST /api/v1/organs
func (h *QuestionHandler) CreateOrgan(c fiber.Ctx) error {
	var body struct {
		Name     string  `json:"name"`
		ParentID *string `json:"parent_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	parentID, err := parseOptionalUUID(body.ParentID, "parent_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	o, err := h.svc.CreateOrgan(c.Context(), question.CreateOrganRequest{
		Name:     body.Name,
		ParentID: parentID,
	})
	if err != nil {
		return mapQuestionError(c, err)
	}
	return created(c, o)
}

// GET /api/v1/organs
func (h *QuestionHandler) ListOrgans(c fiber.Ctx) error {
	organs, err := h.svc.ListOrgans(c.Context())
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, organs)
}

// DELETE /api/v1/organs/:id
func (h *QuestionHandler) DeleteOrgan(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid organ id")
	}
	if err := h.svc.DeleteOrgan(c.Context(), id); err != nil {
		return mapQuestionError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapQuestionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, question.ErrQuestionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, question.ErrOptionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, question.ErrConnectNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, question.ErrOrganNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, question.ErrOrganExists):
		return conflict(c, err.Error())
	case errors.Is(err, question.ErrEmptyOrganName):
		return badRequest(c, err.Error())
	case errors.Is(err, question.ErrEmptyPrompt):
		return badRequest(c, err.Error())
	case errors.Is(err, question.ErrEquationRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, question.ErrInvalidEquation):
		return badRequest(c, err.Error())
	case errors.Is(err, question.ErrNotQuestionAuthor):
		return forbidden(c, err.Error())
	default:
		return internalError(c)
	}
}
