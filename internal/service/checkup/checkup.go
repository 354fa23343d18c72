package checkup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entcheckup "github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	entclinic "github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	enttemplate "github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	entprofile "github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	entanswer "github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
	entoption "github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	entquestion "github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
	entsupervisor "github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
)

// SubjectCheckupCompleted is the NATS subject prefix for completion events.
// The completed checkup's ID is appended: checkup.completed.<uuid>.
const SubjectCheckupCompleted = "checkup.completed"

// Publisher is the slice of the NATS connection the service needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateTemplateRequest struct {
	ClinicID           uuid.UUID
	Title              string
	Description        *string
	RequiredTimeMin    int
	RequiredAuth       bool
	QuestionCount      int
	Approvers          *string // comma separated emails
	StartingQuestionID *uuid.UUID
}

type UpdateTemplateRequest struct {
	Title              *string
	Description        *string
	RequiredTimeMin    *int
	RequiredAuth       *bool
	QuestionCount      *int
	Approvers          *string
	StartingQuestionID *uuid.UUID
	IsActive           *bool
}

type ListTemplatesRequest struct {
	Page     int
	PerPage  int
	ClinicID *uuid.UUID
	Active   *bool
	Search   string
}

// StartCheckupRequest starts a session either from a predefined clinic
// checkup or as a free-form session against a clinic. Exactly one of
// ClinicCheckupID and ClinicID is required; when both are set the
// template's clinic wins.
type StartCheckupRequest struct {
	PatientProfileID uuid.UUID
	ClinicCheckupID  *uuid.UUID
	ClinicID         *uuid.UUID
	Description      *string
}

type AnswerInput struct {
	QuestionID uuid.UUID
	OptionID   uuid.UUID
	RawValue   *string
}

type ListCheckupsRequest struct {
	Page             int
	PerPage          int
	PatientProfileID *uuid.UUID
	ClinicID         *uuid.UUID
	Completed        *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Templates
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*repo.ClinicCheckup, error)
	GetTemplate(ctx context.Context, templateID uuid.UUID) (*repo.ClinicCheckup, error)
	ListTemplates(ctx context.Context, req ListTemplatesRequest) (*PaginatedResult[*repo.ClinicCheckup], error)
	UpdateTemplate(ctx context.Context, templateID uuid.UUID, req UpdateTemplateRequest) (*repo.ClinicCheckup, error)
	DeleteTemplate(ctx context.Context, templateID uuid.UUID) error

	// Analysis authoring
	CreateAnalyze(ctx context.Context, templateID uuid.UUID, req CreateAnalyzeRequest) (*repo.CheckupAnalyze, error)
	ListAnalyzes(ctx context.Context, templateID uuid.UUID) ([]*repo.CheckupAnalyze, error)
	DeleteAnalyze(ctx context.Context, templateID, analyzeID uuid.UUID) error
	AddInterpretation(ctx context.Context, analyzeID uuid.UUID, req AddInterpretationRequest) (*repo.Interpretation, error)
	AddSuggestion(ctx context.Context, interpretationID uuid.UUID, req AddSuggestionRequest) (*repo.Suggestion, error)

	// Sessions
	Start(ctx context.Context, requesterID uuid.UUID, req StartCheckupRequest) (*repo.Checkup, error)
	GetByID(ctx context.Context, checkupID, requesterID uuid.UUID) (*repo.Checkup, error)
	List(ctx context.Context, req ListCheckupsRequest) (*PaginatedResult[*repo.Checkup], error)
	AddAnswers(ctx context.Context, checkupID, requesterID uuid.UUID, answers []AnswerInput) ([]*repo.QuestionAnswer, error)
	Complete(ctx context.Context, checkupID, requesterID uuid.UUID) (*repo.Checkup, error)

	// Result aggregates the answer log into interpretations, referral
	// targets, alerts and an optional equation score.
	Result(ctx context.Context, checkupID, requesterID uuid.UUID) (*Result, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type checkupService struct {
	db  *repo.Client
	pub Publisher
}

func New(db *repo.Client, pub Publisher) Service {
	return &checkupService{db: db, pub: pub}
}

// ---------------------------------------------------------------------------
// Templates
// ---------------------------------------------------------------------------

func (s *checkupService) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*repo.ClinicCheckup, error) {
	if req.StartingQuestionID != nil {
		if err := s.checkQuestion(ctx, *req.StartingQuestionID); err != nil {
			return nil, err
		}
	}

	c := s.db.ClinicCheckup.Create().
		SetClinicID(req.ClinicID).
		SetTitle(req.Title).
		SetRequiredAuth(req.RequiredAuth)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.RequiredTimeMin > 0 {
		c = c.SetRequiredTimeMinutes(req.RequiredTimeMin)
	}
	if req.QuestionCount > 0 {
		c = c.SetQuestionCount(req.QuestionCount)
	}
	if req.Approvers != nil {
		c = c.SetNillableApprovers(req.Approvers)
	}
	if req.StartingQuestionID != nil {
		c = c.SetNillableStartingQuestionID(req.StartingQuestionID)
	}

	return c.Save(ctx)
}

func (s *checkupService) GetTemplate(ctx context.Context, templateID uuid.UUID) (*repo.ClinicCheckup, error) {
	t, err := s.db.ClinicCheckup.Query().
		Where(enttemplate.ID(templateID), enttemplate.DeletedAtIsNil()).
		WithClinic().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

func (s *checkupService) ListTemplates(ctx context.Context, req ListTemplatesRequest) (*PaginatedResult[*repo.ClinicCheckup], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.ClinicCheckup.Query().
		Where(enttemplate.DeletedAtIsNil())

	if req.ClinicID != nil {
		q = q.Where(enttemplate.ClinicID(*req.ClinicID))
	}
	if req.Active != nil {
		q = q.Where(enttemplate.IsActive(*req.Active))
	}
	if req.Search != "" {
		q = q.Where(enttemplate.TitleContainsFold(req.Search))
	}

	q = q.Order(enttemplate.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count templates: %w", err)
	}

	templates, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.ClinicCheckup]{
		Data:       templates,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *checkupService) UpdateTemplate(ctx context.Context, templateID uuid.UUID, req UpdateTemplateRequest) (*repo.ClinicCheckup, error) {
	t, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if req.StartingQuestionID != nil {
		if err := s.checkQuestion(ctx, *req.StartingQuestionID); err != nil {
			return nil, err
		}
	}

	u := s.db.ClinicCheckup.UpdateOne(t)
	if req.Title != nil {
		u = u.SetTitle(*req.Title)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.RequiredTimeMin != nil {
		u = u.SetRequiredTimeMinutes(*req.RequiredTimeMin)
	}
	if req.RequiredAuth != nil {
		u = u.SetRequiredAuth(*req.RequiredAuth)
	}
	if req.QuestionCount != nil {
		u = u.SetQuestionCount(*req.QuestionCount)
	}
	if req.Approvers != nil {
		u = u.SetNillableApprovers(req.Approvers)
	}
	if req.StartingQuestionID != nil {
		u = u.SetNillableStartingQuestionID(req.StartingQuestionID)
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
	}
	return u.Save(ctx)
}

func (s *checkupService) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	t, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return err
	}
	return s.db.ClinicCheckup.UpdateOne(t).SetDeletedAt(time.Now()).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

func (s *checkupService) Start(ctx context.Context, requesterID uuid.UUID, req StartCheckupRequest) (*repo.Checkup, error) {
	profile, err := s.db.PatientProfile.Query().
		Where(entprofile.ID(req.PatientProfileID), entprofile.DeletedAtIsNil()).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	// The requester must be the patient or one of their supervisors
	if err := s.checkOwnership(ctx, profile, requesterID); err != nil {
		return nil, err
	}

	var (
		tmpl        *repo.ClinicCheckup
		clinicID    uuid.UUID
		clinicTitle string
		tmplTitle   string
	)
	switch {
	case req.ClinicCheckupID != nil:
		tmpl, err = s.GetTemplate(ctx, *req.ClinicCheckupID)
		if err != nil {
			return nil, err
		}
		if !tmpl.IsActive {
			return nil, ErrTemplateInactive
		}
		if err := identityGate(tmpl.RequiredAuth, profile.Edges.User); err != nil {
			return nil, err
		}
		clinicID = tmpl.ClinicID
		tmplTitle = tmpl.Title
		if tmpl.Edges.Clinic != nil {
			clinicTitle = tmpl.Edges.Clinic.Title
		}
	case req.ClinicID != nil:
		cl, err := s.db.Clinic.Query().
			Where(entclinic.ID(*req.ClinicID), entclinic.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrClinicNotFound
			}
			return nil, fmt.Errorf("get clinic: %w", err)
		}
		clinicID = cl.ID
		clinicTitle = cl.Title
	default:
		return nil, ErrClinicRequired
	}

	title := deriveTitle(tmplTitle, profile.Edges.User, clinicTitle)

	c := s.db.Checkup.Create().
		SetPatientProfileID(profile.ID).
		SetClinicID(clinicID).
		SetTitle(title).
		SetExecutedAt(time.Now())

	if tmpl != nil {
		c = c.SetClinicCheckupID(tmpl.ID)
	}
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}

	return c.Save(ctx)
}

func (s *checkupService) GetByID(ctx context.Context, checkupID, requesterID uuid.UUID) (*repo.Checkup, error) {
	ck, err := s.db.Checkup.Query().
		Where(entcheckup.ID(checkupID), entcheckup.DeletedAtIsNil()).
		WithPatient(func(pq *repo.PatientProfileQuery) {
			pq.WithUser()
		}).
		WithTemplate().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCheckupNotFound
		}
		return nil, fmt.Errorf("get checkup: %w", err)
	}

	if err := s.checkOwnership(ctx, ck.Edges.Patient, requesterID); err != nil {
		return nil, err
	}
	return ck, nil
}

func (s *checkupService) List(ctx context.Context, req ListCheckupsRequest) (*PaginatedResult[*repo.Checkup], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Checkup.Query().
		Where(entcheckup.DeletedAtIsNil())

	if req.PatientProfileID != nil {
		q = q.Where(entcheckup.PatientProfileID(*req.PatientProfileID))
	}
	if req.ClinicID != nil {
		q = q.Where(entcheckup.ClinicID(*req.ClinicID))
	}
	if req.Completed != nil {
		q = q.Where(entcheckup.IsCompleted(*req.Completed))
	}

	q = q.Order(entcheckup.ByExecutedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count checkups: %w", err)
	}

	checkups, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list checkups: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Checkup]{
		Data:       checkups,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *checkupService) AddAnswers(ctx context.Context, checkupID, requesterID uuid.UUID, answers []AnswerInput) ([]*repo.QuestionAnswer, error) {
	ck, err := s.GetByID(ctx, checkupID, requesterID)
	if err != nil {
		return nil, err
	}
	if ck.IsCompleted {
		return nil, ErrAlreadyCompleted
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	saved := make([]*repo.QuestionAnswer, 0, len(answers))
	for _, a := range answers {
		// The option must belong to the answered question
		opt, err := tx.QuestionOption.Query().
			Where(entoption.ID(a.OptionID), entoption.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrOptionNotFound
			}
			return nil, fmt.Errorf("get option: %w", err)
		}
		if opt.QuestionID != a.QuestionID {
			return nil, ErrOptionMismatch
		}

		c := tx.QuestionAnswer.Create().
			SetCheckupID(checkupID).
			SetQuestionShareID(a.QuestionID).
			SetQuestionOptionID(a.OptionID)
		if a.RawValue != nil {
			c = c.SetNillableRawValue(a.RawValue)
		}

		rec, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("save answer: %w", err)
		}
		saved = append(saved, rec)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return saved, nil
}

func (s *checkupService) Complete(ctx context.Context, checkupID, requesterID uuid.UUID) (*repo.Checkup, error) {
	ck, err := s.GetByID(ctx, checkupID, requesterID)
	if err != nil {
		return nil, err
	}
	if ck.IsCompleted {
		return nil, ErrAlreadyCompleted
	}

	updated, err := s.db.Checkup.UpdateOne(ck).
		SetIsCompleted(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete checkup: %w", err)
	}

	// Best-effort: completion is durable even when the broker is down.
	if s.pub != nil {
		subject := SubjectCheckupCompleted + "." + updated.ID.String()
		if err := s.pub.Publish(subject, []byte(updated.ID.String())); err != nil {
			slog.Warn("failed to publish checkup completion", "checkup_id", updated.ID, "error", err)
		}
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *checkupService) checkQuestion(ctx context.Context, questionID uuid.UUID) error {
	ok, err := s.db.QuestionShare.Query().
		Where(entquestion.ID(questionID), entquestion.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check question: %w", err)
	}
	if !ok {
		return ErrStartingQuestion
	}
	return nil
}

// checkOwnership allows the patient themselves and their supervisors.
func (s *checkupService) checkOwnership(ctx context.Context, profile *repo.PatientProfile, requesterID uuid.UUID) error {
	if profile == nil {
		return ErrPatientNotFound
	}
	if profile.UserID == requesterID {
		return nil
	}

	supervises, err := s.db.Supervisor.Query().
		Where(
			entsupervisor.UserID(requesterID),
			entsupervisor.PatientProfileID(profile.ID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check supervisor: %w", err)
	}
	if !supervises {
		return ErrNotCheckupOwner
	}
	return nil
}

// identityGate rejects identity-gated templates for accounts that have not
// passed national-code verification. Templates without required_auth admit
// anyone, verified or not.
func identityGate(requiredAuth bool, u *repo.User) error {
	if !requiredAuth {
		return nil
	}
	if u == nil || !u.IdentityApproved {
		return ErrIdentityRequired
	}
	return nil
}

// deriveTitle builds the session title shown in listings:
// "<template> checkup by <patient> at <clinic>". The patient part prefers
// the full name and falls back to the phone number.
func deriveTitle(templateTitle string, u *repo.User, clinicTitle string) string {
	who := ""
	if u != nil {
		var parts []string
		if u.FirstName != nil && *u.FirstName != "" {
			parts = append(parts, *u.FirstName)
		}
		if u.LastName != nil && *u.LastName != "" {
			parts = append(parts, *u.LastName)
		}
		who = strings.Join(parts, " ")
		if who == "" {
			who = u.Phone
		}
	}

	title := strings.TrimSpace(fmt.Sprintf("%s checkup by %s", templateTitle, who))
	if clinicTitle != "" {
		title += " at " + clinicTitle
	}
	return title
}

// answersInOrder loads the full answer log oldest-first with the option
// outcome data the aggregator needs.
func (s *checkupService) answersInOrder(ctx context.Context, checkupID uuid.UUID) ([]*repo.QuestionAnswer, error) {
	return s.db.QuestionAnswer.Query().
		Where(entanswer.CheckupID(checkupID)).
		WithOption().
		WithQuestion().
		Order(entanswer.ByCreatedAt(sql.OrderAsc()), entanswer.ByID(sql.OrderAsc())).
		All(ctx)
}
