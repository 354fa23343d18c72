package question

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entorgan "github.com/pezeshkyar/checkup_backend/internal/repo/organ"
	entoption "github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	entquestion "github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
	"github.com/pezeshkyar/checkup_backend/pkg/equation"
)

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

// Band is a [lower, upper] answer range bound to an option.
type Band struct {
	Lower float64
	Upper float64
}

type OptionInput struct {
	Title             string
	Weight            int
	Interpretation    *string
	Tutorial          *string
	AlertID           *uuid.UUID
	SuggestedDoctorID *uuid.UUID
	SuggestedClinicID *uuid.UUID
	IsBranch          bool
	ConnectQuestionID *uuid.UUID

	NumberRanges   []Band
	DateRanges     []Band
	EquationRanges []Band
}

type CreateQuestionRequest struct {
	DoctorID     uuid.UUID
	ClinicID     *uuid.UUID
	Title        *string
	Prompt       string
	QuestionType string
	ExpertLevel  string
	Priority     string
	DateType     string
	IsStarter    bool
	IsEquation   bool
	Equation     *string
	OrganIDs     []uuid.UUID
	Options      []OptionInput
}

type UpdateQuestionRequest struct {
	Title        *string
	Prompt       *string
	QuestionType *string
	ExpertLevel  *string
	Priority     *string
	DateType     *string
	IsStarter    *bool
	IsEquation   *bool
	Equation     *string

	// When non-nil the organ tag set is replaced wholesale.
	OrganIDs []uuid.UUID

	// When non-nil the option set is replaced wholesale inside the same
	// transaction. Answers referencing removed options cascade away.
	Options []OptionInput
}

type ListQuestionsRequest struct {
	Page     int
	PerPage  int
	DoctorID *uuid.UUID
	ClinicID *uuid.UUID
	Starter  *bool
	Organs   []string // organ names, any-match
	Search   string   // matches prompt and title
}

type CreateOrganRequest struct {
	Name     string
	ParentID *uuid.UUID
}

// OptionLayout carries flowchart position updates for one option.
type OptionLayout struct {
	OptionID          uuid.UUID
	X                 *float64
	Y                 *float64
	IsBranch          *bool
	ConnectQuestionID *uuid.UUID
	ClearConnect      bool
}

// LayoutItem carries flowchart updates for one question node.
type LayoutItem struct {
	QuestionID        uuid.UUID
	Visible           *bool
	SrcX              *float64
	SrcY              *float64
	DesX              *float64
	DesY              *float64
	BranchCount       *int
	ConnectQuestionID *uuid.UUID
	ClearConnect      bool
	Options           []OptionLayout
}

// LayoutItemResult reports the outcome of saving one layout item.
type LayoutItemResult struct {
	QuestionID uuid.UUID
	OK         bool
	Error      string
}

// LayoutReport summarises a batch layout save. A failed item never aborts
// the batch; callers inspect the per-item results.
type LayoutReport struct {
	Items  []LayoutItemResult
	Saved  int
	Failed int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateQuestionRequest) (*repo.QuestionShare, error)
	GetByID(ctx context.Context, questionID uuid.UUID) (*repo.QuestionShare, error)
	List(ctx context.Context, req ListQuestionsRequest) (*PaginatedResult[*repo.QuestionShare], error)
	Update(ctx context.Context, questionID, doctorID uuid.UUID, req UpdateQuestionRequest) (*repo.QuestionShare, error)
	Delete(ctx context.Context, questionID, doctorID uuid.UUID) error

	// SaveLayout applies a batch of flowchart position updates. Items are
	// saved independently; one broken item does not fail the rest.
	SaveLayout(ctx context.Context, items []LayoutItem) (*LayoutReport, error)

	// Organ taxonomy questions are tagged with.
	CreateOrgan(ctx context.Context, req CreateOrganRequest) (*repo.Organ, error)
	ListOrgans(ctx context.Context) ([]*repo.Organ, error)
	DeleteOrgan(ctx context.Context, organID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type questionService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &questionService{db: db}
}

func (s *questionService) Create(ctx context.Context, req CreateQuestionRequest) (*repo.QuestionShare, error) {
	if req.Prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if err := validateEquation(req.IsEquation, req.Equation); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	c := tx.QuestionShare.Create().
		SetDoctorID(req.DoctorID).
		SetPrompt(req.Prompt).
		SetIsStarter(req.IsStarter).
		SetIsEquation(req.IsEquation)

	if req.ClinicID != nil {
		c = c.SetNillableClinicID(req.ClinicID)
	}
	if req.Title != nil {
		c = c.SetNillableTitle(req.Title)
	}
	if req.QuestionType != "" {
		c = c.SetQuestionType(entquestion.QuestionType(req.QuestionType))
	}
	if req.ExpertLevel != "" {
		c = c.SetExpertLevel(entquestion.ExpertLevel(req.ExpertLevel))
	}
	if req.Priority != "" {
		c = c.SetPriority(entquestion.Priority(req.Priority))
	}
	if req.DateType != "" {
		c = c.SetDateType(entquestion.DateType(req.DateType))
	}
	if req.Equation != nil {
		c = c.SetNillableEquation(req.Equation)
	}
	if len(req.OrganIDs) > 0 {
		if err := checkOrgans(ctx, tx, req.OrganIDs); err != nil {
			return nil, err
		}
		c = c.AddOrganIDs(req.OrganIDs...)
	}

	q, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	if err := createOptions(ctx, tx, q.ID, req.Options); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return s.GetByID(ctx, q.ID)
}

func (s *questionService) GetByID(ctx context.Context, questionID uuid.UUID) (*repo.QuestionShare, error) {
	q, err := s.db.QuestionShare.Query().
		Where(entquestion.ID(questionID), entquestion.DeletedAtIsNil()).
		WithOptions(func(oq *repo.QuestionOptionQuery) {
			oq.Where(entoption.DeletedAtIsNil()).
				WithNumberRanges().
				WithDateRanges().
				WithEquationRanges()
		}).
		WithOrgans().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

func (s *questionService) List(ctx context.Context, req ListQuestionsRequest) (*PaginatedResult[*repo.QuestionShare], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.QuestionShare.Query().
		Where(entquestion.DeletedAtIsNil())

	if req.DoctorID != nil {
		q = q.Where(entquestion.DoctorID(*req.DoctorID))
	}
	if req.ClinicID != nil {
		q = q.Where(entquestion.ClinicID(*req.ClinicID))
	}
	if req.Starter != nil {
		q = q.Where(entquestion.IsStarter(*req.Starter))
	}
	if len(req.Organs) > 0 {
		q = q.Where(entquestion.HasOrgansWith(entorgan.NameIn(req.Organs...)))
	}
	if req.Search != "" {
		q = q.Where(entquestion.Or(
			entquestion.PromptContainsFold(req.Search),
			entquestion.TitleContainsFold(req.Search),
		))
	}

	q = q.Order(entquestion.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	questions, err := q.
		WithOptions(func(oq *repo.QuestionOptionQuery) {
			oq.Where(entoption.DeletedAtIsNil())
		}).
		WithOrgans().
		Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.QuestionShare]{
		Data:       questions,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *questionService) Update(ctx context.Context, questionID, doctorID uuid.UUID, req UpdateQuestionRequest) (*repo.QuestionShare, error) {
	q, err := s.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q.DoctorID != doctorID {
		return nil, ErrNotQuestionAuthor
	}

	isEquation := q.IsEquation
	if req.IsEquation != nil {
		isEquation = *req.IsEquation
	}
	eq := q.Equation
	if req.Equation != nil {
		eq = req.Equation
	}
	if err := validateEquation(isEquation, eq); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	u := tx.QuestionShare.UpdateOneID(questionID)
	if req.Title != nil {
		u = u.SetNillableTitle(req.Title)
	}
	if req.Prompt != nil {
		if *req.Prompt == "" {
			return nil, ErrEmptyPrompt
		}
		u = u.SetPrompt(*req.Prompt)
	}
	if req.QuestionType != nil {
		u = u.SetQuestionType(entquestion.QuestionType(*req.QuestionType))
	}
	if req.ExpertLevel != nil {
		u = u.SetExpertLevel(entquestion.ExpertLevel(*req.ExpertLevel))
	}
	if req.Priority != nil {
		u = u.SetPriority(entquestion.Priority(*req.Priority))
	}
	if req.DateType != nil {
		u = u.SetDateType(entquestion.DateType(*req.DateType))
	}
	if req.IsStarter != nil {
		u = u.SetIsStarter(*req.IsStarter)
	}
	if req.IsEquation != nil {
		u = u.SetIsEquation(*req.IsEquation)
	}
	if req.Equation != nil {
		u = u.SetNillableEquation(req.Equation)
	}
	if req.OrganIDs != nil {
		if err := checkOrgans(ctx, tx, req.OrganIDs); err != nil {
			return nil, err
		}
		u = u.ClearOrgans().AddOrganIDs(req.OrganIDs...)
	}

	if _, err := u.Save(ctx); err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}

	// Replace the option set when a new one is provided
	if req.Options != nil {
		if _, err := tx.QuestionOption.Delete().
			Where(entoption.QuestionID(questionID)).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("clear options: %w", err)
		}
		if err := createOptions(ctx, tx, questionID, req.Options); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return s.GetByID(ctx, questionID)
}

// Delete removes a question for good. The FK cascades take the options,
// their range bands and every answer row that referenced the question, so
// past results stop reporting its interpretations and alerts.
func (s *questionService) Delete(ctx context.Context, questionID, doctorID uuid.UUID) error {
	q, err := s.GetByID(ctx, questionID)
	if err != nil {
		return err
	}
	if q.DoctorID != doctorID {
		return ErrNotQuestionAuthor
	}
	return s.db.QuestionShare.DeleteOne(q).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func (s *questionService) SaveLayout(ctx context.Context, items []LayoutItem) (*LayoutReport, error) {
	return buildLayoutReport(items, func(item LayoutItem) error {
		return s.saveLayoutItem(ctx, item)
	}), nil
}

// buildLayoutReport applies each item and folds the outcomes into a
// per-item report. A failed item is recorded and the batch continues, so
// one broken node never blocks the rest of the flowchart.
func buildLayoutReport(items []LayoutItem, apply func(LayoutItem) error) *LayoutReport {
	report := &LayoutReport{Items: make([]LayoutItemResult, 0, len(items))}

	for _, item := range items {
		if err := apply(item); err != nil {
			report.Items = append(report.Items, LayoutItemResult{
				QuestionID: item.QuestionID,
				OK:         false,
				Error:      err.Error(),
			})
			report.Failed++
			continue
		}
		report.Items = append(report.Items, LayoutItemResult{
			QuestionID: item.QuestionID,
			OK:         true,
		})
		report.Saved++
	}

	return report
}

// saveLayoutItem applies one node's layout inside its own transaction so a
// broken item cannot poison the rest of the batch.
func (s *questionService) saveLayoutItem(ctx context.Context, item LayoutItem) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.QuestionShare.Query().
		Where(entquestion.ID(item.QuestionID), entquestion.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check question: %w", err)
	}
	if !exists {
		return ErrQuestionNotFound
	}

	u := tx.QuestionShare.UpdateOneID(item.QuestionID)
	if item.Visible != nil {
		u = u.SetChartVisible(*item.Visible)
	}
	if item.SrcX != nil {
		u = u.SetChartSrcX(*item.SrcX)
	}
	if item.SrcY != nil {
		u = u.SetChartSrcY(*item.SrcY)
	}
	if item.DesX != nil {
		u = u.SetChartDesX(*item.DesX)
	}
	if item.DesY != nil {
		u = u.SetChartDesY(*item.DesY)
	}
	if item.BranchCount != nil {
		u = u.SetChartBranchCount(*item.BranchCount)
	}
	if item.ClearConnect {
		u = u.ClearChartConnectQuestionID()
	} else if item.ConnectQuestionID != nil {
		if err := checkConnectTarget(ctx, tx, *item.ConnectQuestionID); err != nil {
			return err
		}
		u = u.SetChartConnectQuestionID(*item.ConnectQuestionID)
	}

	if _, err := u.Save(ctx); err != nil {
		return fmt.Errorf("save question layout: %w", err)
	}

	for _, ol := range item.Options {
		ou := tx.QuestionOption.UpdateOneID(ol.OptionID)
		if ol.X != nil {
			ou = ou.SetChartX(*ol.X)
		}
		if ol.Y != nil {
			ou = ou.SetChartY(*ol.Y)
		}
		if ol.IsBranch != nil {
			ou = ou.SetIsBranch(*ol.IsBranch)
		}
		if ol.ClearConnect {
			ou = ou.ClearChartConnectQuestionID()
		} else if ol.ConnectQuestionID != nil {
			if err := checkConnectTarget(ctx, tx, *ol.ConnectQuestionID); err != nil {
				return err
			}
			ou = ou.SetChartConnectQuestionID(*ol.ConnectQuestionID)
		}

		if _, err := ou.Save(ctx); err != nil {
			if repo.IsNotFound(err) {
				return ErrOptionNotFound
			}
			return fmt.Errorf("save option layout: %w", err)
		}
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Organ taxonomy
// ---------------------------------------------------------------------------

func (s *questionService) CreateOrgan(ctx context.Context, req CreateOrganRequest) (*repo.Organ, error) {
	if req.Name == "" {
		return nil, ErrEmptyOrganName
	}

	c := s.db.Organ.Create().SetName(req.Name)
	if req.ParentID != nil {
		ok, err := s.db.Organ.Query().
			Where(entorgan.ID(*req.ParentID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check parent organ: %w", err)
		}
		if !ok {
			return nil, ErrOrganNotFound
		}
		c = c.SetNillableParentID(req.ParentID)
	}

	o, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrOrganExists
		}
		return nil, fmt.Errorf("create organ: %w", err)
	}
	return o, nil
}

func (s *questionService) ListOrgans(ctx context.Context) ([]*repo.Organ, error) {
	organs, err := s.db.Organ.Query().
		Order(entorgan.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organs: %w", err)
	}
	return organs, nil
}

// DeleteOrgan removes an organ and, through the parent cascade, its whole
// subtree. Question tags pointing at removed organs go with them.
func (s *questionService) DeleteOrgan(ctx context.Context, organID uuid.UUID) error {
	err := s.db.Organ.DeleteOneID(organID).Exec(ctx)
	if repo.IsNotFound(err) {
		return ErrOrganNotFound
	}
	return err
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// checkOrgans verifies every referenced organ tag exists.
func checkOrgans(ctx context.Context, tx *repo.Tx, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := tx.Organ.Query().
		Where(entorgan.IDIn(ids...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("check organs: %w", err)
	}
	if n != len(ids) {
		return ErrOrganNotFound
	}
	return nil
}

func validateEquation(isEquation bool, expression *string) error {
	if !isEquation {
		return nil
	}
	if expression == nil || *expression == "" {
		return ErrEquationRequired
	}
	if err := equation.Validate(*expression); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEquation, errors.Unwrap(err))
	}
	return nil
}

func checkConnectTarget(ctx context.Context, tx *repo.Tx, id uuid.UUID) error {
	ok, err := tx.QuestionShare.Query().
		Where(entquestion.ID(id), entquestion.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check connect target: %w", err)
	}
	if !ok {
		return ErrConnectNotFound
	}
	return nil
}

func createOptions(ctx context.Context, tx *repo.Tx, questionID uuid.UUID, options []OptionInput) error {
	for _, opt := range options {
		oc := tx.QuestionOption.Create().
			SetQuestionID(questionID).
			SetTitle(opt.Title).
			SetWeight(opt.Weight).
			SetIsBranch(opt.IsBranch)

		if opt.Interpretation != nil {
			oc = oc.SetNillableInterpretation(opt.Interpretation)
		}
		if opt.Tutorial != nil {
			oc = oc.SetNillableTutorial(opt.Tutorial)
		}
		if opt.AlertID != nil {
			oc = oc.SetNillableAlertID(opt.AlertID)
		}
		if opt.SuggestedDoctorID != nil {
			oc = oc.SetNillableSuggestedDoctorID(opt.SuggestedDoctorID)
		}
		if opt.SuggestedClinicID != nil {
			oc = oc.SetNillableSuggestedClinicID(opt.SuggestedClinicID)
		}
		if opt.ConnectQuestionID != nil {
			oc = oc.SetNillableChartConnectQuestionID(opt.ConnectQuestionID)
		}

		saved, err := oc.Save(ctx)
		if err != nil {
			return fmt.Errorf("create option: %w", err)
		}

		for _, band := range opt.NumberRanges {
			if _, err := tx.QuestionOptionNumber.Create().
				SetOptionID(saved.ID).
				SetLowerBand(band.Lower).
				SetUpperBand(band.Upper).
				Save(ctx); err != nil {
				return fmt.Errorf("create number range: %w", err)
			}
		}
		for _, band := range opt.DateRanges {
			if _, err := tx.QuestionOptionDate.Create().
				SetOptionID(saved.ID).
				SetLowerBand(band.Lower).
				SetUpperBand(band.Upper).
				Save(ctx); err != nil {
				return fmt.Errorf("create date range: %w", err)
			}
		}
		for _, band := range opt.EquationRanges {
			if _, err := tx.QuestionOptionEquation.Create().
				SetOptionID(saved.ID).
				SetLowerBand(band.Lower).
				SetUpperBand(band.Upper).
				Save(ctx); err != nil {
				return fmt.Errorf("create equation range: %w", err)
			}
		}
	}
	return nil
}
