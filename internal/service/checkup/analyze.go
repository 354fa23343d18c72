package checkup

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entanalyze "github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	entinterp "github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
)

type CreateAnalyzeRequest struct {
	Title       string
	Description *string
}

type AddInterpretationRequest struct {
	Title   string
	Content *string
}

type AddSuggestionRequest struct {
	DoctorID      *uuid.UUID
	RealDoctorID  *uuid.UUID
	ClinicID      *uuid.UUID
	RealClinicID  *uuid.UUID
	ClinicMediaID *uuid.UUID
	Note          *string
}

func (s *checkupService) CreateAnalyze(ctx context.Context, templateID uuid.UUID, req CreateAnalyzeRequest) (*repo.CheckupAnalyze, error) {
	if _, err := s.GetTemplate(ctx, templateID); err != nil {
		return nil, err
	}

	c := s.db.CheckupAnalyze.Create().
		SetClinicCheckupID(templateID).
		SetTitle(req.Title)
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	return c.Save(ctx)
}

func (s *checkupService) ListAnalyzes(ctx context.Context, templateID uuid.UUID) ([]*repo.CheckupAnalyze, error) {
	if _, err := s.GetTemplate(ctx, templateID); err != nil {
		return nil, err
	}

	analyzes, err := s.db.CheckupAnalyze.Query().
		Where(
			entanalyze.ClinicCheckupID(templateID),
			entanalyze.DeletedAtIsNil(),
		).
		WithInterpretations(func(iq *repo.InterpretationQuery) {
			iq.Where(entinterp.DeletedAtIsNil()).
				WithSuggestions().
				Order(entinterp.ByCreatedAt(sql.OrderAsc()))
		}).
		Order(entanalyze.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list analyzes: %w", err)
	}
	return analyzes, nil
}

func (s *checkupService) DeleteAnalyze(ctx context.Context, templateID, analyzeID uuid.UUID) error {
	a, err := s.db.CheckupAnalyze.Query().
		Where(
			entanalyze.ID(analyzeID),
			entanalyze.ClinicCheckupID(templateID),
			entanalyze.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrAnalyzeNotFound
		}
		return fmt.Errorf("get analyze: %w", err)
	}
	return s.db.CheckupAnalyze.UpdateOne(a).SetDeletedAt(time.Now()).Exec(ctx)
}

func (s *checkupService) AddInterpretation(ctx context.Context, analyzeID uuid.UUID, req AddInterpretationRequest) (*repo.Interpretation, error) {
	ok, err := s.db.CheckupAnalyze.Query().
		Where(entanalyze.ID(analyzeID), entanalyze.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check analyze: %w", err)
	}
	if !ok {
		return nil, ErrAnalyzeNotFound
	}

	c := s.db.Interpretation.Create().
		SetAnalyzeID(analyzeID).
		SetTitle(req.Title)
	if req.Content != nil {
		c = c.SetNillableContent(req.Content)
	}
	return c.Save(ctx)
}

func (s *checkupService) AddSuggestion(ctx context.Context, interpretationID uuid.UUID, req AddSuggestionRequest) (*repo.Suggestion, error) {
	ok, err := s.db.Interpretation.Query().
		Where(entinterp.ID(interpretationID), entinterp.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check interpretation: %w", err)
	}
	if !ok {
		return nil, ErrInterpretationNotFound
	}

	c := s.db.Suggestion.Create().
		SetInterpretationID(interpretationID)
	if req.DoctorID != nil {
		c = c.SetNillableDoctorID(req.DoctorID)
	}
	if req.RealDoctorID != nil {
		c = c.SetNillableRealDoctorID(req.RealDoctorID)
	}
	if req.ClinicID != nil {
		c = c.SetNillableClinicID(req.ClinicID)
	}
	if req.RealClinicID != nil {
		c = c.SetNillableRealClinicID(req.RealClinicID)
	}
	if req.ClinicMediaID != nil {
		c = c.SetNillableClinicMediaID(req.ClinicMediaID)
	}
	if req.Note != nil {
		c = c.SetNillableNote(req.Note)
	}
	return c.Save(ctx)
}
