package checkup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
	entalert "github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	entclinic "github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	entdoctor "github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/pkg/equation"
)

// OptionOutcome is the clinical payload of one chosen option, in answer
// order. It is what the pure aggregation step consumes.
type OptionOutcome struct {
	Interpretation string
	Weight         int
	AlertID        *uuid.UUID
	DoctorID       *uuid.UUID
	ClinicID       *uuid.UUID
}

// Aggregation is the order-preserving summary of an answer log.
// Interpretations keep duplicates (the same option chosen twice reads
// twice); referral and alert IDs are deduplicated first-seen.
type Aggregation struct {
	Interpretations []string
	AlertIDs        []uuid.UUID
	DoctorIDs       []uuid.UUID
	ClinicIDs       []uuid.UUID
	WeightSum       int
}

// Result is the aggregated outcome of a checkup session. The
// suggestedDoctors/suggestedClinics key spelling is part of the client
// contract and predates this codebase.
type Result struct {
	CheckupID uuid.UUID `json:"checkup_id"`
	Title     string    `json:"title"`

	// NoAnswers marks an empty session. Not an error: the session exists,
	// the patient just never answered anything.
	NoAnswers bool `json:"no_answers"`

	Interpretations []string `json:"interpretations"`
	WeightSum       int      `json:"weight_sum"`
	Score           *float64 `json:"score,omitempty"`

	Alerts  []*repo.Alert  `json:"alerts"`
	Doctors []*repo.Doctor `json:"suggestedDoctors"`
	Clinics []*repo.Clinic `json:"suggestedClinics"`
}

// aggregate folds option outcomes into the order-preserving summary.
func aggregate(outcomes []OptionOutcome) Aggregation {
	agg := Aggregation{}

	seenAlert := map[uuid.UUID]struct{}{}
	seenDoctor := map[uuid.UUID]struct{}{}
	seenClinic := map[uuid.UUID]struct{}{}

	for _, o := range outcomes {
		if o.Interpretation != "" {
			agg.Interpretations = append(agg.Interpretations, o.Interpretation)
		}
		agg.WeightSum += o.Weight

		if o.AlertID != nil {
			if _, ok := seenAlert[*o.AlertID]; !ok {
				seenAlert[*o.AlertID] = struct{}{}
				agg.AlertIDs = append(agg.AlertIDs, *o.AlertID)
			}
		}
		if o.DoctorID != nil {
			if _, ok := seenDoctor[*o.DoctorID]; !ok {
				seenDoctor[*o.DoctorID] = struct{}{}
				agg.DoctorIDs = append(agg.DoctorIDs, *o.DoctorID)
			}
		}
		if o.ClinicID != nil {
			if _, ok := seenClinic[*o.ClinicID]; !ok {
				seenClinic[*o.ClinicID] = struct{}{}
				agg.ClinicIDs = append(agg.ClinicIDs, *o.ClinicID)
			}
		}
	}

	return agg
}

// outcomesFromAnswers flattens the answer log into option outcomes in log
// order and picks the expression of the first answered equation question.
// Rows whose question or option was deleted after answering carry no
// clinical payload and are skipped.
func outcomesFromAnswers(answers []*repo.QuestionAnswer) ([]OptionOutcome, string) {
	outcomes := make([]OptionOutcome, 0, len(answers))
	var equationExpr string
	for _, a := range answers {
		opt := a.Edges.Option
		if opt == nil {
			continue
		}
		out := OptionOutcome{Weight: opt.Weight}
		if opt.Interpretation != nil {
			out.Interpretation = *opt.Interpretation
		}
		out.AlertID = opt.AlertID
		out.DoctorID = opt.SuggestedDoctorID
		out.ClinicID = opt.SuggestedClinicID
		outcomes = append(outcomes, out)

		// First answered equation question wins
		if equationExpr == "" && a.Edges.Question != nil &&
			a.Edges.Question.IsEquation && a.Edges.Question.Equation != nil {
			equationExpr = *a.Edges.Question.Equation
		}
	}
	return outcomes, equationExpr
}

func (s *checkupService) Result(ctx context.Context, checkupID, requesterID uuid.UUID) (*Result, error) {
	ck, err := s.GetByID(ctx, checkupID, requesterID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answersInOrder(ctx, checkupID)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	res := &Result{
		CheckupID: ck.ID,
		Title:     ck.Title,
	}
	if len(answers) == 0 {
		res.NoAnswers = true
		return res, nil
	}

	outcomes, equationExpr := outcomesFromAnswers(answers)

	agg := aggregate(outcomes)
	res.Interpretations = agg.Interpretations
	res.WeightSum = agg.WeightSum

	if equationExpr != "" {
		score, err := equation.Eval(equationExpr, float64(agg.WeightSum))
		if err != nil {
			// Authoring validates equations, so a failure here means the
			// stored expression was corrupted. Degrade to weight-sum only.
			slog.Warn("equation evaluation failed", "checkup_id", checkupID, "error", err)
		} else {
			res.Score = &score
		}
	}

	// Resolve referral targets in three batch lookups, keeping the
	// first-seen order from the answer log.
	if len(agg.AlertIDs) > 0 {
		alerts, err := s.db.Alert.Query().
			Where(entalert.IDIn(agg.AlertIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load alerts: %w", err)
		}
		res.Alerts = sortByIDs(alerts, agg.AlertIDs, func(a *repo.Alert) uuid.UUID { return a.ID })
	}
	if len(agg.DoctorIDs) > 0 {
		doctors, err := s.db.Doctor.Query().
			Where(entdoctor.IDIn(agg.DoctorIDs...)).
			WithUser().
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load doctors: %w", err)
		}
		res.Doctors = sortByIDs(doctors, agg.DoctorIDs, func(d *repo.Doctor) uuid.UUID { return d.ID })
	}
	if len(agg.ClinicIDs) > 0 {
		clinics, err := s.db.Clinic.Query().
			Where(entclinic.IDIn(agg.ClinicIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load clinics: %w", err)
		}
		res.Clinics = sortByIDs(clinics, agg.ClinicIDs, func(c *repo.Clinic) uuid.UUID { return c.ID })
	}

	return res, nil
}

// sortByIDs reorders fetched rows to match the id order of the answer log.
func sortByIDs[T any](rows []T, ids []uuid.UUID, id func(T) uuid.UUID) []T {
	byID := make(map[uuid.UUID]T, len(rows))
	for _, r := range rows {
		byID[id(r)] = r
	}
	out := make([]T, 0, len(rows))
	for _, want := range ids {
		if r, ok := byID[want]; ok {
			out = append(out, r)
		}
	}
	return out
}
