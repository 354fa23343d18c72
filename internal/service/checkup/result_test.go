package checkup

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
)

func strPtr(s string) *string { return &s }

func TestAggregate(t *testing.T) {
	alertA := uuid.New()
	alertB := uuid.New()
	docA := uuid.New()
	clinicA := uuid.New()

	tests := []struct {
		name     string
		outcomes []OptionOutcome
		want     Aggregation
	}{
		{
			name:     "empty",
			outcomes: nil,
			want:     Aggregation{},
		},
		{
			name: "interpretations keep duplicates and order",
			outcomes: []OptionOutcome{
				{Interpretation: "high blood pressure", Weight: 3},
				{Interpretation: "", Weight: 1},
				{Interpretation: "high blood pressure", Weight: 2},
			},
			want: Aggregation{
				Interpretations: []string{"high blood pressure", "high blood pressure"},
				WeightSum:       6,
			},
		},
		{
			name: "referral ids deduplicated first seen",
			outcomes: []OptionOutcome{
				{AlertID: &alertA, DoctorID: &docA, Weight: 1},
				{AlertID: &alertB, ClinicID: &clinicA, Weight: 1},
				{AlertID: &alertA, DoctorID: &docA, Weight: 1},
			},
			want: Aggregation{
				AlertIDs:  []uuid.UUID{alertA, alertB},
				DoctorIDs: []uuid.UUID{docA},
				ClinicIDs: []uuid.UUID{clinicA},
				WeightSum: 3,
			},
		},
		{
			name: "negative weights sum through",
			outcomes: []OptionOutcome{
				{Weight: 5},
				{Weight: -2},
			},
			want: Aggregation{WeightSum: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregate(tt.outcomes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOutcomesFromAnswers(t *testing.T) {
	alertA := uuid.New()

	answers := []*repo.QuestionAnswer{
		{
			Edges: repo.QuestionAnswerEdges{
				Option: &repo.QuestionOption{
					Weight:         2,
					Interpretation: strPtr("rest more"),
					AlertID:        &alertA,
				},
				Question: &repo.QuestionShare{},
			},
		},
		// Question hard-deleted after answering: the row survives without
		// edges and must carry nothing into the result.
		{Edges: repo.QuestionAnswerEdges{}},
		{
			Edges: repo.QuestionAnswerEdges{
				Option: &repo.QuestionOption{Weight: 3},
				Question: &repo.QuestionShare{
					IsEquation: true,
					Equation:   strPtr("w * 2"),
				},
			},
		},
		{
			Edges: repo.QuestionAnswerEdges{
				Option: &repo.QuestionOption{Weight: 1},
				Question: &repo.QuestionShare{
					IsEquation: true,
					Equation:   strPtr("w + 1"),
				},
			},
		},
	}

	outcomes, expr := outcomesFromAnswers(answers)

	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Interpretation != "rest more" || outcomes[0].AlertID == nil {
		t.Errorf("first outcome lost its payload: %+v", outcomes[0])
	}
	if expr != "w * 2" {
		t.Errorf("expected the first answered equation to win, got %q", expr)
	}

	agg := aggregate(outcomes)
	if agg.WeightSum != 6 {
		t.Errorf("WeightSum = %d, want 6", agg.WeightSum)
	}
	if len(agg.AlertIDs) != 1 || agg.AlertIDs[0] != alertA {
		t.Errorf("AlertIDs = %v, want [%s]", agg.AlertIDs, alertA)
	}
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name          string
		templateTitle string
		user          *repo.User
		clinicTitle   string
		want          string
	}{
		{
			name:          "full name and clinic",
			templateTitle: "Heart Health",
			user: &repo.User{
				FirstName: strPtr("Sara"),
				LastName:  strPtr("Ahmadi"),
				Phone:     "+989121234567",
			},
			clinicTitle: "Tehran Heart Center",
			want:        "Heart Health checkup by Sara Ahmadi at Tehran Heart Center",
		},
		{
			name:          "falls back to phone without a name",
			templateTitle: "Sleep",
			user:          &repo.User{Phone: "+989121234567"},
			clinicTitle:   "",
			want:          "Sleep checkup by +989121234567",
		},
		{
			name:          "free-form session without a template",
			templateTitle: "",
			user: &repo.User{
				FirstName: strPtr("Sara"),
				LastName:  strPtr("Ahmadi"),
				Phone:     "+989121234567",
			},
			clinicTitle: "Pars Clinic",
			want:        "checkup by Sara Ahmadi at Pars Clinic",
		},
		{
			name:          "first name only",
			templateTitle: "Diabetes",
			user: &repo.User{
				FirstName: strPtr("Omid"),
				Phone:     "+989121234567",
			},
			clinicTitle: "Pars Clinic",
			want:        "Diabetes checkup by Omid at Pars Clinic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveTitle(tt.templateTitle, tt.user, tt.clinicTitle)
			if got != tt.want {
				t.Errorf("deriveTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortByIDs(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	type row struct{ ID uuid.UUID }
	rows := []*row{{ID: c}, {ID: a}, {ID: b}}

	got := sortByIDs(rows, []uuid.UUID{a, b, c, uuid.New()}, func(r *row) uuid.UUID { return r.ID })
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	if got[0].ID != a || got[1].ID != b || got[2].ID != c {
		t.Errorf("rows not reordered to id order")
	}
}
