// Code generated by ent, DO NOT EDIT.

package intercept

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/pezeshkyar/checkup_backend/internal/repo"
	"github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicgroup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicmedia"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/media"
	"github.com/pezeshkyar/checkup_backend/internal/repo/organ"
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptiondate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionequation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionnumber"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realclinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realdoctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/suggestion"
	"github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/user"
	"github.com/pezeshkyar/checkup_backend/internal/repo/usersession"
)

// The Query interface represents an operation that queries a graph.
// By using this interface, users can write generic code that manipulates
// query builders of different types.
type Query interface {
	// Type returns the string representation of the query type.
	Type() string
	// Limit the number of records to be returned by this query.
	Limit(int)
	// Offset to start from.
	Offset(int)
	// Unique configures the query builder to filter duplicate records.
	Unique(bool)
	// Order specifies how the records should be ordered.
	Order(...func(*sql.Selector))
	// WhereP appends storage-level predicates to the query builder. Using this method, users
	// can use type-assertion to append predicates that do not depend on any generated package.
	WhereP(...func(*sql.Selector))
}

// The Func type is an adapter that allows ordinary functions to be used as interceptors.
// Unlike traversal functions, interceptors are skipped during graph traversals. Note that the
// implementation of Func is different from the one defined in entgo.io/ent.InterceptFunc.
type Func func(context.Context, Query) error

// Intercept calls f(ctx, q) and then applied the next Querier.
func (f Func) Intercept(next repo.Querier) repo.Querier {
	return repo.QuerierFunc(func(ctx context.Context, q repo.Query) (repo.Value, error) {
		query, err := NewQuery(q)
		if err != nil {
			return nil, err
		}
		if err := f(ctx, query); err != nil {
			return nil, err
		}
		return next.Query(ctx, q)
	})
}

// The TraverseFunc type is an adapter to allow the use of ordinary function as Traverser.
// If f is a function with the appropriate signature, TraverseFunc(f) is a Traverser that calls f.
type TraverseFunc func(context.Context, Query) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseFunc) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseFunc) Traverse(ctx context.Context, q repo.Query) error {
	query, err := NewQuery(q)
	if err != nil {
		return err
	}
	return f(ctx, query)
}

// The AlertFunc type is an adapter to allow the use of ordinary function as a Querier.
type AlertFunc func(context.Context, *repo.AlertQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f AlertFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.AlertQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.AlertQuery", q)
}

// The TraverseAlert type is an adapter to allow the use of ordinary function as Traverser.
type TraverseAlert func(context.Context, *repo.AlertQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseAlert) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseAlert) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.AlertQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.AlertQuery", q)
}

// The CheckupFunc type is an adapter to allow the use of ordinary function as a Querier.
type CheckupFunc func(context.Context, *repo.CheckupQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f CheckupFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.CheckupQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.CheckupQuery", q)
}

// The TraverseCheckup type is an adapter to allow the use of ordinary function as Traverser.
type TraverseCheckup func(context.Context, *repo.CheckupQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseCheckup) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseCheckup) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.CheckupQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.CheckupQuery", q)
}

// The CheckupAnalyzeFunc type is an adapter to allow the use of ordinary function as a Querier.
type CheckupAnalyzeFunc func(context.Context, *repo.CheckupAnalyzeQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f CheckupAnalyzeFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.CheckupAnalyzeQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.CheckupAnalyzeQuery", q)
}

// The TraverseCheckupAnalyze type is an adapter to allow the use of ordinary function as Traverser.
type TraverseCheckupAnalyze func(context.Context, *repo.CheckupAnalyzeQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseCheckupAnalyze) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseCheckupAnalyze) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.CheckupAnalyzeQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.CheckupAnalyzeQuery", q)
}

// The ClinicFunc type is an adapter to allow the use of ordinary function as a Querier.
type ClinicFunc func(context.Context, *repo.ClinicQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f ClinicFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.ClinicQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.ClinicQuery", q)
}

// The TraverseClinic type is an adapter to allow the use of ordinary function as Traverser.
type TraverseClinic func(context.Context, *repo.ClinicQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseClinic) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseClinic) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.ClinicQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.ClinicQuery", q)
}

// The ClinicCheckupFunc type is an adapter to allow the use of ordinary function as a Querier.
type ClinicCheckupFunc func(context.Context, *repo.ClinicCheckupQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f ClinicCheckupFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.ClinicCheckupQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.ClinicCheckupQuery", q)
}

// The TraverseClinicCheckup type is an adapter to allow the use of ordinary function as Traverser.
type TraverseClinicCheckup func(context.Context, *repo.ClinicCheckupQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseClinicCheckup) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseClinicCheckup) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.ClinicCheckupQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.ClinicCheckupQuery", q)
}

// The ClinicGroupFunc type is an adapter to allow the use of ordinary function as a Querier.
type ClinicGroupFunc func(context.Context, *repo.ClinicGroupQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f ClinicGroupFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.ClinicGroupQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.ClinicGroupQuery", q)
}

// The TraverseClinicGroup type is an adapter to allow the use of ordinary function as Traverser.
type TraverseClinicGroup func(context.Context, *repo.ClinicGroupQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseClinicGroup) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseClinicGroup) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.ClinicGroupQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.ClinicGroupQuery", q)
}

// The ClinicMediaFunc type is an adapter to allow the use of ordinary function as a Querier.
type ClinicMediaFunc func(context.Context, *repo.ClinicMediaQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f ClinicMediaFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.ClinicMediaQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.ClinicMediaQuery", q)
}

// The TraverseClinicMedia type is an adapter to allow the use of ordinary function as Traverser.
type TraverseClinicMedia func(context.Context, *repo.ClinicMediaQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseClinicMedia) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseClinicMedia) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.ClinicMediaQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.ClinicMediaQuery", q)
}

// The DoctorFunc type is an adapter to allow the use of ordinary function as a Querier.
type DoctorFunc func(context.Context, *repo.DoctorQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f DoctorFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.DoctorQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.DoctorQuery", q)
}

// The TraverseDoctor type is an adapter to allow the use of ordinary function as Traverser.
type TraverseDoctor func(context.Context, *repo.DoctorQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseDoctor) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseDoctor) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.DoctorQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.DoctorQuery", q)
}

// The InterpretationFunc type is an adapter to allow the use of ordinary function as a Querier.
type InterpretationFunc func(context.Context, *repo.InterpretationQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f InterpretationFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.InterpretationQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.InterpretationQuery", q)
}

// The TraverseInterpretation type is an adapter to allow the use of ordinary function as Traverser.
type TraverseInterpretation func(context.Context, *repo.InterpretationQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseInterpretation) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseInterpretation) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.InterpretationQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.InterpretationQuery", q)
}

// The MediaFunc type is an adapter to allow the use of ordinary function as a Querier.
type MediaFunc func(context.Context, *repo.MediaQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f MediaFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.MediaQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.MediaQuery", q)
}

// The TraverseMedia type is an adapter to allow the use of ordinary function as Traverser.
type TraverseMedia func(context.Context, *repo.MediaQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseMedia) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseMedia) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.MediaQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.MediaQuery", q)
}

// The OrganFunc type is an adapter to allow the use of ordinary function as a Querier.
type OrganFunc func(context.Context, *repo.OrganQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f OrganFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.OrganQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.OrganQuery", q)
}

// The TraverseOrgan type is an adapter to allow the use of ordinary function as Traverser.
type TraverseOrgan func(context.Context, *repo.OrganQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseOrgan) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseOrgan) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.OrganQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.OrganQuery", q)
}

// The PatientProfileFunc type is an adapter to allow the use of ordinary function as a Querier.
type PatientProfileFunc func(context.Context, *repo.PatientProfileQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f PatientProfileFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.PatientProfileQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.PatientProfileQuery", q)
}

// The TraversePatientProfile type is an adapter to allow the use of ordinary function as Traverser.
type TraversePatientProfile func(context.Context, *repo.PatientProfileQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraversePatientProfile) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraversePatientProfile) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.PatientProfileQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.PatientProfileQuery", q)
}

// The QuestionAnswerFunc type is an adapter to allow the use of ordinary function as a Querier.
type QuestionAnswerFunc func(context.Context, *repo.QuestionAnswerQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f QuestionAnswerFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.QuestionAnswerQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.QuestionAnswerQuery", q)
}

// The TraverseQuestionAnswer type is an adapter to allow the use of ordinary function as Traverser.
type TraverseQuestionAnswer func(context.Context, *repo.QuestionAnswerQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseQuestionAnswer) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseQuestionAnswer) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.QuestionAnswerQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.QuestionAnswerQuery", q)
}

// The QuestionOptionFunc type is an adapter to allow the use of ordinary function as a Querier.
type QuestionOptionFunc func(context.Context, *repo.QuestionOptionQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f QuestionOptionFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.QuestionOptionQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.QuestionOptionQuery", q)
}

// The TraverseQuestionOption type is an adapter to allow the use of ordinary function as Traverser.
type TraverseQuestionOption func(context.Context, *repo.QuestionOptionQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseQuestionOption) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseQuestionOption) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.QuestionOptionQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.QuestionOptionQuery", q)
}

// The QuestionOptionDateFunc type is an adapter to allow the use of ordinary function as a Querier.
type QuestionOptionDateFunc func(context.Context, *repo.QuestionOptionDateQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f QuestionOptionDateFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.QuestionOptionDateQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.QuestionOptionDateQuery", q)
}

// The TraverseQuestionOptionDate type is an adapter to allow the use of ordinary function as Traverser.
type TraverseQuestionOptionDate func(context.Context, *repo.QuestionOptionDateQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseQuestionOptionDate) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseQuestionOptionDate) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.QuestionOptionDateQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.QuestionOptionDateQuery", q)
}

// The QuestionOptionEquationFunc type is an adapter to allow the use of ordinary function as a Querier.
type QuestionOptionEquationFunc func(context.Context, *repo.QuestionOptionEquationQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f QuestionOptionEquationFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.QuestionOptionEquationQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.QuestionOptionEquationQuery", q)
}

// The TraverseQuestionOptionEquation type is an adapter to allow the use of ordinary function as Traverser.
type TraverseQuestionOptionEquation func(context.Context, *repo.QuestionOptionEquationQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseQuestionOptionEquation) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseQuestionOptionEquation) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.QuestionOptionEquationQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.QuestionOptionEquationQuery", q)
}

// The QuestionOptionNumberFunc type is an adapter to allow the use of ordinary function as a Querier.
type QuestionOptionNumberFunc func(context.Context, *repo.QuestionOptionNumberQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f QuestionOptionNumberFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.QuestionOptionNumberQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.QuestionOptionNumberQuery", q)
}

// The TraverseQuestionOptionNumber type is an adapter to allow the use of ordinary function as Traverser.
type TraverseQuestionOptionNumber func(context.Context, *repo.QuestionOptionNumberQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseQuestionOptionNumber) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseQuestionOptionNumber) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.QuestionOptionNumberQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.QuestionOptionNumberQuery", q)
}

// The QuestionShareFunc type is an adapter to allow the use of ordinary function as a Querier.
type QuestionShareFunc func(context.Context, *repo.QuestionShareQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f QuestionShareFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.QuestionShareQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.QuestionShareQuery", q)
}

// The TraverseQuestionShare type is an adapter to allow the use of ordinary function as Traverser.
type TraverseQuestionShare func(context.Context, *repo.QuestionShareQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseQuestionShare) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseQuestionShare) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.QuestionShareQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.QuestionShareQuery", q)
}

// The RealClinicFunc type is an adapter to allow the use of ordinary function as a Querier.
type RealClinicFunc func(context.Context, *repo.RealClinicQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f RealClinicFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.RealClinicQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.RealClinicQuery", q)
}

// The TraverseRealClinic type is an adapter to allow the use of ordinary function as Traverser.
type TraverseRealClinic func(context.Context, *repo.RealClinicQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseRealClinic) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseRealClinic) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.RealClinicQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.RealClinicQuery", q)
}

// The RealDoctorFunc type is an adapter to allow the use of ordinary function as a Querier.
type RealDoctorFunc func(context.Context, *repo.RealDoctorQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f RealDoctorFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.RealDoctorQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.RealDoctorQuery", q)
}

// The TraverseRealDoctor type is an adapter to allow the use of ordinary function as Traverser.
type TraverseRealDoctor func(context.Context, *repo.RealDoctorQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseRealDoctor) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseRealDoctor) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.RealDoctorQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.RealDoctorQuery", q)
}

// The SuggestionFunc type is an adapter to allow the use of ordinary function as a Querier.
type SuggestionFunc func(context.Context, *repo.SuggestionQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f SuggestionFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.SuggestionQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.SuggestionQuery", q)
}

// The TraverseSuggestion type is an adapter to allow the use of ordinary function as Traverser.
type TraverseSuggestion func(context.Context, *repo.SuggestionQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseSuggestion) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseSuggestion) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.SuggestionQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.SuggestionQuery", q)
}

// The SupervisorFunc type is an adapter to allow the use of ordinary function as a Querier.
type SupervisorFunc func(context.Context, *repo.SupervisorQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f SupervisorFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.SupervisorQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.SupervisorQuery", q)
}

// The TraverseSupervisor type is an adapter to allow the use of ordinary function as Traverser.
type TraverseSupervisor func(context.Context, *repo.SupervisorQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseSupervisor) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseSupervisor) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.SupervisorQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.SupervisorQuery", q)
}

// The UserFunc type is an adapter to allow the use of ordinary function as a Querier.
type UserFunc func(context.Context, *repo.UserQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f UserFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.UserQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.UserQuery", q)
}

// The TraverseUser type is an adapter to allow the use of ordinary function as Traverser.
type TraverseUser func(context.Context, *repo.UserQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseUser) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseUser) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.UserQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.UserQuery", q)
}

// The UserSessionFunc type is an adapter to allow the use of ordinary function as a Querier.
type UserSessionFunc func(context.Context, *repo.UserSessionQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f UserSessionFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.UserSessionQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.UserSessionQuery", q)
}

// The TraverseUserSession type is an adapter to allow the use of ordinary function as Traverser.
type TraverseUserSession func(context.Context, *repo.UserSessionQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseUserSession) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseUserSession) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.UserSessionQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.UserSessionQuery", q)
}

// NewQuery returns the generic Query interface for the given typed query.
func NewQuery(q repo.Query) (Query, error) {
	switch q := q.(type) {
	case *repo.AlertQuery:
		return &query[*repo.AlertQuery, predicate.Alert, alert.OrderOption]{typ: repo.TypeAlert, tq: q}, nil
	case *repo.CheckupQuery:
		return &query[*repo.CheckupQuery, predicate.Checkup, checkup.OrderOption]{typ: repo.TypeCheckup, tq: q}, nil
	case *repo.CheckupAnalyzeQuery:
		return &query[*repo.CheckupAnalyzeQuery, predicate.CheckupAnalyze, checkupanalyze.OrderOption]{typ: repo.TypeCheckupAnalyze, tq: q}, nil
	case *repo.ClinicQuery:
		return &query[*repo.ClinicQuery, predicate.Clinic, clinic.OrderOption]{typ: repo.TypeClinic, tq: q}, nil
	case *repo.ClinicCheckupQuery:
		return &query[*repo.ClinicCheckupQuery, predicate.ClinicCheckup, cliniccheckup.OrderOption]{typ: repo.TypeClinicCheckup, tq: q}, nil
	case *repo.ClinicGroupQuery:
		return &query[*repo.ClinicGroupQuery, predicate.ClinicGroup, clinicgroup.OrderOption]{typ: repo.TypeClinicGroup, tq: q}, nil
	case *repo.ClinicMediaQuery:
		return &query[*repo.ClinicMediaQuery, predicate.ClinicMedia, clinicmedia.OrderOption]{typ: repo.TypeClinicMedia, tq: q}, nil
	case *repo.DoctorQuery:
		return &query[*repo.DoctorQuery, predicate.Doctor, doctor.OrderOption]{typ: repo.TypeDoctor, tq: q}, nil
	case *repo.InterpretationQuery:
		return &query[*repo.InterpretationQuery, predicate.Interpretation, interpretation.OrderOption]{typ: repo.TypeInterpretation, tq: q}, nil
	case *repo.MediaQuery:
		return &query[*repo.MediaQuery, predicate.Media, media.OrderOption]{typ: repo.TypeMedia, tq: q}, nil
	case *repo.OrganQuery:
		return &query[*repo.OrganQuery, predicate.Organ, organ.OrderOption]{typ: repo.TypeOrgan, tq: q}, nil
	case *repo.PatientProfileQuery:
		return &query[*repo.PatientProfileQuery, predicate.PatientProfile, patientprofile.OrderOption]{typ: repo.TypePatientProfile, tq: q}, nil
	case *repo.QuestionAnswerQuery:
		return &query[*repo.QuestionAnswerQuery, predicate.QuestionAnswer, questionanswer.OrderOption]{typ: repo.TypeQuestionAnswer, tq: q}, nil
	case *repo.QuestionOptionQuery:
		return &query[*repo.QuestionOptionQuery, predicate.QuestionOption, questionoption.OrderOption]{typ: repo.TypeQuestionOption, tq: q}, nil
	case *repo.QuestionOptionDateQuery:
		return &query[*repo.QuestionOptionDateQuery, predicate.QuestionOptionDate, questionoptiondate.OrderOption]{typ: repo.TypeQuestionOptionDate, tq: q}, nil
	case *repo.QuestionOptionEquationQuery:
		return &query[*repo.QuestionOptionEquationQuery, predicate.QuestionOptionEquation, questionoptionequation.OrderOption]{typ: repo.TypeQuestionOptionEquation, tq: q}, nil
	case *repo.QuestionOptionNumberQuery:
		return &query[*repo.QuestionOptionNumberQuery, predicate.QuestionOptionNumber, questionoptionnumber.OrderOption]{typ: repo.TypeQuestionOptionNumber, tq: q}, nil
	case *repo.QuestionShareQuery:
		return &query[*repo.QuestionShareQuery, predicate.QuestionShare, questionshare.OrderOption]{typ: repo.TypeQuestionShare, tq: q}, nil
	case *repo.RealClinicQuery:
		return &query[*repo.RealClinicQuery, predicate.RealClinic, realclinic.OrderOption]{typ: repo.TypeRealClinic, tq: q}, nil
	case *repo.RealDoctorQuery:
		return &query[*repo.RealDoctorQuery, predicate.RealDoctor, realdoctor.OrderOption]{typ: repo.TypeRealDoctor, tq: q}, nil
	case *repo.SuggestionQuery:
		return &query[*repo.SuggestionQuery, predicate.Suggestion, suggestion.OrderOption]{typ: repo.TypeSuggestion, tq: q}, nil
	case *repo.SupervisorQuery:
		return &query[*repo.SupervisorQuery, predicate.Supervisor, supervisor.OrderOption]{typ: repo.TypeSupervisor, tq: q}, nil
	case *repo.UserQuery:
		return &query[*repo.UserQuery, predicate.User, user.OrderOption]{typ: repo.TypeUser, tq: q}, nil
	case *repo.UserSessionQuery:
		return &query[*repo.UserSessionQuery, predicate.UserSession, usersession.OrderOption]{typ: repo.TypeUserSession, tq: q}, nil
	default:
		return nil, fmt.Errorf("unknown query type %T", q)
	}
}

type query[T any, P ~func(*sql.Selector), R ~func(*sql.Selector)] struct {
	typ string
	tq  interface {
		Limit(int) T
		Offset(int) T
		Unique(bool) T
		Order(...R) T
		Where(...P) T
	}
}

func (q query[T, P, R]) Type() string {
	return q.typ
}

func (q query[T, P, R]) Limit(limit int) {
	q.tq.Limit(limit)
}

func (q query[T, P, R]) Offset(offset int) {
	q.tq.Offset(offset)
}

func (q query[T, P, R]) Unique(unique bool) {
	q.tq.Unique(unique)
}

func (q query[T, P, R]) Order(orders ...func(*sql.Selector)) {
	rs := make([]R, len(orders))
	for i := range orders {
		rs[i] = orders[i]
	}
	q.tq.Order(rs...)
}

func (q query[T, P, R]) WhereP(ps ...func(*sql.Selector)) {
	p := make([]P, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	q.tq.Where(p...)
}
