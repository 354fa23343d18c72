// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptiondate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionequation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionnumber"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionOptionQuery is the builder for querying QuestionOption entities.
type QuestionOptionQuery struct {
	config
	ctx                 *QueryContext
	order               []questionoption.OrderOption
	inters              []Interceptor
	predicates          []predicate.QuestionOption
	withQuestion        *QuestionShareQuery
	withAlert           *AlertQuery
	withSuggestedDoctor *DoctorQuery
	withSuggestedClinic *ClinicQuery
	withChartConnect    *QuestionShareQuery
	withNumberRanges    *QuestionOptionNumberQuery
	withDateRanges      *QuestionOptionDateQuery
	withEquationRanges  *QuestionOptionEquationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuestionOptionQuery builder.
func (_q *QuestionOptionQuery) Where(ps ...predicate.QuestionOption) *QuestionOptionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *QuestionOptionQuery) Limit(limit int) *QuestionOptionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *QuestionOptionQuery) Offset(offset int) *QuestionOptionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *QuestionOptionQuery) Unique(unique bool) *QuestionOptionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *QuestionOptionQuery) Order(o ...questionoption.OrderOption) *QuestionOptionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryQuestion chains the current query on the "question" edge.
func (_q *QuestionOptionQuery) QueryQuestion() *QuestionShareQuery {
	query := (&QuestionShareClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, selector),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionoption.QuestionTable, questionoption.QuestionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAlert chains the current query on the "alert" edge.
func (_q *QuestionOptionQuery) QueryAlert() *AlertQuery {
	query := (&AlertClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, selector),
			sqlgraph.To(alert.Table, alert.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionoption.AlertTable, questionoption.AlertColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySuggestedDoctor chains the current query on the "suggested_doctor" edge.
func (_q *QuestionOptionQuery) QuerySuggestedDoctor() *DoctorQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, selector),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionoption.SuggestedDoctorTable, questionoption.SuggestedDoctorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySuggestedClinic chains the current query on the "suggested_clinic" edge.
func (_q *QuestionOptionQuery) QuerySuggestedClinic() *ClinicQuery {
	query := (&ClinicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, selector),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionoption.SuggestedClinicTable, questionoption.SuggestedClinicColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChartConnect chains the current query on the "chart_connect" edge.
func (_q *QuestionOptionQuery) QueryChartConnect() *QuestionShareQuery {
	query := (&QuestionShareClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, selector),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionoption.ChartConnectTable, questionoption.ChartConnectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryNumberRanges chains the current query on the "number_ranges" edge.
func (_q *QuestionOptionQuery) QueryNumberRanges() *QuestionOptionNumberQuery {
	query := (&QuestionOptionNumberClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, selector),
			sqlgraph.To(questionoptionnumber.Table, questionoptionnumber.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionoption.NumberRangesTable, questionoption.NumberRangesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDateRanges chains the current query on the "date_ranges" edge.
func (_q *QuestionOptionQuery) QueryDateRanges() *QuestionOptionDateQuery {
	query := (&QuestionOptionDateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, selector),
			sqlgraph.To(questionoptiondate.Table, questionoptiondate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionoption.DateRangesTable, questionoption.DateRangesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEquationRanges chains the current query on the "equation_ranges" edge.
func (_q *QuestionOptionQuery) QueryEquationRanges() *QuestionOptionEquationQuery {
	query := (&QuestionOptionEquationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, selector),
			sqlgraph.To(questionoptionequation.Table, questionoptionequation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionoption.EquationRangesTable, questionoption.EquationRangesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first QuestionOption entity from the query.
// Returns a *NotFoundError when no QuestionOption was found.
func (_q *QuestionOptionQuery) First(ctx context.Context) (*QuestionOption, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{questionoption.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *QuestionOptionQuery) FirstX(ctx context.Context) *QuestionOption {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuestionOption ID from the query.
// Returns a *NotFoundError when no QuestionOption ID was found.
func (_q *QuestionOptionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{questionoption.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *QuestionOptionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuestionOption entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuestionOption entity is found.
// Returns a *NotFoundError when no QuestionOption entities are found.
func (_q *QuestionOptionQuery) Only(ctx context.Context) (*QuestionOption, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{questionoption.Label}
	default:
		return nil, &NotSingularError{questionoption.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *QuestionOptionQuery) OnlyX(ctx context.Context) *QuestionOption {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuestionOption ID in the query.
// Returns a *NotSingularError when more than one QuestionOption ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *QuestionOptionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{questionoption.Label}
	default:
		err = &NotSingularError{questionoption.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *QuestionOptionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuestionOptions.
func (_q *QuestionOptionQuery) All(ctx context.Context) ([]*QuestionOption, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuestionOption, *QuestionOptionQuery]()
	return withInterceptors[[]*QuestionOption](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *QuestionOptionQuery) AllX(ctx context.Context) []*QuestionOption {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuestionOption IDs.
func (_q *QuestionOptionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(questionoption.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *QuestionOptionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *QuestionOptionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*QuestionOptionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *QuestionOptionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *QuestionOptionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *QuestionOptionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuestionOptionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *QuestionOptionQuery) Clone() *QuestionOptionQuery {
	if _q == nil {
		return nil
	}
	return &QuestionOptionQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]questionoption.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.QuestionOption{}, _q.predicates...),
		withQuestion:        _q.withQuestion.Clone(),
		withAlert:           _q.withAlert.Clone(),
		withSuggestedDoctor: _q.withSuggestedDoctor.Clone(),
		withSuggestedClinic: _q.withSuggestedClinic.Clone(),
		withChartConnect:    _q.withChartConnect.Clone(),
		withNumberRanges:    _q.withNumberRanges.Clone(),
		withDateRanges:      _q.withDateRanges.Clone(),
		withEquationRanges:  _q.withEquationRanges.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithQuestion tells the query-builder to eager-load the nodes that are connected to
// the "question" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionOptionQuery) WithQuestion(opts ...func(*QuestionShareQuery)) *QuestionOptionQuery {
	query := (&QuestionShareClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestion = query
	return _q
}

// WithAlert tells the query-builder to eager-load the nodes that are connected to
// the "alert" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionOptionQuery) WithAlert(opts ...func(*AlertQuery)) *QuestionOptionQuery {
	query := (&AlertClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAlert = query
	return _q
}

// WithSuggestedDoctor tells the query-builder to eager-load the nodes that are connected to
// the "suggested_doctor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionOptionQuery) WithSuggestedDoctor(opts ...func(*DoctorQuery)) *QuestionOptionQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSuggestedDoctor = query
	return _q
}

// WithSuggestedClinic tells the query-builder to eager-load the nodes that are connected to
// the "suggested_clinic" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionOptionQuery) WithSuggestedClinic(opts ...func(*ClinicQuery)) *QuestionOptionQuery {
	query := (&ClinicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSuggestedClinic = query
	return _q
}

// WithChartConnect tells the query-builder to eager-load the nodes that are connected to
// the "chart_connect" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionOptionQuery) WithChartConnect(opts ...func(*QuestionShareQuery)) *QuestionOptionQuery {
	query := (&QuestionShareClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChartConnect = query
	return _q
}

// WithNumberRanges tells the query-builder to eager-load the nodes that are connected to
// the "number_ranges" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionOptionQuery) WithNumberRanges(opts ...func(*QuestionOptionNumberQuery)) *QuestionOptionQuery {
	query := (&QuestionOptionNumberClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNumberRanges = query
	return _q
}

// WithDateRanges tells the query-builder to eager-load the nodes that are connected to
// the "date_ranges" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionOptionQuery) WithDateRanges(opts ...func(*QuestionOptionDateQuery)) *QuestionOptionQuery {
	query := (&QuestionOptionDateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDateRanges = query
	return _q
}

// WithEquationRanges tells the query-builder to eager-load the nodes that are connected to
// the "equation_ranges" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionOptionQuery) WithEquationRanges(opts ...func(*QuestionOptionEquationQuery)) *QuestionOptionQuery {
	query := (&QuestionOptionEquationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEquationRanges = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.QuestionOption.Query().
//		GroupBy(questionoption.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *QuestionOptionQuery) GroupBy(field string, fields ...string) *QuestionOptionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuestionOptionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = questionoption.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.QuestionOption.Query().
//		Select(questionoption.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *QuestionOptionQuery) Select(fields ...string) *QuestionOptionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &QuestionOptionSelect{QuestionOptionQuery: _q}
	sbuild.label = questionoption.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuestionOptionSelect configured with the given aggregations.
func (_q *QuestionOptionQuery) Aggregate(fns ...AggregateFunc) *QuestionOptionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *QuestionOptionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !questionoption.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *QuestionOptionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuestionOption, error) {
	var (
		nodes       = []*QuestionOption{}
		_spec       = _q.querySpec()
		loadedTypes = [8]bool{
			_q.withQuestion != nil,
			_q.withAlert != nil,
			_q.withSuggestedDoctor != nil,
			_q.withSuggestedClinic != nil,
			_q.withChartConnect != nil,
			_q.withNumberRanges != nil,
			_q.withDateRanges != nil,
			_q.withEquationRanges != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuestionOption).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuestionOption{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withQuestion; query != nil {
		if err := _q.loadQuestion(ctx, query, nodes, nil,
			func(n *QuestionOption, e *QuestionShare) { n.Edges.Question = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAlert; query != nil {
		if err := _q.loadAlert(ctx, query, nodes, nil,
			func(n *QuestionOption, e *Alert) { n.Edges.Alert = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSuggestedDoctor; query != nil {
		if err := _q.loadSuggestedDoctor(ctx, query, nodes, nil,
			func(n *QuestionOption, e *Doctor) { n.Edges.SuggestedDoctor = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSuggestedClinic; query != nil {
		if err := _q.loadSuggestedClinic(ctx, query, nodes, nil,
			func(n *QuestionOption, e *Clinic) { n.Edges.SuggestedClinic = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChartConnect; query != nil {
		if err := _q.loadChartConnect(ctx, query, nodes, nil,
			func(n *QuestionOption, e *QuestionShare) { n.Edges.ChartConnect = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withNumberRanges; query != nil {
		if err := _q.loadNumberRanges(ctx, query, nodes,
			func(n *QuestionOption) { n.Edges.NumberRanges = []*QuestionOptionNumber{} },
			func(n *QuestionOption, e *QuestionOptionNumber) {
				n.Edges.NumberRanges = append(n.Edges.NumberRanges, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withDateRanges; query != nil {
		if err := _q.loadDateRanges(ctx, query, nodes,
			func(n *QuestionOption) { n.Edges.DateRanges = []*QuestionOptionDate{} },
			func(n *QuestionOption, e *QuestionOptionDate) { n.Edges.DateRanges = append(n.Edges.DateRanges, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEquationRanges; query != nil {
		if err := _q.loadEquationRanges(ctx, query, nodes,
			func(n *QuestionOption) { n.Edges.EquationRanges = []*QuestionOptionEquation{} },
			func(n *QuestionOption, e *QuestionOptionEquation) {
				n.Edges.EquationRanges = append(n.Edges.EquationRanges, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *QuestionOptionQuery) loadQuestion(ctx context.Context, query *QuestionShareQuery, nodes []*QuestionOption, init func(*QuestionOption), assign func(*QuestionOption, *QuestionShare)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuestionOption)
	for i := range nodes {
		fk := nodes[i].QuestionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(questionshare.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "question_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuestionOptionQuery) loadAlert(ctx context.Context, query *AlertQuery, nodes []*QuestionOption, init func(*QuestionOption), assign func(*QuestionOption, *Alert)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuestionOption)
	for i := range nodes {
		if nodes[i].AlertID == nil {
			continue
		}
		fk := *nodes[i].AlertID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(alert.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "alert_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuestionOptionQuery) loadSuggestedDoctor(ctx context.Context, query *DoctorQuery, nodes []*QuestionOption, init func(*QuestionOption), assign func(*QuestionOption, *Doctor)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuestionOption)
	for i := range nodes {
		if nodes[i].SuggestedDoctorID == nil {
			continue
		}
		fk := *nodes[i].SuggestedDoctorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(doctor.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "suggested_doctor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuestionOptionQuery) loadSuggestedClinic(ctx context.Context, query *ClinicQuery, nodes []*QuestionOption, init func(*QuestionOption), assign func(*QuestionOption, *Clinic)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuestionOption)
	for i := range nodes {
		if nodes[i].SuggestedClinicID == nil {
			continue
		}
		fk := *nodes[i].SuggestedClinicID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(clinic.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "suggested_clinic_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuestionOptionQuery) loadChartConnect(ctx context.Context, query *QuestionShareQuery, nodes []*QuestionOption, init func(*QuestionOption), assign func(*QuestionOption, *QuestionShare)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuestionOption)
	for i := range nodes {
		if nodes[i].ChartConnectQuestionID == nil {
			continue
		}
		fk := *nodes[i].ChartConnectQuestionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(questionshare.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "chart_connect_question_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuestionOptionQuery) loadNumberRanges(ctx context.Context, query *QuestionOptionNumberQuery, nodes []*QuestionOption, init func(*QuestionOption), assign func(*QuestionOption, *QuestionOptionNumber)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*QuestionOption)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(questionoptionnumber.FieldOptionID)
	}
	query.Where(predicate.QuestionOptionNumber(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(questionoption.NumberRangesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.OptionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "option_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *QuestionOptionQuery) loadDateRanges(ctx context.Context, query *QuestionOptionDateQuery, nodes []*QuestionOption, init func(*QuestionOption), assign func(*QuestionOption, *QuestionOptionDate)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*QuestionOption)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(questionoptiondate.FieldOptionID)
	}
	query.Where(predicate.QuestionOptionDate(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(questionoption.DateRangesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.OptionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "option_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *QuestionOptionQuery) loadEquationRanges(ctx context.Context, query *QuestionOptionEquationQuery, nodes []*QuestionOption, init func(*QuestionOption), assign func(*QuestionOption, *QuestionOptionEquation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*QuestionOption)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(questionoptionequation.FieldOptionID)
	}
	query.Where(predicate.QuestionOptionEquation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(questionoption.EquationRangesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.OptionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "option_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *QuestionOptionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *QuestionOptionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(questionoption.Table, questionoption.Columns, sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionoption.FieldID)
		for i := range fields {
			if fields[i] != questionoption.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withQuestion != nil {
			_spec.Node.AddColumnOnce(questionoption.FieldQuestionID)
		}
		if _q.withAlert != nil {
			_spec.Node.AddColumnOnce(questionoption.FieldAlertID)
		}
		if _q.withSuggestedDoctor != nil {
			_spec.Node.AddColumnOnce(questionoption.FieldSuggestedDoctorID)
		}
		if _q.withSuggestedClinic != nil {
			_spec.Node.AddColumnOnce(questionoption.FieldSuggestedClinicID)
		}
		if _q.withChartConnect != nil {
			_spec.Node.AddColumnOnce(questionoption.FieldChartConnectQuestionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *QuestionOptionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(questionoption.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = questionoption.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// QuestionOptionGroupBy is the group-by builder for QuestionOption entities.
type QuestionOptionGroupBy struct {
	selector
	build *QuestionOptionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *QuestionOptionGroupBy) Aggregate(fns ...AggregateFunc) *QuestionOptionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *QuestionOptionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionOptionQuery, *QuestionOptionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *QuestionOptionGroupBy) sqlScan(ctx context.Context, root *QuestionOptionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// QuestionOptionSelect is the builder for selecting fields of QuestionOption entities.
type QuestionOptionSelect struct {
	*QuestionOptionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *QuestionOptionSelect) Aggregate(fns ...AggregateFunc) *QuestionOptionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *QuestionOptionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionOptionQuery, *QuestionOptionSelect](ctx, _s.QuestionOptionQuery, _s, _s.inters, v)
}

func (_s *QuestionOptionSelect) sqlScan(ctx context.Context, root *QuestionOptionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
