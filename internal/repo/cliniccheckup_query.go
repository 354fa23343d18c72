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
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// ClinicCheckupQuery is the builder for querying ClinicCheckup entities.
type ClinicCheckupQuery struct {
	config
	ctx                  *QueryContext
	order                []cliniccheckup.OrderOption
	inters               []Interceptor
	predicates           []predicate.ClinicCheckup
	withClinic           *ClinicQuery
	withStartingQuestion *QuestionShareQuery
	withAnalyzes         *CheckupAnalyzeQuery
	withSessions         *CheckupQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ClinicCheckupQuery builder.
func (_q *ClinicCheckupQuery) Where(ps ...predicate.ClinicCheckup) *ClinicCheckupQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ClinicCheckupQuery) Limit(limit int) *ClinicCheckupQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ClinicCheckupQuery) Offset(offset int) *ClinicCheckupQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ClinicCheckupQuery) Unique(unique bool) *ClinicCheckupQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ClinicCheckupQuery) Order(o ...cliniccheckup.OrderOption) *ClinicCheckupQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryClinic chains the current query on the "clinic" edge.
func (_q *ClinicCheckupQuery) QueryClinic() *ClinicQuery {
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
			sqlgraph.From(cliniccheckup.Table, cliniccheckup.FieldID, selector),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cliniccheckup.ClinicTable, cliniccheckup.ClinicColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStartingQuestion chains the current query on the "starting_question" edge.
func (_q *ClinicCheckupQuery) QueryStartingQuestion() *QuestionShareQuery {
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
			sqlgraph.From(cliniccheckup.Table, cliniccheckup.FieldID, selector),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, cliniccheckup.StartingQuestionTable, cliniccheckup.StartingQuestionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnalyzes chains the current query on the "analyzes" edge.
func (_q *ClinicCheckupQuery) QueryAnalyzes() *CheckupAnalyzeQuery {
	query := (&CheckupAnalyzeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cliniccheckup.Table, cliniccheckup.FieldID, selector),
			sqlgraph.To(checkupanalyze.Table, checkupanalyze.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cliniccheckup.AnalyzesTable, cliniccheckup.AnalyzesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySessions chains the current query on the "sessions" edge.
func (_q *ClinicCheckupQuery) QuerySessions() *CheckupQuery {
	query := (&CheckupClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cliniccheckup.Table, cliniccheckup.FieldID, selector),
			sqlgraph.To(checkup.Table, checkup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cliniccheckup.SessionsTable, cliniccheckup.SessionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ClinicCheckup entity from the query.
// Returns a *NotFoundError when no ClinicCheckup was found.
func (_q *ClinicCheckupQuery) First(ctx context.Context) (*ClinicCheckup, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{cliniccheckup.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ClinicCheckupQuery) FirstX(ctx context.Context) *ClinicCheckup {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ClinicCheckup ID from the query.
// Returns a *NotFoundError when no ClinicCheckup ID was found.
func (_q *ClinicCheckupQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{cliniccheckup.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ClinicCheckupQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ClinicCheckup entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ClinicCheckup entity is found.
// Returns a *NotFoundError when no ClinicCheckup entities are found.
func (_q *ClinicCheckupQuery) Only(ctx context.Context) (*ClinicCheckup, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{cliniccheckup.Label}
	default:
		return nil, &NotSingularError{cliniccheckup.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ClinicCheckupQuery) OnlyX(ctx context.Context) *ClinicCheckup {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ClinicCheckup ID in the query.
// Returns a *NotSingularError when more than one ClinicCheckup ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ClinicCheckupQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{cliniccheckup.Label}
	default:
		err = &NotSingularError{cliniccheckup.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ClinicCheckupQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ClinicCheckups.
func (_q *ClinicCheckupQuery) All(ctx context.Context) ([]*ClinicCheckup, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ClinicCheckup, *ClinicCheckupQuery]()
	return withInterceptors[[]*ClinicCheckup](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ClinicCheckupQuery) AllX(ctx context.Context) []*ClinicCheckup {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ClinicCheckup IDs.
func (_q *ClinicCheckupQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(cliniccheckup.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ClinicCheckupQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ClinicCheckupQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ClinicCheckupQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ClinicCheckupQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ClinicCheckupQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ClinicCheckupQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ClinicCheckupQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ClinicCheckupQuery) Clone() *ClinicCheckupQuery {
	if _q == nil {
		return nil
	}
	return &ClinicCheckupQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]cliniccheckup.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.ClinicCheckup{}, _q.predicates...),
		withClinic:           _q.withClinic.Clone(),
		withStartingQuestion: _q.withStartingQuestion.Clone(),
		withAnalyzes:         _q.withAnalyzes.Clone(),
		withSessions:         _q.withSessions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithClinic tells the query-builder to eager-load the nodes that are connected to
// the "clinic" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ClinicCheckupQuery) WithClinic(opts ...func(*ClinicQuery)) *ClinicCheckupQuery {
	query := (&ClinicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withClinic = query
	return _q
}

// WithStartingQuestion tells the query-builder to eager-load the nodes that are connected to
// the "starting_question" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ClinicCheckupQuery) WithStartingQuestion(opts ...func(*QuestionShareQuery)) *ClinicCheckupQuery {
	query := (&QuestionShareClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStartingQuestion = query
	return _q
}

// WithAnalyzes tells the query-builder to eager-load the nodes that are connected to
// the "analyzes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ClinicCheckupQuery) WithAnalyzes(opts ...func(*CheckupAnalyzeQuery)) *ClinicCheckupQuery {
	query := (&CheckupAnalyzeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnalyzes = query
	return _q
}

// WithSessions tells the query-builder to eager-load the nodes that are connected to
// the "sessions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ClinicCheckupQuery) WithSessions(opts ...func(*CheckupQuery)) *ClinicCheckupQuery {
	query := (&CheckupClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSessions = query
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
//	client.ClinicCheckup.Query().
//		GroupBy(cliniccheckup.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *ClinicCheckupQuery) GroupBy(field string, fields ...string) *ClinicCheckupGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ClinicCheckupGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = cliniccheckup.Label
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
//	client.ClinicCheckup.Query().
//		Select(cliniccheckup.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ClinicCheckupQuery) Select(fields ...string) *ClinicCheckupSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ClinicCheckupSelect{ClinicCheckupQuery: _q}
	sbuild.label = cliniccheckup.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ClinicCheckupSelect configured with the given aggregations.
func (_q *ClinicCheckupQuery) Aggregate(fns ...AggregateFunc) *ClinicCheckupSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ClinicCheckupQuery) prepareQuery(ctx context.Context) error {
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
		if !cliniccheckup.ValidColumn(f) {
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

func (_q *ClinicCheckupQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ClinicCheckup, error) {
	var (
		nodes       = []*ClinicCheckup{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withClinic != nil,
			_q.withStartingQuestion != nil,
			_q.withAnalyzes != nil,
			_q.withSessions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ClinicCheckup).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ClinicCheckup{config: _q.config}
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
	if query := _q.withClinic; query != nil {
		if err := _q.loadClinic(ctx, query, nodes, nil,
			func(n *ClinicCheckup, e *Clinic) { n.Edges.Clinic = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStartingQuestion; query != nil {
		if err := _q.loadStartingQuestion(ctx, query, nodes, nil,
			func(n *ClinicCheckup, e *QuestionShare) { n.Edges.StartingQuestion = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnalyzes; query != nil {
		if err := _q.loadAnalyzes(ctx, query, nodes,
			func(n *ClinicCheckup) { n.Edges.Analyzes = []*CheckupAnalyze{} },
			func(n *ClinicCheckup, e *CheckupAnalyze) { n.Edges.Analyzes = append(n.Edges.Analyzes, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSessions; query != nil {
		if err := _q.loadSessions(ctx, query, nodes,
			func(n *ClinicCheckup) { n.Edges.Sessions = []*Checkup{} },
			func(n *ClinicCheckup, e *Checkup) { n.Edges.Sessions = append(n.Edges.Sessions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ClinicCheckupQuery) loadClinic(ctx context.Context, query *ClinicQuery, nodes []*ClinicCheckup, init func(*ClinicCheckup), assign func(*ClinicCheckup, *Clinic)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ClinicCheckup)
	for i := range nodes {
		fk := nodes[i].ClinicID
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
			return fmt.Errorf(`unexpected foreign-key "clinic_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ClinicCheckupQuery) loadStartingQuestion(ctx context.Context, query *QuestionShareQuery, nodes []*ClinicCheckup, init func(*ClinicCheckup), assign func(*ClinicCheckup, *QuestionShare)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ClinicCheckup)
	for i := range nodes {
		if nodes[i].StartingQuestionID == nil {
			continue
		}
		fk := *nodes[i].StartingQuestionID
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
			return fmt.Errorf(`unexpected foreign-key "starting_question_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ClinicCheckupQuery) loadAnalyzes(ctx context.Context, query *CheckupAnalyzeQuery, nodes []*ClinicCheckup, init func(*ClinicCheckup), assign func(*ClinicCheckup, *CheckupAnalyze)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ClinicCheckup)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(checkupanalyze.FieldClinicCheckupID)
	}
	query.Where(predicate.CheckupAnalyze(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(cliniccheckup.AnalyzesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClinicCheckupID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "clinic_checkup_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ClinicCheckupQuery) loadSessions(ctx context.Context, query *CheckupQuery, nodes []*ClinicCheckup, init func(*ClinicCheckup), assign func(*ClinicCheckup, *Checkup)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ClinicCheckup)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(checkup.FieldClinicCheckupID)
	}
	query.Where(predicate.Checkup(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(cliniccheckup.SessionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClinicCheckupID
		if fk == nil {
			return fmt.Errorf(`foreign-key "clinic_checkup_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "clinic_checkup_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ClinicCheckupQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ClinicCheckupQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(cliniccheckup.Table, cliniccheckup.Columns, sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cliniccheckup.FieldID)
		for i := range fields {
			if fields[i] != cliniccheckup.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withClinic != nil {
			_spec.Node.AddColumnOnce(cliniccheckup.FieldClinicID)
		}
		if _q.withStartingQuestion != nil {
			_spec.Node.AddColumnOnce(cliniccheckup.FieldStartingQuestionID)
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

func (_q *ClinicCheckupQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(cliniccheckup.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = cliniccheckup.Columns
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

// ClinicCheckupGroupBy is the group-by builder for ClinicCheckup entities.
type ClinicCheckupGroupBy struct {
	selector
	build *ClinicCheckupQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ClinicCheckupGroupBy) Aggregate(fns ...AggregateFunc) *ClinicCheckupGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ClinicCheckupGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClinicCheckupQuery, *ClinicCheckupGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ClinicCheckupGroupBy) sqlScan(ctx context.Context, root *ClinicCheckupQuery, v any) error {
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

// ClinicCheckupSelect is the builder for selecting fields of ClinicCheckup entities.
type ClinicCheckupSelect struct {
	*ClinicCheckupQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ClinicCheckupSelect) Aggregate(fns ...AggregateFunc) *ClinicCheckupSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ClinicCheckupSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClinicCheckupQuery, *ClinicCheckupSelect](ctx, _s.ClinicCheckupQuery, _s, _s.inters, v)
}

func (_s *ClinicCheckupSelect) sqlScan(ctx context.Context, root *ClinicCheckupQuery, v any) error {
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
