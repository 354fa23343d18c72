// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionAnswerQuery is the builder for querying QuestionAnswer entities.
type QuestionAnswerQuery struct {
	config
	ctx          *QueryContext
	order        []questionanswer.OrderOption
	inters       []Interceptor
	predicates   []predicate.QuestionAnswer
	withCheckup  *CheckupQuery
	withQuestion *QuestionShareQuery
	withOption   *QuestionOptionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuestionAnswerQuery builder.
func (_q *QuestionAnswerQuery) Where(ps ...predicate.QuestionAnswer) *QuestionAnswerQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *QuestionAnswerQuery) Limit(limit int) *QuestionAnswerQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *QuestionAnswerQuery) Offset(offset int) *QuestionAnswerQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *QuestionAnswerQuery) Unique(unique bool) *QuestionAnswerQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *QuestionAnswerQuery) Order(o ...questionanswer.OrderOption) *QuestionAnswerQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCheckup chains the current query on the "checkup" edge.
func (_q *QuestionAnswerQuery) QueryCheckup() *CheckupQuery {
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
			sqlgraph.From(questionanswer.Table, questionanswer.FieldID, selector),
			sqlgraph.To(checkup.Table, checkup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionanswer.CheckupTable, questionanswer.CheckupColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuestion chains the current query on the "question" edge.
func (_q *QuestionAnswerQuery) QueryQuestion() *QuestionShareQuery {
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
			sqlgraph.From(questionanswer.Table, questionanswer.FieldID, selector),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionanswer.QuestionTable, questionanswer.QuestionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOption chains the current query on the "option" edge.
func (_q *QuestionAnswerQuery) QueryOption() *QuestionOptionQuery {
	query := (&QuestionOptionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(questionanswer.Table, questionanswer.FieldID, selector),
			sqlgraph.To(questionoption.Table, questionoption.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionanswer.OptionTable, questionanswer.OptionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first QuestionAnswer entity from the query.
// Returns a *NotFoundError when no QuestionAnswer was found.
func (_q *QuestionAnswerQuery) First(ctx context.Context) (*QuestionAnswer, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{questionanswer.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *QuestionAnswerQuery) FirstX(ctx context.Context) *QuestionAnswer {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuestionAnswer ID from the query.
// Returns a *NotFoundError when no QuestionAnswer ID was found.
func (_q *QuestionAnswerQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{questionanswer.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *QuestionAnswerQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuestionAnswer entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuestionAnswer entity is found.
// Returns a *NotFoundError when no QuestionAnswer entities are found.
func (_q *QuestionAnswerQuery) Only(ctx context.Context) (*QuestionAnswer, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{questionanswer.Label}
	default:
		return nil, &NotSingularError{questionanswer.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *QuestionAnswerQuery) OnlyX(ctx context.Context) *QuestionAnswer {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuestionAnswer ID in the query.
// Returns a *NotSingularError when more than one QuestionAnswer ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *QuestionAnswerQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{questionanswer.Label}
	default:
		err = &NotSingularError{questionanswer.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *QuestionAnswerQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuestionAnswers.
func (_q *QuestionAnswerQuery) All(ctx context.Context) ([]*QuestionAnswer, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuestionAnswer, *QuestionAnswerQuery]()
	return withInterceptors[[]*QuestionAnswer](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *QuestionAnswerQuery) AllX(ctx context.Context) []*QuestionAnswer {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuestionAnswer IDs.
func (_q *QuestionAnswerQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(questionanswer.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *QuestionAnswerQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *QuestionAnswerQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*QuestionAnswerQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *QuestionAnswerQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *QuestionAnswerQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *QuestionAnswerQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuestionAnswerQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *QuestionAnswerQuery) Clone() *QuestionAnswerQuery {
	if _q == nil {
		return nil
	}
	return &QuestionAnswerQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]questionanswer.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.QuestionAnswer{}, _q.predicates...),
		withCheckup:  _q.withCheckup.Clone(),
		withQuestion: _q.withQuestion.Clone(),
		withOption:   _q.withOption.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCheckup tells the query-builder to eager-load the nodes that are connected to
// the "checkup" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionAnswerQuery) WithCheckup(opts ...func(*CheckupQuery)) *QuestionAnswerQuery {
	query := (&CheckupClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCheckup = query
	return _q
}

// WithQuestion tells the query-builder to eager-load the nodes that are connected to
// the "question" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionAnswerQuery) WithQuestion(opts ...func(*QuestionShareQuery)) *QuestionAnswerQuery {
	query := (&QuestionShareClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestion = query
	return _q
}

// WithOption tells the query-builder to eager-load the nodes that are connected to
// the "option" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuestionAnswerQuery) WithOption(opts ...func(*QuestionOptionQuery)) *QuestionAnswerQuery {
	query := (&QuestionOptionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOption = query
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
//	client.QuestionAnswer.Query().
//		GroupBy(questionanswer.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *QuestionAnswerQuery) GroupBy(field string, fields ...string) *QuestionAnswerGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuestionAnswerGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = questionanswer.Label
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
//	client.QuestionAnswer.Query().
//		Select(questionanswer.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *QuestionAnswerQuery) Select(fields ...string) *QuestionAnswerSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &QuestionAnswerSelect{QuestionAnswerQuery: _q}
	sbuild.label = questionanswer.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuestionAnswerSelect configured with the given aggregations.
func (_q *QuestionAnswerQuery) Aggregate(fns ...AggregateFunc) *QuestionAnswerSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *QuestionAnswerQuery) prepareQuery(ctx context.Context) error {
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
		if !questionanswer.ValidColumn(f) {
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

func (_q *QuestionAnswerQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuestionAnswer, error) {
	var (
		nodes       = []*QuestionAnswer{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withCheckup != nil,
			_q.withQuestion != nil,
			_q.withOption != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuestionAnswer).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuestionAnswer{config: _q.config}
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
	if query := _q.withCheckup; query != nil {
		if err := _q.loadCheckup(ctx, query, nodes, nil,
			func(n *QuestionAnswer, e *Checkup) { n.Edges.Checkup = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuestion; query != nil {
		if err := _q.loadQuestion(ctx, query, nodes, nil,
			func(n *QuestionAnswer, e *QuestionShare) { n.Edges.Question = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOption; query != nil {
		if err := _q.loadOption(ctx, query, nodes, nil,
			func(n *QuestionAnswer, e *QuestionOption) { n.Edges.Option = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *QuestionAnswerQuery) loadCheckup(ctx context.Context, query *CheckupQuery, nodes []*QuestionAnswer, init func(*QuestionAnswer), assign func(*QuestionAnswer, *Checkup)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuestionAnswer)
	for i := range nodes {
		fk := nodes[i].CheckupID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(checkup.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "checkup_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuestionAnswerQuery) loadQuestion(ctx context.Context, query *QuestionShareQuery, nodes []*QuestionAnswer, init func(*QuestionAnswer), assign func(*QuestionAnswer, *QuestionShare)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuestionAnswer)
	for i := range nodes {
		fk := nodes[i].QuestionShareID
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
			return fmt.Errorf(`unexpected foreign-key "question_share_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuestionAnswerQuery) loadOption(ctx context.Context, query *QuestionOptionQuery, nodes []*QuestionAnswer, init func(*QuestionAnswer), assign func(*QuestionAnswer, *QuestionOption)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuestionAnswer)
	for i := range nodes {
		fk := nodes[i].QuestionOptionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(questionoption.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "question_option_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *QuestionAnswerQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *QuestionAnswerQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(questionanswer.Table, questionanswer.Columns, sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionanswer.FieldID)
		for i := range fields {
			if fields[i] != questionanswer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCheckup != nil {
			_spec.Node.AddColumnOnce(questionanswer.FieldCheckupID)
		}
		if _q.withQuestion != nil {
			_spec.Node.AddColumnOnce(questionanswer.FieldQuestionShareID)
		}
		if _q.withOption != nil {
			_spec.Node.AddColumnOnce(questionanswer.FieldQuestionOptionID)
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

func (_q *QuestionAnswerQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(questionanswer.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = questionanswer.Columns
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

// QuestionAnswerGroupBy is the group-by builder for QuestionAnswer entities.
type QuestionAnswerGroupBy struct {
	selector
	build *QuestionAnswerQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *QuestionAnswerGroupBy) Aggregate(fns ...AggregateFunc) *QuestionAnswerGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *QuestionAnswerGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionAnswerQuery, *QuestionAnswerGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *QuestionAnswerGroupBy) sqlScan(ctx context.Context, root *QuestionAnswerQuery, v any) error {
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

// QuestionAnswerSelect is the builder for selecting fields of QuestionAnswer entities.
type QuestionAnswerSelect struct {
	*QuestionAnswerQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *QuestionAnswerSelect) Aggregate(fns ...AggregateFunc) *QuestionAnswerSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *QuestionAnswerSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuestionAnswerQuery, *QuestionAnswerSelect](ctx, _s.QuestionAnswerQuery, _s, _s.inters, v)
}

func (_s *QuestionAnswerSelect) sqlScan(ctx context.Context, root *QuestionAnswerQuery, v any) error {
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
