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
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/suggestion"
)

// InterpretationQuery is the builder for querying Interpretation entities.
type InterpretationQuery struct {
	config
	ctx             *QueryContext
	order           []interpretation.OrderOption
	inters          []Interceptor
	predicates      []predicate.Interpretation
	withAnalyze     *CheckupAnalyzeQuery
	withSuggestions *SuggestionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InterpretationQuery builder.
func (_q *InterpretationQuery) Where(ps ...predicate.Interpretation) *InterpretationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InterpretationQuery) Limit(limit int) *InterpretationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InterpretationQuery) Offset(offset int) *InterpretationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InterpretationQuery) Unique(unique bool) *InterpretationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InterpretationQuery) Order(o ...interpretation.OrderOption) *InterpretationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAnalyze chains the current query on the "analyze" edge.
func (_q *InterpretationQuery) QueryAnalyze() *CheckupAnalyzeQuery {
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
			sqlgraph.From(interpretation.Table, interpretation.FieldID, selector),
			sqlgraph.To(checkupanalyze.Table, checkupanalyze.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interpretation.AnalyzeTable, interpretation.AnalyzeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySuggestions chains the current query on the "suggestions" edge.
func (_q *InterpretationQuery) QuerySuggestions() *SuggestionQuery {
	query := (&SuggestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interpretation.Table, interpretation.FieldID, selector),
			sqlgraph.To(suggestion.Table, suggestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interpretation.SuggestionsTable, interpretation.SuggestionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Interpretation entity from the query.
// Returns a *NotFoundError when no Interpretation was found.
func (_q *InterpretationQuery) First(ctx context.Context) (*Interpretation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{interpretation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InterpretationQuery) FirstX(ctx context.Context) *Interpretation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Interpretation ID from the query.
// Returns a *NotFoundError when no Interpretation ID was found.
func (_q *InterpretationQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{interpretation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InterpretationQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Interpretation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Interpretation entity is found.
// Returns a *NotFoundError when no Interpretation entities are found.
func (_q *InterpretationQuery) Only(ctx context.Context) (*Interpretation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{interpretation.Label}
	default:
		return nil, &NotSingularError{interpretation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InterpretationQuery) OnlyX(ctx context.Context) *Interpretation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Interpretation ID in the query.
// Returns a *NotSingularError when more than one Interpretation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InterpretationQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{interpretation.Label}
	default:
		err = &NotSingularError{interpretation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InterpretationQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Interpretations.
func (_q *InterpretationQuery) All(ctx context.Context) ([]*Interpretation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Interpretation, *InterpretationQuery]()
	return withInterceptors[[]*Interpretation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InterpretationQuery) AllX(ctx context.Context) []*Interpretation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Interpretation IDs.
func (_q *InterpretationQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(interpretation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InterpretationQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InterpretationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InterpretationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InterpretationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InterpretationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *InterpretationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InterpretationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InterpretationQuery) Clone() *InterpretationQuery {
	if _q == nil {
		return nil
	}
	return &InterpretationQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]interpretation.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Interpretation{}, _q.predicates...),
		withAnalyze:     _q.withAnalyze.Clone(),
		withSuggestions: _q.withSuggestions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAnalyze tells the query-builder to eager-load the nodes that are connected to
// the "analyze" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InterpretationQuery) WithAnalyze(opts ...func(*CheckupAnalyzeQuery)) *InterpretationQuery {
	query := (&CheckupAnalyzeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnalyze = query
	return _q
}

// WithSuggestions tells the query-builder to eager-load the nodes that are connected to
// the "suggestions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InterpretationQuery) WithSuggestions(opts ...func(*SuggestionQuery)) *InterpretationQuery {
	query := (&SuggestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSuggestions = query
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
//	client.Interpretation.Query().
//		GroupBy(interpretation.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *InterpretationQuery) GroupBy(field string, fields ...string) *InterpretationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InterpretationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = interpretation.Label
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
//	client.Interpretation.Query().
//		Select(interpretation.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *InterpretationQuery) Select(fields ...string) *InterpretationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InterpretationSelect{InterpretationQuery: _q}
	sbuild.label = interpretation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InterpretationSelect configured with the given aggregations.
func (_q *InterpretationQuery) Aggregate(fns ...AggregateFunc) *InterpretationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InterpretationQuery) prepareQuery(ctx context.Context) error {
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
		if !interpretation.ValidColumn(f) {
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

func (_q *InterpretationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Interpretation, error) {
	var (
		nodes       = []*Interpretation{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withAnalyze != nil,
			_q.withSuggestions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Interpretation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Interpretation{config: _q.config}
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
	if query := _q.withAnalyze; query != nil {
		if err := _q.loadAnalyze(ctx, query, nodes, nil,
			func(n *Interpretation, e *CheckupAnalyze) { n.Edges.Analyze = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSuggestions; query != nil {
		if err := _q.loadSuggestions(ctx, query, nodes,
			func(n *Interpretation) { n.Edges.Suggestions = []*Suggestion{} },
			func(n *Interpretation, e *Suggestion) { n.Edges.Suggestions = append(n.Edges.Suggestions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InterpretationQuery) loadAnalyze(ctx context.Context, query *CheckupAnalyzeQuery, nodes []*Interpretation, init func(*Interpretation), assign func(*Interpretation, *CheckupAnalyze)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Interpretation)
	for i := range nodes {
		fk := nodes[i].AnalyzeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(checkupanalyze.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "analyze_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InterpretationQuery) loadSuggestions(ctx context.Context, query *SuggestionQuery, nodes []*Interpretation, init func(*Interpretation), assign func(*Interpretation, *Suggestion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Interpretation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(suggestion.FieldInterpretationID)
	}
	query.Where(predicate.Suggestion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(interpretation.SuggestionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InterpretationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "interpretation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InterpretationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InterpretationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(interpretation.Table, interpretation.Columns, sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interpretation.FieldID)
		for i := range fields {
			if fields[i] != interpretation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAnalyze != nil {
			_spec.Node.AddColumnOnce(interpretation.FieldAnalyzeID)
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

func (_q *InterpretationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(interpretation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = interpretation.Columns
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

// InterpretationGroupBy is the group-by builder for Interpretation entities.
type InterpretationGroupBy struct {
	selector
	build *InterpretationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InterpretationGroupBy) Aggregate(fns ...AggregateFunc) *InterpretationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InterpretationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InterpretationQuery, *InterpretationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InterpretationGroupBy) sqlScan(ctx context.Context, root *InterpretationQuery, v any) error {
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

// InterpretationSelect is the builder for selecting fields of Interpretation entities.
type InterpretationSelect struct {
	*InterpretationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InterpretationSelect) Aggregate(fns ...AggregateFunc) *InterpretationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InterpretationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InterpretationQuery, *InterpretationSelect](ctx, _s.InterpretationQuery, _s, _s.inters, v)
}

func (_s *InterpretationSelect) sqlScan(ctx context.Context, root *InterpretationQuery, v any) error {
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
