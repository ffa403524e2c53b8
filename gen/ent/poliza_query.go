// Code generated by ent, DO NOT EDIT.

package ent

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
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
	"github.com/insurtech-mx/polizas-crm/gen/ent/predicate"
)

// PolizaQuery is the builder for querying Poliza entities.
type PolizaQuery struct {
	config
	ctx               *QueryContext
	order             []poliza.OrderOption
	inters            []Interceptor
	predicates        []predicate.Poliza
	withAgent         *AgentQuery
	withClient        *ClienteQuery
	withInsurer       *InsurerQuery
	withBeneficiaries *BeneficiaryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PolizaQuery builder.
func (_q *PolizaQuery) Where(ps ...predicate.Poliza) *PolizaQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PolizaQuery) Limit(limit int) *PolizaQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PolizaQuery) Offset(offset int) *PolizaQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PolizaQuery) Unique(unique bool) *PolizaQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PolizaQuery) Order(o ...poliza.OrderOption) *PolizaQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAgent chains the current query on the "agent" edge.
func (_q *PolizaQuery) QueryAgent() *AgentQuery {
	query := (&AgentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(poliza.Table, poliza.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, poliza.AgentTable, poliza.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryClient chains the current query on the "client" edge.
func (_q *PolizaQuery) QueryClient() *ClienteQuery {
	query := (&ClienteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(poliza.Table, poliza.FieldID, selector),
			sqlgraph.To(cliente.Table, cliente.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, poliza.ClientTable, poliza.ClientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInsurer chains the current query on the "insurer" edge.
func (_q *PolizaQuery) QueryInsurer() *InsurerQuery {
	query := (&InsurerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(poliza.Table, poliza.FieldID, selector),
			sqlgraph.To(insurer.Table, insurer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, poliza.InsurerTable, poliza.InsurerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBeneficiaries chains the current query on the "beneficiaries" edge.
func (_q *PolizaQuery) QueryBeneficiaries() *BeneficiaryQuery {
	query := (&BeneficiaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(poliza.Table, poliza.FieldID, selector),
			sqlgraph.To(beneficiary.Table, beneficiary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, poliza.BeneficiariesTable, poliza.BeneficiariesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Poliza entity from the query.
// Returns a *NotFoundError when no Poliza was found.
func (_q *PolizaQuery) First(ctx context.Context) (*Poliza, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{poliza.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PolizaQuery) FirstX(ctx context.Context) *Poliza {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Poliza ID from the query.
// Returns a *NotFoundError when no Poliza ID was found.
func (_q *PolizaQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{poliza.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PolizaQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Poliza entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Poliza entity is found.
// Returns a *NotFoundError when no Poliza entities are found.
func (_q *PolizaQuery) Only(ctx context.Context) (*Poliza, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{poliza.Label}
	default:
		return nil, &NotSingularError{poliza.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PolizaQuery) OnlyX(ctx context.Context) *Poliza {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Poliza ID in the query.
// Returns a *NotSingularError when more than one Poliza ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PolizaQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{poliza.Label}
	default:
		err = &NotSingularError{poliza.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PolizaQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Polizas.
func (_q *PolizaQuery) All(ctx context.Context) ([]*Poliza, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Poliza, *PolizaQuery]()
	return withInterceptors[[]*Poliza](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PolizaQuery) AllX(ctx context.Context) []*Poliza {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Poliza IDs.
func (_q *PolizaQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(poliza.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PolizaQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PolizaQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PolizaQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PolizaQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PolizaQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PolizaQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PolizaQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PolizaQuery) Clone() *PolizaQuery {
	if _q == nil {
		return nil
	}
	return &PolizaQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]poliza.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Poliza{}, _q.predicates...),
		withAgent:         _q.withAgent.Clone(),
		withClient:        _q.withClient.Clone(),
		withInsurer:       _q.withInsurer.Clone(),
		withBeneficiaries: _q.withBeneficiaries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PolizaQuery) WithAgent(opts ...func(*AgentQuery)) *PolizaQuery {
	query := (&AgentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgent = query
	return _q
}

// WithClient tells the query-builder to eager-load the nodes that are connected to
// the "client" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PolizaQuery) WithClient(opts ...func(*ClienteQuery)) *PolizaQuery {
	query := (&ClienteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withClient = query
	return _q
}

// WithInsurer tells the query-builder to eager-load the nodes that are connected to
// the "insurer" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PolizaQuery) WithInsurer(opts ...func(*InsurerQuery)) *PolizaQuery {
	query := (&InsurerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInsurer = query
	return _q
}

// WithBeneficiaries tells the query-builder to eager-load the nodes that are connected to
// the "beneficiaries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PolizaQuery) WithBeneficiaries(opts ...func(*BeneficiaryQuery)) *PolizaQuery {
	query := (&BeneficiaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBeneficiaries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AgentID uuid.UUID `json:"agent_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Poliza.Query().
//		GroupBy(poliza.FieldAgentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PolizaQuery) GroupBy(field string, fields ...string) *PolizaGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PolizaGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = poliza.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AgentID uuid.UUID `json:"agent_id,omitempty"`
//	}
//
//	client.Poliza.Query().
//		Select(poliza.FieldAgentID).
//		Scan(ctx, &v)
func (_q *PolizaQuery) Select(fields ...string) *PolizaSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PolizaSelect{PolizaQuery: _q}
	sbuild.label = poliza.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PolizaSelect configured with the given aggregations.
func (_q *PolizaQuery) Aggregate(fns ...AggregateFunc) *PolizaSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PolizaQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !poliza.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
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

func (_q *PolizaQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Poliza, error) {
	var (
		nodes       = []*Poliza{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withAgent != nil,
			_q.withClient != nil,
			_q.withInsurer != nil,
			_q.withBeneficiaries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Poliza).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Poliza{config: _q.config}
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
	if query := _q.withAgent; query != nil {
		if err := _q.loadAgent(ctx, query, nodes, nil,
			func(n *Poliza, e *Agent) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withClient; query != nil {
		if err := _q.loadClient(ctx, query, nodes, nil,
			func(n *Poliza, e *Cliente) { n.Edges.Client = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withInsurer; query != nil {
		if err := _q.loadInsurer(ctx, query, nodes, nil,
			func(n *Poliza, e *Insurer) { n.Edges.Insurer = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBeneficiaries; query != nil {
		if err := _q.loadBeneficiaries(ctx, query, nodes,
			func(n *Poliza) { n.Edges.Beneficiaries = []*Beneficiary{} },
			func(n *Poliza, e *Beneficiary) { n.Edges.Beneficiaries = append(n.Edges.Beneficiaries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PolizaQuery) loadAgent(ctx context.Context, query *AgentQuery, nodes []*Poliza, init func(*Poliza), assign func(*Poliza, *Agent)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Poliza)
	for i := range nodes {
		fk := nodes[i].AgentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agent.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PolizaQuery) loadClient(ctx context.Context, query *ClienteQuery, nodes []*Poliza, init func(*Poliza), assign func(*Poliza, *Cliente)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Poliza)
	for i := range nodes {
		fk := nodes[i].ClientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(cliente.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "client_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PolizaQuery) loadInsurer(ctx context.Context, query *InsurerQuery, nodes []*Poliza, init func(*Poliza), assign func(*Poliza, *Insurer)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Poliza)
	for i := range nodes {
		fk := nodes[i].InsurerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(insurer.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "insurer_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PolizaQuery) loadBeneficiaries(ctx context.Context, query *BeneficiaryQuery, nodes []*Poliza, init func(*Poliza), assign func(*Poliza, *Beneficiary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Poliza)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(beneficiary.FieldPolicyID)
	}
	query.Where(predicate.Beneficiary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(poliza.BeneficiariesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PolicyID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "policy_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PolizaQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PolizaQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(poliza.Table, poliza.Columns, sqlgraph.NewFieldSpec(poliza.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, poliza.FieldID)
		for i := range fields {
			if fields[i] != poliza.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAgent != nil {
			_spec.Node.AddColumnOnce(poliza.FieldAgentID)
		}
		if _q.withClient != nil {
			_spec.Node.AddColumnOnce(poliza.FieldClientID)
		}
		if _q.withInsurer != nil {
			_spec.Node.AddColumnOnce(poliza.FieldInsurerID)
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

func (_q *PolizaQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(poliza.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = poliza.Columns
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

// PolizaGroupBy is the group-by builder for Poliza entities.
type PolizaGroupBy struct {
	selector
	build *PolizaQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PolizaGroupBy) Aggregate(fns ...AggregateFunc) *PolizaGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PolizaGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PolizaQuery, *PolizaGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PolizaGroupBy) sqlScan(ctx context.Context, root *PolizaQuery, v any) error {
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

// PolizaSelect is the builder for selecting fields of Poliza entities.
type PolizaSelect struct {
	*PolizaQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PolizaSelect) Aggregate(fns ...AggregateFunc) *PolizaSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PolizaSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PolizaQuery, *PolizaSelect](ctx, _s.PolizaQuery, _s, _s.inters, v)
}

func (_s *PolizaSelect) sqlScan(ctx context.Context, root *PolizaQuery, v any) error {
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
