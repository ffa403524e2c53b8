// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/insurtech-mx/polizas-crm/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/insurtech-mx/polizas-crm/gen/ent/agent"
	"github.com/insurtech-mx/polizas-crm/gen/ent/beneficiary"
	"github.com/insurtech-mx/polizas-crm/gen/ent/cliente"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionline"
	"github.com/insurtech-mx/polizas-crm/gen/ent/commissionstatement"
	"github.com/insurtech-mx/polizas-crm/gen/ent/insurer"
	"github.com/insurtech-mx/polizas-crm/gen/ent/lead"
	"github.com/insurtech-mx/polizas-crm/gen/ent/policyaiimport"
	"github.com/insurtech-mx/polizas-crm/gen/ent/poliza"
	"github.com/insurtech-mx/polizas-crm/gen/ent/trackingentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// Beneficiary is the client for interacting with the Beneficiary builders.
	Beneficiary *BeneficiaryClient
	// Cliente is the client for interacting with the Cliente builders.
	Cliente *ClienteClient
	// CommissionLine is the client for interacting with the CommissionLine builders.
	CommissionLine *CommissionLineClient
	// CommissionStatement is the client for interacting with the CommissionStatement builders.
	CommissionStatement *CommissionStatementClient
	// Insurer is the client for interacting with the Insurer builders.
	Insurer *InsurerClient
	// Lead is the client for interacting with the Lead builders.
	Lead *LeadClient
	// PolicyAIImport is the client for interacting with the PolicyAIImport builders.
	PolicyAIImport *PolicyAIImportClient
	// Poliza is the client for interacting with the Poliza builders.
	Poliza *PolizaClient
	// TrackingEntry is the client for interacting with the TrackingEntry builders.
	TrackingEntry *TrackingEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.Beneficiary = NewBeneficiaryClient(c.config)
	c.Cliente = NewClienteClient(c.config)
	c.CommissionLine = NewCommissionLineClient(c.config)
	c.CommissionStatement = NewCommissionStatementClient(c.config)
	c.Insurer = NewInsurerClient(c.config)
	c.Lead = NewLeadClient(c.config)
	c.PolicyAIImport = NewPolicyAIImportClient(c.config)
	c.Poliza = NewPolizaClient(c.config)
	c.TrackingEntry = NewTrackingEntryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Agent:               NewAgentClient(cfg),
		Beneficiary:         NewBeneficiaryClient(cfg),
		Cliente:             NewClienteClient(cfg),
		CommissionLine:      NewCommissionLineClient(cfg),
		CommissionStatement: NewCommissionStatementClient(cfg),
		Insurer:             NewInsurerClient(cfg),
		Lead:                NewLeadClient(cfg),
		PolicyAIImport:      NewPolicyAIImportClient(cfg),
		Poliza:              NewPolizaClient(cfg),
		TrackingEntry:       NewTrackingEntryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Agent:               NewAgentClient(cfg),
		Beneficiary:         NewBeneficiaryClient(cfg),
		Cliente:             NewClienteClient(cfg),
		CommissionLine:      NewCommissionLineClient(cfg),
		CommissionStatement: NewCommissionStatementClient(cfg),
		Insurer:             NewInsurerClient(cfg),
		Lead:                NewLeadClient(cfg),
		PolicyAIImport:      NewPolicyAIImportClient(cfg),
		Poliza:              NewPolizaClient(cfg),
		TrackingEntry:       NewTrackingEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Agent, c.Beneficiary, c.Cliente, c.CommissionLine, c.CommissionStatement,
		c.Insurer, c.Lead, c.PolicyAIImport, c.Poliza, c.TrackingEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.Beneficiary, c.Cliente, c.CommissionLine, c.CommissionStatement,
		c.Insurer, c.Lead, c.PolicyAIImport, c.Poliza, c.TrackingEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *BeneficiaryMutation:
		return c.Beneficiary.mutate(ctx, m)
	case *ClienteMutation:
		return c.Cliente.mutate(ctx, m)
	case *CommissionLineMutation:
		return c.CommissionLine.mutate(ctx, m)
	case *CommissionStatementMutation:
		return c.CommissionStatement.mutate(ctx, m)
	case *InsurerMutation:
		return c.Insurer.mutate(ctx, m)
	case *LeadMutation:
		return c.Lead.mutate(ctx, m)
	case *PolicyAIImportMutation:
		return c.PolicyAIImport.mutate(ctx, m)
	case *PolizaMutation:
		return c.Poliza.mutate(ctx, m)
	case *TrackingEntryMutation:
		return c.TrackingEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id uuid.UUID) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id uuid.UUID) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id uuid.UUID) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id uuid.UUID) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClients queries the clients edge of a Agent.
func (c *AgentClient) QueryClients(_m *Agent) *ClienteQuery {
	query := (&ClienteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(cliente.Table, cliente.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ClientsTable, agent.ClientsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLeads queries the leads edge of a Agent.
func (c *AgentClient) QueryLeads(_m *Agent) *LeadQuery {
	query := (&LeadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.LeadsTable, agent.LeadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPolicies queries the policies edge of a Agent.
func (c *AgentClient) QueryPolicies(_m *Agent) *PolizaQuery {
	query := (&PolizaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(poliza.Table, poliza.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.PoliciesTable, agent.PoliciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImports queries the imports edge of a Agent.
func (c *AgentClient) QueryImports(_m *Agent) *PolicyAIImportQuery {
	query := (&PolicyAIImportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(policyaiimport.Table, policyaiimport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ImportsTable, agent.ImportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrackingEntries queries the tracking_entries edge of a Agent.
func (c *AgentClient) QueryTrackingEntries(_m *Agent) *TrackingEntryQuery {
	query := (&TrackingEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(trackingentry.Table, trackingentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.TrackingEntriesTable, agent.TrackingEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStatements queries the statements edge of a Agent.
func (c *AgentClient) QueryStatements(_m *Agent) *CommissionStatementQuery {
	query := (&CommissionStatementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(commissionstatement.Table, commissionstatement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.StatementsTable, agent.StatementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// BeneficiaryClient is a client for the Beneficiary schema.
type BeneficiaryClient struct {
	config
}

// NewBeneficiaryClient returns a client for the Beneficiary from the given config.
func NewBeneficiaryClient(c config) *BeneficiaryClient {
	return &BeneficiaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `beneficiary.Hooks(f(g(h())))`.
func (c *BeneficiaryClient) Use(hooks ...Hook) {
	c.hooks.Beneficiary = append(c.hooks.Beneficiary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `beneficiary.Intercept(f(g(h())))`.
func (c *BeneficiaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Beneficiary = append(c.inters.Beneficiary, interceptors...)
}

// Create returns a builder for creating a Beneficiary entity.
func (c *BeneficiaryClient) Create() *BeneficiaryCreate {
	mutation := newBeneficiaryMutation(c.config, OpCreate)
	return &BeneficiaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Beneficiary entities.
func (c *BeneficiaryClient) CreateBulk(builders ...*BeneficiaryCreate) *BeneficiaryCreateBulk {
	return &BeneficiaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BeneficiaryClient) MapCreateBulk(slice any, setFunc func(*BeneficiaryCreate, int)) *BeneficiaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BeneficiaryCreateBulk{err: fmt.Errorf("calling to BeneficiaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BeneficiaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BeneficiaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Beneficiary.
func (c *BeneficiaryClient) Update() *BeneficiaryUpdate {
	mutation := newBeneficiaryMutation(c.config, OpUpdate)
	return &BeneficiaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BeneficiaryClient) UpdateOne(_m *Beneficiary) *BeneficiaryUpdateOne {
	mutation := newBeneficiaryMutation(c.config, OpUpdateOne, withBeneficiary(_m))
	return &BeneficiaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BeneficiaryClient) UpdateOneID(id uuid.UUID) *BeneficiaryUpdateOne {
	mutation := newBeneficiaryMutation(c.config, OpUpdateOne, withBeneficiaryID(id))
	return &BeneficiaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Beneficiary.
func (c *BeneficiaryClient) Delete() *BeneficiaryDelete {
	mutation := newBeneficiaryMutation(c.config, OpDelete)
	return &BeneficiaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BeneficiaryClient) DeleteOne(_m *Beneficiary) *BeneficiaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BeneficiaryClient) DeleteOneID(id uuid.UUID) *BeneficiaryDeleteOne {
	builder := c.Delete().Where(beneficiary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BeneficiaryDeleteOne{builder}
}

// Query returns a query builder for Beneficiary.
func (c *BeneficiaryClient) Query() *BeneficiaryQuery {
	return &BeneficiaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBeneficiary},
		inters: c.Interceptors(),
	}
}

// Get returns a Beneficiary entity by its id.
func (c *BeneficiaryClient) Get(ctx context.Context, id uuid.UUID) (*Beneficiary, error) {
	return c.Query().Where(beneficiary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BeneficiaryClient) GetX(ctx context.Context, id uuid.UUID) *Beneficiary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPolicy queries the policy edge of a Beneficiary.
func (c *BeneficiaryClient) QueryPolicy(_m *Beneficiary) *PolizaQuery {
	query := (&PolizaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(beneficiary.Table, beneficiary.FieldID, id),
			sqlgraph.To(poliza.Table, poliza.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, beneficiary.PolicyTable, beneficiary.PolicyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BeneficiaryClient) Hooks() []Hook {
	return c.hooks.Beneficiary
}

// Interceptors returns the client interceptors.
func (c *BeneficiaryClient) Interceptors() []Interceptor {
	return c.inters.Beneficiary
}

func (c *BeneficiaryClient) mutate(ctx context.Context, m *BeneficiaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BeneficiaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BeneficiaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BeneficiaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BeneficiaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Beneficiary mutation op: %q", m.Op())
	}
}

// ClienteClient is a client for the Cliente schema.
type ClienteClient struct {
	config
}

// NewClienteClient returns a client for the Cliente from the given config.
func NewClienteClient(c config) *ClienteClient {
	return &ClienteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cliente.Hooks(f(g(h())))`.
func (c *ClienteClient) Use(hooks ...Hook) {
	c.hooks.Cliente = append(c.hooks.Cliente, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cliente.Intercept(f(g(h())))`.
func (c *ClienteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Cliente = append(c.inters.Cliente, interceptors...)
}

// Create returns a builder for creating a Cliente entity.
func (c *ClienteClient) Create() *ClienteCreate {
	mutation := newClienteMutation(c.config, OpCreate)
	return &ClienteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Cliente entities.
func (c *ClienteClient) CreateBulk(builders ...*ClienteCreate) *ClienteCreateBulk {
	return &ClienteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClienteClient) MapCreateBulk(slice any, setFunc func(*ClienteCreate, int)) *ClienteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClienteCreateBulk{err: fmt.Errorf("calling to ClienteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClienteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClienteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Cliente.
func (c *ClienteClient) Update() *ClienteUpdate {
	mutation := newClienteMutation(c.config, OpUpdate)
	return &ClienteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClienteClient) UpdateOne(_m *Cliente) *ClienteUpdateOne {
	mutation := newClienteMutation(c.config, OpUpdateOne, withCliente(_m))
	return &ClienteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClienteClient) UpdateOneID(id uuid.UUID) *ClienteUpdateOne {
	mutation := newClienteMutation(c.config, OpUpdateOne, withClienteID(id))
	return &ClienteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Cliente.
func (c *ClienteClient) Delete() *ClienteDelete {
	mutation := newClienteMutation(c.config, OpDelete)
	return &ClienteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClienteClient) DeleteOne(_m *Cliente) *ClienteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClienteClient) DeleteOneID(id uuid.UUID) *ClienteDeleteOne {
	builder := c.Delete().Where(cliente.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClienteDeleteOne{builder}
}

// Query returns a query builder for Cliente.
func (c *ClienteClient) Query() *ClienteQuery {
	return &ClienteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCliente},
		inters: c.Interceptors(),
	}
}

// Get returns a Cliente entity by its id.
func (c *ClienteClient) Get(ctx context.Context, id uuid.UUID) (*Cliente, error) {
	return c.Query().Where(cliente.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClienteClient) GetX(ctx context.Context, id uuid.UUID) *Cliente {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Cliente.
func (c *ClienteClient) QueryAgent(_m *Cliente) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cliente.Table, cliente.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cliente.AgentTable, cliente.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPolicies queries the policies edge of a Cliente.
func (c *ClienteClient) QueryPolicies(_m *Cliente) *PolizaQuery {
	query := (&PolizaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cliente.Table, cliente.FieldID, id),
			sqlgraph.To(poliza.Table, poliza.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cliente.PoliciesTable, cliente.PoliciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClienteClient) Hooks() []Hook {
	return c.hooks.Cliente
}

// Interceptors returns the client interceptors.
func (c *ClienteClient) Interceptors() []Interceptor {
	return c.inters.Cliente
}

func (c *ClienteClient) mutate(ctx context.Context, m *ClienteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClienteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClienteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClienteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClienteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Cliente mutation op: %q", m.Op())
	}
}

// CommissionLineClient is a client for the CommissionLine schema.
type CommissionLineClient struct {
	config
}

// NewCommissionLineClient returns a client for the CommissionLine from the given config.
func NewCommissionLineClient(c config) *CommissionLineClient {
	return &CommissionLineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commissionline.Hooks(f(g(h())))`.
func (c *CommissionLineClient) Use(hooks ...Hook) {
	c.hooks.CommissionLine = append(c.hooks.CommissionLine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commissionline.Intercept(f(g(h())))`.
func (c *CommissionLineClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommissionLine = append(c.inters.CommissionLine, interceptors...)
}

// Create returns a builder for creating a CommissionLine entity.
func (c *CommissionLineClient) Create() *CommissionLineCreate {
	mutation := newCommissionLineMutation(c.config, OpCreate)
	return &CommissionLineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommissionLine entities.
func (c *CommissionLineClient) CreateBulk(builders ...*CommissionLineCreate) *CommissionLineCreateBulk {
	return &CommissionLineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommissionLineClient) MapCreateBulk(slice any, setFunc func(*CommissionLineCreate, int)) *CommissionLineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommissionLineCreateBulk{err: fmt.Errorf("calling to CommissionLineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommissionLineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommissionLineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommissionLine.
func (c *CommissionLineClient) Update() *CommissionLineUpdate {
	mutation := newCommissionLineMutation(c.config, OpUpdate)
	return &CommissionLineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommissionLineClient) UpdateOne(_m *CommissionLine) *CommissionLineUpdateOne {
	mutation := newCommissionLineMutation(c.config, OpUpdateOne, withCommissionLine(_m))
	return &CommissionLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommissionLineClient) UpdateOneID(id uuid.UUID) *CommissionLineUpdateOne {
	mutation := newCommissionLineMutation(c.config, OpUpdateOne, withCommissionLineID(id))
	return &CommissionLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommissionLine.
func (c *CommissionLineClient) Delete() *CommissionLineDelete {
	mutation := newCommissionLineMutation(c.config, OpDelete)
	return &CommissionLineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommissionLineClient) DeleteOne(_m *CommissionLine) *CommissionLineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommissionLineClient) DeleteOneID(id uuid.UUID) *CommissionLineDeleteOne {
	builder := c.Delete().Where(commissionline.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommissionLineDeleteOne{builder}
}

// Query returns a query builder for CommissionLine.
func (c *CommissionLineClient) Query() *CommissionLineQuery {
	return &CommissionLineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommissionLine},
		inters: c.Interceptors(),
	}
}

// Get returns a CommissionLine entity by its id.
func (c *CommissionLineClient) Get(ctx context.Context, id uuid.UUID) (*CommissionLine, error) {
	return c.Query().Where(commissionline.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommissionLineClient) GetX(ctx context.Context, id uuid.UUID) *CommissionLine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStatement queries the statement edge of a CommissionLine.
func (c *CommissionLineClient) QueryStatement(_m *CommissionLine) *CommissionStatementQuery {
	query := (&CommissionStatementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionline.Table, commissionline.FieldID, id),
			sqlgraph.To(commissionstatement.Table, commissionstatement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commissionline.StatementTable, commissionline.StatementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommissionLineClient) Hooks() []Hook {
	return c.hooks.CommissionLine
}

// Interceptors returns the client interceptors.
func (c *CommissionLineClient) Interceptors() []Interceptor {
	return c.inters.CommissionLine
}

func (c *CommissionLineClient) mutate(ctx context.Context, m *CommissionLineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommissionLineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommissionLineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommissionLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommissionLineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CommissionLine mutation op: %q", m.Op())
	}
}

// CommissionStatementClient is a client for the CommissionStatement schema.
type CommissionStatementClient struct {
	config
}

// NewCommissionStatementClient returns a client for the CommissionStatement from the given config.
func NewCommissionStatementClient(c config) *CommissionStatementClient {
	return &CommissionStatementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commissionstatement.Hooks(f(g(h())))`.
func (c *CommissionStatementClient) Use(hooks ...Hook) {
	c.hooks.CommissionStatement = append(c.hooks.CommissionStatement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commissionstatement.Intercept(f(g(h())))`.
func (c *CommissionStatementClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommissionStatement = append(c.inters.CommissionStatement, interceptors...)
}

// Create returns a builder for creating a CommissionStatement entity.
func (c *CommissionStatementClient) Create() *CommissionStatementCreate {
	mutation := newCommissionStatementMutation(c.config, OpCreate)
	return &CommissionStatementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommissionStatement entities.
func (c *CommissionStatementClient) CreateBulk(builders ...*CommissionStatementCreate) *CommissionStatementCreateBulk {
	return &CommissionStatementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommissionStatementClient) MapCreateBulk(slice any, setFunc func(*CommissionStatementCreate, int)) *CommissionStatementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommissionStatementCreateBulk{err: fmt.Errorf("calling to CommissionStatementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommissionStatementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommissionStatementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommissionStatement.
func (c *CommissionStatementClient) Update() *CommissionStatementUpdate {
	mutation := newCommissionStatementMutation(c.config, OpUpdate)
	return &CommissionStatementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommissionStatementClient) UpdateOne(_m *CommissionStatement) *CommissionStatementUpdateOne {
	mutation := newCommissionStatementMutation(c.config, OpUpdateOne, withCommissionStatement(_m))
	return &CommissionStatementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommissionStatementClient) UpdateOneID(id uuid.UUID) *CommissionStatementUpdateOne {
	mutation := newCommissionStatementMutation(c.config, OpUpdateOne, withCommissionStatementID(id))
	return &CommissionStatementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommissionStatement.
func (c *CommissionStatementClient) Delete() *CommissionStatementDelete {
	mutation := newCommissionStatementMutation(c.config, OpDelete)
	return &CommissionStatementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommissionStatementClient) DeleteOne(_m *CommissionStatement) *CommissionStatementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommissionStatementClient) DeleteOneID(id uuid.UUID) *CommissionStatementDeleteOne {
	builder := c.Delete().Where(commissionstatement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommissionStatementDeleteOne{builder}
}

// Query returns a query builder for CommissionStatement.
func (c *CommissionStatementClient) Query() *CommissionStatementQuery {
	return &CommissionStatementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommissionStatement},
		inters: c.Interceptors(),
	}
}

// Get returns a CommissionStatement entity by its id.
func (c *CommissionStatementClient) Get(ctx context.Context, id uuid.UUID) (*CommissionStatement, error) {
	return c.Query().Where(commissionstatement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommissionStatementClient) GetX(ctx context.Context, id uuid.UUID) *CommissionStatement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a CommissionStatement.
func (c *CommissionStatementClient) QueryAgent(_m *CommissionStatement) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionstatement.Table, commissionstatement.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commissionstatement.AgentTable, commissionstatement.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInsurer queries the insurer edge of a CommissionStatement.
func (c *CommissionStatementClient) QueryInsurer(_m *CommissionStatement) *InsurerQuery {
	query := (&InsurerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionstatement.Table, commissionstatement.FieldID, id),
			sqlgraph.To(insurer.Table, insurer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, commissionstatement.InsurerTable, commissionstatement.InsurerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLines queries the lines edge of a CommissionStatement.
func (c *CommissionStatementClient) QueryLines(_m *CommissionStatement) *CommissionLineQuery {
	query := (&CommissionLineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(commissionstatement.Table, commissionstatement.FieldID, id),
			sqlgraph.To(commissionline.Table, commissionline.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, commissionstatement.LinesTable, commissionstatement.LinesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommissionStatementClient) Hooks() []Hook {
	return c.hooks.CommissionStatement
}

// Interceptors returns the client interceptors.
func (c *CommissionStatementClient) Interceptors() []Interceptor {
	return c.inters.CommissionStatement
}

func (c *CommissionStatementClient) mutate(ctx context.Context, m *CommissionStatementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommissionStatementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommissionStatementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommissionStatementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommissionStatementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CommissionStatement mutation op: %q", m.Op())
	}
}

// InsurerClient is a client for the Insurer schema.
type InsurerClient struct {
	config
}

// NewInsurerClient returns a client for the Insurer from the given config.
func NewInsurerClient(c config) *InsurerClient {
	return &InsurerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insurer.Hooks(f(g(h())))`.
func (c *InsurerClient) Use(hooks ...Hook) {
	c.hooks.Insurer = append(c.hooks.Insurer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insurer.Intercept(f(g(h())))`.
func (c *InsurerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Insurer = append(c.inters.Insurer, interceptors...)
}

// Create returns a builder for creating a Insurer entity.
func (c *InsurerClient) Create() *InsurerCreate {
	mutation := newInsurerMutation(c.config, OpCreate)
	return &InsurerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Insurer entities.
func (c *InsurerClient) CreateBulk(builders ...*InsurerCreate) *InsurerCreateBulk {
	return &InsurerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsurerClient) MapCreateBulk(slice any, setFunc func(*InsurerCreate, int)) *InsurerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsurerCreateBulk{err: fmt.Errorf("calling to InsurerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsurerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsurerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Insurer.
func (c *InsurerClient) Update() *InsurerUpdate {
	mutation := newInsurerMutation(c.config, OpUpdate)
	return &InsurerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsurerClient) UpdateOne(_m *Insurer) *InsurerUpdateOne {
	mutation := newInsurerMutation(c.config, OpUpdateOne, withInsurer(_m))
	return &InsurerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsurerClient) UpdateOneID(id uuid.UUID) *InsurerUpdateOne {
	mutation := newInsurerMutation(c.config, OpUpdateOne, withInsurerID(id))
	return &InsurerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Insurer.
func (c *InsurerClient) Delete() *InsurerDelete {
	mutation := newInsurerMutation(c.config, OpDelete)
	return &InsurerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsurerClient) DeleteOne(_m *Insurer) *InsurerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsurerClient) DeleteOneID(id uuid.UUID) *InsurerDeleteOne {
	builder := c.Delete().Where(insurer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsurerDeleteOne{builder}
}

// Query returns a query builder for Insurer.
func (c *InsurerClient) Query() *InsurerQuery {
	return &InsurerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsurer},
		inters: c.Interceptors(),
	}
}

// Get returns a Insurer entity by its id.
func (c *InsurerClient) Get(ctx context.Context, id uuid.UUID) (*Insurer, error) {
	return c.Query().Where(insurer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsurerClient) GetX(ctx context.Context, id uuid.UUID) *Insurer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPolicies queries the policies edge of a Insurer.
func (c *InsurerClient) QueryPolicies(_m *Insurer) *PolizaQuery {
	query := (&PolizaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insurer.Table, insurer.FieldID, id),
			sqlgraph.To(poliza.Table, poliza.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insurer.PoliciesTable, insurer.PoliciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStatements queries the statements edge of a Insurer.
func (c *InsurerClient) QueryStatements(_m *Insurer) *CommissionStatementQuery {
	query := (&CommissionStatementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insurer.Table, insurer.FieldID, id),
			sqlgraph.To(commissionstatement.Table, commissionstatement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insurer.StatementsTable, insurer.StatementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InsurerClient) Hooks() []Hook {
	return c.hooks.Insurer
}

// Interceptors returns the client interceptors.
func (c *InsurerClient) Interceptors() []Interceptor {
	return c.inters.Insurer
}

func (c *InsurerClient) mutate(ctx context.Context, m *InsurerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsurerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsurerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsurerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsurerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Insurer mutation op: %q", m.Op())
	}
}

// LeadClient is a client for the Lead schema.
type LeadClient struct {
	config
}

// NewLeadClient returns a client for the Lead from the given config.
func NewLeadClient(c config) *LeadClient {
	return &LeadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lead.Hooks(f(g(h())))`.
func (c *LeadClient) Use(hooks ...Hook) {
	c.hooks.Lead = append(c.hooks.Lead, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lead.Intercept(f(g(h())))`.
func (c *LeadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lead = append(c.inters.Lead, interceptors...)
}

// Create returns a builder for creating a Lead entity.
func (c *LeadClient) Create() *LeadCreate {
	mutation := newLeadMutation(c.config, OpCreate)
	return &LeadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lead entities.
func (c *LeadClient) CreateBulk(builders ...*LeadCreate) *LeadCreateBulk {
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeadClient) MapCreateBulk(slice any, setFunc func(*LeadCreate, int)) *LeadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeadCreateBulk{err: fmt.Errorf("calling to LeadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lead.
func (c *LeadClient) Update() *LeadUpdate {
	mutation := newLeadMutation(c.config, OpUpdate)
	return &LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeadClient) UpdateOne(_m *Lead) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLead(_m))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeadClient) UpdateOneID(id uuid.UUID) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLeadID(id))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lead.
func (c *LeadClient) Delete() *LeadDelete {
	mutation := newLeadMutation(c.config, OpDelete)
	return &LeadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeadClient) DeleteOne(_m *Lead) *LeadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeadClient) DeleteOneID(id uuid.UUID) *LeadDeleteOne {
	builder := c.Delete().Where(lead.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeadDeleteOne{builder}
}

// Query returns a query builder for Lead.
func (c *LeadClient) Query() *LeadQuery {
	return &LeadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLead},
		inters: c.Interceptors(),
	}
}

// Get returns a Lead entity by its id.
func (c *LeadClient) Get(ctx context.Context, id uuid.UUID) (*Lead, error) {
	return c.Query().Where(lead.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeadClient) GetX(ctx context.Context, id uuid.UUID) *Lead {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Lead.
func (c *LeadClient) QueryAgent(_m *Lead) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lead.Table, lead.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lead.AgentTable, lead.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeadClient) Hooks() []Hook {
	return c.hooks.Lead
}

// Interceptors returns the client interceptors.
func (c *LeadClient) Interceptors() []Interceptor {
	return c.inters.Lead
}

func (c *LeadClient) mutate(ctx context.Context, m *LeadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lead mutation op: %q", m.Op())
	}
}

// PolicyAIImportClient is a client for the PolicyAIImport schema.
type PolicyAIImportClient struct {
	config
}

// NewPolicyAIImportClient returns a client for the PolicyAIImport from the given config.
func NewPolicyAIImportClient(c config) *PolicyAIImportClient {
	return &PolicyAIImportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `policyaiimport.Hooks(f(g(h())))`.
func (c *PolicyAIImportClient) Use(hooks ...Hook) {
	c.hooks.PolicyAIImport = append(c.hooks.PolicyAIImport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `policyaiimport.Intercept(f(g(h())))`.
func (c *PolicyAIImportClient) Intercept(interceptors ...Interceptor) {
	c.inters.PolicyAIImport = append(c.inters.PolicyAIImport, interceptors...)
}

// Create returns a builder for creating a PolicyAIImport entity.
func (c *PolicyAIImportClient) Create() *PolicyAIImportCreate {
	mutation := newPolicyAIImportMutation(c.config, OpCreate)
	return &PolicyAIImportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PolicyAIImport entities.
func (c *PolicyAIImportClient) CreateBulk(builders ...*PolicyAIImportCreate) *PolicyAIImportCreateBulk {
	return &PolicyAIImportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PolicyAIImportClient) MapCreateBulk(slice any, setFunc func(*PolicyAIImportCreate, int)) *PolicyAIImportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PolicyAIImportCreateBulk{err: fmt.Errorf("calling to PolicyAIImportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PolicyAIImportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PolicyAIImportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PolicyAIImport.
func (c *PolicyAIImportClient) Update() *PolicyAIImportUpdate {
	mutation := newPolicyAIImportMutation(c.config, OpUpdate)
	return &PolicyAIImportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PolicyAIImportClient) UpdateOne(_m *PolicyAIImport) *PolicyAIImportUpdateOne {
	mutation := newPolicyAIImportMutation(c.config, OpUpdateOne, withPolicyAIImport(_m))
	return &PolicyAIImportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PolicyAIImportClient) UpdateOneID(id uuid.UUID) *PolicyAIImportUpdateOne {
	mutation := newPolicyAIImportMutation(c.config, OpUpdateOne, withPolicyAIImportID(id))
	return &PolicyAIImportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PolicyAIImport.
func (c *PolicyAIImportClient) Delete() *PolicyAIImportDelete {
	mutation := newPolicyAIImportMutation(c.config, OpDelete)
	return &PolicyAIImportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PolicyAIImportClient) DeleteOne(_m *PolicyAIImport) *PolicyAIImportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PolicyAIImportClient) DeleteOneID(id uuid.UUID) *PolicyAIImportDeleteOne {
	builder := c.Delete().Where(policyaiimport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PolicyAIImportDeleteOne{builder}
}

// Query returns a query builder for PolicyAIImport.
func (c *PolicyAIImportClient) Query() *PolicyAIImportQuery {
	return &PolicyAIImportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePolicyAIImport},
		inters: c.Interceptors(),
	}
}

// Get returns a PolicyAIImport entity by its id.
func (c *PolicyAIImportClient) Get(ctx context.Context, id uuid.UUID) (*PolicyAIImport, error) {
	return c.Query().Where(policyaiimport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PolicyAIImportClient) GetX(ctx context.Context, id uuid.UUID) *PolicyAIImport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a PolicyAIImport.
func (c *PolicyAIImportClient) QueryAgent(_m *PolicyAIImport) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(policyaiimport.Table, policyaiimport.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, policyaiimport.AgentTable, policyaiimport.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PolicyAIImportClient) Hooks() []Hook {
	return c.hooks.PolicyAIImport
}

// Interceptors returns the client interceptors.
func (c *PolicyAIImportClient) Interceptors() []Interceptor {
	return c.inters.PolicyAIImport
}

func (c *PolicyAIImportClient) mutate(ctx context.Context, m *PolicyAIImportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PolicyAIImportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PolicyAIImportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PolicyAIImportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PolicyAIImportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PolicyAIImport mutation op: %q", m.Op())
	}
}

// PolizaClient is a client for the Poliza schema.
type PolizaClient struct {
	config
}

// NewPolizaClient returns a client for the Poliza from the given config.
func NewPolizaClient(c config) *PolizaClient {
	return &PolizaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `poliza.Hooks(f(g(h())))`.
func (c *PolizaClient) Use(hooks ...Hook) {
	c.hooks.Poliza = append(c.hooks.Poliza, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `poliza.Intercept(f(g(h())))`.
func (c *PolizaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Poliza = append(c.inters.Poliza, interceptors...)
}

// Create returns a builder for creating a Poliza entity.
func (c *PolizaClient) Create() *PolizaCreate {
	mutation := newPolizaMutation(c.config, OpCreate)
	return &PolizaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Poliza entities.
func (c *PolizaClient) CreateBulk(builders ...*PolizaCreate) *PolizaCreateBulk {
	return &PolizaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PolizaClient) MapCreateBulk(slice any, setFunc func(*PolizaCreate, int)) *PolizaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PolizaCreateBulk{err: fmt.Errorf("calling to PolizaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PolizaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PolizaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Poliza.
func (c *PolizaClient) Update() *PolizaUpdate {
	mutation := newPolizaMutation(c.config, OpUpdate)
	return &PolizaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PolizaClient) UpdateOne(_m *Poliza) *PolizaUpdateOne {
	mutation := newPolizaMutation(c.config, OpUpdateOne, withPoliza(_m))
	return &PolizaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PolizaClient) UpdateOneID(id uuid.UUID) *PolizaUpdateOne {
	mutation := newPolizaMutation(c.config, OpUpdateOne, withPolizaID(id))
	return &PolizaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Poliza.
func (c *PolizaClient) Delete() *PolizaDelete {
	mutation := newPolizaMutation(c.config, OpDelete)
	return &PolizaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PolizaClient) DeleteOne(_m *Poliza) *PolizaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PolizaClient) DeleteOneID(id uuid.UUID) *PolizaDeleteOne {
	builder := c.Delete().Where(poliza.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PolizaDeleteOne{builder}
}

// Query returns a query builder for Poliza.
func (c *PolizaClient) Query() *PolizaQuery {
	return &PolizaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePoliza},
		inters: c.Interceptors(),
	}
}

// Get returns a Poliza entity by its id.
func (c *PolizaClient) Get(ctx context.Context, id uuid.UUID) (*Poliza, error) {
	return c.Query().Where(poliza.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PolizaClient) GetX(ctx context.Context, id uuid.UUID) *Poliza {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Poliza.
func (c *PolizaClient) QueryAgent(_m *Poliza) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poliza.Table, poliza.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, poliza.AgentTable, poliza.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClient queries the client edge of a Poliza.
func (c *PolizaClient) QueryClient(_m *Poliza) *ClienteQuery {
	query := (&ClienteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poliza.Table, poliza.FieldID, id),
			sqlgraph.To(cliente.Table, cliente.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, poliza.ClientTable, poliza.ClientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInsurer queries the insurer edge of a Poliza.
func (c *PolizaClient) QueryInsurer(_m *Poliza) *InsurerQuery {
	query := (&InsurerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poliza.Table, poliza.FieldID, id),
			sqlgraph.To(insurer.Table, insurer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, poliza.InsurerTable, poliza.InsurerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBeneficiaries queries the beneficiaries edge of a Poliza.
func (c *PolizaClient) QueryBeneficiaries(_m *Poliza) *BeneficiaryQuery {
	query := (&BeneficiaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poliza.Table, poliza.FieldID, id),
			sqlgraph.To(beneficiary.Table, beneficiary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, poliza.BeneficiariesTable, poliza.BeneficiariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PolizaClient) Hooks() []Hook {
	return c.hooks.Poliza
}

// Interceptors returns the client interceptors.
func (c *PolizaClient) Interceptors() []Interceptor {
	return c.inters.Poliza
}

func (c *PolizaClient) mutate(ctx context.Context, m *PolizaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PolizaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PolizaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PolizaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PolizaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Poliza mutation op: %q", m.Op())
	}
}

// TrackingEntryClient is a client for the TrackingEntry schema.
type TrackingEntryClient struct {
	config
}

// NewTrackingEntryClient returns a client for the TrackingEntry from the given config.
func NewTrackingEntryClient(c config) *TrackingEntryClient {
	return &TrackingEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trackingentry.Hooks(f(g(h())))`.
func (c *TrackingEntryClient) Use(hooks ...Hook) {
	c.hooks.TrackingEntry = append(c.hooks.TrackingEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trackingentry.Intercept(f(g(h())))`.
func (c *TrackingEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrackingEntry = append(c.inters.TrackingEntry, interceptors...)
}

// Create returns a builder for creating a TrackingEntry entity.
func (c *TrackingEntryClient) Create() *TrackingEntryCreate {
	mutation := newTrackingEntryMutation(c.config, OpCreate)
	return &TrackingEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrackingEntry entities.
func (c *TrackingEntryClient) CreateBulk(builders ...*TrackingEntryCreate) *TrackingEntryCreateBulk {
	return &TrackingEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrackingEntryClient) MapCreateBulk(slice any, setFunc func(*TrackingEntryCreate, int)) *TrackingEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrackingEntryCreateBulk{err: fmt.Errorf("calling to TrackingEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrackingEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrackingEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrackingEntry.
func (c *TrackingEntryClient) Update() *TrackingEntryUpdate {
	mutation := newTrackingEntryMutation(c.config, OpUpdate)
	return &TrackingEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrackingEntryClient) UpdateOne(_m *TrackingEntry) *TrackingEntryUpdateOne {
	mutation := newTrackingEntryMutation(c.config, OpUpdateOne, withTrackingEntry(_m))
	return &TrackingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrackingEntryClient) UpdateOneID(id uuid.UUID) *TrackingEntryUpdateOne {
	mutation := newTrackingEntryMutation(c.config, OpUpdateOne, withTrackingEntryID(id))
	return &TrackingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrackingEntry.
func (c *TrackingEntryClient) Delete() *TrackingEntryDelete {
	mutation := newTrackingEntryMutation(c.config, OpDelete)
	return &TrackingEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrackingEntryClient) DeleteOne(_m *TrackingEntry) *TrackingEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrackingEntryClient) DeleteOneID(id uuid.UUID) *TrackingEntryDeleteOne {
	builder := c.Delete().Where(trackingentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrackingEntryDeleteOne{builder}
}

// Query returns a query builder for TrackingEntry.
func (c *TrackingEntryClient) Query() *TrackingEntryQuery {
	return &TrackingEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrackingEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a TrackingEntry entity by its id.
func (c *TrackingEntryClient) Get(ctx context.Context, id uuid.UUID) (*TrackingEntry, error) {
	return c.Query().Where(trackingentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrackingEntryClient) GetX(ctx context.Context, id uuid.UUID) *TrackingEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a TrackingEntry.
func (c *TrackingEntryClient) QueryAgent(_m *TrackingEntry) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trackingentry.Table, trackingentry.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trackingentry.AgentTable, trackingentry.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrackingEntryClient) Hooks() []Hook {
	return c.hooks.TrackingEntry
}

// Interceptors returns the client interceptors.
func (c *TrackingEntryClient) Interceptors() []Interceptor {
	return c.inters.TrackingEntry
}

func (c *TrackingEntryClient) mutate(ctx context.Context, m *TrackingEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrackingEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrackingEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrackingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrackingEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrackingEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, Beneficiary, Cliente, CommissionLine, CommissionStatement, Insurer, Lead,
		PolicyAIImport, Poliza, TrackingEntry []ent.Hook
	}
	inters struct {
		Agent, Beneficiary, Cliente, CommissionLine, CommissionStatement, Insurer, Lead,
		PolicyAIImport, Poliza, TrackingEntry []ent.Interceptor
	}
)
