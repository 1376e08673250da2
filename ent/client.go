// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/adaptic/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptic/ent/adaptationevent"
	"github.com/abhisek/adaptic/ent/assessmentevidence"
	"github.com/abhisek/adaptic/ent/commitrecord"
	"github.com/abhisek/adaptic/ent/llmrequestevent"
	"github.com/abhisek/adaptic/ent/masterydecision"
	"github.com/abhisek/adaptic/ent/progressrecord"
	"github.com/abhisek/adaptic/ent/sessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdaptationEvent is the client for interacting with the AdaptationEvent builders.
	AdaptationEvent *AdaptationEventClient
	// AssessmentEvidence is the client for interacting with the AssessmentEvidence builders.
	AssessmentEvidence *AssessmentEvidenceClient
	// CommitRecord is the client for interacting with the CommitRecord builders.
	CommitRecord *CommitRecordClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MasteryDecision is the client for interacting with the MasteryDecision builders.
	MasteryDecision *MasteryDecisionClient
	// ProgressRecord is the client for interacting with the ProgressRecord builders.
	ProgressRecord *ProgressRecordClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdaptationEvent = NewAdaptationEventClient(c.config)
	c.AssessmentEvidence = NewAssessmentEvidenceClient(c.config)
	c.CommitRecord = NewCommitRecordClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MasteryDecision = NewMasteryDecisionClient(c.config)
	c.ProgressRecord = NewProgressRecordClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		AdaptationEvent:    NewAdaptationEventClient(cfg),
		AssessmentEvidence: NewAssessmentEvidenceClient(cfg),
		CommitRecord:       NewCommitRecordClient(cfg),
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		MasteryDecision:    NewMasteryDecisionClient(cfg),
		ProgressRecord:     NewProgressRecordClient(cfg),
		SessionEvent:       NewSessionEventClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		AdaptationEvent:    NewAdaptationEventClient(cfg),
		AssessmentEvidence: NewAssessmentEvidenceClient(cfg),
		CommitRecord:       NewCommitRecordClient(cfg),
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		MasteryDecision:    NewMasteryDecisionClient(cfg),
		ProgressRecord:     NewProgressRecordClient(cfg),
		SessionEvent:       NewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdaptationEvent.
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
		c.AdaptationEvent, c.AssessmentEvidence, c.CommitRecord, c.LLMRequestEvent,
		c.MasteryDecision, c.ProgressRecord, c.SessionEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AdaptationEvent, c.AssessmentEvidence, c.CommitRecord, c.LLMRequestEvent,
		c.MasteryDecision, c.ProgressRecord, c.SessionEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdaptationEventMutation:
		return c.AdaptationEvent.mutate(ctx, m)
	case *AssessmentEvidenceMutation:
		return c.AssessmentEvidence.mutate(ctx, m)
	case *CommitRecordMutation:
		return c.CommitRecord.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MasteryDecisionMutation:
		return c.MasteryDecision.mutate(ctx, m)
	case *ProgressRecordMutation:
		return c.ProgressRecord.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdaptationEventClient is a client for the AdaptationEvent schema.
type AdaptationEventClient struct {
	config
}

// NewAdaptationEventClient returns a client for the AdaptationEvent from the given config.
func NewAdaptationEventClient(c config) *AdaptationEventClient {
	return &AdaptationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adaptationevent.Hooks(f(g(h())))`.
func (c *AdaptationEventClient) Use(hooks ...Hook) {
	c.hooks.AdaptationEvent = append(c.hooks.AdaptationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adaptationevent.Intercept(f(g(h())))`.
func (c *AdaptationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdaptationEvent = append(c.inters.AdaptationEvent, interceptors...)
}

// Create returns a builder for creating a AdaptationEvent entity.
func (c *AdaptationEventClient) Create() *AdaptationEventCreate {
	mutation := newAdaptationEventMutation(c.config, OpCreate)
	return &AdaptationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdaptationEvent entities.
func (c *AdaptationEventClient) CreateBulk(builders ...*AdaptationEventCreate) *AdaptationEventCreateBulk {
	return &AdaptationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdaptationEventClient) MapCreateBulk(slice any, setFunc func(*AdaptationEventCreate, int)) *AdaptationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdaptationEventCreateBulk{err: fmt.Errorf("calling to AdaptationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdaptationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdaptationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdaptationEvent.
func (c *AdaptationEventClient) Update() *AdaptationEventUpdate {
	mutation := newAdaptationEventMutation(c.config, OpUpdate)
	return &AdaptationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdaptationEventClient) UpdateOne(_m *AdaptationEvent) *AdaptationEventUpdateOne {
	mutation := newAdaptationEventMutation(c.config, OpUpdateOne, withAdaptationEvent(_m))
	return &AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdaptationEventClient) UpdateOneID(id int) *AdaptationEventUpdateOne {
	mutation := newAdaptationEventMutation(c.config, OpUpdateOne, withAdaptationEventID(id))
	return &AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdaptationEvent.
func (c *AdaptationEventClient) Delete() *AdaptationEventDelete {
	mutation := newAdaptationEventMutation(c.config, OpDelete)
	return &AdaptationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdaptationEventClient) DeleteOne(_m *AdaptationEvent) *AdaptationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdaptationEventClient) DeleteOneID(id int) *AdaptationEventDeleteOne {
	builder := c.Delete().Where(adaptationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdaptationEventDeleteOne{builder}
}

// Query returns a query builder for AdaptationEvent.
func (c *AdaptationEventClient) Query() *AdaptationEventQuery {
	return &AdaptationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdaptationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AdaptationEvent entity by its id.
func (c *AdaptationEventClient) Get(ctx context.Context, id int) (*AdaptationEvent, error) {
	return c.Query().Where(adaptationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdaptationEventClient) GetX(ctx context.Context, id int) *AdaptationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdaptationEventClient) Hooks() []Hook {
	return c.hooks.AdaptationEvent
}

// Interceptors returns the client interceptors.
func (c *AdaptationEventClient) Interceptors() []Interceptor {
	return c.inters.AdaptationEvent
}

func (c *AdaptationEventClient) mutate(ctx context.Context, m *AdaptationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdaptationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdaptationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdaptationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdaptationEvent mutation op: %q", m.Op())
	}
}

// AssessmentEvidenceClient is a client for the AssessmentEvidence schema.
type AssessmentEvidenceClient struct {
	config
}

// NewAssessmentEvidenceClient returns a client for the AssessmentEvidence from the given config.
func NewAssessmentEvidenceClient(c config) *AssessmentEvidenceClient {
	return &AssessmentEvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentevidence.Hooks(f(g(h())))`.
func (c *AssessmentEvidenceClient) Use(hooks ...Hook) {
	c.hooks.AssessmentEvidence = append(c.hooks.AssessmentEvidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentevidence.Intercept(f(g(h())))`.
func (c *AssessmentEvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentEvidence = append(c.inters.AssessmentEvidence, interceptors...)
}

// Create returns a builder for creating a AssessmentEvidence entity.
func (c *AssessmentEvidenceClient) Create() *AssessmentEvidenceCreate {
	mutation := newAssessmentEvidenceMutation(c.config, OpCreate)
	return &AssessmentEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentEvidence entities.
func (c *AssessmentEvidenceClient) CreateBulk(builders ...*AssessmentEvidenceCreate) *AssessmentEvidenceCreateBulk {
	return &AssessmentEvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentEvidenceClient) MapCreateBulk(slice any, setFunc func(*AssessmentEvidenceCreate, int)) *AssessmentEvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentEvidenceCreateBulk{err: fmt.Errorf("calling to AssessmentEvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentEvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentEvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentEvidence.
func (c *AssessmentEvidenceClient) Update() *AssessmentEvidenceUpdate {
	mutation := newAssessmentEvidenceMutation(c.config, OpUpdate)
	return &AssessmentEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentEvidenceClient) UpdateOne(_m *AssessmentEvidence) *AssessmentEvidenceUpdateOne {
	mutation := newAssessmentEvidenceMutation(c.config, OpUpdateOne, withAssessmentEvidence(_m))
	return &AssessmentEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentEvidenceClient) UpdateOneID(id int) *AssessmentEvidenceUpdateOne {
	mutation := newAssessmentEvidenceMutation(c.config, OpUpdateOne, withAssessmentEvidenceID(id))
	return &AssessmentEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentEvidence.
func (c *AssessmentEvidenceClient) Delete() *AssessmentEvidenceDelete {
	mutation := newAssessmentEvidenceMutation(c.config, OpDelete)
	return &AssessmentEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentEvidenceClient) DeleteOne(_m *AssessmentEvidence) *AssessmentEvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentEvidenceClient) DeleteOneID(id int) *AssessmentEvidenceDeleteOne {
	builder := c.Delete().Where(assessmentevidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentEvidenceDeleteOne{builder}
}

// Query returns a query builder for AssessmentEvidence.
func (c *AssessmentEvidenceClient) Query() *AssessmentEvidenceQuery {
	return &AssessmentEvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentEvidence entity by its id.
func (c *AssessmentEvidenceClient) Get(ctx context.Context, id int) (*AssessmentEvidence, error) {
	return c.Query().Where(assessmentevidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentEvidenceClient) GetX(ctx context.Context, id int) *AssessmentEvidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentEvidenceClient) Hooks() []Hook {
	return c.hooks.AssessmentEvidence
}

// Interceptors returns the client interceptors.
func (c *AssessmentEvidenceClient) Interceptors() []Interceptor {
	return c.inters.AssessmentEvidence
}

func (c *AssessmentEvidenceClient) mutate(ctx context.Context, m *AssessmentEvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentEvidence mutation op: %q", m.Op())
	}
}

// CommitRecordClient is a client for the CommitRecord schema.
type CommitRecordClient struct {
	config
}

// NewCommitRecordClient returns a client for the CommitRecord from the given config.
func NewCommitRecordClient(c config) *CommitRecordClient {
	return &CommitRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commitrecord.Hooks(f(g(h())))`.
func (c *CommitRecordClient) Use(hooks ...Hook) {
	c.hooks.CommitRecord = append(c.hooks.CommitRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commitrecord.Intercept(f(g(h())))`.
func (c *CommitRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommitRecord = append(c.inters.CommitRecord, interceptors...)
}

// Create returns a builder for creating a CommitRecord entity.
func (c *CommitRecordClient) Create() *CommitRecordCreate {
	mutation := newCommitRecordMutation(c.config, OpCreate)
	return &CommitRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommitRecord entities.
func (c *CommitRecordClient) CreateBulk(builders ...*CommitRecordCreate) *CommitRecordCreateBulk {
	return &CommitRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommitRecordClient) MapCreateBulk(slice any, setFunc func(*CommitRecordCreate, int)) *CommitRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommitRecordCreateBulk{err: fmt.Errorf("calling to CommitRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommitRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommitRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommitRecord.
func (c *CommitRecordClient) Update() *CommitRecordUpdate {
	mutation := newCommitRecordMutation(c.config, OpUpdate)
	return &CommitRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommitRecordClient) UpdateOne(_m *CommitRecord) *CommitRecordUpdateOne {
	mutation := newCommitRecordMutation(c.config, OpUpdateOne, withCommitRecord(_m))
	return &CommitRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommitRecordClient) UpdateOneID(id int) *CommitRecordUpdateOne {
	mutation := newCommitRecordMutation(c.config, OpUpdateOne, withCommitRecordID(id))
	return &CommitRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommitRecord.
func (c *CommitRecordClient) Delete() *CommitRecordDelete {
	mutation := newCommitRecordMutation(c.config, OpDelete)
	return &CommitRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommitRecordClient) DeleteOne(_m *CommitRecord) *CommitRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommitRecordClient) DeleteOneID(id int) *CommitRecordDeleteOne {
	builder := c.Delete().Where(commitrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommitRecordDeleteOne{builder}
}

// Query returns a query builder for CommitRecord.
func (c *CommitRecordClient) Query() *CommitRecordQuery {
	return &CommitRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommitRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CommitRecord entity by its id.
func (c *CommitRecordClient) Get(ctx context.Context, id int) (*CommitRecord, error) {
	return c.Query().Where(commitrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommitRecordClient) GetX(ctx context.Context, id int) *CommitRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CommitRecordClient) Hooks() []Hook {
	return c.hooks.CommitRecord
}

// Interceptors returns the client interceptors.
func (c *CommitRecordClient) Interceptors() []Interceptor {
	return c.inters.CommitRecord
}

func (c *CommitRecordClient) mutate(ctx context.Context, m *CommitRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommitRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommitRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommitRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommitRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CommitRecord mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MasteryDecisionClient is a client for the MasteryDecision schema.
type MasteryDecisionClient struct {
	config
}

// NewMasteryDecisionClient returns a client for the MasteryDecision from the given config.
func NewMasteryDecisionClient(c config) *MasteryDecisionClient {
	return &MasteryDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masterydecision.Hooks(f(g(h())))`.
func (c *MasteryDecisionClient) Use(hooks ...Hook) {
	c.hooks.MasteryDecision = append(c.hooks.MasteryDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masterydecision.Intercept(f(g(h())))`.
func (c *MasteryDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryDecision = append(c.inters.MasteryDecision, interceptors...)
}

// Create returns a builder for creating a MasteryDecision entity.
func (c *MasteryDecisionClient) Create() *MasteryDecisionCreate {
	mutation := newMasteryDecisionMutation(c.config, OpCreate)
	return &MasteryDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryDecision entities.
func (c *MasteryDecisionClient) CreateBulk(builders ...*MasteryDecisionCreate) *MasteryDecisionCreateBulk {
	return &MasteryDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryDecisionClient) MapCreateBulk(slice any, setFunc func(*MasteryDecisionCreate, int)) *MasteryDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryDecisionCreateBulk{err: fmt.Errorf("calling to MasteryDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryDecision.
func (c *MasteryDecisionClient) Update() *MasteryDecisionUpdate {
	mutation := newMasteryDecisionMutation(c.config, OpUpdate)
	return &MasteryDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryDecisionClient) UpdateOne(_m *MasteryDecision) *MasteryDecisionUpdateOne {
	mutation := newMasteryDecisionMutation(c.config, OpUpdateOne, withMasteryDecision(_m))
	return &MasteryDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryDecisionClient) UpdateOneID(id int) *MasteryDecisionUpdateOne {
	mutation := newMasteryDecisionMutation(c.config, OpUpdateOne, withMasteryDecisionID(id))
	return &MasteryDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryDecision.
func (c *MasteryDecisionClient) Delete() *MasteryDecisionDelete {
	mutation := newMasteryDecisionMutation(c.config, OpDelete)
	return &MasteryDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryDecisionClient) DeleteOne(_m *MasteryDecision) *MasteryDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryDecisionClient) DeleteOneID(id int) *MasteryDecisionDeleteOne {
	builder := c.Delete().Where(masterydecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryDecisionDeleteOne{builder}
}

// Query returns a query builder for MasteryDecision.
func (c *MasteryDecisionClient) Query() *MasteryDecisionQuery {
	return &MasteryDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryDecision entity by its id.
func (c *MasteryDecisionClient) Get(ctx context.Context, id int) (*MasteryDecision, error) {
	return c.Query().Where(masterydecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryDecisionClient) GetX(ctx context.Context, id int) *MasteryDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryDecisionClient) Hooks() []Hook {
	return c.hooks.MasteryDecision
}

// Interceptors returns the client interceptors.
func (c *MasteryDecisionClient) Interceptors() []Interceptor {
	return c.inters.MasteryDecision
}

func (c *MasteryDecisionClient) mutate(ctx context.Context, m *MasteryDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryDecision mutation op: %q", m.Op())
	}
}

// ProgressRecordClient is a client for the ProgressRecord schema.
type ProgressRecordClient struct {
	config
}

// NewProgressRecordClient returns a client for the ProgressRecord from the given config.
func NewProgressRecordClient(c config) *ProgressRecordClient {
	return &ProgressRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressrecord.Hooks(f(g(h())))`.
func (c *ProgressRecordClient) Use(hooks ...Hook) {
	c.hooks.ProgressRecord = append(c.hooks.ProgressRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressrecord.Intercept(f(g(h())))`.
func (c *ProgressRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressRecord = append(c.inters.ProgressRecord, interceptors...)
}

// Create returns a builder for creating a ProgressRecord entity.
func (c *ProgressRecordClient) Create() *ProgressRecordCreate {
	mutation := newProgressRecordMutation(c.config, OpCreate)
	return &ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressRecord entities.
func (c *ProgressRecordClient) CreateBulk(builders ...*ProgressRecordCreate) *ProgressRecordCreateBulk {
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressRecordClient) MapCreateBulk(slice any, setFunc func(*ProgressRecordCreate, int)) *ProgressRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressRecordCreateBulk{err: fmt.Errorf("calling to ProgressRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressRecord.
func (c *ProgressRecordClient) Update() *ProgressRecordUpdate {
	mutation := newProgressRecordMutation(c.config, OpUpdate)
	return &ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressRecordClient) UpdateOne(_m *ProgressRecord) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecord(_m))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressRecordClient) UpdateOneID(id int) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecordID(id))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressRecord.
func (c *ProgressRecordClient) Delete() *ProgressRecordDelete {
	mutation := newProgressRecordMutation(c.config, OpDelete)
	return &ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressRecordClient) DeleteOne(_m *ProgressRecord) *ProgressRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressRecordClient) DeleteOneID(id int) *ProgressRecordDeleteOne {
	builder := c.Delete().Where(progressrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressRecordDeleteOne{builder}
}

// Query returns a query builder for ProgressRecord.
func (c *ProgressRecordClient) Query() *ProgressRecordQuery {
	return &ProgressRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressRecord entity by its id.
func (c *ProgressRecordClient) Get(ctx context.Context, id int) (*ProgressRecord, error) {
	return c.Query().Where(progressrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressRecordClient) GetX(ctx context.Context, id int) *ProgressRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressRecordClient) Hooks() []Hook {
	return c.hooks.ProgressRecord
}

// Interceptors returns the client interceptors.
func (c *ProgressRecordClient) Interceptors() []Interceptor {
	return c.inters.ProgressRecord
}

func (c *ProgressRecordClient) mutate(ctx context.Context, m *ProgressRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressRecord mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdaptationEvent, AssessmentEvidence, CommitRecord, LLMRequestEvent,
		MasteryDecision, ProgressRecord, SessionEvent []ent.Hook
	}
	inters struct {
		AdaptationEvent, AssessmentEvidence, CommitRecord, LLMRequestEvent,
		MasteryDecision, ProgressRecord, SessionEvent []ent.Interceptor
	}
)
