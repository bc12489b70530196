// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/stackfour/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stackfour/ent/evaluationrun"
	"github.com/abhisek/stackfour/ent/keywordstat"
	"github.com/abhisek/stackfour/ent/llmrequestevent"
	"github.com/abhisek/stackfour/ent/patternstat"
	"github.com/abhisek/stackfour/ent/predictionevent"
	"github.com/abhisek/stackfour/ent/question"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EvaluationRun is the client for interacting with the EvaluationRun builders.
	EvaluationRun *EvaluationRunClient
	// KeywordStat is the client for interacting with the KeywordStat builders.
	KeywordStat *KeywordStatClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PatternStat is the client for interacting with the PatternStat builders.
	PatternStat *PatternStatClient
	// PredictionEvent is the client for interacting with the PredictionEvent builders.
	PredictionEvent *PredictionEventClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EvaluationRun = NewEvaluationRunClient(c.config)
	c.KeywordStat = NewKeywordStatClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PatternStat = NewPatternStatClient(c.config)
	c.PredictionEvent = NewPredictionEventClient(c.config)
	c.Question = NewQuestionClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		EvaluationRun:   NewEvaluationRunClient(cfg),
		KeywordStat:     NewKeywordStatClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PatternStat:     NewPatternStatClient(cfg),
		PredictionEvent: NewPredictionEventClient(cfg),
		Question:        NewQuestionClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		EvaluationRun:   NewEvaluationRunClient(cfg),
		KeywordStat:     NewKeywordStatClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PatternStat:     NewPatternStatClient(cfg),
		PredictionEvent: NewPredictionEventClient(cfg),
		Question:        NewQuestionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EvaluationRun.
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
		c.EvaluationRun, c.KeywordStat, c.LLMRequestEvent, c.PatternStat,
		c.PredictionEvent, c.Question,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.EvaluationRun, c.KeywordStat, c.LLMRequestEvent, c.PatternStat,
		c.PredictionEvent, c.Question,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EvaluationRunMutation:
		return c.EvaluationRun.mutate(ctx, m)
	case *KeywordStatMutation:
		return c.KeywordStat.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PatternStatMutation:
		return c.PatternStat.mutate(ctx, m)
	case *PredictionEventMutation:
		return c.PredictionEvent.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EvaluationRunClient is a client for the EvaluationRun schema.
type EvaluationRunClient struct {
	config
}

// NewEvaluationRunClient returns a client for the EvaluationRun from the given config.
func NewEvaluationRunClient(c config) *EvaluationRunClient {
	return &EvaluationRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationrun.Hooks(f(g(h())))`.
func (c *EvaluationRunClient) Use(hooks ...Hook) {
	c.hooks.EvaluationRun = append(c.hooks.EvaluationRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationrun.Intercept(f(g(h())))`.
func (c *EvaluationRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationRun = append(c.inters.EvaluationRun, interceptors...)
}

// Create returns a builder for creating a EvaluationRun entity.
func (c *EvaluationRunClient) Create() *EvaluationRunCreate {
	mutation := newEvaluationRunMutation(c.config, OpCreate)
	return &EvaluationRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationRun entities.
func (c *EvaluationRunClient) CreateBulk(builders ...*EvaluationRunCreate) *EvaluationRunCreateBulk {
	return &EvaluationRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationRunClient) MapCreateBulk(slice any, setFunc func(*EvaluationRunCreate, int)) *EvaluationRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationRunCreateBulk{err: fmt.Errorf("calling to EvaluationRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationRun.
func (c *EvaluationRunClient) Update() *EvaluationRunUpdate {
	mutation := newEvaluationRunMutation(c.config, OpUpdate)
	return &EvaluationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationRunClient) UpdateOne(_m *EvaluationRun) *EvaluationRunUpdateOne {
	mutation := newEvaluationRunMutation(c.config, OpUpdateOne, withEvaluationRun(_m))
	return &EvaluationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationRunClient) UpdateOneID(id int) *EvaluationRunUpdateOne {
	mutation := newEvaluationRunMutation(c.config, OpUpdateOne, withEvaluationRunID(id))
	return &EvaluationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationRun.
func (c *EvaluationRunClient) Delete() *EvaluationRunDelete {
	mutation := newEvaluationRunMutation(c.config, OpDelete)
	return &EvaluationRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationRunClient) DeleteOne(_m *EvaluationRun) *EvaluationRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationRunClient) DeleteOneID(id int) *EvaluationRunDeleteOne {
	builder := c.Delete().Where(evaluationrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationRunDeleteOne{builder}
}

// Query returns a query builder for EvaluationRun.
func (c *EvaluationRunClient) Query() *EvaluationRunQuery {
	return &EvaluationRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationRun},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationRun entity by its id.
func (c *EvaluationRunClient) Get(ctx context.Context, id int) (*EvaluationRun, error) {
	return c.Query().Where(evaluationrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationRunClient) GetX(ctx context.Context, id int) *EvaluationRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvaluationRunClient) Hooks() []Hook {
	return c.hooks.EvaluationRun
}

// Interceptors returns the client interceptors.
func (c *EvaluationRunClient) Interceptors() []Interceptor {
	return c.inters.EvaluationRun
}

func (c *EvaluationRunClient) mutate(ctx context.Context, m *EvaluationRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationRun mutation op: %q", m.Op())
	}
}

// KeywordStatClient is a client for the KeywordStat schema.
type KeywordStatClient struct {
	config
}

// NewKeywordStatClient returns a client for the KeywordStat from the given config.
func NewKeywordStatClient(c config) *KeywordStatClient {
	return &KeywordStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `keywordstat.Hooks(f(g(h())))`.
func (c *KeywordStatClient) Use(hooks ...Hook) {
	c.hooks.KeywordStat = append(c.hooks.KeywordStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `keywordstat.Intercept(f(g(h())))`.
func (c *KeywordStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.KeywordStat = append(c.inters.KeywordStat, interceptors...)
}

// Create returns a builder for creating a KeywordStat entity.
func (c *KeywordStatClient) Create() *KeywordStatCreate {
	mutation := newKeywordStatMutation(c.config, OpCreate)
	return &KeywordStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KeywordStat entities.
func (c *KeywordStatClient) CreateBulk(builders ...*KeywordStatCreate) *KeywordStatCreateBulk {
	return &KeywordStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KeywordStatClient) MapCreateBulk(slice any, setFunc func(*KeywordStatCreate, int)) *KeywordStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KeywordStatCreateBulk{err: fmt.Errorf("calling to KeywordStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KeywordStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KeywordStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KeywordStat.
func (c *KeywordStatClient) Update() *KeywordStatUpdate {
	mutation := newKeywordStatMutation(c.config, OpUpdate)
	return &KeywordStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KeywordStatClient) UpdateOne(_m *KeywordStat) *KeywordStatUpdateOne {
	mutation := newKeywordStatMutation(c.config, OpUpdateOne, withKeywordStat(_m))
	return &KeywordStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KeywordStatClient) UpdateOneID(id int) *KeywordStatUpdateOne {
	mutation := newKeywordStatMutation(c.config, OpUpdateOne, withKeywordStatID(id))
	return &KeywordStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KeywordStat.
func (c *KeywordStatClient) Delete() *KeywordStatDelete {
	mutation := newKeywordStatMutation(c.config, OpDelete)
	return &KeywordStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KeywordStatClient) DeleteOne(_m *KeywordStat) *KeywordStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KeywordStatClient) DeleteOneID(id int) *KeywordStatDeleteOne {
	builder := c.Delete().Where(keywordstat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KeywordStatDeleteOne{builder}
}

// Query returns a query builder for KeywordStat.
func (c *KeywordStatClient) Query() *KeywordStatQuery {
	return &KeywordStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKeywordStat},
		inters: c.Interceptors(),
	}
}

// Get returns a KeywordStat entity by its id.
func (c *KeywordStatClient) Get(ctx context.Context, id int) (*KeywordStat, error) {
	return c.Query().Where(keywordstat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KeywordStatClient) GetX(ctx context.Context, id int) *KeywordStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KeywordStatClient) Hooks() []Hook {
	return c.hooks.KeywordStat
}

// Interceptors returns the client interceptors.
func (c *KeywordStatClient) Interceptors() []Interceptor {
	return c.inters.KeywordStat
}

func (c *KeywordStatClient) mutate(ctx context.Context, m *KeywordStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KeywordStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KeywordStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KeywordStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KeywordStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KeywordStat mutation op: %q", m.Op())
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

// PatternStatClient is a client for the PatternStat schema.
type PatternStatClient struct {
	config
}

// NewPatternStatClient returns a client for the PatternStat from the given config.
func NewPatternStatClient(c config) *PatternStatClient {
	return &PatternStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patternstat.Hooks(f(g(h())))`.
func (c *PatternStatClient) Use(hooks ...Hook) {
	c.hooks.PatternStat = append(c.hooks.PatternStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patternstat.Intercept(f(g(h())))`.
func (c *PatternStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatternStat = append(c.inters.PatternStat, interceptors...)
}

// Create returns a builder for creating a PatternStat entity.
func (c *PatternStatClient) Create() *PatternStatCreate {
	mutation := newPatternStatMutation(c.config, OpCreate)
	return &PatternStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatternStat entities.
func (c *PatternStatClient) CreateBulk(builders ...*PatternStatCreate) *PatternStatCreateBulk {
	return &PatternStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatternStatClient) MapCreateBulk(slice any, setFunc func(*PatternStatCreate, int)) *PatternStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatternStatCreateBulk{err: fmt.Errorf("calling to PatternStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatternStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatternStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatternStat.
func (c *PatternStatClient) Update() *PatternStatUpdate {
	mutation := newPatternStatMutation(c.config, OpUpdate)
	return &PatternStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatternStatClient) UpdateOne(_m *PatternStat) *PatternStatUpdateOne {
	mutation := newPatternStatMutation(c.config, OpUpdateOne, withPatternStat(_m))
	return &PatternStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatternStatClient) UpdateOneID(id int) *PatternStatUpdateOne {
	mutation := newPatternStatMutation(c.config, OpUpdateOne, withPatternStatID(id))
	return &PatternStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatternStat.
func (c *PatternStatClient) Delete() *PatternStatDelete {
	mutation := newPatternStatMutation(c.config, OpDelete)
	return &PatternStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatternStatClient) DeleteOne(_m *PatternStat) *PatternStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatternStatClient) DeleteOneID(id int) *PatternStatDeleteOne {
	builder := c.Delete().Where(patternstat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatternStatDeleteOne{builder}
}

// Query returns a query builder for PatternStat.
func (c *PatternStatClient) Query() *PatternStatQuery {
	return &PatternStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatternStat},
		inters: c.Interceptors(),
	}
}

// Get returns a PatternStat entity by its id.
func (c *PatternStatClient) Get(ctx context.Context, id int) (*PatternStat, error) {
	return c.Query().Where(patternstat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatternStatClient) GetX(ctx context.Context, id int) *PatternStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatternStatClient) Hooks() []Hook {
	return c.hooks.PatternStat
}

// Interceptors returns the client interceptors.
func (c *PatternStatClient) Interceptors() []Interceptor {
	return c.inters.PatternStat
}

func (c *PatternStatClient) mutate(ctx context.Context, m *PatternStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatternStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatternStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatternStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatternStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatternStat mutation op: %q", m.Op())
	}
}

// PredictionEventClient is a client for the PredictionEvent schema.
type PredictionEventClient struct {
	config
}

// NewPredictionEventClient returns a client for the PredictionEvent from the given config.
func NewPredictionEventClient(c config) *PredictionEventClient {
	return &PredictionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `predictionevent.Hooks(f(g(h())))`.
func (c *PredictionEventClient) Use(hooks ...Hook) {
	c.hooks.PredictionEvent = append(c.hooks.PredictionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `predictionevent.Intercept(f(g(h())))`.
func (c *PredictionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PredictionEvent = append(c.inters.PredictionEvent, interceptors...)
}

// Create returns a builder for creating a PredictionEvent entity.
func (c *PredictionEventClient) Create() *PredictionEventCreate {
	mutation := newPredictionEventMutation(c.config, OpCreate)
	return &PredictionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PredictionEvent entities.
func (c *PredictionEventClient) CreateBulk(builders ...*PredictionEventCreate) *PredictionEventCreateBulk {
	return &PredictionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PredictionEventClient) MapCreateBulk(slice any, setFunc func(*PredictionEventCreate, int)) *PredictionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PredictionEventCreateBulk{err: fmt.Errorf("calling to PredictionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PredictionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PredictionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PredictionEvent.
func (c *PredictionEventClient) Update() *PredictionEventUpdate {
	mutation := newPredictionEventMutation(c.config, OpUpdate)
	return &PredictionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PredictionEventClient) UpdateOne(_m *PredictionEvent) *PredictionEventUpdateOne {
	mutation := newPredictionEventMutation(c.config, OpUpdateOne, withPredictionEvent(_m))
	return &PredictionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PredictionEventClient) UpdateOneID(id int) *PredictionEventUpdateOne {
	mutation := newPredictionEventMutation(c.config, OpUpdateOne, withPredictionEventID(id))
	return &PredictionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PredictionEvent.
func (c *PredictionEventClient) Delete() *PredictionEventDelete {
	mutation := newPredictionEventMutation(c.config, OpDelete)
	return &PredictionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PredictionEventClient) DeleteOne(_m *PredictionEvent) *PredictionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PredictionEventClient) DeleteOneID(id int) *PredictionEventDeleteOne {
	builder := c.Delete().Where(predictionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PredictionEventDeleteOne{builder}
}

// Query returns a query builder for PredictionEvent.
func (c *PredictionEventClient) Query() *PredictionEventQuery {
	return &PredictionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePredictionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PredictionEvent entity by its id.
func (c *PredictionEventClient) Get(ctx context.Context, id int) (*PredictionEvent, error) {
	return c.Query().Where(predictionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PredictionEventClient) GetX(ctx context.Context, id int) *PredictionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PredictionEventClient) Hooks() []Hook {
	return c.hooks.PredictionEvent
}

// Interceptors returns the client interceptors.
func (c *PredictionEventClient) Interceptors() []Interceptor {
	return c.inters.PredictionEvent
}

func (c *PredictionEventClient) mutate(ctx context.Context, m *PredictionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PredictionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PredictionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PredictionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PredictionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PredictionEvent mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id int) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id int) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id int) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id int) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EvaluationRun, KeywordStat, LLMRequestEvent, PatternStat, PredictionEvent,
		Question []ent.Hook
	}
	inters struct {
		EvaluationRun, KeywordStat, LLMRequestEvent, PatternStat, PredictionEvent,
		Question []ent.Interceptor
	}
)
