// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Alert is the client for interacting with the Alert builders.
	Alert *AlertClient
	// Checkup is the client for interacting with the Checkup builders.
	Checkup *CheckupClient
	// CheckupAnalyze is the client for interacting with the CheckupAnalyze builders.
	CheckupAnalyze *CheckupAnalyzeClient
	// Clinic is the client for interacting with the Clinic builders.
	Clinic *ClinicClient
	// ClinicCheckup is the client for interacting with the ClinicCheckup builders.
	ClinicCheckup *ClinicCheckupClient
	// ClinicGroup is the client for interacting with the ClinicGroup builders.
	ClinicGroup *ClinicGroupClient
	// ClinicMedia is the client for interacting with the ClinicMedia builders.
	ClinicMedia *ClinicMediaClient
	// Doctor is the client for interacting with the Doctor builders.
	Doctor *DoctorClient
	// Interpretation is the client for interacting with the Interpretation builders.
	Interpretation *InterpretationClient
	// Media is the client for interacting with the Media builders.
	Media *MediaClient
	// Organ is the client for interacting with the Organ builders.
	Organ *OrganClient
	// PatientProfile is the client for interacting with the PatientProfile builders.
	PatientProfile *PatientProfileClient
	// QuestionAnswer is the client for interacting with the QuestionAnswer builders.
	QuestionAnswer *QuestionAnswerClient
	// QuestionOption is the client for interacting with the QuestionOption builders.
	QuestionOption *QuestionOptionClient
	// QuestionOptionDate is the client for interacting with the QuestionOptionDate builders.
	QuestionOptionDate *QuestionOptionDateClient
	// QuestionOptionEquation is the client for interacting with the QuestionOptionEquation builders.
	QuestionOptionEquation *QuestionOptionEquationClient
	// QuestionOptionNumber is the client for interacting with the QuestionOptionNumber builders.
	QuestionOptionNumber *QuestionOptionNumberClient
	// QuestionShare is the client for interacting with the QuestionShare builders.
	QuestionShare *QuestionShareClient
	// RealClinic is the client for interacting with the RealClinic builders.
	RealClinic *RealClinicClient
	// RealDoctor is the client for interacting with the RealDoctor builders.
	RealDoctor *RealDoctorClient
	// Suggestion is the client for interacting with the Suggestion builders.
	Suggestion *SuggestionClient
	// Supervisor is the client for interacting with the Supervisor builders.
	Supervisor *SupervisorClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Alert = NewAlertClient(c.config)
	c.Checkup = NewCheckupClient(c.config)
	c.CheckupAnalyze = NewCheckupAnalyzeClient(c.config)
	c.Clinic = NewClinicClient(c.config)
	c.ClinicCheckup = NewClinicCheckupClient(c.config)
	c.ClinicGroup = NewClinicGroupClient(c.config)
	c.ClinicMedia = NewClinicMediaClient(c.config)
	c.Doctor = NewDoctorClient(c.config)
	c.Interpretation = NewInterpretationClient(c.config)
	c.Media = NewMediaClient(c.config)
	c.Organ = NewOrganClient(c.config)
	c.PatientProfile = NewPatientProfileClient(c.config)
	c.QuestionAnswer = NewQuestionAnswerClient(c.config)
	c.QuestionOption = NewQuestionOptionClient(c.config)
	c.QuestionOptionDate = NewQuestionOptionDateClient(c.config)
	c.QuestionOptionEquation = NewQuestionOptionEquationClient(c.config)
	c.QuestionOptionNumber = NewQuestionOptionNumberClient(c.config)
	c.QuestionShare = NewQuestionShareClient(c.config)
	c.RealClinic = NewRealClinicClient(c.config)
	c.RealDoctor = NewRealDoctorClient(c.config)
	c.Suggestion = NewSuggestionClient(c.config)
	c.Supervisor = NewSupervisorClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		Alert:                  NewAlertClient(cfg),
		Checkup:                NewCheckupClient(cfg),
		CheckupAnalyze:         NewCheckupAnalyzeClient(cfg),
		Clinic:                 NewClinicClient(cfg),
		ClinicCheckup:          NewClinicCheckupClient(cfg),
		ClinicGroup:            NewClinicGroupClient(cfg),
		ClinicMedia:            NewClinicMediaClient(cfg),
		Doctor:                 NewDoctorClient(cfg),
		Interpretation:         NewInterpretationClient(cfg),
		Media:                  NewMediaClient(cfg),
		Organ:                  NewOrganClient(cfg),
		PatientProfile:         NewPatientProfileClient(cfg),
		QuestionAnswer:         NewQuestionAnswerClient(cfg),
		QuestionOption:         NewQuestionOptionClient(cfg),
		QuestionOptionDate:     NewQuestionOptionDateClient(cfg),
		QuestionOptionEquation: NewQuestionOptionEquationClient(cfg),
		QuestionOptionNumber:   NewQuestionOptionNumberClient(cfg),
		QuestionShare:          NewQuestionShareClient(cfg),
		RealClinic:             NewRealClinicClient(cfg),
		RealDoctor:             NewRealDoctorClient(cfg),
		Suggestion:             NewSuggestionClient(cfg),
		Supervisor:             NewSupervisorClient(cfg),
		User:                   NewUserClient(cfg),
		UserSession:            NewUserSessionClient(cfg),
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
		ctx:                    ctx,
		config:                 cfg,
		Alert:                  NewAlertClient(cfg),
		Checkup:                NewCheckupClient(cfg),
		CheckupAnalyze:         NewCheckupAnalyzeClient(cfg),
		Clinic:                 NewClinicClient(cfg),
		ClinicCheckup:          NewClinicCheckupClient(cfg),
		ClinicGroup:            NewClinicGroupClient(cfg),
		ClinicMedia:            NewClinicMediaClient(cfg),
		Doctor:                 NewDoctorClient(cfg),
		Interpretation:         NewInterpretationClient(cfg),
		Media:                  NewMediaClient(cfg),
		Organ:                  NewOrganClient(cfg),
		PatientProfile:         NewPatientProfileClient(cfg),
		QuestionAnswer:         NewQuestionAnswerClient(cfg),
		QuestionOption:         NewQuestionOptionClient(cfg),
		QuestionOptionDate:     NewQuestionOptionDateClient(cfg),
		QuestionOptionEquation: NewQuestionOptionEquationClient(cfg),
		QuestionOptionNumber:   NewQuestionOptionNumberClient(cfg),
		QuestionShare:          NewQuestionShareClient(cfg),
		RealClinic:             NewRealClinicClient(cfg),
		RealDoctor:             NewRealDoctorClient(cfg),
		Suggestion:             NewSuggestionClient(cfg),
		Supervisor:             NewSupervisorClient(cfg),
		User:                   NewUserClient(cfg),
		UserSession:            NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Alert.
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
		c.Alert, c.Checkup, c.CheckupAnalyze, c.Clinic, c.ClinicCheckup, c.ClinicGroup,
		c.ClinicMedia, c.Doctor, c.Interpretation, c.Media, c.Organ, c.PatientProfile,
		c.QuestionAnswer, c.QuestionOption, c.QuestionOptionDate,
		c.QuestionOptionEquation, c.QuestionOptionNumber, c.QuestionShare,
		c.RealClinic, c.RealDoctor, c.Suggestion, c.Supervisor, c.User, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Alert, c.Checkup, c.CheckupAnalyze, c.Clinic, c.ClinicCheckup, c.ClinicGroup,
		c.ClinicMedia, c.Doctor, c.Interpretation, c.Media, c.Organ, c.PatientProfile,
		c.QuestionAnswer, c.QuestionOption, c.QuestionOptionDate,
		c.QuestionOptionEquation, c.QuestionOptionNumber, c.QuestionShare,
		c.RealClinic, c.RealDoctor, c.Suggestion, c.Supervisor, c.User, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertMutation:
		return c.Alert.mutate(ctx, m)
	case *CheckupMutation:
		return c.Checkup.mutate(ctx, m)
	case *CheckupAnalyzeMutation:
		return c.CheckupAnalyze.mutate(ctx, m)
	case *ClinicMutation:
		return c.Clinic.mutate(ctx, m)
	case *ClinicCheckupMutation:
		return c.ClinicCheckup.mutate(ctx, m)
	case *ClinicGroupMutation:
		return c.ClinicGroup.mutate(ctx, m)
	case *ClinicMediaMutation:
		return c.ClinicMedia.mutate(ctx, m)
	case *DoctorMutation:
		return c.Doctor.mutate(ctx, m)
	case *InterpretationMutation:
		return c.Interpretation.mutate(ctx, m)
	case *MediaMutation:
		return c.Media.mutate(ctx, m)
	case *OrganMutation:
		return c.Organ.mutate(ctx, m)
	case *PatientProfileMutation:
		return c.PatientProfile.mutate(ctx, m)
	case *QuestionAnswerMutation:
		return c.QuestionAnswer.mutate(ctx, m)
	case *QuestionOptionMutation:
		return c.QuestionOption.mutate(ctx, m)
	case *QuestionOptionDateMutation:
		return c.QuestionOptionDate.mutate(ctx, m)
	case *QuestionOptionEquationMutation:
		return c.QuestionOptionEquation.mutate(ctx, m)
	case *QuestionOptionNumberMutation:
		return c.QuestionOptionNumber.mutate(ctx, m)
	case *QuestionShareMutation:
		return c.QuestionShare.mutate(ctx, m)
	case *RealClinicMutation:
		return c.RealClinic.mutate(ctx, m)
	case *RealDoctorMutation:
		return c.RealDoctor.mutate(ctx, m)
	case *SuggestionMutation:
		return c.Suggestion.mutate(ctx, m)
	case *SupervisorMutation:
		return c.Supervisor.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AlertClient is a client for the Alert schema.
type AlertClient struct {
	config
}

// NewAlertClient returns a client for the Alert from the given config.
func NewAlertClient(c config) *AlertClient {
	return &AlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alert.Hooks(f(g(h())))`.
func (c *AlertClient) Use(hooks ...Hook) {
	c.hooks.Alert = append(c.hooks.Alert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alert.Intercept(f(g(h())))`.
func (c *AlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.Alert = append(c.inters.Alert, interceptors...)
}

// Create returns a builder for creating a Alert entity.
func (c *AlertClient) Create() *AlertCreate {
	mutation := newAlertMutation(c.config, OpCreate)
	return &AlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Alert entities.
func (c *AlertClient) CreateBulk(builders ...*AlertCreate) *AlertCreateBulk {
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertClient) MapCreateBulk(slice any, setFunc func(*AlertCreate, int)) *AlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertCreateBulk{err: fmt.Errorf("calling to AlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Alert.
func (c *AlertClient) Update() *AlertUpdate {
	mutation := newAlertMutation(c.config, OpUpdate)
	return &AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertClient) UpdateOne(_m *Alert) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlert(_m))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertClient) UpdateOneID(id uuid.UUID) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlertID(id))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Alert.
func (c *AlertClient) Delete() *AlertDelete {
	mutation := newAlertMutation(c.config, OpDelete)
	return &AlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertClient) DeleteOne(_m *Alert) *AlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertClient) DeleteOneID(id uuid.UUID) *AlertDeleteOne {
	builder := c.Delete().Where(alert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertDeleteOne{builder}
}

// Query returns a query builder for Alert.
func (c *AlertClient) Query() *AlertQuery {
	return &AlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a Alert entity by its id.
func (c *AlertClient) Get(ctx context.Context, id uuid.UUID) (*Alert, error) {
	return c.Query().Where(alert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertClient) GetX(ctx context.Context, id uuid.UUID) *Alert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClinic queries the clinic edge of a Alert.
func (c *AlertClient) QueryClinic(_m *Alert) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alert.Table, alert.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, alert.ClinicTable, alert.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlertClient) Hooks() []Hook {
	return c.hooks.Alert
}

// Interceptors returns the client interceptors.
func (c *AlertClient) Interceptors() []Interceptor {
	return c.inters.Alert
}

func (c *AlertClient) mutate(ctx context.Context, m *AlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Alert mutation op: %q", m.Op())
	}
}

// CheckupClient is a client for the Checkup schema.
type CheckupClient struct {
	config
}

// NewCheckupClient returns a client for the Checkup from the given config.
func NewCheckupClient(c config) *CheckupClient {
	return &CheckupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkup.Hooks(f(g(h())))`.
func (c *CheckupClient) Use(hooks ...Hook) {
	c.hooks.Checkup = append(c.hooks.Checkup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkup.Intercept(f(g(h())))`.
func (c *CheckupClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkup = append(c.inters.Checkup, interceptors...)
}

// Create returns a builder for creating a Checkup entity.
func (c *CheckupClient) Create() *CheckupCreate {
	mutation := newCheckupMutation(c.config, OpCreate)
	return &CheckupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkup entities.
func (c *CheckupClient) CreateBulk(builders ...*CheckupCreate) *CheckupCreateBulk {
	return &CheckupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckupClient) MapCreateBulk(slice any, setFunc func(*CheckupCreate, int)) *CheckupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckupCreateBulk{err: fmt.Errorf("calling to CheckupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkup.
func (c *CheckupClient) Update() *CheckupUpdate {
	mutation := newCheckupMutation(c.config, OpUpdate)
	return &CheckupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckupClient) UpdateOne(_m *Checkup) *CheckupUpdateOne {
	mutation := newCheckupMutation(c.config, OpUpdateOne, withCheckup(_m))
	return &CheckupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckupClient) UpdateOneID(id uuid.UUID) *CheckupUpdateOne {
	mutation := newCheckupMutation(c.config, OpUpdateOne, withCheckupID(id))
	return &CheckupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkup.
func (c *CheckupClient) Delete() *CheckupDelete {
	mutation := newCheckupMutation(c.config, OpDelete)
	return &CheckupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckupClient) DeleteOne(_m *Checkup) *CheckupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckupClient) DeleteOneID(id uuid.UUID) *CheckupDeleteOne {
	builder := c.Delete().Where(checkup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckupDeleteOne{builder}
}

// Query returns a query builder for Checkup.
func (c *CheckupClient) Query() *CheckupQuery {
	return &CheckupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckup},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkup entity by its id.
func (c *CheckupClient) Get(ctx context.Context, id uuid.UUID) (*Checkup, error) {
	return c.Query().Where(checkup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckupClient) GetX(ctx context.Context, id uuid.UUID) *Checkup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a Checkup.
func (c *CheckupClient) QueryPatient(_m *Checkup) *PatientProfileQuery {
	query := (&PatientProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkup.Table, checkup.FieldID, id),
			sqlgraph.To(patientprofile.Table, patientprofile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checkup.PatientTable, checkup.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClinic queries the clinic edge of a Checkup.
func (c *CheckupClient) QueryClinic(_m *Checkup) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkup.Table, checkup.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, checkup.ClinicTable, checkup.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplate queries the template edge of a Checkup.
func (c *CheckupClient) QueryTemplate(_m *Checkup) *ClinicCheckupQuery {
	query := (&ClinicCheckupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkup.Table, checkup.FieldID, id),
			sqlgraph.To(cliniccheckup.Table, cliniccheckup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checkup.TemplateTable, checkup.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnswers queries the answers edge of a Checkup.
func (c *CheckupClient) QueryAnswers(_m *Checkup) *QuestionAnswerQuery {
	query := (&QuestionAnswerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkup.Table, checkup.FieldID, id),
			sqlgraph.To(questionanswer.Table, questionanswer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, checkup.AnswersTable, checkup.AnswersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CheckupClient) Hooks() []Hook {
	return c.hooks.Checkup
}

// Interceptors returns the client interceptors.
func (c *CheckupClient) Interceptors() []Interceptor {
	return c.inters.Checkup
}

func (c *CheckupClient) mutate(ctx context.Context, m *CheckupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Checkup mutation op: %q", m.Op())
	}
}

// CheckupAnalyzeClient is a client for the CheckupAnalyze schema.
type CheckupAnalyzeClient struct {
	config
}

// NewCheckupAnalyzeClient returns a client for the CheckupAnalyze from the given config.
func NewCheckupAnalyzeClient(c config) *CheckupAnalyzeClient {
	return &CheckupAnalyzeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkupanalyze.Hooks(f(g(h())))`.
func (c *CheckupAnalyzeClient) Use(hooks ...Hook) {
	c.hooks.CheckupAnalyze = append(c.hooks.CheckupAnalyze, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkupanalyze.Intercept(f(g(h())))`.
func (c *CheckupAnalyzeClient) Intercept(interceptors ...Interceptor) {
	c.inters.CheckupAnalyze = append(c.inters.CheckupAnalyze, interceptors...)
}

// Create returns a builder for creating a CheckupAnalyze entity.
func (c *CheckupAnalyzeClient) Create() *CheckupAnalyzeCreate {
	mutation := newCheckupAnalyzeMutation(c.config, OpCreate)
	return &CheckupAnalyzeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CheckupAnalyze entities.
func (c *CheckupAnalyzeClient) CreateBulk(builders ...*CheckupAnalyzeCreate) *CheckupAnalyzeCreateBulk {
	return &CheckupAnalyzeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckupAnalyzeClient) MapCreateBulk(slice any, setFunc func(*CheckupAnalyzeCreate, int)) *CheckupAnalyzeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckupAnalyzeCreateBulk{err: fmt.Errorf("calling to CheckupAnalyzeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckupAnalyzeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckupAnalyzeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CheckupAnalyze.
func (c *CheckupAnalyzeClient) Update() *CheckupAnalyzeUpdate {
	mutation := newCheckupAnalyzeMutation(c.config, OpUpdate)
	return &CheckupAnalyzeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckupAnalyzeClient) UpdateOne(_m *CheckupAnalyze) *CheckupAnalyzeUpdateOne {
	mutation := newCheckupAnalyzeMutation(c.config, OpUpdateOne, withCheckupAnalyze(_m))
	return &CheckupAnalyzeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckupAnalyzeClient) UpdateOneID(id uuid.UUID) *CheckupAnalyzeUpdateOne {
	mutation := newCheckupAnalyzeMutation(c.config, OpUpdateOne, withCheckupAnalyzeID(id))
	return &CheckupAnalyzeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CheckupAnalyze.
func (c *CheckupAnalyzeClient) Delete() *CheckupAnalyzeDelete {
	mutation := newCheckupAnalyzeMutation(c.config, OpDelete)
	return &CheckupAnalyzeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckupAnalyzeClient) DeleteOne(_m *CheckupAnalyze) *CheckupAnalyzeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckupAnalyzeClient) DeleteOneID(id uuid.UUID) *CheckupAnalyzeDeleteOne {
	builder := c.Delete().Where(checkupanalyze.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckupAnalyzeDeleteOne{builder}
}

// Query returns a query builder for CheckupAnalyze.
func (c *CheckupAnalyzeClient) Query() *CheckupAnalyzeQuery {
	return &CheckupAnalyzeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckupAnalyze},
		inters: c.Interceptors(),
	}
}

// Get returns a CheckupAnalyze entity by its id.
func (c *CheckupAnalyzeClient) Get(ctx context.Context, id uuid.UUID) (*CheckupAnalyze, error) {
	return c.Query().Where(checkupanalyze.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckupAnalyzeClient) GetX(ctx context.Context, id uuid.UUID) *CheckupAnalyze {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTemplate queries the template edge of a CheckupAnalyze.
func (c *CheckupAnalyzeClient) QueryTemplate(_m *CheckupAnalyze) *ClinicCheckupQuery {
	query := (&ClinicCheckupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkupanalyze.Table, checkupanalyze.FieldID, id),
			sqlgraph.To(cliniccheckup.Table, cliniccheckup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checkupanalyze.TemplateTable, checkupanalyze.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInterpretations queries the interpretations edge of a CheckupAnalyze.
func (c *CheckupAnalyzeClient) QueryInterpretations(_m *CheckupAnalyze) *InterpretationQuery {
	query := (&InterpretationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkupanalyze.Table, checkupanalyze.FieldID, id),
			sqlgraph.To(interpretation.Table, interpretation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, checkupanalyze.InterpretationsTable, checkupanalyze.InterpretationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CheckupAnalyzeClient) Hooks() []Hook {
	return c.hooks.CheckupAnalyze
}

// Interceptors returns the client interceptors.
func (c *CheckupAnalyzeClient) Interceptors() []Interceptor {
	return c.inters.CheckupAnalyze
}

func (c *CheckupAnalyzeClient) mutate(ctx context.Context, m *CheckupAnalyzeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckupAnalyzeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckupAnalyzeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckupAnalyzeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckupAnalyzeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CheckupAnalyze mutation op: %q", m.Op())
	}
}

// ClinicClient is a client for the Clinic schema.
type ClinicClient struct {
	config
}

// NewClinicClient returns a client for the Clinic from the given config.
func NewClinicClient(c config) *ClinicClient {
	return &ClinicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinic.Hooks(f(g(h())))`.
func (c *ClinicClient) Use(hooks ...Hook) {
	c.hooks.Clinic = append(c.hooks.Clinic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinic.Intercept(f(g(h())))`.
func (c *ClinicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Clinic = append(c.inters.Clinic, interceptors...)
}

// Create returns a builder for creating a Clinic entity.
func (c *ClinicClient) Create() *ClinicCreate {
	mutation := newClinicMutation(c.config, OpCreate)
	return &ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Clinic entities.
func (c *ClinicClient) CreateBulk(builders ...*ClinicCreate) *ClinicCreateBulk {
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicClient) MapCreateBulk(slice any, setFunc func(*ClinicCreate, int)) *ClinicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicCreateBulk{err: fmt.Errorf("calling to ClinicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Clinic.
func (c *ClinicClient) Update() *ClinicUpdate {
	mutation := newClinicMutation(c.config, OpUpdate)
	return &ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicClient) UpdateOne(_m *Clinic) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinic(_m))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicClient) UpdateOneID(id uuid.UUID) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinicID(id))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Clinic.
func (c *ClinicClient) Delete() *ClinicDelete {
	mutation := newClinicMutation(c.config, OpDelete)
	return &ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicClient) DeleteOne(_m *Clinic) *ClinicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicClient) DeleteOneID(id uuid.UUID) *ClinicDeleteOne {
	builder := c.Delete().Where(clinic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicDeleteOne{builder}
}

// Query returns a query builder for Clinic.
func (c *ClinicClient) Query() *ClinicQuery {
	return &ClinicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinic},
		inters: c.Interceptors(),
	}
}

// Get returns a Clinic entity by its id.
func (c *ClinicClient) Get(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return c.Query().Where(clinic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicClient) GetX(ctx context.Context, id uuid.UUID) *Clinic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a Clinic.
func (c *ClinicClient) QueryGroup(_m *Clinic) *ClinicGroupQuery {
	query := (&ClinicGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinic.Table, clinic.FieldID, id),
			sqlgraph.To(clinicgroup.Table, clinicgroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clinic.GroupTable, clinic.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDoctors queries the doctors edge of a Clinic.
func (c *ClinicClient) QueryDoctors(_m *Clinic) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinic.Table, clinic.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinic.DoctorsTable, clinic.DoctorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlerts queries the alerts edge of a Clinic.
func (c *ClinicClient) QueryAlerts(_m *Clinic) *AlertQuery {
	query := (&AlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinic.Table, clinic.FieldID, id),
			sqlgraph.To(alert.Table, alert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinic.AlertsTable, clinic.AlertsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMedia queries the media edge of a Clinic.
func (c *ClinicClient) QueryMedia(_m *Clinic) *MediaQuery {
	query := (&MediaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinic.Table, clinic.FieldID, id),
			sqlgraph.To(media.Table, media.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinic.MediaTable, clinic.MediaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckupTemplates queries the checkup_templates edge of a Clinic.
func (c *ClinicClient) QueryCheckupTemplates(_m *Clinic) *ClinicCheckupQuery {
	query := (&ClinicCheckupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinic.Table, clinic.FieldID, id),
			sqlgraph.To(cliniccheckup.Table, cliniccheckup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinic.CheckupTemplatesTable, clinic.CheckupTemplatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClinicClient) Hooks() []Hook {
	return c.hooks.Clinic
}

// Interceptors returns the client interceptors.
func (c *ClinicClient) Interceptors() []Interceptor {
	return c.inters.Clinic
}

func (c *ClinicClient) mutate(ctx context.Context, m *ClinicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Clinic mutation op: %q", m.Op())
	}
}

// ClinicCheckupClient is a client for the ClinicCheckup schema.
type ClinicCheckupClient struct {
	config
}

// NewClinicCheckupClient returns a client for the ClinicCheckup from the given config.
func NewClinicCheckupClient(c config) *ClinicCheckupClient {
	return &ClinicCheckupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cliniccheckup.Hooks(f(g(h())))`.
func (c *ClinicCheckupClient) Use(hooks ...Hook) {
	c.hooks.ClinicCheckup = append(c.hooks.ClinicCheckup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cliniccheckup.Intercept(f(g(h())))`.
func (c *ClinicCheckupClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClinicCheckup = append(c.inters.ClinicCheckup, interceptors...)
}

// Create returns a builder for creating a ClinicCheckup entity.
func (c *ClinicCheckupClient) Create() *ClinicCheckupCreate {
	mutation := newClinicCheckupMutation(c.config, OpCreate)
	return &ClinicCheckupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClinicCheckup entities.
func (c *ClinicCheckupClient) CreateBulk(builders ...*ClinicCheckupCreate) *ClinicCheckupCreateBulk {
	return &ClinicCheckupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicCheckupClient) MapCreateBulk(slice any, setFunc func(*ClinicCheckupCreate, int)) *ClinicCheckupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicCheckupCreateBulk{err: fmt.Errorf("calling to ClinicCheckupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicCheckupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicCheckupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClinicCheckup.
func (c *ClinicCheckupClient) Update() *ClinicCheckupUpdate {
	mutation := newClinicCheckupMutation(c.config, OpUpdate)
	return &ClinicCheckupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicCheckupClient) UpdateOne(_m *ClinicCheckup) *ClinicCheckupUpdateOne {
	mutation := newClinicCheckupMutation(c.config, OpUpdateOne, withClinicCheckup(_m))
	return &ClinicCheckupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicCheckupClient) UpdateOneID(id uuid.UUID) *ClinicCheckupUpdateOne {
	mutation := newClinicCheckupMutation(c.config, OpUpdateOne, withClinicCheckupID(id))
	return &ClinicCheckupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClinicCheckup.
func (c *ClinicCheckupClient) Delete() *ClinicCheckupDelete {
	mutation := newClinicCheckupMutation(c.config, OpDelete)
	return &ClinicCheckupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicCheckupClient) DeleteOne(_m *ClinicCheckup) *ClinicCheckupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicCheckupClient) DeleteOneID(id uuid.UUID) *ClinicCheckupDeleteOne {
	builder := c.Delete().Where(cliniccheckup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicCheckupDeleteOne{builder}
}

// Query returns a query builder for ClinicCheckup.
func (c *ClinicCheckupClient) Query() *ClinicCheckupQuery {
	return &ClinicCheckupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinicCheckup},
		inters: c.Interceptors(),
	}
}

// Get returns a ClinicCheckup entity by its id.
func (c *ClinicCheckupClient) Get(ctx context.Context, id uuid.UUID) (*ClinicCheckup, error) {
	return c.Query().Where(cliniccheckup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicCheckupClient) GetX(ctx context.Context, id uuid.UUID) *ClinicCheckup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClinic queries the clinic edge of a ClinicCheckup.
func (c *ClinicCheckupClient) QueryClinic(_m *ClinicCheckup) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cliniccheckup.Table, cliniccheckup.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cliniccheckup.ClinicTable, cliniccheckup.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStartingQuestion queries the starting_question edge of a ClinicCheckup.
func (c *ClinicCheckupClient) QueryStartingQuestion(_m *ClinicCheckup) *QuestionShareQuery {
	query := (&QuestionShareClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cliniccheckup.Table, cliniccheckup.FieldID, id),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, cliniccheckup.StartingQuestionTable, cliniccheckup.StartingQuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalyzes queries the analyzes edge of a ClinicCheckup.
func (c *ClinicCheckupClient) QueryAnalyzes(_m *ClinicCheckup) *CheckupAnalyzeQuery {
	query := (&CheckupAnalyzeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cliniccheckup.Table, cliniccheckup.FieldID, id),
			sqlgraph.To(checkupanalyze.Table, checkupanalyze.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cliniccheckup.AnalyzesTable, cliniccheckup.AnalyzesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a ClinicCheckup.
func (c *ClinicCheckupClient) QuerySessions(_m *ClinicCheckup) *CheckupQuery {
	query := (&CheckupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cliniccheckup.Table, cliniccheckup.FieldID, id),
			sqlgraph.To(checkup.Table, checkup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cliniccheckup.SessionsTable, cliniccheckup.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClinicCheckupClient) Hooks() []Hook {
	return c.hooks.ClinicCheckup
}

// Interceptors returns the client interceptors.
func (c *ClinicCheckupClient) Interceptors() []Interceptor {
	return c.inters.ClinicCheckup
}

func (c *ClinicCheckupClient) mutate(ctx context.Context, m *ClinicCheckupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicCheckupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicCheckupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicCheckupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicCheckupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClinicCheckup mutation op: %q", m.Op())
	}
}

// ClinicGroupClient is a client for the ClinicGroup schema.
type ClinicGroupClient struct {
	config
}

// NewClinicGroupClient returns a client for the ClinicGroup from the given config.
func NewClinicGroupClient(c config) *ClinicGroupClient {
	return &ClinicGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinicgroup.Hooks(f(g(h())))`.
func (c *ClinicGroupClient) Use(hooks ...Hook) {
	c.hooks.ClinicGroup = append(c.hooks.ClinicGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinicgroup.Intercept(f(g(h())))`.
func (c *ClinicGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClinicGroup = append(c.inters.ClinicGroup, interceptors...)
}

// Create returns a builder for creating a ClinicGroup entity.
func (c *ClinicGroupClient) Create() *ClinicGroupCreate {
	mutation := newClinicGroupMutation(c.config, OpCreate)
	return &ClinicGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClinicGroup entities.
func (c *ClinicGroupClient) CreateBulk(builders ...*ClinicGroupCreate) *ClinicGroupCreateBulk {
	return &ClinicGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicGroupClient) MapCreateBulk(slice any, setFunc func(*ClinicGroupCreate, int)) *ClinicGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicGroupCreateBulk{err: fmt.Errorf("calling to ClinicGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClinicGroup.
func (c *ClinicGroupClient) Update() *ClinicGroupUpdate {
	mutation := newClinicGroupMutation(c.config, OpUpdate)
	return &ClinicGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicGroupClient) UpdateOne(_m *ClinicGroup) *ClinicGroupUpdateOne {
	mutation := newClinicGroupMutation(c.config, OpUpdateOne, withClinicGroup(_m))
	return &ClinicGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicGroupClient) UpdateOneID(id uuid.UUID) *ClinicGroupUpdateOne {
	mutation := newClinicGroupMutation(c.config, OpUpdateOne, withClinicGroupID(id))
	return &ClinicGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClinicGroup.
func (c *ClinicGroupClient) Delete() *ClinicGroupDelete {
	mutation := newClinicGroupMutation(c.config, OpDelete)
	return &ClinicGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicGroupClient) DeleteOne(_m *ClinicGroup) *ClinicGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicGroupClient) DeleteOneID(id uuid.UUID) *ClinicGroupDeleteOne {
	builder := c.Delete().Where(clinicgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicGroupDeleteOne{builder}
}

// Query returns a query builder for ClinicGroup.
func (c *ClinicGroupClient) Query() *ClinicGroupQuery {
	return &ClinicGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinicGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a ClinicGroup entity by its id.
func (c *ClinicGroupClient) Get(ctx context.Context, id uuid.UUID) (*ClinicGroup, error) {
	return c.Query().Where(clinicgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicGroupClient) GetX(ctx context.Context, id uuid.UUID) *ClinicGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClinics queries the clinics edge of a ClinicGroup.
func (c *ClinicGroupClient) QueryClinics(_m *ClinicGroup) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicgroup.Table, clinicgroup.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinicgroup.ClinicsTable, clinicgroup.ClinicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClinicGroupClient) Hooks() []Hook {
	return c.hooks.ClinicGroup
}

// Interceptors returns the client interceptors.
func (c *ClinicGroupClient) Interceptors() []Interceptor {
	return c.inters.ClinicGroup
}

func (c *ClinicGroupClient) mutate(ctx context.Context, m *ClinicGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClinicGroup mutation op: %q", m.Op())
	}
}

// ClinicMediaClient is a client for the ClinicMedia schema.
type ClinicMediaClient struct {
	config
}

// NewClinicMediaClient returns a client for the ClinicMedia from the given config.
func NewClinicMediaClient(c config) *ClinicMediaClient {
	return &ClinicMediaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinicmedia.Hooks(f(g(h())))`.
func (c *ClinicMediaClient) Use(hooks ...Hook) {
	c.hooks.ClinicMedia = append(c.hooks.ClinicMedia, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinicmedia.Intercept(f(g(h())))`.
func (c *ClinicMediaClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClinicMedia = append(c.inters.ClinicMedia, interceptors...)
}

// Create returns a builder for creating a ClinicMedia entity.
func (c *ClinicMediaClient) Create() *ClinicMediaCreate {
	mutation := newClinicMediaMutation(c.config, OpCreate)
	return &ClinicMediaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClinicMedia entities.
func (c *ClinicMediaClient) CreateBulk(builders ...*ClinicMediaCreate) *ClinicMediaCreateBulk {
	return &ClinicMediaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicMediaClient) MapCreateBulk(slice any, setFunc func(*ClinicMediaCreate, int)) *ClinicMediaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicMediaCreateBulk{err: fmt.Errorf("calling to ClinicMediaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicMediaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicMediaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClinicMedia.
func (c *ClinicMediaClient) Update() *ClinicMediaUpdate {
	mutation := newClinicMediaMutation(c.config, OpUpdate)
	return &ClinicMediaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicMediaClient) UpdateOne(_m *ClinicMedia) *ClinicMediaUpdateOne {
	mutation := newClinicMediaMutation(c.config, OpUpdateOne, withClinicMedia(_m))
	return &ClinicMediaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicMediaClient) UpdateOneID(id uuid.UUID) *ClinicMediaUpdateOne {
	mutation := newClinicMediaMutation(c.config, OpUpdateOne, withClinicMediaID(id))
	return &ClinicMediaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClinicMedia.
func (c *ClinicMediaClient) Delete() *ClinicMediaDelete {
	mutation := newClinicMediaMutation(c.config, OpDelete)
	return &ClinicMediaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicMediaClient) DeleteOne(_m *ClinicMedia) *ClinicMediaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicMediaClient) DeleteOneID(id uuid.UUID) *ClinicMediaDeleteOne {
	builder := c.Delete().Where(clinicmedia.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicMediaDeleteOne{builder}
}

// Query returns a query builder for ClinicMedia.
func (c *ClinicMediaClient) Query() *ClinicMediaQuery {
	return &ClinicMediaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinicMedia},
		inters: c.Interceptors(),
	}
}

// Get returns a ClinicMedia entity by its id.
func (c *ClinicMediaClient) Get(ctx context.Context, id uuid.UUID) (*ClinicMedia, error) {
	return c.Query().Where(clinicmedia.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicMediaClient) GetX(ctx context.Context, id uuid.UUID) *ClinicMedia {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClinic queries the clinic edge of a ClinicMedia.
func (c *ClinicMediaClient) QueryClinic(_m *ClinicMedia) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicmedia.Table, clinicmedia.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, clinicmedia.ClinicTable, clinicmedia.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMedia queries the media edge of a ClinicMedia.
func (c *ClinicMediaClient) QueryMedia(_m *ClinicMedia) *MediaQuery {
	query := (&MediaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicmedia.Table, clinicmedia.FieldID, id),
			sqlgraph.To(media.Table, media.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, clinicmedia.MediaTable, clinicmedia.MediaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClinicMediaClient) Hooks() []Hook {
	return c.hooks.ClinicMedia
}

// Interceptors returns the client interceptors.
func (c *ClinicMediaClient) Interceptors() []Interceptor {
	return c.inters.ClinicMedia
}

func (c *ClinicMediaClient) mutate(ctx context.Context, m *ClinicMediaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicMediaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicMediaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicMediaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicMediaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ClinicMedia mutation op: %q", m.Op())
	}
}

// DoctorClient is a client for the Doctor schema.
type DoctorClient struct {
	config
}

// NewDoctorClient returns a client for the Doctor from the given config.
func NewDoctorClient(c config) *DoctorClient {
	return &DoctorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctor.Hooks(f(g(h())))`.
func (c *DoctorClient) Use(hooks ...Hook) {
	c.hooks.Doctor = append(c.hooks.Doctor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctor.Intercept(f(g(h())))`.
func (c *DoctorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Doctor = append(c.inters.Doctor, interceptors...)
}

// Create returns a builder for creating a Doctor entity.
func (c *DoctorClient) Create() *DoctorCreate {
	mutation := newDoctorMutation(c.config, OpCreate)
	return &DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Doctor entities.
func (c *DoctorClient) CreateBulk(builders ...*DoctorCreate) *DoctorCreateBulk {
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorClient) MapCreateBulk(slice any, setFunc func(*DoctorCreate, int)) *DoctorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorCreateBulk{err: fmt.Errorf("calling to DoctorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Doctor.
func (c *DoctorClient) Update() *DoctorUpdate {
	mutation := newDoctorMutation(c.config, OpUpdate)
	return &DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorClient) UpdateOne(_m *Doctor) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctor(_m))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorClient) UpdateOneID(id uuid.UUID) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctorID(id))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Doctor.
func (c *DoctorClient) Delete() *DoctorDelete {
	mutation := newDoctorMutation(c.config, OpDelete)
	return &DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorClient) DeleteOne(_m *Doctor) *DoctorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorClient) DeleteOneID(id uuid.UUID) *DoctorDeleteOne {
	builder := c.Delete().Where(doctor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorDeleteOne{builder}
}

// Query returns a query builder for Doctor.
func (c *DoctorClient) Query() *DoctorQuery {
	return &DoctorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctor},
		inters: c.Interceptors(),
	}
}

// Get returns a Doctor entity by its id.
func (c *DoctorClient) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return c.Query().Where(doctor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorClient) GetX(ctx context.Context, id uuid.UUID) *Doctor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Doctor.
func (c *DoctorClient) QueryUser(_m *Doctor) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, doctor.UserTable, doctor.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClinic queries the clinic edge of a Doctor.
func (c *DoctorClient) QueryClinic(_m *Doctor) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, doctor.ClinicTable, doctor.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a Doctor.
func (c *DoctorClient) QueryQuestions(_m *Doctor) *QuestionShareQuery {
	query := (&QuestionShareClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, doctor.QuestionsTable, doctor.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DoctorClient) Hooks() []Hook {
	return c.hooks.Doctor
}

// Interceptors returns the client interceptors.
func (c *DoctorClient) Interceptors() []Interceptor {
	return c.inters.Doctor
}

func (c *DoctorClient) mutate(ctx context.Context, m *DoctorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Doctor mutation op: %q", m.Op())
	}
}

// InterpretationClient is a client for the Interpretation schema.
type InterpretationClient struct {
	config
}

// NewInterpretationClient returns a client for the Interpretation from the given config.
func NewInterpretationClient(c config) *InterpretationClient {
	return &InterpretationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interpretation.Hooks(f(g(h())))`.
func (c *InterpretationClient) Use(hooks ...Hook) {
	c.hooks.Interpretation = append(c.hooks.Interpretation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interpretation.Intercept(f(g(h())))`.
func (c *InterpretationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Interpretation = append(c.inters.Interpretation, interceptors...)
}

// Create returns a builder for creating a Interpretation entity.
func (c *InterpretationClient) Create() *InterpretationCreate {
	mutation := newInterpretationMutation(c.config, OpCreate)
	return &InterpretationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Interpretation entities.
func (c *InterpretationClient) CreateBulk(builders ...*InterpretationCreate) *InterpretationCreateBulk {
	return &InterpretationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterpretationClient) MapCreateBulk(slice any, setFunc func(*InterpretationCreate, int)) *InterpretationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterpretationCreateBulk{err: fmt.Errorf("calling to InterpretationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterpretationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterpretationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Interpretation.
func (c *InterpretationClient) Update() *InterpretationUpdate {
	mutation := newInterpretationMutation(c.config, OpUpdate)
	return &InterpretationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterpretationClient) UpdateOne(_m *Interpretation) *InterpretationUpdateOne {
	mutation := newInterpretationMutation(c.config, OpUpdateOne, withInterpretation(_m))
	return &InterpretationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterpretationClient) UpdateOneID(id uuid.UUID) *InterpretationUpdateOne {
	mutation := newInterpretationMutation(c.config, OpUpdateOne, withInterpretationID(id))
	return &InterpretationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Interpretation.
func (c *InterpretationClient) Delete() *InterpretationDelete {
	mutation := newInterpretationMutation(c.config, OpDelete)
	return &InterpretationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterpretationClient) DeleteOne(_m *Interpretation) *InterpretationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterpretationClient) DeleteOneID(id uuid.UUID) *InterpretationDeleteOne {
	builder := c.Delete().Where(interpretation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterpretationDeleteOne{builder}
}

// Query returns a query builder for Interpretation.
func (c *InterpretationClient) Query() *InterpretationQuery {
	return &InterpretationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterpretation},
		inters: c.Interceptors(),
	}
}

// Get returns a Interpretation entity by its id.
func (c *InterpretationClient) Get(ctx context.Context, id uuid.UUID) (*Interpretation, error) {
	return c.Query().Where(interpretation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterpretationClient) GetX(ctx context.Context, id uuid.UUID) *Interpretation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalyze queries the analyze edge of a Interpretation.
func (c *InterpretationClient) QueryAnalyze(_m *Interpretation) *CheckupAnalyzeQuery {
	query := (&CheckupAnalyzeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interpretation.Table, interpretation.FieldID, id),
			sqlgraph.To(checkupanalyze.Table, checkupanalyze.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interpretation.AnalyzeTable, interpretation.AnalyzeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuggestions queries the suggestions edge of a Interpretation.
func (c *InterpretationClient) QuerySuggestions(_m *Interpretation) *SuggestionQuery {
	query := (&SuggestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interpretation.Table, interpretation.FieldID, id),
			sqlgraph.To(suggestion.Table, suggestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interpretation.SuggestionsTable, interpretation.SuggestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InterpretationClient) Hooks() []Hook {
	return c.hooks.Interpretation
}

// Interceptors returns the client interceptors.
func (c *InterpretationClient) Interceptors() []Interceptor {
	return c.inters.Interpretation
}

func (c *InterpretationClient) mutate(ctx context.Context, m *InterpretationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterpretationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterpretationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterpretationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterpretationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Interpretation mutation op: %q", m.Op())
	}
}

// MediaClient is a client for the Media schema.
type MediaClient struct {
	config
}

// NewMediaClient returns a client for the Media from the given config.
func NewMediaClient(c config) *MediaClient {
	return &MediaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `media.Hooks(f(g(h())))`.
func (c *MediaClient) Use(hooks ...Hook) {
	c.hooks.Media = append(c.hooks.Media, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `media.Intercept(f(g(h())))`.
func (c *MediaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Media = append(c.inters.Media, interceptors...)
}

// Create returns a builder for creating a Media entity.
func (c *MediaClient) Create() *MediaCreate {
	mutation := newMediaMutation(c.config, OpCreate)
	return &MediaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Media entities.
func (c *MediaClient) CreateBulk(builders ...*MediaCreate) *MediaCreateBulk {
	return &MediaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MediaClient) MapCreateBulk(slice any, setFunc func(*MediaCreate, int)) *MediaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MediaCreateBulk{err: fmt.Errorf("calling to MediaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MediaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MediaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Media.
func (c *MediaClient) Update() *MediaUpdate {
	mutation := newMediaMutation(c.config, OpUpdate)
	return &MediaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MediaClient) UpdateOne(_m *Media) *MediaUpdateOne {
	mutation := newMediaMutation(c.config, OpUpdateOne, withMedia(_m))
	return &MediaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MediaClient) UpdateOneID(id uuid.UUID) *MediaUpdateOne {
	mutation := newMediaMutation(c.config, OpUpdateOne, withMediaID(id))
	return &MediaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Media.
func (c *MediaClient) Delete() *MediaDelete {
	mutation := newMediaMutation(c.config, OpDelete)
	return &MediaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MediaClient) DeleteOne(_m *Media) *MediaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MediaClient) DeleteOneID(id uuid.UUID) *MediaDeleteOne {
	builder := c.Delete().Where(media.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MediaDeleteOne{builder}
}

// Query returns a query builder for Media.
func (c *MediaClient) Query() *MediaQuery {
	return &MediaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedia},
		inters: c.Interceptors(),
	}
}

// Get returns a Media entity by its id.
func (c *MediaClient) Get(ctx context.Context, id uuid.UUID) (*Media, error) {
	return c.Query().Where(media.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MediaClient) GetX(ctx context.Context, id uuid.UUID) *Media {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClinic queries the clinic edge of a Media.
func (c *MediaClient) QueryClinic(_m *Media) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(media.Table, media.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, media.ClinicTable, media.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MediaClient) Hooks() []Hook {
	return c.hooks.Media
}

// Interceptors returns the client interceptors.
func (c *MediaClient) Interceptors() []Interceptor {
	return c.inters.Media
}

func (c *MediaClient) mutate(ctx context.Context, m *MediaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MediaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MediaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MediaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MediaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Media mutation op: %q", m.Op())
	}
}

// OrganClient is a client for the Organ schema.
type OrganClient struct {
	config
}

// NewOrganClient returns a client for the Organ from the given config.
func NewOrganClient(c config) *OrganClient {
	return &OrganClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `organ.Hooks(f(g(h())))`.
func (c *OrganClient) Use(hooks ...Hook) {
	c.hooks.Organ = append(c.hooks.Organ, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `organ.Intercept(f(g(h())))`.
func (c *OrganClient) Intercept(interceptors ...Interceptor) {
	c.inters.Organ = append(c.inters.Organ, interceptors...)
}

// Create returns a builder for creating a Organ entity.
func (c *OrganClient) Create() *OrganCreate {
	mutation := newOrganMutation(c.config, OpCreate)
	return &OrganCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Organ entities.
func (c *OrganClient) CreateBulk(builders ...*OrganCreate) *OrganCreateBulk {
	return &OrganCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrganClient) MapCreateBulk(slice any, setFunc func(*OrganCreate, int)) *OrganCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrganCreateBulk{err: fmt.Errorf("calling to OrganClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrganCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrganCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Organ.
func (c *OrganClient) Update() *OrganUpdate {
	mutation := newOrganMutation(c.config, OpUpdate)
	return &OrganUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrganClient) UpdateOne(_m *Organ) *OrganUpdateOne {
	mutation := newOrganMutation(c.config, OpUpdateOne, withOrgan(_m))
	return &OrganUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrganClient) UpdateOneID(id uuid.UUID) *OrganUpdateOne {
	mutation := newOrganMutation(c.config, OpUpdateOne, withOrganID(id))
	return &OrganUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Organ.
func (c *OrganClient) Delete() *OrganDelete {
	mutation := newOrganMutation(c.config, OpDelete)
	return &OrganDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrganClient) DeleteOne(_m *Organ) *OrganDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrganClient) DeleteOneID(id uuid.UUID) *OrganDeleteOne {
	builder := c.Delete().Where(organ.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrganDeleteOne{builder}
}

// Query returns a query builder for Organ.
func (c *OrganClient) Query() *OrganQuery {
	return &OrganQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrgan},
		inters: c.Interceptors(),
	}
}

// Get returns a Organ entity by its id.
func (c *OrganClient) Get(ctx context.Context, id uuid.UUID) (*Organ, error) {
	return c.Query().Where(organ.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrganClient) GetX(ctx context.Context, id uuid.UUID) *Organ {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a Organ.
func (c *OrganClient) QueryParent(_m *Organ) *OrganQuery {
	query := (&OrganClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(organ.Table, organ.FieldID, id),
			sqlgraph.To(organ.Table, organ.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, organ.ParentTable, organ.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a Organ.
func (c *OrganClient) QueryChildren(_m *Organ) *OrganQuery {
	query := (&OrganClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(organ.Table, organ.FieldID, id),
			sqlgraph.To(organ.Table, organ.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, organ.ChildrenTable, organ.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a Organ.
func (c *OrganClient) QueryQuestions(_m *Organ) *QuestionShareQuery {
	query := (&QuestionShareClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(organ.Table, organ.FieldID, id),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, organ.QuestionsTable, organ.QuestionsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrganClient) Hooks() []Hook {
	return c.hooks.Organ
}

// Interceptors returns the client interceptors.
func (c *OrganClient) Interceptors() []Interceptor {
	return c.inters.Organ
}

func (c *OrganClient) mutate(ctx context.Context, m *OrganMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrganCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrganUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrganUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrganDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Organ mutation op: %q", m.Op())
	}
}

// PatientProfileClient is a client for the PatientProfile schema.
type PatientProfileClient struct {
	config
}

// NewPatientProfileClient returns a client for the PatientProfile from the given config.
func NewPatientProfileClient(c config) *PatientProfileClient {
	return &PatientProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientprofile.Hooks(f(g(h())))`.
func (c *PatientProfileClient) Use(hooks ...Hook) {
	c.hooks.PatientProfile = append(c.hooks.PatientProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientprofile.Intercept(f(g(h())))`.
func (c *PatientProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientProfile = append(c.inters.PatientProfile, interceptors...)
}

// Create returns a builder for creating a PatientProfile entity.
func (c *PatientProfileClient) Create() *PatientProfileCreate {
	mutation := newPatientProfileMutation(c.config, OpCreate)
	return &PatientProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientProfile entities.
func (c *PatientProfileClient) CreateBulk(builders ...*PatientProfileCreate) *PatientProfileCreateBulk {
	return &PatientProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientProfileClient) MapCreateBulk(slice any, setFunc func(*PatientProfileCreate, int)) *PatientProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientProfileCreateBulk{err: fmt.Errorf("calling to PatientProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientProfile.
func (c *PatientProfileClient) Update() *PatientProfileUpdate {
	mutation := newPatientProfileMutation(c.config, OpUpdate)
	return &PatientProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientProfileClient) UpdateOne(_m *PatientProfile) *PatientProfileUpdateOne {
	mutation := newPatientProfileMutation(c.config, OpUpdateOne, withPatientProfile(_m))
	return &PatientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientProfileClient) UpdateOneID(id uuid.UUID) *PatientProfileUpdateOne {
	mutation := newPatientProfileMutation(c.config, OpUpdateOne, withPatientProfileID(id))
	return &PatientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientProfile.
func (c *PatientProfileClient) Delete() *PatientProfileDelete {
	mutation := newPatientProfileMutation(c.config, OpDelete)
	return &PatientProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientProfileClient) DeleteOne(_m *PatientProfile) *PatientProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientProfileClient) DeleteOneID(id uuid.UUID) *PatientProfileDeleteOne {
	builder := c.Delete().Where(patientprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientProfileDeleteOne{builder}
}

// Query returns a query builder for PatientProfile.
func (c *PatientProfileClient) Query() *PatientProfileQuery {
	return &PatientProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientProfile entity by its id.
func (c *PatientProfileClient) Get(ctx context.Context, id uuid.UUID) (*PatientProfile, error) {
	return c.Query().Where(patientprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientProfileClient) GetX(ctx context.Context, id uuid.UUID) *PatientProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a PatientProfile.
func (c *PatientProfileClient) QueryUser(_m *PatientProfile) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientprofile.Table, patientprofile.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, patientprofile.UserTable, patientprofile.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySupervisors queries the supervisors edge of a PatientProfile.
func (c *PatientProfileClient) QuerySupervisors(_m *PatientProfile) *SupervisorQuery {
	query := (&SupervisorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientprofile.Table, patientprofile.FieldID, id),
			sqlgraph.To(supervisor.Table, supervisor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patientprofile.SupervisorsTable, patientprofile.SupervisorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckups queries the checkups edge of a PatientProfile.
func (c *PatientProfileClient) QueryCheckups(_m *PatientProfile) *CheckupQuery {
	query := (&CheckupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientprofile.Table, patientprofile.FieldID, id),
			sqlgraph.To(checkup.Table, checkup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patientprofile.CheckupsTable, patientprofile.CheckupsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientProfileClient) Hooks() []Hook {
	return c.hooks.PatientProfile
}

// Interceptors returns the client interceptors.
func (c *PatientProfileClient) Interceptors() []Interceptor {
	return c.inters.PatientProfile
}

func (c *PatientProfileClient) mutate(ctx context.Context, m *PatientProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PatientProfile mutation op: %q", m.Op())
	}
}

// QuestionAnswerClient is a client for the QuestionAnswer schema.
type QuestionAnswerClient struct {
	config
}

// NewQuestionAnswerClient returns a client for the QuestionAnswer from the given config.
func NewQuestionAnswerClient(c config) *QuestionAnswerClient {
	return &QuestionAnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionanswer.Hooks(f(g(h())))`.
func (c *QuestionAnswerClient) Use(hooks ...Hook) {
	c.hooks.QuestionAnswer = append(c.hooks.QuestionAnswer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionanswer.Intercept(f(g(h())))`.
func (c *QuestionAnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionAnswer = append(c.inters.QuestionAnswer, interceptors...)
}

// Create returns a builder for creating a QuestionAnswer entity.
func (c *QuestionAnswerClient) Create() *QuestionAnswerCreate {
	mutation := newQuestionAnswerMutation(c.config, OpCreate)
	return &QuestionAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionAnswer entities.
func (c *QuestionAnswerClient) CreateBulk(builders ...*QuestionAnswerCreate) *QuestionAnswerCreateBulk {
	return &QuestionAnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionAnswerClient) MapCreateBulk(slice any, setFunc func(*QuestionAnswerCreate, int)) *QuestionAnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionAnswerCreateBulk{err: fmt.Errorf("calling to QuestionAnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionAnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionAnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionAnswer.
func (c *QuestionAnswerClient) Update() *QuestionAnswerUpdate {
	mutation := newQuestionAnswerMutation(c.config, OpUpdate)
	return &QuestionAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionAnswerClient) UpdateOne(_m *QuestionAnswer) *QuestionAnswerUpdateOne {
	mutation := newQuestionAnswerMutation(c.config, OpUpdateOne, withQuestionAnswer(_m))
	return &QuestionAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionAnswerClient) UpdateOneID(id uuid.UUID) *QuestionAnswerUpdateOne {
	mutation := newQuestionAnswerMutation(c.config, OpUpdateOne, withQuestionAnswerID(id))
	return &QuestionAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionAnswer.
func (c *QuestionAnswerClient) Delete() *QuestionAnswerDelete {
	mutation := newQuestionAnswerMutation(c.config, OpDelete)
	return &QuestionAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionAnswerClient) DeleteOne(_m *QuestionAnswer) *QuestionAnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionAnswerClient) DeleteOneID(id uuid.UUID) *QuestionAnswerDeleteOne {
	builder := c.Delete().Where(questionanswer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionAnswerDeleteOne{builder}
}

// Query returns a query builder for QuestionAnswer.
func (c *QuestionAnswerClient) Query() *QuestionAnswerQuery {
	return &QuestionAnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionAnswer entity by its id.
func (c *QuestionAnswerClient) Get(ctx context.Context, id uuid.UUID) (*QuestionAnswer, error) {
	return c.Query().Where(questionanswer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionAnswerClient) GetX(ctx context.Context, id uuid.UUID) *QuestionAnswer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCheckup queries the checkup edge of a QuestionAnswer.
func (c *QuestionAnswerClient) QueryCheckup(_m *QuestionAnswer) *CheckupQuery {
	query := (&CheckupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionanswer.Table, questionanswer.FieldID, id),
			sqlgraph.To(checkup.Table, checkup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionanswer.CheckupTable, questionanswer.CheckupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestion queries the question edge of a QuestionAnswer.
func (c *QuestionAnswerClient) QueryQuestion(_m *QuestionAnswer) *QuestionShareQuery {
	query := (&QuestionShareClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionanswer.Table, questionanswer.FieldID, id),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionanswer.QuestionTable, questionanswer.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOption queries the option edge of a QuestionAnswer.
func (c *QuestionAnswerClient) QueryOption(_m *QuestionAnswer) *QuestionOptionQuery {
	query := (&QuestionOptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionanswer.Table, questionanswer.FieldID, id),
			sqlgraph.To(questionoption.Table, questionoption.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionanswer.OptionTable, questionanswer.OptionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionAnswerClient) Hooks() []Hook {
	return c.hooks.QuestionAnswer
}

// Interceptors returns the client interceptors.
func (c *QuestionAnswerClient) Interceptors() []Interceptor {
	return c.inters.QuestionAnswer
}

func (c *QuestionAnswerClient) mutate(ctx context.Context, m *QuestionAnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown QuestionAnswer mutation op: %q", m.Op())
	}
}

// QuestionOptionClient is a client for the QuestionOption schema.
type QuestionOptionClient struct {
	config
}

// NewQuestionOptionClient returns a client for the QuestionOption from the given config.
func NewQuestionOptionClient(c config) *QuestionOptionClient {
	return &QuestionOptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionoption.Hooks(f(g(h())))`.
func (c *QuestionOptionClient) Use(hooks ...Hook) {
	c.hooks.QuestionOption = append(c.hooks.QuestionOption, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionoption.Intercept(f(g(h())))`.
func (c *QuestionOptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionOption = append(c.inters.QuestionOption, interceptors...)
}

// Create returns a builder for creating a QuestionOption entity.
func (c *QuestionOptionClient) Create() *QuestionOptionCreate {
	mutation := newQuestionOptionMutation(c.config, OpCreate)
	return &QuestionOptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionOption entities.
func (c *QuestionOptionClient) CreateBulk(builders ...*QuestionOptionCreate) *QuestionOptionCreateBulk {
	return &QuestionOptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionOptionClient) MapCreateBulk(slice any, setFunc func(*QuestionOptionCreate, int)) *QuestionOptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionOptionCreateBulk{err: fmt.Errorf("calling to QuestionOptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionOptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionOptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionOption.
func (c *QuestionOptionClient) Update() *QuestionOptionUpdate {
	mutation := newQuestionOptionMutation(c.config, OpUpdate)
	return &QuestionOptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionOptionClient) UpdateOne(_m *QuestionOption) *QuestionOptionUpdateOne {
	mutation := newQuestionOptionMutation(c.config, OpUpdateOne, withQuestionOption(_m))
	return &QuestionOptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionOptionClient) UpdateOneID(id uuid.UUID) *QuestionOptionUpdateOne {
	mutation := newQuestionOptionMutation(c.config, OpUpdateOne, withQuestionOptionID(id))
	return &QuestionOptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionOption.
func (c *QuestionOptionClient) Delete() *QuestionOptionDelete {
	mutation := newQuestionOptionMutation(c.config, OpDelete)
	return &QuestionOptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionOptionClient) DeleteOne(_m *QuestionOption) *QuestionOptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionOptionClient) DeleteOneID(id uuid.UUID) *QuestionOptionDeleteOne {
	builder := c.Delete().Where(questionoption.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionOptionDeleteOne{builder}
}

// Query returns a query builder for QuestionOption.
func (c *QuestionOptionClient) Query() *QuestionOptionQuery {
	return &QuestionOptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionOption},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionOption entity by its id.
func (c *QuestionOptionClient) Get(ctx context.Context, id uuid.UUID) (*QuestionOption, error) {
	return c.Query().Where(questionoption.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionOptionClient) GetX(ctx context.Context, id uuid.UUID) *QuestionOption {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestion queries the question edge of a QuestionOption.
func (c *QuestionOptionClient) QueryQuestion(_m *QuestionOption) *QuestionShareQuery {
	query := (&QuestionShareClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, id),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionoption.QuestionTable, questionoption.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlert queries the alert edge of a QuestionOption.
func (c *QuestionOptionClient) QueryAlert(_m *QuestionOption) *AlertQuery {
	query := (&AlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, id),
			sqlgraph.To(alert.Table, alert.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionoption.AlertTable, questionoption.AlertColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuggestedDoctor queries the suggested_doctor edge of a QuestionOption.
func (c *QuestionOptionClient) QuerySuggestedDoctor(_m *QuestionOption) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionoption.SuggestedDoctorTable, questionoption.SuggestedDoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuggestedClinic queries the suggested_clinic edge of a QuestionOption.
func (c *QuestionOptionClient) QuerySuggestedClinic(_m *QuestionOption) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionoption.SuggestedClinicTable, questionoption.SuggestedClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChartConnect queries the chart_connect edge of a QuestionOption.
func (c *QuestionOptionClient) QueryChartConnect(_m *QuestionOption) *QuestionShareQuery {
	query := (&QuestionShareClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, id),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionoption.ChartConnectTable, questionoption.ChartConnectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNumberRanges queries the number_ranges edge of a QuestionOption.
func (c *QuestionOptionClient) QueryNumberRanges(_m *QuestionOption) *QuestionOptionNumberQuery {
	query := (&QuestionOptionNumberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, id),
			sqlgraph.To(questionoptionnumber.Table, questionoptionnumber.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionoption.NumberRangesTable, questionoption.NumberRangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDateRanges queries the date_ranges edge of a QuestionOption.
func (c *QuestionOptionClient) QueryDateRanges(_m *QuestionOption) *QuestionOptionDateQuery {
	query := (&QuestionOptionDateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, id),
			sqlgraph.To(questionoptiondate.Table, questionoptiondate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionoption.DateRangesTable, questionoption.DateRangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEquationRanges queries the equation_ranges edge of a QuestionOption.
func (c *QuestionOptionClient) QueryEquationRanges(_m *QuestionOption) *QuestionOptionEquationQuery {
	query := (&QuestionOptionEquationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoption.Table, questionoption.FieldID, id),
			sqlgraph.To(questionoptionequation.Table, questionoptionequation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionoption.EquationRangesTable, questionoption.EquationRangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionOptionClient) Hooks() []Hook {
	return c.hooks.QuestionOption
}

// Interceptors returns the client interceptors.
func (c *QuestionOptionClient) Interceptors() []Interceptor {
	return c.inters.QuestionOption
}

func (c *QuestionOptionClient) mutate(ctx context.Context, m *QuestionOptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionOptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionOptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionOptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionOptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown QuestionOption mutation op: %q", m.Op())
	}
}

// QuestionOptionDateClient is a client for the QuestionOptionDate schema.
type QuestionOptionDateClient struct {
	config
}

// NewQuestionOptionDateClient returns a client for the QuestionOptionDate from the given config.
func NewQuestionOptionDateClient(c config) *QuestionOptionDateClient {
	return &QuestionOptionDateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionoptiondate.Hooks(f(g(h())))`.
func (c *QuestionOptionDateClient) Use(hooks ...Hook) {
	c.hooks.QuestionOptionDate = append(c.hooks.QuestionOptionDate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionoptiondate.Intercept(f(g(h())))`.
func (c *QuestionOptionDateClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionOptionDate = append(c.inters.QuestionOptionDate, interceptors...)
}

// Create returns a builder for creating a QuestionOptionDate entity.
func (c *QuestionOptionDateClient) Create() *QuestionOptionDateCreate {
	mutation := newQuestionOptionDateMutation(c.config, OpCreate)
	return &QuestionOptionDateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionOptionDate entities.
func (c *QuestionOptionDateClient) CreateBulk(builders ...*QuestionOptionDateCreate) *QuestionOptionDateCreateBulk {
	return &QuestionOptionDateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionOptionDateClient) MapCreateBulk(slice any, setFunc func(*QuestionOptionDateCreate, int)) *QuestionOptionDateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionOptionDateCreateBulk{err: fmt.Errorf("calling to QuestionOptionDateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionOptionDateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionOptionDateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionOptionDate.
func (c *QuestionOptionDateClient) Update() *QuestionOptionDateUpdate {
	mutation := newQuestionOptionDateMutation(c.config, OpUpdate)
	return &QuestionOptionDateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionOptionDateClient) UpdateOne(_m *QuestionOptionDate) *QuestionOptionDateUpdateOne {
	mutation := newQuestionOptionDateMutation(c.config, OpUpdateOne, withQuestionOptionDate(_m))
	return &QuestionOptionDateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionOptionDateClient) UpdateOneID(id uuid.UUID) *QuestionOptionDateUpdateOne {
	mutation := newQuestionOptionDateMutation(c.config, OpUpdateOne, withQuestionOptionDateID(id))
	return &QuestionOptionDateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionOptionDate.
func (c *QuestionOptionDateClient) Delete() *QuestionOptionDateDelete {
	mutation := newQuestionOptionDateMutation(c.config, OpDelete)
	return &QuestionOptionDateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionOptionDateClient) DeleteOne(_m *QuestionOptionDate) *QuestionOptionDateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionOptionDateClient) DeleteOneID(id uuid.UUID) *QuestionOptionDateDeleteOne {
	builder := c.Delete().Where(questionoptiondate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionOptionDateDeleteOne{builder}
}

// Query returns a query builder for QuestionOptionDate.
func (c *QuestionOptionDateClient) Query() *QuestionOptionDateQuery {
	return &QuestionOptionDateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionOptionDate},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionOptionDate entity by its id.
func (c *QuestionOptionDateClient) Get(ctx context.Context, id uuid.UUID) (*QuestionOptionDate, error) {
	return c.Query().Where(questionoptiondate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionOptionDateClient) GetX(ctx context.Context, id uuid.UUID) *QuestionOptionDate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOption queries the option edge of a QuestionOptionDate.
func (c *QuestionOptionDateClient) QueryOption(_m *QuestionOptionDate) *QuestionOptionQuery {
	query := (&QuestionOptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoptiondate.Table, questionoptiondate.FieldID, id),
			sqlgraph.To(questionoption.Table, questionoption.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionoptiondate.OptionTable, questionoptiondate.OptionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionOptionDateClient) Hooks() []Hook {
	return c.hooks.QuestionOptionDate
}

// Interceptors returns the client interceptors.
func (c *QuestionOptionDateClient) Interceptors() []Interceptor {
	return c.inters.QuestionOptionDate
}

func (c *QuestionOptionDateClient) mutate(ctx context.Context, m *QuestionOptionDateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionOptionDateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionOptionDateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionOptionDateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionOptionDateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown QuestionOptionDate mutation op: %q", m.Op())
	}
}

// QuestionOptionEquationClient is a client for the QuestionOptionEquation schema.
type QuestionOptionEquationClient struct {
	config
}

// NewQuestionOptionEquationClient returns a client for the QuestionOptionEquation from the given config.
func NewQuestionOptionEquationClient(c config) *QuestionOptionEquationClient {
	return &QuestionOptionEquationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionoptionequation.Hooks(f(g(h())))`.
func (c *QuestionOptionEquationClient) Use(hooks ...Hook) {
	c.hooks.QuestionOptionEquation = append(c.hooks.QuestionOptionEquation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionoptionequation.Intercept(f(g(h())))`.
func (c *QuestionOptionEquationClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionOptionEquation = append(c.inters.QuestionOptionEquation, interceptors...)
}

// Create returns a builder for creating a QuestionOptionEquation entity.
func (c *QuestionOptionEquationClient) Create() *QuestionOptionEquationCreate {
	mutation := newQuestionOptionEquationMutation(c.config, OpCreate)
	return &QuestionOptionEquationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionOptionEquation entities.
func (c *QuestionOptionEquationClient) CreateBulk(builders ...*QuestionOptionEquationCreate) *QuestionOptionEquationCreateBulk {
	return &QuestionOptionEquationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionOptionEquationClient) MapCreateBulk(slice any, setFunc func(*QuestionOptionEquationCreate, int)) *QuestionOptionEquationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionOptionEquationCreateBulk{err: fmt.Errorf("calling to QuestionOptionEquationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionOptionEquationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionOptionEquationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionOptionEquation.
func (c *QuestionOptionEquationClient) Update() *QuestionOptionEquationUpdate {
	mutation := newQuestionOptionEquationMutation(c.config, OpUpdate)
	return &QuestionOptionEquationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionOptionEquationClient) UpdateOne(_m *QuestionOptionEquation) *QuestionOptionEquationUpdateOne {
	mutation := newQuestionOptionEquationMutation(c.config, OpUpdateOne, withQuestionOptionEquation(_m))
	return &QuestionOptionEquationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionOptionEquationClient) UpdateOneID(id uuid.UUID) *QuestionOptionEquationUpdateOne {
	mutation := newQuestionOptionEquationMutation(c.config, OpUpdateOne, withQuestionOptionEquationID(id))
	return &QuestionOptionEquationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionOptionEquation.
func (c *QuestionOptionEquationClient) Delete() *QuestionOptionEquationDelete {
	mutation := newQuestionOptionEquationMutation(c.config, OpDelete)
	return &QuestionOptionEquationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionOptionEquationClient) DeleteOne(_m *QuestionOptionEquation) *QuestionOptionEquationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionOptionEquationClient) DeleteOneID(id uuid.UUID) *QuestionOptionEquationDeleteOne {
	builder := c.Delete().Where(questionoptionequation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionOptionEquationDeleteOne{builder}
}

// Query returns a query builder for QuestionOptionEquation.
func (c *QuestionOptionEquationClient) Query() *QuestionOptionEquationQuery {
	return &QuestionOptionEquationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionOptionEquation},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionOptionEquation entity by its id.
func (c *QuestionOptionEquationClient) Get(ctx context.Context, id uuid.UUID) (*QuestionOptionEquation, error) {
	return c.Query().Where(questionoptionequation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionOptionEquationClient) GetX(ctx context.Context, id uuid.UUID) *QuestionOptionEquation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOption queries the option edge of a QuestionOptionEquation.
func (c *QuestionOptionEquationClient) QueryOption(_m *QuestionOptionEquation) *QuestionOptionQuery {
	query := (&QuestionOptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoptionequation.Table, questionoptionequation.FieldID, id),
			sqlgraph.To(questionoption.Table, questionoption.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionoptionequation.OptionTable, questionoptionequation.OptionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionOptionEquationClient) Hooks() []Hook {
	return c.hooks.QuestionOptionEquation
}

// Interceptors returns the client interceptors.
func (c *QuestionOptionEquationClient) Interceptors() []Interceptor {
	return c.inters.QuestionOptionEquation
}

func (c *QuestionOptionEquationClient) mutate(ctx context.Context, m *QuestionOptionEquationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionOptionEquationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionOptionEquationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionOptionEquationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionOptionEquationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown QuestionOptionEquation mutation op: %q", m.Op())
	}
}

// QuestionOptionNumberClient is a client for the QuestionOptionNumber schema.
type QuestionOptionNumberClient struct {
	config
}

// NewQuestionOptionNumberClient returns a client for the QuestionOptionNumber from the given config.
func NewQuestionOptionNumberClient(c config) *QuestionOptionNumberClient {
	return &QuestionOptionNumberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionoptionnumber.Hooks(f(g(h())))`.
func (c *QuestionOptionNumberClient) Use(hooks ...Hook) {
	c.hooks.QuestionOptionNumber = append(c.hooks.QuestionOptionNumber, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionoptionnumber.Intercept(f(g(h())))`.
func (c *QuestionOptionNumberClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionOptionNumber = append(c.inters.QuestionOptionNumber, interceptors...)
}

// Create returns a builder for creating a QuestionOptionNumber entity.
func (c *QuestionOptionNumberClient) Create() *QuestionOptionNumberCreate {
	mutation := newQuestionOptionNumberMutation(c.config, OpCreate)
	return &QuestionOptionNumberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionOptionNumber entities.
func (c *QuestionOptionNumberClient) CreateBulk(builders ...*QuestionOptionNumberCreate) *QuestionOptionNumberCreateBulk {
	return &QuestionOptionNumberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionOptionNumberClient) MapCreateBulk(slice any, setFunc func(*QuestionOptionNumberCreate, int)) *QuestionOptionNumberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionOptionNumberCreateBulk{err: fmt.Errorf("calling to QuestionOptionNumberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionOptionNumberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionOptionNumberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionOptionNumber.
func (c *QuestionOptionNumberClient) Update() *QuestionOptionNumberUpdate {
	mutation := newQuestionOptionNumberMutation(c.config, OpUpdate)
	return &QuestionOptionNumberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionOptionNumberClient) UpdateOne(_m *QuestionOptionNumber) *QuestionOptionNumberUpdateOne {
	mutation := newQuestionOptionNumberMutation(c.config, OpUpdateOne, withQuestionOptionNumber(_m))
	return &QuestionOptionNumberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionOptionNumberClient) UpdateOneID(id uuid.UUID) *QuestionOptionNumberUpdateOne {
	mutation := newQuestionOptionNumberMutation(c.config, OpUpdateOne, withQuestionOptionNumberID(id))
	return &QuestionOptionNumberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionOptionNumber.
func (c *QuestionOptionNumberClient) Delete() *QuestionOptionNumberDelete {
	mutation := newQuestionOptionNumberMutation(c.config, OpDelete)
	return &QuestionOptionNumberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionOptionNumberClient) DeleteOne(_m *QuestionOptionNumber) *QuestionOptionNumberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionOptionNumberClient) DeleteOneID(id uuid.UUID) *QuestionOptionNumberDeleteOne {
	builder := c.Delete().Where(questionoptionnumber.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionOptionNumberDeleteOne{builder}
}

// Query returns a query builder for QuestionOptionNumber.
func (c *QuestionOptionNumberClient) Query() *QuestionOptionNumberQuery {
	return &QuestionOptionNumberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionOptionNumber},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionOptionNumber entity by its id.
func (c *QuestionOptionNumberClient) Get(ctx context.Context, id uuid.UUID) (*QuestionOptionNumber, error) {
	return c.Query().Where(questionoptionnumber.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionOptionNumberClient) GetX(ctx context.Context, id uuid.UUID) *QuestionOptionNumber {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOption queries the option edge of a QuestionOptionNumber.
func (c *QuestionOptionNumberClient) QueryOption(_m *QuestionOptionNumber) *QuestionOptionQuery {
	query := (&QuestionOptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionoptionnumber.Table, questionoptionnumber.FieldID, id),
			sqlgraph.To(questionoption.Table, questionoption.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionoptionnumber.OptionTable, questionoptionnumber.OptionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionOptionNumberClient) Hooks() []Hook {
	return c.hooks.QuestionOptionNumber
}

// Interceptors returns the client interceptors.
func (c *QuestionOptionNumberClient) Interceptors() []Interceptor {
	return c.inters.QuestionOptionNumber
}

func (c *QuestionOptionNumberClient) mutate(ctx context.Context, m *QuestionOptionNumberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionOptionNumberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionOptionNumberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionOptionNumberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionOptionNumberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown QuestionOptionNumber mutation op: %q", m.Op())
	}
}

// QuestionShareClient is a client for the QuestionShare schema.
type QuestionShareClient struct {
	config
}

// NewQuestionShareClient returns a client for the QuestionShare from the given config.
func NewQuestionShareClient(c config) *QuestionShareClient {
	return &QuestionShareClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionshare.Hooks(f(g(h())))`.
func (c *QuestionShareClient) Use(hooks ...Hook) {
	c.hooks.QuestionShare = append(c.hooks.QuestionShare, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionshare.Intercept(f(g(h())))`.
func (c *QuestionShareClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionShare = append(c.inters.QuestionShare, interceptors...)
}

// Create returns a builder for creating a QuestionShare entity.
func (c *QuestionShareClient) Create() *QuestionShareCreate {
	mutation := newQuestionShareMutation(c.config, OpCreate)
	return &QuestionShareCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionShare entities.
func (c *QuestionShareClient) CreateBulk(builders ...*QuestionShareCreate) *QuestionShareCreateBulk {
	return &QuestionShareCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionShareClient) MapCreateBulk(slice any, setFunc func(*QuestionShareCreate, int)) *QuestionShareCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionShareCreateBulk{err: fmt.Errorf("calling to QuestionShareClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionShareCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionShareCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionShare.
func (c *QuestionShareClient) Update() *QuestionShareUpdate {
	mutation := newQuestionShareMutation(c.config, OpUpdate)
	return &QuestionShareUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionShareClient) UpdateOne(_m *QuestionShare) *QuestionShareUpdateOne {
	mutation := newQuestionShareMutation(c.config, OpUpdateOne, withQuestionShare(_m))
	return &QuestionShareUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionShareClient) UpdateOneID(id uuid.UUID) *QuestionShareUpdateOne {
	mutation := newQuestionShareMutation(c.config, OpUpdateOne, withQuestionShareID(id))
	return &QuestionShareUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionShare.
func (c *QuestionShareClient) Delete() *QuestionShareDelete {
	mutation := newQuestionShareMutation(c.config, OpDelete)
	return &QuestionShareDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionShareClient) DeleteOne(_m *QuestionShare) *QuestionShareDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionShareClient) DeleteOneID(id uuid.UUID) *QuestionShareDeleteOne {
	builder := c.Delete().Where(questionshare.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionShareDeleteOne{builder}
}

// Query returns a query builder for QuestionShare.
func (c *QuestionShareClient) Query() *QuestionShareQuery {
	return &QuestionShareQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionShare},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionShare entity by its id.
func (c *QuestionShareClient) Get(ctx context.Context, id uuid.UUID) (*QuestionShare, error) {
	return c.Query().Where(questionshare.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionShareClient) GetX(ctx context.Context, id uuid.UUID) *QuestionShare {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoctor queries the doctor edge of a QuestionShare.
func (c *QuestionShareClient) QueryDoctor(_m *QuestionShare) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionshare.Table, questionshare.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionshare.DoctorTable, questionshare.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClinic queries the clinic edge of a QuestionShare.
func (c *QuestionShareClient) QueryClinic(_m *QuestionShare) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionshare.Table, questionshare.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, questionshare.ClinicTable, questionshare.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOptions queries the options edge of a QuestionShare.
func (c *QuestionShareClient) QueryOptions(_m *QuestionShare) *QuestionOptionQuery {
	query := (&QuestionOptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionshare.Table, questionshare.FieldID, id),
			sqlgraph.To(questionoption.Table, questionoption.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionshare.OptionsTable, questionshare.OptionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOrgans queries the organs edge of a QuestionShare.
func (c *QuestionShareClient) QueryOrgans(_m *QuestionShare) *OrganQuery {
	query := (&OrganClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionshare.Table, questionshare.FieldID, id),
			sqlgraph.To(organ.Table, organ.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, questionshare.OrgansTable, questionshare.OrgansPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChartConnect queries the chart_connect edge of a QuestionShare.
func (c *QuestionShareClient) QueryChartConnect(_m *QuestionShare) *QuestionShareQuery {
	query := (&QuestionShareClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionshare.Table, questionshare.FieldID, id),
			sqlgraph.To(questionshare.Table, questionshare.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, questionshare.ChartConnectTable, questionshare.ChartConnectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionShareClient) Hooks() []Hook {
	return c.hooks.QuestionShare
}

// Interceptors returns the client interceptors.
func (c *QuestionShareClient) Interceptors() []Interceptor {
	return c.inters.QuestionShare
}

func (c *QuestionShareClient) mutate(ctx context.Context, m *QuestionShareMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionShareCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionShareUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionShareUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionShareDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown QuestionShare mutation op: %q", m.Op())
	}
}

// RealClinicClient is a client for the RealClinic schema.
type RealClinicClient struct {
	config
}

// NewRealClinicClient returns a client for the RealClinic from the given config.
func NewRealClinicClient(c config) *RealClinicClient {
	return &RealClinicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `realclinic.Hooks(f(g(h())))`.
func (c *RealClinicClient) Use(hooks ...Hook) {
	c.hooks.RealClinic = append(c.hooks.RealClinic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `realclinic.Intercept(f(g(h())))`.
func (c *RealClinicClient) Intercept(interceptors ...Interceptor) {
	c.inters.RealClinic = append(c.inters.RealClinic, interceptors...)
}

// Create returns a builder for creating a RealClinic entity.
func (c *RealClinicClient) Create() *RealClinicCreate {
	mutation := newRealClinicMutation(c.config, OpCreate)
	return &RealClinicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RealClinic entities.
func (c *RealClinicClient) CreateBulk(builders ...*RealClinicCreate) *RealClinicCreateBulk {
	return &RealClinicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RealClinicClient) MapCreateBulk(slice any, setFunc func(*RealClinicCreate, int)) *RealClinicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RealClinicCreateBulk{err: fmt.Errorf("calling to RealClinicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RealClinicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RealClinicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RealClinic.
func (c *RealClinicClient) Update() *RealClinicUpdate {
	mutation := newRealClinicMutation(c.config, OpUpdate)
	return &RealClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RealClinicClient) UpdateOne(_m *RealClinic) *RealClinicUpdateOne {
	mutation := newRealClinicMutation(c.config, OpUpdateOne, withRealClinic(_m))
	return &RealClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RealClinicClient) UpdateOneID(id uuid.UUID) *RealClinicUpdateOne {
	mutation := newRealClinicMutation(c.config, OpUpdateOne, withRealClinicID(id))
	return &RealClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RealClinic.
func (c *RealClinicClient) Delete() *RealClinicDelete {
	mutation := newRealClinicMutation(c.config, OpDelete)
	return &RealClinicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RealClinicClient) DeleteOne(_m *RealClinic) *RealClinicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RealClinicClient) DeleteOneID(id uuid.UUID) *RealClinicDeleteOne {
	builder := c.Delete().Where(realclinic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RealClinicDeleteOne{builder}
}

// Query returns a query builder for RealClinic.
func (c *RealClinicClient) Query() *RealClinicQuery {
	return &RealClinicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRealClinic},
		inters: c.Interceptors(),
	}
}

// Get returns a RealClinic entity by its id.
func (c *RealClinicClient) Get(ctx context.Context, id uuid.UUID) (*RealClinic, error) {
	return c.Query().Where(realclinic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RealClinicClient) GetX(ctx context.Context, id uuid.UUID) *RealClinic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RealClinicClient) Hooks() []Hook {
	return c.hooks.RealClinic
}

// Interceptors returns the client interceptors.
func (c *RealClinicClient) Interceptors() []Interceptor {
	return c.inters.RealClinic
}

func (c *RealClinicClient) mutate(ctx context.Context, m *RealClinicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RealClinicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RealClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RealClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RealClinicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown RealClinic mutation op: %q", m.Op())
	}
}

// RealDoctorClient is a client for the RealDoctor schema.
type RealDoctorClient struct {
	config
}

// NewRealDoctorClient returns a client for the RealDoctor from the given config.
func NewRealDoctorClient(c config) *RealDoctorClient {
	return &RealDoctorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `realdoctor.Hooks(f(g(h())))`.
func (c *RealDoctorClient) Use(hooks ...Hook) {
	c.hooks.RealDoctor = append(c.hooks.RealDoctor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `realdoctor.Intercept(f(g(h())))`.
func (c *RealDoctorClient) Intercept(interceptors ...Interceptor) {
	c.inters.RealDoctor = append(c.inters.RealDoctor, interceptors...)
}

// Create returns a builder for creating a RealDoctor entity.
func (c *RealDoctorClient) Create() *RealDoctorCreate {
	mutation := newRealDoctorMutation(c.config, OpCreate)
	return &RealDoctorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RealDoctor entities.
func (c *RealDoctorClient) CreateBulk(builders ...*RealDoctorCreate) *RealDoctorCreateBulk {
	return &RealDoctorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RealDoctorClient) MapCreateBulk(slice any, setFunc func(*RealDoctorCreate, int)) *RealDoctorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RealDoctorCreateBulk{err: fmt.Errorf("calling to RealDoctorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RealDoctorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RealDoctorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RealDoctor.
func (c *RealDoctorClient) Update() *RealDoctorUpdate {
	mutation := newRealDoctorMutation(c.config, OpUpdate)
	return &RealDoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RealDoctorClient) UpdateOne(_m *RealDoctor) *RealDoctorUpdateOne {
	mutation := newRealDoctorMutation(c.config, OpUpdateOne, withRealDoctor(_m))
	return &RealDoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RealDoctorClient) UpdateOneID(id uuid.UUID) *RealDoctorUpdateOne {
	mutation := newRealDoctorMutation(c.config, OpUpdateOne, withRealDoctorID(id))
	return &RealDoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RealDoctor.
func (c *RealDoctorClient) Delete() *RealDoctorDelete {
	mutation := newRealDoctorMutation(c.config, OpDelete)
	return &RealDoctorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RealDoctorClient) DeleteOne(_m *RealDoctor) *RealDoctorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RealDoctorClient) DeleteOneID(id uuid.UUID) *RealDoctorDeleteOne {
	builder := c.Delete().Where(realdoctor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RealDoctorDeleteOne{builder}
}

// Query returns a query builder for RealDoctor.
func (c *RealDoctorClient) Query() *RealDoctorQuery {
	return &RealDoctorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRealDoctor},
		inters: c.Interceptors(),
	}
}

// Get returns a RealDoctor entity by its id.
func (c *RealDoctorClient) Get(ctx context.Context, id uuid.UUID) (*RealDoctor, error) {
	return c.Query().Where(realdoctor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RealDoctorClient) GetX(ctx context.Context, id uuid.UUID) *RealDoctor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RealDoctorClient) Hooks() []Hook {
	return c.hooks.RealDoctor
}

// Interceptors returns the client interceptors.
func (c *RealDoctorClient) Interceptors() []Interceptor {
	return c.inters.RealDoctor
}

func (c *RealDoctorClient) mutate(ctx context.Context, m *RealDoctorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RealDoctorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RealDoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RealDoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RealDoctorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown RealDoctor mutation op: %q", m.Op())
	}
}

// SuggestionClient is a client for the Suggestion schema.
type SuggestionClient struct {
	config
}

// NewSuggestionClient returns a client for the Suggestion from the given config.
func NewSuggestionClient(c config) *SuggestionClient {
	return &SuggestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `suggestion.Hooks(f(g(h())))`.
func (c *SuggestionClient) Use(hooks ...Hook) {
	c.hooks.Suggestion = append(c.hooks.Suggestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `suggestion.Intercept(f(g(h())))`.
func (c *SuggestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Suggestion = append(c.inters.Suggestion, interceptors...)
}

// Create returns a builder for creating a Suggestion entity.
func (c *SuggestionClient) Create() *SuggestionCreate {
	mutation := newSuggestionMutation(c.config, OpCreate)
	return &SuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Suggestion entities.
func (c *SuggestionClient) CreateBulk(builders ...*SuggestionCreate) *SuggestionCreateBulk {
	return &SuggestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SuggestionClient) MapCreateBulk(slice any, setFunc func(*SuggestionCreate, int)) *SuggestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SuggestionCreateBulk{err: fmt.Errorf("calling to SuggestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SuggestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SuggestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Suggestion.
func (c *SuggestionClient) Update() *SuggestionUpdate {
	mutation := newSuggestionMutation(c.config, OpUpdate)
	return &SuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SuggestionClient) UpdateOne(_m *Suggestion) *SuggestionUpdateOne {
	mutation := newSuggestionMutation(c.config, OpUpdateOne, withSuggestion(_m))
	return &SuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SuggestionClient) UpdateOneID(id uuid.UUID) *SuggestionUpdateOne {
	mutation := newSuggestionMutation(c.config, OpUpdateOne, withSuggestionID(id))
	return &SuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Suggestion.
func (c *SuggestionClient) Delete() *SuggestionDelete {
	mutation := newSuggestionMutation(c.config, OpDelete)
	return &SuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SuggestionClient) DeleteOne(_m *Suggestion) *SuggestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SuggestionClient) DeleteOneID(id uuid.UUID) *SuggestionDeleteOne {
	builder := c.Delete().Where(suggestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SuggestionDeleteOne{builder}
}

// Query returns a query builder for Suggestion.
func (c *SuggestionClient) Query() *SuggestionQuery {
	return &SuggestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSuggestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Suggestion entity by its id.
func (c *SuggestionClient) Get(ctx context.Context, id uuid.UUID) (*Suggestion, error) {
	return c.Query().Where(suggestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SuggestionClient) GetX(ctx context.Context, id uuid.UUID) *Suggestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInterpretation queries the interpretation edge of a Suggestion.
func (c *SuggestionClient) QueryInterpretation(_m *Suggestion) *InterpretationQuery {
	query := (&InterpretationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suggestion.Table, suggestion.FieldID, id),
			sqlgraph.To(interpretation.Table, interpretation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, suggestion.InterpretationTable, suggestion.InterpretationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDoctor queries the doctor edge of a Suggestion.
func (c *SuggestionClient) QueryDoctor(_m *Suggestion) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suggestion.Table, suggestion.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, suggestion.DoctorTable, suggestion.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRealDoctor queries the real_doctor edge of a Suggestion.
func (c *SuggestionClient) QueryRealDoctor(_m *Suggestion) *RealDoctorQuery {
	query := (&RealDoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suggestion.Table, suggestion.FieldID, id),
			sqlgraph.To(realdoctor.Table, realdoctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, suggestion.RealDoctorTable, suggestion.RealDoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClinic queries the clinic edge of a Suggestion.
func (c *SuggestionClient) QueryClinic(_m *Suggestion) *ClinicQuery {
	query := (&ClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suggestion.Table, suggestion.FieldID, id),
			sqlgraph.To(clinic.Table, clinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, suggestion.ClinicTable, suggestion.ClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRealClinic queries the real_clinic edge of a Suggestion.
func (c *SuggestionClient) QueryRealClinic(_m *Suggestion) *RealClinicQuery {
	query := (&RealClinicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suggestion.Table, suggestion.FieldID, id),
			sqlgraph.To(realclinic.Table, realclinic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, suggestion.RealClinicTable, suggestion.RealClinicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClinicMedia queries the clinic_media edge of a Suggestion.
func (c *SuggestionClient) QueryClinicMedia(_m *Suggestion) *ClinicMediaQuery {
	query := (&ClinicMediaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suggestion.Table, suggestion.FieldID, id),
			sqlgraph.To(clinicmedia.Table, clinicmedia.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, suggestion.ClinicMediaTable, suggestion.ClinicMediaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SuggestionClient) Hooks() []Hook {
	return c.hooks.Suggestion
}

// Interceptors returns the client interceptors.
func (c *SuggestionClient) Interceptors() []Interceptor {
	return c.inters.Suggestion
}

func (c *SuggestionClient) mutate(ctx context.Context, m *SuggestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Suggestion mutation op: %q", m.Op())
	}
}

// SupervisorClient is a client for the Supervisor schema.
type SupervisorClient struct {
	config
}

// NewSupervisorClient returns a client for the Supervisor from the given config.
func NewSupervisorClient(c config) *SupervisorClient {
	return &SupervisorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supervisor.Hooks(f(g(h())))`.
func (c *SupervisorClient) Use(hooks ...Hook) {
	c.hooks.Supervisor = append(c.hooks.Supervisor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supervisor.Intercept(f(g(h())))`.
func (c *SupervisorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Supervisor = append(c.inters.Supervisor, interceptors...)
}

// Create returns a builder for creating a Supervisor entity.
func (c *SupervisorClient) Create() *SupervisorCreate {
	mutation := newSupervisorMutation(c.config, OpCreate)
	return &SupervisorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Supervisor entities.
func (c *SupervisorClient) CreateBulk(builders ...*SupervisorCreate) *SupervisorCreateBulk {
	return &SupervisorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupervisorClient) MapCreateBulk(slice any, setFunc func(*SupervisorCreate, int)) *SupervisorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupervisorCreateBulk{err: fmt.Errorf("calling to SupervisorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupervisorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupervisorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Supervisor.
func (c *SupervisorClient) Update() *SupervisorUpdate {
	mutation := newSupervisorMutation(c.config, OpUpdate)
	return &SupervisorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupervisorClient) UpdateOne(_m *Supervisor) *SupervisorUpdateOne {
	mutation := newSupervisorMutation(c.config, OpUpdateOne, withSupervisor(_m))
	return &SupervisorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupervisorClient) UpdateOneID(id uuid.UUID) *SupervisorUpdateOne {
	mutation := newSupervisorMutation(c.config, OpUpdateOne, withSupervisorID(id))
	return &SupervisorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Supervisor.
func (c *SupervisorClient) Delete() *SupervisorDelete {
	mutation := newSupervisorMutation(c.config, OpDelete)
	return &SupervisorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupervisorClient) DeleteOne(_m *Supervisor) *SupervisorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupervisorClient) DeleteOneID(id uuid.UUID) *SupervisorDeleteOne {
	builder := c.Delete().Where(supervisor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupervisorDeleteOne{builder}
}

// Query returns a query builder for Supervisor.
func (c *SupervisorClient) Query() *SupervisorQuery {
	return &SupervisorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupervisor},
		inters: c.Interceptors(),
	}
}

// Get returns a Supervisor entity by its id.
func (c *SupervisorClient) Get(ctx context.Context, id uuid.UUID) (*Supervisor, error) {
	return c.Query().Where(supervisor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupervisorClient) GetX(ctx context.Context, id uuid.UUID) *Supervisor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Supervisor.
func (c *SupervisorClient) QueryUser(_m *Supervisor) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(supervisor.Table, supervisor.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, supervisor.UserTable, supervisor.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPatient queries the patient edge of a Supervisor.
func (c *SupervisorClient) QueryPatient(_m *Supervisor) *PatientProfileQuery {
	query := (&PatientProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(supervisor.Table, supervisor.FieldID, id),
			sqlgraph.To(patientprofile.Table, patientprofile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, supervisor.PatientTable, supervisor.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SupervisorClient) Hooks() []Hook {
	return c.hooks.Supervisor
}

// Interceptors returns the client interceptors.
func (c *SupervisorClient) Interceptors() []Interceptor {
	return c.inters.Supervisor
}

func (c *SupervisorClient) mutate(ctx context.Context, m *SupervisorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupervisorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupervisorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupervisorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupervisorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Supervisor mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Alert, Checkup, CheckupAnalyze, Clinic, ClinicCheckup, ClinicGroup, ClinicMedia,
		Doctor, Interpretation, Media, Organ, PatientProfile, QuestionAnswer,
		QuestionOption, QuestionOptionDate, QuestionOptionEquation,
		QuestionOptionNumber, QuestionShare, RealClinic, RealDoctor, Suggestion,
		Supervisor, User, UserSession []ent.Hook
	}
	inters struct {
		Alert, Checkup, CheckupAnalyze, Clinic, ClinicCheckup, ClinicGroup, ClinicMedia,
		Doctor, Interpretation, Media, Organ, PatientProfile, QuestionAnswer,
		QuestionOption, QuestionOptionDate, QuestionOptionEquation,
		QuestionOptionNumber, QuestionShare, RealClinic, RealDoctor, Suggestion,
		Supervisor, User, UserSession []ent.Interceptor
	}
)
