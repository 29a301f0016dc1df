package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/gradebook-console/internal/api"
	"github.com/spec-kit/gradebook-console/internal/config"
	"github.com/spec-kit/gradebook-console/internal/domain"
	"github.com/spec-kit/gradebook-console/internal/events"
	"github.com/spec-kit/gradebook-console/internal/guard"
	"github.com/spec-kit/gradebook-console/internal/observability"
	"github.com/spec-kit/gradebook-console/internal/session"
	"github.com/spec-kit/gradebook-console/internal/transport"
	apperrors "github.com/spec-kit/gradebook-console/pkg/util"
)

// App bundles the wired client: config, session manager, REST client, and
// guard table. One App lives for the duration of a command invocation.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *observability.Metrics
	Nav      *Navigator
	Sessions *session.Manager
	Client   *api.Client
	Guards   *guard.Table

	redisStore *session.RedisStore
}

// NewApp loads configuration and wires the full request pipeline. The
// session manager and the client reference each other (token source one
// way, expiry logout the other), so binding happens after construction.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	metrics := observability.NewMetrics()
	nav := NewNavigator(logger)

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		Nav:     nav,
	}

	var store session.Store
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		store = session.NewMemoryStore()
	case config.SessionBackendRedis:
		redisStore := session.NewRedisStore(cfg.Redis, logger)
		app.redisStore = redisStore
		store = redisStore
	default:
		store = session.NewFileStore(cfg.Session.FilePath)
	}

	sessions := session.NewManager(store, nav, events.NewInMemoryDispatcher(), logger)

	logging := transport.NewLogging(http.DefaultTransport, logger, metrics)
	authenticated := transport.NewAuthenticator(logging, sessions)
	httpClient := &http.Client{Transport: authenticated, Timeout: cfg.API.Timeout()}

	client := api.NewClient(cfg.API.BaseURL, httpClient, logger, metrics)
	client.OnSessionExpired(sessions.Logout)
	sessions.BindAPI(client)
	sessions.Restore(ctx)

	app.Sessions = sessions
	app.Client = client
	app.Guards = guard.NewTable(sessions, nav)
	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	a.redisStore.Close()
	_ = a.Logger.Sync()
}

// RequireRoute evaluates the guard chain for a protected route before a
// command touches its namespace.
func (a *App) RequireRoute(route string) error {
	if !a.Guards.CanActivate(route) {
		return fmt.Errorf("access denied, redirected to %s", a.Nav.Current())
	}
	return nil
}

// RequireRoles runs an ad-hoc guard chain for operations open to more than
// one role, such as grade recording (teacher and admin).
func (a *App) RequireRoles(route string, roles ...domain.Role) error {
	chain := guard.Chain{
		guard.NewAuthGuard(a.Sessions, a.Nav),
		guard.NewRoleGuard(a.Sessions, a.Nav, roles...),
	}
	if !chain.CanActivate(route) {
		return fmt.Errorf("access denied, redirected to %s", a.Nav.Current())
	}
	return nil
}

// Execute runs the console command tree.
func Execute(ctx context.Context) error {
	app, err := NewApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	root := &cobra.Command{
		Use:           "gradebook",
		Short:         "Role-aware console client for the grade-management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newUsersCommand(app),
		newClassesCommand(app),
		newSubjectsCommand(app),
		newEnrollmentsCommand(app),
		newGradesCommand(app),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		printError(app, err)
		return err
	}
	return nil
}

// printError surfaces a classified failure the way a feature component
// would present it: message to the user, classification to the log.
func printError(app *App, err error) {
	if apiErr, ok := apperrors.AsAPIError(err); ok {
		fmt.Fprintln(os.Stderr, apiErr.Message)
		app.Logger.Debug("request error",
			zap.String("kind", string(apiErr.Kind)),
			zap.Int("status", apiErr.HTTPStatus))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
