package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/planwise/internal/client/client"
	"github.com/dmitrijs2005/planwise/internal/client/config"
	"github.com/dmitrijs2005/planwise/internal/client/models"
	"github.com/dmitrijs2005/planwise/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/filex"
	"github.com/dmitrijs2005/planwise/internal/logging"
)

// now is a test seam for session expiry checks.
var now = time.Now

var (
	errNotLoggedIn = errors.New("not logged in, use 'login' or 'admin-login'")
	errAdminOnly   = errors.New("this command is for admins")
)

type sessionStore interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

type App struct {
	client   client.Client
	sessions sessionStore
	session  *models.Session
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	db       *sql.DB
}

// NewApp opens the local database, creates the server client and resumes a
// cached session if one is still valid.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.NewTextLogger(os.Stderr, "warn")
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.LocalDatabasePath); err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, c.LocalDatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := newApp(apiClient, metadata.NewSessionStore(db), bufio.NewReader(os.Stdin), os.Stdout, logger)
	app.db = db
	app.resumeSession(ctx)
	return app, nil
}

func newApp(c client.Client, sessions sessionStore, reader *bufio.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{
		client:   c,
		sessions: sessions,
		logger:   logger.With("module", "cli"),
		reader:   reader,
		out:      out,
	}
}

// Run blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	fmt.Fprintln(a.out, "Welcome to PlanWise CLI (type 'help' for commands)")
	if err := a.client.Ping(ctx); err != nil {
		a.logger.Warn(ctx, "Server is not reachable", "err", err)
	}

	runREPL(ctx, a.commands(), a.status, a.reader, a.out)
}

func (a *App) close() {
	if err := a.client.Close(); err != nil {
		a.logger.Warn(context.Background(), "Closing client", "err", err)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) resumeSession(ctx context.Context) {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		a.logger.Warn(ctx, "Cannot read cached session", "err", err)
		return
	}
	if s == nil {
		return
	}
	if !s.Valid(now()) {
		a.dropSession(ctx)
		return
	}
	a.session = s
}

func (a *App) setSession(ctx context.Context, s models.Session) {
	a.session = &s
	if err := a.sessions.Save(ctx, s); err != nil {
		a.logger.Warn(ctx, "Cannot cache session", "err", err)
	}
}

func (a *App) dropSession(ctx context.Context) {
	a.session = nil
	if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Warn(ctx, "Cannot clear cached session", "err", err)
	}
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.Identity, a.session.Role)
}

// requireSession returns the current session, or an error when there is
// none or it belongs to the wrong role. An expired session is dropped.
func (a *App) requireSession(ctx context.Context, adminOnly bool) (*models.Session, error) {
	if a.session == nil {
		return nil, errNotLoggedIn
	}
	if !a.session.Valid(now()) {
		a.dropSession(ctx)
		return nil, errors.New("session expired, please log in again")
	}
	if adminOnly && !a.session.IsAdmin() {
		return nil, errAdminOnly
	}
	return a.session, nil
}

// checkAuth drops the session when the server no longer accepts its token.
func (a *App) checkAuth(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrorUnauthorized) {
		a.dropSession(ctx)
		return fmt.Errorf("session rejected by server, please log in again: %w", err)
	}
	return err
}
