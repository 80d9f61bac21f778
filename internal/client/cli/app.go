package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/agenda/internal/client/client"
	"github.com/dmitrijs2005/agenda/internal/client/config"
	"github.com/dmitrijs2005/agenda/internal/client/nav"
	"github.com/dmitrijs2005/agenda/internal/client/repositories/contacts"
	"github.com/dmitrijs2005/agenda/internal/client/repositories/users"
	"github.com/dmitrijs2005/agenda/internal/client/services"
	"github.com/dmitrijs2005/agenda/internal/client/session"
	"github.com/dmitrijs2005/agenda/internal/logging"
)

type App struct {
	config *config.Config
	// client is nil in offline mode.
	client    client.Client
	userRepo  users.Repository
	contRepo  contacts.Repository
	confirmer services.Confirmer
	logger    logging.Logger

	store    *session.Store
	router   *nav.Router
	route    nav.Route
	login    *services.LoginController
	contacts *services.ContactListController

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the client for c. In offline mode the data lives in memory
// and no connection is made.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, logging.ParseLevel(c.EffectiveLogLevel()), false)
	reader := bufio.NewReader(os.Stdin)

	var confirmer services.Confirmer = NewPromptConfirmer(reader, os.Stdout)
	if isTerminal(int(os.Stdin.Fd())) {
		confirmer = HuhConfirmer{}
	}

	if c.Offline {
		ur, cr := demoRepositories()
		return newApp(c, nil, ur, cr, confirmer, logger, reader, os.Stdout), nil
	}

	apiClient, err := client.NewAgendaClientService(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return newApp(c, apiClient,
		users.NewRemoteRepository(apiClient),
		contacts.NewRemoteRepository(apiClient),
		confirmer, logger, reader, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, ur users.Repository, cr contacts.Repository,
	confirmer services.Confirmer, logger logging.Logger, reader *bufio.Reader, out io.Writer) *App {

	store := session.NewStore()
	a := &App{
		config:    c,
		client:    cl,
		userRepo:  ur,
		contRepo:  cr,
		confirmer: confirmer,
		logger:    logger,
		store:     store,
		router:    nav.NewRouter(store),
		route:     nav.RouteLogin,
		login:     services.NewLoginController(ur, store, logger),
		reader:    reader,
		out:       out,
	}
	a.contacts = a.newContactsController()
	return a
}

func (a *App) newContactsController() *services.ContactListController {
	return services.NewContactListController(a.contRepo, a.store, a.confirmer, a.logger,
		services.WithPageSize(a.config.PageSize),
		services.WithFreshEdits(a.config.FreshEdits),
	)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// Run shows one view after another until the user leaves or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if a.config.Offline {
		a.println(mutedStyle.Render("Offline demo mode: sign in as demo/demo"))
	}
	a.println("Agenda CLI (type 'help' for commands)")

	for ctx.Err() == nil {
		var quit bool
		switch a.router.Resolve(a.route) {
		case nav.RouteContacts:
			quit = a.contactsView(ctx)
		default:
			a.route = nav.RouteLogin
			quit = a.loginView(ctx)
		}
		if quit {
			return nil
		}
	}
	return nil
}

func (a *App) close() {
	if a.client == nil {
		return
	}
	if err := a.client.Close(); err != nil {
		a.logger.Warn(context.Background(), "failed to close client", "error", err.Error())
	}
}

func (a *App) status() string {
	sess, ok := a.store.Current()
	if !ok {
		return ""
	}
	s := sess.User().DisplayName()
	if a.config.Offline {
		s += " offline"
	}
	return fmt.Sprintf("(%s) ", s)
}
