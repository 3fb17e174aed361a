package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/storerating/internal/client/client"
	"github.com/dmitrijs2005/storerating/internal/client/config"
	"github.com/dmitrijs2005/storerating/internal/client/session"
	"github.com/dmitrijs2005/storerating/internal/models"
)

type App struct {
	config  *config.Config
	client  client.Client
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewRatingClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		log.Printf("error connecting to %s: %s", c.ServerEndpointAddr, err.Error())
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		client:  cl,
		session: session.New(cl),
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.Authenticated
}

func (a *App) currentUser() (models.User, bool) {
	return a.session.User()
}

// dashboard returns the view for the logged in user's role.
func (a *App) dashboard() (Dashboard, bool) {
	u, ok := a.currentUser()
	if !ok {
		return nil, false
	}
	d, err := DashboardFor(u.Role, a)
	if err != nil {
		return nil, false
	}
	return d, true
}
