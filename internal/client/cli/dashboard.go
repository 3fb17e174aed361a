package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
)

// Dashboard is the set of commands available to one role.
type Dashboard interface {
	Title() string
	// Commands lists the command names Exec understands.
	Commands() []string
	// Show renders the dashboard's landing view.
	Show(ctx context.Context) error
	// Exec runs cmd and reports whether the dashboard knows it.
	Exec(ctx context.Context, cmd string, args []string) (bool, error)
}

// DashboardFor selects the dashboard for role. Every role has exactly one.
func DashboardFor(role models.Role, a *App) (Dashboard, error) {
	switch role {
	case models.RoleAdmin:
		return &adminDashboard{app: a}, nil
	case models.RoleUser:
		return &userDashboard{app: a}, nil
	case models.RoleStoreOwner:
		return &ownerDashboard{app: a}, nil
	}
	return nil, fmt.Errorf("no dashboard for role %q", role)
}

// Dashboard renders the landing view of the current user's dashboard.
func (a *App) Dashboard(ctx context.Context) error {
	d, ok := a.dashboard()
	if !ok {
		return common.ErrorUnauthorized
	}
	fmt.Fprintf(a.out, "== %s ==\n", d.Title())
	return a.checkSession(d.Show(ctx))
}

// Exec forwards cmd to the current dashboard.
func (a *App) Exec(ctx context.Context, cmd string, args []string) (bool, error) {
	d, ok := a.dashboard()
	if !ok {
		return false, nil
	}
	handled, err := d.Exec(ctx, cmd, args)
	return handled, a.checkSession(err)
}

func (a *App) Help() string {
	d, ok := a.dashboard()
	if !ok {
		return "Available commands: signup, login, exit"
	}
	cmds := append([]string{"dashboard"}, d.Commands()...)
	cmds = append(cmds, "logout", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}

// checkSession drops the local session once the server stops accepting the
// access token.
func (a *App) checkSession(err error) error {
	if errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrorUnauthorized) {
		a.session.Logout()
		return fmt.Errorf("session ended, please log in again: %w", err)
	}
	return err
}

// parseFilter splits dashboard arguments into options and a free text query.
// Recognised options are role=<role> and by=<field>[,<field>...].
func parseFilter(args []string) (role models.Role, fields []models.SearchField, query string, err error) {
	var words []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "role="):
			role, err = models.ParseRole(strings.TrimPrefix(arg, "role="))
			if err != nil {
				return "", nil, "", err
			}
		case strings.HasPrefix(arg, "by="):
			for _, f := range strings.Split(strings.TrimPrefix(arg, "by="), ",") {
				switch sf := models.SearchField(f); sf {
				case models.SearchByName, models.SearchByEmail, models.SearchByAddress:
					fields = append(fields, sf)
				default:
					return "", nil, "", fmt.Errorf("unknown search field %q", f)
				}
			}
		default:
			words = append(words, arg)
		}
	}
	return role, fields, strings.Join(words, " "), nil
}
