package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
)

// Signup prompts for a new account, creates it and logs it in. Field errors
// are checked locally before the request is sent.
func (a *App) Signup(ctx context.Context) error {
	var in models.UserInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Enter full name (20-60 characters)", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if in.Address, err = getSimpleText(a.reader, "Enter address", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	in.Password = string(password)

	u, err := a.session.Signup(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
	return a.Dashboard(ctx)
}

// Login prompts for credentials and opens the dashboard for the user's role.
// On failure the session stays anonymous.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", u.Name, u.Role.Title())
	return a.Dashboard(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
