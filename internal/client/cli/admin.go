package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
)

type adminDashboard struct {
	app *App
}

func (d *adminDashboard) Title() string { return "Admin Dashboard" }

func (d *adminDashboard) Commands() []string {
	return []string{"stats", "users [role=<role>] [by=<fields>] [query]", "stores [by=<fields>] [query]", "adduser", "addstore"}
}

func (d *adminDashboard) Show(ctx context.Context) error {
	return d.stats(ctx)
}

func (d *adminDashboard) Exec(ctx context.Context, cmd string, args []string) (bool, error) {
	switch cmd {
	case "stats":
		return true, d.stats(ctx)
	case "users":
		return true, d.users(ctx, args)
	case "stores":
		return true, d.stores(ctx, args)
	case "adduser":
		return true, d.addUser(ctx)
	case "addstore":
		return true, d.addStore(ctx)
	}
	return false, nil
}

func (d *adminDashboard) stats(ctx context.Context) error {
	s, err := d.app.client.PlatformStats(ctx)
	if err != nil {
		return err
	}
	renderPlatformStats(d.app.out, s)
	return nil
}

func (d *adminDashboard) users(ctx context.Context, args []string) error {
	role, fields, query, err := parseFilter(args)
	if err != nil {
		return err
	}
	users, err := d.app.client.ListUsers(ctx, models.UserFilter{Role: role, Fields: fields, Query: query})
	if err != nil {
		return err
	}
	renderUsers(d.app.out, users)
	return nil
}

func (d *adminDashboard) stores(ctx context.Context, args []string) error {
	_, fields, query, err := parseFilter(args)
	if err != nil {
		return err
	}
	cards, err := d.app.client.ListStores(ctx, models.StoreFilter{Fields: fields, Query: query})
	if err != nil {
		return err
	}
	renderStoreCards(d.app.out, cards, false)
	return nil
}

func (d *adminDashboard) addUser(ctx context.Context) error {
	a := d.app
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

	if in.Role, err = getSimpleText(a.reader, "Enter role (admin, user, store_owner)", a.out); err != nil {
		return err
	}

	u, err := a.client.CreateUser(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s created with id %s\n", u.Email, u.ID)
	return nil
}

func (d *adminDashboard) addStore(ctx context.Context) error {
	a := d.app
	var in models.StoreInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Enter store name", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Enter store email", a.out); err != nil {
		return err
	}
	if in.Address, err = getSimpleText(a.reader, "Enter store address", a.out); err != nil {
		return err
	}
	if in.OwnerID, err = getSimpleText(a.reader, "Enter owner id", a.out); err != nil {
		return err
	}

	st, err := a.client.CreateStore(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Store %s created with id %s\n", st.Name, st.ID)
	return nil
}
