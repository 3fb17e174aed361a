package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storerating/internal/common"
)

type ownerDashboard struct {
	app *App
}

func (d *ownerDashboard) Title() string { return "Store Owner Dashboard" }

func (d *ownerDashboard) Commands() []string {
	return []string{"store"}
}

func (d *ownerDashboard) Show(ctx context.Context) error {
	o, err := d.app.client.MyStore(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintln(d.app.out, "No store assigned")
		return nil
	}
	if err != nil {
		return err
	}
	renderOverview(d.app.out, o)
	return nil
}

func (d *ownerDashboard) Exec(ctx context.Context, cmd string, _ []string) (bool, error) {
	if cmd == "store" {
		return true, d.Show(ctx)
	}
	return false, nil
}
