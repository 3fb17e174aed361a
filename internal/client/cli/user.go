package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

type userDashboard struct {
	app *App
}

func (d *userDashboard) Title() string { return "Stores" }

func (d *userDashboard) Commands() []string {
	return []string{"stores [query]", "rate <store id> <1-5>"}
}

func (d *userDashboard) Show(ctx context.Context) error {
	return d.stores(ctx, nil)
}

func (d *userDashboard) Exec(ctx context.Context, cmd string, args []string) (bool, error) {
	switch cmd {
	case "stores":
		return true, d.stores(ctx, args)
	case "rate":
		return true, d.rate(ctx, args)
	}
	return false, nil
}

// stores searches by name or address only.
func (d *userDashboard) stores(ctx context.Context, args []string) error {
	_, _, query, err := parseFilter(args)
	if err != nil {
		return err
	}
	cards, err := d.app.client.ListStores(ctx, models.StoreFilter{
		Fields: []models.SearchField{models.SearchByName, models.SearchByAddress},
		Query:  query,
	})
	if err != nil {
		return err
	}
	renderStoreCards(d.app.out, cards, true)
	return nil
}

func (d *userDashboard) rate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: rate <store id> <1-5>")
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return validation.Errors{{Field: validation.FieldRating, Kind: validation.RatingOutOfRange}}
	}
	if fe := validation.ValidateRating(value); fe != nil {
		return validation.Errors{fe}
	}

	r, created, err := d.app.client.SubmitRating(ctx, args[0], value)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(d.app.out, "Rating %d submitted\n", r.Value)
	} else {
		fmt.Fprintf(d.app.out, "Rating updated to %d\n", r.Value)
	}
	return nil
}
