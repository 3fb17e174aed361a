package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/storerating/internal/api"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

const barWidth = 20

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatAverage prints a one-decimal average with its rating count, or
// "no ratings yet".
func formatAverage(a api.Average) string {
	m := a.Model()
	if !m.Rated() {
		return m.String()
	}
	noun := "ratings"
	if m.Count == 1 {
		noun = "rating"
	}
	return fmt.Sprintf("%s (%d %s)", m, m.Count, noun)
}

// ratingBar draws percent (0..100) as a fixed width bar.
func ratingBar(percent float64) string {
	filled := int(percent/100*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
}

func renderPlatformStats(w io.Writer, s *api.PlatformStatsResponse) {
	t := newTable(w)
	fmt.Fprintf(t, "Total users\t%d\n", s.TotalUsers)
	fmt.Fprintf(t, "Total stores\t%d\n", s.TotalStores)
	fmt.Fprintf(t, "Total ratings\t%d\n", s.TotalRatings)
	fmt.Fprintf(t, "Average rating\t%s\n", formatAverage(s.Average))
	for _, r := range models.Roles() {
		fmt.Fprintf(t, "%ss\t%d\n", r.Title(), s.UsersByRole[string(r)])
	}
	t.Flush()
}

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found")
		return
	}
	t := newTable(w)
	fmt.Fprintln(t, "ID\tNAME\tEMAIL\tADDRESS\tROLE\tSTORE")
	for _, u := range users {
		fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Address, u.Role.Title(), orDash(u.StoreID))
	}
	t.Flush()
}

// renderStoreCards lists stores with their averages. withMine adds the
// viewer's own rating column.
func renderStoreCards(w io.Writer, cards []api.StoreCard, withMine bool) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No stores found")
		return
	}
	t := newTable(w)
	if withMine {
		fmt.Fprintln(t, "ID\tNAME\tADDRESS\tRATING\tMY RATING")
	} else {
		fmt.Fprintln(t, "ID\tNAME\tEMAIL\tADDRESS\tRATING")
	}
	for _, c := range cards {
		if withMine {
			mine := "-"
			if c.MyRating != nil {
				mine = strconv.Itoa(*c.MyRating)
			}
			fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\n", c.Store.ID, c.Store.Name, c.Store.Address, formatAverage(c.Average), mine)
			continue
		}
		fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\n", c.Store.ID, c.Store.Name, c.Store.Email, c.Store.Address, formatAverage(c.Average))
	}
	t.Flush()
}

func renderOverview(w io.Writer, o *api.StoreOverview) {
	fmt.Fprintf(w, "%s\n%s\n%s\n\n", o.Store.Name, o.Store.Email, o.Store.Address)

	t := newTable(w)
	fmt.Fprintf(t, "Average rating\t%s\n", formatAverage(o.Average))
	fmt.Fprintf(t, "Total ratings\t%d\n", o.Distribution.Total())
	top := "-"
	if v, ok := o.Distribution.TopRating(); ok {
		top = strconv.Itoa(v)
	}
	fmt.Fprintf(t, "Top rating\t%s\n", top)
	t.Flush()

	fmt.Fprintln(w, "\nRating distribution")
	t = newTable(w)
	for stars := models.MaxRating; stars >= models.MinRating; stars-- {
		p := o.Distribution.Percent(stars)
		fmt.Fprintf(t, "%d stars\t%s\t%.0f%%\t(%d)\n", stars, ratingBar(p), p, o.Distribution.Count(stars))
	}
	t.Flush()

	fmt.Fprintln(w, "\nRecent ratings")
	if len(o.Recent) == 0 {
		fmt.Fprintln(w, "No ratings yet")
		return
	}
	t = newTable(w)
	fmt.Fprintln(t, "DATE\tUSER\tRATING")
	for _, r := range o.Recent {
		fmt.Fprintf(t, "%s\t%s\t%d\n", r.CreatedAt.Format("2006-01-02 15:04"), r.UserID, r.Value)
	}
	t.Flush()
}

// renderError prints err; field errors get one line per field.
func renderError(w io.Writer, err error) {
	if errs, ok := validation.FieldErrors(err); ok {
		for _, fe := range errs {
			fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Kind.Message())
		}
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
