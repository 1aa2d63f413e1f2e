package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/client/models"
	"github.com/dmitrijs2005/gophadmin/internal/client/services"
)

const deletePrompt = "Are you sure you want to delete this user?"

var (
	errNotLoggedIn = errors.New("not logged in")
	errUsage       = errors.New("usage")
)

// requireLogin prints a hint and fails when no token is stored. The
// controllers would silently ignore the call otherwise.
func (a *App) requireLogin(ctx context.Context) error {
	if a.isLoggedIn(ctx) {
		return nil
	}
	a.printf("Please log in first.\n")
	a.setView(ViewLogin)
	return errNotLoggedIn
}

// Users refreshes the roster and prints the filtered table.
func (a *App) Users(ctx context.Context, _ []string) error {
	if err := a.Refresh(ctx); err != nil {
		return err
	}
	a.printTable()
	return nil
}

// Refresh re-fetches the roster without printing it.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	a.roster.Refresh(ctx)
	if a.notice(a.roster.Err()) {
		return errors.New(a.roster.Err())
	}
	a.printf("Loaded %d users.\n", len(a.roster.Users()))
	return nil
}

// Filter applies key=value criteria on top of the current filter and
// prints the result. An empty value clears that key. Words without '='
// continue the previous value, so `filter search=jane doe` searches "jane doe".
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Current filter: %s\n", a.filter)
		a.printf("Usage: filter search=<text> status=<active|suspended|banned> from=<YYYY-MM-DD> to=<YYYY-MM-DD>\n")
		return nil
	}

	next, err := parseFilterArgs(a.filter, args)
	if err != nil {
		a.printf("%s\n", err)
		return err
	}
	if err := a.requireLogin(ctx); err != nil {
		return err
	}

	a.filter = next
	a.printTable()
	return nil
}

// Reset drops every filter criterion.
func (a *App) Reset(ctx context.Context) error {
	a.filter.Reset()
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	a.printf("Filter cleared.\n")
	a.printTable()
	return nil
}

// Stats prints the per-status counts of the whole roster.
func (a *App) Stats(ctx context.Context) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	counts := a.roster.Stats()
	total := 0
	for _, n := range counts {
		total += n
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, st := range models.AllStatuses {
		fmt.Fprintf(tw, "%s\t%d\n", st, counts[st])
	}
	fmt.Fprintf(tw, "total\t%d\n", total)
	return tw.Flush()
}

// SetStatus handles `status <id> <status>`.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.printf("Usage: status <id> <active|suspended|banned>\n")
		return errUsage
	}
	st, err := models.ParseUserStatus(args[1])
	if err != nil {
		a.printf("%s\n", err)
		return err
	}
	if err := a.requireLogin(ctx); err != nil {
		return err
	}

	a.roster.SetStatus(ctx, args[0], st)
	if err := a.mutationResult(fmt.Sprintf("User %s is now %s.", args[0], st)); err != nil {
		return err
	}
	a.printTable()
	return nil
}

// Delete handles `delete <id>` after an explicit confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.printf("Usage: delete <id>\n")
		return errUsage
	}
	if err := a.requireLogin(ctx); err != nil {
		return err
	}

	ok, err := confirm(a.reader, deletePrompt, a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.printf("Cancelled.\n")
		return nil
	}

	a.roster.Remove(ctx, args[0])
	if err := a.mutationResult(fmt.Sprintf("User %s deleted.", args[0])); err != nil {
		return err
	}
	a.printTable()
	return nil
}

// mutationResult prints done unless the mutation itself failed. A failed
// follow-up refresh still means the change was applied.
func (a *App) mutationResult(done string) error {
	msg := a.roster.Err()
	if msg == "" || msg == services.MsgFetchFailed {
		a.printf("%s\n", done)
	}
	if a.notice(msg) {
		return errors.New(msg)
	}
	return nil
}

func (a *App) printTable() {
	all := a.roster.Users()
	users := a.roster.Filtered(a.filter)

	if !a.filter.IsZero() {
		a.printf("Filter: %s\n", a.filter)
	}
	if len(users) == 0 {
		a.printf("No users found (0 of %d).\n", len(all))
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tSTATUS\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Status, u.CreatedAt)
	}
	_ = tw.Flush()
	a.printf("Showing %d of %d users.\n", len(users), len(all))
}

// parseFilterArgs overlays key=value tokens on base. Dates must use
// models.DateLayout and statuses must be known.
func parseFilterArgs(base models.Filter, args []string) (models.Filter, error) {
	f := base
	lastKey := ""

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			if lastKey != "search" {
				return base, fmt.Errorf("%w: expected key=value, got %q", errUsage, arg)
			}
			if f.Search != "" {
				f.Search += " "
			}
			f.Search += arg
			continue
		}

		lastKey = strings.ToLower(key)
		switch lastKey {
		case "search":
			f.Search = value
		case "status":
			if value == "" {
				f.Status = ""
				continue
			}
			st, err := models.ParseUserStatus(value)
			if err != nil {
				return base, err
			}
			f.Status = st
		case "from", "to":
			if value != "" {
				if _, err := time.Parse(models.DateLayout, value); err != nil {
					return base, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", errUsage, lastKey, value)
				}
			}
			if lastKey == "from" {
				f.DateFrom = value
			} else {
				f.DateTo = value
			}
		default:
			return base, fmt.Errorf("%w: unknown filter key %q", errUsage, key)
		}
	}
	return f, nil
}
