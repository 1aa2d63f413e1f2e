package services

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/gophadmin/internal/client/models"
)

// createdAtLayouts are tried in order when parsing User.CreatedAt.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	models.DateLayout,
}

func parseCreatedAt(s string) (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseBound parses a filter date; malformed input counts as unset.
func parseBound(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(models.DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FilterUsers returns the users matching f, in their original order.
// users is never modified.
//
// A user matches when the search text is a case-insensitive substring of its
// username or email, its status equals f.Status, and its creation time lies
// within [DateFrom, DateTo] (each bound optional, midnight UTC). Users whose
// created_at cannot be parsed are excluded as soon as any date bound is set.
func FilterUsers(users []models.User, f models.Filter) []models.User {
	search := strings.ToLower(f.Search)
	from, hasFrom := parseBound(f.DateFrom)
	to, hasTo := parseBound(f.DateTo)

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Username), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		if hasFrom || hasTo {
			created, ok := parseCreatedAt(u.CreatedAt)
			if !ok {
				continue
			}
			if hasFrom && created.Before(from) {
				continue
			}
			if hasTo && created.After(to) {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}

// CountByStatus tallies users per status. Missing statuses read as zero.
func CountByStatus(users []models.User) map[models.UserStatus]int {
	counts := make(map[models.UserStatus]int, len(models.AllStatuses))
	for _, u := range users {
		counts[u.Status]++
	}
	return counts
}
