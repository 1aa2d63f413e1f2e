package models

import (
	"fmt"
	"strings"
)

// DateLayout is the form of Filter.DateFrom and Filter.DateTo.
const DateLayout = "2006-01-02"

// Filter holds the ephemeral, client-side roster criteria.
// Empty fields mean "no constraint".
type Filter struct {
	Search   string
	Status   UserStatus
	DateFrom string
	DateTo   string
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

func (f *Filter) Reset() {
	*f = Filter{}
}

// String renders the active criteria, e.g. `search="al" status=banned`.
func (f Filter) String() string {
	if f.IsZero() {
		return "none"
	}
	var parts []string
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", f.Search))
	}
	if f.Status != "" {
		parts = append(parts, "status="+string(f.Status))
	}
	if f.DateFrom != "" {
		parts = append(parts, "from="+f.DateFrom)
	}
	if f.DateTo != "" {
		parts = append(parts, "to="+f.DateTo)
	}
	return strings.Join(parts, " ")
}
