// Package pagination turns raw page/limit query values into a bounded window.
package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a normalized page request.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Parse never fails: absent, non-numeric or non-positive values fall back to defaults
// and limit is capped at MaxLimit. Page is capped so Offset cannot overflow.
func Parse(rawPage, rawLimit string) Page {
	p := Page{Page: positiveOr(rawPage, DefaultPage), Limit: positiveOr(rawLimit, DefaultLimit)}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

// Offset is the number of records to skip. It saturates at math.MaxInt.
func (p Page) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
