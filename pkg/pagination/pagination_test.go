package pagination

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name        string
		page, limit string
		wantPage    int
		wantLimit   int
		wantOffset  int
	}{
		{"defaults when absent", "", "", 1, 20, 0},
		{"explicit values", "2", "10", 2, 10, 10},
		{"zero limit falls back", "1", "0", 1, 20, 0},
		{"negative page falls back", "-3", "5", 1, 5, 0},
		{"non-numeric falls back", "abc", "ten", 1, 20, 0},
		{"limit capped", "3", "1000", 3, 100, 200},
		{"surrounding spaces", " 4 ", " 25 ", 4, 25, 75},
		{"huge page is capped", strconv.Itoa(math.MaxInt), "20", math.MaxInt / 20, 20, (math.MaxInt/20 - 1) * 20},
		{"page beyond int falls back", "99999999999999999999", "20", 1, 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Parse(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantOffset, p.Offset())
		})
	}
}

func TestOffsetNeverNegative(t *testing.T) {
	assert.Equal(t, math.MaxInt, Page{Page: math.MaxInt, Limit: MaxLimit}.Offset())
	assert.Equal(t, 0, Page{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, Page{Page: 3, Limit: 0}.Offset())
}
