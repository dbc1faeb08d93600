package bubblecatch

import (
	"slices"

	"github.com/vovakirdan/bubble-catch/internal/config"
)

// Levels is the ordered level table. Entry i is both the number of colors
// used on level i and the number of correct catches needed to clear it.
type Levels []int

// DefaultLevels is the classic progression.
var DefaultLevels = Levels{2, 3, 4, 5, 6}

// Len returns the number of levels.
func (l Levels) Len() int {
	return len(l)
}

// Colors returns the number of colors on level i, or 0 if out of range.
func (l Levels) Colors(i int) int {
	if i < 0 || i >= len(l) {
		return 0
	}
	return l[i]
}

// IsLast reports whether i is the final level.
func (l Levels) IsLast(i int) bool {
	return i == len(l)-1
}

// Total returns the number of correct catches needed to win.
func (l Levels) Total() int {
	total := 0
	for _, n := range l {
		total += n
	}
	return total
}

// Validate checks that the table is non-empty and every level uses a
// supported number of colors.
func (l Levels) Validate() error {
	return config.ValidateLevels(l)
}

// Clone returns an independent copy.
func (l Levels) Clone() Levels {
	return slices.Clone(l)
}
