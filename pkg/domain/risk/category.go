package risk

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCategory = errors.New("invalid risk category")

// Category is one of the four EU AI Act risk tiers. The string values are the
// ones persisted and exchanged over the wire.
type Category string

const (
	Critical Category = "critical"
	High     Category = "high"
	Medium   Category = "medium"
	Low      Category = "low"
)

var severities = map[Category]int{
	Low:      0,
	Medium:   1,
	High:     2,
	Critical: 3,
}

// Categories returns every category, most severe first.
func Categories() []Category {
	return []Category{Critical, High, Medium, Low}
}

func (c Category) Valid() bool {
	_, ok := severities[c]
	return ok
}

// Severity orders categories: low=0 ... critical=3. Unknown categories return -1.
func (c Category) Severity() int {
	s, ok := severities[c]
	if !ok {
		return -1
	}
	return s
}

func (c Category) String() string {
	return string(c)
}

func Parse(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// MoreSevere returns whichever of a and b ranks higher.
func MoreSevere(a, b Category) Category {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}
