package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the fixed classification attached to an expense entry.
// The set is closed: the zero value is not a valid category.
type Category int

const (
	// CategoryFood covers groceries and eating out.
	CategoryFood Category = iota + 1
	// CategoryTransport covers fuel, fares and vehicle costs.
	CategoryTransport
	// CategoryEntertainment covers leisure spending.
	CategoryEntertainment
	// CategoryHealth covers medical and wellness spending.
	CategoryHealth
	// CategoryEducation covers courses, books and tuition.
	CategoryEducation
	// CategoryUtilities covers household services.
	CategoryUtilities
)

var categoryNames = map[Category]string{
	CategoryFood:          "food",
	CategoryTransport:     "transport",
	CategoryEntertainment: "entertainment",
	CategoryHealth:        "health",
	CategoryEducation:     "education",
	CategoryUtilities:     "utilities",
}

// Categories returns the registry in menu order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryHealth,
		CategoryEducation,
		CategoryUtilities,
	}
}

// CategoryAt returns the category shown at the given 1-based menu position.
func CategoryAt(position int) (Category, bool) {
	all := Categories()
	if position < 1 || position > len(all) {
		return 0, false
	}
	return all[position-1], true
}

// ParseCategory resolves a category from its name, ignoring case and surrounding space.
func ParseCategory(name string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories() {
		if categoryNames[c] == needle {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Valid reports whether c is a member of the registry.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Title returns the display form of the category name, e.g. "Food".
func (c Category) Title() string {
	name := c.String()
	if !c.Valid() {
		return name
	}
	return cases.Title(language.English).String(name)
}
