package semester

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Term is a school term within a calendar year.
type Term int

// Term ranks are spaced so that Year*100+rank yields a sortable composite key.
const (
	TermUnknown Term = 0
	Spring      Term = 10
	Summer      Term = 20
	Fall        Term = 30
)

var termNames = map[Term]string{
	Spring: "Spring",
	Summer: "Summer",
	Fall:   "Fall",
}

// SelectableYears is how many calendar years back (inclusive of the current
// year) a semester may be picked for a new review.
const SelectableYears = 3

// Semester is the typed form of a label like "Fall 2025", parsed once at the
// data boundary. The zero value represents an unrecognized label and sorts
// below every real semester.
type Semester struct {
	Term Term
	Year int
}

// Parse converts a "<Term> <Year>" label. Unrecognized labels return the zero
// value rather than an error; they sort last.
func Parse(label string) Semester {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return Semester{}
	}
	var term Term
	switch parts[0] {
	case "Spring":
		term = Spring
	case "Summer":
		term = Summer
	case "Fall":
		term = Fall
	default:
		return Semester{}
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 0 {
		return Semester{}
	}
	return Semester{Term: term, Year: year}
}

func (s Semester) IsZero() bool {
	return s.Term == TermUnknown && s.Year == 0
}

// SortKey is the composite ordering key: year*100 + term rank.
func (s Semester) SortKey() int {
	return s.Year*100 + int(s.Term)
}

func (s Semester) String() string {
	name, ok := termNames[s.Term]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %d", name, s.Year)
}

// Selectable returns the labels a new review may use: every term of the
// current calendar year and the two prior, newest first (year descending,
// Fall > Summer > Spring within a year).
func Selectable(now time.Time) []string {
	currentYear := now.Year()
	labels := make([]string, 0, SelectableYears*3)
	for year := currentYear; year > currentYear-SelectableYears; year-- {
		for _, term := range []Term{Fall, Summer, Spring} {
			labels = append(labels, Semester{Term: term, Year: year}.String())
		}
	}
	return labels
}

// IsSelectable reports whether the label parses and falls inside the
// selectable window.
func IsSelectable(label string, now time.Time) bool {
	s := Parse(label)
	if s.IsZero() {
		return false
	}
	currentYear := now.Year()
	return s.Year > currentYear-SelectableYears && s.Year <= currentYear
}

// SortLabelsDesc orders semester labels newest first. Unparseable labels key
// as zero and end up last.
func SortLabelsDesc(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return Parse(labels[i]).SortKey() > Parse(labels[j]).SortKey()
	})
}
