package rank

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goserg/teambalancer/internal/normalize"
)

const divisionsPerTier = 4

// MaxScore is the score of the highest apex tier.
const MaxScore = 13 * divisionsPerTier

var (
	ErrEmptyInput      = errors.New("empty rank")
	ErrUnknownTier     = errors.New("unknown tier")
	ErrUnknownDivision = errors.New("unknown division")
)

type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse rank %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var tiers = map[string]int{
	"unranked": 0,
	"iron":     1,
	"bronze":   2,
	"silver":   3,
	"gold":     4,
	"platinum": 5,
	"emerald":  6,
	"diamond":  7,
}

// Apex tiers have no divisions.
var apexTiers = map[string]int{
	"master":      11,
	"grandmaster": 12,
	"challenger":  13,
}

var divisions = map[string]int{
	"iv":  0,
	"iii": 1,
	"ii":  2,
	"i":   3,
}

var numeralAliases = map[string]string{
	"1": "i",
	"2": "ii",
	"3": "iii",
	"4": "iv",
}

const defaultDivision = "i"

const (
	tierIndex int = iota
	divisionIndex
)

// Parse converts a rank label such as "Gold II" or "platinum 4" into a score.
// A missing division counts as the strongest one. Tokens past the division are ignored.
func Parse(raw string) (int, error) {
	fields := normalize.Fields(raw)
	if len(fields) == 0 {
		return 0, &ParseError{Input: raw, Err: ErrEmptyInput}
	}
	tier := fields[tierIndex]
	if apex, ok := apexTiers[tier]; ok {
		return apex * divisionsPerTier, nil
	}
	base, ok := tiers[tier]
	if !ok {
		return 0, &ParseError{Input: raw, Err: fmt.Errorf("%w: %s", ErrUnknownTier, tier)}
	}

	division := defaultDivision
	if len(fields) > divisionIndex {
		division = fields[divisionIndex]
		if roman, ok := numeralAliases[division]; ok {
			division = roman
		}
	}
	d, ok := divisions[division]
	if !ok {
		return 0, &ParseError{Input: raw, Err: fmt.Errorf("%w: %s", ErrUnknownDivision, fields[divisionIndex])}
	}
	return base*divisionsPerTier + d, nil
}

// Display title-cases a rank label for output, e.g. "gold ii" -> "Gold Ii".
func Display(raw string) string {
	return cases.Title(language.Und).String(raw)
}
