package sparkline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultColor applies when rules are configured but none matches.
const DefaultColor = "white"

// Comparator is the relation an emphasis rule tests.
type Comparator int

const (
	OpEq Comparator = iota
	OpGt
	OpGe
	OpLt
	OpLe
)

var comparatorNames = map[Comparator]string{
	OpEq: "eq",
	OpGt: "gt",
	OpGe: "ge",
	OpLt: "lt",
	OpLe: "le",
}

func (c Comparator) String() string {
	if s, ok := comparatorNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Comparator(%d)", int(c))
}

// ParseComparator parses eq, gt, ge, lt or le.
func ParseComparator(s string) (Comparator, error) {
	for c, name := range comparatorNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown comparator %q", ErrBadRule, s)
}

// Match reports whether v satisfies the comparison against threshold.
func (c Comparator) Match(v, threshold float64) bool {
	switch c {
	case OpEq:
		return v == threshold
	case OpGt:
		return v > threshold
	case OpGe:
		return v >= threshold
	case OpLt:
		return v < threshold
	case OpLe:
		return v <= threshold
	default:
		return false
	}
}

// Rule colors samples that satisfy Op against Threshold.
type Rule struct {
	Color     string
	Op        Comparator
	Threshold float64
}

func (r Rule) String() string {
	return r.Color + ":" + r.Op.String() + ":" + strconv.FormatFloat(r.Threshold, 'g', -1, 64)
}

var rulePattern = regexp.MustCompile(`^(\w+):(eq|gt|ge|lt|le):(.+)$`)

// ParseRule parses color:comparator:threshold, e.g. "red:gt:5".
func ParseRule(s string) (Rule, error) {
	m := rulePattern.FindStringSubmatch(s)
	if m == nil {
		return Rule{}, fmt.Errorf("%w: %q (want color:eq|gt|ge|lt|le:value)", ErrBadRule, s)
	}
	op, err := ParseComparator(m[2])
	if err != nil {
		return Rule{}, err
	}
	threshold, err := strconv.ParseFloat(strings.TrimSpace(m[3]), 64)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: threshold %q is not a number", ErrBadRule, s, m[3])
	}
	return Rule{Color: m[1], Op: op, Threshold: threshold}, nil
}

// ParseRules parses rules in order and stops at the first malformed one.
func ParseRules(specs []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for _, s := range specs {
		r, err := ParseRule(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// ColorFor returns the color of the first rule matching v, DefaultColor if
// none matches, or "" when no rules are configured.
func ColorFor(rules []Rule, v float64) string {
	if len(rules) == 0 {
		return ""
	}
	for _, r := range rules {
		if r.Op.Match(v, r.Threshold) {
			return r.Color
		}
	}
	return DefaultColor
}
