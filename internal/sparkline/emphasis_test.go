package sparkline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	r, err := ParseRule("red:gt:5")
	require.NoError(t, err)
	assert.Equal(t, Rule{Color: "red", Op: OpGt, Threshold: 5}, r)
	assert.Equal(t, "red:gt:5", r.String())

	r, err = ParseRule("green:le:-2.5")
	require.NoError(t, err)
	assert.Equal(t, Rule{Color: "green", Op: OpLe, Threshold: -2.5}, r)

	r, err = ParseRule("red:gt: 5 ")
	require.NoError(t, err)
	assert.Equal(t, Rule{Color: "red", Op: OpGt, Threshold: 5}, r)
}

func TestParseRuleInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"red",
		"red:gt",
		"red:ne:5",
		"red:gt:five",
		"red:gt: ",
		":gt:5",
		"dark-red:gt:5",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseRule(s)
			assert.ErrorIs(t, err, ErrBadRule)
		})
	}
}

func TestParseRulesStopsAtFirstError(t *testing.T) {
	_, err := ParseRules([]string{"red:gt:5", "blue:xx:1"})
	assert.ErrorIs(t, err, ErrBadRule)

	rules, err := ParseRules([]string{"red:gt:5", "blue:lt:1"})
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}

func TestComparatorMatch(t *testing.T) {
	tests := []struct {
		op   Comparator
		v    float64
		want bool
	}{
		{OpEq, 5, true},
		{OpEq, 5.1, false},
		{OpGt, 5, false},
		{OpGt, 6, true},
		{OpGe, 5, true},
		{OpGe, 4, false},
		{OpLt, 4, true},
		{OpLt, 5, false},
		{OpLe, 5, true},
		{OpLe, 6, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.Match(tt.v, 5), "%s %g", tt.op, tt.v)
	}
}

func TestColorFor(t *testing.T) {
	rules := []Rule{
		{Color: "red", Op: OpGt, Threshold: 5},
		{Color: "blue", Op: OpGt, Threshold: 2},
	}
	assert.Equal(t, "red", ColorFor(rules, 9), "first match wins")
	assert.Equal(t, "blue", ColorFor(rules, 3))
	assert.Equal(t, DefaultColor, ColorFor(rules, 1))
	assert.Equal(t, "", ColorFor(nil, 9))
}
