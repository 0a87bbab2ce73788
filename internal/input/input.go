// Package input turns text into sparkline samples.
package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bamsammich/spark/internal/sparkline"
)

// missingTokens spell a gap in the data.
var missingTokens = map[string]bool{
	"none": true,
	"null": true,
	"nan":  true,
	"na":   true,
	"_":    true,
}

// ParseSample parses a single number or a missing-value token.
func ParseSample(s string) (sparkline.Sample, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sparkline.Sample{}, fmt.Errorf("empty value")
	}
	if missingTokens[strings.ToLower(s)] {
		return sparkline.Missing(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return sparkline.Sample{}, fmt.Errorf("invalid value: %q", s)
	}
	return sparkline.Value(v), nil
}

// ParseArgs parses command-line values. Each argument may itself hold
// several comma separated values.
func ParseArgs(args []string) ([]sparkline.Sample, error) {
	var out []sparkline.Sample
	for _, arg := range args {
		for _, field := range splitFields(arg) {
			s, err := ParseSample(field)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// Read parses whitespace or comma separated values from r. Lines starting
// with # are skipped.
func Read(r io.Reader) ([]sparkline.Sample, error) {
	var out []sparkline.Sample
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range splitFields(line) {
			s, err := ParseSample(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			out = append(out, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return out, nil
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
