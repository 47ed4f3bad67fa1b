package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gnoverse/canon/internal"
	tt "github.com/gnoverse/canon/internal/types"
)

func init() {
	color.NoColor = true
}

func TestGenerateFormattedIssue(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{
			"a + b = b + a",
			"2 + 3 = 6",
		},
	}

	issues := []tt.Issue{
		{
			Rule:       UndecidedClaim,
			Filename:   "claims.sum",
			Severity:   tt.SeverityWarning,
			Start:      tt.Position{Line: 1, Column: 1},
			End:        tt.Position{Line: 1, Column: 13},
			Message:    "claim could not be decided",
			Suggestion: "lhs canonical: ((0 + a) + b)\nrhs canonical: ((0 + b) + a)",
			Note:       "only associativity is assumed",
		},
		{
			Rule:     UnbalancedClaim,
			Filename: "claims.sum",
			Severity: tt.SeverityError,
			Start:    tt.Position{Line: 2, Column: 1},
			End:      tt.Position{Line: 2, Column: 9},
			Message:  "left evaluates to 5, right to 6",
		},
	}

	expected := `warning: undecided-claim
 --> claims.sum:1:1
  |
1 | a + b = b + a
  | ~~~~~~~~~~~~~
  = claim could not be decided

Canonical forms:
  |
1 | lhs canonical: ((0 + a) + b)
2 | rhs canonical: ((0 + b) + a)
  |

Note: only associativity is assumed

error: unbalanced-claim
 --> claims.sum:2:1
  |
2 | 2 + 3 = 6
  | ~~~~~~~~~
  = left evaluates to 5, right to 6

`

	result := GenerateFormattedIssue(issues, code)
	assert.Equal(t, expected, result)
}

func TestGenerateFormattedIssueMalformed(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{"a + = b"},
	}

	issues := []tt.Issue{
		{
			Rule:     MalformedClaim,
			Filename: "claims.sum",
			Severity: tt.SeverityError,
			Start:    tt.Position{Line: 1, Column: 1},
			End:      tt.Position{Line: 1, Column: 7},
			Message:  "expected expression after '+'",
		},
	}

	expected := `error: malformed-claim
 --> claims.sum:1:1
expected expression after '+'

`

	result := GenerateFormattedIssue(issues, code)
	assert.Equal(t, expected, result)
}

func TestGenerateFormattedIssueIndented(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{
			"    1 + 1 = 3",
		},
	}

	issues := []tt.Issue{
		{
			Rule:     UnbalancedClaim,
			Filename: "claims.sum",
			Severity: tt.SeverityError,
			Start:    tt.Position{Line: 1, Column: 5},
			End:      tt.Position{Line: 1, Column: 13},
			Message:  "left evaluates to 2, right to 3",
		},
	}

	expected := `error: unbalanced-claim
 --> claims.sum:1:5
  |
1 | 1 + 1 = 3
  | ~~~~~~~~~
  = left evaluates to 2, right to 3

`

	result := GenerateFormattedIssue(issues, code)
	assert.Equal(t, expected, result)
}

func TestCalculateVisualColumn(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		line     string
		column   int
		expected int
	}{
		{"no tabs", "1 + 1 = 2", 5, 4},
		{"leading tab", "\ta + b", 2, 8},
		{"column beyond line", "a = a", 10, 5},
		{"negative column", "a = a", -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, calculateVisualColumn(tc.line, tc.column))
		})
	}
}

func TestFindCommonIndent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"no indent", []string{"a = a", "b = b"}, ""},
		{"shared spaces", []string{"    a = a", "    b = b"}, "    "},
		{"mixed depth", []string{"    a = a", "  b = b"}, "  "},
		{"blank lines ignored", []string{"  a = a", "", "  b = b"}, "  "},
		{"empty input", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, findCommonIndent(tc.lines))
		})
	}
}
