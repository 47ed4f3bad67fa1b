package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/gnoverse/canon/internal/sum"
	"github.com/gnoverse/canon/internal/types"
	"github.com/gnoverse/canon/parse"
)

// Rule names reported by the engine.
const (
	RuleUnbalancedClaim = "unbalanced-claim"
	RuleUndecidedClaim  = "undecided-claim"
	RuleMalformedClaim  = "malformed-claim"
)

// defaultSeverities maps each rule to its severity when no config overrides it.
var defaultSeverities = map[string]types.Severity{
	RuleUnbalancedClaim: types.SeverityError,
	RuleUndecidedClaim:  types.SeverityWarning,
	RuleMalformedClaim:  types.SeverityError,
}

// Engine checks the claims of a claim file and reports issues.
type Engine struct {
	checker      *sum.Checker
	severities   map[string]types.Severity
	ignoredRules map[string]bool
	cache        *Cache

	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching bool
}

// NewEngine creates a new claim-checking engine.
func NewEngine(config sum.EvalConfig, rules map[string]types.ConfigRule) (*Engine, error) {
	engine := &Engine{
		checker:      sum.NewWithConfig(config),
		severities:   make(map[string]types.Severity),
		ignoredRules: make(map[string]bool),
	}

	for rule, severity := range defaultSeverities {
		engine.severities[rule] = severity
	}
	for rule, cfg := range rules {
		if _, known := defaultSeverities[rule]; !known {
			// Unknown rule, continue to the next one
			continue
		}
		if cfg.Severity == types.SeverityOff {
			engine.IgnoreRule(rule)
			continue
		}
		engine.severities[rule] = cfg.Severity
	}

	return engine, nil
}

// IgnoreRule suppresses all issues of the given rule.
func (e *Engine) IgnoreRule(rule string) {
	e.ignoredRules[rule] = true
}

// EnableCache makes Run skip files whose cached results are still valid.
// configPath invalidates the cache when the configuration file changes.
func (e *Engine) EnableCache(cacheDir, configPath string) error {
	cache, err := NewCache(cacheDir, configPath)
	if err != nil {
		return err
	}
	e.cache = cache
	return nil
}

// Run checks every claim in the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]types.Issue, error) {
	if e.cache != nil {
		if issues, ok := e.cache.Get(filename); ok {
			return issues, nil
		}
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}

	issues := e.checkClaims(filename, source)
	if e.cache != nil {
		if err := e.cache.Set(filename, issues); err != nil {
			return issues, nil // stale cache is not a check failure
		}
	}
	return issues, nil
}

// RunSource checks claims read from an in-memory buffer.
func (e *Engine) RunSource(source []byte) ([]types.Issue, error) {
	return e.checkClaims("<source>", source), nil
}

// checkClaims walks the claim file line by line. Each non-empty,
// non-comment line is one claim of the form "lhs = rhs".
func (e *Engine) checkClaims(filename string, source []byte) []types.Issue {
	var issues []types.Issue

	lines := strings.Split(string(source), "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pos := types.Position{Line: i + 1, Column: 1}
		end := types.Position{Line: i + 1, Column: len(raw)}

		lhs, rhs, err := parse.Claim(line)
		if err != nil {
			issues = e.appendIssue(issues, types.Issue{
				Rule:     RuleMalformedClaim,
				Filename: filename,
				Message:  err.Error(),
				Start:    pos,
				End:      end,
			})
			continue
		}

		report := e.checker.Verify(lhs, rhs)
		switch report.Result {
		case sum.Equivalent:
			// discharged

		case sum.NotEquivalent:
			issues = e.appendIssue(issues, types.Issue{
				Rule:       RuleUnbalancedClaim,
				Filename:   filename,
				Message:    report.Detail,
				Suggestion: canonicalSuggestion(report),
				Start:      pos,
				End:        end,
			})

		case sum.Unknown:
			issues = e.appendIssue(issues, types.Issue{
				Rule:       RuleUndecidedClaim,
				Filename:   filename,
				Message:    report.Detail,
				Suggestion: canonicalSuggestion(report),
				Note:       "only reassociation of additions is decided automatically; commuted or opaque operands need a manual argument",
				Start:      pos,
				End:        end,
			})
		}
	}

	return issues
}

func (e *Engine) appendIssue(issues []types.Issue, issue types.Issue) []types.Issue {
	if e.ignoredRules[issue.Rule] {
		return issues
	}
	issue.Severity = e.severities[issue.Rule]
	return append(issues, issue)
}

// canonicalSuggestion renders the canonical chains of both sides, which is
// what a reader needs to see why the claim did not discharge.
func canonicalSuggestion(report sum.VerificationReport) string {
	if report.LHS == nil || report.RHS == nil {
		return ""
	}
	return "lhs canonical: " + report.LHS.String() + "\nrhs canonical: " + report.RHS.String()
}

// SourceCode stores the content of a claim file as lines.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a SourceCode.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}
