package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity is the severity assigned to a reported issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// UnmarshalYAML implements custom YAML deserialization for Severity.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch strings.ToLower(raw) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity: %q", raw)
	}
	return nil
}

// ConfigRule carries per-rule configuration.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Position locates a point in a claim file.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Issue represents a finding about a claim in a claim file.
type Issue struct {
	Rule       string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Severity   Severity
	Start      Position
	End        Position
}
