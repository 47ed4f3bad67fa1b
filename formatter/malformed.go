package formatter

// MalformedClaimFormatter reports parse failures. There is nothing to
// underline in a line the parser could not make sense of, so the output is
// just the header and the parser's message.
type MalformedClaimFormatter struct{}

func (f *MalformedClaimFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{message .Message}}
`
}
