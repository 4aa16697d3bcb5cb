// Package secrets checks diff text for common credential shapes before it is
// sent to a model or committed.
//
// The check is advisory only. It recognises a small fixed set of patterns and
// is not an exhaustive or cryptographic secret detector: credentials in any
// other format pass through undetected.
package secrets

import "regexp"

// Finding is the result of scanning a piece of text.
type Finding struct {
	Safe        bool
	Description string
}

// Rule is one credential signature.
type Rule struct {
	Description string
	Pattern     *regexp.Regexp
}

// DefaultRules is the ordered list evaluated by Scan. The first match wins.
var DefaultRules = []Rule{
	{
		Description: "Generic API token (sk_/pk_/gsk_ prefix)",
		Pattern:     regexp.MustCompile(`(?:sk|pk|gsk)_[A-Za-z0-9]{40,}`),
	},
	{
		Description: "API key assignment",
		Pattern:     regexp.MustCompile(`(?i)API_KEY\s*[:=]\s*["'][^"'\r\n]{16,}["']`),
	},
	{
		Description: "Secret key assignment",
		Pattern:     regexp.MustCompile(`(?i)SECRET_KEY\s*[:=]\s*["'][^"'\r\n]{16,}["']`),
	},
}

// Scanner evaluates an ordered rule list against text.
type Scanner struct {
	rules []Rule
}

// NewScanner creates a Scanner over the given rules, in order.
func NewScanner(rules []Rule) *Scanner {
	return &Scanner{rules: rules}
}

// Scan returns the first rule that matches text, or a safe Finding.
func (s *Scanner) Scan(text string) Finding {
	for _, rule := range s.rules {
		if rule.Pattern.MatchString(text) {
			return Finding{Safe: false, Description: rule.Description}
		}
	}
	return Finding{Safe: true}
}

var defaultScanner = NewScanner(DefaultRules)

// Scan checks text against DefaultRules.
func Scan(text string) Finding {
	return defaultScanner.Scan(text)
}
