package models

// LintResult contains the result of checking one document against the
// content rules: a front matter header must precede a non-empty body, and
// every document has a title.
type LintResult struct {
	Path     string   `json:"path"`
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
