package detail

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TestSuitesPath is the settings page listing all test suites.
const TestSuitesPath = "/settings/data-quality/test-suites"

// BreadcrumbLink is one segment of the page title. An empty URL marks the
// current page.
type BreadcrumbLink struct {
	Name string
	URL  string
}

// Breadcrumb builds the title links for a suite. fqn wins over name.
func Breadcrumb(fqn, name string) []BreadcrumbLink {
	title := fqn
	if title == "" {
		title = name
	}
	return []BreadcrumbLink{
		{Name: "Test Suites", URL: TestSuitesPath},
		{Name: StartCase(title), URL: ""},
	}
}

// StartCase splits s into words and title-cases each one, so
// "sample_data.ecommerce_db" becomes "Sample Data Ecommerce Db".
func StartCase(s string) string {
	caser := cases.Title(language.Und)
	words := splitWords(s)
	for i, w := range words {
		words[i] = caser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// splitWords breaks on punctuation and spaces, on lower-to-upper case changes,
// before the last capital of an acronym followed by lowercase, and between
// letters and digits.
func splitWords(s string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
