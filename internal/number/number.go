// Package number formats counts for display.
package number

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders n with English thousands separators, e.g. 16,000,000.
func Format(n int) string {
	return printer.Sprintf("%d", n)
}
