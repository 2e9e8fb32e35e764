package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals
var korean = message.NewPrinter(language.Korean)

// FormatMarketCap 8420 -> "8,420억".
func FormatMarketCap(value int) string {
	return korean.Sprintf("%d억", value)
}
