package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Names are personal data and never leave the process unmasked, neither in
// JSON bodies, nor in form bodies, nor in query strings.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile(`(?s)("name":\s?").+?(")`),
	regexp.MustCompile(`(?s)("input":\s?").+?(")`),
	regexp.MustCompile(`([?&]name=)[^&\s]+()`),
	regexp.MustCompile(`([?&]input=)[^&\s]+()`),
	regexp.MustCompile(`(?m)(^name=)[^&\s]+()`),
	regexp.MustCompile(`(/bot)[0-9]+:[A-Za-z0-9_-]+(/)`),
	regexp.MustCompile(`(?s)("text":\s?").+?(")`),
	regexp.MustCompile(`(?s)("caption":\s?").+?(")`),
	regexp.MustCompile(`(?s)(name="caption"\r\n\r\n).+?(\r\n)`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
