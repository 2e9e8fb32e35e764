package value

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	NameMinLength = 2
	NameMaxLength = 4

	hangulSyllableFirst = '\uAC00' // 가
	hangulSyllableLast  = '\uD7A3' // 힣

	byteOrderMark = '\uFEFF'
	nextLine      = '\u0085'
)

// InvalidNameMessage показывается пользователю как есть.
const InvalidNameMessage = "한글 이름 2~4글자를 입력해 주세요."

var ErrInvalidName = errors.New(InvalidNameMessage)

// Name корейское имя: 2~4 слога хангыля без пробелов по краям.
type Name string

func (n Name) String() string {
	return string(n)
}

// TrimSpace обрезает пробелы по краям так же, как это делает браузер:
// BOM считается пробелом, U+0085 нет.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	if r == byteOrderMark {
		return true
	}

	return r != nextLine && unicode.IsSpace(r)
}

// ParseName обрезает пробелы и проверяет имя.
func ParseName(raw string) (Name, error) {
	trimmed := TrimSpace(raw)
	if !isHangulName(trimmed) {
		return "", ErrInvalidName
	}

	return Name(trimmed), nil
}

// IsValidName проверяет имя после обрезки пробелов.
func IsValidName(raw string) bool {
	return isHangulName(TrimSpace(raw))
}

func isHangulName(s string) bool {
	length := utf8.RuneCountInString(s)
	if length < NameMinLength || length > NameMaxLength {
		return false
	}

	for _, r := range s {
		if r < hangulSyllableFirst || r > hangulSyllableLast {
			return false
		}
	}

	return true
}
