package nameRating

import "unicode/utf16"

// Hash детерминированный хеш строки: acc = acc*31 + code по UTF-16 юнитам
// с переполнением int32, в конце модуль. Пустая строка даёт 0.
//
// Результат int64, потому что |math.MinInt32| не помещается в int32.
func Hash(s string) int64 {
	var acc int32

	for _, code := range utf16.Encode([]rune(s)) {
		acc = acc*31 + int32(code)
	}

	h := int64(acc)
	if h < 0 {
		h = -h
	}

	return h
}
