package nameRating

import (
	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/value"
)

const marketCapSpread = entity.MarketCapMax - entity.MarketCapMin + 1 // 9900

// Classify оценивает имя. Функция тотальная: валидация делается раньше,
// здесь только обрезаются пробелы.
func Classify(name string) entity.Valuation {
	trimmed := value.TrimSpace(name)
	h := Hash(trimmed)

	return entity.NewValuation(
		MarketCap(h),
		GradeFor(h),
		comments[h%int64(len(comments))],
		FamousPeople(trimmed),
	)
}

// MarketCap 100 + h % 9900, всегда в [100, 9999].
func MarketCap(h int64) int {
	return entity.MarketCapMin + int(h%marketCapSpread)
}

// GradeFor оценка по h % 100. Пороги включительные, проверяются сверху вниз.
func GradeFor(h int64) entity.Grade {
	n := h % 100

	switch {
	case n >= 90:
		return entity.GradeS
	case n >= 75:
		return entity.GradeA
	case n >= 55:
		return entity.GradeB
	case n >= 35:
		return entity.GradeC
	default:
		return entity.GradeD
	}
}
