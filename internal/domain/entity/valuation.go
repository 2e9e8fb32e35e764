package entity

import "slices"

const (
	MarketCapMin = 100
	MarketCapMax = 9999
)

// Valuation результат оценки имени. Создаётся один раз и не меняется.
type Valuation struct {
	marketCap int
	grade     Grade
	comment   string
	sameName  []string
}

func NewValuation(marketCap int, grade Grade, comment string, sameName []string) Valuation {
	return Valuation{
		marketCap: marketCap,
		grade:     grade,
		comment:   comment,
		sameName:  slices.Clone(sameName),
	}
}

// MarketCap капитализация в 억, от 100 до 9999.
func (v Valuation) MarketCap() int {
	return v.marketCap
}

func (v Valuation) Grade() Grade {
	return v.grade
}

func (v Valuation) Comment() string {
	return v.comment
}

// SameName известные тёзки; копия, пустой срез если никого нет.
func (v Valuation) SameName() []string {
	if len(v.sameName) == 0 {
		return []string{}
	}

	return slices.Clone(v.sameName)
}

// Equal сравнивает две оценки по значению.
func (v Valuation) Equal(other Valuation) bool {
	return v.marketCap == other.marketCap &&
		v.grade == other.grade &&
		v.comment == other.comment &&
		slices.Equal(v.sameName, other.sameName)
}
