package entity

// Grade буквенная оценка имени, S > A > B > C > D.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

func (g Grade) String() string {
	return string(g)
}

// GradeStyle как показывать оценку: подпись, цвет круга и строка-описание.
type GradeStyle struct {
	Grade       Grade
	Label       string
	Color       string
	Description string
}

//nolint:gochecknoglobals // read-only table
var gradeStyles = [...]GradeStyle{
	{Grade: GradeS, Label: "S", Color: "#FFD700", Description: "시장 최상위권 프리미엄 이름입니다."},
	{Grade: GradeA, Label: "A", Color: "#7C3AED", Description: "탄탄한 성장성을 가진 우량 이름이에요."},
	{Grade: GradeB, Label: "B", Color: "#3B82F6", Description: "꾸준히 올라갈 잠재력이 큰 이름입니다."},
	{Grade: GradeC, Label: "C", Color: "#22C55E", Description: "조용하지만 알찬 가치주 같은 이름이에요."},
	{Grade: GradeD, Label: "D", Color: "#9CA3AF", Description: "아직 저평가된 보석 같은 이름입니다."},
}

// Style возвращает стиль оценки; неизвестная оценка рисуется как D.
func (g Grade) Style() GradeStyle {
	for _, style := range gradeStyles {
		if style.Grade == g {
			return style
		}
	}

	return gradeStyles[len(gradeStyles)-1]
}

// GradeStyles все оценки от старшей к младшей.
func GradeStyles() []GradeStyle {
	styles := gradeStyles

	return styles[:]
}
