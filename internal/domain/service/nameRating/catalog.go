package nameRating

import "slices"

//nolint:gochecknoglobals // read-only catalog, index = hash % len
var comments = [...]string{
	"이름만 봐도 재능이 뚝뚝 떨어집니다.",
	"투자자들이 줄 서서 기다리는 이름이에요.",
	"조용히 있지만 존재감은 시가총액 상위권입니다.",
	"이름만으로도 이미 브랜드 완성!",
	"꾸준히 올라가는 우상향 차트 같은 이름입니다.",
	"한 번 들으면 잊히지 않는 강렬한 이름이에요.",
	"안정적인 배당주 같은 든든한 느낌의 이름입니다.",
	"성장성과 안정성을 모두 잡은 이름이네요.",
	"이름값만큼이나 매력적인 사람이겠어요.",
	"이름만 보고도 '대박'이 느껴집니다.",
}

//nolint:gochecknoglobals // read-only registry
var famousPeople = map[string][]string{
	"김민수": {"프로야구 선수, 배우 등 다양한 동명이인"},
	"김민지": {"아나운서, 가수 등 방송인 다수"},
	"이지은": {"가수 아이유(본명 이지은)"},
	"박지성": {"전 축구선수, 맨체스터 유나이티드 미드필더"},
	"김연아": {"피겨 스케이팅 선수, '피겨 여왕'"},
	"정국":  {"BTS 멤버 정국(본명 전정국)"},
	"지민":  {"BTS 멤버 지민(본명 박지민)"},
}

// Comments каталог комментариев в исходном порядке.
func Comments() []string {
	return slices.Clone(comments[:])
}

// FamousPeople тёзки по точному совпадению имени; пустой срез, если нет.
func FamousPeople(name string) []string {
	people, ok := famousPeople[name]
	if !ok {
		return []string{}
	}

	return slices.Clone(people)
}

// FamousNames все имена из реестра, отсортированные.
func FamousNames() []string {
	names := make([]string, 0, len(famousPeople))
	for name := range famousPeople {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
