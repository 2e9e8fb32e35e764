package view_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"namevalue/internal/domain/service/nameRating"
	"namevalue/internal/domain/value"
	"namevalue/internal/transport/bot/view"
)

func TestValuationMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     value.Name
		contains []string
	}{
		{
			name: "김민수",
			contains: []string{
				"<b>김민수</b>",
				"<b>8,420억</b>",
				"<b>D</b> · 아직 저평가된 보석 같은 이름입니다.",
				"이름만 봐도 재능이 뚝뚝 떨어집니다.",
				"• 프로야구 선수, 배우 등 다양한 동명이인",
			},
		},
		{
			name: "홍길동",
			contains: []string{
				"<b>7,062억</b>",
				"등록된 동명이인 정보가 없어요. 아마도 이 이름의 원조일지도요!",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name.String(), func(t *testing.T) {
			t.Parallel()

			rq := require.New(t)

			msg := view.ValuationMessage(tc.name, nameRating.Classify(tc.name.String()))
			for _, s := range tc.contains {
				rq.Contains(msg, s)
			}

			rq.False(strings.HasSuffix(msg, "\n"))
		})
	}
}

func TestGradesMessage(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	msg := view.GradesMessage()
	rq.Contains(msg, "<b>S</b> 시장 최상위권 프리미엄 이름입니다.")
	rq.Contains(msg, "<b>D</b> 아직 저평가된 보석 같은 이름입니다.")
	rq.Less(strings.Index(msg, "<b>S</b>"), strings.Index(msg, "<b>D</b>"))
}

func TestCardCaption(t *testing.T) {
	t.Parallel()

	require.Equal(t, "김민수 · 8,420억 · D", view.CardCaption("김민수", nameRating.Classify("김민수")))
}
