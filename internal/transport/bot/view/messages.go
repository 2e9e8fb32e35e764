package view

import (
	"fmt"
	"html"
	"strings"

	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/value"
	cardview "namevalue/internal/view"
)

const StartMessage = `💰 <b>이름값 계산기</b>

한글 이름 2~4글자를 보내 주세요.
이름 시가총액, 등급, 한 줄 코멘트와 동명이인 유명인을 알려 드리고 결과 카드 이미지도 함께 보내 드려요.

/grades 등급 안내`

const (
	ExportFailedMessage = cardview.ExportFailedMessage
	InvalidNameMessage  = value.InvalidNameMessage
)

// ValuationMessage результат оценки в HTML-разметке Telegram.
func ValuationMessage(name value.Name, v entity.Valuation) string {
	style := v.Grade().Style()

	var sb strings.Builder

	fmt.Fprintf(&sb, "✨ <b>%s</b> 📈\n\n", html.EscapeString(name.String()))
	fmt.Fprintf(&sb, "이름 시가총액: <b>%s</b>\n", cardview.FormatMarketCap(v.MarketCap()))
	fmt.Fprintf(&sb, "등급: <b>%s</b> · %s\n\n", style.Label, style.Description)
	fmt.Fprintf(&sb, "💡 %s\n\n", v.Comment())
	sb.WriteString("👥 <b>동명이인 유명인</b>\n")

	sameName := v.SameName()
	if len(sameName) == 0 {
		sb.WriteString("등록된 동명이인 정보가 없어요. 아마도 이 이름의 원조일지도요!")
	}

	for _, person := range sameName {
		fmt.Fprintf(&sb, "• %s\n", html.EscapeString(person))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// GradesMessage таблица оценок от S до D.
func GradesMessage() string {
	var sb strings.Builder

	sb.WriteString("📊 <b>이름 등급</b>\n")

	for _, style := range entity.GradeStyles() {
		fmt.Fprintf(&sb, "\n<b>%s</b> %s", style.Label, style.Description)
	}

	return sb.String()
}

// CardCaption подпись к картинке карточки.
func CardCaption(name value.Name, v entity.Valuation) string {
	return fmt.Sprintf("%s · %s · %s", name, cardview.FormatMarketCap(v.MarketCap()), v.Grade())
}
