package view

import (
	"fmt"
	"html/template"
	"io"
)

// ExportFailedMessage уведомление, когда карточку не удалось сохранить.
const ExportFailedMessage = "이미지 저장 중 문제가 발생했어요. 잠시 후 다시 시도해 주세요."

// Page содержимое страницы: форма ввода или карточка, если задан Card.
type Page struct {
	Input        string
	Error        string
	Card         *CardData
	ExportFailed bool
	DownloadURL  string
	CountUpURL   string
}

type pageData struct {
	Page
	Stylesheet          template.CSS
	ExportFailedMessage string
}

// RenderPage карточка на странице всегда живая: счётчик крутится с нуля.
func RenderPage(w io.Writer, page Page) error {
	if page.Card != nil {
		card := *page.Card
		card.Live = true
		page.Card = &card
	}

	data := pageData{
		Page:                page,
		Stylesheet:          cardStylesheet,
		ExportFailedMessage: ExportFailedMessage,
	}

	if err := templates.ExecuteTemplate(w, "page.html", data); err != nil {
		return fmt.Errorf("templates.ExecuteTemplate: %w", err)
	}

	return nil
}
