// Package view рисует карточку результата: живую на странице и автономным
// документом для выгрузки в PNG.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"image/color"

	"github.com/samber/lo"

	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/value"
)

const (
	CardID       = "card"
	CardSelector = "#" + CardID
	CardWidth    = 400
)

// CardBackground фон карточки, на него заливается снимок.
//
//nolint:gochecknoglobals
var CardBackground = color.RGBA{R: 0xf8, G: 0xf8, B: 0xf8, A: 0xff}

//go:embed templates
var templatesFS embed.FS

//nolint:gochecknoglobals
var (
	cardStylesheet = template.CSS(lo.Must(templatesFS.ReadFile("templates/card.css")))

	templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))
)

// CardData данные шаблона карточки.
type CardData struct {
	ID             string
	Name           string
	Grade          entity.GradeStyle
	MarketCap      int
	MarketCapLabel string
	Comment        string
	SameName       []string
	Live           bool
}

func NewCardData(name value.Name, v entity.Valuation) CardData {
	return CardData{
		ID:             CardID,
		Name:           name.String(),
		Grade:          v.Grade().Style(),
		MarketCap:      v.MarketCap(),
		MarketCapLabel: FormatMarketCap(v.MarketCap()),
		Comment:        v.Comment(),
		SameName:       v.SameName(),
	}
}

// StartLabel с чего начинается счётчик на живой карточке.
func (c CardData) StartLabel() string {
	return FormatMarketCap(0)
}

// CardDocument отдельная HTML-страница только с карточкой, все стили
// внутри style-атрибутов. Капитализация всегда итоговая.
type CardDocument struct {
	Name       value.Name
	HTML       string
	Selector   string
	Width      int
	Background color.RGBA
}

type exportData struct {
	CardData
	Stylesheet template.CSS
	Background string
}

// BuildCardDocument собирает карточку заново вне страницы для снимка.
func BuildCardDocument(name value.Name, v entity.Valuation) (CardDocument, error) {
	data := exportData{
		CardData:   NewCardData(name, v),
		Stylesheet: cardStylesheet,
		Background: hexColor(CardBackground),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "export.html", data); err != nil {
		return CardDocument{}, fmt.Errorf("templates.ExecuteTemplate: %w", err)
	}

	document, err := InlineStyles(buf.String())
	if err != nil {
		return CardDocument{}, fmt.Errorf("InlineStyles: %w", err)
	}

	return CardDocument{
		Name:       name,
		HTML:       document,
		Selector:   CardSelector,
		Width:      CardWidth,
		Background: CardBackground,
	}, nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
