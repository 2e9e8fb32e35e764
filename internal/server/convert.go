package server

import (
	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/service/valuation"
	"namevalue/internal/domain/value"
	"namevalue/internal/view"
	"namevalue/pkg/rest"
)

func newRESTValuation(name value.Name, v entity.Valuation) rest.Valuation {
	style := v.Grade().Style()

	return rest.Valuation{
		Name:             name.String(),
		MarketCap:        v.MarketCap(),
		MarketCapLabel:   view.FormatMarketCap(v.MarketCap()),
		Grade:            style.Label,
		GradeColor:       style.Color,
		GradeDescription: style.Description,
		Comment:          v.Comment(),
		SameName:         v.SameName(),
		CardFilename:     valuation.DownloadFilename(name.String()),
	}
}

func newRESTGrade(style entity.GradeStyle) rest.Grade {
	return rest.Grade{
		Grade:       style.Label,
		Color:       style.Color,
		Description: style.Description,
	}
}
