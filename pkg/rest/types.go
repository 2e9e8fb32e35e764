// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// ValuationRequest Запрос оценки имени
type ValuationRequest struct {
	// Name Имя (хангыль, 2~4 слога)
	Name string `json:"name" validate:"required,max=64"`
}

// Valuation Оценка имени
type Valuation struct {
	Name             string   `json:"name"`
	MarketCap        int      `json:"marketCap"`
	MarketCapLabel   string   `json:"marketCapLabel"`
	Grade            string   `json:"grade"`
	GradeColor       string   `json:"gradeColor"`
	GradeDescription string   `json:"gradeDescription"`
	Comment          string   `json:"comment"`
	SameName         []string `json:"sameName"`
	CardFilename     string   `json:"cardFilename"`
}

// Grade Оценка и её оформление
type Grade struct {
	Grade       string `json:"grade"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
