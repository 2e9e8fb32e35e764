package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	InvalidName  failure.ErrorCode = "InvalidName"  // не 2~4 слога хангыля
	ExportFailed failure.ErrorCode = "ExportFailed" // карточку не удалось растеризовать
)
