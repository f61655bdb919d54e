package service

import "errors"

// Ошибки данных, возвращаемых провайдером без изменений
var (
	ErrPayloadInvalid = errors.New("invalid payment payload")
)
