package quote

import "errors"

var (
	ErrInvalidCategory    = errors.New("categoria inválida")
	ErrUnknownField       = errors.New("campo desconhecido no formulário")
	ErrValidation         = errors.New("formulário com campos inválidos")
	ErrSubmitFailed       = errors.New("falha no envio")
	ErrSubmissionInFlight = errors.New("já existe um envio em curso")
)
