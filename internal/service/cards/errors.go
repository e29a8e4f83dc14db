package cards

import "errors"

var (
	// ErrMissingID возвращается, когда идентификатор визитки не передан
	ErrMissingID = errors.New("card id was not provided")

	// ErrSaveFailed возвращается, когда визитку не удалось сохранить
	ErrSaveFailed = errors.New("failed to save the card, please try again")
)
