package repository

import (
	"context"
	"errors"

	"mycard-service/internal/model"
)

// ErrCardNotFound возвращается, когда визитка не найдена
var ErrCardNotFound = errors.New("card not found")

// CardRepository интерфейс для работы с визитками в хранилище.
// Хранилище поддерживает только добавление и чтение.
type CardRepository interface {
	// LoadAll возвращает все визитки в порядке добавления
	LoadAll(ctx context.Context) ([]model.Card, error)

	// FindByID возвращает визитку по её ID или ErrCardNotFound
	FindByID(ctx context.Context, id string) (model.Card, error)

	// Add добавляет визитку в конец коллекции
	Add(ctx context.Context, card model.Card) error
}
