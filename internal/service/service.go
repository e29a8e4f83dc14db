package service

import (
	"context"

	"mycard-service/internal/model"
)

// CardService интерфейс бизнес-логики работы с визитками
type CardService interface {
	// Create проверяет поля формы и создает новую визитку.
	// При ошибках валидации возвращает validator.Errors.
	Create(ctx context.Context, fields map[string]string) (model.Card, error)

	// Get возвращает визитку по её ID
	Get(ctx context.Context, id string) (model.Card, error)

	// Watch возвращает канал новых визиток; канал закрывается после отмены ctx
	Watch(ctx context.Context) <-chan model.Card
}
