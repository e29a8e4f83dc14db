package grpc

import (
	"strings"

	"mycard-service/internal/converter"
	"mycard-service/internal/service/cards"
)

// CreateCardRequest запрос на создание визитки: поля формы как есть
type CreateCardRequest struct {
	Fields map[string]string `json:"fields"`
}

// CreateCardResponse ответ с созданной визиткой
type CreateCardResponse struct {
	Card *converter.CardDTO `json:"card"`
}

// GetCardRequest запрос визитки по идентификатору
type GetCardRequest struct {
	ID string `json:"id"`
}

// Validate проверяет, что идентификатор передан
func (r *GetCardRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return cards.ErrMissingID
	}
	return nil
}

// GetCardResponse ответ с найденной визиткой
type GetCardResponse struct {
	Card *converter.CardDTO `json:"card"`
}

// WatchCardsRequest запрос на подписку на новые визитки
type WatchCardsRequest struct{}
