package memory

import (
	"context"
	"sync"

	"mycard-service/internal/model"
	"mycard-service/internal/repository"
)

var _ repository.CardRepository = (*repo)(nil)

type repo struct {
	mu    sync.RWMutex
	cards []model.Card
}

// NewRepository создает новый экземпляр in-memory репозитория
func NewRepository() repository.CardRepository {
	return &repo{}
}

// LoadAll возвращает копию всех визиток в порядке добавления
func (r *repo) LoadAll(ctx context.Context) ([]model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]model.Card, len(r.cards))
	copy(cards, r.cards)

	return cards, nil
}

// FindByID возвращает визитку по её ID
func (r *repo) FindByID(ctx context.Context, id string) (model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, card := range r.cards {
		if card.ID == id {
			return card, nil
		}
	}

	return model.Card{}, repository.ErrCardNotFound
}

// Add добавляет визитку в конец коллекции
func (r *repo) Add(ctx context.Context, card model.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards = append(r.cards, card)

	return nil
}
