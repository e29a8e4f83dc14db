package cards

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"mycard-service/internal/idgen"
	"mycard-service/internal/metrics"
	"mycard-service/internal/model"
	"mycard-service/internal/repository"
	svc "mycard-service/internal/service"
	"mycard-service/internal/validator"
)

var _ svc.CardService = (*service)(nil)

type service struct {
	cardRepository repository.CardRepository
	ids            idgen.Generator
	events         *EventService
	now            func() time.Time
	logger         *zap.Logger
}

// Option настраивает сервис визиток
type Option func(*service)

// WithIDGenerator задает генератор идентификаторов
func WithIDGenerator(g idgen.Generator) Option {
	return func(s *service) { s.ids = g }
}

// WithClock задает источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithEvents задает шину событий создания визиток
func WithEvents(events *EventService) Option {
	return func(s *service) { s.events = events }
}

// WithLogger задает логгер
func WithLogger(logger *zap.Logger) Option {
	return func(s *service) { s.logger = logger }
}

// NewCardService создает новый экземпляр сервиса для работы с визитками
func NewCardService(cardRepository repository.CardRepository, opts ...Option) svc.CardService {
	s := &service{
		cardRepository: cardRepository,
		ids:            idgen.New(),
		events:         NewEventService(),
		now:            time.Now,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("card_service")

	return s
}

// Create проверяет поля формы, создает визитку и сохраняет её в репозитории
func (s *service) Create(ctx context.Context, fields map[string]string) (model.Card, error) {
	errs, clean := validator.Validate(fields)
	if len(errs) > 0 {
		for _, field := range errs.Fields() {
			metrics.ValidationFailures.WithLabelValues(field).Inc()
		}
		s.logger.Debug("card form rejected", zap.Strings("fields", errs.Fields()))
		return model.Card{}, errs
	}

	card := model.Card{
		ID:        s.ids.Generate(),
		Name:      clean[model.FieldFullName],
		JobTitle:  clean[model.FieldJobTitle],
		Bio:       model.OptionalString(clean[model.FieldBio]),
		Email:     clean[model.FieldEmail],
		Phone:     clean[model.FieldPhone],
		LinkedIn:  model.OptionalString(clean[model.FieldLinkedIn]),
		GitHub:    model.OptionalString(clean[model.FieldGitHub]),
		Theme:     model.Theme(clean[model.FieldTheme]),
		CreatedAt: model.FormatCreatedAt(s.now()),
	}

	if err := card.Validate(); err != nil {
		return model.Card{}, fmt.Errorf("card.Validate: %w", err)
	}

	if err := s.cardRepository.Add(ctx, card); err != nil {
		metrics.StorageErrors.WithLabelValues("add").Inc()
		s.logger.Error("failed to save card", zap.String("id", card.ID), zap.Error(err))
		return model.Card{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	metrics.CardsCreated.Inc()
	s.logger.Info("card created", zap.String("id", card.ID), zap.String("theme", string(card.Theme)))
	s.events.Publish(card)

	return card, nil
}

// Get возвращает визитку по её ID
func (s *service) Get(ctx context.Context, id string) (model.Card, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		metrics.Lookups.WithLabelValues(metrics.LookupMissing).Inc()
		return model.Card{}, ErrMissingID
	}

	card, err := s.cardRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			metrics.Lookups.WithLabelValues(metrics.LookupNotFound).Inc()
		} else {
			metrics.Lookups.WithLabelValues(metrics.LookupError).Inc()
			metrics.StorageErrors.WithLabelValues("find").Inc()
		}
		return model.Card{}, err
	}

	metrics.Lookups.WithLabelValues(metrics.LookupFound).Inc()
	return card, nil
}

// Watch подписывается на создание визиток до отмены ctx
func (s *service) Watch(ctx context.Context) <-chan model.Card {
	sub := s.events.Subscribe()
	out := make(chan model.Card)

	go func() {
		defer close(out)
		defer s.events.Unsubscribe(sub)

		for {
			select {
			case <-ctx.Done():
				return
			case card := <-sub:
				select {
				case out <- card:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
