// Пакет metrics - бизнес-метрики Prometheus сервиса визиток.
// Метрики регистрируются в default registry и обновляются из сервисного слоя.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты поиска визитки
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupMissing  = "missing_id"
	LookupError    = "error"
)

var (
	// CardsCreated - количество успешно созданных визиток.
	CardsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mycard_cards_created_total",
			Help: "Количество созданных визиток",
		},
	)

	// ValidationFailures - ошибки валидации формы по полям.
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mycard_validation_failures_total",
			Help: "Количество ошибок валидации по полям формы",
		},
		[]string{"field"},
	)

	// Lookups - поиски визитки по id с результатом.
	Lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mycard_lookups_total",
			Help: "Количество поисков визитки по идентификатору",
		},
		[]string{"result"},
	)

	// StorageErrors - ошибки хранилища по операциям.
	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mycard_storage_errors_total",
			Help: "Количество ошибок хранилища визиток",
		},
		[]string{"operation"},
	)
)
