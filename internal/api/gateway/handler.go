package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"mycard-service/internal/converter"
	"mycard-service/internal/model"
	"mycard-service/internal/repository"
	svc "mycard-service/internal/service"
	"mycard-service/internal/service/cards"
	"mycard-service/internal/validator"
)

// maxFormMemory лимит памяти для multipart формы
const maxFormMemory = 1 << 20

// generalErrorKey ключ общей (не привязанной к полю) ошибки
const generalErrorKey = "general"

// Handler HTTP обработчики визиток
type Handler struct {
	cardService svc.CardService
	logger      *zap.Logger
}

// NewHandler создает HTTP хэндлер визиток
func NewHandler(cardService svc.CardService, logger *zap.Logger) *Handler {
	return &Handler{
		cardService: cardService,
		logger:      logger.Named("http_handler"),
	}
}

// CreateCardResponse ответ на успешное создание визитки
type CreateCardResponse struct {
	ID   string             `json:"id"`
	URL  string             `json:"url"`
	Card *converter.CardDTO `json:"card"`
}

// FormErrorResponse ответ с ошибками формы.
// Values возвращает нормализованные значения, чтобы форму можно было заполнить повторно.
type FormErrorResponse struct {
	Errors map[string]string `json:"errors"`
	Values map[string]string `json:"values,omitempty"`
}

// ErrorResponse ответ с одиночной ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateCard принимает форму создания визитки
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.logger.Warn("invalid form submission", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid form data"})
		return
	}

	fields := make(map[string]string, len(model.FormFields()))
	for _, name := range model.FormFields() {
		fields[name] = r.FormValue(name)
	}

	card, err := h.cardService.Create(r.Context(), fields)
	if err != nil {
		var verrs validator.Errors
		if errors.As(err, &verrs) {
			_, values := validator.Validate(fields)
			writeJSON(w, http.StatusUnprocessableEntity, FormErrorResponse{
				Errors: verrs,
				Values: values,
			})
			return
		}

		h.logger.Error("failed to create card", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FormErrorResponse{
			Errors: map[string]string{generalErrorKey: cards.ErrSaveFailed.Error()},
		})
		return
	}

	dto := converter.ModelToDTO(card)
	writeJSON(w, http.StatusCreated, CreateCardResponse{
		ID:   card.ID,
		URL:  dto.URL,
		Card: dto,
	})
}

// GetCard возвращает визитку по query-параметру id
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	card, err := h.cardService.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, converter.ModelToDTO(card))
	case errors.Is(err, cards.ErrMissingID):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrCardNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "card not found"})
	default:
		h.logger.Error("failed to get card", zap.String("id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// Health простая проверка живости
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// parseForm разбирает urlencoded или multipart тело запроса
func parseForm(r *http.Request) error {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
