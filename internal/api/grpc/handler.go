package grpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"mycard-service/internal/converter"
	"mycard-service/internal/repository"
	svc "mycard-service/internal/service"
	"mycard-service/internal/service/cards"
	"mycard-service/internal/validator"
)

// errorDomain домен ошибок в errdetails.ErrorInfo
const errorDomain = "mycard.v1"

var _ CardsServiceServer = (*Handler)(nil)

// Handler реализует gRPC сервер для CardsService
type Handler struct {
	cardService svc.CardService
	// serverCtx отменяется при остановке сервера, чтобы стримы завершились
	serverCtx context.Context
}

// NewHandler создает новый экземпляр gRPC хэндлера
func NewHandler(cardService svc.CardService, serverCtx context.Context) *Handler {
	if serverCtx == nil {
		serverCtx = context.Background()
	}
	return &Handler{
		cardService: cardService,
		serverCtx:   serverCtx,
	}
}

// CreateCard проверяет поля формы и создает визитку
func (h *Handler) CreateCard(ctx context.Context, req *CreateCardRequest) (*CreateCardResponse, error) {
	card, err := h.cardService.Create(ctx, req.Fields)
	if err != nil {
		return nil, handleError(err, "")
	}

	return &CreateCardResponse{
		Card: converter.ModelToDTO(card),
	}, nil
}

// GetCard возвращает визитку по идентификатору
func (h *Handler) GetCard(ctx context.Context, req *GetCardRequest) (*GetCardResponse, error) {
	card, err := h.cardService.Get(ctx, req.ID)
	if err != nil {
		return nil, handleError(err, req.ID)
	}

	return &GetCardResponse{
		Card: converter.ModelToDTO(card),
	}, nil
}

// WatchCards отправляет клиенту каждую новую визитку до отключения клиента
// или остановки сервера
func (h *Handler) WatchCards(req *WatchCardsRequest, stream CardsServiceWatchCardsServer) error {
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	stop := context.AfterFunc(h.serverCtx, cancel)
	defer stop()

	for card := range h.cardService.Watch(ctx) {
		if err := stream.Send(converter.ModelToDTO(card)); err != nil {
			return err
		}
	}

	if h.serverCtx.Err() != nil {
		return status.Error(codes.Unavailable, "server is shutting down")
	}
	return status.FromContextError(stream.Context().Err()).Err()
}

// handleError конвертирует внутренние ошибки в gRPC статусы с детализацией
func handleError(err error, id string) error {
	if err == nil {
		return nil
	}

	var verrs validator.Errors
	switch {
	case errors.As(err, &verrs):
		badRequest := &errdetails.BadRequest{}
		for _, field := range verrs.Fields() {
			badRequest.FieldViolations = append(badRequest.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       field,
				Description: verrs[field],
			})
		}
		return withDetails(status.New(codes.InvalidArgument, "validation failed"), badRequest)

	case errors.Is(err, cards.ErrMissingID):
		return withDetails(status.New(codes.InvalidArgument, err.Error()), &errdetails.ErrorInfo{
			Reason: "MISSING_ID",
			Domain: errorDomain,
		})

	case errors.Is(err, repository.ErrCardNotFound):
		return withDetails(status.New(codes.NotFound, "card not found"), &errdetails.ErrorInfo{
			Reason:   "CARD_NOT_FOUND",
			Domain:   errorDomain,
			Metadata: map[string]string{"id": id},
		})

	case errors.Is(err, cards.ErrSaveFailed):
		return withDetails(status.New(codes.Internal, cards.ErrSaveFailed.Error()), &errdetails.ErrorInfo{
			Reason: "SAVE_FAILED",
			Domain: errorDomain,
		})
	}

	// Все остальные ошибки - Internal
	return withDetails(status.New(codes.Internal, "internal error"), &errdetails.ErrorInfo{
		Reason: "INTERNAL_ERROR",
		Domain: errorDomain,
	})
}

// withDetails добавляет детали к статусу; при неудаче возвращает статус без деталей
func withDetails(st *status.Status, details ...protoadapt.MessageV1) error {
	detailed, err := st.WithDetails(details...)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
