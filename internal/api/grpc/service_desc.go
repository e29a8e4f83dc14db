package grpc

import (
	"context"

	"google.golang.org/grpc"

	"mycard-service/internal/converter"
)

// ServiceName полное имя gRPC сервиса
const ServiceName = "mycard.v1.CardsService"

// Полные имена методов CardsService
const (
	CreateCardMethod = "/" + ServiceName + "/CreateCard"
	GetCardMethod    = "/" + ServiceName + "/GetCard"
	WatchCardsMethod = "/" + ServiceName + "/WatchCards"
)

// CardsServiceServer серверная часть CardsService
type CardsServiceServer interface {
	CreateCard(context.Context, *CreateCardRequest) (*CreateCardResponse, error)
	GetCard(context.Context, *GetCardRequest) (*GetCardResponse, error)
	WatchCards(*WatchCardsRequest, CardsServiceWatchCardsServer) error
}

// CardsServiceWatchCardsServer серверный стрим новых визиток
type CardsServiceWatchCardsServer interface {
	Send(*converter.CardDTO) error
	grpc.ServerStream
}

type watchCardsServer struct {
	grpc.ServerStream
}

func (s *watchCardsServer) Send(card *converter.CardDTO) error {
	return s.ServerStream.SendMsg(card)
}

// CardsServiceDesc описание сервиса для grpc.Server.
// Сообщения - обычные Go-структуры, кодируются JSON-кодеком.
var CardsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CardsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCard",
			Handler:    createCardHandler,
		},
		{
			MethodName: "GetCard",
			Handler:    getCardHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchCards",
			Handler:       watchCardsHandler,
			ServerStreams: true,
		},
	},
	Metadata: "mycard/v1/cards",
}

// RegisterCardsServiceServer регистрирует реализацию CardsService на сервере
func RegisterCardsServiceServer(s grpc.ServiceRegistrar, srv CardsServiceServer) {
	s.RegisterService(&CardsServiceDesc, srv)
}

func createCardHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateCardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardsServiceServer).CreateCard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CreateCardMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CardsServiceServer).CreateCard(ctx, req.(*CreateCardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getCardHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardsServiceServer).GetCard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetCardMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CardsServiceServer).GetCard(ctx, req.(*GetCardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func watchCardsHandler(srv any, stream grpc.ServerStream) error {
	in := new(WatchCardsRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(CardsServiceServer).WatchCards(in, &watchCardsServer{stream})
}
