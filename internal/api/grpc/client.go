package grpc

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"mycard-service/internal/converter"
)

// Client клиент CardsService поверх JSON-кодека
type Client struct {
	conn *grpc.ClientConn
}

// NewClient создает клиента для адреса addr (plaintext)
func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{conn: conn}, nil
}

// Close закрывает соединение
func (c *Client) Close() error {
	return c.conn.Close()
}

// CreateCard отправляет поля формы и возвращает созданную визитку
func (c *Client) CreateCard(ctx context.Context, fields map[string]string) (*converter.CardDTO, error) {
	out := new(CreateCardResponse)
	if err := c.conn.Invoke(ctx, CreateCardMethod, &CreateCardRequest{Fields: fields}, out); err != nil {
		return nil, err
	}
	return out.Card, nil
}

// GetCard возвращает визитку по идентификатору
func (c *Client) GetCard(ctx context.Context, id string) (*converter.CardDTO, error) {
	out := new(GetCardResponse)
	if err := c.conn.Invoke(ctx, GetCardMethod, &GetCardRequest{ID: id}, out); err != nil {
		return nil, err
	}
	return out.Card, nil
}

// WatchCards вызывает fn для каждой новой визитки, пока стрим не завершится
// или fn не вернет ошибку
func (c *Client) WatchCards(ctx context.Context, fn func(*converter.CardDTO) error) error {
	stream, err := c.conn.NewStream(ctx, &CardsServiceDesc.Streams[0], WatchCardsMethod)
	if err != nil {
		return err
	}
	if err := stream.SendMsg(&WatchCardsRequest{}); err != nil {
		return err
	}
	if err := stream.CloseSend(); err != nil {
		return err
	}

	for {
		card := new(converter.CardDTO)
		if err := stream.RecvMsg(card); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := fn(card); err != nil {
			return err
		}
	}
}
