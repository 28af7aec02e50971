package handler

import (
	"context"

	"github.com/resumatch/resumatch/internal/ai/internal/domain"
)

type HandleFunc func(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error)

func (f HandleFunc) Handle(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error) {
	return f(ctx, req)
}

//go:generate mockgen -source=./type.go -destination=./mocks/handler.mock.go -package=hdlmocks -typed=true Handler
type Handler interface {
	Handle(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error)
}

type Builder interface {
	Next(next Handler) Handler
}
