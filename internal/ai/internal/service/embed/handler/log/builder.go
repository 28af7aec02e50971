package log

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/resumatch/resumatch/internal/ai/internal/domain"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler"
)

type HandlerBuilder struct {
	logger *elog.Component
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler() *HandlerBuilder {
	return &HandlerBuilder{
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "log"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error) {
		logger := h.logger.With(elog.String("tid", req.Tid),
			elog.String("biz", req.Biz))
		// 记录请求
		logger.Debug("请求向量服务", elog.Int("texts", len(req.Texts)))
		resp, err := next.Handle(ctx, req)
		if err != nil {
			// 记录错误
			logger.Error("请求向量服务失败", elog.FieldErr(err))
			return resp, err
		}
		// 记录响应
		logger.Debug("向量服务响应成功", elog.Int64("tokens", resp.Tokens))
		return resp, err
	})
}
