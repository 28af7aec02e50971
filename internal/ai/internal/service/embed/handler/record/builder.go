package record

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/resumatch/resumatch/internal/ai/internal/domain"
	"github.com/resumatch/resumatch/internal/ai/internal/repository"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler"
)

type HandlerBuilder struct {
	repo   repository.EmbedLogRepo
	logger *elog.Component
}

func NewHandler(repo repository.EmbedLogRepo) *HandlerBuilder {
	return &HandlerBuilder{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "record"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error) {
		log := domain.EmbedRecord{
			Tid:    req.Tid,
			Biz:    req.Biz,
			Texts:  req.Texts,
			Status: domain.RecordStatusProcessing,
		}
		defer func() {
			_, err1 := h.repo.SaveLog(ctx, log)
			if err1 != nil {
				h.logger.Error("保存向量调用记录失败", elog.FieldErr(err1))
			}
		}()
		resp, err := next.Handle(ctx, req)
		if err != nil {
			log.Status = domain.RecordStatusFailed
			return domain.EmbedResponse{}, err
		}
		log.Tokens = resp.Tokens
		log.Status = domain.RecordStatusSuccess
		return resp, err
	})
}
