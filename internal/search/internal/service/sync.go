package service

import (
	"context"

	"github.com/resumatch/resumatch/internal/search/internal/repository"
)

// SyncService 把别的模块发过来的数据写进搜索索引
type SyncService interface {
	Input(ctx context.Context, index, docID, data string) error
}

type syncSvc struct {
	anyRepo repository.AnyRepo
}

func NewSyncSvc(anyRepo repository.AnyRepo) SyncService {
	return &syncSvc{
		anyRepo: anyRepo,
	}
}

func (s *syncSvc) Input(ctx context.Context, index, docID, data string) error {
	return s.anyRepo.Input(ctx, index, docID, data)
}
