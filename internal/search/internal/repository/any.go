package repository

import (
	"context"

	"github.com/resumatch/resumatch/internal/search/internal/repository/dao"
)

type AnyRepo interface {
	Input(ctx context.Context, index, docID, data string) error
}

type anyRepo struct {
	anyDao dao.AnyDAO
}

func NewAnyRepo(anyDao dao.AnyDAO) AnyRepo {
	return &anyRepo{
		anyDao: anyDao,
	}
}

func (a *anyRepo) Input(ctx context.Context, index, docID, data string) error {
	return a.anyDao.Input(ctx, index, docID, data)
}
