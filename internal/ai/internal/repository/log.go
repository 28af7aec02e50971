package repository

import (
	"context"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/resumatch/resumatch/internal/ai/internal/domain"
	"github.com/resumatch/resumatch/internal/ai/internal/repository/dao"
)

type EmbedLogRepo interface {
	SaveLog(ctx context.Context, l domain.EmbedRecord) (int64, error)
}

// 调用日志
type embedLogRepo struct {
	logDao dao.EmbedRecordDAO
}

func NewEmbedLogRepo(logDao dao.EmbedRecordDAO) EmbedLogRepo {
	return &embedLogRepo{
		logDao: logDao,
	}
}

func (g *embedLogRepo) SaveLog(ctx context.Context, l domain.EmbedRecord) (int64, error) {
	return g.logDao.Save(ctx, g.toEntity(l))
}

func (g *embedLogRepo) toEntity(r domain.EmbedRecord) dao.EmbedRecord {
	return dao.EmbedRecord{
		Id:     r.Id,
		Tid:    r.Tid,
		Biz:    r.Biz,
		Tokens: r.Tokens,
		Texts: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   r.Texts,
		},
		Status: r.Status.ToUint8(),
	}
}
