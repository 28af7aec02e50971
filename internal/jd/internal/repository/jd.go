package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/resumatch/resumatch/internal/jd/internal/domain"
	"github.com/resumatch/resumatch/internal/jd/internal/repository/cache"
	"github.com/resumatch/resumatch/internal/jd/internal/repository/dao"
)

type JobDescriptionRepo interface {
	// FindOrCreate 相同内容的岗位描述只存一份，重复提交累加使用次数
	FindOrCreate(ctx context.Context, jd domain.JD) (domain.JD, error)
	Find(ctx context.Context, id int64) (domain.JD, error)
	List(ctx context.Context, offset, limit int) ([]domain.JD, error)
}

type jobDescriptionRepo struct {
	jdDao   dao.JobDescriptionDAO
	jdCache cache.JDCache
	logger  *elog.Component
}

func NewJobDescriptionRepo(jdDao dao.JobDescriptionDAO, jdCache cache.JDCache) JobDescriptionRepo {
	return &jobDescriptionRepo{
		jdDao:   jdDao,
		jdCache: jdCache,
		logger:  elog.DefaultLogger,
	}
}

func (r *jobDescriptionRepo) FindOrCreate(ctx context.Context, jd domain.JD) (domain.JD, error) {
	entity, err := r.jdDao.Upsert(ctx, dao.JobDescription{
		Sha256: jd.Sha256,
		Text:   jd.Text,
	})
	if err != nil {
		return domain.JD{}, err
	}
	res := r.toDomain(entity)
	// 缓存失败不影响主流程
	if err := r.jdCache.Set(ctx, res); err != nil {
		r.logger.Error("缓存岗位描述失败", elog.FieldErr(err), elog.Int64("id", res.Id))
	}
	return res, nil
}

func (r *jobDescriptionRepo) Find(ctx context.Context, id int64) (domain.JD, error) {
	jd, err := r.jdCache.Get(ctx, id)
	if err == nil {
		return jd, nil
	}
	entity, err := r.jdDao.FindById(ctx, id)
	if err != nil {
		return domain.JD{}, err
	}
	res := r.toDomain(entity)
	if err := r.jdCache.Set(ctx, res); err != nil {
		r.logger.Error("缓存岗位描述失败", elog.FieldErr(err), elog.Int64("id", res.Id))
	}
	return res, nil
}

func (r *jobDescriptionRepo) List(ctx context.Context, offset, limit int) ([]domain.JD, error) {
	entities, err := r.jdDao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.JobDescription) domain.JD {
		return r.toDomain(src)
	}), nil
}

func (r *jobDescriptionRepo) toDomain(entity dao.JobDescription) domain.JD {
	return domain.JD{
		Id:         entity.Id,
		Sha256:     entity.Sha256,
		Text:       entity.Text,
		UsageCount: entity.UsageCount,
		Utime:      entity.Utime,
	}
}
