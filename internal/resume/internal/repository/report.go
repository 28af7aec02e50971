// Copyright 2023 resumatch
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/resumatch/resumatch/internal/resume/internal/domain"
	"github.com/resumatch/resumatch/internal/resume/internal/repository/cache"
	"github.com/resumatch/resumatch/internal/resume/internal/repository/dao"
)

type ReportRepo interface {
	Save(ctx context.Context, r domain.Report) (int64, error)
	FindByTid(ctx context.Context, tid string) (domain.Report, error)
	List(ctx context.Context, offset, limit int) ([]domain.Report, error)
	Count(ctx context.Context) (int64, error)

	// CachedReport 查一份一模一样的评估有没有做过
	CachedReport(ctx context.Context, resumeSha, jdSha string) (domain.Report, error)
	CacheReport(ctx context.Context, resumeSha, jdSha string, r domain.Report) error

	SaveProcessingLog(ctx context.Context, l domain.ProcessingLog) error
	RemoveProcessingLogsBefore(ctx context.Context, before time.Time, limit int) (int64, error)

	DailyStat(ctx context.Context, start, end time.Time) (domain.DailyStat, error)
	SaveDailyStat(ctx context.Context, stat domain.DailyStat) error
}

type reportRepo struct {
	reportDao   dao.ReportDAO
	reportCache cache.ReportCache
	logger      *elog.Component
}

func NewReportRepo(reportDao dao.ReportDAO, reportCache cache.ReportCache) ReportRepo {
	return &reportRepo{
		reportDao:   reportDao,
		reportCache: reportCache,
		logger:      elog.DefaultLogger,
	}
}

func (r *reportRepo) Save(ctx context.Context, report domain.Report) (int64, error) {
	skills := slice.Map(report.Skills, func(idx int, src string) dao.ReportSkill {
		return dao.ReportSkill{Skill: src}
	})
	return r.reportDao.Save(ctx, r.toEntity(report), dao.ReportContact{
		Name:     report.Contact.Name,
		Email:    report.Contact.Email,
		Phone:    report.Contact.Phone,
		Location: report.Contact.Location,
		LinkedIn: report.Contact.LinkedIn,
		GitHub:   report.Contact.GitHub,
	}, skills)
}

func (r *reportRepo) FindByTid(ctx context.Context, tid string) (domain.Report, error) {
	entity, err := r.reportDao.FindByTid(ctx, tid)
	if err != nil {
		return domain.Report{}, err
	}
	res := r.toDomain(entity)
	contact, err := r.reportDao.ContactByRid(ctx, entity.Id)
	if err == nil {
		res.Contact = domain.Contact{
			Name:     contact.Name,
			Email:    contact.Email,
			Phone:    contact.Phone,
			Location: contact.Location,
			LinkedIn: contact.LinkedIn,
			GitHub:   contact.GitHub,
		}
	}
	skills, err := r.reportDao.SkillsByRid(ctx, entity.Id)
	if err == nil {
		res.Skills = slice.Map(skills, func(idx int, src dao.ReportSkill) string {
			return src.Skill
		})
	}
	return res, nil
}

func (r *reportRepo) List(ctx context.Context, offset, limit int) ([]domain.Report, error) {
	entities, err := r.reportDao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Report) domain.Report {
		return r.toDomain(src)
	}), nil
}

func (r *reportRepo) Count(ctx context.Context) (int64, error) {
	return r.reportDao.Count(ctx)
}

func (r *reportRepo) CachedReport(ctx context.Context, resumeSha, jdSha string) (domain.Report, error) {
	return r.reportCache.Get(ctx, resumeSha, jdSha)
}

func (r *reportRepo) CacheReport(ctx context.Context, resumeSha, jdSha string, report domain.Report) error {
	return r.reportCache.Set(ctx, resumeSha, jdSha, report)
}

func (r *reportRepo) SaveProcessingLog(ctx context.Context, l domain.ProcessingLog) error {
	_, err := r.reportDao.InsertProcessingLog(ctx, dao.ProcessingLog{
		Tid:    l.Tid,
		Stage:  l.Stage,
		Status: l.Status.ToUint8(),
		Detail: l.Detail,
	})
	return err
}

func (r *reportRepo) RemoveProcessingLogsBefore(ctx context.Context, before time.Time, limit int) (int64, error) {
	return r.reportDao.DeleteProcessingLogsBefore(ctx, before.UnixMilli(), limit)
}

func (r *reportRepo) DailyStat(ctx context.Context, start, end time.Time) (domain.DailyStat, error) {
	total, goodFit, potentialFit, avgScore, err := r.reportDao.DailyStat(ctx, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return domain.DailyStat{}, err
	}
	return domain.DailyStat{
		Day:          start.Format(time.DateOnly),
		Total:        total,
		GoodFit:      goodFit,
		PotentialFit: potentialFit,
		NeedsWork:    total - goodFit - potentialFit,
		AvgScore:     avgScore,
	}, nil
}

func (r *reportRepo) SaveDailyStat(ctx context.Context, stat domain.DailyStat) error {
	return r.reportDao.SaveDailyStat(ctx, dao.DailyStat{
		Day:          stat.Day,
		Total:        stat.Total,
		GoodFit:      stat.GoodFit,
		PotentialFit: stat.PotentialFit,
		NeedsWork:    stat.NeedsWork,
		AvgScore:     stat.AvgScore,
	})
}

func (r *reportRepo) toEntity(report domain.Report) dao.Report {
	return dao.Report{
		Id:           report.Id,
		Tid:          report.Tid,
		ResumeSha:    report.ResumeSha,
		Jid:          report.Jid,
		Filename:     report.Filename,
		HeaderTitle:  report.HeaderTitle,
		OverallScore: report.OverallScore,
		SkillsScore:  report.Categories.Skills,
		HeaderScore:  report.Categories.Header,
		ExpScore:     report.Categories.Experience,
		ProjectsScore: report.Categories.Projects,
		EduScore:      report.Categories.Education,
		FormatScore:   report.Categories.Format,
		MatchedSkills: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   report.MatchedSkills,
		},
		MissingSkills: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   report.MissingSkills,
		},
		Recommendations: sqlx.JsonColumn[[]dao.Recommendation]{
			Valid: true,
			Val: slice.Map(report.Recommendations, func(idx int, src domain.Recommendation) dao.Recommendation {
				return dao.Recommendation{
					Priority:    src.Priority,
					Category:    src.Category,
					Title:       src.Title,
					Description: src.Description,
				}
			}),
		},
		Classification: report.Classification,
		Status:         report.Status.ToUint8(),
	}
}

func (r *reportRepo) toDomain(entity dao.Report) domain.Report {
	return domain.Report{
		Id:          entity.Id,
		Tid:         entity.Tid,
		ResumeSha:   entity.ResumeSha,
		Jid:         entity.Jid,
		Filename:    entity.Filename,
		HeaderTitle: entity.HeaderTitle,
		Categories: domain.CategoryScores{
			Skills:     entity.SkillsScore,
			Header:     entity.HeaderScore,
			Experience: entity.ExpScore,
			Projects:   entity.ProjectsScore,
			Education:  entity.EduScore,
			Format:     entity.FormatScore,
		},
		OverallScore:  entity.OverallScore,
		MatchedSkills: entity.MatchedSkills.Val,
		MissingSkills: entity.MissingSkills.Val,
		Recommendations: slice.Map(entity.Recommendations.Val, func(idx int, src dao.Recommendation) domain.Recommendation {
			return domain.Recommendation{
				Priority:    src.Priority,
				Category:    src.Category,
				Title:       src.Title,
				Description: src.Description,
			}
		}),
		Classification: entity.Classification,
		Status:         domain.ReportStatus(entity.Status),
		Ctime:          entity.Ctime,
		Utime:          entity.Utime,
	}
}
