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

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/resumatch/resumatch/internal/jd"
	"github.com/resumatch/resumatch/internal/parser"
	"github.com/resumatch/resumatch/internal/pkg/document"
	"github.com/resumatch/resumatch/internal/pkg/snowflake"
	"github.com/resumatch/resumatch/internal/resume/internal/domain"
	"github.com/resumatch/resumatch/internal/resume/internal/event"
	"github.com/resumatch/resumatch/internal/resume/internal/repository"
	"github.com/resumatch/resumatch/internal/scoring"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./analysis.go -destination=../../mocks/resume.mock.go -package=resumemocks -typed=true Service
type Service interface {
	// Analyze 同步评估，直接返回完整报告
	Analyze(ctx context.Context, filename string, data []byte, jobDesc string) (domain.Report, error)
	// AnalyzeAsync 投递异步评估任务，返回评估单号
	AnalyzeAsync(ctx context.Context, filename string, data []byte, jobDesc string) (string, error)
	// AnalyzeText 拿已经抽好的文本做评估并落库，异步消费方用
	AnalyzeText(ctx context.Context, tid, filename, resumeText, jobDesc string) (domain.Report, error)
	Report(ctx context.Context, tid string) (domain.Report, error)
	List(ctx context.Context, offset, limit int) ([]domain.Report, int64, error)
}

type service struct {
	repo         repository.ReportRepo
	parserSvc    parser.Service
	scoringSvc   scoring.Service
	jdSvc        jd.Service
	syncProducer event.SyncEventProducer
	taskProducer event.TaskEventProducer
	idGen        snowflake.Generator
	logger       *elog.Component
}

func NewService(repo repository.ReportRepo,
	parserSvc parser.Service,
	scoringSvc scoring.Service,
	jdSvc jd.Service,
	syncProducer event.SyncEventProducer,
	taskProducer event.TaskEventProducer,
	idGen snowflake.Generator) Service {
	return &service{
		repo:         repo,
		parserSvc:    parserSvc,
		scoringSvc:   scoringSvc,
		jdSvc:        jdSvc,
		syncProducer: syncProducer,
		taskProducer: taskProducer,
		idGen:        idGen,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) Analyze(ctx context.Context, filename string, data []byte, jobDesc string) (domain.Report, error) {
	text, err := document.ExtractText(filename, data)
	if err != nil {
		return domain.Report{}, err
	}
	return s.AnalyzeText(ctx, shortuuid.New(), filename, text, jobDesc)
}

func (s *service) AnalyzeAsync(ctx context.Context, filename string, data []byte, jobDesc string) (string, error) {
	// 文本在接收侧就抽出来，文件有问题当场报错，不用等消费方
	text, err := document.ExtractText(filename, data)
	if err != nil {
		return "", err
	}
	tid := shortuuid.New()
	s.saveStage(ctx, tid, domain.StageExtract, domain.ReportStatusSuccess, filename)
	err = s.taskProducer.Produce(ctx, event.AnalysisTaskEvent{
		Tid:        tid,
		Filename:   filename,
		ResumeText: text,
		JobDesc:    jobDesc,
	})
	if err != nil {
		return "", err
	}
	return tid, nil
}

func (s *service) AnalyzeText(ctx context.Context, tid, filename, resumeText, jobDesc string) (domain.Report, error) {
	resumeSha := sha256Hex(resumeText)
	jdSha := sha256Hex(jobDesc)

	cached, err := s.repo.CachedReport(ctx, resumeSha, jdSha)
	if err == nil {
		// 缓存里的结果带的是旧单号，按本次单号重新落一条，保证这个单号查得到
		cached.Id = s.idGen.Generate().Int64()
		cached.Tid = tid
		cached.Filename = filename
		if _, err = s.repo.Save(ctx, cached); err != nil {
			s.saveStage(ctx, tid, domain.StageSave, domain.ReportStatusFailed, err.Error())
			return domain.Report{}, err
		}
		s.saveStage(ctx, tid, domain.StageSave, domain.ReportStatusSuccess, "cache")
		return cached, nil
	}

	jdRecord, err := s.jdSvc.FindOrCreate(ctx, jobDesc)
	if err != nil {
		return domain.Report{}, err
	}

	report := s.evaluate(ctx, tid, resumeText, jobDesc)
	report.Id = s.idGen.Generate().Int64()
	report.Tid = tid
	report.ResumeSha = resumeSha
	report.Jid = jdRecord.Id
	report.Filename = filename

	if _, err = s.repo.Save(ctx, report); err != nil {
		s.saveStage(ctx, tid, domain.StageSave, domain.ReportStatusFailed, err.Error())
		return domain.Report{}, err
	}
	s.saveStage(ctx, tid, domain.StageSave, domain.ReportStatusSuccess, "")

	if err = s.repo.CacheReport(ctx, resumeSha, jdSha, report); err != nil {
		s.logger.Error("缓存评估报告失败", elog.FieldErr(err), elog.String("tid", tid))
	}
	if err = s.syncProducer.Produce(ctx, event.NewReportEvent(report)); err != nil {
		s.logger.Error("同步评估报告到搜索失败", elog.FieldErr(err), elog.String("tid", tid))
	}
	return report, nil
}

// evaluate 解析加评分，崩了就给保底报告，不让一份奇怪的简历把整个请求带崩
func (s *service) evaluate(ctx context.Context, tid, resumeText, jobDesc string) (report domain.Report) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("评估过程崩溃",
				elog.Any("panic", rec),
				elog.String("tid", tid))
			s.saveStage(ctx, tid, domain.StageScore, domain.ReportStatusFailed, "panic")
			report = domain.Report{
				OverallScore:   domain.FallbackOverallScore,
				Categories:     domain.FallbackCategoryScores(),
				MissingSkills:  []string{domain.FallbackMissingSkillsNote},
				Classification: domain.ClassificationError,
				Status:         domain.ReportStatusFailed,
			}
		}
	}()

	parsed := s.parserSvc.Parse(resumeText)
	s.saveStage(ctx, tid, domain.StageParse, domain.ReportStatusSuccess, "")

	scored := s.scoringSvc.Score(ctx, parsed, resumeText, jobDesc)
	s.saveStage(ctx, tid, domain.StageScore, domain.ReportStatusSuccess, "")

	return domain.Report{
		HeaderTitle: parsed.HeaderTitle,
		Contact: domain.Contact{
			Name:     parsed.Contact.Name,
			Email:    parsed.Contact.Email,
			Phone:    parsed.Contact.Phone,
			Location: parsed.Contact.Location,
			LinkedIn: parsed.Contact.LinkedIn,
			GitHub:   parsed.Contact.GitHub,
		},
		Skills:        parsed.Skills,
		MatchedSkills: scored.MatchedSkills,
		MissingSkills: scored.MissingSkills,
		OverallScore:  scored.OverallScore,
		Categories: domain.CategoryScores{
			Skills:     scored.Categories.Skills,
			Header:     scored.Categories.Header,
			Experience: scored.Categories.Experience,
			Projects:   scored.Categories.Projects,
			Education:  scored.Categories.Education,
			Format:     scored.Categories.Format,
		},
		Classification: scored.Classification,
		Recommendations: slice.Map(scored.Recommendations, func(idx int, src scoring.Recommendation) domain.Recommendation {
			return domain.Recommendation{
				Priority:    src.Priority,
				Category:    src.Category,
				Title:       src.Title,
				Description: src.Description,
			}
		}),
		Status: domain.ReportStatusSuccess,
	}
}

func (s *service) Report(ctx context.Context, tid string) (domain.Report, error) {
	return s.repo.FindByTid(ctx, tid)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Report, int64, error) {
	var (
		eg      errgroup.Group
		reports []domain.Report
		total   int64
	)
	eg.Go(func() error {
		var err error
		reports, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return reports, total, eg.Wait()
}

func (s *service) saveStage(ctx context.Context, tid, stage string, status domain.ReportStatus, detail string) {
	err := s.repo.SaveProcessingLog(ctx, domain.ProcessingLog{
		Tid:    tid,
		Stage:  stage,
		Status: status,
		Detail: detail,
	})
	if err != nil {
		s.logger.Error("保存处理留痕失败",
			elog.FieldErr(err),
			elog.String("tid", tid),
			elog.String("stage", stage))
	}
}

func sha256Hex(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
