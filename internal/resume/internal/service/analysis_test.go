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
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/resumatch/resumatch/internal/jd"
	"github.com/resumatch/resumatch/internal/parser"
	"github.com/resumatch/resumatch/internal/pkg/document"
	"github.com/resumatch/resumatch/internal/pkg/snowflake"
	"github.com/resumatch/resumatch/internal/resume/internal/domain"
	"github.com/resumatch/resumatch/internal/resume/internal/event"
	"github.com/resumatch/resumatch/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
Senior Software Engineer
john.doe@example.com | +1 (555) 123-4567
linkedin.com/in/johndoe | github.com/johndoe

SKILLS
Python, Go, Docker, Kubernetes, PostgreSQL, Redis

EXPERIENCE
Acme Corp. — Senior Software Engineer
Jan 2020 - Present
- Built the billing platform
- Led a team of four engineers

EDUCATION
Stanford University
B.S. in Computer Science
`

const sampleJD = `We are hiring a backend engineer.
Required: Python, Go, Docker, Kubernetes.`

var errNotFound = errors.New("没有这条记录")

type fakeRepo struct {
	reports     map[string]domain.Report
	cache       map[string]domain.Report
	logs        []domain.ProcessingLog
	saveErr     error
	listReports []domain.Report
	total       int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		reports: make(map[string]domain.Report),
		cache:   make(map[string]domain.Report),
	}
}

func (f *fakeRepo) Save(_ context.Context, r domain.Report) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.reports[r.Tid] = r
	return r.Id, nil
}

func (f *fakeRepo) FindByTid(_ context.Context, tid string) (domain.Report, error) {
	r, ok := f.reports[tid]
	if !ok {
		return domain.Report{}, errNotFound
	}
	return r, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]domain.Report, error) {
	return f.listReports, nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return f.total, nil
}

func (f *fakeRepo) CachedReport(_ context.Context, resumeSha, jdSha string) (domain.Report, error) {
	r, ok := f.cache[resumeSha+":"+jdSha]
	if !ok {
		return domain.Report{}, errNotFound
	}
	return r, nil
}

func (f *fakeRepo) CacheReport(_ context.Context, resumeSha, jdSha string, r domain.Report) error {
	f.cache[resumeSha+":"+jdSha] = r
	return nil
}

func (f *fakeRepo) SaveProcessingLog(_ context.Context, l domain.ProcessingLog) error {
	f.logs = append(f.logs, l)
	return nil
}

func (f *fakeRepo) RemoveProcessingLogsBefore(_ context.Context, _ time.Time, _ int) (int64, error) {
	return 0, nil
}

func (f *fakeRepo) DailyStat(_ context.Context, _, _ time.Time) (domain.DailyStat, error) {
	return domain.DailyStat{}, nil
}

func (f *fakeRepo) SaveDailyStat(_ context.Context, _ domain.DailyStat) error {
	return nil
}

type fakeJDSvc struct {
	jd    jd.JD
	calls int
}

func (f *fakeJDSvc) FindOrCreate(_ context.Context, text string) (jd.JD, error) {
	f.calls++
	f.jd.Text = text
	return f.jd, nil
}

func (f *fakeJDSvc) Find(_ context.Context, _ int64) (jd.JD, error) {
	return f.jd, nil
}

func (f *fakeJDSvc) List(_ context.Context, _, _ int) ([]jd.JD, error) {
	return []jd.JD{f.jd}, nil
}

type fakeSyncProducer struct {
	events []event.ReportEvent
}

func (f *fakeSyncProducer) Produce(_ context.Context, evt event.ReportEvent) error {
	f.events = append(f.events, evt)
	return nil
}

type fakeTaskProducer struct {
	events []event.AnalysisTaskEvent
}

func (f *fakeTaskProducer) Produce(_ context.Context, evt event.AnalysisTaskEvent) error {
	f.events = append(f.events, evt)
	return nil
}

type fixedIDGen struct {
	id int64
}

func (f *fixedIDGen) Generate() snowflake.ID {
	f.id++
	return snowflake.ID(f.id)
}

type panicScorer struct{}

func (panicScorer) Score(_ context.Context, _ parser.Resume, _, _ string) scoring.Report {
	panic("故意崩一下")
}

func newTestService(repo *fakeRepo, sync *fakeSyncProducer, task *fakeTaskProducer) Service {
	parserModule := parser.InitModule()
	scoringModule := scoring.InitModule(parserModule, nil)
	return NewService(repo, parserModule.Svc, scoringModule.Svc,
		&fakeJDSvc{jd: jd.JD{Id: 1}}, sync, task, &fixedIDGen{})
}

func TestService_Analyze(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	sync := &fakeSyncProducer{}
	svc := newTestService(repo, sync, &fakeTaskProducer{})

	report, err := svc.Analyze(context.Background(), "resume.txt", []byte(sampleResume), sampleJD)
	require.NoError(t, err)

	assert.NotEmpty(t, report.Tid)
	assert.Equal(t, int64(1), report.Id)
	assert.Equal(t, int64(1), report.Jid)
	assert.Equal(t, "resume.txt", report.Filename)
	assert.Equal(t, domain.ReportStatusSuccess, report.Status)
	assert.Equal(t, "john.doe@example.com", report.Contact.Email)
	assert.Contains(t, report.Skills, "python")
	assert.Greater(t, report.OverallScore, 50.0)
	assert.NotEqual(t, domain.ClassificationError, report.Classification)

	// 落库了
	saved, err := repo.FindByTid(context.Background(), report.Tid)
	require.NoError(t, err)
	assert.Equal(t, report.OverallScore, saved.OverallScore)
	// 结果进了缓存，并且同步事件发出去了
	assert.Len(t, repo.cache, 1)
	require.Len(t, sync.events, 1)
	assert.Equal(t, "report", sync.events[0].Biz)
	assert.Equal(t, report.Id, sync.events[0].BizID)

	// 各阶段留痕
	stages := make([]string, 0, len(repo.logs))
	for _, l := range repo.logs {
		stages = append(stages, l.Stage)
	}
	assert.Contains(t, stages, domain.StageParse)
	assert.Contains(t, stages, domain.StageScore)
	assert.Contains(t, stages, domain.StageSave)
}

func TestService_Analyze_CacheHit(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	sync := &fakeSyncProducer{}
	jdSvc := &fakeJDSvc{jd: jd.JD{Id: 1}}
	parserModule := parser.InitModule()
	scoringModule := scoring.InitModule(parserModule, nil)
	svc := NewService(repo, parserModule.Svc, scoringModule.Svc,
		jdSvc, sync, &fakeTaskProducer{}, &fixedIDGen{})

	first, err := svc.AnalyzeText(context.Background(), "tid-1", "resume.txt", sampleResume, sampleJD)
	require.NoError(t, err)
	calls := jdSvc.calls

	second, err := svc.AnalyzeText(context.Background(), "tid-2", "resume.txt", sampleResume, sampleJD)
	require.NoError(t, err)

	// 命中缓存就不会再走岗位描述和评分
	assert.Equal(t, calls, jdSvc.calls)
	assert.Len(t, sync.events, 1)
	assert.Equal(t, first.OverallScore, second.OverallScore)
	// 但要按本次单号重新落一条，两个单号都查得到
	assert.Equal(t, "tid-2", second.Tid)
	assert.NotEqual(t, first.Id, second.Id)
	assert.Len(t, repo.reports, 2)
	saved, err := repo.FindByTid(context.Background(), "tid-2")
	require.NoError(t, err)
	assert.Equal(t, first.OverallScore, saved.OverallScore)
}

func TestService_Analyze_UnsupportedFile(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeRepo(), &fakeSyncProducer{}, &fakeTaskProducer{})
	_, err := svc.Analyze(context.Background(), "resume.png", []byte{0x89, 0x50}, sampleJD)
	assert.ErrorIs(t, err, document.ErrUnsupportedType)
}

func TestService_AnalyzeAsync(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	task := &fakeTaskProducer{}
	svc := newTestService(repo, &fakeSyncProducer{}, task)

	tid, err := svc.AnalyzeAsync(context.Background(), "resume.txt", []byte(sampleResume), sampleJD)
	require.NoError(t, err)
	assert.NotEmpty(t, tid)

	require.Len(t, task.events, 1)
	evt := task.events[0]
	assert.Equal(t, tid, evt.Tid)
	assert.Equal(t, "resume.txt", evt.Filename)
	assert.Equal(t, sampleResume, evt.ResumeText)
	assert.Equal(t, sampleJD, evt.JobDesc)
	// 接收阶段的留痕
	require.NotEmpty(t, repo.logs)
	assert.Equal(t, domain.StageExtract, repo.logs[0].Stage)

	// 消费方拿到事件后能出完整报告
	report, err := svc.AnalyzeText(context.Background(), evt.Tid, evt.Filename, evt.ResumeText, evt.JobDesc)
	require.NoError(t, err)
	assert.Equal(t, tid, report.Tid)
	assert.Equal(t, domain.ReportStatusSuccess, report.Status)
}

func TestService_AnalyzeText_PanicFallback(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	parserModule := parser.InitModule()
	svc := NewService(repo, parserModule.Svc, panicScorer{},
		&fakeJDSvc{jd: jd.JD{Id: 1}}, &fakeSyncProducer{}, &fakeTaskProducer{}, &fixedIDGen{})

	report, err := svc.AnalyzeText(context.Background(), "tid-panic", "resume.txt", sampleResume, sampleJD)
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackOverallScore, report.OverallScore)
	assert.Equal(t, domain.FallbackCategoryScores(), report.Categories)
	assert.Equal(t, []string{domain.FallbackMissingSkillsNote}, report.MissingSkills)
	assert.Equal(t, domain.ClassificationError, report.Classification)
	assert.Equal(t, domain.ReportStatusFailed, report.Status)
	// 保底报告也会落库，方便事后排查
	saved, err := repo.FindByTid(context.Background(), "tid-panic")
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationError, saved.Classification)
}

func TestService_List(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	repo.listReports = []domain.Report{{Tid: "a"}, {Tid: "b"}}
	repo.total = 12
	svc := newTestService(repo, &fakeSyncProducer{}, &fakeTaskProducer{})

	reports, total, err := svc.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, reports, 2)
}
