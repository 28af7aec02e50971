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
	"strings"
	"testing"

	"github.com/resumatch/resumatch/internal/parser"
	"github.com/resumatch/resumatch/internal/scoring/internal/domain"
	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Doe
Machine Learning Engineer
john.doe@example.com | +1 415 555 0199
linkedin.com/in/john-doe | github.com/johndoe
San Francisco, CA

SKILLS
Python, PyTorch, Docker, Kubernetes, SQL

EXPERIENCE
Acme Corp. — Machine Learning Engineer
San Francisco, CA | 06/2021 - Present
• Built model serving platform
Globex Inc. — Data Scientist
Remote | 2019 - 2021

EDUCATION
Stanford University
Stanford, CA
M.S. in Computer Science

PROJECTS
Churn Prediction Platform (Python, PyTorch)
github.com/johndoe/churn

CERTIFICATIONS
• AWS Certified Machine Learning Specialty
`

const sampleJD = `Looking for engineers with python, sql, docker, kubernetes and pytorch.`

func newTestService() (Service, parser.Service) {
	parserSvc := parser.InitModule().Svc
	return NewService(parserSvc, NewMatcher(nil), DefaultWeights()), parserSvc
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())

	w := DefaultWeights()
	w.Skills = 0.50
	assert.Error(t, w.Validate())

	// 换一组合法权重也要能过
	assert.NoError(t, Weights{
		Skills: 0.35, Header: 0.10, Experience: 0.20,
		Projects: 0.10, Education: 0.15, Format: 0.10,
	}.Validate())
}

func TestService_Score(t *testing.T) {
	svc, parserSvc := newTestService()
	resume := parserSvc.Parse(sampleResume)
	report := svc.Score(context.Background(), resume, sampleResume, sampleJD)

	assert.Equal(t, 100.0, report.Categories.Skills)
	assert.Equal(t, 100.0, report.Categories.Header)
	// 没有一个岗位技能出现在经验条目里：60 + 0 + 15
	assert.Equal(t, 75.0, report.Categories.Experience)
	// 单个项目带两个技术栈：65 + 10 + 8
	assert.Equal(t, 83.0, report.Categories.Projects)
	// computer science 学位 + university：70 + 15 + 10
	assert.Equal(t, 95.0, report.Categories.Education)
	assert.Equal(t, 100.0, report.Categories.Format)

	assert.ElementsMatch(t, []string{"python", "sql", "docker", "kubernetes", "pytorch"}, report.MatchedSkills)
	assert.Empty(t, report.MissingSkills)

	// 0.40*100 + 0.10*100 + 0.15*75 + 0.05*83 + 0.20*95 + 0.10*100
	assert.InDelta(t, 94.40, report.OverallScore, 1e-9)
	assert.Equal(t, domain.ClassificationGoodFit, report.Classification)
	// 各维度都过了阈值，不需要任何建议
	assert.Empty(t, report.Recommendations)
}

func TestService_Score_EmptyResume(t *testing.T) {
	svc, parserSvc := newTestService()
	resume := parserSvc.Parse("")
	report := svc.Score(context.Background(), resume, "", sampleJD)

	assert.Zero(t, report.Categories.Skills)
	assert.Zero(t, report.Categories.Header)
	assert.Zero(t, report.Categories.Experience)
	assert.Zero(t, report.Categories.Projects)
	assert.Zero(t, report.Categories.Education)
	assert.Zero(t, report.Categories.Format)
	assert.Equal(t, domain.ClassificationNeedsImprovement, report.Classification)
}

func TestService_Score_KeywordFallback(t *testing.T) {
	// 岗位描述没有任何已知技能，应该退化到关键词匹配而不是直接给 0
	svc, parserSvc := newTestService()
	jd := "seeking someone organized diligent punctual"
	resume := parserSvc.Parse(sampleResume)
	report := svc.Score(context.Background(), resume, sampleResume, jd)
	assert.NotEmpty(t, report.MissingSkills)
}

func TestScoreHeader(t *testing.T) {
	testCases := []struct {
		name    string
		contact parser.Contact
		want    float64
	}{
		{
			name: "信息齐全",
			contact: parser.Contact{
				Email: "a@b.com", Phone: "+1 415 555 0199",
				LinkedIn: "linkedin.com/in/a", GitHub: "github.com/a",
			},
			want: 100,
		},
		{
			name:    "只有邮箱",
			contact: parser.Contact{Email: "a@b.com"},
			want:    40,
		},
		{
			name:    "邮箱加电话",
			contact: parser.Contact{Email: "a@b.com", Phone: "123 456 7890"},
			want:    70,
		},
		{
			name: "什么都没有",
			want: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoreHeader(tc.contact))
		})
	}
}

func TestScoreExperience(t *testing.T) {
	twoEntries := []parser.Entry{
		{Text: "Acme — Engineer\npython sql docker"},
		{Text: "Globex — Analyst\nRemote"},
	}
	testCases := []struct {
		name        string
		experiences []parser.Entry
		jobSkills   []string
		want        float64
	}{
		{
			name: "没有经验",
			want: 0,
		},
		{
			name:        "全部技能命中",
			experiences: twoEntries,
			jobSkills:   []string{"python", "sql"},
			// 60 + min(20+0.7*17, 25) + 15
			want: 100,
		},
		{
			name:        "一个技能都没命中",
			experiences: twoEntries,
			jobSkills:   []string{"rust", "scala"},
			want:        75,
		},
		{
			name:        "岗位没有技能要求给默认分",
			experiences: []parser.Entry{{Text: "Acme Corp, plain text entry"}},
			want:        90,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoreExperience(tc.experiences, tc.jobSkills))
		})
	}
}

func TestScoreProjects(t *testing.T) {
	testCases := []struct {
		name     string
		projects []parser.Entry
		want     float64
	}{
		{
			name: "没有项目",
			want: 0,
		},
		{
			name: "两个项目五个技术栈",
			projects: []parser.Entry{
				{Text: "Churn Platform (Python, PyTorch, Docker)"},
				{Text: "Dashboard (React, AWS)"},
			},
			// 65 + 20 + 15
			want: 100,
		},
		{
			name:     "单个项目没写技术栈",
			projects: []parser.Entry{{Text: "Some internal migration tool"}},
			// 65 + 5 + 8
			want: 78,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoreProjects(tc.projects))
		})
	}
}

func TestScoreEducation(t *testing.T) {
	testCases := []struct {
		name       string
		educations []parser.Entry
		want       float64
	}{
		{
			name: "没有教育经历",
			want: 0,
		},
		{
			name:       "博士加知名院校",
			educations: []parser.Entry{{Text: "MIT\nPh.D in Physics"}},
			// 70 + 20 + 5，原文里没有 institute 这类词
			want: 95,
		},
		{
			name:       "硕士加大学",
			educations: []parser.Entry{{Text: "Stanford University\nMaster of Science"}},
			want:       98,
		},
		{
			name:       "只写了学校名",
			educations: []parser.Entry{{Text: "Springfield High School"}},
			// 70 + 10 + 5，school 不在院校质量词表里
			want: 85,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoreEducation(tc.educations))
		})
	}
}

func TestScoreFormat(t *testing.T) {
	full := "EXPERIENCE\nEDUCATION\nSKILLS\n• bullet\n" + strings.Repeat("x ", 300)
	assert.Equal(t, 100.0, scoreFormat(full))
	assert.Equal(t, 0.0, scoreFormat(""))
	// 只有小节词，太短也没有列表符号
	assert.Equal(t, 60.0, scoreFormat("EXPERIENCE EDUCATION SKILLS"))
}

func TestExtractKeywords(t *testing.T) {
	keywords := extractKeywords("The team will design and ship the data platform")
	assert.Equal(t, []string{"team", "design", "ship", "data", "platform"}, keywords)
}
