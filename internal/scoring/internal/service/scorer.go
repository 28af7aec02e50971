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
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/resumatch/resumatch/internal/parser"
	"github.com/resumatch/resumatch/internal/scoring/internal/domain"
)

//go:generate mockgen -source=./scorer.go -destination=../../mocks/scoring.mock.go -package=scoringmocks -typed=true Service
type Service interface {
	// Score 用岗位描述评估一份已解析的简历
	Score(ctx context.Context, resume parser.Resume, resumeText string, jobDesc string) domain.Report
}

// Weights 各维度权重，加起来必须是 1
type Weights struct {
	Skills     float64
	Header     float64
	Experience float64
	Projects   float64
	Education  float64
	Format     float64
}

func DefaultWeights() Weights {
	return Weights{
		Skills:     0.40,
		Header:     0.10,
		Experience: 0.15,
		Projects:   0.05,
		Education:  0.20,
		Format:     0.10,
	}
}

func (w Weights) Validate() error {
	sum := w.Skills + w.Header + w.Experience + w.Projects + w.Education + w.Format
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("权重之和必须是 1，实际是 %v", sum)
	}
	return nil
}

type service struct {
	parserSvc parser.Service
	matcher   *Matcher
	weights   Weights
}

func NewService(parserSvc parser.Service, matcher *Matcher, weights Weights) Service {
	return &service{
		parserSvc: parserSvc,
		matcher:   matcher,
		weights:   weights,
	}
}

// 岗位描述连一个已知技能都没有时，退化用前 15 个关键词当要求
const maxFallbackKeywords = 15

// 项目里出现这些词说明写了技术栈
var techIndicators = []string{
	"python", "machine learning", "pytorch", "tensorflow", "java", "javascript", "react", "node",
	"sql", "mongodb", "docker", "aws", "azure", "git", "github", "api", "flask", "django",
	"pandas", "numpy", "matplotlib", "tableau", "scikit-learn", "opencv", "nltk",
}

var (
	phdWords      = []string{"phd", "doctorate", "ph.d"}
	masterWords   = []string{"master", "msc", "mba", "m.tech", "mtech"}
	bachelorWords = []string{"bachelor", "bsc", "bs", "b.tech", "btech", "engineering", "technology", "computer science"}
	institutions  = []string{"institute", "university", "college", "technology", "engineering", "iit", "nit", "bits", "iiit"}

	expSectionRegexp   = regexp.MustCompile(`(?i)\bexperience\b`)
	eduSectionRegexp   = regexp.MustCompile(`(?i)\beducation\b`)
	skillSectionRegexp = regexp.MustCompile(`(?i)\bskills\b`)
)

type skillsResult struct {
	score   float64
	matched []string
	missing []string
}

func (s *service) Score(ctx context.Context, resume parser.Resume, resumeText string, jobDesc string) domain.Report {
	jobSkills := s.parserSvc.ExtractSkills(jobDesc)

	skills := s.scoreSkills(ctx, resume.Skills, jobSkills, jobDesc)
	categories := domain.Categories{
		Skills:     skills.score,
		Header:     scoreHeader(resume.Contact),
		Experience: scoreExperience(resume.Experiences, jobSkills),
		Projects:   scoreProjects(resume.Projects),
		Education:  scoreEducation(resume.Educations),
		Format:     scoreFormat(resumeText),
	}

	overall := categories.Skills*s.weights.Skills +
		categories.Header*s.weights.Header +
		categories.Experience*s.weights.Experience +
		categories.Projects*s.weights.Projects +
		categories.Education*s.weights.Education +
		categories.Format*s.weights.Format

	overall = s.applyHolisticBonus(overall, categories, skills, resume)

	return domain.Report{
		OverallScore:    overall,
		Categories:      categories,
		MatchedSkills:   skills.matched,
		MissingSkills:   skills.missing,
		Classification:  domain.Classify(overall),
		Recommendations: buildRecommendations(overall, categories),
	}
}

// applyHolisticBonus 多个维度同时表现好的简历加 8 分，
// 补偿语义相似度偏保守的情况
func (s *service) applyHolisticBonus(overall float64, categories domain.Categories,
	skills skillsResult, resume parser.Resume) float64 {
	total := len(skills.matched) + len(skills.missing)
	if total == 0 {
		return overall
	}
	matchRate := float64(len(skills.matched)) / float64(total)
	if matchRate >= 0.70 &&
		categories.Skills >= 80 &&
		len(resume.Experiences) >= 2 &&
		len(resume.Projects) >= 2 &&
		categories.Experience >= 65 &&
		categories.Projects >= 60 {
		overall = min(overall+8.0, 100.0)
	}
	return overall
}

func (s *service) scoreSkills(ctx context.Context, resumeSkills, jobSkills []string, jobDesc string) skillsResult {
	required := jobSkills
	if len(required) == 0 {
		keywords := extractKeywords(jobDesc)
		if len(keywords) > maxFallbackKeywords {
			keywords = keywords[:maxFallbackKeywords]
		}
		required = keywords
	}
	if len(required) == 0 {
		return skillsResult{score: 50.0}
	}

	matched, missing := s.matcher.Match(ctx, resumeSkills, required)
	rate := float64(len(matched)) / float64(len(required))

	var score float64
	switch {
	case rate >= 0.80:
		score = 85 + (rate-0.80)*75
	case rate >= 0.60:
		score = 70 + (rate-0.60)*75
	case rate >= 0.40:
		score = 50 + (rate-0.40)*100
	default:
		score = rate * 125
	}
	return skillsResult{
		score:   min(score, 100.0),
		matched: matched,
		missing: missing,
	}
}

func scoreHeader(contact parser.Contact) float64 {
	var score float64
	if contact.Email != "" {
		score += 40
	}
	if contact.Phone != "" {
		score += 30
	}
	if contact.LinkedIn != "" {
		score += 15
	}
	if contact.GitHub != "" {
		score += 15
	}
	return min(score, 100.0)
}

func scoreExperience(experiences []parser.Entry, jobSkills []string) float64 {
	if len(experiences) == 0 {
		return 0.0
	}
	expText := strings.ToLower(joinEntries(experiences))

	const baseScore = 60.0

	var keywordScore float64
	if len(jobSkills) > 0 {
		matchedCount := 0
		for _, skill := range jobSkills {
			if strings.Contains(expText, strings.ToLower(skill)) {
				matchedCount++
			}
		}
		rate := float64(matchedCount) / float64(len(jobSkills))
		switch {
		case rate >= 0.30:
			keywordScore = 20 + (rate-0.30)*17
		case rate >= 0.15:
			keywordScore = 15 + (rate-0.15)*33
		default:
			keywordScore = rate * 100
		}
		keywordScore = min(keywordScore, 25)
	} else {
		keywordScore = 20
	}

	var qualityScore float64
	if len(experiences) >= 2 {
		atsFormatCount := 0
		for _, e := range experiences {
			if strings.Contains(e.Text, "—") || strings.Contains(e.Text, "–") {
				atsFormatCount++
			}
		}
		switch {
		case atsFormatCount >= 2:
			qualityScore = 15
		case atsFormatCount >= 1:
			qualityScore = 12
		default:
			qualityScore = 8
		}
	} else {
		qualityScore = 10
	}

	return min(baseScore+keywordScore+qualityScore, 100.0)
}

func scoreProjects(projects []parser.Entry) float64 {
	if len(projects) == 0 {
		return 0.0
	}
	projText := strings.ToLower(joinEntries(projects))

	const baseScore = 65.0

	techCount := 0
	for _, tech := range techIndicators {
		if strings.Contains(projText, tech) {
			techCount++
		}
	}
	var techScore float64
	switch {
	case techCount >= 5:
		techScore = 20
	case techCount >= 3:
		techScore = 15
	case techCount >= 1:
		techScore = 10
	default:
		techScore = 5
	}

	var qualityScore float64
	if len(projects) >= 2 {
		qualityScore = 10
		for _, p := range projects {
			if strings.Contains(p.Text, "(") && strings.Contains(p.Text, ")") {
				qualityScore = 15
				break
			}
		}
	} else {
		qualityScore = 8
	}

	return min(baseScore+techScore+qualityScore, 100.0)
}

func scoreEducation(educations []parser.Entry) float64 {
	if len(educations) == 0 {
		return 0.0
	}
	eduText := strings.ToLower(joinEntries(educations))

	const baseScore = 70.0

	var degreeScore float64
	switch {
	case containsAny(eduText, phdWords):
		degreeScore = 20
	case containsAny(eduText, masterWords):
		degreeScore = 18
	case containsAny(eduText, bachelorWords):
		degreeScore = 15
	default:
		degreeScore = 10
	}

	institutionScore := 5.0
	if containsAny(eduText, institutions) {
		institutionScore = 10
	}

	return min(baseScore+degreeScore+institutionScore, 100.0)
}

func scoreFormat(resumeText string) float64 {
	var score float64
	for _, re := range []*regexp.Regexp{expSectionRegexp, eduSectionRegexp, skillSectionRegexp} {
		if re.MatchString(resumeText) {
			score += 20
		}
	}
	if strings.ContainsAny(resumeText, "•-*") {
		score += 20
	}
	length := len(resumeText)
	switch {
	case length >= 500 && length <= 3000:
		score += 20
	case (length >= 300 && length < 500) || (length > 3000 && length <= 5000):
		score += 10
	}
	return min(score, 100.0)
}

func joinEntries(entries []parser.Entry) string {
	texts := make([]string, 0, len(entries))
	for _, e := range entries {
		texts = append(texts, e.Text)
	}
	return strings.Join(texts, " ")
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
