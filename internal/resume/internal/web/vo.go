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

package web

import (
	"math"

	"github.com/ecodeclub/ekit/slice"
	"github.com/resumatch/resumatch/internal/resume/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ReportVO struct {
	Tid             string             `json:"tid"`
	Filename        string             `json:"filename"`
	HeaderTitle     string             `json:"headerTitle,omitempty"`
	Contact         ContactVO          `json:"contact"`
	Skills          []string           `json:"skills,omitempty"`
	MatchedSkills   []string           `json:"matchedSkills,omitempty"`
	MissingSkills   []string           `json:"missingSkills,omitempty"`
	OverallScore    float64            `json:"overallScore"`
	Categories      CategoryScoresVO   `json:"categories"`
	Classification  string             `json:"classification"`
	Recommendations []RecommendationVO `json:"recommendations,omitempty"`
	Utime           int64              `json:"utime,omitempty"`
}

type RecommendationVO struct {
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactVO struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type CategoryScoresVO struct {
	Skills     float64 `json:"skills"`
	Header     float64 `json:"header"`
	Experience float64 `json:"experience"`
	Projects   float64 `json:"projects"`
	Education  float64 `json:"education"`
	Format     float64 `json:"format"`
}

type ReportListVO struct {
	Total   int64      `json:"total"`
	Reports []ReportVO `json:"reports"`
}

type AsyncTaskVO struct {
	Tid string `json:"tid"`
}

func newReportVO(r domain.Report) ReportVO {
	return ReportVO{
		Tid:         r.Tid,
		Filename:    r.Filename,
		HeaderTitle: r.HeaderTitle,
		Contact: ContactVO{
			Name:     r.Contact.Name,
			Email:    r.Contact.Email,
			Phone:    r.Contact.Phone,
			Location: r.Contact.Location,
			LinkedIn: r.Contact.LinkedIn,
			GitHub:   r.Contact.GitHub,
		},
		Skills:        r.Skills,
		MatchedSkills: r.MatchedSkills,
		MissingSkills: r.MissingSkills,
		OverallScore:  round1(r.OverallScore),
		Categories: CategoryScoresVO{
			Skills:     round1(r.Categories.Skills),
			Header:     round1(r.Categories.Header),
			Experience: round1(r.Categories.Experience),
			Projects:   round1(r.Categories.Projects),
			Education:  round1(r.Categories.Education),
			Format:     round1(r.Categories.Format),
		},
		Classification: r.Classification,
		Recommendations: slice.Map(r.Recommendations, func(idx int, src domain.Recommendation) RecommendationVO {
			return RecommendationVO{
				Priority:    src.Priority,
				Category:    src.Category,
				Title:       src.Title,
				Description: src.Description,
			}
		}),
		Utime: r.Utime,
	}
}

// round1 展示层统一保留一位小数，存储侧保留原始精度
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
