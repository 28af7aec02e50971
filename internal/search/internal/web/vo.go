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
	"github.com/ecodeclub/ekit/slice"
	"github.com/resumatch/resumatch/internal/search/internal/domain"
)

type SearchReq struct {
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	KeyWords string `json:"keywords"`
}

type ReportVO struct {
	Tid            string              `json:"tid"`
	Filename       string              `json:"filename"`
	HeaderTitle    string              `json:"headerTitle,omitempty"`
	Name           string              `json:"name,omitempty"`
	Email          string              `json:"email,omitempty"`
	Skills         []string            `json:"skills,omitempty"`
	MatchedSkills  []string            `json:"matchedSkills,omitempty"`
	MissingSkills  []string            `json:"missingSkills,omitempty"`
	OverallScore   float64             `json:"overallScore"`
	Classification string              `json:"classification"`
	HighLights     map[string][]string `json:"highLights,omitempty"`
	Utime          int64               `json:"utime,omitempty"`
}

type SearchResultVO struct {
	Reports []ReportVO `json:"reports"`
}

func NewSearchResult(reports []domain.Report) SearchResultVO {
	return SearchResultVO{
		Reports: slice.Map(reports, func(idx int, src domain.Report) ReportVO {
			return ReportVO{
				Tid:            src.Tid,
				Filename:       src.Filename,
				HeaderTitle:    src.HeaderTitle,
				Name:           src.Name,
				Email:          src.Email,
				Skills:         src.Skills,
				MatchedSkills:  src.MatchedSkills,
				MissingSkills:  src.MissingSkills,
				OverallScore:   src.OverallScore,
				Classification: src.Classification,
				HighLights:     src.EsHighLights,
				Utime:          src.Utime,
			}
		}),
	}
}
