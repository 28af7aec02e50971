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

package dao

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"
)

const (
	ReportIndexName = "report_index"
)

type Report struct {
	Id             int64               `json:"id"`
	Tid            string              `json:"tid"`
	Filename       string              `json:"filename"`
	HeaderTitle    string              `json:"header_title"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Skills         []string            `json:"skills"`
	MatchedSkills  []string            `json:"matched_skills"`
	MissingSkills  []string            `json:"missing_skills"`
	OverallScore   float64             `json:"overall_score"`
	Classification string              `json:"classification"`
	EsHighLights   map[string][]string `json:"-"`
	Ctime          int64               `json:"ctime"`
	Utime          int64               `json:"utime"`
}

type ReportDAO interface {
	SearchReport(ctx context.Context, offset, limit int, keywords string) ([]Report, error)
}

type reportElasticDAO struct {
	client *elastic.Client
}

func NewReportDAO(client *elastic.Client) ReportDAO {
	return &reportElasticDAO{
		client: client,
	}
}

func (r *reportElasticDAO) SearchReport(ctx context.Context, offset, limit int, keywords string) ([]Report, error) {
	// 技能和职位命中权重高一点，文件名兜底
	query := elastic.NewBoolQuery().Should(
		elastic.NewMatchQuery("skills", keywords).Boost(3),
		elastic.NewMatchQuery("matched_skills", keywords).Boost(3),
		elastic.NewMatchQuery("header_title", keywords).Boost(2),
		elastic.NewMatchQuery("name", keywords).Boost(2),
		elastic.NewMatchQuery("classification", keywords),
		elastic.NewMatchQuery("filename", keywords),
	)
	resp, err := r.client.Search(ReportIndexName).
		From(offset).
		Size(limit).
		Query(query).
		Highlight(elastic.NewHighlight().Fields(
			elastic.NewHighlighterField("skills"),
			elastic.NewHighlighterField("header_title"),
		)).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Report, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Report
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		ele.EsHighLights = getEsHighLights(hit.Highlight)
		res = append(res, ele)
	}
	return res, nil
}

func getEsHighLights(highlight elastic.SearchHitHighlight) map[string][]string {
	res := make(map[string][]string, len(highlight))
	for field, vals := range highlight {
		res[field] = vals
	}
	return res
}
