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

	"github.com/ecodeclub/ekit/slice"
	"github.com/resumatch/resumatch/internal/search/internal/domain"
	"github.com/resumatch/resumatch/internal/search/internal/repository/dao"
)

type ReportRepo interface {
	SearchReport(ctx context.Context, offset, limit int, keywords string) ([]domain.Report, error)
}

type reportRepo struct {
	reportDao dao.ReportDAO
}

func NewReportRepo(reportDao dao.ReportDAO) ReportRepo {
	return &reportRepo{
		reportDao: reportDao,
	}
}

func (r *reportRepo) SearchReport(ctx context.Context, offset, limit int, keywords string) ([]domain.Report, error) {
	reports, err := r.reportDao.SearchReport(ctx, offset, limit, keywords)
	if err != nil {
		return nil, err
	}
	return slice.Map(reports, func(idx int, src dao.Report) domain.Report {
		return domain.Report{
			Id:             src.Id,
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
			EsHighLights:   src.EsHighLights,
			Ctime:          src.Ctime,
			Utime:          src.Utime,
		}
	}), nil
}
