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

	"github.com/resumatch/resumatch/internal/search/internal/domain"
	"github.com/resumatch/resumatch/internal/search/internal/repository"
)

type SearchService interface {
	Search(ctx context.Context, offset, limit int, keywords string) ([]domain.Report, error)
}

type searchSvc struct {
	reportRepo repository.ReportRepo
}

func NewSearchSvc(reportRepo repository.ReportRepo) SearchService {
	return &searchSvc{
		reportRepo: reportRepo,
	}
}

func (s *searchSvc) Search(ctx context.Context, offset, limit int, keywords string) ([]domain.Report, error) {
	return s.reportRepo.SearchReport(ctx, offset, limit, keywords)
}
