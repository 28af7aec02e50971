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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/task/ecron"
	"github.com/resumatch/resumatch/internal/resume/internal/repository"
)

var _ ecron.NamedJob = (*CleanProcessingLogsJob)(nil)

// CleanProcessingLogsJob 定期清理过旧的处理留痕，免得表无限膨胀
type CleanProcessingLogsJob struct {
	repo      repository.ReportRepo
	retention time.Duration
	limit     int
}

func NewCleanProcessingLogsJob(repo repository.ReportRepo, retention time.Duration, limit int) *CleanProcessingLogsJob {
	return &CleanProcessingLogsJob{
		repo:      repo,
		retention: retention,
		limit:     limit,
	}
}

func (c *CleanProcessingLogsJob) Name() string {
	return "CleanProcessingLogsJob"
}

func (c *CleanProcessingLogsJob) Run(ctx context.Context) error {
	before := time.Now().Add(-c.retention)
	for {
		deleted, err := c.repo.RemoveProcessingLogsBefore(ctx, before, c.limit)
		if err != nil {
			return fmt.Errorf("清理处理留痕失败: %w", err)
		}
		if deleted < int64(c.limit) {
			return nil
		}
	}
}
