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

var _ ecron.NamedJob = (*DailyStatJob)(nil)

// DailyStatJob 每天跑一次，把前一天的评估结果聚合成一行统计
type DailyStatJob struct {
	repo repository.ReportRepo
}

func NewDailyStatJob(repo repository.ReportRepo) *DailyStatJob {
	return &DailyStatJob{
		repo: repo,
	}
}

func (d *DailyStatJob) Name() string {
	return "DailyStatJob"
}

func (d *DailyStatJob) Run(ctx context.Context) error {
	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -1)
	stat, err := d.repo.DailyStat(ctx, start, end)
	if err != nil {
		return fmt.Errorf("统计每日评估数据失败: %w", err)
	}
	if stat.Total == 0 {
		return nil
	}
	if err = d.repo.SaveDailyStat(ctx, stat); err != nil {
		return fmt.Errorf("保存每日统计失败: %w", err)
	}
	return nil
}
