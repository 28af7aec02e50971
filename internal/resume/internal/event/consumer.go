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

package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/resumatch/resumatch/internal/resume/internal/domain"
)

// AnalysisService 消费方只依赖文本评估这一个能力
type AnalysisService interface {
	AnalyzeText(ctx context.Context, tid, filename, resumeText, jobDesc string) (domain.Report, error)
}

// AnalysisTaskConsumer 消费异步评估任务
type AnalysisTaskConsumer struct {
	svc      AnalysisService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewAnalysisTaskConsumer(svc AnalysisService, q mq.MQ) (*AnalysisTaskConsumer, error) {
	groupID := "resume_analysis"
	consumer, err := q.Consumer(TaskTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &AnalysisTaskConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *AnalysisTaskConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费评估任务失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *AnalysisTaskConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}
	var evt AnalysisTaskEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	_, err = c.svc.AnalyzeText(ctx, evt.Tid, evt.Filename, evt.ResumeText, evt.JobDesc)
	return err
}

func (c *AnalysisTaskConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
