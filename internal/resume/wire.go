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

//go:build wireinject

package resume

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/resumatch/resumatch/internal/jd"
	"github.com/resumatch/resumatch/internal/parser"
	"github.com/resumatch/resumatch/internal/pkg/snowflake"
	"github.com/resumatch/resumatch/internal/resume/internal/event"
	"github.com/resumatch/resumatch/internal/resume/internal/job"
	"github.com/resumatch/resumatch/internal/resume/internal/repository"
	"github.com/resumatch/resumatch/internal/resume/internal/repository/cache"
	"github.com/resumatch/resumatch/internal/resume/internal/repository/dao"
	"github.com/resumatch/resumatch/internal/resume/internal/service"
	"github.com/resumatch/resumatch/internal/resume/internal/web"
	"github.com/resumatch/resumatch/internal/scoring"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	idGen snowflake.Generator,
	parserModule *parser.Module,
	scoringModule *scoring.Module,
	jdModule *jd.Module) (*Module, error) {
	wire.Build(
		InitReportDAO,
		cache.NewReportCache,
		repository.NewReportRepo,
		event.NewSyncEventProducer,
		event.NewTaskEventProducer,
		wire.FieldsOf(new(*parser.Module), "Svc"),
		wire.FieldsOf(new(*scoring.Module), "Svc"),
		wire.FieldsOf(new(*jd.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		initCleanLogsJob,
		job.NewDailyStatJob,
		initTaskConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitReportDAO(db *egorm.Component) dao.ReportDAO {
	InitTableOnce(db)
	return dao.NewReportDAO(db)
}

func initCleanLogsJob(repo repository.ReportRepo) *job.CleanProcessingLogsJob {
	// 留痕保留七天，每批删一千条
	return job.NewCleanProcessingLogsJob(repo, 7*24*time.Hour, 1000)
}

func initTaskConsumer(svc service.Service, q mq.MQ) *event.AnalysisTaskConsumer {
	c, err := event.NewAnalysisTaskConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
