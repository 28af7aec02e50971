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

package search

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
	"github.com/resumatch/resumatch/internal/search/internal/event"
	"github.com/resumatch/resumatch/internal/search/internal/repository"
	"github.com/resumatch/resumatch/internal/search/internal/repository/dao"
	"github.com/resumatch/resumatch/internal/search/internal/service"
	"github.com/resumatch/resumatch/internal/search/internal/web"
)

func InitModule(es *elastic.Client, q mq.MQ) (*Module, error) {
	wire.Build(
		InitReportDAO,
		repository.NewReportRepo,
		service.NewSearchSvc,
		InitSyncSvc,
		initSyncConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitIndexOnce(es *elastic.Client) {
	daoOnce.Do(func() {
		err := dao.InitES(es)
		if err != nil {
			panic(err)
		}
	})
}

func InitReportDAO(es *elastic.Client) dao.ReportDAO {
	InitIndexOnce(es)
	return dao.NewReportDAO(es)
}

func InitSyncSvc(es *elastic.Client) service.SyncService {
	InitIndexOnce(es)
	anyDAO := dao.NewAnyEsDAO(es)
	anyRepo := repository.NewAnyRepo(anyDAO)
	return service.NewSyncSvc(anyRepo)
}

func initSyncConsumer(svc service.SyncService, q mq.MQ) *event.SyncConsumer {
	c, err := event.NewSyncConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
