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

package jd

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/resumatch/resumatch/internal/jd/internal/repository"
	"github.com/resumatch/resumatch/internal/jd/internal/repository/cache"
	"github.com/resumatch/resumatch/internal/jd/internal/repository/dao"
	"github.com/resumatch/resumatch/internal/jd/internal/service"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		InitJobDescriptionDAO,
		cache.NewJDCache,
		repository.NewJobDescriptionRepo,
		service.NewService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
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

func InitJobDescriptionDAO(db *egorm.Component) dao.JobDescriptionDAO {
	InitTableOnce(db)
	return dao.NewJobDescriptionDAO(db)
}
