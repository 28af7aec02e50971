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

package scoring

import (
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/resumatch/resumatch/internal/parser"
	"github.com/resumatch/resumatch/internal/scoring/internal/service"
)

func InitModule(parserModule *parser.Module, embedder service.Embedder) *Module {
	wire.Build(
		wire.FieldsOf(new(*parser.Module), "Svc"),
		service.NewMatcher,
		initWeights,
		service.NewService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initWeights() service.Weights {
	weights := service.DefaultWeights()
	if econf.Get("scoring.weights") != nil {
		if err := econf.UnmarshalKey("scoring.weights", &weights); err != nil {
			panic(err)
		}
	}
	if err := weights.Validate(); err != nil {
		panic(err)
	}
	return weights
}
