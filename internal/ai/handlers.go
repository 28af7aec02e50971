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

package ai

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler/log"
	openaihdl "github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler/platform/openai"
	zhipuhdl "github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler/platform/zhipu"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler/record"
)

func InitCommonHandlers(log *log.HandlerBuilder, record *record.HandlerBuilder) []handler.Builder {
	// 顺序即调用顺序
	return []handler.Builder{log, record}
}

// InitEmbedHandler 组装 log -> record -> platform 的调用链
func InitEmbedHandler(common []handler.Builder) handler.Handler {
	res := initPlatform()
	for i := len(common) - 1; i >= 0; i-- {
		res = common[i].Next(res)
	}
	return res
}

// initPlatform 按配置选平台出口，默认智谱
func initPlatform() handler.Handler {
	type Config struct {
		Platform string `yaml:"platform"`
		APIKey   string `yaml:"apikey"`
		BaseURL  string `yaml:"baseUrl"`
		Model    string `yaml:"model"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Platform == "openai" {
		return openaihdl.NewHandler(cfg.APIKey, cfg.BaseURL, cfg.Model)
	}
	h, err := zhipuhdl.NewHandler(cfg.APIKey, cfg.Model)
	if err != nil {
		panic(err)
	}
	return h
}
