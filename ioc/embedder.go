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

package ioc

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
	"github.com/resumatch/resumatch/internal/ai"
	"github.com/resumatch/resumatch/internal/scoring"
)

// InitEmbedder 把 AI 模块的向量化能力适配成评分模块要的形状
func InitEmbedder(aiModule *ai.Module) scoring.Embedder {
	return &aiEmbedder{svc: aiModule.Svc}
}

type aiEmbedder struct {
	svc ai.EmbedService
}

func (a *aiEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	resp, err := a.svc.Invoke(ctx, ai.EmbedRequest{
		Biz:   ai.BizSkillMatch,
		Tid:   shortuuid.New(),
		Texts: texts,
	})
	if err != nil {
		return nil, err
	}
	return resp.Vectors, nil
}
