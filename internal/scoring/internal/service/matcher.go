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
	"math"
	"strings"

	"github.com/gotomicro/ego/core/elog"
)

// 语义相似度超过这个阈值就算同一个技能
const semanticThreshold = 0.7

// Embedder 把文本转成向量，由 AI 模块提供实现
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// Matcher 求简历技能和岗位要求技能的交集，
// 精确匹配优先，剩下的走语义匹配
type Matcher struct {
	embedder Embedder
	logger   *elog.Component
}

func NewMatcher(embedder Embedder) *Matcher {
	return &Matcher{
		embedder: embedder,
		logger:   elog.DefaultLogger,
	}
}

// Match 返回岗位要求技能里命中的和缺失的
func (m *Matcher) Match(ctx context.Context, resumeSkills, requiredSkills []string) (matched, missing []string) {
	if len(resumeSkills) == 0 || len(requiredSkills) == 0 {
		return nil, requiredSkills
	}

	resumeLower := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeLower[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	for _, req := range requiredSkills {
		if _, ok := resumeLower[strings.ToLower(strings.TrimSpace(req))]; ok {
			matched = append(matched, req)
			continue
		}
		if m.semanticMatch(ctx, req, resumeSkills) {
			matched = append(matched, req)
			continue
		}
		missing = append(missing, req)
	}
	return matched, missing
}

func (m *Matcher) semanticMatch(ctx context.Context, req string, resumeSkills []string) bool {
	for _, skill := range resumeSkills {
		if m.similarity(ctx, req, skill) > semanticThreshold {
			return true
		}
	}
	return false
}

func (m *Matcher) similarity(ctx context.Context, text1, text2 string) float64 {
	if text1 == "" || text2 == "" {
		return 0
	}
	if m.embedder != nil {
		vecs, err := m.embedder.Embed(ctx, []string{text1, text2})
		if err == nil && len(vecs) == 2 {
			return cosine(vecs[0], vecs[1])
		}
		if err != nil {
			m.logger.Warn("获取向量失败，退化成字面相似度", elog.FieldErr(err))
		}
	}
	// 没有向量服务时退化成字符三元组的余弦相似度
	return cosine(trigramVector(text1), trigramVector(text2))
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// trigramVector 把文本映射成固定维度的字符三元组频次向量
func trigramVector(text string) []float64 {
	const dim = 512
	vec := make([]float64, dim)
	t := " " + strings.ToLower(text) + " "
	if len(t) < 3 {
		return vec
	}
	for i := 0; i+3 <= len(t); i++ {
		h := uint32(2166136261)
		for j := i; j < i+3; j++ {
			h ^= uint32(t[j])
			h *= 16777619
		}
		vec[h%dim]++
	}
	return vec
}
