package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type embedderFunc func(ctx context.Context, texts []string) ([][]float64, error)

func (f embedderFunc) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	return f(ctx, texts)
}

func TestMatcher_Match_Exact(t *testing.T) {
	m := NewMatcher(nil)
	matched, missing := m.Match(context.Background(),
		[]string{"Python", "docker "}, []string{"python", "Docker", "kubernetes"})
	assert.Equal(t, []string{"python", "Docker"}, matched)
	assert.Equal(t, []string{"kubernetes"}, missing)
}

func TestMatcher_Match_Empty(t *testing.T) {
	m := NewMatcher(nil)
	matched, missing := m.Match(context.Background(), nil, []string{"python"})
	assert.Empty(t, matched)
	assert.Equal(t, []string{"python"}, missing)
}

func TestMatcher_Match_Semantic(t *testing.T) {
	// 向量服务把所有文本都映射到同一个向量，余弦相似度恒为 1
	m := NewMatcher(embedderFunc(func(ctx context.Context, texts []string) ([][]float64, error) {
		vecs := make([][]float64, 0, len(texts))
		for range texts {
			vecs = append(vecs, []float64{1, 0, 0})
		}
		return vecs, nil
	}))
	matched, missing := m.Match(context.Background(), []string{"golang"}, []string{"kubernetes"})
	assert.Equal(t, []string{"kubernetes"}, matched)
	assert.Empty(t, missing)
}

func TestMatcher_Match_EmbedderError(t *testing.T) {
	// 向量服务挂了退化成字面相似度，不相近的词应该算缺失
	m := NewMatcher(embedderFunc(func(ctx context.Context, texts []string) ([][]float64, error) {
		return nil, errors.New("模拟向量服务故障")
	}))
	matched, missing := m.Match(context.Background(), []string{"python"}, []string{"kubernetes"})
	assert.Empty(t, matched)
	assert.Equal(t, []string{"kubernetes"}, missing)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.Zero(t, cosine([]float64{1}, []float64{1, 2}))
	assert.Zero(t, cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestTrigramSimilarity(t *testing.T) {
	// 同一个词字面相似度为 1，完全不同的词接近 0
	same := cosine(trigramVector("kubernetes"), trigramVector("Kubernetes"))
	assert.InDelta(t, 1.0, same, 1e-9)
	diff := cosine(trigramVector("sql"), trigramVector("photoshop"))
	assert.Less(t, diff, 0.7)
}
