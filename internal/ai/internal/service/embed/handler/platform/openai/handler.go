package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/resumatch/resumatch/internal/ai/internal/domain"
)

// Handler 走 OpenAI 兼容协议的向量化出口，
// 国内的兼容服务改一下 baseUrl 就能用
type Handler struct {
	client *openai.Client
	model  string
}

func NewHandler(apikey, baseUrl, model string) *Handler {
	opts := []option.RequestOption{
		option.WithAPIKey(apikey),
	}
	if baseUrl != "" {
		opts = append(opts, option.WithBaseURL(baseUrl))
	}
	if model == "" {
		model = string(openai.EmbeddingModelTextEmbedding3Small)
	}
	return &Handler{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (h *Handler) Name() string {
	return "openai"
}

func (h *Handler) Handle(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error) {
	res, err := h.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.F[openai.EmbeddingNewParamsInputUnion](
			openai.EmbeddingNewParamsInputArrayOfStrings(req.Texts)),
		Model: openai.F(openai.EmbeddingModel(h.model)),
	})
	if err != nil {
		return domain.EmbedResponse{}, err
	}
	resp := domain.EmbedResponse{
		Vectors: make([][]float64, 0, len(res.Data)),
		Tokens:  res.Usage.TotalTokens,
	}
	for _, data := range res.Data {
		resp.Vectors = append(resp.Vectors, data.Embedding)
	}
	return resp, nil
}
