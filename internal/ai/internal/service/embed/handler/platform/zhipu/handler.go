package zhipu

import (
	"context"

	"github.com/resumatch/resumatch/internal/ai/internal/domain"
	"github.com/yankeguo/zhipu"
)

// Handler 智谱的向量化出口
type Handler struct {
	client *zhipu.Client
	model  string
}

func NewHandler(apikey string, model string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = "embedding-2"
	}
	return &Handler{
		client: client,
		model:  model,
	}, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error) {
	// 这边它不会调用 next，因为它是最终的出口
	resp := domain.EmbedResponse{
		Vectors: make([][]float64, 0, len(req.Texts)),
	}
	// 智谱的向量接口一次只接一段文本
	for _, text := range req.Texts {
		res, err := h.client.Embedding(h.model).SetInput(text).Do(ctx)
		if err != nil {
			return domain.EmbedResponse{}, err
		}
		var vec []float64
		if len(res.Data) > 0 {
			vec = res.Data[0].Embedding
		}
		resp.Vectors = append(resp.Vectors, vec)
		resp.Tokens += res.Usage.TotalTokens
	}
	return resp, nil
}
