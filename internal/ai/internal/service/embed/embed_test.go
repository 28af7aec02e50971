package embed

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/resumatch/resumatch/internal/ai/internal/domain"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler/log"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	saved []domain.EmbedRecord
}

func (f *fakeLogRepo) SaveLog(ctx context.Context, l domain.EmbedRecord) (int64, error) {
	f.saved = append(f.saved, l)
	return int64(len(f.saved)), nil
}

func newChain(repo *fakeLogRepo, platform handler.Handler) Service {
	builders := []handler.Builder{log.NewHandler(), record.NewHandler(repo)}
	root := platform
	for i := len(builders) - 1; i >= 0; i-- {
		root = builders[i].Next(root)
	}
	return NewService(root)
}

func TestService_Invoke(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := newChain(repo, handler.HandleFunc(
		func(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error) {
			vecs := make([][]float64, 0, len(req.Texts))
			for range req.Texts {
				vecs = append(vecs, []float64{0.1, 0.2})
			}
			return domain.EmbedResponse{Vectors: vecs, Tokens: 7}, nil
		}))

	resp, err := svc.Invoke(context.Background(), domain.EmbedRequest{
		Biz:   domain.BizSkillMatch,
		Tid:   "tid-1",
		Texts: []string{"python", "golang"},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Vectors, 2)
	assert.Equal(t, int64(7), resp.Tokens)

	require.Len(t, repo.saved, 1)
	rec := repo.saved[0]
	assert.Equal(t, "tid-1", rec.Tid)
	assert.Equal(t, domain.RecordStatusSuccess, rec.Status)
	assert.Equal(t, int64(7), rec.Tokens)
}

func TestService_Invoke_Failed(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := newChain(repo, handler.HandleFunc(
		func(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error) {
			return domain.EmbedResponse{}, errors.New("平台故障")
		}))

	_, err := svc.Invoke(context.Background(), domain.EmbedRequest{
		Biz:   domain.BizSkillMatch,
		Tid:   "tid-2",
		Texts: []string{"python"},
	})
	require.Error(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, domain.RecordStatusFailed, repo.saved[0].Status)
}
