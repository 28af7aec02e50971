package service

import (
	"context"
	"testing"

	"github.com/resumatch/resumatch/internal/jd/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	lastSaved domain.JD
}

func (f *fakeRepo) FindOrCreate(ctx context.Context, jd domain.JD) (domain.JD, error) {
	f.lastSaved = jd
	jd.Id = 1
	jd.UsageCount = 1
	return jd, nil
}

func (f *fakeRepo) Find(ctx context.Context, id int64) (domain.JD, error) {
	return domain.JD{Id: id}, nil
}

func (f *fakeRepo) List(ctx context.Context, offset, limit int) ([]domain.JD, error) {
	return []domain.JD{f.lastSaved}, nil
}

func TestService_FindOrCreate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	jd, err := svc.FindOrCreate(context.Background(), "We need a Go engineer")
	require.NoError(t, err)
	assert.Equal(t, int64(1), jd.Id)
	assert.Equal(t, Sha256Hex("We need a Go engineer"), repo.lastSaved.Sha256)
	assert.Equal(t, "We need a Go engineer", repo.lastSaved.Text)
}

func TestSha256Hex(t *testing.T) {
	// 相同内容哈希一致，不同内容哈希不同
	assert.Equal(t, Sha256Hex("abc"), Sha256Hex("abc"))
	assert.NotEqual(t, Sha256Hex("abc"), Sha256Hex("abd"))
	assert.Len(t, Sha256Hex(""), 64)
}
