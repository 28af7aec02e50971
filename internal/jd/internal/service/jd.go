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
	"crypto/sha256"
	"encoding/hex"

	"github.com/resumatch/resumatch/internal/jd/internal/domain"
	"github.com/resumatch/resumatch/internal/jd/internal/repository"
)

//go:generate mockgen -source=./jd.go -destination=../../mocks/jd.mock.go -package=jdmocks -typed=true Service
type Service interface {
	// FindOrCreate 按内容哈希找到已有的岗位描述，没有就建一条
	FindOrCreate(ctx context.Context, text string) (domain.JD, error)
	Find(ctx context.Context, id int64) (domain.JD, error)
	List(ctx context.Context, offset, limit int) ([]domain.JD, error)
}

type service struct {
	repo repository.JobDescriptionRepo
}

func NewService(repo repository.JobDescriptionRepo) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) FindOrCreate(ctx context.Context, text string) (domain.JD, error) {
	return s.repo.FindOrCreate(ctx, domain.JD{
		Sha256: Sha256Hex(text),
		Text:   text,
	})
}

func (s *service) Find(ctx context.Context, id int64) (domain.JD, error) {
	return s.repo.Find(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.JD, error) {
	return s.repo.List(ctx, offset, limit)
}

// Sha256Hex 内容去重用的哈希
func Sha256Hex(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
