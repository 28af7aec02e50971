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

package embed

import (
	"context"

	"github.com/resumatch/resumatch/internal/ai/internal/domain"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler"
)

//go:generate mockgen -source=./embed.go -destination=../../../mocks/embed.mock.go -package=aimocks -typed=true Service
type Service interface {
	Invoke(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error)
}

type embedService struct {
	handler handler.Handler
}

func NewService(root handler.Handler) Service {
	return &embedService{
		handler: root,
	}
}

func (g *embedService) Invoke(ctx context.Context, req domain.EmbedRequest) (domain.EmbedResponse, error) {
	return g.handler.Handle(ctx, req)
}
