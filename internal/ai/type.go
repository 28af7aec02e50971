package ai

import (
	"github.com/resumatch/resumatch/internal/ai/internal/domain"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed"
)

type EmbedRequest = domain.EmbedRequest
type EmbedResponse = domain.EmbedResponse
type EmbedService = embed.Service

const BizSkillMatch = domain.BizSkillMatch
