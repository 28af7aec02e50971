package scoring

import (
	"github.com/resumatch/resumatch/internal/scoring/internal/domain"
	"github.com/resumatch/resumatch/internal/scoring/internal/service"
)

type Report = domain.Report
type Categories = domain.Categories
type Recommendation = domain.Recommendation
type Service = service.Service
type Embedder = service.Embedder

const (
	ClassificationGoodFit          = domain.ClassificationGoodFit
	ClassificationPotentialFit     = domain.ClassificationPotentialFit
	ClassificationNeedsImprovement = domain.ClassificationNeedsImprovement
)
