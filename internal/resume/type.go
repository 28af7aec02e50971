package resume

import (
	"github.com/resumatch/resumatch/internal/resume/internal/domain"
	"github.com/resumatch/resumatch/internal/resume/internal/service"
	"github.com/resumatch/resumatch/internal/resume/internal/web"
)

type Report = domain.Report
type Contact = domain.Contact
type CategoryScores = domain.CategoryScores
type Recommendation = domain.Recommendation
type Service = service.Service
type Handler = web.Handler
