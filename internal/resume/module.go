package resume

import (
	"github.com/resumatch/resumatch/internal/resume/internal/event"
	"github.com/resumatch/resumatch/internal/resume/internal/job"
)

type Module struct {
	Svc          Service
	Hdl          *Handler
	CleanLogsJob *job.CleanProcessingLogsJob
	StatJob      *job.DailyStatJob
	c            *event.AnalysisTaskConsumer
}
