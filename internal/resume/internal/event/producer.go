package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/resumatch/resumatch/internal/pkg/mqx"
)

type SyncEventProducer interface {
	Produce(ctx context.Context, evt ReportEvent) error
}

func NewSyncEventProducer(q mq.MQ) (SyncEventProducer, error) {
	return mqx.NewGeneralProducer[ReportEvent](q, SyncTopic)
}

type TaskEventProducer interface {
	Produce(ctx context.Context, evt AnalysisTaskEvent) error
}

func NewTaskEventProducer(q mq.MQ) (TaskEventProducer, error) {
	return mqx.NewGeneralProducer[AnalysisTaskEvent](q, TaskTopic)
}
