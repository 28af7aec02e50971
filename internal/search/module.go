package search

import "github.com/resumatch/resumatch/internal/search/internal/event"

type Module struct {
	SearchSvc SearchService
	SyncSvc   SyncService
	c         *event.SyncConsumer
	Hdl       *Handler
}
