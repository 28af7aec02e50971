package search

import (
	"github.com/resumatch/resumatch/internal/search/internal/domain"
	"github.com/resumatch/resumatch/internal/search/internal/service"
	"github.com/resumatch/resumatch/internal/search/internal/web"
)

type Report = domain.Report
type SearchService = service.SearchService
type SyncService = service.SyncService
type Handler = web.Handler
