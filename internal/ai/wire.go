//go:build wireinject

package ai

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/resumatch/resumatch/internal/ai/internal/repository"
	"github.com/resumatch/resumatch/internal/ai/internal/repository/dao"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler/log"
	"github.com/resumatch/resumatch/internal/ai/internal/service/embed/handler/record"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		InitEmbedRecordDAO,
		repository.NewEmbedLogRepo,

		log.NewHandler,
		record.NewHandler,
		InitCommonHandlers,
		InitEmbedHandler,

		embed.NewService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitEmbedRecordDAO(db *egorm.Component) dao.EmbedRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMEmbedRecordDAO(db)
}
