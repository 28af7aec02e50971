//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/resumatch/resumatch/internal/ai"
	"github.com/resumatch/resumatch/internal/jd"
	"github.com/resumatch/resumatch/internal/parser"
	"github.com/resumatch/resumatch/internal/resume"
	"github.com/resumatch/resumatch/internal/scoring"
	"github.com/resumatch/resumatch/internal/search"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitES, InitIDGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ai.InitModule,
		InitEmbedder,
		parser.InitModule,
		scoring.InitModule,
		jd.InitModule,
		resume.InitModule,
		search.InitModule,
		wire.FieldsOf(new(*resume.Module), "Hdl"),
		wire.FieldsOf(new(*search.Module), "Hdl"),
		initGinxServer,
		initCronJobs)
	return new(App), nil
}
