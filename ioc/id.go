package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/resumatch/resumatch/internal/pkg/snowflake"
)

func InitIDGenerator() snowflake.Generator {
	nodeId := econf.GetInt64("snowflake.nodeId")
	gen, err := snowflake.NewGenerator(nodeId)
	if err != nil {
		panic(err)
	}
	return gen
}
