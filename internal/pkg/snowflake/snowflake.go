package snowflake

import (
	"github.com/bwmarrin/snowflake"
)

// Generator 生成报告等业务实体的全局唯一 ID
type Generator interface {
	Generate() ID
}

type ID int64

func (i ID) Int64() int64 {
	return int64(i)
}

type generator struct {
	node *snowflake.Node
}

// NewGenerator nodeId 表示第几个节点，多实例部署时从配置读取
func NewGenerator(nodeId int64) (Generator, error) {
	n, err := snowflake.NewNode(nodeId)
	if err != nil {
		return nil, err
	}
	return &generator{node: n}, nil
}

func (g *generator) Generate() ID {
	return ID(g.node.Generate().Int64())
}
