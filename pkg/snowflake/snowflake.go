package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成全局唯一 ID（用户、菜谱主键）
func GenID() int64 {
	return node.Generate().Int64()
}
