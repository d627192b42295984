package types

// ShoppingListRow 购物清单聚合行：同一配料跨菜谱合并求和
type ShoppingListRow struct {
	Seq             int    `json:"seq"` // 从 1 开始
	Name            string `json:"name"`
	Amount          int64  `json:"amount"`
	MeasurementUnit string `json:"measurement_unit"`
}

// ShoppingListFile 购物清单导出文件
type ShoppingListFile struct {
	Filename string
	Content  []byte
}
