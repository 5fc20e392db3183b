package components

// PositionComponent 存储实体在世界坐标系中的位置
// 游戏世界为俯视视角：X 为水平方向，Z 为纵深方向，Y 为高度
type PositionComponent struct {
	X float64
	Y float64
	Z float64
}
