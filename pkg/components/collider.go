package components

// TagLostPacket 丢失数据包的碰撞标签
const TagLostPacket = "Lost Packet"

// SphereColliderComponent 球形碰撞体，中心为实体位置
// 用于射线检测（点击拾取）
type SphereColliderComponent struct {
	Radius float64
}

// TagComponent 为实体打上标签，射线命中后用于区分命中对象的类别
type TagComponent struct {
	Name string
}
