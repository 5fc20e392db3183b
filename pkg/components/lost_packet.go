package components

// LostPacketState 表示丢失数据包的状态
type LostPacketState int

const (
	LostPacketIdle      LostPacketState = iota // 在对象池中闲置
	LostPacketDrifting                         // 正在飘向目标点
	LostPacketCollected                        // 已被玩家收集（等待归还对象池）
)

// LostPacketComponent 标记实体为丢失数据包，并存储漂移目标
type LostPacketComponent struct {
	State   LostPacketState
	TargetX float64 // 漂移目标X坐标（世界坐标）
	TargetZ float64 // 漂移目标Z坐标（世界坐标）
	Speed   float64 // 漂移速度（世界单位/秒）
}
