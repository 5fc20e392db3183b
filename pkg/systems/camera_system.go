package systems

import (
	"github.com/gonewx/lostpacket/pkg/camera"
)

// PanSource 提供摄像机平移方向（-1/0/1）
type PanSource interface {
	PanDirection() (dx, dz float64)
}

// CameraSystem 根据方向键平移摄像机
// 摄像机中心被限制在可移动范围内
type CameraSystem struct {
	camera *camera.OrthographicCamera
	input  PanSource
	speed  float64 // 世界单位/秒
}

// NewCameraSystem 创建摄像机控制系统
func NewCameraSystem(cam *camera.OrthographicCamera, input PanSource, speed float64) *CameraSystem {
	return &CameraSystem{
		camera: cam,
		input:  input,
		speed:  speed,
	}
}

// Update 按输入方向平移摄像机
func (cs *CameraSystem) Update(dt float64) {
	dx, dz := cs.input.PanDirection()
	if dx == 0 && dz == 0 {
		return
	}
	cs.camera.Pan(dx*cs.speed*dt, dz*cs.speed*dt)
}
