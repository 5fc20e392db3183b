// Package camera 实现俯视正交摄像机：屏幕坐标与世界坐标互转、生成拾取射线
package camera

import (
	"github.com/gonewx/lostpacket/pkg/physics"
)

// OrthographicCamera 俯视正交摄像机
//
// 摄像机位于 (CenterX, Height, CenterZ)，沿 -Y 方向向下看。
// Size 为可视区域半高（世界单位），半宽 = Size * Aspect()。
// 屏幕 X 向右对应世界 +X，屏幕 Y 向下对应世界 -Z。
type OrthographicCamera struct {
	Size         float64
	ScreenWidth  int
	ScreenHeight int
	Height       float64

	CenterX float64
	CenterZ float64

	// 摄像机中心允许移动的范围 [min, max]
	BoundsX [2]float64
	BoundsZ [2]float64
}

// Aspect 返回屏幕宽高比
func (c *OrthographicCamera) Aspect() float64 {
	if c.ScreenHeight == 0 {
		return 1
	}
	return float64(c.ScreenWidth) / float64(c.ScreenHeight)
}

// HalfExtents 返回可视区域的半宽和半高（世界单位）
func (c *OrthographicCamera) HalfExtents() (halfWidth, halfHeight float64) {
	return c.Size * c.Aspect(), c.Size
}

// ScreenToWorld 屏幕坐标转换为地面（XZ 平面）世界坐标
func (c *OrthographicCamera) ScreenToWorld(screenX, screenY float64) (x, z float64) {
	halfW, halfH := c.HalfExtents()
	u := screenX/float64(c.ScreenWidth) - 0.5
	v := 0.5 - screenY/float64(c.ScreenHeight)
	return c.CenterX + u*2*halfW, c.CenterZ + v*2*halfH
}

// WorldToScreen 世界坐标（XZ 平面）转换为屏幕坐标
func (c *OrthographicCamera) WorldToScreen(x, z float64) (screenX, screenY float64) {
	halfW, halfH := c.HalfExtents()
	u := (x - c.CenterX) / (2 * halfW)
	v := (z - c.CenterZ) / (2 * halfH)
	return (u + 0.5) * float64(c.ScreenWidth), (0.5 - v) * float64(c.ScreenHeight)
}

// PixelsPerUnit 返回一个世界单位对应的屏幕像素数
func (c *OrthographicCamera) PixelsPerUnit() float64 {
	if c.Size == 0 {
		return 0
	}
	return float64(c.ScreenHeight) / (2 * c.Size)
}

// ScreenPointToRay 生成穿过屏幕点的拾取射线
// 正交投影下所有射线方向相同，起点随屏幕点平移
func (c *OrthographicCamera) ScreenPointToRay(screenX, screenY float64) physics.Ray {
	x, z := c.ScreenToWorld(screenX, screenY)
	return physics.Ray{
		Origin:    physics.Vec3{X: x, Y: c.Height, Z: z},
		Direction: physics.Vec3{X: 0, Y: -1, Z: 0},
	}
}

// Pan 平移摄像机中心，结果限制在 BoundsX/BoundsZ 范围内
func (c *OrthographicCamera) Pan(dx, dz float64) {
	c.CenterX = clamp(c.CenterX+dx, c.BoundsX[0], c.BoundsX[1])
	c.CenterZ = clamp(c.CenterZ+dz, c.BoundsZ[0], c.BoundsZ[1])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
