package systems

import (
	"image"

	"github.com/gonewx/lostpacket/pkg/camera"
	"github.com/gonewx/lostpacket/pkg/ecs"
)

// newTestCamera 960x540 屏幕、正交尺寸 5、范围 X ±10 / Z ±8 的摄像机
func newTestCamera() *camera.OrthographicCamera {
	return &camera.OrthographicCamera{
		Size:         5,
		ScreenWidth:  960,
		ScreenHeight: 540,
		Height:       20,
		BoundsX:      [2]float64{-10, 10},
		BoundsZ:      [2]float64{-8, 8},
	}
}

type fakePointer struct {
	points []image.Point
}

func (f *fakePointer) JustPressedPoints() []image.Point {
	return f.points
}

type fakeMenu struct {
	open bool
}

func (f *fakeMenu) HasOpenMenu() bool {
	return f.open
}

type fakeCollector struct {
	collected []ecs.EntityID
}

func (f *fakeCollector) Collect(id ecs.EntityID) bool {
	f.collected = append(f.collected, id)
	return true
}

type fakeSound struct {
	enabled bool
	played  []string
}

func (f *fakeSound) SoundEffectsEnabled() bool {
	return f.enabled
}

func (f *fakeSound) PlaySound(soundID string) bool {
	f.played = append(f.played, soundID)
	return true
}

type rewardCall struct {
	screenX, screenY, reward float64
}

type fakeDisplay struct {
	calls []rewardCall
}

func (f *fakeDisplay) DisplayReward(screenX, screenY, reward float64) {
	f.calls = append(f.calls, rewardCall{screenX, screenY, reward})
}

type fakeListener struct {
	reached []ecs.EntityID
}

func (f *fakeListener) OnLostPacketReachedTarget(id ecs.EntityID) {
	f.reached = append(f.reached, id)
}

type fakePan struct {
	dx, dz float64
}

func (f *fakePan) PanDirection() (float64, float64) {
	return f.dx, f.dz
}
