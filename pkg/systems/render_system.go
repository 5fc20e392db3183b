package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/lostpacket/pkg/camera"
	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/ecs"
	"github.com/gonewx/lostpacket/pkg/game"
	"github.com/gonewx/lostpacket/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// 渲染配色
var (
	backgroundColor   = color.RGBA{R: 12, G: 18, B: 32, A: 255}
	gridColor         = color.RGBA{R: 30, G: 44, B: 70, A: 255}
	boundsColor       = color.RGBA{R: 70, G: 110, B: 160, A: 255}
	hudPanelColor     = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	hudTextColor      = color.RGBA{R: 230, G: 240, B: 255, A: 255}
	popupTextColor    = color.RGBA{R: 140, G: 255, B: 170, A: 255}
	pauseOverlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

const (
	hudFontSize   = 18
	popupFontSize = 22
	pauseFontSize = 36
	pulsePeriod   = 1.2 // 数据包呼吸动画周期（秒）
)

// SoundStatus 报告音效开关状态（HUD 显示用）
type SoundStatus interface {
	SoundEffectsEnabled() bool
}

// RenderSystem 绘制世界（网格、边界、数据包、特效）、奖励飘字、HUD 和暂停遮罩
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *camera.OrthographicCamera
	gameState     *game.GameState
	menu          *game.MenuManager
	sound         SoundStatus

	hudFace   *text.GoTextFace
	popupFace *text.GoTextFace
	pauseFace *text.GoTextFace
}

// NewRenderSystem 创建渲染系统并加载内置字体
// sound 可为 nil，此时 HUD 不显示音效状态
func NewRenderSystem(em *ecs.EntityManager, cam *camera.OrthographicCamera, gs *game.GameState, menu *game.MenuManager, sound SoundStatus) (*RenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	return &RenderSystem{
		entityManager: em,
		camera:        cam,
		gameState:     gs,
		menu:          menu,
		sound:         sound,
		hudFace:       &text.GoTextFace{Source: source, Size: hudFontSize},
		popupFace:     &text.GoTextFace{Source: source, Size: popupFontSize},
		pauseFace:     &text.GoTextFace{Source: source, Size: pauseFontSize},
	}, nil
}

// Update 推进数据包的呼吸动画相位
func (s *RenderSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.RenderableComponent](s.entityManager) {
		r, _ := ecs.GetComponent[*components.RenderableComponent](s.entityManager, id)
		r.Pulse = math.Mod(r.Pulse+deltaTime, pulsePeriod)
	}
}

// Draw 按层级绘制：背景 → 网格与边界 → 数据包 → 特效 → 飘字 → HUD → 暂停遮罩
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.drawGrid(screen)
	s.drawBounds(screen)
	s.drawPackets(screen)
	s.drawEffects(screen)
	s.drawPopups(screen)
	s.drawHUD(screen)
	if s.menu != nil && s.menu.IsOpen(game.MenuPause) {
		s.drawPauseOverlay(screen)
	}
}

// drawGrid 每个世界单位一条网格线，随摄像机平移
func (s *RenderSystem) drawGrid(screen *ebiten.Image) {
	halfW, halfH := s.camera.HalfExtents()
	w, h := float32(s.camera.ScreenWidth), float32(s.camera.ScreenHeight)

	for x := math.Floor(s.camera.CenterX - halfW); x <= s.camera.CenterX+halfW; x++ {
		sx, _ := s.camera.WorldToScreen(x, 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), h, 1, gridColor, false)
	}
	for z := math.Floor(s.camera.CenterZ - halfH); z <= s.camera.CenterZ+halfH; z++ {
		_, sy := s.camera.WorldToScreen(0, z)
		vector.StrokeLine(screen, 0, float32(sy), w, float32(sy), 1, gridColor, false)
	}
}

// drawBounds 绘制摄像机可移动范围
func (s *RenderSystem) drawBounds(screen *ebiten.Image) {
	x0, y0 := s.camera.WorldToScreen(s.camera.BoundsX[0], s.camera.BoundsZ[1])
	x1, y1 := s.camera.WorldToScreen(s.camera.BoundsX[1], s.camera.BoundsZ[0])
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 2, boundsColor, false)
}

func (s *RenderSystem) drawPackets(screen *ebiten.Image) {
	ppu := s.camera.PixelsPerUnit()
	packets := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.LostPacketComponent,
		*components.RenderableComponent,
	](s.entityManager)

	for _, id := range packets {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		r, _ := ecs.GetComponent[*components.RenderableComponent](s.entityManager, id)

		sx, sy := s.camera.WorldToScreen(pos.X, pos.Z)
		pulse := 1 + 0.08*math.Sin(2*math.Pi*r.Pulse/pulsePeriod)
		radius := float32(r.Radius * ppu * pulse)

		vector.DrawFilledCircle(screen, float32(sx), float32(sy), radius, r.FillColor, true)
		vector.StrokeCircle(screen, float32(sx), float32(sy), radius, 2, r.StrokeColor, true)
	}
}

func (s *RenderSystem) drawEffects(screen *ebiten.Image) {
	effects := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.CollectionEffectComponent,
	](s.entityManager)

	for _, id := range effects {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		effect, _ := ecs.GetComponent[*components.CollectionEffectComponent](s.entityManager, id)

		cx, cy := s.camera.WorldToScreen(pos.X, pos.Z)
		clr := fade(effect.Color, EffectAlpha(effect))
		for _, p := range effect.Particles {
			vector.DrawFilledCircle(screen, float32(cx+p.OffsetX), float32(cy+p.OffsetY), float32(p.Size), clr, true)
		}
	}
}

func (s *RenderSystem) drawPopups(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.RewardPopupComponent](s.entityManager) {
		popup, _ := ecs.GetComponent[*components.RewardPopupComponent](s.entityManager, id)

		x, y, alpha := PopupDrawPosition(popup)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(popupTextColor)
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, popup.Text, s.popupFace, op)
	}
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	lines := []string{
		"Bits: " + utils.FormatBits(s.gameState.GetStoredBits()),
		fmt.Sprintf("Lost packets: %d", s.gameState.LostPacketsCollected),
	}
	if s.sound != nil {
		state := "on"
		if !s.sound.SoundEffectsEnabled() {
			state = "off"
		}
		lines = append(lines, "Sound [M]: "+state)
	}

	lineHeight := float64(hudFontSize) * 1.4
	vector.DrawFilledRect(screen, 8, 8, 220, float32(lineHeight*float64(len(lines))+12), hudPanelColor, false)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(16, 14+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(hudTextColor)
		text.Draw(screen, line, s.hudFace, op)
	}
}

func (s *RenderSystem) drawPauseOverlay(screen *ebiten.Image) {
	w, h := float64(s.camera.ScreenWidth), float64(s.camera.ScreenHeight)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), pauseOverlayColor, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(w/2, h/2)
	op.ColorScale.ScaleWithColor(hudTextColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, "Paused - press ESC to resume", s.pauseFace, op)
}

// fade 按 alpha 缩放颜色（预乘）
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
