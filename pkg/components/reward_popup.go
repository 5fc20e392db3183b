package components

// RewardPopupComponent 奖励数值飘字（屏幕坐标）
type RewardPopupComponent struct {
	Text     string
	ScreenX  float64
	ScreenY  float64
	Rise     float64 // 飘字总上升高度（像素）
	Elapsed  float64
	Duration float64
}
