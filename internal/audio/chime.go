// Package audio 合成游戏内使用的短音效
//
// 合成结果是 16 位有符号小端立体声 PCM，可直接交给 ebiten 的 audio.Context 播放。
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// chimeNote 单个音符
type chimeNote struct {
	freq     float64
	duration time.Duration
}

// 收集音效：三个快速上行的音符
var collectChime = []chimeNote{
	{freq: 880, duration: 60 * time.Millisecond},
	{freq: 1175, duration: 60 * time.Millisecond},
	{freq: 1568, duration: 140 * time.Millisecond},
}

// CollectChime 合成数据包收集音效
//
// 参数:
//   - sampleRate: 目标采样率（与 audio.Context 一致）
//
// 返回:
//   - []byte: 16 位小端立体声 PCM
func CollectChime(sampleRate int) ([]byte, error) {
	rate := beep.SampleRate(sampleRate)

	streamers := make([]beep.Streamer, 0, len(collectChime))
	for _, note := range collectChime {
		tone, err := generators.SineTone(rate, note.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create tone %.0fHz: %w", note.freq, err)
		}
		n := rate.N(note.duration)
		streamers = append(streamers, fadeOut(beep.Take(n, tone), n))
	}

	quiet := &effects.Gain{Streamer: beep.Seq(streamers...), Gain: -0.6}
	return EncodePCM16(quiet), nil
}

// fadeOut 对流做线性淡出，避免音符之间出现爆音
func fadeOut(s beep.Streamer, total int) beep.Streamer {
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			vol := 1 - float64(position)/float64(total)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
			position++
		}
		return n, ok
	})
}

// EncodePCM16 读取整个流并编码为 16 位小端立体声 PCM
func EncodePCM16(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4096)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := int16(math.Round(clampSample(buf[i][ch]) * math.MaxInt16))
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok {
			break
		}
	}
	return out
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
