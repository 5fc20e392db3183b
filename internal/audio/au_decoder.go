package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep"
)

// auHeader Sun/NeXT (.au) 文件头，大端序，至少 24 字节
type auHeader struct {
	Magic      uint32 // ".snd"
	DataOffset uint32 // 音频数据起始偏移
	DataSize   uint32 // 数据长度（未知时为 0xFFFFFFFF）
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

const (
	auMagic         = 0x2e736e64 // ".snd"
	auHeaderSize    = 24
	auEncodingULaw  = 1 // 8 位 μ-law
	auEncodingPCM16 = 3 // 16 位线性 PCM（大端）

	// resampleQuality beep 重采样质量（1-64）
	resampleQuality = 4
)

// μ-law 解压表（μ-law 字节 -> 16 位 PCM）
var mulawTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// DecodeAU 解码 .au 音效，并转换为目标采样率的 16 位小端立体声 PCM
//
// 支持 μ-law 与 16 位线性 PCM 编码，单声道会复制到两个声道。
//
// 参数:
//   - r: .au 文件内容
//   - sampleRate: 目标采样率（与 audio.Context 一致）
func DecodeAU(r io.Reader, sampleRate int) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}

	frames, rate, err := parseAU(data)
	if err != nil {
		return nil, err
	}

	var s beep.Streamer = newFrameStreamer(frames)
	if target := beep.SampleRate(sampleRate); target != rate {
		s = beep.Resample(resampleQuality, rate, target, s)
	}
	return EncodePCM16(s), nil
}

// parseAU 解析文件头与样本，返回归一化到 [-1, 1] 的立体声帧
func parseAU(data []byte) ([][2]float64, beep.SampleRate, error) {
	if len(data) < auHeaderSize {
		return nil, 0, fmt.Errorf("AU file too short: %d bytes (minimum %d)", len(data), auHeaderSize)
	}

	var header auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &header); err != nil {
		return nil, 0, fmt.Errorf("failed to read AU header: %w", err)
	}
	if header.Magic != auMagic {
		return nil, 0, fmt.Errorf("invalid AU magic number: 0x%08x", header.Magic)
	}
	if header.Channels < 1 || header.Channels > 2 {
		return nil, 0, fmt.Errorf("unsupported channel count: %d (only 1-2 supported)", header.Channels)
	}
	if header.SampleRate == 0 {
		return nil, 0, fmt.Errorf("invalid sample rate: 0")
	}
	offset := int(header.DataOffset)
	if offset < auHeaderSize || offset > len(data) {
		return nil, 0, fmt.Errorf("invalid data offset: %d (file size: %d)", offset, len(data))
	}

	payload := data[offset:]
	if header.DataSize != math.MaxUint32 && int(header.DataSize) < len(payload) {
		payload = payload[:header.DataSize]
	}

	var samples []int16
	switch header.Encoding {
	case auEncodingULaw:
		samples = make([]int16, len(payload))
		for i, b := range payload {
			samples[i] = mulawTable[b]
		}
	case auEncodingPCM16:
		samples = make([]int16, len(payload)/2)
		for i := range samples {
			samples[i] = int16(binary.BigEndian.Uint16(payload[i*2:]))
		}
	default:
		return nil, 0, fmt.Errorf("unsupported AU encoding: %d (supported: 1=μ-law, 3=PCM16)", header.Encoding)
	}

	channels := int(header.Channels)
	frames := make([][2]float64, len(samples)/channels)
	for i := range frames {
		left := float64(samples[i*channels]) / math.MaxInt16
		right := left
		if channels == 2 {
			right = float64(samples[i*channels+1]) / math.MaxInt16
		}
		frames[i] = [2]float64{left, right}
	}
	return frames, beep.SampleRate(header.SampleRate), nil
}

// newFrameStreamer 顺序播放内存中的帧
func newFrameStreamer(frames [][2]float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(frames) {
			return 0, false
		}
		n := copy(samples, frames[pos:])
		pos += n
		return n, true
	})
}
