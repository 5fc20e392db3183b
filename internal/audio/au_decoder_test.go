package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildAU 构造一个 .au 文件
func buildAU(encoding, sampleRate, channels uint32, payload []byte) []byte {
	var buf bytes.Buffer
	header := auHeader{
		Magic:      auMagic,
		DataOffset: auHeaderSize,
		DataSize:   uint32(len(payload)),
		Encoding:   encoding,
		SampleRate: sampleRate,
		Channels:   channels,
	}
	_ = binary.Write(&buf, binary.BigEndian, header)
	buf.Write(payload)
	return buf.Bytes()
}

func readInt16LE(pcm []byte, i int) int16 {
	return int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8)
}

func TestDecodeAU_ULawMono(t *testing.T) {
	payload := []byte{0x00, 0x80, 0xFF, 0x7F}
	pcm, err := DecodeAU(bytes.NewReader(buildAU(auEncodingULaw, 8000, 1, payload)), 8000)
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}

	// 同采样率不重采样：每个样本扩展为 4 字节立体声帧
	if len(pcm) != len(payload)*4 {
		t.Fatalf("PCM length: got %d, want %d", len(pcm), len(payload)*4)
	}
	if left, right := readInt16LE(pcm, 0), readInt16LE(pcm, 2); left != -32124 || right != -32124 {
		t.Errorf("first frame: got (%d, %d), want (-32124, -32124)", left, right)
	}
	if v := readInt16LE(pcm, 4); v != 32124 {
		t.Errorf("second frame: got %d, want 32124", v)
	}
}

func TestDecodeAU_PCM16Stereo(t *testing.T) {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint16(payload[0:], uint16(1000))
	binary.BigEndian.PutUint16(payload[2:], uint16(0xFC18)) // -1000
	binary.BigEndian.PutUint16(payload[4:], uint16(0))
	binary.BigEndian.PutUint16(payload[6:], uint16(0))

	pcm, err := DecodeAU(bytes.NewReader(buildAU(auEncodingPCM16, 22050, 2, payload)), 22050)
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}
	if len(pcm) != 8 {
		t.Fatalf("PCM length: got %d, want 8", len(pcm))
	}
	if left, right := readInt16LE(pcm, 0), readInt16LE(pcm, 2); left != 1000 || right != -1000 {
		t.Errorf("first frame: got (%d, %d), want (1000, -1000)", left, right)
	}
}

func TestDecodeAU_Resamples(t *testing.T) {
	payload := bytes.Repeat([]byte{0x80}, 800)
	pcm, err := DecodeAU(bytes.NewReader(buildAU(auEncodingULaw, 8000, 1, payload)), 16000)
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}

	frames := len(pcm) / 4
	if frames < 1500 || frames > 1700 {
		t.Errorf("resampled frames: got %d, want about 1600", frames)
	}
}

func TestDecodeAU_Errors(t *testing.T) {
	valid := buildAU(auEncodingULaw, 8000, 1, []byte{0})

	badMagic := append([]byte(nil), valid...)
	badMagic[0] = 'x'

	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{1, 2, 3}},
		{"bad magic", badMagic},
		{"unsupported encoding", buildAU(27, 8000, 1, []byte{0})},
		{"too many channels", buildAU(auEncodingULaw, 8000, 6, []byte{0})},
		{"zero sample rate", buildAU(auEncodingULaw, 0, 1, []byte{0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeAU(bytes.NewReader(tt.data), 8000); err == nil {
				t.Error("expected error")
			}
		})
	}
}
