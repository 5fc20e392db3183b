package game

import "testing"

// TestNewGameState 测试初始 bits
func TestNewGameState(t *testing.T) {
	gs := NewGameState(10)
	if gs.GetStoredBits() != 10 {
		t.Errorf("StoredBits: got %v, want 10", gs.GetStoredBits())
	}
	if gs.LostPacketsCollected != 0 {
		t.Errorf("LostPacketsCollected: got %d, want 0", gs.LostPacketsCollected)
	}

	if NewGameState(-5).GetStoredBits() != 0 {
		t.Error("Negative initial bits should clamp to 0")
	}
}

// TestAddBits 测试增加 bits
func TestAddBits(t *testing.T) {
	gs := NewGameState(0)

	gs.AddBits(1.5)
	gs.AddBits(2)

	if gs.GetStoredBits() != 3.5 {
		t.Errorf("StoredBits: got %v, want 3.5", gs.GetStoredBits())
	}
}

// TestAddBitsIgnoresNonPositive 测试非正数不改变状态
func TestAddBitsIgnoresNonPositive(t *testing.T) {
	gs := NewGameState(4)

	gs.AddBits(0)
	gs.AddBits(-3)

	if gs.GetStoredBits() != 4 {
		t.Errorf("StoredBits: got %v, want 4", gs.GetStoredBits())
	}
}

// TestSaveDataRoundTrip 测试存档导出与恢复
func TestSaveDataRoundTrip(t *testing.T) {
	gs := NewGameState(12)
	gs.IncrementLostPacketsCollected()
	gs.IncrementLostPacketsCollected()

	restored := NewGameState(0)
	restored.ApplySaveData(gs.ToSaveData())

	if restored.StoredBits != 12 || restored.LostPacketsCollected != 2 {
		t.Errorf("Restored state mismatch: %+v", restored)
	}

	restored.ApplySaveData(nil)
	if restored.StoredBits != 12 {
		t.Error("ApplySaveData(nil) must not change state")
	}
}
