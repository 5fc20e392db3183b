package embedded

import (
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/lost_packet.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFile 测试路径标准化与读取
func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/lost_packet.yaml": {Data: []byte("pool:\n  size: 3\n")},
	})
	defer func() { initialized = false }()

	for _, path := range []string{"data/lost_packet.yaml", "./data/lost_packet.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%q) failed: %v", path, err)
		}
		if string(data) != "pool:\n  size: 3\n" {
			t.Errorf("ReadFile(%q) returned unexpected content %q", path, data)
		}
	}

	if _, err := ReadFile("assets/packet.png"); err == nil {
		t.Error("Expected error for path outside data/")
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	Init(fstest.MapFS{
		"data/lost_packet.yaml": {Data: []byte("{}")},
	})
	defer func() { initialized = false }()

	if !Exists("data/lost_packet.yaml") {
		t.Error("Expected data/lost_packet.yaml to exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("Expected data/missing.yaml to be missing")
	}
	if Exists("lost_packet.yaml") {
		t.Error("Paths without data/ prefix must not resolve")
	}
}
