package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 创建指向临时目录的 gdata Manager
// 当前平台不支持 gdata 时跳过测试
func newTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("lostpacket_test_%s_%d", testName, time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("gdata not available: %v", err)
	}
	return manager
}
