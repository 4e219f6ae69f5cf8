package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata Manager，无法创建时跳过测试
func newTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	appName := fmt.Sprintf("snake_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}
