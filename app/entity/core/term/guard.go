package term

import (
	"fmt"
	"sync"

	"github.com/wasya-io/kilo-core/app/entity/core"
)

// Guard は端末がraw modeにある間を表すリソース
// NewGuardでraw modeに入り、Releaseで元に戻す。Releaseは何度呼んでも1回しか実行されない
type Guard struct {
	driver   Driver
	logger   core.Logger
	once     sync.Once
	released bool
}

// NewGuard は端末をraw modeに切り替える
func NewGuard(driver Driver, logger core.Logger) (*Guard, error) {
	if err := driver.EnableRawMode(); err != nil {
		return nil, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	logger.Log("terminal", "Raw mode enabled")

	return &Guard{
		driver: driver,
		logger: logger,
	}, nil
}

// Release はraw modeを解除し、画面をクリアしてカーソルを原点に戻す
// 終了処理なので失敗してもログに残すだけで続行する
func (g *Guard) Release() {
	g.once.Do(func() {
		g.released = true

		if err := g.driver.DisableRawMode(); err != nil {
			g.logger.Log("error", fmt.Sprintf("Failed to disable raw mode: %v", err))
		}
		if _, err := g.driver.Write([]byte(ClearAll + CursorHome + ShowCursor)); err != nil {
			g.logger.Log("error", fmt.Sprintf("Failed to clear screen: %v", err))
		}
		if err := g.driver.Flush(); err != nil {
			g.logger.Log("error", fmt.Sprintf("Failed to flush terminal: %v", err))
		}

		g.logger.Log("terminal", "Raw mode disabled")
	})
}

// Released はReleaseが実行済みかを返す
func (g *Guard) Released() bool {
	return g.released
}
