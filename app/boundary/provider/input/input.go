package input

import (
	"fmt"
	"time"

	"github.com/wasya-io/kilo-core/app/entity/core"
	"github.com/wasya-io/kilo-core/app/entity/core/term"
	"github.com/wasya-io/kilo-core/app/entity/key"
)

//go:generate mockgen -source=input.go -destination=mock/mock_input.go -package=mock_input

// PollInterval は1回のpollで待つ時間。タイムアウトしたら待ち直す
const PollInterval = 500 * time.Millisecond

// KeyReader はキー入力を1つ読むまでブロックする
type KeyReader interface {
	ReadKey() (key.KeyEvent, error)
}

type StandardKeyReader struct {
	driver term.Driver
	logger core.Logger
}

func NewStandardKeyReader(logger core.Logger, driver term.Driver) *StandardKeyReader {
	return &StandardKeyReader{
		driver: driver,
		logger: logger,
	}
}

// ReadKey はキーイベントが届くまでpollを繰り返す
// マウス・リサイズ・フォーカスなどキー以外のイベントは捨てて待ち続ける
func (r *StandardKeyReader) ReadKey() (key.KeyEvent, error) {
	for {
		ready, err := r.driver.Poll(PollInterval)
		if err != nil {
			return key.KeyEvent{}, fmt.Errorf("input error: %w", err)
		}
		if !ready {
			continue
		}

		event, err := r.driver.ReadEvent()
		if err != nil {
			return key.KeyEvent{}, fmt.Errorf("input error: %w", err)
		}
		if event.IsKey() {
			return event.Key, nil
		}
		r.logger.Log("input", fmt.Sprintf("Discarded non-key event: type=%d", event.Type))
	}
}
