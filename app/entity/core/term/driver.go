package term

import (
	"time"

	"github.com/wasya-io/kilo-core/app/entity/key"
)

//go:generate mockgen -source=driver.go -destination=mock/mock_driver.go -package=mock_term

// Driver はエディタが端末に求める機能の集合
// 実端末の実装は provider/terminal にあり、テストではモックや疑似端末を使う
type Driver interface {
	EnableRawMode() error
	DisableRawMode() error
	// Size は端末の行数と列数を返す
	Size() (rows, cols int, err error)
	// Poll はtimeoutまで待ち、イベントが読めるならtrueを返す
	Poll(timeout time.Duration) (bool, error)
	// ReadEvent は次のイベントを1つ返す。Pollがtrueを返した後に呼ぶこと
	ReadEvent() (key.Event, error)
	// Write は1回の書き込みで端末へ出力する
	Write(p []byte) (int, error)
	Flush() error
}
