package term

import "fmt"

const (
	// エスケープシーケンス
	escape            = "\x1b"           // ESC
	ClearAll          = escape + "[2J"   // 画面クリア
	ClearUntilNewLine = escape + "[K"    // カーソル位置から行末までクリア
	CursorHome        = escape + "[H"    // カーソルを原点に移動
	HideCursor        = escape + "[?25l" // カーソル非表示
	ShowCursor        = escape + "[?25h" // カーソル表示
	LineBreak         = "\r\n"
)

// MoveTo はカーソルを(col, row)に移動するシーケンスを返す（0始まり）
func MoveTo(col, row int) string {
	return fmt.Sprintf("%s[%d;%dH", escape, row+1, col+1)
}
