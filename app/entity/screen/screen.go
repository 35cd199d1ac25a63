package screen

import (
	"github.com/wasya-io/kilo-core/app/entity/core"
	"github.com/wasya-io/kilo-core/app/entity/core/term"
	"github.com/wasya-io/kilo-core/app/entity/cursor"
)

// DefaultPlaceholder はテキストのない行の先頭に表示する記号
const DefaultPlaceholder = "~"

// Screen は固定サイズのグリッドとカーソルを持ち、フレームを描画する
type Screen struct {
	rowLines    int
	colLines    int
	placeholder string
	builder     *Builder
	cursor      *cursor.Cursor
}

// NewScreen はrows×colsのグリッドを作成する
// 行数・列数が0以下の端末は扱えないのでConfigErrorを返す
func NewScreen(builder *Builder, rows, cols int, placeholder string) (*Screen, error) {
	if rows < 1 || cols < 1 {
		return nil, core.NewConfigError("terminal must have at least one row and one column")
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	return &Screen{
		rowLines:    rows,
		colLines:    cols,
		placeholder: placeholder,
		builder:     builder,
		cursor:      cursor.NewCursor(rows, cols),
	}, nil
}

func (s *Screen) GetCursor() *cursor.Cursor {
	return s.cursor
}

func (s *Screen) GetRowLines() int {
	return s.rowLines
}

func (s *Screen) GetColLines() int {
	return s.colLines
}

// MoveCursor は指定された方向にカーソルを移動する
func (s *Screen) MoveCursor(movement cursor.Movement) {
	s.cursor.Move(movement)
}

// Stage は1フレーム分の描画をバッファに積む（まだ出力しない）
func (s *Screen) Stage() error {
	// カーソルを隠して原点へ
	if err := s.builder.Queue(term.HideCursor, term.MoveTo(0, 0)); err != nil {
		return err
	}

	if err := s.drawRows(); err != nil {
		return err
	}

	// カーソル位置の設定
	return s.builder.Queue(term.MoveTo(s.cursor.Col(), s.cursor.Row()), term.ShowCursor)
}

// Redraw はフレームを積んで一括で画面に反映する
func (s *Screen) Redraw(out Output) error {
	if err := s.Stage(); err != nil {
		s.builder.Clear()
		return err
	}
	return s.builder.Flush(out)
}

// drawRows は各行に記号を描き、行末までクリアする
func (s *Screen) drawRows() error {
	for y := 0; y < s.rowLines; y++ {
		if err := s.builder.Queue(s.placeholder, term.ClearUntilNewLine); err != nil {
			return err
		}
		if y < s.rowLines-1 {
			if err := s.builder.Queue(term.LineBreak); err != nil {
				return err
			}
		}
	}
	return nil
}
