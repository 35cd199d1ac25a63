package cursor

// Cursor は画面グリッド内のカーソル位置を保持する
// 位置は常に [0, cols) × [0, rows) の範囲に収まる
type Cursor struct {
	position position
	rows     int
	cols     int
}

// NewCursor は原点にあるカーソルを作成する
// rows, colsは1以上であること（起動時に検証済み）
func NewCursor(rows, cols int) *Cursor {
	return &Cursor{
		position: newPosition(0, 0),
		rows:     rows,
		cols:     cols,
	}
}

type position struct {
	x, y int
}

// Movement はカーソル移動の種類を表す型
type Movement byte

const (
	CursorUp    Movement = 'A'
	CursorDown  Movement = 'B'
	CursorRight Movement = 'C'
	CursorLeft  Movement = 'D'
)

func (m Movement) String() string {
	switch m {
	case CursorUp:
		return "up"
	case CursorDown:
		return "down"
	case CursorRight:
		return "right"
	case CursorLeft:
		return "left"
	}
	return "unknown"
}

func newPosition(x, y int) position {
	return position{x: x, y: y}
}

// Move は1マス移動する。範囲外に出る移動は何もしない（折り返さない）
func (c *Cursor) Move(m Movement) {
	switch m {
	case CursorUp:
		if c.position.y > 0 {
			c.position.y--
		}
	case CursorDown:
		if c.position.y < c.rows-1 {
			c.position.y++
		}
	case CursorLeft:
		if c.position.x > 0 {
			c.position.x--
		}
	case CursorRight:
		if c.position.x < c.cols-1 {
			c.position.x++
		}
	}
}

func (c *Cursor) Row() int {
	return c.position.y
}

func (c *Cursor) Col() int {
	return c.position.x
}

// Bounds はグリッドの行数と列数を返す
func (c *Cursor) Bounds() (rows, cols int) {
	return c.rows, c.cols
}
