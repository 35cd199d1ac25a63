package cursor_test

import (
	"math/rand"
	"testing"

	"github.com/wasya-io/kilo-core/app/entity/cursor"
)

func TestCursor_MoveSequences(t *testing.T) {
	tests := []struct {
		name    string
		moves   []cursor.Movement
		wantCol int
		wantRow int
	}{
		{
			name:    "右、右、下",
			moves:   []cursor.Movement{cursor.CursorRight, cursor.CursorRight, cursor.CursorDown},
			wantCol: 2,
			wantRow: 1,
		},
		{
			name:    "原点から左、左、上は動かない",
			moves:   []cursor.Movement{cursor.CursorLeft, cursor.CursorLeft, cursor.CursorUp},
			wantCol: 0,
			wantRow: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cursor.NewCursor(24, 80)
			for _, m := range tt.moves {
				c.Move(m)
			}
			if c.Col() != tt.wantCol || c.Row() != tt.wantRow {
				t.Errorf("got (%d,%d), want (%d,%d)", c.Col(), c.Row(), tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestCursor_ClampAtEdges(t *testing.T) {
	c := cursor.NewCursor(3, 4)

	for i := 0; i < 10; i++ {
		c.Move(cursor.CursorDown)
		c.Move(cursor.CursorRight)
	}
	if c.Row() != 2 || c.Col() != 3 {
		t.Fatalf("右下の角で止まるべき: got (%d,%d)", c.Col(), c.Row())
	}

	// 下端・右端でのdown/rightは何もしない
	c.Move(cursor.CursorDown)
	c.Move(cursor.CursorRight)
	if c.Row() != 2 || c.Col() != 3 {
		t.Errorf("clamp failed: got (%d,%d)", c.Col(), c.Row())
	}
}

func TestCursor_SingleCellGrid(t *testing.T) {
	c := cursor.NewCursor(1, 1)
	for _, m := range []cursor.Movement{cursor.CursorUp, cursor.CursorDown, cursor.CursorLeft, cursor.CursorRight} {
		c.Move(m)
		if c.Row() != 0 || c.Col() != 0 {
			t.Fatalf("%v: got (%d,%d)", m, c.Col(), c.Row())
		}
	}
}

func TestCursor_UnknownMovementIsNoop(t *testing.T) {
	c := cursor.NewCursor(5, 5)
	c.Move(cursor.CursorRight)
	c.Move(cursor.Movement('Z'))
	if c.Row() != 0 || c.Col() != 1 {
		t.Errorf("got (%d,%d), want (1,0)", c.Col(), c.Row())
	}
}

// ランダムな移動列でも常に範囲内に収まる
func TestCursor_StaysInBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	moves := []cursor.Movement{cursor.CursorUp, cursor.CursorDown, cursor.CursorLeft, cursor.CursorRight}

	for trial := 0; trial < 50; trial++ {
		rows := r.Intn(10) + 1
		cols := r.Intn(10) + 1
		c := cursor.NewCursor(rows, cols)
		for step := 0; step < 200; step++ {
			c.Move(moves[r.Intn(len(moves))])
			if c.Row() < 0 || c.Row() >= rows || c.Col() < 0 || c.Col() >= cols {
				t.Fatalf("out of bounds on %dx%d grid: (%d,%d)", rows, cols, c.Col(), c.Row())
			}
		}
	}
}
