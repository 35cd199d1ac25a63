package screen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/wasya-io/kilo-core/app/entity/core"
	"github.com/wasya-io/kilo-core/app/entity/cursor"
	"github.com/wasya-io/kilo-core/app/entity/screen"
)

func TestNewScreen_RejectsEmptyGrid(t *testing.T) {
	for _, size := range [][2]int{{0, 80}, {24, 0}, {0, 0}, {-1, 5}} {
		_, err := screen.NewScreen(screen.NewBuilder(), size[0], size[1], "~")
		if !errors.Is(err, core.ErrConfig) {
			t.Errorf("%v: expected config error, got %v", size, err)
		}
	}
}

func TestScreen_RedrawFrame(t *testing.T) {
	s, err := screen.NewScreen(screen.NewBuilder(), 3, 10, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.MoveCursor(cursor.CursorRight)
	s.MoveCursor(cursor.CursorDown)

	out := &recordingOutput{}
	if err := s.Redraw(out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "\x1b[?25l\x1b[1;1H" +
		"~\x1b[K\r\n" +
		"~\x1b[K\r\n" +
		"~\x1b[K" +
		"\x1b[2;2H\x1b[?25h"
	if len(out.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(out.writes))
	}
	if out.writes[0] != want {
		t.Errorf("got %q\nwant %q", out.writes[0], want)
	}
}

func TestScreen_CustomPlaceholder(t *testing.T) {
	s, err := screen.NewScreen(screen.NewBuilder(), 24, 80, "·")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := &recordingOutput{}
	if err := s.Redraw(out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frame := out.writes[0]
	if got := strings.Count(frame, "·"); got != 24 {
		t.Errorf("placeholder count = %d, want 24", got)
	}
	if got := strings.Count(frame, "\r\n"); got != 23 {
		t.Errorf("line breaks = %d, want 23", got)
	}
	if strings.HasSuffix(frame, "\r\n") {
		t.Error("last row should not end with a line break")
	}
}

func TestScreen_InvalidPlaceholder(t *testing.T) {
	b := screen.NewBuilder()
	s, err := screen.NewScreen(b, 2, 2, string([]byte{0xff}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := &recordingOutput{}
	if err := s.Redraw(out); !errors.Is(err, core.ErrEncoding) {
		t.Fatalf("expected encoding error, got %v", err)
	}
	if len(out.writes) != 0 {
		t.Error("nothing should be written when staging fails")
	}
	if b.Len() != 0 {
		t.Error("partial frame should be discarded")
	}
}
