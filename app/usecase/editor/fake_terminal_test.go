package editor_test

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/wasya-io/kilo-core/app/entity/key"
)

// fakeTerminal はメモリ上の疑似端末
// scriptのイベントを順に返し、書き込みを記録する
type fakeTerminal struct {
	rows, cols int

	script   []key.Event
	pending  []key.Event
	timeouts int // 各イベントの前に返すタイムアウトの回数

	raw          bool
	enableCount  int
	disableCount int
	enableErr    error

	writes    []string
	flushes   int
	failWrite int // n回目の書き込みを失敗させる（0なら失敗しない）
	readErr   error
}

func newFakeTerminal(rows, cols int, events ...key.Event) *fakeTerminal {
	return &fakeTerminal{rows: rows, cols: cols, script: events}
}

func keys(s string) []key.Event {
	var events []key.Event
	for _, r := range s {
		events = append(events, key.NewKeyEvent(key.NewRune(r)))
	}
	return events
}

func (f *fakeTerminal) EnableRawMode() error {
	if f.enableErr != nil {
		return f.enableErr
	}
	f.enableCount++
	f.raw = true
	return nil
}

func (f *fakeTerminal) DisableRawMode() error {
	f.disableCount++
	f.raw = false
	return nil
}

func (f *fakeTerminal) Size() (int, int, error) {
	return f.rows, f.cols, nil
}

func (f *fakeTerminal) Poll(timeout time.Duration) (bool, error) {
	if len(f.pending) > 0 {
		return true, nil
	}
	if f.timeouts > 0 {
		f.timeouts--
		return false, nil
	}
	if len(f.script) == 0 {
		if f.readErr != nil {
			return false, f.readErr
		}
		// スクリプトが尽きたら入力が閉じられたものとする
		return false, io.EOF
	}
	f.pending = append(f.pending, f.script[0])
	f.script = f.script[1:]
	return true, nil
}

func (f *fakeTerminal) ReadEvent() (key.Event, error) {
	if len(f.pending) == 0 {
		return key.Event{}, errors.New("no pending event")
	}
	event := f.pending[0]
	f.pending = f.pending[1:]
	return event, nil
}

func (f *fakeTerminal) Write(p []byte) (int, error) {
	f.writes = append(f.writes, string(p))
	if f.failWrite == len(f.writes) {
		return 0, errors.New("broken pipe")
	}
	return len(p), nil
}

func (f *fakeTerminal) Flush() error {
	f.flushes++
	return nil
}

func (f *fakeTerminal) lastWrite() string {
	if len(f.writes) == 0 {
		return ""
	}
	return f.writes[len(f.writes)-1]
}

// clearCount は画面全体のクリアが書き込まれた回数を返す
func (f *fakeTerminal) clearCount() int {
	n := 0
	for _, w := range f.writes {
		n += strings.Count(w, "\x1b[2J")
	}
	return n
}
