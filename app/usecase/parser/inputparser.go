package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/wasya-io/kilo-core/app/entity/core"
	"github.com/wasya-io/kilo-core/app/entity/key"
)

type StandardInputParser struct {
	logger core.Logger
}

type InputParser interface {
	Parse(buf []byte, n int) ([]key.Event, error)
}

func NewStandardInputParser(logger core.Logger) *StandardInputParser {
	return &StandardInputParser{
		logger: logger,
	}
}

// Parse はバイトデータを解析してイベントを返す
// 1回の読み取りに複数のキーが含まれる場合（貼り付けなど）はすべて返す
// 解釈できないバイト列は読み飛ばす
func (p *StandardInputParser) Parse(buf []byte, n int) ([]key.Event, error) {
	if n > len(buf) {
		return nil, fmt.Errorf("invalid input length: %d > %d", n, len(buf))
	}

	var events []key.Event
	rest := buf[:n]
	for len(rest) > 0 {
		event, size, ok := p.parseOne(rest)
		if ok {
			events = append(events, event)
		} else {
			p.logger.Log("input", fmt.Sprintf("Skipped unknown input: %q", rest[:size]))
		}
		rest = rest[size:]
	}

	return events, nil
}

// parseOne は先頭の1イベントを解析し、消費したバイト数を返す
func (p *StandardInputParser) parseOne(buf []byte) (key.Event, int, bool) {
	// エスケープシーケンスの処理
	if buf[0] == '\x1b' {
		return p.parseEscapeSequence(buf)
	}

	// 特殊キーの処理
	if k, ok := p.parseSpecialKey(buf[0]); ok {
		return key.NewKeyEvent(k), 1, true
	}

	// コントロールキーの処理
	if k, ok := p.parseControlKey(buf[0]); ok {
		return key.NewKeyEvent(k), 1, true
	}

	// 文字の処理（UTF-8とASCII）
	return p.parseCharacter(buf)
}

// parseSpecialKey は特殊キーの解析を行う
func (p *StandardInputParser) parseSpecialKey(b byte) (key.KeyEvent, bool) {
	switch b {
	case 127: // Backspace
		return key.KeyEvent{Code: key.KeyBackspace}, true
	case '\r': // Enter
		return key.KeyEvent{Code: key.KeyEnter}, true
	case '\t': // Tab
		return key.KeyEvent{Code: key.KeyTab}, true
	}
	return key.KeyEvent{}, false
}

// parseControlKey はコントロールキーの解析を行う
// Ctrl+Q(17)は {KeyRune, 'q', ModCtrl} になる
func (p *StandardInputParser) parseControlKey(b byte) (key.KeyEvent, bool) {
	switch {
	case b == 0: // Ctrl+Space
		return key.NewCtrl(' '), true
	case b >= 1 && b <= 26:
		return key.NewCtrl(rune('a' + b - 1)), true
	case b >= 28 && b <= 31: // Ctrl+\ ] ^ _
		return key.NewCtrl(rune(b + 0x40)), true
	}
	return key.KeyEvent{}, false
}

// parseEscapeSequence はエスケープシーケンスの解析を行う
func (p *StandardInputParser) parseEscapeSequence(buf []byte) (key.Event, int, bool) {
	if len(buf) == 1 {
		return key.NewKeyEvent(key.KeyEvent{Code: key.KeyEsc}), 1, true
	}

	switch buf[1] {
	case '[':
		return p.parseCSI(buf)
	case 'O':
		// SS3形式の矢印キー（アプリケーションカーソルモード）
		if len(buf) >= 3 {
			if code, ok := arrowCode(buf[2]); ok {
				return key.NewKeyEvent(key.KeyEvent{Code: code}), 3, true
			}
		}
	}

	// ESC + 文字はAlt+文字として扱う
	r, size := utf8.DecodeRune(buf[1:])
	if r != utf8.RuneError && r >= 32 && r != 127 {
		return key.NewKeyEvent(key.KeyEvent{Code: key.KeyRune, Rune: r, Modifiers: key.ModAlt}), 1 + size, true
	}

	return key.NewKeyEvent(key.KeyEvent{Code: key.KeyEsc}), 1, true
}

// parseCSI は ESC [ で始まるシーケンスを解析する
func (p *StandardInputParser) parseCSI(buf []byte) (key.Event, int, bool) {
	if len(buf) < 3 {
		return key.NewKeyEvent(key.KeyEvent{Code: key.KeyRune, Rune: '[', Modifiers: key.ModAlt}), 2, true
	}

	if code, ok := arrowCode(buf[2]); ok {
		return key.NewKeyEvent(key.KeyEvent{Code: code}), 3, true
	}

	switch buf[2] {
	case 'Z':
		return key.NewKeyEvent(key.KeyEvent{Code: key.KeyBackTab, Modifiers: key.ModShift}), 3, true
	case 'I':
		return key.Event{Type: key.EventFocus, Focused: true}, 3, true
	case 'O':
		return key.Event{Type: key.EventFocus, Focused: false}, 3, true
	case '<':
		return p.parseMouseEvent(buf)
	}

	// 未知のシーケンスは終端文字まで読み飛ばす
	return key.Event{}, csiLength(buf), false
}

// parseMouseEvent はSGR形式のマウスイベントの解析を行う
func (p *StandardInputParser) parseMouseEvent(buf []byte) (key.Event, int, bool) {
	end := csiLength(buf)
	final := buf[end-1]
	if final != 'M' && final != 'm' {
		return key.Event{}, end, false
	}

	var cb, cx, cy int
	if _, err := fmt.Sscanf(string(buf[3:end-1]), "%d;%d;%d", &cb, &cx, &cy); err != nil {
		return key.Event{}, end, false
	}

	event := key.Event{
		Type:     key.EventMouse,
		MouseRow: cy - 1,
		MouseCol: cx - 1,
	}
	switch cb {
	case 64: // スクロールアップ
		event.MouseAction = key.MouseScrollUp
	case 65: // スクロールダウン
		event.MouseAction = key.MouseScrollDown
	case 0: // 左クリック
		event.MouseAction = key.MouseLeftClick
	case 1: // 中クリック
		event.MouseAction = key.MouseMiddleClick
	case 2: // 右クリック
		event.MouseAction = key.MouseRightClick
	}
	return event, end, true
}

// parseCharacter はUTF-8/ASCII文字の解析を行う
func (p *StandardInputParser) parseCharacter(buf []byte) (key.Event, int, bool) {
	// ASCII文字の処理
	if buf[0] >= 32 && buf[0] < 127 {
		return key.NewKeyEvent(key.NewRune(rune(buf[0]))), 1, true
	}

	// UTF-8文字の処理
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return key.Event{}, 1, false
	}
	return key.NewKeyEvent(key.NewRune(r)), size, true
}

func arrowCode(b byte) (key.Code, bool) {
	switch b {
	case 'A':
		return key.KeyArrowUp, true
	case 'B':
		return key.KeyArrowDown, true
	case 'C':
		return key.KeyArrowRight, true
	case 'D':
		return key.KeyArrowLeft, true
	}
	return key.KeyNone, false
}

// csiLength は ESC [ ... の終端文字(0x40-0x7E)までの長さを返す
func csiLength(buf []byte) int {
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return i + 1
		}
	}
	return len(buf)
}
