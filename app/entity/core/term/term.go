package term

import (
	"errors"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// ErrNotTerminal は入力が端末でない場合のエラー（raw modeに入れない）
var ErrNotTerminal = errors.New("stdin is not a terminal")

// TerminalState は端末の元の状態を保持する構造体
// origTermios: 端末の元の設定を保存し、プログラム終了時に復元するために使用
type TerminalState struct {
	fd          int
	origTermios *unix.Termios
}

// NewTerminalState は指定したファイルディスクリプタの端末状態を管理する
func NewTerminalState(fd int) *TerminalState {
	return &TerminalState{fd: fd}
}

// EnableRawMode は端末をRawモードに設定する
// Rawモードでは以下の設定が行われる：
// - エコーを無効化 (入力文字が画面に表示されない)
// - カノニカルモードを無効化 (入力を1行ずつではなく即座に処理)
// - Ctrl+C, Ctrl+Zなどのシグナルを無効化
// - Ctrl+S, Ctrl+Qのフロー制御を無効化
// - CR->NL変換を無効化
// - 8ビットデータを有効化
// - 出力の後処理を無効化
func (ts *TerminalState) EnableRawMode() error {
	if !xterm.IsTerminal(ts.fd) {
		return ErrNotTerminal
	}

	// 現在の端末設定を保存
	termios, err := unix.IoctlGetTermios(ts.fd, unix.TCGETS)
	if err != nil {
		return err
	}
	orig := *termios

	raw := *termios
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8

	// 入力バッファリングの設定
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(ts.fd, unix.TCSETS, &raw); err != nil {
		return err
	}
	ts.origTermios = &orig

	return nil
}

// DisableRawMode は端末の設定を元の状態に戻す
// raw modeに入っていなければ何もしない
func (ts *TerminalState) DisableRawMode() error {
	if ts.origTermios == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(ts.fd, unix.TCSETS, ts.origTermios); err != nil {
		return err
	}
	ts.origTermios = nil
	return nil
}

// IsRaw はraw modeに入っているかを返す
func (ts *TerminalState) IsRaw() bool {
	return ts.origTermios != nil
}

// GetWinSize はウィンドウサイズを取得する
func GetWinSize(fd int) (screenRows, screenCols int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}
