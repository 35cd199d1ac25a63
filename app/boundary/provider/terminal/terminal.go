package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"

	"github.com/wasya-io/kilo-core/app/boundary/reader"
	"github.com/wasya-io/kilo-core/app/boundary/writer"
	"github.com/wasya-io/kilo-core/app/entity/core"
	"github.com/wasya-io/kilo-core/app/entity/core/term"
	"github.com/wasya-io/kilo-core/app/entity/key"
	"github.com/wasya-io/kilo-core/app/usecase/parser"
)

// ErrNoPendingEvent はPollがtrueを返す前にReadEventを呼んだ場合のエラー
var ErrNoPendingEvent = errors.New("no pending event")

// RawModeController はraw modeの切り替えを行う（term.TerminalStateが実装する）
type RawModeController interface {
	EnableRawMode() error
	DisableRawMode() error
}

// StandardDriver は実端末に対するterm.Driverの実装
// 読み取り（poll + read）、入力の解析、書き込み、termiosの操作をまとめる
type StandardDriver struct {
	rawMode RawModeController
	reader  reader.KeyReader
	writer  writer.ScreenWriter
	parser  parser.InputParser
	logger  core.Logger
	size    func() (int, int, error)
	pending []key.Event
	winch   chan os.Signal
}

var _ term.Driver = (*StandardDriver)(nil)

// NewStandardDriver は標準入出力に対するドライバを作成する
func NewStandardDriver(logger core.Logger, reader reader.KeyReader, writer writer.ScreenWriter, parser parser.InputParser) *StandardDriver {
	outFd := int(os.Stdout.Fd())
	return NewDriver(
		term.NewTerminalState(int(os.Stdin.Fd())),
		logger,
		reader,
		writer,
		parser,
		func() (int, int, error) { return term.GetWinSize(outFd) },
	)
}

// NewDriver は各部品を指定してドライバを作成する
func NewDriver(
	rawMode RawModeController,
	logger core.Logger,
	reader reader.KeyReader,
	writer writer.ScreenWriter,
	parser parser.InputParser,
	size func() (int, int, error),
) *StandardDriver {
	return &StandardDriver{
		rawMode: rawMode,
		reader:  reader,
		writer:  writer,
		parser:  parser,
		logger:  logger,
		size:    size,
		winch:   make(chan os.Signal, 1),
	}
}

// EnableRawMode はraw modeに入り、端末サイズの変更の監視を始める
func (d *StandardDriver) EnableRawMode() error {
	if err := d.rawMode.EnableRawMode(); err != nil {
		return err
	}
	signal.Notify(d.winch, unix.SIGWINCH)
	return nil
}

func (d *StandardDriver) DisableRawMode() error {
	signal.Stop(d.winch)
	return d.rawMode.DisableRawMode()
}

func (d *StandardDriver) Size() (int, int, error) {
	rows, cols, err := d.size()
	if err != nil {
		return 0, 0, core.NewIOError("failed to get window size", err)
	}
	return rows, cols, nil
}

// Poll は未処理のイベントがあれば即座にtrueを返す
// なければ入力をtimeoutまで待ち、読めた分を解析して溜めておく
func (d *StandardDriver) Poll(timeout time.Duration) (bool, error) {
	if len(d.pending) > 0 {
		return true, nil
	}

	// 端末サイズの変更
	select {
	case <-d.winch:
		if rows, cols, err := d.Size(); err == nil {
			d.pending = append(d.pending, key.Event{Type: key.EventResize, Rows: rows, Cols: cols})
			return true, nil
		}
	default:
	}

	ready, err := d.reader.Poll(timeout)
	if err != nil {
		return false, core.NewIOError("failed to poll input", err)
	}
	if !ready {
		return false, nil
	}

	buf, n, err := d.reader.Read()
	if err != nil {
		return false, core.NewIOError("failed to read input", err)
	}
	events, err := d.parser.Parse(buf, n)
	if err != nil {
		return false, core.NewIOError("failed to parse input", err)
	}
	d.logger.Log("input", fmt.Sprintf("Read %d bytes, %d events", n, len(events)))

	d.pending = append(d.pending, events...)
	return len(d.pending) > 0, nil
}

// ReadEvent は溜めてあるイベントを1つ取り出す
func (d *StandardDriver) ReadEvent() (key.Event, error) {
	if len(d.pending) == 0 {
		return key.Event{}, core.NewIOError("failed to read event", ErrNoPendingEvent)
	}
	event := d.pending[0]
	d.pending = d.pending[1:]
	return event, nil
}

func (d *StandardDriver) Write(p []byte) (int, error) {
	return d.writer.Write(p)
}

func (d *StandardDriver) Flush() error {
	return d.writer.Flush()
}
