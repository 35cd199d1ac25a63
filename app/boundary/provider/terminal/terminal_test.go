package terminal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/wasya-io/kilo-core/app/boundary/provider/terminal"
	mock_reader "github.com/wasya-io/kilo-core/app/boundary/reader/mock"
	mock_writer "github.com/wasya-io/kilo-core/app/boundary/writer/mock"
	"github.com/wasya-io/kilo-core/app/entity/core"
	mock_core "github.com/wasya-io/kilo-core/app/entity/core/mock"
	"github.com/wasya-io/kilo-core/app/entity/key"
	"github.com/wasya-io/kilo-core/app/usecase/parser"
)

// fakeRawMode はraw modeの切り替え回数を数える
type fakeRawMode struct {
	enabled  int
	disabled int
	err      error
}

func (f *fakeRawMode) EnableRawMode() error {
	if f.err != nil {
		return f.err
	}
	f.enabled++
	return nil
}

func (f *fakeRawMode) DisableRawMode() error {
	f.disabled++
	return nil
}

type fixture struct {
	driver  *terminal.StandardDriver
	rawMode *fakeRawMode
	reader  *mock_reader.MockKeyReader
	writer  *mock_writer.MockScreenWriter
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	logger := mock_core.NewMockLogger(ctrl)
	logger.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	f := fixture{
		rawMode: &fakeRawMode{},
		reader:  mock_reader.NewMockKeyReader(ctrl),
		writer:  mock_writer.NewMockScreenWriter(ctrl),
	}
	f.driver = terminal.NewDriver(
		f.rawMode,
		logger,
		f.reader,
		f.writer,
		parser.NewStandardInputParser(logger),
		func() (int, int, error) { return 24, 80, nil },
	)
	return f
}

func TestStandardDriver_PollTimeout(t *testing.T) {
	f := setup(t)
	f.reader.EXPECT().Poll(500*time.Millisecond).Return(false, nil)

	ready, err := f.driver.Poll(500 * time.Millisecond)
	if err != nil || ready {
		t.Errorf("got (%v, %v), want (false, nil)", ready, err)
	}
}

func TestStandardDriver_PollAndReadQueuesEvents(t *testing.T) {
	f := setup(t)
	buf := make([]byte, 32)
	n := copy(buf, "lj")

	// 1回の読み取りで2つのイベント。2つ目は読み取りなしで返る
	f.reader.EXPECT().Poll(gomock.Any()).Return(true, nil).Times(1)
	f.reader.EXPECT().Read().Return(buf, n, nil).Times(1)

	for _, want := range []rune{'l', 'j'} {
		ready, err := f.driver.Poll(time.Millisecond)
		if err != nil || !ready {
			t.Fatalf("poll: got (%v, %v)", ready, err)
		}
		event, err := f.driver.ReadEvent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !event.Key.Is(want, key.ModNone) {
			t.Errorf("got %+v, want %c", event.Key, want)
		}
	}
}

func TestStandardDriver_ReadErrorIsIOError(t *testing.T) {
	f := setup(t)
	f.reader.EXPECT().Poll(gomock.Any()).Return(true, nil)
	f.reader.EXPECT().Read().Return(nil, 0, errors.New("input error"))

	if _, err := f.driver.Poll(time.Millisecond); !errors.Is(err, core.ErrIO) {
		t.Errorf("expected io error, got %v", err)
	}
}

func TestStandardDriver_PollErrorIsIOError(t *testing.T) {
	f := setup(t)
	f.reader.EXPECT().Poll(gomock.Any()).Return(false, errors.New("poll error"))

	if _, err := f.driver.Poll(time.Millisecond); !errors.Is(err, core.ErrIO) {
		t.Errorf("expected io error, got %v", err)
	}
}

func TestStandardDriver_ReadEventWithoutPoll(t *testing.T) {
	f := setup(t)
	_, err := f.driver.ReadEvent()
	if !errors.Is(err, terminal.ErrNoPendingEvent) || !errors.Is(err, core.ErrIO) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStandardDriver_WriteAndFlush(t *testing.T) {
	f := setup(t)
	gomock.InOrder(
		f.writer.EXPECT().Write([]byte("frame")).Return(5, nil),
		f.writer.EXPECT().Flush().Return(nil),
	)

	if n, err := f.driver.Write([]byte("frame")); err != nil || n != 5 {
		t.Errorf("write: got (%d, %v)", n, err)
	}
	if err := f.driver.Flush(); err != nil {
		t.Errorf("flush: %v", err)
	}
}

func TestStandardDriver_RawMode(t *testing.T) {
	f := setup(t)
	if err := f.driver.EnableRawMode(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.driver.DisableRawMode(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.rawMode.enabled != 1 || f.rawMode.disabled != 1 {
		t.Errorf("enabled=%d disabled=%d", f.rawMode.enabled, f.rawMode.disabled)
	}
}

func TestStandardDriver_RawModeUnsupported(t *testing.T) {
	f := setup(t)
	f.rawMode.err = errors.New("stdin is not a terminal")
	if err := f.driver.EnableRawMode(); err == nil {
		t.Error("expected error")
	}
}

func TestStandardDriver_Size(t *testing.T) {
	f := setup(t)
	rows, cols, err := f.driver.Size()
	if err != nil || rows != 24 || cols != 80 {
		t.Errorf("got (%d, %d, %v)", rows, cols, err)
	}
}
