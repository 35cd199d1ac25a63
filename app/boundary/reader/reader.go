package reader

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// ErrNoInput は入力が閉じられた（EOF）場合のエラー
var ErrNoInput = errors.New("no input")

//go:generate mockgen -source=reader.go -destination=mock/mock_reader.go -package=mock_reader

type KeyReader interface {
	// Poll はtimeoutまで待ち、読み取り可能ならtrueを返す
	Poll(timeout time.Duration) (bool, error)
	Read() ([]byte, int, error)
}

type StandardKeyReader struct {
	fd int
}

func NewStandardKeyReader() *StandardKeyReader {
	return &StandardKeyReader{fd: int(os.Stdin.Fd())}
}

func (kr *StandardKeyReader) Poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(kr.fd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil {
		// シグナルによる中断はタイムアウトと同じ扱い
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, fmt.Errorf("poll error: %w", err)
	}
	if n == 0 {
		return false, nil
	}
	if fds[0].Revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
		return false, fmt.Errorf("poll error: revents=%#x", fds[0].Revents)
	}
	return true, nil
}

func (kr *StandardKeyReader) Read() ([]byte, int, error) {
	// 標準入力から読み取り
	buf := make([]byte, 32)
	for {
		n, err := unix.Read(kr.fd, buf)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return nil, n, fmt.Errorf("input error: %w", err)
		}
		if n == 0 {
			return nil, n, ErrNoInput
		}
		return buf, n, nil
	}
}
