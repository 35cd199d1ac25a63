package writer

import (
	"os"
)

//go:generate mockgen -source=writer.go -destination=mock/mock_writer.go -package=mock_writer

type ScreenWriter interface {
	Write(p []byte) (int, error)
	Flush() error
}

// StandardScreenWriter は標準出力に書き込む
// os.Fileはバッファを持たないので、Writeの1回がそのまま1回のwriteになる
type StandardScreenWriter struct {
	out *os.File
}

func NewStandardScreenWriter() *StandardScreenWriter {
	return &StandardScreenWriter{out: os.Stdout}
}

func (w *StandardScreenWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

// Flush は何もしない（バッファなし）
func (w *StandardScreenWriter) Flush() error {
	return nil
}
