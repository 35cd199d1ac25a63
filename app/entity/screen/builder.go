package screen

import (
	"strings"
	"unicode/utf8"

	"github.com/wasya-io/kilo-core/app/entity/core"
)

// Output は描画内容の書き込み先（端末ドライバ）
type Output interface {
	Write(p []byte) (int, error)
	Flush() error
}

// Builder は1フレーム分の出力を溜めておくバッファ
// Flushするまで端末には何も書き込まない
type Builder struct {
	buffer strings.Builder
}

func NewBuilder() *Builder {
	return &Builder{
		buffer: strings.Builder{},
	}
}

// Write はUTF-8のバイト列を追加する。I/Oは行わない
func (b *Builder) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, core.NewEncodingError("staged output is not valid UTF-8")
	}
	return b.buffer.Write(p)
}

// WriteString は文字列を追加する
func (b *Builder) WriteString(s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, core.NewEncodingError("staged output is not valid UTF-8")
	}
	return b.buffer.WriteString(s)
}

// Queue はエスケープシーケンスなどをまとめて追加する
func (b *Builder) Queue(seqs ...string) error {
	for _, s := range seqs {
		if _, err := b.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}

// Flush は溜めた内容を1回の書き込みで出力し、バッファを空にする
// 書き込みに失敗しても内容は破棄する（再送しない）
func (b *Builder) Flush(out Output) error {
	content := b.buffer.String()
	b.Clear()

	if _, err := out.Write([]byte(content)); err != nil {
		return core.NewIOError("failed to write frame", err)
	}
	if err := out.Flush(); err != nil {
		return core.NewIOError("failed to flush terminal", err)
	}
	return nil
}

func (b *Builder) Clear() {
	b.buffer.Reset()
}

func (b *Builder) Len() int {
	return b.buffer.Len()
}

func (b *Builder) String() string {
	return b.buffer.String()
}
