package config

import (
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"golang.org/x/text/width"
)

const (
	defaultPlaceholder = "~"
)

// Config はエディタの設定を保持する構造体
type Config struct {
	DebugMode   bool
	LogFile     string // 空なら起動時刻から決める
	Placeholder string // テキストのない行に表示する記号
}

// LoadConfig は.envファイルから設定を読み込む
func LoadConfig() *Config {
	// .envファイルを読み込む（なければ環境変数のみ）
	godotenv.Load()

	config := &Config{
		DebugMode:   false,
		Placeholder: defaultPlaceholder,
	}

	// DEBUG環境変数から設定を読み込む
	if debug := os.Getenv("DEBUG"); debug != "" {
		config.DebugMode = debug == "true"
	}

	config.LogFile = os.Getenv("LOG_FILE")

	// PLACEHOLDER環境変数から設定を読み込む
	if p := os.Getenv("PLACEHOLDER"); p != "" && IsValidPlaceholder(p) {
		config.Placeholder = p
	}

	return config
}

// IsValidPlaceholder は表示幅1の印字可能な1文字かどうかを返す
func IsValidPlaceholder(s string) bool {
	if utf8.RuneCountInString(s) != 1 || !utf8.ValidString(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return false
	}
	return getCharWidth(r) == 1
}

// getCharWidth は文字の表示幅を返す
func getCharWidth(ch rune) int {
	p := width.LookupRune(ch)
	switch p.Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		return 1
	}
}
