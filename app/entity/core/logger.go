package core

//go:generate mockgen -source=logger.go -destination=mock/mock_logger.go -package=mock_core

// Logger はエディタ内部のログを記録する
// 端末には一切出力しないこと（raw mode中の画面を壊すため）
type Logger interface {
	Log(messageType string, message string)
	Flush()
}
