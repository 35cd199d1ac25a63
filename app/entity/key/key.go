package key

// EventType は端末から届くイベントの種類を表す
type EventType int

const (
	EventKey EventType = iota + 1 // 1から開始
	EventMouse
	EventResize
	EventFocus
)

// Event は端末ドライバが生成するイベント
// Typeに応じて有効なフィールドが異なる
type Event struct {
	Type        EventType
	Key         KeyEvent    // EventKeyの場合
	MouseRow    int         // マウスイベントの行位置
	MouseCol    int         // マウスイベントの列位置
	MouseAction MouseAction // マウスイベントの種類
	Rows        int         // EventResizeの場合の新しい行数
	Cols        int         // EventResizeの場合の新しい列数
	Focused     bool        // EventFocusの場合
}

// IsKey はキー入力イベントかどうかを返す
func (e Event) IsKey() bool {
	return e.Type == EventKey
}

// KeyEvent は押されたキーを表す
type KeyEvent struct {
	Code      Code     // KeyRuneなら通常の文字、それ以外は特殊キー
	Rune      rune     // 通常の文字入力の場合
	Modifiers Modifier // Ctrl, Altなどの修飾キー
}

// Code はキーの種類を表す
type Code int

const (
	KeyNone Code = iota
	KeyRune
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackTab
)

// Modifier は修飾キーのビット集合
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModShift Modifier = 1 << 2
)

// MouseAction はマウスアクションの種類を表す
type MouseAction int

const (
	MouseScrollUp MouseAction = iota + 1
	MouseScrollDown
	MouseLeftClick
	MouseRightClick
	MouseMiddleClick
)

// NewRune は修飾キーなしの文字キーを作成する
func NewRune(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r, Modifiers: ModNone}
}

// NewCtrl はCtrl+文字のキーを作成する
func NewCtrl(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r, Modifiers: ModCtrl}
}

// NewKeyEvent はキー入力をEventに包む
func NewKeyEvent(k KeyEvent) Event {
	return Event{Type: EventKey, Key: k}
}

// Is は文字と修飾キーが完全に一致するかを返す
func (k KeyEvent) Is(r rune, mod Modifier) bool {
	return k.Code == KeyRune && k.Rune == r && k.Modifiers == mod
}
