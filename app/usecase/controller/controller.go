package controller

import (
	"fmt"

	"github.com/wasya-io/kilo-core/app/boundary/provider/input"
	"github.com/wasya-io/kilo-core/app/entity/core"
	"github.com/wasya-io/kilo-core/app/entity/cursor"
	"github.com/wasya-io/kilo-core/app/entity/key"
	"github.com/wasya-io/kilo-core/app/entity/screen"
	"github.com/wasya-io/kilo-core/app/usecase/command"
)

// vi風の移動キー
var movementKeys = map[rune]cursor.Movement{
	'h': cursor.CursorLeft,
	'j': cursor.CursorDown,
	'k': cursor.CursorUp,
	'l': cursor.CursorRight,
}

type Controller struct {
	screen    *screen.Screen
	keyReader input.KeyReader
	logger    core.Logger
	quit      bool
}

func NewController(
	screen *screen.Screen,
	keyReader input.KeyReader,
	logger core.Logger,
) *Controller {
	return &Controller{
		screen:    screen,
		keyReader: keyReader,
		logger:    logger,
	}
}

// Process はキー入力を1つ読み、対応するコマンドを実行する
// 終了キーが押された場合はfalseを返す
func (c *Controller) Process() (bool, error) {
	k, err := c.keyReader.ReadKey()
	if err != nil {
		c.logger.Log("error", fmt.Sprintf("Keypress error: %v", err))
		return false, err
	}
	return c.Dispatch(k)
}

// Dispatch はキーイベントを処理する
// Ctrl+Qで終了、修飾なしのh/j/k/lでカーソル移動、それ以外は何もしない
func (c *Controller) Dispatch(k key.KeyEvent) (bool, error) {
	cmd := c.createCommand(k)
	if cmd != nil {
		c.logger.Log("command", fmt.Sprintf("Executed command: %T", cmd))
		if err := cmd.Execute(); err != nil {
			return false, err
		}
	}
	return !c.quit, nil
}

// IsQuitting は終了キーが押されたかを返す
func (c *Controller) IsQuitting() bool {
	return c.quit
}

// createCommand はキーイベントからコマンドを作成する
func (c *Controller) createCommand(k key.KeyEvent) command.Command {
	if k.Is('q', key.ModCtrl) {
		return command.NewCommand(func() error {
			c.logger.Log("command", "Quitting")
			c.quit = true
			return nil
		})
	}

	if k.Code != key.KeyRune || k.Modifiers != key.ModNone {
		return nil
	}
	movement, ok := movementKeys[k.Rune]
	if !ok {
		return nil
	}
	return command.NewMoveCursorCommand(movement, func(m cursor.Movement) error {
		c.moveCursor(m)
		return nil
	})
}

func (c *Controller) moveCursor(movement cursor.Movement) {
	c.logger.Log("cursor", fmt.Sprintf("Moving cursor: %v", movement))
	c.screen.MoveCursor(movement)
}
