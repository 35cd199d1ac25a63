package command

import "github.com/wasya-io/kilo-core/app/entity/cursor"

type (
	Command interface {
		Execute() error
	}

	StandardCommand struct {
		fn func() error
	}

	MoveCursorCommand struct {
		movement cursor.Movement
		fn       func(cursor.Movement) error
	}
)

func NewCommand(execute func() error) StandardCommand {
	return StandardCommand{fn: execute}
}

func (c StandardCommand) Execute() error {
	return c.fn()
}

func NewMoveCursorCommand(movement cursor.Movement, execute func(cursor.Movement) error) MoveCursorCommand {
	return MoveCursorCommand{movement: movement, fn: execute}
}

func (c MoveCursorCommand) Execute() error {
	return c.fn(c.movement)
}

// Movement はこのコマンドの移動方向を返す
func (c MoveCursorCommand) Movement() cursor.Movement {
	return c.movement
}
