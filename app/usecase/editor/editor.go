package editor

import (
	"fmt"
	"sync"

	"github.com/wasya-io/kilo-core/app/entity/core"
	"github.com/wasya-io/kilo-core/app/entity/core/term"
	"github.com/wasya-io/kilo-core/app/entity/screen"
	"github.com/wasya-io/kilo-core/app/usecase/controller"
)

// State はエディタの状態
type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// Editor はエディタの状態を管理する構造体
// 1フレームごとに画面を描画し、キー入力を1つ処理する
type Editor struct {
	screen      *screen.Screen
	controller  *controller.Controller
	driver      term.Driver
	guard       *term.Guard
	logger      core.Logger
	state       State
	cleanupOnce sync.Once
}

// New は新しいEditorインスタンスを作成し、端末をraw modeに切り替える
func New(
	logger core.Logger,
	driver term.Driver,
	screen *screen.Screen,
	controller *controller.Controller,
) (*Editor, error) {
	guard, err := term.NewGuard(driver, logger)
	if err != nil {
		return nil, err
	}

	return &Editor{
		screen:     screen,
		controller: controller,
		driver:     driver,
		guard:      guard,
		logger:     logger,
		state:      StateRunning,
	}, nil
}

func (e *Editor) State() State {
	return e.state
}

// RunFrame は1フレームを実行する
// 描画 → 一括出力 → キー入力1つの処理。続行する場合はtrueを返す
func (e *Editor) RunFrame() (bool, error) {
	if e.state == StateStopped {
		return false, nil
	}

	if err := e.screen.Redraw(e.driver); err != nil {
		e.state = StateStopped
		return false, fmt.Errorf("failed to redraw: %w", err)
	}

	cont, err := e.controller.Process()
	if err != nil {
		e.state = StateStopped
		return false, fmt.Errorf("failed to process keypress: %w", err)
	}
	if !cont {
		e.logger.Log("system", "Quit requested")
		e.state = StateStopped
	}

	return cont, nil
}

// Run はエディタのメインループを実行する
// どのように終了しても端末は元に戻される
func (e *Editor) Run() error {
	defer e.Cleanup()

	e.logger.Log("system", "Editor starting")
	defer e.logger.Log("system", "Editor shutting down")

	for {
		cont, err := e.RunFrame()
		if err != nil {
			e.logger.Log("error", fmt.Sprintf("Main loop error: %v", err))
			return err
		}
		if !cont {
			return nil
		}
	}
}

// Cleanup は終了時の後処理を行う
func (e *Editor) Cleanup() {
	e.cleanupOnce.Do(func() {
		// 端末の状態を復元
		e.guard.Release()

		// 最後にログをフラッシュする
		e.logger.Flush()
	})
}
