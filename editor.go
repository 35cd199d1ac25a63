package main

import (
	"github.com/wasya-io/kilo-core/app/boundary/logger"
	"github.com/wasya-io/kilo-core/app/boundary/provider/input"
	"github.com/wasya-io/kilo-core/app/boundary/provider/terminal"
	"github.com/wasya-io/kilo-core/app/boundary/reader"
	"github.com/wasya-io/kilo-core/app/boundary/writer"
	"github.com/wasya-io/kilo-core/app/config"
	"github.com/wasya-io/kilo-core/app/entity/core"
	"github.com/wasya-io/kilo-core/app/entity/screen"
	"github.com/wasya-io/kilo-core/app/usecase/controller"
	"github.com/wasya-io/kilo-core/app/usecase/editor"
	"github.com/wasya-io/kilo-core/app/usecase/parser"
)

// NewEditor は実端末に接続したエディタを組み立てる
// 端末サイズの検証はraw modeに入る前に行う
func NewEditor(conf *config.Config) (*editor.Editor, core.Logger, error) {
	logger, err := logger.New(conf.DebugMode, conf.LogFile)
	if err != nil {
		return nil, nil, err
	}

	// 端末ドライバの初期化
	parser := parser.NewStandardInputParser(logger)
	reader := reader.NewStandardKeyReader()
	writer := writer.NewStandardScreenWriter()
	driver := terminal.NewStandardDriver(logger, reader, writer, parser)

	// ウィンドウサイズの取得（起動時の1回のみ）
	screenRows, screenCols, err := driver.Size()
	if err != nil {
		return nil, logger, err
	}

	screen, err := screen.NewScreen(screen.NewBuilder(), screenRows, screenCols, conf.Placeholder)
	if err != nil {
		return nil, logger, err
	}

	keyReader := input.NewStandardKeyReader(logger, driver)
	controller := controller.NewController(screen, keyReader, logger)

	ed, err := editor.New(logger, driver, screen, controller)
	if err != nil {
		return nil, logger, err
	}

	return ed, logger, nil
}
