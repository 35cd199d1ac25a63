package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wasya-io/kilo-core/app/config"
	"github.com/wasya-io/kilo-core/app/usecase/editor"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		die(err)
	}
}

var (
	debugFlag   bool
	logFileFlag string
)

var rootCmd = &cobra.Command{
	Use:           "kilo",
	Short:         "A minimal raw-mode terminal screen editor",
	Long:          "kilo draws a full-screen grid and moves the cursor with h/j/k/l. Press Ctrl-Q to quit.",
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.LoadConfig()
		if cmd.Flags().Changed("debug") {
			conf.DebugMode = debugFlag
		}
		if logFileFlag != "" {
			conf.LogFile = logFileFlag
		}
		return run(conf)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write a JSON debug log (overrides DEBUG)")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "debug log path (overrides LOG_FILE)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kilo %s\n", version)
	},
}

func run(conf *config.Config) error {
	ed, logger, err := NewEditor(conf)
	if err != nil {
		if logger != nil {
			logger.Flush()
		}
		return err
	}
	defer ed.Cleanup() // 確実なクリーンアップを保証

	// パニック時も端末を元に戻してから終了する
	defer func() {
		if r := recover(); r != nil {
			ed.Cleanup()
			fmt.Fprintf(os.Stderr, "Editor crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s", debug.Stack())
			os.Exit(1)
		}
	}()

	watchSignals(ed)

	// エディタのメインループ
	return ed.Run()
}

// watchSignals は外部からの終了シグナルで端末を復元して終了する
// raw modeではCtrl-CはSIGINTにならないので、主にSIGTERM/SIGHUP向け
func watchSignals(ed *editor.Editor) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		ed.Cleanup()
		os.Exit(1)
	}()
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
