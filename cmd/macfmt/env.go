package main

import (
	"context"
	"io"
	"os"
	"os/exec"

	"golang.org/x/term"
)

// appEnv 进程环境。测试替换其中的字段以避免依赖真实终端和编辑器。
type appEnv struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	getenv     func(string) string
	isTerminal func() bool
	lookPath   func(string) (string, error)
	runEditor  func(ctx context.Context, prog string, args []string) error
}

func osEnv() *appEnv {
	return &appEnv{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // Fd 在所有支持的平台上都能放进 int
		},
		lookPath:  exec.LookPath,
		runEditor: runTerminalEditor,
	}
}

// runTerminalEditor 在当前终端上运行编辑器并等待其退出。
func runTerminalEditor(ctx context.Context, prog string, args []string) error {
	cmd := exec.CommandContext(ctx, prog, args...) //nolint:gosec // 编辑器来自用户自己的配置
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
