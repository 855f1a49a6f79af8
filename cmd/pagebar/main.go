package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/macropower/pagebar/internal/cli"
	"github.com/macropower/pagebar/pkg/version"
)

func main() {
	info := version.Get()

	err := fang.Execute(context.Background(), cli.NewRootCmd(),
		fang.WithVersion(info.String()),
		fang.WithCommit(info.Revision),
		fang.WithColorSchemeFunc(cli.ColorSchemeFunc),
		fang.WithErrorHandler(cli.ErrorHandler),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		os.Exit(1)
	}
}
