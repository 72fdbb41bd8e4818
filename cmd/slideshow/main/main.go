package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/slideshow/cmd/slideshow"
	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/arthur-debert/slideshow/pkg/style"
)

func main() {
	rootCmd := slideshow.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if !style.IsPlain(os.Stderr) {
			msg = style.ErrorStyle.Render(msg)
		}
		fmt.Fprintln(os.Stderr, msg)

		code := errors.ExitCode(err)
		if code == errors.ExitUsage {
			// Show usage for malformed command lines only
			fmt.Fprintln(os.Stderr)
			rootCmd.SetOut(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(code)
	}
}
