// Command pathtrace follows the path drawn in ASCII diagrams and prints the
// visited characters, the collected letters and why the walk ended.
//
// Usage:
//
//	pathtrace [flags] [file ...]
//
// With no file, or with "-", the diagram is read from standard input.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdin, os.Stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
