// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Cobra prints the error already, so don't fmt.Println(err) it a second
	// time; see also: https://github.com/spf13/cobra/issues/304
	if err := execute(ctx, os.Args[1:]); err != nil {
		stop()
		osExit(1)
	}
}

// execute the root command with the specified arguments, stopping any
// digging in progress as soon as ctx gets cancelled, such as on SIGINT.
func execute(ctx context.Context, args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// For CLI unit tests...
var osExit = os.Exit
