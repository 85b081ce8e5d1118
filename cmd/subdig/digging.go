// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/siemens/subdig/pipeline"
	"github.com/siemens/subdig/resolver"

	"github.com/gosuri/uilive"
)

// For CLI unit tests...
var lookuper resolver.Lookuper = net.DefaultResolver

// DigAndReport runs the resolution pipeline as configured, rendering the
// progress live to w. After the pipeline has completed, a final completion
// message gets rendered.
func DigAndReport(ctx context.Context, w io.Writer, cfg pipeline.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// Dunno what uilive's background updating mode using Start() is good
	// for? It may trigger anytime with the rendering into the buffer not
	// yet complete, thus making the terminal output very flickery. So we
	// avoid Start() and instead let the progress reporter trigger an explicit
	// flush to the terminal after having completed rendering a status line.
	term := uilive.New()
	term.Out = w

	summary, err := pipeline.Run(ctx, cfg,
		pipeline.WithLookuper(lookuper),
		pipeline.WithTerminal(term))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, completedStyle(w, summary.String()))
	return nil
}
