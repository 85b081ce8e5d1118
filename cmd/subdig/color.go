// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/muesli/termenv"
)

// completedStyle returns the style for the completion message, adapted to
// the capabilities of the specified writer.
func completedStyle(w io.Writer, msg string) termenv.Style {
	return termenv.NewOutput(w).String(msg).Foreground(termenv.ANSIGreen).Bold()
}
