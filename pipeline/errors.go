// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pipeline

// ConfigError is a fatal configuration problem, such as a missing input or
// scope file, or an invalid setting. It is raised before any output gets
// written for the affected input.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "configuration error: " + e.Err.Error() }

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error { return e.Err }

// OutputError is a fatal problem writing the results. Results of batches
// written before the error remain in the output files.
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string { return "output error: " + e.Err.Error() }

// Unwrap returns the underlying error.
func (e *OutputError) Unwrap() error { return e.Err }
