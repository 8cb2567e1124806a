// SPDX-License-Identifier: MIT

package fusion

import "errors"

var (
	// ErrInvalidConfig reports a configuration that failed validation. The
	// wrapped *multierror.Error lists every problem found.
	ErrInvalidConfig = errors.New("fusion: invalid configuration")

	// ErrMalformedCSV reports a data file that is not a numeric table with a
	// header row and a sample id column.
	ErrMalformedCSV = errors.New("fusion: malformed CSV")

	// ErrBlockMismatch reports blocks that do not line up with the configuration.
	ErrBlockMismatch = errors.New("fusion: blocks do not match configuration")
)
