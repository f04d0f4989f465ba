// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	// ErrUnderflow reports that the buffered data holds a valid frame start
	// but not the complete frame. Recoverable: read more data and retry.
	ErrUnderflow = errors.New("not enough buffered data to complete the frame")
)
