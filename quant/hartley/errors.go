package hartley

import "errors"

var (
	// ErrBlockSize indicates a reference transform size that is not a power
	// of two >= 8.
	ErrBlockSize = errors.New("hartley: size must be a power of two >= 8")

	// ErrLength indicates a buffer whose length does not match the
	// reference transform size.
	ErrLength = errors.New("hartley: buffer length does not match transform size")
)
