package pfifo

import "errors"

var (
	// ErrFull is returned by TryPush when the buffer is at capacity.
	ErrFull = errors.New("pfifo: buffer is full")

	// ErrEmpty is returned by TryPull when the buffer holds no payloads.
	ErrEmpty = errors.New("pfifo: buffer is empty")

	// ErrWouldBlock is returned by the non-blocking operations when the
	// buffer lock could not be acquired immediately.
	ErrWouldBlock = errors.New("pfifo: operation would block")

	// ErrClosed is returned by every operation on a closed buffer,
	// including a second Close.
	ErrClosed = errors.New("pfifo: buffer is closed")
)
