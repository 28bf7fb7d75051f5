package notify

import "errors"

var (
	// ErrMailboxClosed is returned when delivering to, or closing, a
	// mailbox that has already been closed.
	ErrMailboxClosed = errors.New("mailbox is closed")

	// ErrMailboxFull is returned when the mailbox buffer has no room
	// for another notification.
	ErrMailboxFull = errors.New("mailbox buffer is full")
)
