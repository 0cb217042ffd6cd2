// Package terminal provides raw mode and size queries for a terminal file
// descriptor, enough to run a full-screen demo and put the terminal back the
// way it was found.
package terminal

import (
	"image"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal holds a terminal file descriptor and the attributes it had when
// New captured it.
type Terminal struct {
	fd    uintptr
	saved unix.Termios
}

// New captures the current attributes of the terminal on fd. Restore returns
// the terminal to this captured state.
func New(fd uintptr) Terminal {
	t := Terminal{fd: fd}
	termios.Tcgetattr(fd, &t.saved)
	return t
}

// SetRaw puts the terminal in raw mode: no echo, no line buffering, no signal
// characters.
func (t Terminal) SetRaw() error {
	attr := t.saved
	termios.Cfmakeraw(&attr)
	return termios.Tcsetattr(t.fd, termios.TCSANOW, &attr)
}

// Restore returns the terminal to the attributes captured by New.
func (t Terminal) Restore() error {
	return termios.Tcsetattr(t.fd, termios.TCSANOW, &t.saved)
}

// Bounds returns the terminal's size in cells as a rectangle at the origin.
func (t Terminal) Bounds() (image.Rectangle, error) {
	ws, err := unix.IoctlGetWinsize(int(t.fd), unix.TIOCGWINSZ)
	if err != nil {
		return image.Rectangle{}, err
	}
	return image.Rect(0, 0, int(ws.Col), int(ws.Row)), nil
}
