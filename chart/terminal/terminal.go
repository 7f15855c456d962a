// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminal

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/Lexer747/linechart/chart/terminal/ansi"
	"github.com/Lexer747/linechart/utils/errors"

	"golang.org/x/term"
)

type Size struct {
	Height int
	Width  int
}

func (s Size) String() string {
	return strconv.Itoa(s.Height) + "x" + strconv.Itoa(s.Width)
}

// ParseSize reads a size in the form "<H>x<W>", e.g. "20x80".
func ParseSize(size string) (Size, error) {
	h, w, found := strings.Cut(size, "x")
	if !found {
		return Size{}, errors.Errorf("terminal size %q is not in the form <H>x<W>", size)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Size{}, errors.Wrapf(err, "terminal height %q", h)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Size{}, errors.Wrapf(err, "terminal width %q", w)
	}
	if height <= 0 || width <= 0 {
		return Size{}, errors.Errorf("terminal size %q must be positive", size)
	}
	return Size{Height: height, Width: width}, nil
}

// ErrUserCancelled is the cause given to the stop function when the user presses ctrl+c.
var ErrUserCancelled = errors.New("user cancelled")

type Terminal struct {
	m         *sync.Mutex
	size      Size
	sizeFn    func() (Size, error)
	listeners []Listener

	in  io.Reader
	out io.Writer
	// inFd is the file descriptor switched to raw mode, -1 when the input is not a real terminal.
	inFd int
}

// NewTerminal opens the terminal on stdin and stdout. When stdout isn't a terminal (e.g. go tests) the size is
// fixed at 20x80.
func NewTerminal() (*Terminal, error) {
	t := &Terminal{
		m:      &sync.Mutex{},
		size:   Size{Height: 20, Width: 80},
		sizeFn: getCurrentTerminalSize,
		in:     os.Stdin,
		out:    os.Stdout,
		inFd:   int(os.Stdin.Fd()),
	}
	if !isRunningUnderTerminal() {
		t.sizeFn = func() (Size, error) { return t.size, nil }
	}
	return t, t.UpdateCurrentTerminalSize()
}

// NewFixedSizeTerminal opens the terminal on stdin and stdout but always reports the given size.
func NewFixedSizeTerminal(s Size) (*Terminal, error) {
	t := &Terminal{
		m:      &sync.Mutex{},
		size:   s,
		sizeFn: func() (Size, error) { return s, nil },
		in:     os.Stdin,
		out:    os.Stdout,
		inFd:   int(os.Stdin.Fd()),
	}
	return t, nil
}

// NewParsedFixedSizeTerminal is [NewFixedSizeTerminal] with the size parsed by [ParseSize].
func NewParsedFixedSizeTerminal(size string) (*Terminal, error) {
	s, err := ParseSize(size)
	if err != nil {
		return nil, err
	}
	return NewFixedSizeTerminal(s)
}

// NewTestTerminal creates a terminal which reads from stdin and writes to stdout, the size is polled from
// terminalSizeCallBack whenever [Terminal.UpdateCurrentTerminalSize] is called. Raw mode is never entered.
func NewTestTerminal(stdin io.Reader, stdout io.Writer, terminalSizeCallBack func() Size) (*Terminal, error) {
	t := &Terminal{
		m:      &sync.Mutex{},
		sizeFn: func() (Size, error) { return terminalSizeCallBack(), nil },
		in:     stdin,
		out:    stdout,
		inFd:   -1,
	}
	return t, t.UpdateCurrentTerminalSize()
}

func (t *Terminal) Size() Size {
	t.m.Lock()
	defer t.m.Unlock()
	return t.size
}

// UpdateCurrentTerminalSize polls the size of the terminal, returning an error if the size couldn't be found.
func (t *Terminal) UpdateCurrentTerminalSize() error {
	s, err := t.sizeFn()
	if err != nil {
		return err
	}
	t.m.Lock()
	t.size = s
	t.m.Unlock()
	return nil
}

type Listener struct {
	// Name is used for if a listener errors for easier identification, it may be omitted.
	Name string
	// Applicable is the applicability of this listen, i.e. for which input runes do you want this action to
	// be fired
	Applicable func(rune) bool
	// Action the callback which will be invoked when a user inputs the applicable rune.
	Action func(rune) error
}

// StartRaw takes ownership of the input and output and control of the incoming context. It will
// asynchronously block on the users input and forward characters to the relevant listener. By default a
// `ctrl+C` listener is added which will call the [stop] function with [ErrUserCancelled] when detected.
//
// The returned cleanup restores the terminal, it should be deferred by the caller. To block a main thread until
// the `ctrl+C` listener is hit, simply wait on the input [ctx.Done()] channel.
func (t *Terminal) StartRaw(ctx context.Context, stop context.CancelCauseFunc, listeners ...Listener) (func(), error) {
	restore := func() {}
	if t.inFd >= 0 && term.IsTerminal(t.inFd) {
		oldState, err := term.MakeRaw(t.inFd)
		if err != nil {
			return nil, errors.Wrap(err, "failed to set terminal to raw mode")
		}
		restore = func() { _ = term.Restore(t.inFd, oldState) }
	}
	once := &sync.Once{}
	cleanup := func() {
		once.Do(func() {
			restore()
			_ = t.Print(ansi.ShowCursor)
		})
	}
	controlCListener := Listener{
		Name:       "ctrl+c",
		Applicable: func(r rune) bool { return r == '\u0003' },
		Action: func(rune) error {
			cleanup()
			stop(ErrUserCancelled)
			return nil
		},
	}
	t.listeners = append(t.listeners, controlCListener)
	t.listeners = append(t.listeners, listeners...)
	if err := t.Print(ansi.HideCursor); err != nil {
		cleanup()
		return nil, err
	}
	go t.beginListening(ctx, stop)
	return cleanup, nil
}

// Print writes s to the terminal output.
func (t *Terminal) Print(s string) error {
	_, err := io.WriteString(t.out, s)
	return err
}

// Write implements [io.Writer] for the terminal output.
func (t *Terminal) Write(b []byte) (int, error) {
	return t.out.Write(b)
}

// ClearScreen erases the whole display and moves the cursor home.
func (t *Terminal) ClearScreen() error {
	return t.Print(ansi.Clear + ansi.Home)
}

func (t *Terminal) beginListening(ctx context.Context, stop context.CancelCauseFunc) {
	input := make(chan []rune)
	// The read is blocking hence the go-routine wrapper, it is only freed once the input returns which is racey
	// with the outer context.
	go func() {
		defer close(input)
		buffer := make([]byte, 16)
		for {
			n, err := t.in.Read(buffer)
			if n > 0 {
				select {
				case input <- []rune(string(buffer[:n])):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					stop(errors.Wrap(err, "unexpected read failure in terminal"))
				}
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case runes, ok := <-input:
			if !ok {
				return
			}
			for _, r := range runes {
				for _, l := range t.listeners {
					if !l.Applicable(r) {
						continue
					}
					if err := l.Action(r); err != nil {
						stop(errors.Wrapf(err, "unexpected failure Action %q in terminal", l.Name))
						return
					}
				}
			}
		}
	}
}

// getCurrentTerminalSize gets the current terminal size or error if the program doesn't have a terminal
// attached (e.g. go tests).
func getCurrentTerminalSize() (Size, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return Size{}, errors.Wrap(err, "failed to get terminal size")
	}
	return Size{Height: h, Width: w}, nil
}

func isRunningUnderTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
