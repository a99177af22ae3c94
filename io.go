package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEndOfInput is returned by Execute when the console can no longer
// produce a line. The program cannot continue past it.
var ErrEndOfInput = errors.New("end of input")

// Console is the outside world as seen by IO values.
type Console interface {
	WriteText(s string)
	ReadLine() (string, error)
}

// NewConsole builds a line-oriented console over r and w.
func NewConsole(r io.Reader, w io.Writer) Console {
	return &console{in: bufio.NewReader(r), out: w}
}

type console struct {
	in  *bufio.Reader
	out io.Writer
}

func (c *console) WriteText(s string) {
	fmt.Fprint(c.out, s)
}

func (c *console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// IO describes effectful work yielding a T. Nothing happens until the
// description is handed a Console by Execute.
type IO[T any] func(c Console) T

// Unit is the result of effects that yield nothing useful.
type Unit struct{}

type readFailure struct {
	err error
}

// Execute runs m against c. It is the only place where effects happen.
func Execute[T any](m IO[T], c Console) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(readFailure)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%w: %w", ErrEndOfInput, f.err)
		}
	}()
	return m(c), nil
}

// Pure yields v without any effect.
func Pure[T any](v T) IO[T] {
	return func(Console) T {
		return v
	}
}

// FromThunk defers an arbitrary effectful function.
func FromThunk[T any](f func() T) IO[T] {
	return func(Console) T {
		return f()
	}
}

// WriteText writes s without a trailing newline.
func WriteText(s string) IO[Unit] {
	return func(c Console) Unit {
		c.WriteText(s)
		return Unit{}
	}
}

// WriteLine writes s followed by a newline.
func WriteLine(s string) IO[Unit] {
	return WriteText(s + "\n")
}

// ReadLine blocks for one line of input, without its terminator.
func ReadLine() IO[string] {
	return func(c Console) string {
		line, err := c.ReadLine()
		if err != nil {
			panic(readFailure{err: err})
		}
		return line
	}
}

// MapIO transforms the eventual result of m.
func MapIO[T, U any](m IO[T], f func(T) U) IO[U] {
	return func(c Console) U {
		return f(m(c))
	}
}

// BindIO runs m, then the computation f builds from its result.
func BindIO[T, U any](m IO[T], f func(T) IO[U]) IO[U] {
	return func(c Console) U {
		return f(m(c))(c)
	}
}

// Then runs a and then b, keeping only b's result.
func Then[T, U any](a IO[T], b IO[U]) IO[U] {
	return BindIO(a, func(T) IO[U] { return b })
}

// Forever feeds each state produced by step back into step. The loop
// is iterative so the stack stays flat however long the program runs.
func Forever[S any](initial S, step func(S) IO[S]) IO[Unit] {
	return func(c Console) Unit {
		s := initial
		for {
			s = step(s)(c)
		}
	}
}
