package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

var errQuit = errors.New("quit requested")

// controlKeys puts stdin in raw mode and feeds keypresses to e until quit
// or ctx ends. A non-terminal stdin just waits for ctx.
func controlKeys(ctx context.Context, e *engine, in *os.File) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		log.Println("stdin is not a terminal, playing until interrupted")
		<-ctx.Done()

		return nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			log.Printf("restoring terminal: %v", err)
		}
	}()

	status("keys: space start/stop, n/p preset, d drums, +/- tempo, q quit")

	keys := make(chan byte)
	go readKeys(in, keys)

	return dispatchKeys(ctx, e, keys)
}

// readKeys blocks on r and forwards each byte. It closes keys on EOF or
// error and is left running when the program exits.
func readKeys(r io.Reader, keys chan<- byte) {
	defer close(keys)

	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			keys <- buf[0]
		}

		if err != nil {
			return
		}
	}
}

func dispatchKeys(ctx context.Context, e *engine, keys <-chan byte) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-keys:
			if !ok {
				return nil
			}

			msg, quit, err := e.handleKey(b)
			if err != nil {
				return err
			}

			if msg != "" {
				status(msg)
			}

			if quit {
				return errQuit
			}
		}
	}
}

// status logs msg with the carriage return raw mode needs.
func status(msg string) {
	log.Print(msg + "\r")
}
