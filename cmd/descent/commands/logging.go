package commands

import (
	"io"
	"log"
	"os"
)

// newLogger writes to stdout and, when path is not empty, appends to the
// file at path.
func newLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(os.Stdout, "", log.LstdFlags), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(io.MultiWriter(os.Stdout, f), "", log.LstdFlags), f.Close, nil
}
