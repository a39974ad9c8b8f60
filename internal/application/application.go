package application

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/iwat/numio/internal/domain"
)

type App struct {
	fs     FileSystem
	logger *slog.Logger
}

func NewApp(fs FileSystem, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		fs:     fs,
		logger: logger,
	}
}

// ReadNumbers reads one integer per line from path. Lines that do not parse
// as a 32-bit integer are skipped.
func (app *App) ReadNumbers(path string) (domain.Sequence, error) {
	f, err := app.fs.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var numbers domain.Sequence
	skipped := 0
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &IOError{Op: "read", Path: path, Err: err}
		}
		if line == "" && err != nil {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			return nil, &IOError{Op: "read", Path: path, Err: ErrInvalidEncoding}
		}
		if n, ok := domain.ParseToken(line); ok {
			numbers = append(numbers, n)
		} else {
			skipped++
		}

		if err != nil {
			break
		}
	}

	app.logger.Debug("read numbers", "path", path, "count", len(numbers), "skipped", skipped)
	return numbers, nil
}

// WriteNumbers creates or truncates path and writes each number on its own line.
// On failure the file may be left partially written.
func (app *App) WriteNumbers(path string, numbers domain.Sequence) (err error) {
	f, err := app.fs.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: closeErr}
		}
	}()

	w := bufio.NewWriter(f)
	buf := make([]byte, 0, 16)
	for _, n := range numbers {
		buf = domain.FormatValue(buf[:0], n)
		if _, err := w.Write(buf); err != nil {
			return &IOError{Op: "write", Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	app.logger.Debug("wrote numbers", "path", path, "count", len(numbers))
	return nil
}
