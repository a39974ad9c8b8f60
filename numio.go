// Package numio reads and writes files holding one decimal integer per line.
package numio

import (
	"log/slog"
	"os"

	"github.com/iwat/numio/internal/application"
	"github.com/iwat/numio/internal/domain"
	"github.com/iwat/numio/internal/infrastructure/console"
	"github.com/iwat/numio/internal/infrastructure/osfs"
)

// Numbers is the default count of values a caller generates or processes.
const Numbers = domain.Numbers

// ErrInvalidEncoding is wrapped by the IOError returned for a line that is
// not valid UTF-8.
var ErrInvalidEncoding = application.ErrInvalidEncoding

// IOError describes a failed open, read, create, write or close.
type IOError = application.IOError

// FileSystem opens files for a Codec.
type FileSystem = application.FileSystem

// Codec reads and writes integer files through a FileSystem.
type Codec struct {
	app *application.App
}

type options struct {
	fs     application.FileSystem
	logger *slog.Logger
}

// Option configures a Codec.
type Option func(*options)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFileSystem replaces the operating system filesystem.
func WithFileSystem(fs FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// New returns a Codec. Without options it uses the os package and logs
// warnings to stderr.
func New(opts ...Option) *Codec {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = osfs.FileSystem{}
	}
	if o.logger == nil {
		o.logger = slog.New(console.NewHandler(os.Stderr, slog.LevelWarn))
	}
	return &Codec{app: application.NewApp(o.fs, o.logger)}
}

// ReadFromFile returns the integers in path, one per line, in file order.
// Blank lines and lines that are not a 32-bit decimal integer are skipped.
func (c *Codec) ReadFromFile(path string) ([]int32, error) {
	return c.app.ReadNumbers(path)
}

// WriteToFile creates or truncates path and writes each number on its own line.
func (c *Codec) WriteToFile(path string, numbers []int32) error {
	return c.app.WriteNumbers(path, numbers)
}

var defaultCodec = New()

// ReadFromFile reads path with the default Codec.
func ReadFromFile(path string) ([]int32, error) {
	return defaultCodec.ReadFromFile(path)
}

// WriteToFile writes numbers to path with the default Codec.
func WriteToFile(path string, numbers []int32) error {
	return defaultCodec.WriteToFile(path, numbers)
}

// Add returns a + b, wrapping on overflow.
func Add(a, b int32) int32 {
	return domain.Add(a, b)
}

// Subtract returns a - b, wrapping on overflow.
func Subtract(a, b int32) int32 {
	return domain.Subtract(a, b)
}

// Multiply returns a * b, wrapping on overflow.
func Multiply(a, b int32) int32 {
	return domain.Multiply(a, b)
}
