// Package logging adapts zerolog to the hwio.Logger interface.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/moffa90/go-ivcam/hwio"
)

// Zerolog forwards hwio log calls to a zerolog.Logger.
type Zerolog struct {
	logger zerolog.Logger
}

var _ hwio.Logger = (*Zerolog)(nil)

// NewZerolog wraps an existing zerolog logger.
func NewZerolog(logger zerolog.Logger) *Zerolog {
	return &Zerolog{logger: logger}
}

// New returns a console logger writing to w at the given level.
//
// Example:
//
//	logger := logging.New(os.Stderr, zerolog.DebugLevel)
//	hw, err := hwio.New(ctx, usbctx, hwio.WithLogger(logger))
func New(w io.Writer, level zerolog.Level) *Zerolog {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("component", "ivcam").Logger()
	return NewZerolog(logger)
}

func (z *Zerolog) Debug(msg string, keysAndValues ...interface{}) {
	z.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (z *Zerolog) Info(msg string, keysAndValues ...interface{}) {
	z.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (z *Zerolog) Error(msg string, keysAndValues ...interface{}) {
	z.logger.Error().Fields(keysAndValues).Msg(msg)
}
