// Package logflags defines the command-line flags that configure logging.
package logflags

import (
	"flag"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Flags struct {
	Level zapcore.Level
	JSON  bool
	// Path is "stderr", "stdout" or a file, which is rotated once it grows
	// past MaxSize megabytes.
	Path    string
	MaxSize int
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.Level = zapcore.WarnLevel
	fs.Var(&f.Level, "loglevel", "logging level (debug, info, warn, error)")
	fs.BoolVar(&f.JSON, "logjson", false, "write log entries as JSON")
	fs.StringVar(&f.Path, "logpath", "stderr", "path of log output")
	fs.IntVar(&f.MaxSize, "logmaxsize", 100, "megabytes written to a log file before it is rotated")
}

// Open returns a logger configured by the flags.
func (f *Flags) Open() (*zap.Logger, error) {
	var ws zapcore.WriteSyncer
	switch f.Path {
	case "", "stderr":
		ws = zapcore.Lock(os.Stderr)
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	default:
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename: f.Path,
			MaxSize:  f.MaxSize,
		})
	}
	var enc zapcore.Encoder
	if f.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, ws, f.Level)), nil
}
