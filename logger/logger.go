package logger

import (
	"io"
	"log"

	"github.com/fatih/color"
)

type Logger interface {
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l                  *log.Logger
	info, warn, errTag string
}

// New writes leveled lines to w. Level tags are colored unless color output
// is disabled globally (color.NoColor).
func New(w io.Writer) Logger {
	return &stdLogger{
		l:      log.New(w, "", log.LstdFlags),
		info:   color.New(color.FgCyan).Sprint("[INFO] "),
		warn:   color.New(color.FgYellow).Sprint("[WARN] "),
		errTag: color.New(color.FgRed, color.Bold).Sprint("[ERROR] "),
	}
}

func Nop() Logger { return nopLogger{} }

func (l *stdLogger) Infof(format string, v ...any)  { l.l.Printf(l.info+format, v...) }
func (l *stdLogger) Warnf(format string, v ...any)  { l.l.Printf(l.warn+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { l.l.Printf(l.errTag+format, v...) }

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
