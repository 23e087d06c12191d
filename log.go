package menukit

import (
	"fmt"
)

// Logger is the minimal logging surface the runtime needs. On bare-metal
// targets println goes to the debug UART, so the default implementation
// just forwards there.
type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
	Warn(msg string)
	Warnf(format string, v ...any)
}

// printlnLogger outputs to whatever println is hooked up to. It has no
// concept of levels and will output everything at every level.
type printlnLogger struct{}

func (printlnLogger) Debug(msg string) {
	println(msg)
}

func (printlnLogger) Debugf(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}

func (printlnLogger) Info(msg string) {
	println(msg)
}

func (printlnLogger) Infof(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}

func (printlnLogger) Warn(msg string) {
	println("W: " + msg)
}

func (printlnLogger) Warnf(format string, v ...any) {
	println("W: " + fmt.Sprintf(format, v...))
}
