package logger

import (
	"fmt"
	"strings"
)

// Printf adapta un Logger a las librerías que esperan Printf/Fatalf (goose).
// Fatalf solo registra en nivel error; no termina el proceso.
func Printf(l Logger) *PrintfLogger {
	return &PrintfLogger{l: l}
}

type PrintfLogger struct {
	l Logger
}

func (p *PrintfLogger) Printf(format string, v ...any) {
	p.l.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), nil)
}

func (p *PrintfLogger) Fatalf(format string, v ...any) {
	p.l.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), nil)
}
