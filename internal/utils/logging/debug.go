// Package logging prints tagged, leveled console messages and mirrors them to an optional log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"mediafetch/internal/domain/consts"

	"github.com/rs/zerolog"
)

// callerLevel is the debug level at which error and debug lines carry caller information.
const callerLevel = 2

var (
	Level int // Debug verbosity, 0-5
	mu    sync.Mutex

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects console output. Nil writers are left unchanged.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// E prints an error to stderr.
func E(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.RedError(), format, args, Level >= callerLevel)
	fmt.Fprint(stderr, msg)
	writeLog(msg, zerolog.ErrorLevel)
	return msg
}

// W prints a warning to stderr.
func W(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.PurpleWarning(), format, args, false)
	fmt.Fprint(stderr, msg)
	writeLog(msg, zerolog.WarnLevel)
	return msg
}

// S prints a success message to stdout.
func S(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.GreenSuccess(), format, args, false)
	fmt.Fprint(stdout, msg)
	writeLog(msg, zerolog.InfoLevel)
	return msg
}

// D prints a debug message to stdout when l is within the debug level.
func D(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.YellowDebug(), format, args, Level >= callerLevel)
	fmt.Fprint(stdout, msg)
	writeLog(msg, zerolog.DebugLevel)
	return msg
}

// I prints an info message to stdout.
func I(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := build(consts.BlueInfo(), format, args, false)
	fmt.Fprint(stdout, msg)
	writeLog(msg, zerolog.InfoLevel)
	return msg
}

// P prints a plain message to stdout.
func P(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := build("", format, args, false)
	fmt.Fprint(stdout, msg)
	writeLog(msg, zerolog.InfoLevel)
	return msg
}

// build assembles a tagged line, optionally suffixed with the caller's location.
func build(tag, format string, args []any, withCaller bool) string {
	var b strings.Builder
	b.Grow(len(tag) + len(format) + (len(args) * 32) + 2)
	b.WriteString(tag)

	if len(args) != 0 {
		fmt.Fprintf(&b, format, args...)
	} else {
		b.WriteString(format)
	}

	if withCaller {
		// 0 = build, 1 = E/D, 2 = caller
		pc, file, line, ok := runtime.Caller(2)
		if ok {
			funcName := filepath.Base(runtime.FuncForPC(pc).Name())

			b.WriteString(" [")
			b.WriteString(consts.ColorBlue.Sprint("Function: "))
			b.WriteString(funcName)
			b.WriteString(" - ")
			b.WriteString(consts.ColorBlue.Sprint("File: "))
			b.WriteString(filepath.Base(file))
			b.WriteString(" : ")
			b.WriteString(consts.ColorBlue.Sprint("Line: "))
			b.WriteString(strconv.Itoa(line))
			b.WriteRune(']')
		}
	}

	b.WriteRune('\n')
	return b.String()
}
