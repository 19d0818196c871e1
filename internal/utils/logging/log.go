package logging

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"mediafetch/internal/domain/consts"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	loggable   bool
	logFile    *os.File
	fileLogger zerolog.Logger

	// Regular expression to match ANSI escape codes
	ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// SetupLogging opens (or creates) the log file and tags this run with a fresh ID.
func SetupLogging(logFilePath string) error {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, consts.PermsLogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
	}

	logFile = f
	fileLogger = zerolog.New(f).With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
	loggable = true

	fileLogger.Info().Msgf("=========== %v ===========", time.Now().Format(time.RFC1123Z))
	return nil
}

// CloseLogging flushes and closes the log file, if one is open.
func CloseLogging() error {
	mu.Lock()
	defer mu.Unlock()

	if !loggable {
		return nil
	}
	loggable = false
	fileLogger = zerolog.Nop()

	err := logFile.Close()
	logFile = nil
	return err
}

// writeLog writes a console line to the log file. Callers hold mu.
func writeLog(msg string, lvl zerolog.Level) {
	if !loggable {
		return
	}
	fileLogger.WithLevel(lvl).Msg(strings.TrimRight(stripAnsiCodes(msg), "\n"))
}

// stripAnsiCodes removes ANSI escape codes from a string
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}
