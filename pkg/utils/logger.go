package utils

import (
	"fmt"
	"os"
	"time"
)

// Logger for debug and diagnostic messages
var (
	isVerbose = false
	logFile   *os.File
)

// Log prints debug messages to the log file if verbose mode is enabled
func Log(text string, args ...interface{}) {
	if isVerbose && logFile != nil {
		fmt.Fprintf(logFile, text+"\n", args...)
	}
}

// Error reports a failure on the diagnostic channel. Unlike Log it is
// always written, to the log file when one is open and to stderr
// otherwise. Persistence failures are reported here instead of being
// raised to callers.
func Error(text string, args ...interface{}) {
	if logFile != nil {
		fmt.Fprintf(logFile, "error: "+text+"\n", args...)
		return
	}
	fmt.Fprintf(os.Stderr, "taskflow: "+text+"\n", args...)
}

// InitLogger initializes the logging system
func InitLogger(verbose bool) {
	isVerbose = verbose

	if verbose {
		now := time.Now()
		logFileName := fmt.Sprintf("/tmp/taskflow_%s.log", now.Format("2006-01-02"))

		var err error
		logFile, err = os.Create(logFileName)
		if err != nil {
			fmt.Printf("Error creating log file: %v\n", err)
			return
		}

		Log("Verbose logging enabled")
	}
}

// CloseLogger closes the log file if it's open
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
