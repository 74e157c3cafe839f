package misc

import (
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
)

// Verbosities lists the names accepted by NewLogger.
var Verbosities = []string{"minimal", "normal", "all"}

// NewLogger creates a named logger. Unknown verbosity names fall back to
// minimal, which only reports errors.
func NewLogger(name string, verbosity string) bslogger.Logger {
	switch strings.ToLower(verbosity) {
	case "all":
		return bslogger.NewLogger(name, bslogger.All, nil)
	case "normal":
		return bslogger.NewLogger(name, bslogger.Normal, nil)
	default:
		return bslogger.NewLogger(name, bslogger.Minimal, nil)
	}
}

func ValidVerbosity(verbosity string) bool {
	for _, v := range Verbosities {
		if strings.EqualFold(v, verbosity) {
			return true
		}
	}
	return false
}

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

type Severity int

func (s Severity) String() string {
	return []string{
		"Fatal", "Error", "Warning", "Info", "Debug",
	}[s]
}

// CheckError reports err through logger at the given severity and tells
// whether there was anything to report. Fatal exits the process.
func CheckError(err error, logger bslogger.Logger, severity Severity) bool {
	if err == nil {
		return false
	}

	switch severity {
	case Error:
		logger.Error(err.Error())
	case Warning:
		logger.Warning(err.Error())
	case Info:
		logger.Info(err.Error())
	case Debug:
		logger.Debug(err.Error())
	default:
		logger.Fatal(err.Error())
	}
	return true
}
