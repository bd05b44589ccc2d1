// Package gwlog configures the op/go-logging backend shared by the client
// core and cmd/wlinfo, grounded on the teacher's own SetupLogging helper.
package gwlog

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("gowl")

var stderrFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s}%{color:reset} %{shortfunc} ▶ %{message}`,
)

// Setup installs a stderr backend at defaultLevel, overridable via the
// GOWL_LOG_LEVEL environment variable, and returns the shared logger.
func Setup(defaultLevel logging.Level) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)

	switch os.Getenv("GOWL_LOG_LEVEL") {
	case "CRITICAL":
		leveled.SetLevel(logging.CRITICAL, "gowl")
	case "ERROR":
		leveled.SetLevel(logging.ERROR, "gowl")
	case "WARNING":
		leveled.SetLevel(logging.WARNING, "gowl")
	case "NOTICE":
		leveled.SetLevel(logging.NOTICE, "gowl")
	case "INFO":
		leveled.SetLevel(logging.INFO, "gowl")
	case "DEBUG":
		leveled.SetLevel(logging.DEBUG, "gowl")
	default:
		leveled.SetLevel(defaultLevel, "gowl")
	}

	logging.SetBackend(leveled)
	return log
}

// Logger returns the shared logger without reconfiguring the backend; safe
// to call before Setup, in which case go-logging's own default applies.
func Logger() *logging.Logger { return log }
