package logger

import (
	"github.com/spf13/cobra"
	"github.com/thorn-jmh/errorst"
)

// SetupLogger builds a logger from the CLI settings and makes it the default.
func SetupLogger(logLevel string, logJSON, logSource bool) Logger {
	l := NewLogger(Config{
		Level:     Level(logLevel),
		JSON:      logJSON,
		AddSource: logSource,
	})
	SetDefault(l)
	return l
}

func GetLoggerConfig(cmd *cobra.Command) (string, bool, bool, error) {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return "", false, false, errorst.Wrap(err, "failed to get log-level flag")
	}

	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return "", false, false, errorst.Wrap(err, "failed to get log-json flag")
	}

	logSource, err := cmd.Flags().GetBool("log-source")
	if err != nil {
		return "", false, false, errorst.Wrap(err, "failed to get log-source flag")
	}

	return logLevel, logJSON, logSource, nil
}
