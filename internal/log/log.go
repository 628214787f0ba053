package log

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// SetFormatter keeps regular output to the bare message so command output
// stays clean.
func SetFormatter() {
	logrus.SetFormatter(&easy.Formatter{
		LogFormat: "%msg%",
	})
}

// SetDebugFormatter switches to a caller-annotated formatter for debugging.
func SetDebugFormatter() {
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:          viper.GetBool("disable-color"),
		DisableLevelTruncation: true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		},
	})
}

func SetLogLevel(logLevel string, debug bool) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		SetDebugFormatter()
		return
	}

	SetFormatter()
	if logLevel != "" {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error parsing log level: %s\n", logLevel)
			os.Exit(1)
		}
		logrus.SetLevel(level)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
