package utils

import (
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func MustGetLogger() *logrus.Logger {
	return logger
}

func SetLoggerVerbose() {
	logger.SetOutput(os.Stderr)
	logger.Level = logrus.TraceLevel
}

func SetLoggerQuiet() {
	logger.SetOutput(io.Discard)
}

func init() {
	logger = logrus.New()
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	logger.Level = logrus.WarnLevel
	logger.SetOutput(os.Stderr)
	log.SetOutput(os.Stderr)
}
