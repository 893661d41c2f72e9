package controllers

import (
	"strings"

	logger "github.com/sirupsen/logrus"
)

// levelWriter logs every written line at a fixed level. Unlike
// logger.WriterLevel it logs synchronously, so entries keep their order
// relative to the surrounding log calls.
type levelWriter struct {
	level logger.Level
}

func (w levelWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		logger.StandardLogger().Log(w.level, line)
	}
	return len(p), nil
}
