/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"go.uber.org/zap/zapcore"
)

const (
	loggerNameSeparator = "."

	// DefaultFormat is the format used by the Fabric peer for chaincode logs
	DefaultFormat = "%{color}%{time:2006-01-02 15:04:05.000 MST} [%{module}] %{shortfunc} -> %{level:.4s} %{id:03x}%{color:reset} %{message}"
	// DefaultSpec enables info and above for every logger
	DefaultSpec = "info"
)

// Logger provides logging API
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	IsEnabledFor(level zapcore.Level) bool
}

// Config drives the initialization of the logging backend
type Config struct {
	// Format is either "json" or a Fabric logging format string
	Format string
	// Spec is a Fabric logging spec, for example "info" or "acc,asset=debug:warn"
	Spec string
	// Writer defaults to os.Stderr
	Writer io.Writer
}

// Init configures the logging backend. Loggers obtained before Init pick up the new settings.
func Init(c Config) {
	if len(c.Format) == 0 {
		c.Format = DefaultFormat
	}
	if len(c.Spec) == 0 {
		c.Spec = DefaultSpec
	}
	if c.Writer == nil {
		c.Writer = os.Stderr
	}
	flogging.Init(flogging.Config{
		Format:  c.Format,
		LogSpec: c.Spec,
		Writer:  c.Writer,
	})
}

func MustGetLogger(parts ...string) Logger {
	return flogging.MustGetLogger(loggerName(parts...))
}

func loggerName(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) != 0 {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, loggerNameSeparator)
}
