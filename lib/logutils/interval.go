// Copyright (c) 2026 Tigera, Inc. All rights reserved.

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutils

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const fieldLogSkipped = "logs-skipped"

// NewIntervalLogger returns a logger that writes the first log and then at
// most one log per interval. Each written log carries the number of logs
// skipped since the previous one.
func NewIntervalLogger(interval time.Duration, logger *logrus.Logger) *IntervalLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &IntervalLogger{
		interval: interval,
		entry:    logrus.NewEntry(logger),
		state:    &intervalState{next: time.Now()},
	}
}

// IntervalLogger is used for messages that may repeat on every request, such
// as the client being throttled.
type IntervalLogger struct {
	interval time.Duration
	entry    *logrus.Entry

	// Shared by loggers derived with WithField so the interval applies to all
	// of them.
	state *intervalState
}

type intervalState struct {
	lock    sync.Mutex
	next    time.Time
	skipped int
}

func (l *IntervalLogger) WithField(key string, value interface{}) *IntervalLogger {
	return &IntervalLogger{interval: l.interval, entry: l.entry.WithField(key, value), state: l.state}
}

func (l *IntervalLogger) WithFields(fields logrus.Fields) *IntervalLogger {
	return &IntervalLogger{interval: l.interval, entry: l.entry.WithFields(fields), state: l.state}
}

// logEntry returns the entry to write to, nil if this log is skipped. The lock
// is never held while writing.
func (l *IntervalLogger) logEntry() *logrus.Entry {
	now := time.Now()
	l.state.lock.Lock()
	defer l.state.lock.Unlock()
	if now.Before(l.state.next) {
		l.state.skipped++
		return nil
	}
	entry := l.entry.WithField(fieldLogSkipped, l.state.skipped)
	l.state.next = now.Add(l.interval)
	l.state.skipped = 0
	return entry
}

func (l *IntervalLogger) Debug(args ...interface{}) {
	if entry := l.logEntry(); entry != nil {
		entry.Debug(args...)
	}
}

func (l *IntervalLogger) Info(args ...interface{}) {
	if entry := l.logEntry(); entry != nil {
		entry.Info(args...)
	}
}

func (l *IntervalLogger) Warning(args ...interface{}) {
	if entry := l.logEntry(); entry != nil {
		entry.Warning(args...)
	}
}
