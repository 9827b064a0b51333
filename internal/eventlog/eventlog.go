// Package eventlog maintains the process-wide append-only log of backend
// lifecycle events. Each significant transition (connect success, connect
// failure, disable, async error) becomes one timestamped line; the /logs
// surface reads the most recent lines back.
package eventlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type Log struct {
	mu   sync.Mutex
	file *os.File
	path string
}

func Open(path string) (*Log, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &Log{file: file, path: path}, nil
}

func (l *Log) Append(message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return os.ErrClosed
	}

	line := fmt.Sprintf("%s %s\n", time.Now().UTC().Format(time.RFC3339), message)
	_, err := l.file.WriteString(line)

	return err
}

// Tail returns up to the last n lines of the log in file order.
func (l *Log) Tail(n int) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	content, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}

	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return lines, nil
}

func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	err := l.file.Close()
	l.file = nil

	return err
}

// Hook mirrors lifecycle log entries into the event log. Only entries
// carrying the "event" field are lifecycle transitions; everything else
// stays out of the file.
type Hook struct {
	log *Log
}

func NewHook(l *Log) *Hook {
	return &Hook{log: l}
}

func (h *Hook) Levels() []log.Level {
	return []log.Level{log.InfoLevel, log.WarnLevel, log.ErrorLevel}
}

func (h *Hook) Fire(entry *log.Entry) error {
	event, ok := entry.Data["event"]
	if !ok {
		return nil
	}

	message := fmt.Sprintf("[%v] %s", event, entry.Message)
	if err, ok := entry.Data[log.ErrorKey]; ok {
		message = fmt.Sprintf("%s: %v", message, err)
	}

	return h.log.Append(message)
}
