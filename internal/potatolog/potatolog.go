package potatolog

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
// The global logger writes here while the terminal belongs to the editor.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	mtx: sync.Mutex{},
	log: []LogEntry{},
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It expects each write to be one JSON log entry, as zerolog writes them.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return append([]LogEntry{}, w.log...)
}

// Replay writes every entry of at least the given level to out, one JSON
// object per write, so that out may be e.g. a zerolog.ConsoleWriter.
// Entries without a (known) level are always replayed.
func (w *MemoryLogReaderWriter) Replay(out io.Writer, minLevel zerolog.Level) error {
	for _, entry := range w.Get() {
		if levelOf(entry) < minLevel {
			continue
		}
		line, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("could not marshal log entry (%w)", err)
		}
		if _, err := out.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func levelOf(entry LogEntry) zerolog.Level {
	s, ok := entry[zerolog.LevelFieldName].(string)
	if !ok {
		return zerolog.NoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel
	}
	return level
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}
