// Package connlog writes the per-connection packet journal: one JSON
// object per line at ./logs/{connection_id}.txt, independent of the
// structured zap logging the rest of the proxy uses, since this file is
// a player-session artifact rather than an operational log.
package connlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger appends one JSON line per logged packet to a single connection's
// log file.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// Open creates (or truncates) ./logs/{connectionID}.txt.
func Open(dir, connectionID string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, connectionID+".txt"))
	if err != nil {
		return nil, fmt.Errorf("create connection log: %w", err)
	}
	return &Logger{file: f, enc: json.NewEncoder(f)}, nil
}

type entry struct {
	Timestamp int64       `json:"timestamp"`
	Type      string      `json:"type"`
	Value     interface{} `json:"value"`
}

// LogPacket appends one {"timestamp", "type": "Packet", "value"} line.
func (l *Logger) LogPacket(value interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(entry{Timestamp: time.Now().UnixMilli(), Type: "Packet", Value: value})
}

func (l *Logger) Close() error {
	return l.file.Close()
}
