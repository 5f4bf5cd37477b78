package logger

import (
	"sync"
	"time"
)

// Entry is one recorded warning or error, kept only in memory.
type Entry struct {
	Level   string                 `json:"level"`
	Message string                 `json:"message"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
	At      time.Time              `json:"at"`
}

// Recorder keeps the most recent warning/error entries in a bounded ring.
// Entries are transient: they exist for the life of the process and the
// oldest are dropped once capacity is reached.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	max     int
}

func NewRecorder(max int) *Recorder {
	if max <= 0 {
		max = 100
	}
	return &Recorder{max: max}
}

func (r *Recorder) Add(level, msg string, fields map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry{
		Level:   level,
		Message: msg,
		Fields:  fields,
		At:      time.Now(),
	})
	if len(r.entries) > r.max {
		r.entries = r.entries[len(r.entries)-r.max:]
	}
}

// Recent returns entries newest-first.
func (r *Recorder) Recent() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[len(r.entries)-1-i] = e
	}
	return out
}
