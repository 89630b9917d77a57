package memcache

import "sync"

type ImportStatus string

const (
	ImportRunning   ImportStatus = "running"
	ImportCompleted ImportStatus = "completed"
	ImportError     ImportStatus = "error"
)

// ImportProgress is the snapshot polled by the dashboard while a
// spreadsheet sync runs.
type ImportProgress struct {
	Current int          `json:"current"`
	Total   int          `json:"total"`
	Status  ImportStatus `json:"status"`
	Message string       `json:"message"`
}

// ProgressStore is a single named slot shared by the importer (writer) and
// the polling endpoint (reader). Last write wins; readers tolerate a
// missing snapshot.
type ProgressStore interface {
	Set(p ImportProgress)
	Get() (ImportProgress, bool)
	Clear()
}

type progressSlot struct {
	mu  sync.RWMutex
	p   ImportProgress
	set bool
}

func NewProgressStore() ProgressStore {
	return &progressSlot{}
}

func (s *progressSlot) Set(p ImportProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = p
	s.set = true
}

func (s *progressSlot) Get() (ImportProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p, s.set
}

func (s *progressSlot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = ImportProgress{}
	s.set = false
}
