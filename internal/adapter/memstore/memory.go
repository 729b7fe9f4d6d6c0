package memstore

import (
	"fmt"
	"sort"
	"sync"

	"wordlens/internal/domain"
)

// MemoryStore keeps reports in process memory. It backs the browser host
// and tests, where no database file is available.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]domain.StoredReport
	hashes  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reports: make(map[string]domain.StoredReport),
		hashes:  make(map[string]string),
	}
}

func (s *MemoryStore) PutReport(r domain.StoredReport) error {
	if r.ID == "" {
		return fmt.Errorf("report id is required")
	}
	r.Report.Result.Tokens = nil

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = r
	if r.Hash != "" {
		s.hashes[r.Hash] = r.ID
	}
	return nil
}

func (s *MemoryStore) GetReport(id string) (domain.StoredReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	if !ok {
		return domain.StoredReport{}, fmt.Errorf("%w: %s", domain.ErrReportNotFound, id)
	}
	return r, nil
}

func (s *MemoryStore) FindByHash(hash string) (domain.StoredReport, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.hashes[hash]
	if !ok {
		return domain.StoredReport{}, false, nil
	}
	r, ok := s.reports[id]
	return r, ok, nil
}

func (s *MemoryStore) ListReports() ([]domain.StoredReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reports := make([]domain.StoredReport, 0, len(s.reports))
	for _, r := range s.reports {
		r.Text = ""
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].ID < reports[j].ID
		}
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})
	return reports, nil
}

func (s *MemoryStore) DeleteReport(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrReportNotFound, id)
	}
	if s.hashes[r.Hash] == id {
		delete(s.hashes, r.Hash)
	}
	delete(s.reports, id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
