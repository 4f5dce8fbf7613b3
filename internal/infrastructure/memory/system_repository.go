package memory

import "github.com/MUNTAZIR1234/Invoice/internal/domain/repository"

var _ repository.SystemRepository = (*SystemRepo)(nil)

// SystemRepo implements repository.SystemRepository.
type SystemRepo struct {
	s *Store
}

func (r *SystemRepo) Export() (*repository.Dataset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.dataset(), nil
}

// Replace takes the allocation lock too, so no invoice is numbered against
// the old data while it is swapped out.
func (r *SystemRepo) Replace(ds *repository.Dataset) error {
	r.s.allocMu.Lock()
	defer r.s.allocMu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev := r.s.state()
	r.s.load(ds)
	return r.s.commit(prev)
}

func (r *SystemRepo) Reset() error {
	return r.Replace(&repository.Dataset{})
}
