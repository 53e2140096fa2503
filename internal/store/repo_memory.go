package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores saved resumes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]SavedResume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]SavedResume)}
}

// Create stores the saved resume.
func (r *MemoryRepo) Create(ctx context.Context, saved SavedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[saved.ID] = saved
	return nil
}

// GetByID returns a saved resume by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (SavedResume, error) {
	if err := ctx.Err(); err != nil {
		return SavedResume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	saved, ok := r.byID[id]
	if !ok {
		return SavedResume{}, ErrNotFound
	}
	return saved, nil
}

// List returns saved resumes, newest first, with limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]SavedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	all := make([]SavedResume, 0, len(r.byID))
	for _, saved := range r.byID {
		all = append(all, saved)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].SavedAt.After(all[j].SavedAt)
	})

	if offset >= len(all) {
		return []SavedResume{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
