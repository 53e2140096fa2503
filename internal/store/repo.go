package store

import "context"

// Repo abstracts persistence of saved resumes.
type Repo interface {
	Create(ctx context.Context, saved SavedResume) error
	GetByID(ctx context.Context, id string) (SavedResume, error)
	List(ctx context.Context, limit, offset int) ([]SavedResume, error)
}
