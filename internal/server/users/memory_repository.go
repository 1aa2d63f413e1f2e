package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophadmin/internal/common"
	"github.com/google/uuid"
)

// MemoryRepository keeps accounts in insertion order behind a mutex.
// Returned values are copies.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*User)}
}

// Create assigns a new id. An email may exist once per role.
func (r *MemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == user.Email && u.Role == user.Role {
			return nil, common.ErrorAlreadyExists
		}
	}

	u := *user
	u.ID = uuid.NewString()
	r.byID[u.ID] = &u
	r.order = append(r.order, u.ID)

	out := u
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email, role string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.byID[id]; u.Email == email && u.Role == role {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*User, 0, len(r.order))
	for _, id := range r.order {
		u := *r.byID[id]
		list = append(list, &u)
	}
	return list, nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Status = status
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
