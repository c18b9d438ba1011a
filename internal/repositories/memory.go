package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/studyhub-dev/studyhub/internal/models"
)

// In-memory implementations of the repository interfaces. They back the
// handler tests and honor the same uniqueness contracts as the gorm ones:
// the mutex makes concurrent creates with the same email (or file name)
// admit exactly one winner.

type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]models.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Joined.IsZero() {
		user.Joined = time.Now()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Joined.After(users[j].Joined)
	})
	return users, nil
}

func (r *MemoryUserRepository) Update(_ context.Context, id uuid.UUID, fields map[string]any) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if email, ok := fields["email"].(string); ok {
		for otherID, u := range r.users {
			if otherID != id && u.Email == email {
				return nil, ErrDuplicateEmail
			}
		}
		user.Email = email
	}
	if name, ok := fields["name"].(string); ok {
		user.Name = name
	}
	if password, ok := fields["password"].(string); ok {
		user.Password = password
	}
	r.users[id] = user
	return &user, nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

type MemoryMaterialRepository struct {
	mu        sync.Mutex
	materials map[uuid.UUID]models.Material
}

func NewMemoryMaterialRepository() *MemoryMaterialRepository {
	return &MemoryMaterialRepository{materials: make(map[uuid.UUID]models.Material)}
}

func (r *MemoryMaterialRepository) Create(_ context.Context, material *models.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.materials {
		if m.FileName == material.FileName {
			return ErrDuplicateFileName
		}
	}
	if material.ID == uuid.Nil {
		material.ID = uuid.New()
	}
	if material.UploadedAt.IsZero() {
		material.UploadedAt = time.Now()
	}
	r.materials[material.ID] = *material
	return nil
}

func (r *MemoryMaterialRepository) List(_ context.Context) ([]models.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	materials := make([]models.Material, 0, len(r.materials))
	for _, m := range r.materials {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool {
		return materials[i].UploadedAt.After(materials[j].UploadedAt)
	})
	return materials, nil
}
