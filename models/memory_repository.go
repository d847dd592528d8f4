package models

import (
	"strings"
	"sync"
)

// MemoryOrganizationsRepository keeps organizations in process memory.
// IDs are assigned sequentially starting at 1.
type MemoryOrganizationsRepository struct {
	mu            sync.Mutex
	organizations []Organization
	nextID        uint
}

func NewMemoryOrganizationsRepository(seed ...string) *MemoryOrganizationsRepository {
	r := &MemoryOrganizationsRepository{nextID: 1}
	for _, name := range seed {
		// seed names are trusted; empty ones are skipped
		_, _ = r.CreateOrganization(name)
	}
	return r
}

func (r *MemoryOrganizationsRepository) GetAllOrganizations() ([]Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	organizations := make([]Organization, len(r.organizations))
	copy(organizations, r.organizations)
	return organizations, nil
}

func (r *MemoryOrganizationsRepository) CreateOrganization(name string) (*Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrOrganizationNameRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	organization := Organization{ID: r.nextID, Name: name}
	r.nextID++
	r.organizations = append(r.organizations, organization)
	return &organization, nil
}

// Count reports how many organizations are stored.
func (r *MemoryOrganizationsRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.organizations)
}
