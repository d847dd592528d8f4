package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrOrganizationNameRequired is returned when an organization is created without a name.
var ErrOrganizationNameRequired = errors.New("organization name is required")

type OrganizationsRepository struct {
	db *gorm.DB
}

func NewOrganizationsRepository(db *gorm.DB) *OrganizationsRepository {
	return &OrganizationsRepository{
		db: db,
	}
}

// GetAllOrganizations returns every organization in creation order.
func (r *OrganizationsRepository) GetAllOrganizations() ([]Organization, error) {
	organizations := []Organization{}
	if err := r.db.
		Order("id").
		Find(&organizations).Error; err != nil {
		return nil, err
	}
	return organizations, nil
}

func (r *OrganizationsRepository) CreateOrganization(name string) (*Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrOrganizationNameRequired
	}

	organization := Organization{Name: name}
	if err := r.db.Create(&organization).Error; err != nil {
		return nil, err
	}
	return &organization, nil
}
