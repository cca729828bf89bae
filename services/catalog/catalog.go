package catalog

import (
	"strings"

	"vipqueens/models"
)

// Service exposes the read-only service and staff catalog.
type Service interface {
	AllServices() []models.Service
	AllStaff() []models.Staff
	Categories() []string
	GetServicesByCategory(category string) []models.Service
	GetStaffBySpecialty(category string) []models.Staff
	ServiceByName(name string) (models.Service, bool)
	StaffByID(id string) (models.Staff, bool)
	StaffByName(name string) (models.Staff, bool)
	FindService(text string) (models.Service, bool)
	FindStaff(text string) (models.Staff, bool)
}

// DefaultCatalogService serves the static seed data.
type DefaultCatalogService struct {
	services []models.Service
	staff    []models.Staff
}

// NewDefaultCatalogService returns a catalog backed by the seeded salon data.
func NewDefaultCatalogService() *DefaultCatalogService {
	return &DefaultCatalogService{
		services: seedServices(),
		staff:    seedStaff(),
	}
}

func (c *DefaultCatalogService) AllServices() []models.Service {
	out := make([]models.Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *DefaultCatalogService) AllStaff() []models.Staff {
	out := make([]models.Staff, len(c.staff))
	copy(out, c.staff)
	return out
}

// Categories returns the distinct service categories in catalog order.
func (c *DefaultCatalogService) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, svc := range c.services {
		if !seen[svc.Category] {
			seen[svc.Category] = true
			out = append(out, svc.Category)
		}
	}
	return out
}

// GetServicesByCategory filters by exact category match.
func (c *DefaultCatalogService) GetServicesByCategory(category string) []models.Service {
	var out []models.Service
	for _, svc := range c.services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out
}

// GetStaffBySpecialty returns available staff whose specialty set contains
// the category, in catalog insertion order.
func (c *DefaultCatalogService) GetStaffBySpecialty(category string) []models.Staff {
	var out []models.Staff
	for _, member := range c.staff {
		if !member.IsAvailable {
			continue
		}
		for _, specialty := range member.Specialties {
			if specialty == category {
				out = append(out, member)
				break
			}
		}
	}
	return out
}

// ServiceByName resolves a service by its exact name.
func (c *DefaultCatalogService) ServiceByName(name string) (models.Service, bool) {
	for _, svc := range c.services {
		if svc.Name == name {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (c *DefaultCatalogService) StaffByID(id string) (models.Staff, bool) {
	for _, member := range c.staff {
		if member.ID == id {
			return member, true
		}
	}
	return models.Staff{}, false
}

func (c *DefaultCatalogService) StaffByName(name string) (models.Staff, bool) {
	for _, member := range c.staff {
		if strings.EqualFold(member.Name, name) {
			return member, true
		}
	}
	return models.Staff{}, false
}

// FindService resolves free text to the first service whose name or category
// appears in the text (or vice versa), case-insensitively. Returns the single
// best candidate; ambiguity is resolved by catalog order.
func (c *DefaultCatalogService) FindService(text string) (models.Service, bool) {
	lower := strings.ToLower(text)
	for _, svc := range c.services {
		name := strings.ToLower(svc.Name)
		category := strings.ToLower(svc.Category)
		if strings.Contains(lower, name) || strings.Contains(lower, category) ||
			strings.Contains(name, lower) {
			return svc, true
		}
	}
	return models.Service{}, false
}

// FindStaff resolves free text to the first staff member whose name or role
// appears in the text.
func (c *DefaultCatalogService) FindStaff(text string) (models.Staff, bool) {
	lower := strings.ToLower(text)
	for _, member := range c.staff {
		if strings.Contains(lower, strings.ToLower(member.Name)) ||
			strings.Contains(lower, strings.ToLower(member.Role)) {
			return member, true
		}
	}
	return models.Staff{}, false
}
