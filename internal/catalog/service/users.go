package service

import (
	"context"
	"strings"

	"library-management/backend/internal/catalog/domain"
	"library-management/backend/internal/telemetry"
)

// AddUser validates the fields, assigns the next user ID, and saves the catalog.
// Email uniqueness ignores case.
func (s *CatalogService) AddUser(ctx context.Context, name, email, phone string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" {
		return nil, ErrMissingFields
	}
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	var user domain.User
	err := s.store.Update(ctx, func(c *domain.Catalog) error {
		for i := range c.Users {
			if strings.EqualFold(c.Users[i].Email, email) {
				return ErrDuplicateEmail
			}
		}
		user = domain.User{ID: c.NextUserID, Name: name, Email: email, Phone: phone}
		c.NextUserID++
		c.Users = append(c.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, telemetry.EventUserAdded, 0, user.ID, nil)
	return &user, nil
}

// RemoveUser deletes the user with id; unknown ids are a no-op. The user's loans are not
// touched, so active loans keep pointing at the removed id.
func (s *CatalogService) RemoveUser(ctx context.Context, id int) (removed bool, err error) {
	err = s.store.Update(ctx, func(c *domain.Catalog) error {
		kept := c.Users[:0]
		for _, u := range c.Users {
			if u.ID == id {
				removed = true
				continue
			}
			kept = append(kept, u)
		}
		c.Users = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.emit(ctx, telemetry.EventUserRemoved, 0, id, nil)
	}
	return removed, nil
}

// SearchUsers matches keyword against name and email ignoring case, and against phone as is.
func (s *CatalogService) SearchUsers(keyword string) []domain.User {
	needle := strings.ToLower(keyword)
	out := []domain.User{}
	s.store.View(func(c *domain.Catalog) {
		for _, u := range c.Users {
			if strings.Contains(strings.ToLower(u.Name), needle) ||
				strings.Contains(strings.ToLower(u.Email), needle) ||
				strings.Contains(u.Phone, keyword) {
				out = append(out, u)
			}
		}
	})
	return out
}

// ListUsers returns every user in creation order.
func (s *CatalogService) ListUsers() []domain.User {
	var out []domain.User
	s.store.View(func(c *domain.Catalog) {
		out = append([]domain.User{}, c.Users...)
	})
	return out
}

// GetUser returns the user with id, or nil.
func (s *CatalogService) GetUser(id int) *domain.User {
	var out *domain.User
	s.store.View(func(c *domain.Catalog) {
		if u := c.User(id); u != nil {
			cp := *u
			out = &cp
		}
	})
	return out
}
