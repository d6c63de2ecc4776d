package handler

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"library-management/backend/internal/catalog/domain"
	"library-management/backend/internal/platform/result"
)

// AddUser registers a user and reports "User added." or the rejection.
func (h *Handler) AddUser(ctx context.Context, name, email, phone string) result.Result[*domain.User] {
	var user *domain.User
	err := h.observe(ctx, "user.add", func(ctx context.Context) (err error) {
		user, err = h.catalog.AddUser(ctx, name, email, phone)
		return err
	})
	if err != nil {
		return result.Failure[*domain.User](err)
	}
	return result.Success(user, "User added.")
}

// RemoveUser removes a user; their loans are kept.
func (h *Handler) RemoveUser(ctx context.Context, id int) result.Result[bool] {
	var removed bool
	err := h.observe(ctx, "user.remove", func(ctx context.Context) (err error) {
		removed, err = h.catalog.RemoveUser(ctx, id)
		return err
	}, attribute.Int("library.user_id", id))
	if err != nil {
		return result.Failure[bool](err)
	}
	if !removed {
		return result.Success(false, fmt.Sprintf("No user with ID %d; nothing removed.", id))
	}
	return result.Success(true, "User removed.")
}

func (h *Handler) SearchUsers(ctx context.Context, keyword string) result.Result[[]domain.User] {
	var users []domain.User
	_ = h.observe(ctx, "user.search", func(context.Context) error {
		users = h.catalog.SearchUsers(keyword)
		return nil
	})
	return searchResult(users, "user", "users")
}

func (h *Handler) ListUsers(ctx context.Context) result.Result[[]domain.User] {
	var users []domain.User
	_ = h.observe(ctx, "user.list", func(context.Context) error {
		users = h.catalog.ListUsers()
		return nil
	})
	return result.Success(users, fmt.Sprintf("%d users registered.", len(users)))
}
