package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/hikmacare/hikma-admin/models"
)

// UsersService is the resource access layer for platform users.
type UsersService struct {
	c *Client
}

func (c *Client) Users() *UsersService { return &UsersService{c: c} }

type UserFilter struct {
	Search   string
	UserType string
	Page     int
	Limit    int
}

func (f *UserFilter) query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.UserType != "" {
		q.Set("user_type", f.UserType)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// UserPage is one page of a user listing with the total match count.
type UserPage struct {
	Data  []models.User `json:"data"`
	Total int64         `json:"total"`
}

func (s *UsersService) List(ctx context.Context, filter *UserFilter) (*UserPage, error) {
	op := Op("users.list")
	q := filter.query()
	key := op.Path + "?" + q.Encode()

	if cached, ok := s.c.cache.Get(key); ok {
		page := cached.(UserPage)
		return &page, nil
	}

	var page UserPage
	if err := s.c.do(ctx, op, nil, q, nil, &page); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, page)
	return &page, nil
}

func (s *UsersService) Get(ctx context.Context, id uint) (*models.User, error) {
	key := "/api/admin/users/" + strconv.Itoa(int(id))
	if cached, ok := s.c.cache.Get(key); ok {
		user := cached.(models.User)
		return &user, nil
	}

	var user models.User
	if err := s.c.do(ctx, Op("users.get"), pathID("id", id), nil, nil, &user); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, user)
	return &user, nil
}

type CreateUserInput struct {
	Phone    string `json:"phone" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	UserType string `json:"user_type,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (s *UsersService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.c.do(ctx, Op("users.create"), nil, nil, in, &user); err != nil {
		return nil, err
	}
	s.invalidate(user.ID)
	return &user, nil
}

type UpdateUserInput struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	UserType *string `json:"user_type,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (s *UsersService) Update(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.c.do(ctx, Op("users.update"), pathID("id", id), nil, in, &user); err != nil {
		return nil, err
	}
	s.invalidate(id)
	return &user, nil
}

func (s *UsersService) invalidate(id uint) {
	s.c.cache.Invalidate(
		"/api/admin/users?",
		"/api/admin/users/"+strconv.Itoa(int(id)),
	)
}
