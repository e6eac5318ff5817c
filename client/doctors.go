package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/hikmacare/hikma-admin/models"
)

// DoctorsService is the resource access layer for doctor profiles.
type DoctorsService struct {
	c *Client
}

func (c *Client) Doctors() *DoctorsService { return &DoctorsService{c: c} }

// DoctorFilter narrows a doctor listing. Zero-valued fields are omitted
// from the query string.
type DoctorFilter struct {
	Search     string
	IsApproved *bool
	IsVip      *bool
	Limit      int
}

func (f *DoctorFilter) query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.IsApproved != nil {
		q.Set("is_approved", strconv.FormatBool(*f.IsApproved))
	}
	if f.IsVip != nil {
		q.Set("is_vip", strconv.FormatBool(*f.IsVip))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

func (s *DoctorsService) List(ctx context.Context, filter *DoctorFilter) ([]models.Doctor, error) {
	op := Op("doctors.list")
	q := filter.query()
	key := op.Path + "?" + q.Encode()

	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.Doctor), nil
	}

	var doctors []models.Doctor
	if err := s.c.do(ctx, op, nil, q, nil, &doctors); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, doctors)
	return doctors, nil
}

func (s *DoctorsService) Get(ctx context.Context, id uint) (*models.Doctor, error) {
	op := Op("doctors.get")
	key := "/api/admin/doctors/" + strconv.Itoa(int(id))

	if cached, ok := s.c.cache.Get(key); ok {
		d := cached.(models.Doctor)
		return &d, nil
	}

	var doctor models.Doctor
	if err := s.c.do(ctx, op, pathID("doctorId", id), nil, nil, &doctor); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, doctor)
	return &doctor, nil
}

// CreateDoctorInput carries the doctor application fields. Body may be
// plain JSON or, when Avatar is set, multipart form data.
type CreateDoctorInput struct {
	Phone           string   `json:"phone" validate:"required"`
	FullName        string   `json:"full_name" validate:"required"`
	Email           string   `json:"email,omitempty" validate:"omitempty,email"`
	SpecialtyID     *uint    `json:"specialty_id,omitempty"`
	LicenseNumber   string   `json:"license_number,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	BioAr           string   `json:"bio_ar,omitempty"`
	Address         string   `json:"address,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Whatsapp        string   `json:"whatsapp,omitempty"`
}

type createDoctorResult struct {
	Message string        `json:"message"`
	Doctor  models.Doctor `json:"doctor"`
}

func (s *DoctorsService) Create(ctx context.Context, in CreateDoctorInput) (*models.Doctor, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var result createDoctorResult
	if err := s.c.do(ctx, Op("doctors.create"), nil, nil, in, &result); err != nil {
		return nil, err
	}
	s.invalidate(result.Doctor.ID)
	return &result.Doctor, nil
}

// CreateWithAvatar is the multipart variant of Create.
func (s *DoctorsService) CreateWithAvatar(ctx context.Context, form *Multipart) (*models.Doctor, error) {
	var result createDoctorResult
	if err := s.c.do(ctx, Op("doctors.create"), nil, nil, form, &result); err != nil {
		return nil, err
	}
	s.invalidate(result.Doctor.ID)
	return &result.Doctor, nil
}

// UpdateDoctorInput is a partial update; nil fields are left unchanged.
type UpdateDoctorInput struct {
	Phone           *string  `json:"phone,omitempty"`
	FullName        *string  `json:"full_name,omitempty"`
	Email           *string  `json:"email,omitempty" validate:"omitempty,email"`
	SpecialtyID     *uint    `json:"specialty_id,omitempty"`
	LicenseNumber   *string  `json:"license_number,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	BioAr           *string  `json:"bio_ar,omitempty"`
	Address         *string  `json:"address,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// UpdateWithAvatar is the multipart variant of Update, for when a new
// avatar file accompanies the changed fields.
func (s *DoctorsService) UpdateWithAvatar(ctx context.Context, id uint, form *Multipart) error {
	if err := s.c.do(ctx, Op("doctors.update"), pathID("doctorId", id), nil, form, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *DoctorsService) Update(ctx context.Context, id uint, in UpdateDoctorInput) error {
	if err := ValidateInput(in); err != nil {
		return err
	}
	if err := s.c.do(ctx, Op("doctors.update"), pathID("doctorId", id), nil, in, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *DoctorsService) Delete(ctx context.Context, id uint) error {
	if err := s.c.do(ctx, Op("doctors.delete"), pathID("doctorId", id), nil, nil, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *DoctorsService) Approve(ctx context.Context, id uint) error {
	if err := s.c.do(ctx, Op("doctors.approve"), pathID("doctorId", id), nil, nil, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

type rejectInput struct {
	Reason string `json:"reason" validate:"required"`
}

// Reject requires a non-empty reason; an empty one fails validation before
// any network call.
func (s *DoctorsService) Reject(ctx context.Context, id uint, reason string) error {
	in := rejectInput{Reason: reason}
	if err := ValidateInput(in); err != nil {
		return err
	}
	if err := s.c.do(ctx, Op("doctors.reject"), pathID("doctorId", id), nil, in, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

type setVipInput struct {
	IsVip     bool       `json:"is_vip"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SetVip grants or revokes VIP placement. An expiry in the past is rejected
// client-side, matching the server's rule.
func (s *DoctorsService) SetVip(ctx context.Context, id uint, isVip bool, expiresAt *time.Time) error {
	if isVip && expiresAt != nil && !expiresAt.After(time.Now()) {
		return &ValidationError{Fields: []string{"expires_at"}, msg: "VIP expiry must be in the future"}
	}
	in := setVipInput{IsVip: isVip, ExpiresAt: expiresAt}
	if err := s.c.do(ctx, Op("doctors.setVip"), pathID("doctorId", id), nil, in, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

// DoctorAnalytics mirrors the server's aggregate counters for one doctor.
type DoctorAnalytics struct {
	Appointments map[string]int64 `json:"appointments"`
	ProfileViews struct {
		Total     int64 `json:"total"`
		Unique    int64 `json:"unique"`
		Today     int64 `json:"today"`
		ThisWeek  int64 `json:"this_week"`
		ThisMonth int64 `json:"this_month"`
	} `json:"profile_views"`
	Reviews struct {
		Total   int64   `json:"total"`
		Average float64 `json:"average"`
	} `json:"reviews"`
}

func (s *DoctorsService) Analytics(ctx context.Context, id uint) (*DoctorAnalytics, error) {
	var analytics DoctorAnalytics
	if err := s.c.do(ctx, Op("doctors.analytics"), pathID("doctorId", id), nil, nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (s *DoctorsService) ProfileViews(ctx context.Context, id uint) ([]models.ProfileView, error) {
	var views []models.ProfileView
	if err := s.c.do(ctx, Op("doctors.profileViews"), pathID("doctorId", id), nil, nil, &views); err != nil {
		return nil, err
	}
	return views, nil
}

// invalidate drops every doctor listing variant plus the detail entry for
// one doctor. Mutations always force a re-fetch, even when the response
// echoed the updated entity.
func (s *DoctorsService) invalidate(id uint) {
	s.c.cache.Invalidate(
		"/api/admin/doctors?",
		"/api/admin/doctors/"+strconv.Itoa(int(id)),
	)
}

func pathID(name string, id uint) map[string]string {
	return map[string]string{name: strconv.Itoa(int(id))}
}
