package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/hikmacare/hikma-admin/models"
)

// OrganizationsService is the resource access layer for clinics, hospitals
// and pharmacies. The wire paths say "clinics" for historical reasons.
type OrganizationsService struct {
	c *Client
}

func (c *Client) Organizations() *OrganizationsService { return &OrganizationsService{c: c} }

type OrganizationFilter struct {
	Search string
	Status models.OrganizationStatus
	Limit  int
}

func (f *OrganizationFilter) query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

func (s *OrganizationsService) List(ctx context.Context, filter *OrganizationFilter) ([]models.Organization, error) {
	op := Op("organizations.list")
	q := filter.query()
	key := op.Path + "?" + q.Encode()

	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.Organization), nil
	}

	var orgs []models.Organization
	if err := s.c.do(ctx, op, nil, q, nil, &orgs); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, orgs)
	return orgs, nil
}

func (s *OrganizationsService) Get(ctx context.Context, id uint) (*models.Organization, error) {
	key := "/api/admin/clinics/" + strconv.Itoa(int(id))
	if cached, ok := s.c.cache.Get(key); ok {
		org := cached.(models.Organization)
		return &org, nil
	}

	var org models.Organization
	if err := s.c.do(ctx, Op("organizations.get"), pathID("clinicId", id), nil, nil, &org); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, org)
	return &org, nil
}

type CreateOrganizationInput struct {
	UserID      *uint    `json:"user_id,omitempty"`
	Name        string   `json:"name" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=hospital clinic pharmacy"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Description string   `json:"description,omitempty"`
	Website     string   `json:"website,omitempty"`
}

type createOrganizationResult struct {
	Message string              `json:"message"`
	Clinic  models.Organization `json:"clinic"`
}

func (s *OrganizationsService) Create(ctx context.Context, in CreateOrganizationInput) (*models.Organization, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var result createOrganizationResult
	if err := s.c.do(ctx, Op("organizations.create"), nil, nil, in, &result); err != nil {
		return nil, err
	}
	s.invalidate(result.Clinic.ID)
	return &result.Clinic, nil
}

// CreateWithLogo is the multipart variant of Create.
func (s *OrganizationsService) CreateWithLogo(ctx context.Context, form *Multipart) (*models.Organization, error) {
	var result createOrganizationResult
	if err := s.c.do(ctx, Op("organizations.create"), nil, nil, form, &result); err != nil {
		return nil, err
	}
	s.invalidate(result.Clinic.ID)
	return &result.Clinic, nil
}

type UpdateOrganizationInput struct {
	Name        *string  `json:"name,omitempty"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=hospital clinic pharmacy"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty" validate:"omitempty,email"`
	Address     *string  `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Description *string  `json:"description,omitempty"`
	Website     *string  `json:"website,omitempty"`
}

// UpdateWithLogo is the multipart variant of Update, for when a new logo
// file accompanies the changed fields.
func (s *OrganizationsService) UpdateWithLogo(ctx context.Context, id uint, form *Multipart) error {
	if err := s.c.do(ctx, Op("organizations.update"), pathID("clinicId", id), nil, form, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *OrganizationsService) Update(ctx context.Context, id uint, in UpdateOrganizationInput) error {
	if err := ValidateInput(in); err != nil {
		return err
	}
	if err := s.c.do(ctx, Op("organizations.update"), pathID("clinicId", id), nil, in, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *OrganizationsService) Delete(ctx context.Context, id uint) error {
	if err := s.c.do(ctx, Op("organizations.delete"), pathID("clinicId", id), nil, nil, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *OrganizationsService) Approve(ctx context.Context, id uint) error {
	if err := s.c.do(ctx, Op("organizations.approve"), pathID("clinicId", id), nil, nil, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *OrganizationsService) Reject(ctx context.Context, id uint, reason string) error {
	return s.transition(ctx, "organizations.reject", id, reason)
}

func (s *OrganizationsService) Suspend(ctx context.Context, id uint, reason string) error {
	return s.transition(ctx, "organizations.suspend", id, reason)
}

func (s *OrganizationsService) transition(ctx context.Context, opName string, id uint, reason string) error {
	in := rejectInput{Reason: reason}
	if err := ValidateInput(in); err != nil {
		return err
	}
	if err := s.c.do(ctx, Op(opName), pathID("clinicId", id), nil, in, nil); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *OrganizationsService) invalidate(id uint) {
	s.c.cache.Invalidate(
		"/api/admin/clinics?",
		"/api/admin/clinics/"+strconv.Itoa(int(id)),
	)
}

func clinicSubKey(clinicID uint, resource string) string {
	return "/api/admin/clinics/" + strconv.Itoa(int(clinicID)) + "/" + resource
}

// Staff lists the staff members of one clinic.
func (s *OrganizationsService) Staff(ctx context.Context, clinicID uint) ([]models.ClinicStaff, error) {
	key := clinicSubKey(clinicID, "staff")
	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.ClinicStaff), nil
	}

	var staff []models.ClinicStaff
	if err := s.c.do(ctx, Op("clinicStaff.list"), pathID("clinicId", clinicID), nil, nil, &staff); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, staff)
	return staff, nil
}

type ClinicStaffInput struct {
	UserID   *uint  `json:"user_id,omitempty"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

func (s *OrganizationsService) AddStaff(ctx context.Context, clinicID uint, in ClinicStaffInput) (*models.ClinicStaff, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var member models.ClinicStaff
	if err := s.c.do(ctx, Op("clinicStaff.create"), pathID("clinicId", clinicID), nil, in, &member); err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(clinicSubKey(clinicID, "staff"))
	return &member, nil
}

type UpdateClinicStaffInput struct {
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (s *OrganizationsService) UpdateStaff(ctx context.Context, clinicID, staffID uint, in UpdateClinicStaffInput) error {
	if err := ValidateInput(in); err != nil {
		return err
	}
	params := map[string]string{
		"clinicId": strconv.Itoa(int(clinicID)),
		"staffId":  strconv.Itoa(int(staffID)),
	}
	if err := s.c.do(ctx, Op("clinicStaff.update"), params, nil, in, nil); err != nil {
		return err
	}
	s.c.cache.Invalidate(clinicSubKey(clinicID, "staff"))
	return nil
}

func (s *OrganizationsService) RemoveStaff(ctx context.Context, clinicID, staffID uint) error {
	params := map[string]string{
		"clinicId": strconv.Itoa(int(clinicID)),
		"staffId":  strconv.Itoa(int(staffID)),
	}
	if err := s.c.do(ctx, Op("clinicStaff.delete"), params, nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.Invalidate(clinicSubKey(clinicID, "staff"))
	return nil
}

// WorkingHours returns one clinic's weekly schedule, Sunday first.
func (s *OrganizationsService) WorkingHours(ctx context.Context, clinicID uint) ([]models.WorkingHour, error) {
	key := clinicSubKey(clinicID, "working-hours")
	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.WorkingHour), nil
	}

	var hours []models.WorkingHour
	if err := s.c.do(ctx, Op("clinicWorkingHours.list"), pathID("clinicId", clinicID), nil, nil, &hours); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, hours)
	return hours, nil
}

type WorkingHourInput struct {
	DayOfWeek  int     `json:"day_of_week" validate:"min=0,max=6"`
	StartTime  string  `json:"start_time,omitempty"`
	EndTime    string  `json:"end_time,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	IsWorkDay  *bool   `json:"is_work_day,omitempty"`
}

// SetWorkingHours creates or replaces the schedule for one weekday.
func (s *OrganizationsService) SetWorkingHours(ctx context.Context, clinicID uint, in WorkingHourInput) (*models.WorkingHour, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var hour models.WorkingHour
	if err := s.c.do(ctx, Op("clinicWorkingHours.set"), pathID("clinicId", clinicID), nil, in, &hour); err != nil {
		return nil, err
	}
	s.c.cache.Invalidate(clinicSubKey(clinicID, "working-hours"))
	return &hour, nil
}

// ClearWorkingHours removes the schedule entry for one weekday.
func (s *OrganizationsService) ClearWorkingHours(ctx context.Context, clinicID uint, day int) error {
	params := map[string]string{
		"clinicId": strconv.Itoa(int(clinicID)),
		"day":      strconv.Itoa(day),
	}
	if err := s.c.do(ctx, Op("clinicWorkingHours.clear"), params, nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.Invalidate(clinicSubKey(clinicID, "working-hours"))
	return nil
}

// Services lists the services offered by one clinic.
func (s *OrganizationsService) Services(ctx context.Context, clinicID uint) ([]models.Service, error) {
	key := clinicSubKey(clinicID, "services")
	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.Service), nil
	}

	var services []models.Service
	if err := s.c.do(ctx, Op("clinicServices.list"), pathID("clinicId", clinicID), nil, nil, &services); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, services)
	return services, nil
}
