package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/hikmacare/hikma-admin/models"
)

// Content resources: specialties, services, gallery images, homepage
// sliders and daily tips. Grouped the way the server's content routes are.

// SpecialtiesService manages the medical specialty catalog.
type SpecialtiesService struct {
	c *Client
}

func (c *Client) Specialties() *SpecialtiesService { return &SpecialtiesService{c: c} }

func (s *SpecialtiesService) List(ctx context.Context) ([]models.Specialty, error) {
	op := Op("specialties.list")
	key := op.Path + "?"

	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.Specialty), nil
	}

	var specialties []models.Specialty
	if err := s.c.do(ctx, op, nil, nil, nil, &specialties); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, specialties)
	return specialties, nil
}

func (s *SpecialtiesService) Get(ctx context.Context, id uint) (*models.Specialty, error) {
	var specialty models.Specialty
	if err := s.c.do(ctx, Op("specialties.get"), pathID("id", id), nil, nil, &specialty); err != nil {
		return nil, err
	}
	return &specialty, nil
}

type CreateSpecialtyInput struct {
	Name          string `json:"name" validate:"required"`
	NameAr        string `json:"name_ar,omitempty"`
	Description   string `json:"description,omitempty"`
	DescriptionAr string `json:"description_ar,omitempty"`
}

func (s *SpecialtiesService) Create(ctx context.Context, in CreateSpecialtyInput) (*models.Specialty, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var specialty models.Specialty
	if err := s.c.do(ctx, Op("specialties.create"), nil, nil, in, &specialty); err != nil {
		return nil, err
	}
	s.c.cache.Invalidate("/api/specialties")
	return &specialty, nil
}

type UpdateSpecialtyInput struct {
	Name          *string `json:"name,omitempty"`
	NameAr        *string `json:"name_ar,omitempty"`
	Description   *string `json:"description,omitempty"`
	DescriptionAr *string `json:"description_ar,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

func (s *SpecialtiesService) Update(ctx context.Context, id uint, in UpdateSpecialtyInput) error {
	if err := s.c.do(ctx, Op("specialties.update"), pathID("id", id), nil, in, nil); err != nil {
		return err
	}
	s.c.cache.Invalidate("/api/specialties")
	return nil
}

func (s *SpecialtiesService) Delete(ctx context.Context, id uint) error {
	if err := s.c.do(ctx, Op("specialties.delete"), pathID("id", id), nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.Invalidate("/api/specialties")
	return nil
}

// ServicesService manages the service catalog and its gallery images.
type ServicesService struct {
	c *Client
}

func (c *Client) Services() *ServicesService { return &ServicesService{c: c} }

type ServiceFilter struct {
	DoctorID       uint
	OrganizationID uint
}

func (f *ServiceFilter) query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.DoctorID > 0 {
		q.Set("doctor_id", strconv.Itoa(int(f.DoctorID)))
	}
	if f.OrganizationID > 0 {
		q.Set("organization_id", strconv.Itoa(int(f.OrganizationID)))
	}
	return q
}

func (s *ServicesService) List(ctx context.Context, filter *ServiceFilter) ([]models.Service, error) {
	op := Op("services.list")
	q := filter.query()
	key := op.Path + "?" + q.Encode()

	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.Service), nil
	}

	var services []models.Service
	if err := s.c.do(ctx, op, nil, q, nil, &services); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, services)
	return services, nil
}

func (s *ServicesService) Get(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := s.c.do(ctx, Op("services.get"), pathID("serviceId", id), nil, nil, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

type CreateServiceInput struct {
	DoctorID       *uint   `json:"doctor_id,omitempty"`
	OrganizationID *uint   `json:"organization_id,omitempty"`
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Duration       int     `json:"duration,omitempty" validate:"omitempty,min=0"`
}

func (s *ServicesService) Create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var service models.Service
	if err := s.c.do(ctx, Op("services.create"), nil, nil, in, &service); err != nil {
		return nil, err
	}
	s.c.cache.Invalidate("/api/services")
	return &service, nil
}

type UpdateServiceInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

func (s *ServicesService) Update(ctx context.Context, id uint, in UpdateServiceInput) error {
	if err := ValidateInput(in); err != nil {
		return err
	}
	if err := s.c.do(ctx, Op("services.update"), pathID("serviceId", id), nil, in, nil); err != nil {
		return err
	}
	s.c.cache.Invalidate("/api/services")
	return nil
}

func (s *ServicesService) Delete(ctx context.Context, id uint) error {
	if err := s.c.do(ctx, Op("services.delete"), pathID("serviceId", id), nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.Invalidate("/api/services")
	return nil
}

// Images lists gallery images, optionally for one service.
func (s *ServicesService) Images(ctx context.Context, serviceID uint) ([]models.ServiceImage, error) {
	q := url.Values{}
	if serviceID > 0 {
		q.Set("service_id", strconv.Itoa(int(serviceID)))
	}
	var images []models.ServiceImage
	if err := s.c.do(ctx, Op("serviceImages.list"), nil, q, nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

type ServiceImageInput struct {
	ServiceID    uint   `json:"service_id" validate:"required"`
	ImageURL     string `json:"image_url" validate:"required,url"`
	AltText      string `json:"alt_text,omitempty"`
	DisplayOrder int    `json:"display_order,omitempty"`
}

func (s *ServicesService) AddImage(ctx context.Context, in ServiceImageInput) (*models.ServiceImage, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var image models.ServiceImage
	if err := s.c.do(ctx, Op("serviceImages.create"), nil, nil, in, &image); err != nil {
		return nil, err
	}
	s.c.cache.Invalidate("/api/services", "/api/service-images")
	return &image, nil
}

// AddImagesBulk inserts a batch of gallery images in one request.
func (s *ServicesService) AddImagesBulk(ctx context.Context, in []ServiceImageInput) ([]models.ServiceImage, error) {
	if len(in) == 0 {
		return nil, &ValidationError{Fields: []string{"images"}, msg: "at least one image is required"}
	}
	for _, img := range in {
		if err := ValidateInput(img); err != nil {
			return nil, err
		}
	}
	body := map[string]interface{}{"images": in}
	var images []models.ServiceImage
	if err := s.c.do(ctx, Op("serviceImages.createBulk"), nil, nil, body, &images); err != nil {
		return nil, err
	}
	s.c.cache.Invalidate("/api/services", "/api/service-images")
	return images, nil
}

func (s *ServicesService) DeleteImage(ctx context.Context, id uint) error {
	if err := s.c.do(ctx, Op("serviceImages.delete"), pathID("id", id), nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.Invalidate("/api/services", "/api/service-images")
	return nil
}

// SlidersService manages the homepage hero sliders.
type SlidersService struct {
	c *Client
}

func (c *Client) Sliders() *SlidersService { return &SlidersService{c: c} }

// List returns active sliders in display order (the public feed).
func (s *SlidersService) List(ctx context.Context) ([]models.Slider, error) {
	return s.list(ctx, "sliders.list")
}

// ListAll returns every slider, active or not (the admin screen).
func (s *SlidersService) ListAll(ctx context.Context) ([]models.Slider, error) {
	return s.list(ctx, "sliders.listAll")
}

func (s *SlidersService) list(ctx context.Context, opName string) ([]models.Slider, error) {
	op := Op(opName)
	key := op.Path + "?"

	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.Slider), nil
	}

	var sliders []models.Slider
	if err := s.c.do(ctx, op, nil, nil, nil, &sliders); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, sliders)
	return sliders, nil
}

func (s *SlidersService) Get(ctx context.Context, id uint) (*models.Slider, error) {
	var slider models.Slider
	if err := s.c.do(ctx, Op("sliders.get"), pathID("sliderId", id), nil, nil, &slider); err != nil {
		return nil, err
	}
	return &slider, nil
}

type CreateSliderInput struct {
	Title         string `json:"title" validate:"required"`
	TitleAr       string `json:"title_ar,omitempty"`
	Description   string `json:"description,omitempty"`
	DescriptionAr string `json:"description_ar,omitempty"`
	ImageURL      string `json:"image_url" validate:"required,url"`
	OverlayColor  string `json:"overlay_color,omitempty"`
	Link          string `json:"link,omitempty"`
	DisplayOrder  int    `json:"display_order,omitempty"`
}

func (s *SlidersService) Create(ctx context.Context, in CreateSliderInput) (*models.Slider, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var slider models.Slider
	if err := s.c.do(ctx, Op("sliders.create"), nil, nil, in, &slider); err != nil {
		return nil, err
	}
	s.invalidate()
	return &slider, nil
}

// CreateWithImage is the multipart variant of Create: the image file is
// uploaded server-side instead of passing an image_url.
func (s *SlidersService) CreateWithImage(ctx context.Context, form *Multipart) (*models.Slider, error) {
	var slider models.Slider
	if err := s.c.do(ctx, Op("sliders.create"), nil, nil, form, &slider); err != nil {
		return nil, err
	}
	s.invalidate()
	return &slider, nil
}

// UpdateWithImage is the multipart variant of Update, for when a new image
// file accompanies the changed fields.
func (s *SlidersService) UpdateWithImage(ctx context.Context, id uint, form *Multipart) error {
	if err := s.c.do(ctx, Op("sliders.update"), pathID("sliderId", id), nil, form, nil); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

type UpdateSliderInput struct {
	Title         *string `json:"title,omitempty"`
	TitleAr       *string `json:"title_ar,omitempty"`
	Description   *string `json:"description,omitempty"`
	DescriptionAr *string `json:"description_ar,omitempty"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url"`
	OverlayColor  *string `json:"overlay_color,omitempty"`
	Link          *string `json:"link,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	DisplayOrder  *int    `json:"display_order,omitempty"`
}

func (s *SlidersService) Update(ctx context.Context, id uint, in UpdateSliderInput) error {
	if err := ValidateInput(in); err != nil {
		return err
	}
	if err := s.c.do(ctx, Op("sliders.update"), pathID("sliderId", id), nil, in, nil); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *SlidersService) Delete(ctx context.Context, id uint) error {
	if err := s.c.do(ctx, Op("sliders.delete"), pathID("sliderId", id), nil, nil, nil); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *SlidersService) invalidate() {
	// Active and admin listings both change on any slider mutation.
	s.c.cache.Invalidate("/api/sliders")
}

// DailyTipsService manages the homepage health tips.
type DailyTipsService struct {
	c *Client
}

func (c *Client) DailyTips() *DailyTipsService { return &DailyTipsService{c: c} }

// Active returns the currently published tip, or nil when none is active.
func (s *DailyTipsService) Active(ctx context.Context) (*models.DailyTip, error) {
	op := Op("dailyTips.active")
	key := op.Path + "?"

	if cached, ok := s.c.cache.Get(key); ok {
		tip := cached.(*models.DailyTip)
		return tip, nil
	}

	var tip *models.DailyTip
	if err := s.c.do(ctx, op, nil, nil, nil, &tip); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, tip)
	return tip, nil
}

func (s *DailyTipsService) ListAll(ctx context.Context) ([]models.DailyTip, error) {
	op := Op("dailyTips.listAll")
	key := op.Path + "?"

	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.DailyTip), nil
	}

	var tips []models.DailyTip
	if err := s.c.do(ctx, op, nil, nil, nil, &tips); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, tips)
	return tips, nil
}

func (s *DailyTipsService) Get(ctx context.Context, id uint) (*models.DailyTip, error) {
	var tip models.DailyTip
	if err := s.c.do(ctx, Op("dailyTips.get"), pathID("tipId", id), nil, nil, &tip); err != nil {
		return nil, err
	}
	return &tip, nil
}

type CreateDailyTipInput struct {
	Title       string     `json:"title" validate:"required"`
	TitleAr     string     `json:"title_ar,omitempty"`
	Description string     `json:"description,omitempty"`
	Content     string     `json:"content,omitempty"`
	Image       string     `json:"image,omitempty" validate:"omitempty,url"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
}

func (s *DailyTipsService) Create(ctx context.Context, in CreateDailyTipInput) (*models.DailyTip, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	var tip models.DailyTip
	if err := s.c.do(ctx, Op("dailyTips.create"), nil, nil, in, &tip); err != nil {
		return nil, err
	}
	s.invalidate()
	return &tip, nil
}

type UpdateDailyTipInput struct {
	Title       *string    `json:"title,omitempty"`
	TitleAr     *string    `json:"title_ar,omitempty"`
	Description *string    `json:"description,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Image       *string    `json:"image,omitempty" validate:"omitempty,url"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (s *DailyTipsService) Update(ctx context.Context, id uint, in UpdateDailyTipInput) error {
	if err := ValidateInput(in); err != nil {
		return err
	}
	if err := s.c.do(ctx, Op("dailyTips.update"), pathID("tipId", id), nil, in, nil); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *DailyTipsService) Delete(ctx context.Context, id uint) error {
	if err := s.c.do(ctx, Op("dailyTips.delete"), pathID("tipId", id), nil, nil, nil); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *DailyTipsService) invalidate() {
	s.c.cache.Invalidate("/api/daily-tips")
}
