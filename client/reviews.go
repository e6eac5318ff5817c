package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/hikmacare/hikma-admin/models"
)

// ReviewsService is the moderation surface for patient reviews.
type ReviewsService struct {
	c *Client
}

func (c *Client) Reviews() *ReviewsService { return &ReviewsService{c: c} }

type ReviewFilter struct {
	DoctorID uint
	ClinicID uint
}

func (f *ReviewFilter) query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.DoctorID > 0 {
		q.Set("doctor_id", strconv.Itoa(int(f.DoctorID)))
	}
	if f.ClinicID > 0 {
		q.Set("clinic_id", strconv.Itoa(int(f.ClinicID)))
	}
	return q
}

func (s *ReviewsService) List(ctx context.Context, filter *ReviewFilter) ([]models.Review, error) {
	op := Op("reviews.list")
	q := filter.query()
	key := op.Path + "?" + q.Encode()

	if cached, ok := s.c.cache.Get(key); ok {
		return cached.([]models.Review), nil
	}

	var reviews []models.Review
	if err := s.c.do(ctx, op, nil, q, nil, &reviews); err != nil {
		return nil, err
	}
	s.c.cache.Set(key, reviews)
	return reviews, nil
}

func (s *ReviewsService) Get(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := s.c.do(ctx, Op("reviews.get"), pathID("reviewId", id), nil, nil, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// SetVisibility hides or shows a review. Hiding also moves the reviewed
// doctor's aggregate rating server-side, so doctor caches are dropped too.
func (s *ReviewsService) SetVisibility(ctx context.Context, id uint, visible bool) (*models.Review, error) {
	body := map[string]bool{"is_visible": visible}
	var review models.Review
	if err := s.c.do(ctx, Op("reviews.updateVisibility"), pathID("reviewId", id), nil, body, &review); err != nil {
		return nil, err
	}
	prefixes := []string{"/api/reviews"}
	if review.DoctorID != nil {
		prefixes = append(prefixes,
			"/api/admin/doctors?",
			"/api/admin/doctors/"+strconv.Itoa(int(*review.DoctorID)),
		)
	}
	s.c.cache.Invalidate(prefixes...)
	return &review, nil
}
