package client_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hikmacare/hikma-admin/client"
	"github.com/hikmacare/hikma-admin/models"
)

// fakeDoctorServer serves a doctor listing and mutation endpoints, counting
// listing hits so tests can observe cache behavior.
func fakeDoctorServer(t *testing.T, listHits *int64) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/doctors", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(listHits, 1)
		writeEnvelope(w, http.StatusOK, []models.Doctor{{ID: 1, FullName: "Dr. Cached"}})
	})
	mux.HandleFunc("GET /api/admin/doctors/1", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, models.Doctor{ID: 1, FullName: "Dr. Cached"})
	})
	mux.HandleFunc("POST /api/admin/doctors/1/approve", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, models.Doctor{ID: 1, FullName: "Dr. Cached", IsApproved: true})
	})
	return mux
}

func TestDoctorsListIsCachedPerQuery(t *testing.T) {
	var listHits int64
	c, _ := newTestClient(t, fakeDoctorServer(t, &listHits))

	_, err := c.Doctors().List(context.Background(), nil)
	require.NoError(t, err)
	_, err = c.Doctors().List(context.Background(), nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, listHits)

	// A different filter is a different cache key.
	approved := true
	_, err = c.Doctors().List(context.Background(), &client.DoctorFilter{IsApproved: &approved})
	require.NoError(t, err)
	require.EqualValues(t, 2, listHits)
}

func TestDoctorMutationInvalidatesListAndDetail(t *testing.T) {
	var listHits int64
	c, _ := newTestClient(t, fakeDoctorServer(t, &listHits))

	_, err := c.Doctors().List(context.Background(), nil)
	require.NoError(t, err)
	_, err = c.Doctors().Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, c.Cache().Len())

	require.NoError(t, c.Doctors().Approve(context.Background(), 1))
	require.Equal(t, 0, c.Cache().Len())

	// Next listing goes back to the server.
	_, err = c.Doctors().List(context.Background(), nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, listHits)
}

func TestRejectRequiresReasonClientSide(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server")
	}))

	err := c.Doctors().Reject(context.Background(), 1, "")
	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "Reason")
}

func TestSetVipRejectsPastExpiryClientSide(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server")
	}))

	past := time.Now().Add(-time.Minute)
	err := c.Doctors().SetVip(context.Background(), 1, true, &past)
	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "expires_at")
}

func TestDoctorFilterBuildsQueryFromSetFieldsOnly(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeEnvelope(w, http.StatusOK, []models.Doctor{})
	}))

	vip := true
	_, err := c.Doctors().List(context.Background(), &client.DoctorFilter{
		Search: "karim",
		IsVip:  &vip,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Equal(t, "is_vip=true&limit=10&search=karim", gotQuery)
}

func TestOrganizationSuspendInvalidTransitionSurfacesConflict(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelopeError(w, http.StatusConflict, "INVALID_TRANSITION", "no transitions allowed from rejected")
	}))

	err := c.Organizations().Suspend(context.Background(), 5, "reason enough")
	require.Error(t, err)

	var serr *client.StatusError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, http.StatusConflict, serr.Code)
}
