package client_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikmacare/hikma-admin/client"
	"github.com/hikmacare/hikma-admin/models"
)

// fakeClinicServer serves clinic-scoped sub-resources, counting staff
// listing hits so tests can observe cache behavior.
func fakeClinicServer(t *testing.T, staffHits *int64) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/clinics/3/staff", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(staffHits, 1)
		writeEnvelope(w, http.StatusOK, []models.ClinicStaff{
			{ID: 11, OrganizationID: 3, FullName: "Rima Daher", Role: "receptionist"},
		})
	})
	mux.HandleFunc("POST /api/admin/clinics/3/staff", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusCreated, models.ClinicStaff{ID: 12, OrganizationID: 3, FullName: "Tony Sfeir"})
	})
	mux.HandleFunc("GET /api/admin/clinics/3/working-hours", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, []models.WorkingHour{
			{ID: 1, OrganizationID: 3, DayOfWeek: models.Monday, StartTime: "09:00", EndTime: "17:00", IsWorkDay: true},
		})
	})
	mux.HandleFunc("POST /api/admin/clinics/3/working-hours", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusCreated, models.WorkingHour{
			ID: 2, OrganizationID: 3, DayOfWeek: models.Tuesday, StartTime: "10:00", EndTime: "18:00", IsWorkDay: true,
		})
	})
	mux.HandleFunc("DELETE /api/admin/clinics/3/working-hours/2", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]string{"message": "Working hours removed"})
	})
	mux.HandleFunc("GET /api/admin/clinics/3/services", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, []models.Service{{ID: 21, Name: "Blood Panel"}})
	})
	return mux
}

func TestClinicStaffListIsCached(t *testing.T) {
	var staffHits int64
	c, _ := newTestClient(t, fakeClinicServer(t, &staffHits))

	staff, err := c.Organizations().Staff(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	require.Equal(t, "Rima Daher", staff[0].FullName)

	_, err = c.Organizations().Staff(context.Background(), 3)
	require.NoError(t, err)
	require.EqualValues(t, 1, staffHits)
}

func TestAddStaffInvalidatesStaffListing(t *testing.T) {
	var staffHits int64
	c, _ := newTestClient(t, fakeClinicServer(t, &staffHits))

	_, err := c.Organizations().Staff(context.Background(), 3)
	require.NoError(t, err)

	member, err := c.Organizations().AddStaff(context.Background(), 3,
		client.ClinicStaffInput{FullName: "Tony Sfeir", Role: "nurse"})
	require.NoError(t, err)
	require.Equal(t, uint(12), member.ID)

	// Next listing goes back to the server.
	_, err = c.Organizations().Staff(context.Background(), 3)
	require.NoError(t, err)
	require.EqualValues(t, 2, staffHits)
}

func TestAddStaffRequiresNameClientSide(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server")
	}))

	_, err := c.Organizations().AddStaff(context.Background(), 3, client.ClinicStaffInput{Role: "nurse"})
	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "FullName")
}

func TestWorkingHoursRoundTrip(t *testing.T) {
	var staffHits int64
	c, _ := newTestClient(t, fakeClinicServer(t, &staffHits))

	hours, err := c.Organizations().WorkingHours(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, hours, 1)
	require.Equal(t, models.Monday, hours[0].DayOfWeek)

	set, err := c.Organizations().SetWorkingHours(context.Background(), 3,
		client.WorkingHourInput{DayOfWeek: 2, StartTime: "10:00", EndTime: "18:00"})
	require.NoError(t, err)
	require.Equal(t, models.Tuesday, set.DayOfWeek)

	require.NoError(t, c.Organizations().ClearWorkingHours(context.Background(), 3, 2))
}

func TestSetWorkingHoursRejectsBadDayClientSide(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server")
	}))

	_, err := c.Organizations().SetWorkingHours(context.Background(), 3,
		client.WorkingHourInput{DayOfWeek: 9, StartTime: "09:00", EndTime: "17:00"})
	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "DayOfWeek")
}

func TestClinicServicesScopedListing(t *testing.T) {
	var staffHits int64
	c, _ := newTestClient(t, fakeClinicServer(t, &staffHits))

	services, err := c.Organizations().Services(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "Blood Panel", services[0].Name)
}
