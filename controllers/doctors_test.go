package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
)

func createTestDoctor(t *testing.T, app *fiber.App, phone, name string) models.Doctor {
	t.Helper()
	status, env := api(t, app, http.MethodPost, "/api/admin/doctors",
		fiber.Map{"phone": phone, "full_name": name})
	require.Equal(t, http.StatusCreated, status)

	var result struct {
		Doctor models.Doctor `json:"doctor"`
	}
	decodeResult(t, env, &result)
	return result.Doctor
}

func TestCreateDoctorStartsUnapproved(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	doctor := createTestDoctor(t, app, "+96171000001", "Dr. Rana Khalil")
	require.False(t, doctor.IsApproved)
	require.NotZero(t, doctor.UserID)

	// The owning user account is created in the same transaction.
	var user models.User
	require.NoError(t, db.DB.First(&user, doctor.UserID).Error)
	require.Equal(t, "doctor", user.UserType)
	require.Equal(t, "+96171000001", user.Phone)
}

func TestCreateDoctorRequiresPhoneAndName(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	status, env := api(t, app, http.MethodPost, "/api/admin/doctors",
		fiber.Map{"full_name": "No Phone"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION", env.ErrorCode)
}

func TestApproveDoctorFlow(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	doctor := createTestDoctor(t, app, "+96171000002", "Dr. Omar Haddad")

	// Shows up in the pending filter before approval.
	status, env := api(t, app, http.MethodGet, "/api/admin/doctors?is_approved=false", nil)
	require.Equal(t, http.StatusOK, status)
	var pending []models.Doctor
	decodeResult(t, env, &pending)
	require.Len(t, pending, 1)

	status, _ = api(t, app, http.MethodPost, fmt.Sprintf("/api/admin/doctors/%d/approve", doctor.ID), nil)
	require.Equal(t, http.StatusOK, status)

	status, env = api(t, app, http.MethodGet, "/api/admin/doctors?is_approved=true", nil)
	require.Equal(t, http.StatusOK, status)
	var approved []models.Doctor
	decodeResult(t, env, &approved)
	require.Len(t, approved, 1)
	require.True(t, approved[0].IsApproved)

	status, env = api(t, app, http.MethodGet, "/api/admin/doctors?is_approved=false", nil)
	require.Equal(t, http.StatusOK, status)
	decodeResult(t, env, &pending)
	require.Empty(t, pending)
}

func TestRejectDoctorRequiresReason(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	doctor := createTestDoctor(t, app, "+96171000003", "Dr. Sami Aoun")

	status, env := api(t, app, http.MethodPost,
		fmt.Sprintf("/api/admin/doctors/%d/reject", doctor.ID), fiber.Map{"reason": "   "})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION", env.ErrorCode)

	status, _ = api(t, app, http.MethodPost,
		fmt.Sprintf("/api/admin/doctors/%d/reject", doctor.ID), fiber.Map{"reason": "License expired"})
	require.Equal(t, http.StatusOK, status)

	var stored models.Doctor
	require.NoError(t, db.DB.First(&stored, doctor.ID).Error)
	require.False(t, stored.IsApproved)
}

func TestSetDoctorVipRejectsPastExpiry(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	doctor := createTestDoctor(t, app, "+96171000004", "Dr. Lina Nassar")

	past := time.Now().Add(-time.Hour)
	status, env := api(t, app, http.MethodPost,
		fmt.Sprintf("/api/admin/doctors/%d/vip", doctor.ID),
		fiber.Map{"is_vip": true, "expires_at": past})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION", env.ErrorCode)

	future := time.Now().Add(48 * time.Hour)
	status, env = api(t, app, http.MethodPost,
		fmt.Sprintf("/api/admin/doctors/%d/vip", doctor.ID),
		fiber.Map{"is_vip": true, "expires_at": future})
	require.Equal(t, http.StatusOK, status)

	var updated models.Doctor
	decodeResult(t, env, &updated)
	require.True(t, updated.IsVip)
	require.NotNil(t, updated.VipExpiresAt)
}

func TestRevokeVipClearsExpiry(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	doctor := createTestDoctor(t, app, "+96171000005", "Dr. Hadi Saab")
	future := time.Now().Add(24 * time.Hour)
	status, _ := api(t, app, http.MethodPost,
		fmt.Sprintf("/api/admin/doctors/%d/vip", doctor.ID),
		fiber.Map{"is_vip": true, "expires_at": future})
	require.Equal(t, http.StatusOK, status)

	status, _ = api(t, app, http.MethodPost,
		fmt.Sprintf("/api/admin/doctors/%d/vip", doctor.ID),
		fiber.Map{"is_vip": false})
	require.Equal(t, http.StatusOK, status)

	var stored models.Doctor
	require.NoError(t, db.DB.First(&stored, doctor.ID).Error)
	require.False(t, stored.IsVip)
	require.Nil(t, stored.VipExpiresAt)
}

func TestUpdateDoctorIsPartial(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	doctor := createTestDoctor(t, app, "+96171000006", "Dr. Maya Saleh")

	status, _ := api(t, app, http.MethodPut,
		fmt.Sprintf("/api/admin/doctors/%d", doctor.ID),
		fiber.Map{"bio": "Cardiologist, 12 years in Beirut"})
	require.Equal(t, http.StatusOK, status)

	var stored models.Doctor
	require.NoError(t, db.DB.First(&stored, doctor.ID).Error)
	require.Equal(t, "Cardiologist, 12 years in Beirut", stored.Bio)
	// Untouched fields keep their values.
	require.Equal(t, "Dr. Maya Saleh", stored.FullName)
	require.Equal(t, "+96171000006", stored.Phone)
}

func TestDeleteDoctorRemovesOwningUser(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	doctor := createTestDoctor(t, app, "+96171000007", "Dr. Ziad Fares")

	status, _ := api(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/doctors/%d", doctor.ID), nil)
	require.Equal(t, http.StatusOK, status)

	var count int64
	db.DB.Model(&models.Doctor{}).Count(&count)
	require.EqualValues(t, 0, count)
	db.DB.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 0, count)

	// Deleting again is a 404, not an error.
	status, env := api(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/doctors/%d", doctor.ID), nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "NOT_FOUND", env.ErrorCode)
}

func TestCreateDoctorAcceptsMultipartForm(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	// The same fields a JSON create accepts must bind from a browser-style
	// form upload too.
	status, env := apiForm(t, app, http.MethodPost, "/api/admin/doctors", map[string]string{
		"phone":     "+96171000020",
		"full_name": "Dr. Farah Itani",
		"bio":       "Dermatologist",
	})
	require.Equal(t, http.StatusCreated, status)

	var result struct {
		Doctor models.Doctor `json:"doctor"`
	}
	decodeResult(t, env, &result)
	require.Equal(t, "+96171000020", result.Doctor.Phone)
	require.Equal(t, "Dr. Farah Itani", result.Doctor.FullName)
	require.Equal(t, "Dermatologist", result.Doctor.Bio)
}

func TestUpdateDoctorAcceptsMultipartForm(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	doctor := createTestDoctor(t, app, "+96171000021", "Dr. Walid Khoury")

	status, _ := apiForm(t, app, http.MethodPut,
		fmt.Sprintf("/api/admin/doctors/%d", doctor.ID),
		map[string]string{"address": "Hamra, Beirut"})
	require.Equal(t, http.StatusOK, status)

	var stored models.Doctor
	require.NoError(t, db.DB.First(&stored, doctor.ID).Error)
	require.Equal(t, "Hamra, Beirut", stored.Address)
	require.Equal(t, "Dr. Walid Khoury", stored.FullName)
}

func TestGetDoctorsVipFilterBothWays(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	vip := createTestDoctor(t, app, "+96171000022", "Dr. Joelle Abboud")
	regular := createTestDoctor(t, app, "+96171000023", "Dr. Tony Sfeir")

	status, _ := api(t, app, http.MethodPost,
		fmt.Sprintf("/api/admin/doctors/%d/vip", vip.ID), fiber.Map{"is_vip": true})
	require.Equal(t, http.StatusOK, status)

	status, env := api(t, app, http.MethodGet, "/api/admin/doctors?is_vip=true", nil)
	require.Equal(t, http.StatusOK, status)
	var doctors []models.Doctor
	decodeResult(t, env, &doctors)
	require.Len(t, doctors, 1)
	require.Equal(t, vip.ID, doctors[0].ID)

	// is_vip=false is a real filter, not an ignored parameter.
	status, env = api(t, app, http.MethodGet, "/api/admin/doctors?is_vip=false", nil)
	require.Equal(t, http.StatusOK, status)
	decodeResult(t, env, &doctors)
	require.Len(t, doctors, 1)
	require.Equal(t, regular.ID, doctors[0].ID)
}

func TestGetDoctorsSearchFilter(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	createTestDoctor(t, app, "+96171000008", "Dr. Karim Chidiac")
	createTestDoctor(t, app, "+96171000009", "Dr. Nour Ghanem")

	status, env := api(t, app, http.MethodGet, "/api/admin/doctors?search=karim", nil)
	require.Equal(t, http.StatusOK, status)

	var doctors []models.Doctor
	decodeResult(t, env, &doctors)
	require.Len(t, doctors, 1)
	require.Equal(t, "Dr. Karim Chidiac", doctors[0].FullName)
}
