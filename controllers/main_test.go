package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hikmacare/hikma-admin/db"
	"github.com/hikmacare/hikma-admin/models"
)

// setupTestDB points the package-level db.DB at a fresh in-memory SQLite
// database. MaxOpenConns(1) keeps every query on the same connection, which
// is what keeps an in-memory database alive across requests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Organization{},
		&models.ClinicStaff{},
		&models.WorkingHour{},
		&models.Specialty{},
		&models.Service{},
		&models.ServiceImage{},
		&models.Slider{},
		&models.DailyTip{},
		&models.Review{},
		&models.OTPCode{},
		&models.Appointment{},
		&models.ProfileView{},
	))

	prev := db.DB
	db.DB = gdb
	t.Cleanup(func() {
		db.DB = prev
		sqlDB.Close()
	})
	return gdb
}

// newTestApp wires the handlers under the same paths the real router uses,
// without the auth middleware. Middleware behavior has its own tests.
func newTestApp() *fiber.App {
	app := fiber.New()

	app.Post("/api/auth/request-otp", RequestOTP)
	app.Post("/api/auth/verify", VerifyOTP)
	app.Post("/api/auth/refresh", RefreshToken)

	app.Get("/api/admin/doctors", GetDoctors)
	app.Post("/api/admin/doctors", CreateDoctor)
	app.Get("/api/admin/doctors/:doctorId", GetDoctor)
	app.Put("/api/admin/doctors/:doctorId", UpdateDoctor)
	app.Delete("/api/admin/doctors/:doctorId", DeleteDoctor)
	app.Post("/api/admin/doctors/:doctorId/approve", ApproveDoctor)
	app.Post("/api/admin/doctors/:doctorId/reject", RejectDoctor)
	app.Post("/api/admin/doctors/:doctorId/vip", SetDoctorVip)
	app.Get("/api/admin/doctors/:doctorId/analytics", GetDoctorAnalytics)

	app.Get("/api/admin/clinics", GetOrganizations)
	app.Post("/api/admin/clinics", CreateOrganization)
	app.Get("/api/admin/clinics/:clinicId", GetOrganization)
	app.Put("/api/admin/clinics/:clinicId", UpdateOrganization)
	app.Delete("/api/admin/clinics/:clinicId", DeleteOrganization)
	app.Post("/api/admin/clinics/:clinicId/approve", ApproveOrganization)
	app.Post("/api/admin/clinics/:clinicId/reject", RejectOrganization)
	app.Post("/api/admin/clinics/:clinicId/suspend", SuspendOrganization)
	app.Get("/api/admin/clinics/:clinicId/staff", GetClinicStaff)
	app.Post("/api/admin/clinics/:clinicId/staff", CreateClinicStaff)
	app.Put("/api/admin/clinics/:clinicId/staff/:staffId", UpdateClinicStaff)
	app.Delete("/api/admin/clinics/:clinicId/staff/:staffId", DeleteClinicStaff)
	app.Get("/api/admin/clinics/:clinicId/working-hours", GetClinicWorkingHours)
	app.Post("/api/admin/clinics/:clinicId/working-hours", SetClinicWorkingHours)
	app.Delete("/api/admin/clinics/:clinicId/working-hours/:day", DeleteClinicWorkingHours)
	app.Get("/api/admin/clinics/:clinicId/services", GetClinicServices)

	app.Get("/api/admin/users", GetUsers)
	app.Post("/api/admin/users", CreateUser)
	app.Get("/api/admin/users/:id", GetUser)
	app.Put("/api/admin/users/:id", UpdateUser)

	app.Get("/api/admin/dashboard/stats", GetDashboardStats)

	app.Get("/api/specialties", GetSpecialties)
	app.Post("/api/specialties", CreateSpecialty)
	app.Put("/api/specialties/:id", UpdateSpecialty)
	app.Delete("/api/specialties/:id", DeleteSpecialty)

	app.Get("/api/services", GetAllServices)
	app.Post("/api/services", CreateService)
	app.Put("/api/services/:serviceId", UpdateService)
	app.Delete("/api/services/:serviceId", DeleteService)

	app.Get("/api/service-images", GetServiceImages)
	app.Post("/api/service-images", CreateServiceImage)
	app.Post("/api/service-images/bulk", CreateServiceImagesBulk)
	app.Delete("/api/service-images/:id", DeleteServiceImage)

	app.Get("/api/sliders", GetSliders)
	app.Get("/api/sliders/admin/all", GetAllSliders)
	app.Post("/api/sliders", CreateSlider)
	app.Put("/api/sliders/:sliderId", UpdateSlider)
	app.Delete("/api/sliders/:sliderId", DeleteSlider)

	app.Get("/api/daily-tips/active", GetActiveDailyTip)
	app.Post("/api/daily-tips", CreateDailyTip)
	app.Put("/api/daily-tips/:tipId", UpdateDailyTip)

	app.Get("/api/reviews", GetReviews)
	app.Patch("/api/reviews/:reviewId/visibility", UpdateReviewVisibility)

	return app
}

type testEnvelope struct {
	Status    string          `json:"status"`
	Error     string          `json:"error"`
	ErrorCode string          `json:"error_code"`
	Result    json.RawMessage `json:"result"`
}

// api performs one request against the test app and decodes the envelope.
func api(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return res.StatusCode, env
}

// apiForm performs one multipart/form-data request with text fields only,
// the shape a browser upload form produces.
func apiForm(t *testing.T, app *fiber.App, method, path string, fields map[string]string) (int, testEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return res.StatusCode, env
}

func decodeResult(t *testing.T, env testEnvelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Result, out))
}
