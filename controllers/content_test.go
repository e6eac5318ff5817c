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

func TestActiveDailyTipReturnsNullWhenNone(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	status, env := api(t, app, http.MethodGet, "/api/daily-tips/active", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "null", string(env.Result))
}

func TestActiveDailyTipPicksLatestActive(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	old := models.DailyTip{Title: "Drink water", IsActive: true, PublishDate: time.Now().Add(-48 * time.Hour)}
	latest := models.DailyTip{Title: "Sleep 8 hours", IsActive: true, PublishDate: time.Now()}
	inactive := models.DailyTip{Title: "Hidden tip", PublishDate: time.Now().Add(time.Hour)}
	require.NoError(t, db.DB.Create(&old).Error)
	require.NoError(t, db.DB.Create(&latest).Error)
	require.NoError(t, db.DB.Create(&inactive).Error)
	// A zero-valued flag with a column default needs an explicit update.
	require.NoError(t, db.DB.Model(&inactive).Update("is_active", false).Error)

	status, env := api(t, app, http.MethodGet, "/api/daily-tips/active", nil)
	require.Equal(t, http.StatusOK, status)

	var tip models.DailyTip
	decodeResult(t, env, &tip)
	require.Equal(t, "Sleep 8 hours", tip.Title)
}

func TestCreateDailyTipDefaults(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	status, env := api(t, app, http.MethodPost, "/api/daily-tips",
		fiber.Map{"title": "Wash your hands", "title_ar": "اغسل يديك"})
	require.Equal(t, http.StatusCreated, status)

	var tip models.DailyTip
	decodeResult(t, env, &tip)
	require.True(t, tip.IsActive)
	require.False(t, tip.PublishDate.IsZero())
	require.Equal(t, "اغسل يديك", tip.TitleAr)
}

func TestSliderListingsSplitActiveFromAll(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	status, env := api(t, app, http.MethodPost, "/api/sliders",
		fiber.Map{"title": "Winter checkup", "image_url": "https://cdn.example.com/winter.jpg", "display_order": 2})
	require.Equal(t, http.StatusCreated, status)
	var created models.Slider
	decodeResult(t, env, &created)

	hidden := models.Slider{Title: "Old campaign", ImageURL: "https://cdn.example.com/old.jpg", DisplayOrder: 1}
	require.NoError(t, db.DB.Create(&hidden).Error)
	require.NoError(t, db.DB.Model(&hidden).Update("is_active", false).Error)

	status, env = api(t, app, http.MethodGet, "/api/sliders", nil)
	require.Equal(t, http.StatusOK, status)
	var active []models.Slider
	decodeResult(t, env, &active)
	require.Len(t, active, 1)
	require.Equal(t, "Winter checkup", active[0].Title)

	status, env = api(t, app, http.MethodGet, "/api/sliders/admin/all", nil)
	require.Equal(t, http.StatusOK, status)
	var all []models.Slider
	decodeResult(t, env, &all)
	require.Len(t, all, 2)
	// Ordered by display_order, so the hidden campaign comes first.
	require.Equal(t, "Old campaign", all[0].Title)
}

func TestCreateSliderAcceptsMultipartForm(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	// Text fields of a form upload must bind the same way a JSON body does.
	status, env := apiForm(t, app, http.MethodPost, "/api/sliders", map[string]string{
		"title":     "Spring campaign",
		"title_ar":  "حملة الربيع",
		"image_url": "https://cdn.example.com/spring.jpg",
	})
	require.Equal(t, http.StatusCreated, status)

	var slider models.Slider
	decodeResult(t, env, &slider)
	require.Equal(t, "Spring campaign", slider.Title)
	require.Equal(t, "حملة الربيع", slider.TitleAr)
	require.Equal(t, "https://cdn.example.com/spring.jpg", slider.ImageURL)
}

func TestCreateSliderRequiresTitleAndImage(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	status, env := api(t, app, http.MethodPost, "/api/sliders", fiber.Map{"title": "No image"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION", env.ErrorCode)
}

func TestSpecialtyBilingualRoundTrip(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	status, env := api(t, app, http.MethodPost, "/api/specialties",
		fiber.Map{"name": "Cardiology", "name_ar": "أمراض القلب"})
	require.Equal(t, http.StatusCreated, status)
	var specialty models.Specialty
	decodeResult(t, env, &specialty)
	require.True(t, specialty.IsActive)

	status, _ = api(t, app, http.MethodPut, fmt.Sprintf("/api/specialties/%d", specialty.ID),
		fiber.Map{"description_ar": "تشخيص وعلاج أمراض القلب"})
	require.Equal(t, http.StatusOK, status)

	var stored models.Specialty
	require.NoError(t, db.DB.First(&stored, specialty.ID).Error)
	require.Equal(t, "أمراض القلب", stored.NameAr)
	require.Equal(t, "تشخيص وعلاج أمراض القلب", stored.DescriptionAr)
	require.Equal(t, "Cardiology", stored.Name)
}

func TestReviewVisibilityRecomputesRating(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	doctor := createTestDoctor(t, app, "+96171000100", "Dr. Rated Well")
	user := models.User{Phone: "+96170000100", FullName: "Reviewer", UserType: "patient", IsActive: true}
	require.NoError(t, db.DB.Create(&user).Error)

	good := models.Review{UserID: user.ID, DoctorID: &doctor.ID, Rating: 5, Comment: "Excellent"}
	bad := models.Review{UserID: user.ID, DoctorID: &doctor.ID, Rating: 1, Comment: "Spam review"}
	require.NoError(t, db.DB.Create(&good).Error)
	require.NoError(t, db.DB.Create(&bad).Error)
	require.NoError(t, recomputeDoctorRating(db.DB, doctor.ID))

	var stored models.Doctor
	require.NoError(t, db.DB.First(&stored, doctor.ID).Error)
	require.InDelta(t, 3.0, stored.Rating, 0.001)
	require.Equal(t, 2, stored.ReviewCount)

	// Hiding the spam review leaves only the 5-star one in the aggregate.
	status, _ := api(t, app, http.MethodPatch, fmt.Sprintf("/api/reviews/%d/visibility", bad.ID),
		fiber.Map{"is_visible": false})
	require.Equal(t, http.StatusOK, status)

	require.NoError(t, db.DB.First(&stored, doctor.ID).Error)
	require.InDelta(t, 5.0, stored.Rating, 0.001)
	require.Equal(t, 1, stored.ReviewCount)
}

func TestReviewVisibilityRequiresFlag(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	status, env := api(t, app, http.MethodPatch, "/api/reviews/1/visibility", fiber.Map{})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION", env.ErrorCode)
}

func TestServiceImagesBulkInsert(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	status, env := api(t, app, http.MethodPost, "/api/services",
		fiber.Map{"name": "Full Checkup", "price": 120.0, "duration": 45})
	require.Equal(t, http.StatusCreated, status)
	var service models.Service
	decodeResult(t, env, &service)
	require.True(t, service.IsActive)

	status, env = api(t, app, http.MethodPost, "/api/service-images/bulk", fiber.Map{
		"images": []fiber.Map{
			{"service_id": service.ID, "image_url": "https://cdn.example.com/a.jpg", "display_order": 1},
			{"service_id": service.ID, "image_url": "https://cdn.example.com/b.jpg", "display_order": 2},
		},
	})
	require.Equal(t, http.StatusCreated, status)

	var images []models.ServiceImage
	decodeResult(t, env, &images)
	require.Len(t, images, 2)
}
