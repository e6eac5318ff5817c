// Package client is the typed Go SDK for the Hikma admin API. Every call
// goes through the contract registry: inputs are validated before any
// network traffic, URLs are built from the registry's path templates, and
// responses are unwrapped from the standard envelope.
package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Operation maps a logical operation name to its HTTP method and path
// template. Path parameters use :name placeholders.
type Operation struct {
	Method string
	Path   string
}

// Registry is the single source of truth for the API surface, shared in
// spirit with the server's route table.
var Registry = map[string]Operation{
	"auth.requestOtp": {http.MethodPost, "/api/auth/request-otp"},
	"auth.verify":     {http.MethodPost, "/api/auth/verify"},
	"auth.refresh":    {http.MethodPost, "/api/auth/refresh"},
	"auth.logout":     {http.MethodPost, "/api/auth/logout"},
	"auth.me":         {http.MethodGet, "/api/auth/me"},

	"doctors.list":         {http.MethodGet, "/api/admin/doctors"},
	"doctors.get":          {http.MethodGet, "/api/admin/doctors/:doctorId"},
	"doctors.create":       {http.MethodPost, "/api/admin/doctors"},
	"doctors.update":       {http.MethodPut, "/api/admin/doctors/:doctorId"},
	"doctors.delete":       {http.MethodDelete, "/api/admin/doctors/:doctorId"},
	"doctors.approve":      {http.MethodPost, "/api/admin/doctors/:doctorId/approve"},
	"doctors.reject":       {http.MethodPost, "/api/admin/doctors/:doctorId/reject"},
	"doctors.setVip":       {http.MethodPost, "/api/admin/doctors/:doctorId/vip"},
	"doctors.analytics":    {http.MethodGet, "/api/admin/doctors/:doctorId/analytics"},
	"doctors.profileViews": {http.MethodGet, "/api/admin/doctors/:doctorId/analytics/profile-views"},

	"organizations.list":    {http.MethodGet, "/api/admin/clinics"},
	"organizations.get":     {http.MethodGet, "/api/admin/clinics/:clinicId"},
	"organizations.create":  {http.MethodPost, "/api/admin/clinics"},
	"organizations.update":  {http.MethodPut, "/api/admin/clinics/:clinicId"},
	"organizations.delete":  {http.MethodDelete, "/api/admin/clinics/:clinicId"},
	"organizations.approve": {http.MethodPost, "/api/admin/clinics/:clinicId/approve"},
	"organizations.reject":  {http.MethodPost, "/api/admin/clinics/:clinicId/reject"},
	"organizations.suspend": {http.MethodPost, "/api/admin/clinics/:clinicId/suspend"},

	"clinicStaff.list":         {http.MethodGet, "/api/admin/clinics/:clinicId/staff"},
	"clinicStaff.create":       {http.MethodPost, "/api/admin/clinics/:clinicId/staff"},
	"clinicStaff.update":       {http.MethodPut, "/api/admin/clinics/:clinicId/staff/:staffId"},
	"clinicStaff.delete":       {http.MethodDelete, "/api/admin/clinics/:clinicId/staff/:staffId"},
	"clinicWorkingHours.list":  {http.MethodGet, "/api/admin/clinics/:clinicId/working-hours"},
	"clinicWorkingHours.set":   {http.MethodPost, "/api/admin/clinics/:clinicId/working-hours"},
	"clinicWorkingHours.clear": {http.MethodDelete, "/api/admin/clinics/:clinicId/working-hours/:day"},
	"clinicServices.list":      {http.MethodGet, "/api/admin/clinics/:clinicId/services"},

	"users.list":   {http.MethodGet, "/api/admin/users"},
	"users.get":    {http.MethodGet, "/api/admin/users/:id"},
	"users.create": {http.MethodPost, "/api/admin/users"},
	"users.update": {http.MethodPut, "/api/admin/users/:id"},

	"dashboard.stats": {http.MethodGet, "/api/admin/dashboard/stats"},

	"specialties.list":   {http.MethodGet, "/api/specialties"},
	"specialties.get":    {http.MethodGet, "/api/specialties/:id"},
	"specialties.create": {http.MethodPost, "/api/specialties"},
	"specialties.update": {http.MethodPut, "/api/specialties/:id"},
	"specialties.delete": {http.MethodDelete, "/api/specialties/:id"},

	"services.list":   {http.MethodGet, "/api/services"},
	"services.get":    {http.MethodGet, "/api/services/:serviceId"},
	"services.create": {http.MethodPost, "/api/services"},
	"services.update": {http.MethodPut, "/api/services/:serviceId"},
	"services.delete": {http.MethodDelete, "/api/services/:serviceId"},

	"serviceImages.list":       {http.MethodGet, "/api/service-images"},
	"serviceImages.create":     {http.MethodPost, "/api/service-images"},
	"serviceImages.createBulk": {http.MethodPost, "/api/service-images/bulk"},
	"serviceImages.delete":     {http.MethodDelete, "/api/service-images/:id"},

	"sliders.list":    {http.MethodGet, "/api/sliders"},
	"sliders.listAll": {http.MethodGet, "/api/sliders/admin/all"},
	"sliders.get":     {http.MethodGet, "/api/sliders/:sliderId"},
	"sliders.create":  {http.MethodPost, "/api/sliders"},
	"sliders.update":  {http.MethodPut, "/api/sliders/:sliderId"},
	"sliders.delete":  {http.MethodDelete, "/api/sliders/:sliderId"},

	"dailyTips.active":  {http.MethodGet, "/api/daily-tips/active"},
	"dailyTips.listAll": {http.MethodGet, "/api/daily-tips/admin/all"},
	"dailyTips.get":     {http.MethodGet, "/api/daily-tips/:tipId"},
	"dailyTips.create":  {http.MethodPost, "/api/daily-tips"},
	"dailyTips.update":  {http.MethodPut, "/api/daily-tips/:tipId"},
	"dailyTips.delete":  {http.MethodDelete, "/api/daily-tips/:tipId"},

	"reviews.list":             {http.MethodGet, "/api/reviews"},
	"reviews.get":              {http.MethodGet, "/api/reviews/:reviewId"},
	"reviews.updateVisibility": {http.MethodPatch, "/api/reviews/:reviewId/visibility"},

	"health.check": {http.MethodGet, "/api/health"},
}

// Op looks up an operation by name. Unknown names are a programming error.
func Op(name string) Operation {
	op, ok := Registry[name]
	if !ok {
		panic(fmt.Sprintf("client: unknown operation %q", name))
	}
	return op
}

// BuildURL substitutes every :key placeholder in a path template. A
// placeholder left unresolved after substitution is a caller error.
func BuildURL(path string, params map[string]string) (string, error) {
	url := path
	for key, value := range params {
		url = strings.ReplaceAll(url, ":"+key, value)
	}
	if i := strings.IndexByte(url, ':'); i >= 0 {
		return "", fmt.Errorf("unresolved path parameter in %q", url)
	}
	return url, nil
}

var validate = validator.New()

// ValidationError reports an input that failed the contract's declared
// schema. It is raised before any network call.
type ValidationError struct {
	Fields []string
	msg    string
}

func (e *ValidationError) Error() string { return e.msg }

// ValidateInput runs the struct's validate tags and converts failures into
// a field-naming ValidationError.
func ValidateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{
		Fields: fields,
		msg:    fmt.Sprintf("validation failed on field(s): %s", strings.Join(fields, ", ")),
	}
}
