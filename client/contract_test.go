package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikmacare/hikma-admin/client"
)

func TestBuildURLSubstitutesParams(t *testing.T) {
	url, err := client.BuildURL("/api/admin/doctors/:doctorId/vip", map[string]string{"doctorId": "42"})
	require.NoError(t, err)
	require.Equal(t, "/api/admin/doctors/42/vip", url)
}

func TestBuildURLFailsOnUnresolvedParam(t *testing.T) {
	_, err := client.BuildURL("/api/admin/doctors/:doctorId", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unresolved path parameter")
}

func TestOpPanicsOnUnknownName(t *testing.T) {
	require.Panics(t, func() { client.Op("no.suchOp") })
}

func TestRegistryPathsCarryAPIPrefix(t *testing.T) {
	for name, op := range client.Registry {
		require.NotEmpty(t, op.Method, name)
		require.Regexp(t, "^/api/", op.Path, name)
	}
}

func TestValidateInputNamesFailedFields(t *testing.T) {
	type input struct {
		Phone string `json:"phone" validate:"required"`
		Email string `json:"email" validate:"omitempty,email"`
	}

	require.NoError(t, client.ValidateInput(input{Phone: "+96170123456"}))

	err := client.ValidateInput(input{Email: "not-an-email"})
	require.Error(t, err)

	verr, ok := err.(*client.ValidationError)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"Phone", "Email"}, verr.Fields)
}
