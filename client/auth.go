package client

import (
	"context"

	"github.com/hikmacare/hikma-admin/models"
)

type requestOTPInput struct {
	Phone string `json:"phone" validate:"required"`
}

type verifyOTPInput struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,numeric"`
}

type authResult struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// RequestOTP asks the server to send a login code to the given phone.
func (c *Client) RequestOTP(ctx context.Context, phone string) error {
	in := requestOTPInput{Phone: phone}
	if err := ValidateInput(in); err != nil {
		return err
	}
	return c.do(ctx, Op("auth.requestOtp"), nil, nil, in, nil)
}

// VerifyOTP exchanges the phone + code pair for tokens and stores the
// resulting session. On any failure the session is left untouched.
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) (*models.User, error) {
	in := verifyOTPInput{Phone: phone, OTP: otp}
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	var result authResult
	if err := c.do(ctx, Op("auth.verify"), nil, nil, in, &result); err != nil {
		return nil, err
	}

	user := result.User
	c.session.SetAuth(result.AccessToken, result.RefreshToken, &user)
	return &user, nil
}

// Refresh exchanges the stored refresh token for a fresh access token. The
// already-known user is kept; refresh does not re-fetch the profile.
func (c *Client) Refresh(ctx context.Context) error {
	snap := c.session.Snapshot()
	if snap.RefreshToken == "" {
		return &ValidationError{Fields: []string{"refresh_token"}, msg: "no refresh token available"}
	}

	body := map[string]string{"refresh_token": snap.RefreshToken}
	var result authResult
	if err := c.do(ctx, Op("auth.refresh"), nil, nil, body, &result); err != nil {
		return err
	}

	refresh := result.RefreshToken
	if refresh == "" {
		refresh = snap.RefreshToken
	}
	c.session.SetAuth(result.AccessToken, refresh, snap.User)
	return nil
}

// Logout posts to the logout endpoint best-effort and unconditionally
// clears the session: a failed server call must never leave a stale token
// behind.
func (c *Client) Logout(ctx context.Context) error {
	var err error
	if c.session.Token() != "" {
		err = c.do(ctx, Op("auth.logout"), nil, nil, nil, nil)
	}
	c.session.Logout()
	return err
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, Op("auth.me"), nil, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
