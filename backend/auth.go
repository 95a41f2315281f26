package backend

import (
	"context"

	"roamify/models"
)

type authAPI struct {
	c *Client
}

func (a *authAPI) SignIn(ctx context.Context, creds models.Credentials) (*models.SignInResponse, error) {
	var out models.SignInResponse
	if err := a.c.post(ctx, "/auth/signin", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *authAPI) SignUp(ctx context.Context, req models.SignupRequest) error {
	return a.c.post(ctx, "/auth/signup", nil, req, nil)
}

func (a *authAPI) VendorSignUp(ctx context.Context, req models.VendorSignupRequest) error {
	return a.c.post(ctx, "/auth/vendor-signup", nil, req, nil)
}
