package api

import (
	"context"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
)

// SignIn authenticates credentials against POST /auth/signin. The request
// rides the normal pipeline but the transport never attaches a stored token
// to it.
func (c *Client) SignIn(ctx context.Context, req dto.LoginRequest) (*dto.SignInResponse, error) {
	out := &dto.SignInResponse{}
	if err := c.post(ctx, "/auth/signin", req, out); err != nil {
		return nil, err
	}
	return out, nil
}
