package auth

import (
	"context"
	"fmt"

	"travelmate/internal/database"
)

// SupabaseAuthProvider verifies bearer tokens against Supabase GoTrue and
// returns the stable user id they belong to.
type SupabaseAuthProvider struct {
	client *database.SupabaseClient
}

func NewSupabaseAuthProvider(client *database.SupabaseClient) *SupabaseAuthProvider {
	return &SupabaseAuthProvider{client: client}
}

// UserIDFromToken resolves an access token to its user id. An invalid or
// expired token is an error; callers decide whether that means the request
// proceeds anonymously or is rejected.
func (p *SupabaseAuthProvider) UserIDFromToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("empty access token")
	}

	user, err := p.client.GetClient().Auth.WithToken(token).GetUser()
	if err != nil {
		return "", fmt.Errorf("token verification failed: %w", err)
	}

	return user.ID.String(), nil
}
