package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conandweb/internal/domain"
)

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	salt string
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) { return f.salt, nil }
func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	roles  []string
	expiry time.Duration
	err    error
}

func (f *fakeTokenIssuer) Issue(userID, email string, roles []string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.roles = roles
	f.expiry = expiry
	return "token-" + userID, nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = "created-1"
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		role     string
		seed     bool
		wantErr  error
	}{
		{name: "success", email: " Editor@Conand.ad ", password: "longenough", role: "Editor"},
		{name: "invalid email", email: "nope", password: "longenough", role: "admin", wantErr: domain.ErrInvalidInput},
		{name: "short password", email: "a@conand.ad", password: "short", role: "admin", wantErr: domain.ErrInvalidInput},
		{name: "unknown role", email: "a@conand.ad", password: "longenough", role: "attendee", wantErr: domain.ErrInvalidInput},
		{name: "duplicate", email: "editor@conand.ad", password: "longenough", role: "editor", seed: true, wantErr: domain.ErrDuplicateEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			if tt.seed {
				repo.byEmail["editor@conand.ad"] = &domain.User{ID: "u-1", Email: "editor@conand.ad"}
			}
			svc := NewAuthService(repo, &fakePasswordHasher{salt: "s"}, &fakeTokenIssuer{}, time.Hour, time.Second)
			u, err := svc.CreateUser(ctx, tt.email, tt.password, " Eddie ", tt.role)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "created-1", u.ID)
			assert.Equal(t, "editor@conand.ad", u.Email)
			assert.Equal(t, "Eddie", u.Name)
			assert.Equal(t, domain.RoleEditor, u.Role)
			assert.Equal(t, "hash-s-longenough", u.PasswordHash)
			assert.Equal(t, "s", u.Salt)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &domain.User{ID: "u-1", Email: "admin@conand.ad", Role: domain.RoleAdmin, Salt: "s", PasswordHash: "hash-s-secret123"}

	tests := []struct {
		name      string
		email     string
		password  string
		getErr    error
		issuerErr error
		wantToken string
		wantErr   error
	}{
		{name: "success", email: "Admin@Conand.ad", password: "secret123", wantToken: "token-u-1"},
		{name: "wrong password", email: "admin@conand.ad", password: "nope", wantErr: domain.ErrInvalidCredentials},
		{name: "unknown user", email: "ghost@conand.ad", password: "secret123", wantErr: domain.ErrInvalidCredentials},
		{name: "issuer failure", email: "admin@conand.ad", password: "secret123", issuerErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			repo.byEmail[stored.Email] = stored
			issuer := &fakeTokenIssuer{err: tt.issuerErr}
			svc := NewAuthService(repo, &fakePasswordHasher{}, issuer, 24*time.Hour, time.Second)
			token, err := svc.Login(ctx, tt.email, tt.password)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.issuerErr != nil:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, []string{domain.RoleAdmin}, issuer.roles)
				assert.Equal(t, 24*time.Hour, issuer.expiry)
			}
		})
	}
}
