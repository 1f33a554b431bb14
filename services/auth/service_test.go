package auth

import (
	"testing"

	"staffstream/config"
	"staffstream/models"
	"staffstream/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memUserRepo is an in-memory UserRepository for tests.
type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) UpdateTokenHash(id, tokenHash string) error {
	if u, ok := r.users[id]; ok {
		u.TokenHash = tokenHash
	}
	return nil
}

func (r *memUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return r.users[id], nil
}

// stubTokenService validates a single known token value.
type stubTokenService struct {
	token       *models.RegistrationToken
	consumedID  string
	validateErr error
}

func (s *stubTokenService) Issue(string, string) (*models.RegistrationToken, error) {
	return nil, nil
}

func (s *stubTokenService) Validate(tokenValue, email string) (*models.RegistrationToken, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	if s.token == nil || s.token.Token != tokenValue || s.token.Email != email {
		return nil, utils.AuthError("Invalid registration token")
	}
	return s.token, nil
}

func (s *stubTokenService) Consume(tokenID string) error {
	s.consumedID = tokenID
	return nil
}

func (s *stubTokenService) History() ([]models.RegistrationToken, error) { return nil, nil }
func (s *stubTokenService) Remind(string) error                          { return nil }
func (s *stubTokenService) DeliverReminder(string) error                 { return nil }

func newTestAuth(t *testing.T) (*DefaultAuthService, *memUserRepo, *stubTokenService) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	users := newMemUserRepo()
	tokens := &stubTokenService{
		token: &models.RegistrationToken{
			ID:    "tok-1",
			Token: "invite-value",
			Email: "jane@example.com",
		},
	}
	return &DefaultAuthService{Users: users, Tokens: tokens}, users, tokens
}

func TestRegisterRedeemsTokenAndIssuesJWT(t *testing.T) {
	svc, users, tokens := newTestAuth(t)

	resp, err := svc.Register("invite-value", "jane", "jane@example.com", "hunter22")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane", resp.Username)
	assert.Equal(t, "tok-1", tokens.consumedID)

	// The signed token round-trips and carries the user's ID.
	sub, err := utils.ExtractIDFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, sub)

	// The token hash is stored for server-side revocation.
	usr, err := users.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(resp.Token), usr.TokenHash)
}

func TestRegisterRejectsBadToken(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	_, err := svc.Register("wrong-value", "jane", "jane@example.com", "hunter22")
	require.Error(t, err)
	assert.Equal(t, utils.KindAuth, utils.KindOf(err))
}

func TestRegisterRejectsDuplicateUser(t *testing.T) {
	svc, users, tokens := newTestAuth(t)

	require.NoError(t, users.Create(&models.User{
		ID: "u0", Username: "jane", Email: "taken@example.com",
	}))

	_, err := svc.Register("invite-value", "jane", "jane@example.com", "hunter22")
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.EqualError(t, err, "User already exists")
	// The token survives a failed registration.
	assert.Empty(t, tokens.consumedID)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	_, err := svc.Register("invite-value", "jane", "jane@example.com", "")
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	_, err := svc.Register("invite-value", "jane", "jane@example.com", "hunter22")
	require.NoError(t, err)

	resp, err := svc.Login("jane", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "jane", resp.Username)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login("jane", "wrong")
	require.Error(t, err)
	assert.Equal(t, utils.KindAuth, utils.KindOf(err))
	assert.EqualError(t, err, "Invalid credentials")

	_, err = svc.Login("nobody", "hunter22")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid credentials")
}

func TestCurrentUser(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	resp, err := svc.Register("invite-value", "jane", "jane@example.com", "hunter22")
	require.NoError(t, err)

	usr, err := svc.CurrentUser(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", usr.Username)

	_, err = svc.CurrentUser("missing")
	require.Error(t, err)
	assert.Equal(t, utils.KindAuth, utils.KindOf(err))
}
