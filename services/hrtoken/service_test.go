package hrtoken

import (
	"sort"
	"testing"
	"time"

	"staffstream/models"
	"staffstream/services/notification"
	"staffstream/utils"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTokenRepo is an in-memory TokenRepository for tests.
type memTokenRepo struct {
	tokens map[string]*models.RegistrationToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: make(map[string]*models.RegistrationToken)}
}

func (r *memTokenRepo) Create(token *models.RegistrationToken) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	cp := *token
	r.tokens[token.ID] = &cp
	return nil
}

func (r *memTokenRepo) GetByToken(value string) (*models.RegistrationToken, error) {
	for _, tok := range r.tokens {
		if tok.Token == value {
			cp := *tok
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTokenRepo) GetByID(id string) (*models.RegistrationToken, error) {
	if tok, ok := r.tokens[id]; ok {
		cp := *tok
		return &cp, nil
	}
	return nil, nil
}

func (r *memTokenRepo) MarkRegistered(id string) error {
	if tok, ok := r.tokens[id]; ok && tok.Status == models.TokenStatusPending {
		tok.Status = models.TokenStatusRegistered
	}
	return nil
}

func (r *memTokenRepo) ListAll() ([]models.RegistrationToken, error) {
	out := make([]models.RegistrationToken, 0, len(r.tokens))
	for _, tok := range r.tokens {
		out = append(out, *tok)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeEnqueuer records enqueued tasks instead of hitting Redis.
type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newTestTokenService() (*DefaultTokenService, *memTokenRepo, *notification.MockNotifier, *fakeEnqueuer) {
	repo := newMemTokenRepo()
	notifier := &notification.MockNotifier{}
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultTokenService{
		Repo:        repo,
		Notifier:    notifier,
		Tasks:       enqueuer,
		FrontendURL: "http://localhost:5174",
	}
	return svc, repo, notifier, enqueuer
}

func TestIssueSendsRegistrationEmail(t *testing.T) {
	svc, _, notifier, _ := newTestTokenService()

	token, err := svc.Issue("new@example.com", "New Hire")
	require.NoError(t, err)

	assert.NotEmpty(t, token.Token)
	assert.Equal(t, models.TokenStatusPending, token.Status)
	assert.WithinDuration(t, time.Now().Add(3*time.Hour), token.ExpiresAt, time.Minute)

	require.Len(t, notifier.Sent, 1)
	assert.Equal(t, "new@example.com", notifier.Sent[0].To)
	assert.Contains(t, notifier.Sent[0].HTML, "/register?token="+token.Token)
}

func TestIssueRequiresEmailAndName(t *testing.T) {
	svc, _, _, _ := newTestTokenService()

	_, err := svc.Issue("", "New Hire")
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = svc.Issue("new@example.com", "")
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestValidateHappyPath(t *testing.T) {
	svc, _, _, _ := newTestTokenService()

	issued, err := svc.Issue("new@example.com", "New Hire")
	require.NoError(t, err)

	got, err := svc.Validate(issued.Token, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, issued.ID, got.ID)
}

func TestValidateFailureModes(t *testing.T) {
	svc, repo, _, _ := newTestTokenService()

	issued, err := svc.Issue("new@example.com", "New Hire")
	require.NoError(t, err)

	tests := []struct {
		name    string
		setup   func()
		token   string
		email   string
		wantMsg string
	}{
		{
			name:    "unknown token",
			token:   "nope",
			email:   "new@example.com",
			wantMsg: "Invalid registration token",
		},
		{
			name:    "email mismatch",
			token:   issued.Token,
			email:   "other@example.com",
			wantMsg: "Email does not match the registration token",
		},
		{
			name: "already used",
			setup: func() {
				require.NoError(t, repo.MarkRegistered(issued.ID))
			},
			token:   issued.Token,
			email:   "new@example.com",
			wantMsg: "Registration token has already been used",
		},
		{
			name: "expired",
			setup: func() {
				tok := repo.tokens[issued.ID]
				tok.Status = models.TokenStatusPending
				tok.ExpiresAt = time.Now().Add(-time.Minute)
			},
			token:   issued.Token,
			email:   "new@example.com",
			wantMsg: "Registration token has expired",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			_, err := svc.Validate(tt.token, tt.email)
			require.Error(t, err)
			assert.Equal(t, utils.KindAuth, utils.KindOf(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestConsumeIsOneWay(t *testing.T) {
	svc, _, _, _ := newTestTokenService()

	issued, err := svc.Issue("new@example.com", "New Hire")
	require.NoError(t, err)

	require.NoError(t, svc.Consume(issued.ID))

	_, err = svc.Validate(issued.Token, "new@example.com")
	require.Error(t, err)
	assert.EqualError(t, err, "Registration token has already been used")
}

func TestHistoryNewestFirst(t *testing.T) {
	svc, repo, _, _ := newTestTokenService()

	old := &models.RegistrationToken{
		ID: "t1", Token: "a", Email: "a@example.com",
		Status: models.TokenStatusPending, CreatedAt: time.Now().Add(-time.Hour),
	}
	recent := &models.RegistrationToken{
		ID: "t2", Token: "b", Email: "b@example.com",
		Status: models.TokenStatusRegistered, CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(old))
	require.NoError(t, repo.Create(recent))

	history, err := svc.History()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "t2", history[0].ID)
	assert.Equal(t, "t1", history[1].ID)
}

func TestRemindEnqueuesTask(t *testing.T) {
	svc, _, _, enqueuer := newTestTokenService()

	issued, err := svc.Issue("new@example.com", "New Hire")
	require.NoError(t, err)

	require.NoError(t, svc.Remind(issued.ID))
	require.Len(t, enqueuer.tasks, 1)
}

func TestRemindRejectsRedeemedToken(t *testing.T) {
	svc, _, _, enqueuer := newTestTokenService()

	issued, err := svc.Issue("new@example.com", "New Hire")
	require.NoError(t, err)
	require.NoError(t, svc.Consume(issued.ID))

	err = svc.Remind(issued.ID)
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Empty(t, enqueuer.tasks)
}

func TestDeliverReminderSkipsRedeemedToken(t *testing.T) {
	svc, _, notifier, _ := newTestTokenService()

	issued, err := svc.Issue("new@example.com", "New Hire")
	require.NoError(t, err)
	require.Len(t, notifier.Sent, 1)

	// Redeemed between enqueue and delivery; the worker drops the reminder.
	require.NoError(t, svc.Consume(issued.ID))
	require.NoError(t, svc.DeliverReminder(issued.ID))
	assert.Len(t, notifier.Sent, 1)

	// An unredeemed token gets the reminder email.
	second, err := svc.Issue("other@example.com", "Other Hire")
	require.NoError(t, err)
	require.NoError(t, svc.DeliverReminder(second.ID))
	assert.Len(t, notifier.Sent, 3)
}
