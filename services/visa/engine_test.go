package visa

import (
	"testing"

	"staffstream/models"
	"staffstream/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memVisaRepo is an in-memory VisaRepository for tests.
type memVisaRepo struct {
	apps map[string]*models.VisaApplication
}

func newMemVisaRepo() *memVisaRepo {
	return &memVisaRepo{apps: make(map[string]*models.VisaApplication)}
}

func (r *memVisaRepo) GetByUserID(userID string) (*models.VisaApplication, error) {
	for _, v := range r.apps {
		if v.UserID == userID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memVisaRepo) GetByID(id string) (*models.VisaApplication, error) {
	if v, ok := r.apps[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (r *memVisaRepo) Create(v *models.VisaApplication) error {
	cp := *v
	r.apps[v.ID] = &cp
	return nil
}

func (r *memVisaRepo) Save(v *models.VisaApplication) error {
	cp := *v
	r.apps[v.ID] = &cp
	return nil
}

func (r *memVisaRepo) ListAll() ([]models.VisaApplication, error) {
	out := make([]models.VisaApplication, 0, len(r.apps))
	for _, v := range r.apps {
		out = append(out, *v)
	}
	return out, nil
}

// memUserRepo implements the slice of UserRepository the visa service needs.
type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	m := &memUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
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

func newTestService() (*DefaultVisaService, *memVisaRepo) {
	repo := newMemVisaRepo()
	return &DefaultVisaService{Repo: repo, Users: newMemUserRepo()}, repo
}

func TestSubmitDocumentCreatesApplication(t *testing.T) {
	svc, repo := newTestService()

	v, err := svc.SubmitDocument("u1", "https://files/receipt.pdf")
	require.NoError(t, err)

	assert.Equal(t, models.DocTypeOPTReceipt, v.CurrentStep)
	require.Len(t, v.Documents, 1)
	assert.Equal(t, models.DocTypeOPTReceipt, v.Documents[0].Type)
	assert.Equal(t, models.DocStatusPending, v.Documents[0].Status)

	stored, err := repo.GetByUserID("u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Documents, 1)
}

func TestSubmitDocumentRejectsSecondPendingUpload(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SubmitDocument("u1", "https://files/receipt.pdf")
	require.NoError(t, err)

	_, err = svc.SubmitDocument("u1", "https://files/receipt2.pdf")
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.EqualError(t, err, "Previous document is still pending approval")
}

func TestSubmitAfterRejectionAllowed(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.SubmitDocument("u1", "https://files/receipt.pdf")
	require.NoError(t, err)

	_, err = svc.Reject(v.ID, "Blurry scan")
	require.NoError(t, err)

	v, err = svc.SubmitDocument("u1", "https://files/receipt2.pdf")
	require.NoError(t, err)

	// Rejected record survives; the resubmission is a fresh pending record.
	require.Len(t, v.Documents, 2)
	assert.Equal(t, models.DocStatusRejected, v.Documents[0].Status)
	assert.Equal(t, models.DocStatusPending, v.Documents[1].Status)
	assert.Equal(t, models.DocTypeOPTReceipt, v.CurrentStep)
}

func TestApproveAdvancesCurrentStep(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.SubmitDocument("u1", "https://files/receipt.pdf")
	require.NoError(t, err)

	v, err = svc.Approve(v.ID)
	require.NoError(t, err)

	assert.Equal(t, models.DocTypeOPTEAD, v.CurrentStep)
	doc := v.LastDocument()
	require.NotNil(t, doc)
	assert.Equal(t, models.DocStatusApproved, doc.Status)
	require.NotNil(t, doc.ReviewedAt)
}

func TestApproveFinalStepIsTerminal(t *testing.T) {
	svc, _ := newTestService()

	// Walk the full sequence: upload then approve each of the four steps.
	v, err := svc.SubmitDocument("u1", "https://files/1.pdf")
	require.NoError(t, err)
	id := v.ID

	for i := 0; i < 4; i++ {
		if i > 0 {
			_, err = svc.SubmitDocument("u1", "https://files/next.pdf")
			require.NoError(t, err)
		}
		v, err = svc.Approve(id)
		require.NoError(t, err)
	}

	assert.Equal(t, models.DocTypeI20, v.CurrentStep)

	view, err := svc.GetStatus("u1")
	require.NoError(t, err)
	assert.Equal(t, "All documents have been approved.", view.Message)
}

func TestRejectKeepsStepAndRecordsFeedback(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.SubmitDocument("u1", "https://files/receipt.pdf")
	require.NoError(t, err)

	v, err = svc.Reject(v.ID, "Wrong document")
	require.NoError(t, err)

	assert.Equal(t, models.DocTypeOPTReceipt, v.CurrentStep)
	doc := v.LastDocument()
	require.NotNil(t, doc)
	assert.Equal(t, models.DocStatusRejected, doc.Status)
	assert.Equal(t, "Wrong document", doc.Feedback)

	view, err := svc.GetStatus("u1")
	require.NoError(t, err)
	assert.Equal(t, "Wrong document", view.Message)
}

func TestRejectRequiresFeedback(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.SubmitDocument("u1", "https://files/receipt.pdf")
	require.NoError(t, err)

	_, err = svc.Reject(v.ID, "")
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestReviewRequiresPendingDocument(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.SubmitDocument("u1", "https://files/receipt.pdf")
	require.NoError(t, err)
	_, err = svc.Approve(v.ID)
	require.NoError(t, err)

	_, err = svc.Approve(v.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "Can only approve documents with pending status")

	_, err = svc.Reject(v.ID, "nope")
	require.Error(t, err)
	assert.EqualError(t, err, "Can only reject documents with pending status")
}

func TestReviewUnknownApplication(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Approve("missing")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestGetStatusWithoutApplication(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetStatus("u1")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
	assert.EqualError(t, err, "No visa application found")
}

func TestStatusMessageTransitions(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.SubmitDocument("u1", "https://files/receipt.pdf")
	require.NoError(t, err)

	view, err := svc.GetStatus("u1")
	require.NoError(t, err)
	assert.Equal(t, "Waiting for HR to approve your OPT Receipt", view.Message)

	_, err = svc.Approve(v.ID)
	require.NoError(t, err)

	view, err = svc.GetStatus("u1")
	require.NoError(t, err)
	assert.Equal(t, "Please upload a copy of your OPT EAD", view.Message)

	_, err = svc.SubmitDocument("u1", "https://files/ead.pdf")
	require.NoError(t, err)

	view, err = svc.GetStatus("u1")
	require.NoError(t, err)
	assert.Equal(t, "Waiting for HR to approve your OPT EAD", view.Message)
}

func TestSeedOPTReceipt(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.SeedOPTReceipt("u1", "https://files/receipt.pdf"))

	v, err := repo.GetByUserID("u1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, models.DocTypeOPTReceipt, v.CurrentStep)
	require.Len(t, v.Documents, 1)
	assert.Equal(t, models.DocTypeOPTReceipt, v.Documents[0].Type)
	assert.Equal(t, models.DocStatusPending, v.Documents[0].Status)
}

func TestInProgressApplicationsFiltersCompleted(t *testing.T) {
	repo := newMemVisaRepo()
	users := newMemUserRepo(
		&models.User{ID: "u1", Username: "alice", Email: "alice@example.com"},
		&models.User{ID: "u2", Username: "bob", Email: "bob@example.com"},
	)
	svc := &DefaultVisaService{Repo: repo, Users: users}

	// u1 is fully approved through I-20.
	done := &models.VisaApplication{
		ID: "v1", UserID: "u1", CurrentStep: models.DocTypeI20,
		Documents: []models.VisaDocument{
			{Type: models.DocTypeI20, Status: models.DocStatusApproved},
		},
	}
	require.NoError(t, repo.Create(done))

	// u2 still has a pending I-20.
	pending := &models.VisaApplication{
		ID: "v2", UserID: "u2", CurrentStep: models.DocTypeI20,
		Documents: []models.VisaDocument{
			{Type: models.DocTypeI20, Status: models.DocStatusPending},
		},
	}
	require.NoError(t, repo.Create(pending))

	inProgress, err := svc.InProgressApplications()
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "u2", inProgress[0].UserID)
	assert.Equal(t, "bob", inProgress[0].UserName)
	assert.Equal(t, "bob@example.com", inProgress[0].UserEmail)

	all, err := svc.AllApplications()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
