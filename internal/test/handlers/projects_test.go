package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptos-hunt-backend/internal/config"
	"aptos-hunt-backend/internal/handlers"
	"aptos-hunt-backend/internal/middleware"
	"aptos-hunt-backend/internal/models"
	"aptos-hunt-backend/internal/services"
	"aptos-hunt-backend/internal/store"
)

type fakeStore struct {
	projects  []models.Project
	listErr   error
	createErr error
	updateErr error
}

func (f *fakeStore) ListApproved(_ context.Context, limit int) ([]models.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Project
	for _, p := range f.projects {
		if p.Status == models.StatusApproved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByWallet(_ context.Context, wallet string, _ int) ([]models.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Project
	for _, p := range f.projects {
		if p.WalletAddress == wallet {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) GetBySlugOrID(_ context.Context, key string) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].Slug == key || f.projects[i].ID.String() == key {
			p := f.projects[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			p := f.projects[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *p
	created.ID = uuid.New()
	f.projects = append(f.projects, created)
	return &created, nil
}

func (f *fakeStore) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Project, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.projects {
		if f.projects[i].ID != id {
			continue
		}
		if s, ok := fields["tagline"].(string); ok {
			f.projects[i].Tagline = s
		}
		if s, ok := fields["name"].(string); ok {
			f.projects[i].Name = s
		}
		if s, ok := fields["logo_url"].(string); ok {
			f.projects[i].LogoURL = s
		}
		p := f.projects[i]
		return &p, nil
	}
	return nil, store.ErrNotFound
}

type fakeChain struct {
	octas uint64
	err   error
}

func (f *fakeChain) AccountBalance(context.Context, string) (uint64, error) {
	return f.octas, f.err
}

type fakeLogos struct{}

func (fakeLogos) UploadLogo(string, uuid.UUID, string, string, []byte) (string, error) {
	return "https://cdn.test/logo.png", nil
}

func testConfig() *config.Config {
	return &config.Config{
		SessionSecret: "test-secret-key-for-jwt-signing-must-be-long-enough",
		SessionTTL:    time.Hour,
	}
}

func newRouter(cfg *config.Config, fs *fakeStore, chain *fakeChain) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewProjectService(fs, chain, fakeLogos{}, 1000)
	sessionHandler := handlers.NewSessionHandler(cfg, svc)
	projectsHandler := handlers.NewProjectsHandler(svc)
	submissionsHandler := handlers.NewSubmissionsHandler(svc)
	myProjectsHandler := handlers.NewMyProjectsHandler(svc)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/projects", projectsHandler.Explore)
	api.GET("/projects/:slug", projectsHandler.Detail)
	api.POST("/session/connect", sessionHandler.Connect)

	session := api.Group("")
	session.Use(middleware.SessionMiddleware(cfg))
	session.GET("/wallet/balance", sessionHandler.Balance)
	session.POST("/projects/:slug/donate", projectsHandler.Donate)
	session.POST("/submissions", submissionsHandler.Submit)
	session.GET("/my/projects", myProjectsHandler.List)
	session.PATCH("/my/projects/:project_id", myProjectsHandler.Save)

	return router
}

func sessionToken(t *testing.T, cfg *config.Config, wallet string) string {
	t.Helper()
	token, _, err := middleware.IssueSessionToken(cfg, wallet, "Petra", models.NetworkTestnet)
	require.NoError(t, err)
	return token
}

func project(wallet, slug string, status models.Status, submitted time.Time) models.Project {
	return models.Project{
		ID:            uuid.New(),
		Slug:          slug,
		Name:          "Project " + slug,
		Tagline:       "Tagline for " + slug,
		Description:   "Description",
		WalletAddress: wallet,
		Network:       models.NetworkTestnet,
		SubmittedAt:   submitted,
		Status:        status,
	}
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExplore_OnlyApprovedProjects(t *testing.T) {
	now := time.Now().UTC()
	fs := &fakeStore{projects: []models.Project{
		project("0xa", "approved-one", models.StatusApproved, now),
		project("0xb", "pending-one", models.StatusPending, now),
		project("0xc", "rejected-one", models.StatusRejected, now),
	}}
	router := newRouter(testConfig(), fs, &fakeChain{})

	w := doJSON(router, "GET", "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExploreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "approved-one", resp.Projects[0].Slug)
}

func TestExplore_StoreFailureDegradesToEmptyList(t *testing.T) {
	fs := &fakeStore{listErr: errors.New("store down")}
	router := newRouter(testConfig(), fs, &fakeChain{})

	w := doJSON(router, "GET", "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExploreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Projects)
}

func TestDetail_BySlugAndByID(t *testing.T) {
	p := project("0xa", "my-dapp", models.StatusApproved, time.Now().UTC())
	fs := &fakeStore{projects: []models.Project{p}}
	router := newRouter(testConfig(), fs, &fakeChain{})

	w := doJSON(router, "GET", "/api/v1/projects/my-dapp", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "my-dapp")

	w = doJSON(router, "GET", "/api/v1/projects/"+p.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDetail_NotFound(t *testing.T) {
	router := newRouter(testConfig(), &fakeStore{}, &fakeChain{})

	w := doJSON(router, "GET", "/api/v1/projects/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "project not found")
}

func TestConnect_MintsSessionToken(t *testing.T) {
	router := newRouter(testConfig(), &fakeStore{}, &fakeChain{})

	w := doJSON(router, "POST", "/api/v1/session/connect", "", models.ConnectRequest{
		Address:    "0xABCD1234",
		WalletName: "Petra",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "0xABCD1234", resp.Address)
	assert.Equal(t, models.NetworkTestnet, resp.Network)
}

func TestConnect_RejectsBadAddress(t *testing.T) {
	router := newRouter(testConfig(), &fakeStore{}, &fakeChain{})

	for _, addr := range []string{"", "abcd", "0x", "0xZZZZ"} {
		w := doJSON(router, "POST", "/api/v1/session/connect", "", map[string]string{"address": addr})
		assert.Equal(t, http.StatusBadRequest, w.Code, "address %q", addr)
	}
}

func TestSubmit_EndToEnd(t *testing.T) {
	cfg := testConfig()
	fs := &fakeStore{}
	router := newRouter(cfg, fs, &fakeChain{octas: 250_000_000})
	token := sessionToken(t, cfg, "0xABCD1234")

	w := doJSON(router, "POST", "/api/v1/submissions", token, models.SubmitProjectRequest{
		Name:        "Aptos Bridge V2",
		Tagline:     "Bridge anything",
		Description: "A bridge between worlds.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.ProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "aptos-bridge-v2", resp.Slug)
	assert.Equal(t, string(models.StatusPending), resp.Status)
	assert.Equal(t, 2.5, resp.BalanceAPT)
	assert.Equal(t, "0xABCD1234", resp.WalletAddress)
	assert.True(t, resp.Editable)
}

func TestSubmit_RequiresSession(t *testing.T) {
	router := newRouter(testConfig(), &fakeStore{}, &fakeChain{})

	w := doJSON(router, "POST", "/api/v1/submissions", "", models.SubmitProjectRequest{
		Name: "No Session", Tagline: "t", Description: "d",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmit_MissingFieldsRejected(t *testing.T) {
	cfg := testConfig()
	router := newRouter(cfg, &fakeStore{}, &fakeChain{})
	token := sessionToken(t, cfg, "0xabc")

	w := doJSON(router, "POST", "/api/v1/submissions", token, map[string]string{"name": "Only Name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmit_StoreRejectionKeepsClientRetryable(t *testing.T) {
	cfg := testConfig()
	fs := &fakeStore{createErr: errors.New("field validation failed")}
	router := newRouter(cfg, fs, &fakeChain{})
	token := sessionToken(t, cfg, "0xabc")

	w := doJSON(router, "POST", "/api/v1/submissions", token, models.SubmitProjectRequest{
		Name: "Doomed", Tagline: "t", Description: "d",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "failed to submit project")
}

func TestMyProjects_EditableFlagFollowsStatus(t *testing.T) {
	cfg := testConfig()
	now := time.Now().UTC()
	wallet := "0xABCD1234"
	fs := &fakeStore{projects: []models.Project{
		project(wallet, "pending-a", models.StatusPending, now),
		project(wallet, "pending-b", models.StatusPending, now.Add(-time.Hour)),
		project(wallet, "approved-a", models.StatusApproved, now.Add(-2*time.Hour)),
	}}
	router := newRouter(cfg, fs, &fakeChain{})
	token := sessionToken(t, cfg, wallet)

	w := doJSON(router, "GET", "/api/v1/my/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProjectListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 3)

	editable := 0
	for _, p := range resp.Projects {
		if p.Editable {
			editable++
			assert.Equal(t, string(models.StatusPending), p.Status)
		}
	}
	assert.Equal(t, 2, editable)
}

func TestSave_ReturnsRefetchedPersistedValues(t *testing.T) {
	cfg := testConfig()
	wallet := "0xabc"
	p := project(wallet, "my-dapp", models.StatusPending, time.Now().UTC())
	fs := &fakeStore{projects: []models.Project{p}}
	router := newRouter(cfg, fs, &fakeChain{})
	token := sessionToken(t, cfg, wallet)

	w := doJSON(router, "PATCH", "/api/v1/my/projects/"+p.ID.String(), token, models.UpdateProjectRequest{
		Tagline: strptr("Persisted tagline"),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProjectListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "Persisted tagline", resp.Projects[0].Tagline)
}

func TestSave_NonPendingConflicts(t *testing.T) {
	cfg := testConfig()
	wallet := "0xabc"
	p := project(wallet, "frozen", models.StatusApproved, time.Now().UTC())
	fs := &fakeStore{projects: []models.Project{p}}
	router := newRouter(cfg, fs, &fakeChain{})
	token := sessionToken(t, cfg, wallet)

	w := doJSON(router, "PATCH", "/api/v1/my/projects/"+p.ID.String(), token, models.UpdateProjectRequest{
		Tagline: strptr("nope"),
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Tagline for frozen", fs.projects[0].Tagline)
}

func TestSave_FailedStoreWriteLeavesRecordUnchanged(t *testing.T) {
	cfg := testConfig()
	wallet := "0xabc"
	p := project(wallet, "my-dapp", models.StatusPending, time.Now().UTC())
	fs := &fakeStore{projects: []models.Project{p}, updateErr: errors.New("store down")}
	router := newRouter(cfg, fs, &fakeChain{})
	token := sessionToken(t, cfg, wallet)

	w := doJSON(router, "PATCH", "/api/v1/my/projects/"+p.ID.String(), token, models.UpdateProjectRequest{
		Tagline: strptr("typed but unsaved"),
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Tagline for my-dapp", fs.projects[0].Tagline)
}

func TestSave_ForeignRecordHidden(t *testing.T) {
	cfg := testConfig()
	p := project("0xowner", "theirs", models.StatusPending, time.Now().UTC())
	fs := &fakeStore{projects: []models.Project{p}}
	router := newRouter(cfg, fs, &fakeChain{})
	token := sessionToken(t, cfg, "0xattacker")

	w := doJSON(router, "PATCH", "/api/v1/my/projects/"+p.ID.String(), token, models.UpdateProjectRequest{
		Tagline: strptr("mine now"),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDonate_LogsIntentOnly(t *testing.T) {
	cfg := testConfig()
	p := project("0xowner", "my-dapp", models.StatusApproved, time.Now().UTC())
	fs := &fakeStore{projects: []models.Project{p}}
	router := newRouter(cfg, fs, &fakeChain{})
	token := sessionToken(t, cfg, "0xdonor")

	w := doJSON(router, "POST", "/api/v1/projects/my-dapp/donate", token, models.DonateRequest{Amount: 2.5})
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "donation intent recorded")
	// The record itself is untouched.
	assert.Equal(t, models.StatusApproved, fs.projects[0].Status)
}

func TestWalletBalance(t *testing.T) {
	cfg := testConfig()
	router := newRouter(cfg, &fakeStore{}, &fakeChain{octas: 250_000_000})
	token := sessionToken(t, cfg, "0xABCD1234")

	w := doJSON(router, "GET", "/api/v1/wallet/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2.5, resp.BalanceAPT)
	assert.Equal(t, "0xABCD1234", resp.Address)
}

func strptr(s string) *string { return &s }
