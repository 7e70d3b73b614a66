package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	testutils "github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/api/controllers/testing"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/api/transport"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/auth"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "super-secret"
	testMaxUploadSize = 1024
)

// In-memory fakes for the storage and roster collaborators. Each fake
// exposes error fields so tests can force a failing step.

type fakeTeamStorage struct {
	mu     sync.Mutex
	teams  map[int]*storage.Team
	nextID int

	getErr    error
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeTeamStorage() *fakeTeamStorage {
	return &fakeTeamStorage{teams: make(map[int]*storage.Team), nextID: 1}
}

func (f *fakeTeamStorage) Get(_ context.Context, id int) (*storage.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	team, ok := f.teams[id]
	if !ok {
		return nil, storage.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (f *fakeTeamStorage) GetAllByType(_ context.Context, teamType string, orderByVotes bool) ([]*storage.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var teams []*storage.Team
	for _, team := range f.teams {
		if team.Type == teamType {
			copied := *team
			teams = append(teams, &copied)
		}
	}
	sort.Slice(teams, func(i, j int) bool {
		if orderByVotes && teams[i].VoteCount != teams[j].VoteCount {
			return teams[i].VoteCount > teams[j].VoteCount
		}
		return teams[i].ID < teams[j].ID
	})
	return teams, nil
}

func (f *fakeTeamStorage) Create(_ context.Context, team *storage.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	team.ID = f.nextID
	f.nextID++
	copied := *team
	f.teams[team.ID] = &copied
	return nil
}

func (f *fakeTeamStorage) Update(_ context.Context, team *storage.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.teams[team.ID]; !ok {
		return storage.ErrTeamNotFound
	}
	copied := *team
	f.teams[team.ID] = &copied
	return nil
}

func (f *fakeTeamStorage) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.teams, id)
	return nil
}

type fakePictureStorage struct {
	mu       sync.Mutex
	pictures map[int]*storage.Picture
	nextID   int

	createErr error
	deleteErr error
}

func newFakePictureStorage() *fakePictureStorage {
	return &fakePictureStorage{pictures: make(map[int]*storage.Picture), nextID: 1}
}

func (f *fakePictureStorage) Get(_ context.Context, id int) (*storage.Picture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	picture, ok := f.pictures[id]
	if !ok {
		return nil, storage.ErrPictureNotFound
	}
	copied := *picture
	return &copied, nil
}

func (f *fakePictureStorage) GetAllByTeam(_ context.Context, teamID int) ([]*storage.Picture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var pictures []*storage.Picture
	for _, picture := range f.pictures {
		if picture.TeamID == teamID {
			copied := *picture
			pictures = append(pictures, &copied)
		}
	}
	sort.Slice(pictures, func(i, j int) bool { return pictures[i].ID < pictures[j].ID })
	return pictures, nil
}

func (f *fakePictureStorage) Create(_ context.Context, picture *storage.Picture) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	picture.ID = f.nextID
	f.nextID++
	copied := *picture
	f.pictures[picture.ID] = &copied
	return nil
}

func (f *fakePictureStorage) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.pictures, id)
	return nil
}

type fakeVoterStorage struct {
	mu     sync.Mutex
	voters map[string]*storage.Voter
	nextID int

	createErr error
	setErr    error
}

func newFakeVoterStorage() *fakeVoterStorage {
	return &fakeVoterStorage{voters: make(map[string]*storage.Voter), nextID: 1}
}

func voterKey(name, studentID string) string {
	return name + "|" + studentID
}

func (f *fakeVoterStorage) Find(_ context.Context, name, studentID string) (*storage.Voter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	voter, ok := f.voters[voterKey(name, studentID)]
	if !ok {
		return nil, storage.ErrVoterNotFound
	}
	copied := *voter
	return &copied, nil
}

func (f *fakeVoterStorage) Create(_ context.Context, voter *storage.Voter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	voter.ID = f.nextID
	f.nextID++
	copied := *voter
	f.voters[voterKey(voter.Name, voter.StudentID)] = &copied
	return nil
}

func (f *fakeVoterStorage) GetVote(_ context.Context, name, studentID string) (*int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	voter, ok := f.voters[voterKey(name, studentID)]
	if !ok {
		return nil, storage.ErrVoterNotFound
	}
	return voter.TeamID, nil
}

func (f *fakeVoterStorage) SetVote(_ context.Context, name, studentID string, teamID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	voter, ok := f.voters[voterKey(name, studentID)]
	if !ok {
		return storage.ErrVoterNotFound
	}
	voter.TeamID = &teamID
	return nil
}

func (f *fakeVoterStorage) countVotesFor(teamID int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, voter := range f.voters {
		if voter.TeamID != nil && *voter.TeamID == teamID {
			count++
		}
	}
	return count
}

type fakeBlobStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string

	putErr    error
	deleteErr error
}

func newFakeBlobStorage() *fakeBlobStorage {
	return &fakeBlobStorage{objects: make(map[string][]byte)}
}

func (f *fakeBlobStorage) Put(_ context.Context, name string, body io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return "", f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.objects[name] = data
	return fmt.Sprintf("https://blobs.test/%s", name), nil
}

func (f *fakeBlobStorage) Delete(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, name)
	f.deleted = append(f.deleted, name)
	return nil
}

func (f *fakeBlobStorage) has(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[name]
	return ok
}

type fakeRoster struct {
	entries [][3]string
	err     error
}

func (f *fakeRoster) Verify(_ context.Context, name, studentID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, entry := range f.entries {
		if entry[0] == name && (entry[1] == studentID || entry[2] == studentID) {
			return true, nil
		}
	}
	return false, nil
}

type testEnv struct {
	router   *gin.Engine
	tokens   *auth.Tokens
	teams    *fakeTeamStorage
	pictures *fakePictureStorage
	voters   *fakeVoterStorage
	blobs    *fakeBlobStorage
	roster   *fakeRoster
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logging.Log = logrus.New()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	env := &testEnv{
		tokens:   &auth.Tokens{Secret: []byte("test-secret"), AdminTTL: 20 * time.Minute, UserTTL: time.Hour},
		teams:    newFakeTeamStorage(),
		pictures: newFakePictureStorage(),
		voters:   newFakeVoterStorage(),
		blobs:    newFakeBlobStorage(),
		roster:   &fakeRoster{},
	}
	verifier := &auth.CredentialVerifier{
		AdminUsername:     testAdminUsername,
		AdminPasswordHash: string(hash),
	}

	gin.SetMode(gin.TestMode)
	env.router = gin.New()
	env.router.NoRoute(transport.NoRouteHandler())

	adminController := NewAdminController(env.teams, env.pictures, env.blobs, verifier, env.tokens, testMaxUploadSize)
	adminController.RegisterRoutes(env.router)
	userController := NewUserController(env.teams, env.voters, env.roster, env.tokens)
	userController.RegisterRoutes(env.router)

	return env
}

// loginAdmin walks through the real login route and returns the Cookie
// header to attach to protected requests.
func loginAdmin(t *testing.T, env *testEnv) map[string]string {
	t.Helper()
	res := testutils.PerformRequest(env.router, http.MethodGet, "/admin/login",
		map[string]string{"username": testAdminUsername, "password": testAdminPassword}, nil)
	require.Equal(t, http.StatusOK, res.Code, "admin login should succeed")
	return map[string]string{"Cookie": cookieHeader(t, res, transport.AdminTokenCookie)}
}

func loginUser(t *testing.T, env *testEnv, name, studentID string) map[string]string {
	t.Helper()
	res := testutils.PerformRequest(env.router, http.MethodGet, "/user/login",
		map[string]string{"name": name, "idStudent": studentID}, nil)
	require.Equal(t, http.StatusOK, res.Code, "user login should succeed")
	return map[string]string{"Cookie": cookieHeader(t, res, transport.UserTokenCookie)}
}

func cookieHeader(t *testing.T, res *httptest.ResponseRecorder, name string) string {
	t.Helper()
	for _, cookie := range res.Result().Cookies() {
		if cookie.Name == name && cookie.Value != "" {
			var buf bytes.Buffer
			fmt.Fprintf(&buf, "%s=%s", cookie.Name, cookie.Value)
			return buf.String()
		}
	}
	t.Fatalf("response carries no %s cookie", name)
	return ""
}

func registerVoter(t *testing.T, env *testEnv, name, studentID string) {
	t.Helper()
	env.roster.entries = append(env.roster.entries, [3]string{name, studentID, "alt-" + studentID})
	res := testutils.PerformRequest(env.router, http.MethodPost, "/user/register",
		map[string]string{"name": name, "idStudent": studentID}, nil)
	require.Equal(t, http.StatusCreated, res.Code, "registration should succeed")
}

func seedTeam(t *testing.T, env *testEnv, team *storage.Team) *storage.Team {
	t.Helper()
	require.NoError(t, env.teams.Create(context.Background(), team))
	return team
}
