package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-portal/internal/auctionService"
	"auction-portal/internal/events"
	"auction-portal/internal/identity"
	model "auction-portal/internal/models"
	"auction-portal/internal/repository"
	"auction-portal/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-test-secret"

// SetupTestRouter initializes the router with an in-memory repository and a
// seeded tournament, players, teams and a registered user.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	seedRepo(t, repo)

	bus := events.NewBus()
	t.Cleanup(func() { bus.Close() })

	coordinator := auction.NewCoordinator(repo, bus)
	tokens := identity.NewService(testSecret, time.Hour)
	return server.SetupRouter(coordinator, repo, repo, tokens)
}

func seedRepo(t *testing.T, repo *repository.MemoryRepo) {
	t.Helper()

	require.NoError(t, repo.CreateOwner(model.TeamOwner{OwnerID: "owner1", Name: "A. Mehta", Email: "a.mehta@example.com"}))
	require.NoError(t, repo.CreateTeam(model.Team{TeamID: "team1", Name: "Northern Strikers", OwnerID: "owner1", Budget: decimal.NewFromInt(100000)}))
	require.NoError(t, repo.CreateTeam(model.Team{TeamID: "team2", Name: "Harbour Kings", OwnerID: "owner1", Budget: decimal.NewFromInt(100000)}))
	require.NoError(t, repo.CreatePlayer(model.Player{PlayerID: "player1", Name: "R. Sharma", Age: 27, Gender: "male", Role: "Batsman", SkillRating: 4, BasePrice: decimal.NewFromInt(1000)}))
	require.NoError(t, repo.CreatePlayer(model.Player{PlayerID: "player2", Name: "J. Fernandes", Age: 24, Gender: "male", Role: "Bowler", SkillRating: 3, BasePrice: decimal.NewFromInt(800)}))
	require.NoError(t, repo.CreateTournament(model.Tournament{
		TournamentID: "tournament1",
		Name:         "Premier League 2026",
		StartDate:    time.Now(),
		EndDate:      time.Now().Add(30 * 24 * time.Hour),
	}))
	require.NoError(t, repo.CreateUser(model.User{
		UserID:   "user1",
		UserName: "admin1",
		Email:    "admin1@example.com",
		Password: "admin",
		Role:     string(identity.RoleAdmin),
	}))
}

// LoginForToken logs the seeded user in and returns a bearer token.
func LoginForToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users/login", "", gin.H{
		"email":    "admin1@example.com",
		"password": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, token, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
