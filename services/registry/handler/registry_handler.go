package handler

import (
	"net/http"

	"auction-portal/internal/auctionerrors"
	"auction-portal/internal/identity"
	model "auction-portal/internal/models"
	"auction-portal/services/auction/helpers"
	"auction-portal/utils"

	"github.com/gin-gonic/gin"
)

// RegistryStore is the CRUD persistence behind the reference entities. The
// auction engine only ever reads these; their lifecycle is plain glue.
type RegistryStore interface {
	CreatePlayer(player model.Player) error
	GetPlayer(playerID string) (model.Player, error)
	UpdatePlayer(player model.Player) error
	DeletePlayer(playerID string) error
	ListPlayers() ([]model.Player, error)

	CreateTeam(team model.Team) error
	GetTeam(teamID string) (model.Team, error)
	UpdateTeam(team model.Team) error
	DeleteTeam(teamID string) error
	ListTeams() ([]model.Team, error)

	CreateTournament(tournament model.Tournament) error
	GetTournament(tournamentID string) (model.Tournament, error)
	ListTournaments() ([]model.Tournament, error)

	CreateOwner(owner model.TeamOwner) error
	GetOwner(ownerID string) (model.TeamOwner, error)
	UpdateOwner(owner model.TeamOwner) error
	ListOwners() ([]model.TeamOwner, error)

	CreateUser(user model.User) error
	GetUserByEmail(email string) (model.User, error)
}

type RegistryHandler struct {
	store  RegistryStore
	tokens identity.Service
}

func NewRegistryHandler(store RegistryStore, tokens identity.Service) *RegistryHandler {
	return &RegistryHandler{store: store, tokens: tokens}
}

// --- Users ---

// RegisterUserHandler handles POST /users/register
func (h *RegistryHandler) RegisterUserHandler(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	user := model.User{
		UserID:   utils.GenerateID(),
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	if user.Role == "" {
		user.Role = string(identity.RoleViewer)
	}
	if err := h.store.CreateUser(user); err != nil {
		helpers.RespondError(c, "RegisterUserHandler", err)
		return
	}

	user.Password = ""
	utils.JSONResponse(c, http.StatusCreated, user, "user registered successfully")
	helpers.LogSuccess("RegisterUserHandler", "user registered successfully", map[string]any{
		"user_id": user.UserID,
		"email":   user.Email,
	})
}

// LoginUserHandler handles POST /users/login and issues the JWT every
// mutating call must carry. Credentials are matched verbatim; hashing is
// outside this service.
func (h *RegistryHandler) LoginUserHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginUserHandler", err)
		return
	}

	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		helpers.RespondError(c, "LoginUserHandler", err)
		return
	}
	if user.Password != req.Password {
		helpers.RespondError(c, "LoginUserHandler", auctionerrors.ErrUnauthorized)
		return
	}

	token, err := h.tokens.GenerateToken(user.UserID, user.UserName, identity.Role(user.Role))
	if err != nil {
		helpers.RespondError(c, "LoginUserHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"token": token, "user_id": user.UserID}, "login successful")
	helpers.LogSuccess("LoginUserHandler", "login successful", map[string]any{"user_id": user.UserID})
}

// --- Players ---

// CreatePlayerHandler handles POST /players
func (h *RegistryHandler) CreatePlayerHandler(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreatePlayerHandler", err)
		return
	}

	player := model.Player{
		PlayerID:     utils.GenerateID(),
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		Role:         req.Role,
		BattingOrder: req.BattingOrder,
		BattingHand:  req.BattingHand,
		BowlingHand:  req.BowlingHand,
		SkillRating:  req.SkillRating,
		BasePrice:    req.BasePrice,
	}
	if err := h.store.CreatePlayer(player); err != nil {
		helpers.RespondError(c, "CreatePlayerHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, player, "player created successfully")
}

// GetPlayerHandler handles GET /players/:player_id
func (h *RegistryHandler) GetPlayerHandler(c *gin.Context) {
	player, err := h.store.GetPlayer(c.Param("player_id"))
	if err != nil {
		helpers.RespondError(c, "GetPlayerHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, player, "player fetched successfully")
}

// ListPlayersHandler handles GET /players
func (h *RegistryHandler) ListPlayersHandler(c *gin.Context) {
	players, err := h.store.ListPlayers()
	if err != nil {
		helpers.RespondError(c, "ListPlayersHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, players, "players fetched successfully")
}

// UpdatePlayerHandler handles PUT /players/:player_id
func (h *RegistryHandler) UpdatePlayerHandler(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePlayerHandler", err)
		return
	}

	playerID := c.Param("player_id")
	existing, err := h.store.GetPlayer(playerID)
	if err != nil {
		helpers.RespondError(c, "UpdatePlayerHandler", err)
		return
	}

	existing.Name = req.Name
	existing.Age = req.Age
	existing.Gender = req.Gender
	existing.Role = req.Role
	existing.BattingOrder = req.BattingOrder
	existing.BattingHand = req.BattingHand
	existing.BowlingHand = req.BowlingHand
	existing.SkillRating = req.SkillRating
	existing.BasePrice = req.BasePrice
	if err := h.store.UpdatePlayer(existing); err != nil {
		helpers.RespondError(c, "UpdatePlayerHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, existing, "player updated successfully")
}

// DeletePlayerHandler handles DELETE /players/:player_id
func (h *RegistryHandler) DeletePlayerHandler(c *gin.Context) {
	if err := h.store.DeletePlayer(c.Param("player_id")); err != nil {
		helpers.RespondError(c, "DeletePlayerHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "player deleted successfully")
}

// --- Teams ---

// CreateTeamHandler handles POST /teams
func (h *RegistryHandler) CreateTeamHandler(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateTeamHandler", err)
		return
	}

	team := model.Team{
		TeamID:  utils.GenerateID(),
		Name:    req.Name,
		OwnerID: req.OwnerID,
		Logo:    req.Logo,
		Budget:  req.Budget,
	}
	if err := h.store.CreateTeam(team); err != nil {
		helpers.RespondError(c, "CreateTeamHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, team, "team created successfully")
}

// GetTeamHandler handles GET /teams/:team_id
func (h *RegistryHandler) GetTeamHandler(c *gin.Context) {
	team, err := h.store.GetTeam(c.Param("team_id"))
	if err != nil {
		helpers.RespondError(c, "GetTeamHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, team, "team fetched successfully")
}

// ListTeamsHandler handles GET /teams
func (h *RegistryHandler) ListTeamsHandler(c *gin.Context) {
	teams, err := h.store.ListTeams()
	if err != nil {
		helpers.RespondError(c, "ListTeamsHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, teams, "teams fetched successfully")
}

// UpdateTeamHandler handles PUT /teams/:team_id
func (h *RegistryHandler) UpdateTeamHandler(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateTeamHandler", err)
		return
	}

	existing, err := h.store.GetTeam(c.Param("team_id"))
	if err != nil {
		helpers.RespondError(c, "UpdateTeamHandler", err)
		return
	}

	existing.Name = req.Name
	existing.OwnerID = req.OwnerID
	existing.Logo = req.Logo
	existing.Budget = req.Budget
	if err := h.store.UpdateTeam(existing); err != nil {
		helpers.RespondError(c, "UpdateTeamHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, existing, "team updated successfully")
}

// DeleteTeamHandler handles DELETE /teams/:team_id
func (h *RegistryHandler) DeleteTeamHandler(c *gin.Context) {
	if err := h.store.DeleteTeam(c.Param("team_id")); err != nil {
		helpers.RespondError(c, "DeleteTeamHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "team deleted successfully")
}

// --- Tournaments ---

// CreateTournamentHandler handles POST /tournaments
func (h *RegistryHandler) CreateTournamentHandler(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateTournamentHandler", err)
		return
	}

	tournament := model.Tournament{
		TournamentID: utils.GenerateID(),
		Name:         req.Name,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := h.store.CreateTournament(tournament); err != nil {
		helpers.RespondError(c, "CreateTournamentHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, tournament, "tournament created successfully")
}

// GetTournamentHandler handles GET /tournaments/:tournament_id
func (h *RegistryHandler) GetTournamentHandler(c *gin.Context) {
	tournament, err := h.store.GetTournament(c.Param("tournament_id"))
	if err != nil {
		helpers.RespondError(c, "GetTournamentHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, tournament, "tournament fetched successfully")
}

// ListTournamentsHandler handles GET /tournaments
func (h *RegistryHandler) ListTournamentsHandler(c *gin.Context) {
	tournaments, err := h.store.ListTournaments()
	if err != nil {
		helpers.RespondError(c, "ListTournamentsHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, tournaments, "tournaments fetched successfully")
}

// --- Team owners ---

// CreateOwnerHandler handles POST /owners
func (h *RegistryHandler) CreateOwnerHandler(c *gin.Context) {
	var req CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateOwnerHandler", err)
		return
	}

	owner := model.TeamOwner{
		OwnerID: utils.GenerateID(),
		Name:    req.Name,
		Email:   req.Email,
		Points:  req.Points,
	}
	if err := h.store.CreateOwner(owner); err != nil {
		helpers.RespondError(c, "CreateOwnerHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, owner, "team owner created successfully")
}

// GetOwnerHandler handles GET /owners/:owner_id
func (h *RegistryHandler) GetOwnerHandler(c *gin.Context) {
	owner, err := h.store.GetOwner(c.Param("owner_id"))
	if err != nil {
		helpers.RespondError(c, "GetOwnerHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, owner, "team owner fetched successfully")
}

// ListOwnersHandler handles GET /owners
func (h *RegistryHandler) ListOwnersHandler(c *gin.Context) {
	owners, err := h.store.ListOwners()
	if err != nil {
		helpers.RespondError(c, "ListOwnersHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, owners, "team owners fetched successfully")
}

// UpdateOwnerHandler handles PUT /owners/:owner_id
func (h *RegistryHandler) UpdateOwnerHandler(c *gin.Context) {
	var req CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateOwnerHandler", err)
		return
	}

	existing, err := h.store.GetOwner(c.Param("owner_id"))
	if err != nil {
		helpers.RespondError(c, "UpdateOwnerHandler", err)
		return
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Points = req.Points
	if err := h.store.UpdateOwner(existing); err != nil {
		helpers.RespondError(c, "UpdateOwnerHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, existing, "team owner updated successfully")
}
