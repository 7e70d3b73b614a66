package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/api/models"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/api/transport"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/auth"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/roster"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/storage"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	teamsStorage  storage.TeamStorage
	votersStorage storage.VoterStorage
	roster        roster.Verifier
	tokens        *auth.Tokens
}

func NewUserController(teams storage.TeamStorage, voters storage.VoterStorage, verifier roster.Verifier, tokens *auth.Tokens) *UserController {
	return &UserController{
		teamsStorage:  teams,
		votersStorage: voters,
		roster:        verifier,
		tokens:        tokens,
	}
}

func (c *UserController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/user/login", c.login)
	engine.POST("/user/register", c.register)
	engine.GET("/user/logout", c.logout)

	group := engine.Group("/user", transport.UserAuthMiddleware(c.tokens))

	group.GET("/get-team", c.getTeam)
	group.GET("/get-all-team", c.getAllTeams)
	group.GET("/get-vote-team", c.getVote)
	group.PUT("/update-vote-team", c.updateVote)
}

// login godoc
// @Summary Student login
// @Description Fills the user session slot when a registered voter row matches the identity
// @Tags user
// @Accept json
// @Produce json
// @Param request body models.UserLoginRequest true "Student identity"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/login [get]
func (c *UserController) login(g *gin.Context) {
	var req models.UserLoginRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" || req.StudentID == "" {
		req.Name = g.Query("name")
		req.StudentID = g.Query("idStudent")
	}
	if req.Name == "" || req.StudentID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing name or idStudent"})
		return
	}

	_, err := c.votersStorage.Find(g.Request.Context(), req.Name, req.StudentID)
	if errors.Is(err, storage.ErrVoterNotFound) {
		logging.Log.Warnf("USER: rejected login for unregistered %q", req.Name)
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "not registered"})
		return
	}
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "storage failure"})
		return
	}

	token, err := c.tokens.Issue(auth.SessionClaims{Role: auth.RoleUser, Name: req.Name, StudentID: req.StudentID})
	if err != nil {
		logging.Log.Errorf("USER: failed to issue session token: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not issue session token"})
		return
	}

	transport.SetUserSlot(g, token, int(c.tokens.UserTTL/time.Second))
	logging.Log.Infof("USER: logged in %q", req.Name)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "logged in"})
}

// register godoc
// @Summary Register a student as a voter
// @Description Checks eligibility against the external roster before inserting the voter row
// @Tags user
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Student identity"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/register [post]
func (c *UserController) register(g *gin.Context) {
	var req models.RegisterRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" || req.StudentID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing name or idStudent"})
		return
	}

	eligible, err := c.roster.Verify(g.Request.Context(), req.Name, req.StudentID)
	if err != nil {
		logging.Log.Errorf("USER: roster check failed: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "roster check failed"})
		return
	}
	if !eligible {
		logging.Log.Warnf("USER: %q is not on the roster", req.Name)
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "not eligible"})
		return
	}

	voter := &storage.Voter{Name: req.Name, StudentID: req.StudentID}
	if err := c.votersStorage.Create(g.Request.Context(), voter); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not register voter"})
		return
	}
	g.JSON(http.StatusCreated, &models.MessageResponse{Message: "registered"})
}

// logout godoc
// @Summary Student logout
// @Tags user
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /user/logout [get]
func (c *UserController) logout(g *gin.Context) {
	transport.ClearUserSlot(g)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "logged out"})
}

// getTeam godoc
// @Summary Get one team
// @Tags user
// @Produce json
// @Param idTeam query int true "Team ID"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/get-team [get]
func (c *UserController) getTeam(g *gin.Context) {
	id, ok := intParam(g, "idTeam")
	if !ok {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing or invalid idTeam"})
		return
	}

	team, err := c.teamsStorage.Get(g.Request.Context(), id)
	if err != nil {
		respondStorageError(g, err, storage.ErrTeamNotFound)
		return
	}
	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// getAllTeams godoc
// @Summary List teams of a type
// @Tags user
// @Produce json
// @Param type query string true "Team type"
// @Success 200 {array} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/get-all-team [get]
func (c *UserController) getAllTeams(g *gin.Context) {
	teamType := g.Query("type")
	if teamType == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing type"})
		return
	}

	teams, err := c.teamsStorage.GetAllByType(g.Request.Context(), teamType, false)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not list teams"})
		return
	}
	g.JSON(http.StatusOK, models.TransformTeamsFromStorage(teams))
}

// getVote godoc
// @Summary Get the student's current vote
// @Tags user
// @Produce json
// @Success 200 {object} models.VoteResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/get-vote-team [get]
func (c *UserController) getVote(g *gin.Context) {
	claims := transport.Session(g)

	teamID, err := c.votersStorage.GetVote(g.Request.Context(), claims.Name, claims.StudentID)
	if err != nil {
		logging.Log.Errorf("USER: failed to read vote for %q: %v", claims.Name, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not read vote"})
		return
	}
	g.JSON(http.StatusOK, &models.VoteResponse{TeamID: teamID})
}

// updateVote godoc
// @Summary Cast or change the student's vote
// @Description Overwrites the current selection; voting twice keeps one row with the latest team
// @Tags user
// @Accept json
// @Produce json
// @Param request body models.UpdateVoteRequest true "Chosen team"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/update-vote-team [put]
func (c *UserController) updateVote(g *gin.Context) {
	var req models.UpdateVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.TeamID == 0 {
		if id, ok := intParam(g, "idTeam"); ok {
			req.TeamID = id
		}
	}
	if req.TeamID == 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing or invalid idTeam"})
		return
	}

	claims := transport.Session(g)
	if err := c.votersStorage.SetVote(g.Request.Context(), claims.Name, claims.StudentID, req.TeamID); err != nil {
		logging.Log.Errorf("USER: failed to set vote for %q: %v", claims.Name, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not update vote"})
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "vote updated"})
}
