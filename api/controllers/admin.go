package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/api/models"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/api/transport"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/auth"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/logging"
	"github.com/ITB-Innovators-Move/inmove-2022-exhibition-page/storage"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	teamsStorage    storage.TeamStorage
	picturesStorage storage.PictureStorage
	blobStorage     storage.BlobStorage
	verifier        *auth.CredentialVerifier
	tokens          *auth.Tokens
	maxUploadBytes  int64
}

func NewAdminController(teams storage.TeamStorage, pictures storage.PictureStorage, blobs storage.BlobStorage,
	verifier *auth.CredentialVerifier, tokens *auth.Tokens, maxUploadBytes int64) *AdminController {
	return &AdminController{
		teamsStorage:    teams,
		picturesStorage: pictures,
		blobStorage:     blobs,
		verifier:        verifier,
		tokens:          tokens,
		maxUploadBytes:  maxUploadBytes,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/admin/login", c.login)
	engine.GET("/admin/logout", c.logout)

	group := engine.Group("/admin", transport.AdminAuthMiddleware(c.tokens))

	group.GET("/get-team", c.getTeam)
	group.GET("/get-all-team", c.getAllTeams)
	group.POST("/upload-team", c.uploadTeam)
	group.DELETE("/delete-team", c.deleteTeam)
	group.PUT("/update-team", c.updateTeam)
	group.GET("/get-picture", c.getPictures)
	group.POST("/upload-picture", c.uploadPicture)
	group.DELETE("/delete-picture", c.deletePicture)
}

// login godoc
// @Summary Admin login
// @Description Verifies the static admin credentials and fills the admin session slot
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/login [get]
func (c *AdminController) login(g *gin.Context) {
	var req models.AdminLoginRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		req.Username = g.Query("username")
		req.Password = g.Query("password")
	}
	if req.Username == "" || req.Password == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing username or password"})
		return
	}

	ok, err := c.verifier.VerifyAdmin(req.Username, req.Password)
	if err != nil {
		logging.Log.Errorf("ADMIN: credential check failed: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "credential check failed"})
		return
	}
	if !ok {
		logging.Log.Warnf("ADMIN: rejected login for username %q", req.Username)
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	token, err := c.tokens.Issue(auth.SessionClaims{Role: auth.RoleAdmin, Username: req.Username})
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to issue session token: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not issue session token"})
		return
	}

	// The two slots are mutually exclusive: elevating to admin drops
	// any user session the browser still holds.
	transport.SetAdminSlot(g, token, int(c.tokens.AdminTTL/time.Second))
	transport.ClearUserSlot(g)

	logging.Log.Infof("ADMIN: logged in as %q", req.Username)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "logged in"})
}

// logout godoc
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /admin/logout [get]
func (c *AdminController) logout(g *gin.Context) {
	transport.ClearAdminSlot(g)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "logged out"})
}

// getTeam godoc
// @Summary Get one team with its vote count
// @Tags admin
// @Produce json
// @Param idTeam query int true "Team ID"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/get-team [get]
func (c *AdminController) getTeam(g *gin.Context) {
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
// @Summary List teams of a type, most voted first
// @Tags admin
// @Produce json
// @Param type query string true "Team type"
// @Success 200 {array} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/get-all-team [get]
func (c *AdminController) getAllTeams(g *gin.Context) {
	teamType := g.Query("type")
	if teamType == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing type"})
		return
	}

	teams, err := c.teamsStorage.GetAllByType(g.Request.Context(), teamType, true)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not list teams"})
		return
	}

	logging.Log.Infof("ADMIN: listed %d teams of type %q", len(teams), teamType)
	g.JSON(http.StatusOK, models.TransformTeamsFromStorage(teams))
}

// uploadTeam godoc
// @Summary Create a team with a header image
// @Description Writes the image blob first, then the team row. A row insert failure triggers a compensating blob delete.
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param name formData string true "Name"
// @Param type formData string true "Type"
// @Param description formData string true "Description"
// @Param file formData file true "Header image"
// @Success 201 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/upload-team [post]
func (c *AdminController) uploadTeam(g *gin.Context) {
	title := g.PostForm("title")
	name := g.PostForm("name")
	teamType := g.PostForm("type")
	description := g.PostForm("description")
	if title == "" || name == "" || teamType == "" || description == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing required fields"})
		return
	}

	file, err := g.FormFile("file")
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing or empty file"})
		return
	}

	imageURL, ok := c.putBlob(g, file)
	if !ok {
		return
	}

	team := &storage.Team{
		Title:       title,
		Name:        name,
		Type:        teamType,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := c.teamsStorage.Create(g.Request.Context(), team); err != nil {
		// The blob is already in the store; compensate so the failed
		// create leaves no orphan behind.
		c.compensateBlob(g, file.Filename)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create team"})
		return
	}

	logging.Log.Infof("ADMIN: created team %d (%q)", team.ID, team.Title)
	g.JSON(http.StatusCreated, models.TransformTeamFromStorage(team))
}

// deleteTeam godoc
// @Summary Delete a team and its header image
// @Description The blob delete runs first; if it fails the row is kept so no row points at a missing blob.
// @Tags admin
// @Produce json
// @Param idTeam query int true "Team ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/delete-team [delete]
func (c *AdminController) deleteTeam(g *gin.Context) {
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

	if team.ImageURL != "" {
		if err := c.blobStorage.Delete(g.Request.Context(), storage.BlobNameFromURL(team.ImageURL)); err != nil {
			logging.Log.Errorf("ADMIN: blob delete failed for team %d, keeping row: %v", id, err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete team image"})
			return
		}
	}

	if err := c.teamsStorage.Delete(g.Request.Context(), id); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete team"})
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "team deleted"})
}

// updateTeam godoc
// @Summary Update a team, optionally replacing its header image
// @Description With a file: old blob delete, new blob write, row update, in that order. Without a file only the row changes.
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param idTeam formData int true "Team ID"
// @Param title formData string true "Title"
// @Param name formData string true "Name"
// @Param type formData string true "Type"
// @Param description formData string true "Description"
// @Param file formData file false "Replacement header image"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/update-team [put]
func (c *AdminController) updateTeam(g *gin.Context) {
	id, ok := intFormField(g, "idTeam")
	if !ok {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing or invalid idTeam"})
		return
	}
	title := g.PostForm("title")
	name := g.PostForm("name")
	teamType := g.PostForm("type")
	description := g.PostForm("description")
	if title == "" || name == "" || teamType == "" || description == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing required fields"})
		return
	}

	team, err := c.teamsStorage.Get(g.Request.Context(), id)
	if err != nil {
		respondStorageError(g, err, storage.ErrTeamNotFound)
		return
	}

	imageURL := team.ImageURL
	if file, err := g.FormFile("file"); err == nil {
		if team.ImageURL != "" {
			if err := c.blobStorage.Delete(g.Request.Context(), storage.BlobNameFromURL(team.ImageURL)); err != nil {
				logging.Log.Errorf("ADMIN: old blob delete failed for team %d: %v", id, err)
				g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not replace team image"})
				return
			}
		}
		imageURL, ok = c.putBlob(g, file)
		if !ok {
			return
		}
	}

	updated := &storage.Team{
		ID:          id,
		Title:       title,
		Name:        name,
		Type:        teamType,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := c.teamsStorage.Update(g.Request.Context(), updated); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not update team"})
		return
	}

	logging.Log.Infof("ADMIN: updated team %d", id)
	g.JSON(http.StatusOK, models.TransformTeamFromStorage(updated))
}

// getPictures godoc
// @Summary List gallery pictures of a team
// @Tags admin
// @Produce json
// @Param idTeam query int true "Team ID"
// @Success 200 {array} models.PictureResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/get-picture [get]
func (c *AdminController) getPictures(g *gin.Context) {
	id, ok := intParam(g, "idTeam")
	if !ok {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing or invalid idTeam"})
		return
	}

	pictures, err := c.picturesStorage.GetAllByTeam(g.Request.Context(), id)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not list pictures"})
		return
	}
	g.JSON(http.StatusOK, models.TransformPicturesFromStorage(pictures))
}

// uploadPicture godoc
// @Summary Add a gallery picture to a team
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param idTeam formData int true "Team ID"
// @Param file formData file true "Picture"
// @Success 201 {object} models.PictureResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/upload-picture [post]
func (c *AdminController) uploadPicture(g *gin.Context) {
	id, ok := intFormField(g, "idTeam")
	if !ok {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing or invalid idTeam"})
		return
	}
	file, err := g.FormFile("file")
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing or empty file"})
		return
	}

	imageURL, ok := c.putBlob(g, file)
	if !ok {
		return
	}

	picture := &storage.Picture{TeamID: id, ImageURL: imageURL}
	if err := c.picturesStorage.Create(g.Request.Context(), picture); err != nil {
		c.compensateBlob(g, file.Filename)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create picture"})
		return
	}

	logging.Log.Infof("ADMIN: created picture %d for team %d", picture.ID, id)
	g.JSON(http.StatusCreated, models.TransformPictureFromStorage(picture))
}

// deletePicture godoc
// @Summary Delete a gallery picture
// @Tags admin
// @Produce json
// @Param idPicture query int true "Picture ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/delete-picture [delete]
func (c *AdminController) deletePicture(g *gin.Context) {
	id, ok := intParam(g, "idPicture")
	if !ok {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing or invalid idPicture"})
		return
	}

	picture, err := c.picturesStorage.Get(g.Request.Context(), id)
	if err != nil {
		respondStorageError(g, err, storage.ErrPictureNotFound)
		return
	}

	if err := c.blobStorage.Delete(g.Request.Context(), storage.BlobNameFromURL(picture.ImageURL)); err != nil {
		logging.Log.Errorf("ADMIN: blob delete failed for picture %d, keeping row: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete picture image"})
		return
	}

	if err := c.picturesStorage.Delete(g.Request.Context(), id); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete picture"})
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "picture deleted"})
}

// putBlob streams an uploaded file into the blob store and returns its
// public URL. It writes the error response itself; the bool reports
// whether the caller may continue. Oversized uploads are rejected
// before any store traffic.
func (c *AdminController) putBlob(g *gin.Context, file *multipart.FileHeader) (string, bool) {
	if file.Size == 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "missing or empty file"})
		return "", false
	}
	if file.Size > c.maxUploadBytes {
		logging.Log.Warnf("ADMIN: rejected oversized upload %q (%d bytes)", file.Filename, file.Size)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "file exceeds maximum upload size"})
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to open uploaded file %q: %v", file.Filename, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not read uploaded file"})
		return "", false
	}
	defer src.Close()

	url, err := c.blobStorage.Put(g.Request.Context(), filepath.Base(file.Filename), src)
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not store uploaded file"})
		return "", false
	}
	return url, true
}

// compensateBlob removes a blob written by a create whose row insert
// failed. Best effort; a failure here is logged and leaves an orphan
// blob, never a dangling row.
func (c *AdminController) compensateBlob(g *gin.Context, filename string) {
	name := filepath.Base(filename)
	if err := c.blobStorage.Delete(g.Request.Context(), name); err != nil {
		logging.Log.Errorf("ADMIN: compensating blob delete failed for %q: %v", name, err)
	}
}

func respondStorageError(g *gin.Context, err error, notFound error) {
	if errors.Is(err, notFound) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: notFound.Error()})
		return
	}
	g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "storage failure"})
}

func intParam(g *gin.Context, name string) (int, bool) {
	raw := g.Query(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func intFormField(g *gin.Context, name string) (int, bool) {
	raw := g.PostForm(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
