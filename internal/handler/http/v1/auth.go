package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_management_system/internal/models"
)

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, maxAge, "/", "", c.Request.TLS != nil, true)
}

// @Summary Register a new account
// @Description Creates a regular user, sets the session cookie and returns the token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Account"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	log := h.logger.WithField("method", "register")

	var input RegisterRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	user, token, err := h.services.Auth.Register(c.Request.Context(), models.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}

	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))
	c.JSON(http.StatusCreated, AuthResponse{Success: true, User: ModelToUserResponse(user), Token: token})
}

// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	log := h.logger.WithField("method", "login")

	var input LoginRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	user, token, err := h.services.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, log, err)
		return
	}

	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))
	c.JSON(http.StatusOK, AuthResponse{Success: true, User: ModelToUserResponse(user), Token: token})
}

// @Summary Current user
// @Description Returns {"user": null} when there is no valid session.
// @Tags Auth
// @Produce json
// @Success 200 {object} MeResponse
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	log := h.logger.WithField("method", "me")

	session, err := h.resolveSession(c)
	if err != nil {
		c.JSON(http.StatusOK, MeResponse{})
		return
	}

	user, err := h.services.Auth.Me(c.Request.Context(), session.UserID)
	if err != nil {
		log.WithError(err).Warn("Session does not resolve to a user")
		c.JSON(http.StatusOK, MeResponse{})
		return
	}
	c.JSON(http.StatusOK, MeResponse{User: ModelToUserResponse(user)})
}

// @Summary Log out
// @Description Clears the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
