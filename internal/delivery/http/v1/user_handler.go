package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(public, protected *gin.RouterGroup, upload gin.HandlerFunc, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	public.GET("/users/:userId", handler.GetProfile)

	me := protected.Group("/me")
	{
		me.GET("", handler.Me)
		me.PUT("", handler.UpdateProfile)
		me.PUT("/profile-pic", upload, handler.UpdateProfilePic)
		me.PUT("/resume", upload, handler.UpdateResume)
		me.POST("/skills", handler.AddSkill)
		me.DELETE("/skills", handler.DeleteSkill)
	}
}

type UpdateProfileRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,valid_phone"`
	Bio         string `json:"bio" binding:"omitempty,max=2000"`
}

// SkillRequest leaves blank names to the usecase so the message stays specific.
type SkillRequest struct {
	SkillName string `json:"skillName" binding:"omitempty,skill_name"`
}

type UpdatedProfileResponse struct {
	Message     string                 `json:"message"`
	UpdatedUser *domain.UpdatedProfile `json:"updatedUser"`
}

type UpdatedAssetResponse struct {
	Message     string               `json:"message"`
	UpdatedUser *domain.UpdatedAsset `json:"updatedUser"`
}

// GetUserProfile godoc
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  domain.UserProfile
// @Failure      400     {object}  response.Message
// @Failure      404     {object}  response.Message
// @Router       /users/{userId} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, err := pathID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.userUC.GetUserProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// MyProfile godoc
// @Summary      Get the caller's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Message
// @Router       /me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userUC.MyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update the caller's profile
// @Description  Omitted fields keep their current value
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200      {object}  UpdatedProfileResponse
// @Failure      400      {object}  response.Message
// @Failure      401      {object}  response.Message
// @Router       /me [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	updated, err := h.userUC.UpdateProfile(c.Request.Context(), domain.ProfileUpdate{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, UpdatedProfileResponse{Message: "Profile Updated successfully", UpdatedUser: updated})
}

// UpdateProfilePic godoc
// @Summary      Replace the caller's profile picture
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image"
// @Success      200   {object}  UpdatedAssetResponse
// @Failure      400   {object}  response.Message
// @Failure      429   {object}  response.Message
// @Router       /me/profile-pic [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfilePic(c *gin.Context) {
	file, err := formFile(c)
	if err != nil {
		c.Error(err)
		return
	}

	updated, err := h.userUC.UpdateProfilePic(c.Request.Context(), file)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, UpdatedAssetResponse{Message: "profile pic updated", UpdatedUser: updated})
}

// UpdateResume godoc
// @Summary      Replace the caller's resume
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF resume"
// @Success      200   {object}  UpdatedAssetResponse
// @Failure      400   {object}  response.Message
// @Failure      429   {object}  response.Message
// @Router       /me/resume [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateResume(c *gin.Context) {
	file, err := formFile(c)
	if err != nil {
		c.Error(err)
		return
	}

	updated, err := h.userUC.UpdateResume(c.Request.Context(), file)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, UpdatedAssetResponse{Message: "Resume updated", UpdatedUser: updated})
}

// AddSkill godoc
// @Summary      Add a skill to the caller
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        request  body      SkillRequest  true  "Skill"
// @Success      200      {object}  response.Message
// @Failure      400      {object}  response.Message
// @Router       /me/skills [post]
// @Security     BearerAuth
func (h *UserHandler) AddSkill(c *gin.Context) {
	var req SkillRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	msg, err := h.userUC.AddSkill(c.Request.Context(), req.SkillName)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, response.Message{Message: msg})
}

// DeleteSkill godoc
// @Summary      Remove a skill from the caller
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        request  body      SkillRequest  true  "Skill"
// @Success      200      {object}  response.Message
// @Failure      400      {object}  response.Message
// @Failure      404      {object}  response.Message
// @Router       /me/skills [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteSkill(c *gin.Context) {
	var req SkillRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	msg, err := h.userUC.DeleteSkill(c.Request.Context(), req.SkillName)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, response.Message{Message: msg})
}
