package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.POST("/applications", handler.Apply)
	protected.PUT("/applications/:applicationId", handler.UpdateStatus)
	protected.GET("/me/applications", handler.ListMine)
}

type ApplyRequest struct {
	JobID int64 `json:"job_id"`
}

// UpdateApplicationRequest is checked by the usecase once the caller is known
// to own the job.
type UpdateApplicationRequest struct {
	Status string `json:"status"`
}

type ApplicationResponse struct {
	Message     string              `json:"message"`
	Application *domain.Application `json:"application"`
}

type UpdatedApplicationResponse struct {
	Message            string              `json:"message"`
	UpdatedApplication *domain.Application `json:"updatedApplication"`
}

// ApplyForJob godoc
// @Summary      Apply for a job
// @Description  Submit an application with the resume on the caller's profile (jobseeker only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        request  body      ApplyRequest  true  "Job to apply for"
// @Success      200      {object}  ApplicationResponse
// @Failure      400      {object}  response.Message
// @Failure      403      {object}  response.Message
// @Failure      404      {object}  response.Message
// @Failure      409      {object}  response.Message
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	req := decodeJSON[ApplyRequest](c)

	app, err := h.applicationUC.Apply(c.Request.Context(), req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, ApplicationResponse{Message: "Applied for job successfully", Application: app})
}

// UpdateApplication godoc
// @Summary      Update application status
// @Description  Move an application along its status workflow (posting recruiter only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        applicationId  path      int                       true  "Application ID"
// @Param        request        body      UpdateApplicationRequest  true  "New status"
// @Success      200            {object}  UpdatedApplicationResponse
// @Failure      400            {object}  response.Message
// @Failure      403            {object}  response.Message
// @Failure      404            {object}  response.Message
// @Failure      409            {object}  response.Message
// @Router       /applications/{applicationId} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "applicationId")
	if err != nil {
		c.Error(err)
		return
	}

	req := decodeJSON[UpdateApplicationRequest](c)

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, UpdatedApplicationResponse{Message: "Application updated", UpdatedApplication: app})
}

// ListMyApplications godoc
// @Summary      List my applications
// @Description  The caller's applications with job title, salary and location, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {array}   domain.ApplicationWithJob
// @Failure      401  {object}  response.Message
// @Router       /me/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationUC.ListMine(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, apps)
}
