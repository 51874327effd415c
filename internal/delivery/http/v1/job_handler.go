package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type JobHandler struct {
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewJobHandler(public, protected *gin.RouterGroup, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &JobHandler{jobUC: jobUC, applicationUC: applicationUC}

	// Anyone can browse active jobs
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/:jobId", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:jobId", handler.Update)
		protectedJobs.GET("/:jobId/applications", handler.ListApplications)
		protectedJobs.GET("/:jobId/applications/export", handler.ExportApplications)
	}
}

// CreateJobRequest is checked by the usecase after the role gate, so a
// jobseeker is refused before any field is looked at.
type CreateJobRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Salary       float64 `json:"salary"`
	Location     string  `json:"location"`
	Role         string  `json:"role"`
	JobType      string  `json:"job_type"`
	WorkLocation string  `json:"work_location"`
	CompanyID    int64   `json:"company_id"`
	Openings     int     `json:"openings"`
}

// UpdateJobRequest is partial; omitted fields keep their stored value.
type UpdateJobRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Salary       *float64 `json:"salary"`
	Location     *string  `json:"location"`
	Role         *string  `json:"role"`
	JobType      *string  `json:"job_type"`
	WorkLocation *string  `json:"work_location"`
	Openings     *int     `json:"openings"`
	IsActive     *bool    `json:"is_active"`
}

type JobResponse struct {
	Message string      `json:"message"`
	Job     *domain.Job `json:"job"`
}

// CreateJob godoc
// @Summary      Create a new job
// @Description  Post a job under one of the caller's companies (recruiter only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      200  {object}  JobResponse
// @Failure      400  {object}  response.Message
// @Failure      403  {object}  response.Message
// @Failure      404  {object}  response.Message
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	req := decodeJSON[CreateJobRequest](c)

	job, err := h.jobUC.CreateJob(c.Request.Context(), domain.JobInput{
		Title:        req.Title,
		Description:  req.Description,
		Salary:       req.Salary,
		Location:     req.Location,
		Role:         req.Role,
		JobType:      req.JobType,
		WorkLocation: req.WorkLocation,
		CompanyID:    req.CompanyID,
		Openings:     req.Openings,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, JobResponse{Message: "Job posted successfully", Job: job})
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Partially update a job posted by the caller
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId  path      int               true  "Job ID"
// @Param        job    body      UpdateJobRequest  true  "Fields to change"
// @Success      200    {object}  JobResponse
// @Failure      400    {object}  response.Message
// @Failure      403    {object}  response.Message
// @Failure      404    {object}  response.Message
// @Router       /jobs/{jobId} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c, "jobId")
	if err != nil {
		c.Error(err)
		return
	}

	req := decodeJSON[UpdateJobRequest](c)

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, domain.JobPatch{
		Title:        req.Title,
		Description:  req.Description,
		Salary:       req.Salary,
		Location:     req.Location,
		Role:         req.Role,
		JobType:      req.JobType,
		WorkLocation: req.WorkLocation,
		Openings:     req.Openings,
		IsActive:     req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, JobResponse{Message: "Job updated successfully", Job: job})
}

// SearchJobs godoc
// @Summary      Search active jobs
// @Description  Active jobs with company name and logo, newest first
// @Tags         jobs
// @Produce      json
// @Param        title     query     string  false  "Title contains (case-insensitive)"
// @Param        location  query     string  false  "Location contains (case-insensitive)"
// @Success      200       {array}   domain.JobWithCompany
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), domain.JobFilter{
		Title:    c.Query("title"),
		Location: c.Query("location"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

// GetJob godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  domain.Job
// @Failure      400    {object}  response.Message
// @Failure      404    {object}  response.Message
// @Router       /jobs/{jobId} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c, "jobId")
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// ListApplications godoc
// @Summary      List applications for a job
// @Description  Subscribed applicants first, then earliest applications (posting recruiter only)
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {array}   domain.Application
// @Failure      403    {object}  response.Message
// @Failure      404    {object}  response.Message
// @Router       /jobs/{jobId}/applications [get]
// @Security     BearerAuth
func (h *JobHandler) ListApplications(c *gin.Context) {
	id, err := pathID(c, "jobId")
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.applicationUC.ListForJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, apps)
}

// ExportApplications godoc
// @Summary      Export applications for a job
// @Description  Download the job's applications as an Excel workbook (posting recruiter only)
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        jobId  path  int  true  "Job ID"
// @Success      200    {file}    binary
// @Failure      403    {object}  response.Message
// @Failure      404    {object}  response.Message
// @Router       /jobs/{jobId}/applications/export [get]
// @Security     BearerAuth
func (h *JobHandler) ExportApplications(c *gin.Context) {
	id, err := pathID(c, "jobId")
	if err != nil {
		c.Error(err)
		return
	}

	data, filename, err := h.applicationUC.ExportForJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, data)
}
