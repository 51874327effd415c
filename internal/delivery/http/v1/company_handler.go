package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public, protected *gin.RouterGroup, upload gin.HandlerFunc, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	public.GET("/companies/:companyId", handler.GetDetails)

	protected.POST("/companies", upload, handler.Create)
	protected.DELETE("/companies/:companyId", handler.Delete)
	protected.GET("/recruiter/companies", handler.ListMine)
}

type CompanyResponse struct {
	Message string          `json:"message"`
	Company *domain.Company `json:"company"`
}

// CreateCompany godoc
// @Summary      Create a company
// @Description  Create a company with a logo (recruiter only)
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true  "Company name"
// @Param        description  formData  string  true  "Description"
// @Param        website      formData  string  true  "Website"
// @Param        file         formData  file    true  "Logo"
// @Success      200  {object}  CompanyResponse
// @Failure      400  {object}  response.Message
// @Failure      403  {object}  response.Message
// @Failure      409  {object}  response.Message
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	logo, err := formFile(c)
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.CreateCompany(c.Request.Context(), domain.CreateCompanyInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Website:     c.PostForm("website"),
		Logo:        logo,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, CompanyResponse{Message: "Company created successfully", Company: company})
}

// DeleteCompany godoc
// @Summary      Delete a company
// @Description  Delete a company owned by the caller, together with its jobs
// @Tags         companies
// @Produce      json
// @Param        companyId  path  int  true  "Company ID"
// @Success      200  {object}  response.Message
// @Failure      404  {object}  response.Message
// @Router       /companies/{companyId} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "companyId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.companyUC.DeleteCompany(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, response.Message{Message: "Company and all associated jobs have been deleted"})
}

// ListMyCompanies godoc
// @Summary      List my companies
// @Tags         companies
// @Produce      json
// @Success      200  {array}   domain.Company
// @Failure      401  {object}  response.Message
// @Router       /recruiter/companies [get]
// @Security     BearerAuth
func (h *CompanyHandler) ListMine(c *gin.Context) {
	companies, err := h.companyUC.ListMyCompanies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, companies)
}

// GetCompanyDetails godoc
// @Summary      Get company details
// @Description  Company with all of its jobs, newest first
// @Tags         companies
// @Produce      json
// @Param        companyId  path  int  true  "Company ID"
// @Success      200  {object}  domain.CompanyWithJobs
// @Failure      404  {object}  response.Message
// @Router       /companies/{companyId} [get]
func (h *CompanyHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c, "companyId")
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.GetCompanyDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, company)
}
