package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vebrypp/AKURA-APP-BE/internal/middleware"
	"github.com/vebrypp/AKURA-APP-BE/internal/models"
	"github.com/vebrypp/AKURA-APP-BE/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyHandler serves the customer company reference endpoints. Every
// mutation writes a matching history row inside the same transaction.
type CompanyHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewCompanyHandler(db *gorm.DB, pageSize int) *CompanyHandler {
	return &CompanyHandler{DB: db, PageSize: pageSize}
}

var companyColumns = map[string]string{
	"company":    "company",
	"address":    "address",
	"type":       "type",
	"created_at": "created_at",
	"createAt":   "created_at",
}

type companyStaffReq struct {
	Title int    `json:"title" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

type createCompanyReq struct {
	Type    int               `json:"type" binding:"required"`
	Company string            `json:"company" binding:"required"`
	Address string            `json:"address" binding:"required"`
	Staff   []companyStaffReq `json:"staff" binding:"required,min=1,dive"`
}

// ListCompanies returns a filtered, sorted page of companies with staff.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	page := util.ParsePage(c, h.PageSize)
	filter := util.FilterScope(c, companyColumns)

	var total int64
	if err := h.DB.Model(&models.Company{}).Scopes(filter).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var companies []models.Company
	if err := h.DB.Scopes(filter, page.Scope(companyColumns)).
		Preload("Staff").
		Find(&companies).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Paginated(c, http.StatusOK, total, page.Page, page.Limit, companies)
}

// GetCompany returns one company with its staff.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidID)
		return
	}

	var company models.Company
	err := h.DB.Preload("Staff").First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{"data": company})
}

// GetCompanyStaff returns the staff contacts of one company.
func (h *CompanyHandler) GetCompanyStaff(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidID)
		return
	}

	var staff []models.CompanyStaff
	if err := h.DB.Where("company_id = ?", id).Find(&staff).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{"data": staff})
}

// CreateCompany creates a company together with its initial staff and the
// history rows for both, in one transaction.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req createCompanyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Company, type, address and staff are required")
		return
	}

	name := strings.ToUpper(strings.TrimSpace(req.Company))

	var count int64
	if err := h.DB.Model(&models.Company{}).
		Where("company = ?", name).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, "Company is already exist")
		return
	}

	company := models.Company{
		ID:      uuid.NewString(),
		Type:    req.Type,
		Company: name,
		Address: strings.ToUpper(strings.TrimSpace(req.Address)),
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&company).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.CompanyHistory{
			CompanyID: company.ID,
			Action:    util.ActionCreate,
			Name:      user.Name,
		}).Error; err != nil {
			return err
		}

		for _, s := range req.Staff {
			staff := models.CompanyStaff{
				ID:        uuid.NewString(),
				CompanyID: company.ID,
				Title:     s.Title,
				Name:      strings.ToUpper(strings.TrimSpace(s.Name)),
			}
			if err := tx.Create(&staff).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.CompanyStaffHistory{
				CompanyStaffID: staff.ID,
				Action:         util.ActionCreate,
				Name:           user.Name,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create company reference")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"message": "Success create company reference",
	})
}

type createStaffReq struct {
	CompanyID string `json:"companyId" binding:"required"`
	Title     int    `json:"title" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// CreateStaff adds a staff contact to an existing company.
func (h *CompanyHandler) CreateStaff(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req createStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Company, title and name are required")
		return
	}

	var company models.Company
	err := h.DB.First(&company, "id = ?", req.CompanyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	staff := models.CompanyStaff{
		ID:        uuid.NewString(),
		CompanyID: company.ID,
		Title:     req.Title,
		Name:      strings.ToUpper(strings.TrimSpace(req.Name)),
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&staff).Error; err != nil {
			return err
		}
		return tx.Create(&models.CompanyStaffHistory{
			CompanyStaffID: staff.ID,
			Action:         util.ActionCreate,
			Name:           user.Name,
		}).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create staff")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"message": util.MsgCreated("Staff"),
	})
}

// DeleteCompany removes a company and its staff unless any staff is
// referenced by a quotation.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidID)
		return
	}

	var company models.Company
	err := h.DB.Preload("Staff").First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	staffIDs := make([]string, 0, len(company.Staff))
	for _, s := range company.Staff {
		staffIDs = append(staffIDs, s.ID)
	}
	if len(staffIDs) > 0 {
		referenced, err := h.staffReferenced(staffIDs)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if referenced {
			util.Error(c, http.StatusConflict,
				"Company staff is used by a quotation. Please check again.")
			return
		}
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", company.ID).
			Delete(&models.CompanyStaff{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.CompanyHistory{
			CompanyID: company.ID,
			Action:    util.ActionDelete,
			Name:      user.Name,
		}).Error; err != nil {
			return err
		}
		return tx.Delete(&company).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": util.MsgDeleted("Company"),
	})
}

// DeleteStaff removes one staff contact unless a quotation references it.
func (h *CompanyHandler) DeleteStaff(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidID)
		return
	}

	var staff models.CompanyStaff
	err := h.DB.First(&staff, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	referenced, err := h.staffReferenced([]string{staff.ID})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if referenced {
		util.Error(c, http.StatusConflict,
			"Company staff is used by a quotation. Please check again.")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.CompanyStaffHistory{
			CompanyStaffID: staff.ID,
			Action:         util.ActionDelete,
			Name:           user.Name,
		}).Error; err != nil {
			return err
		}
		return tx.Delete(&staff).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": util.MsgDeleted("Staff"),
	})
}

func (h *CompanyHandler) staffReferenced(staffIDs []string) (bool, error) {
	var count int64
	err := h.DB.Model(&models.Quotation{}).
		Where("staff_id IN ?", staffIDs).
		Count(&count).Error
	return count > 0, err
}
