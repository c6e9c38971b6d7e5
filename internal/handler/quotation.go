package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vebrypp/AKURA-APP-BE/internal/middleware"
	"github.com/vebrypp/AKURA-APP-BE/internal/models"
	"github.com/vebrypp/AKURA-APP-BE/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotationHandler serves the quotation endpoints.
type QuotationHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewQuotationHandler(db *gorm.DB, pageSize int) *QuotationHandler {
	return &QuotationHandler{DB: db, PageSize: pageSize}
}

var quotationColumns = map[string]string{
	"no":         "no",
	"subject":    "subject",
	"location":   "location",
	"date":       "date",
	"created_at": "created_at",
	"createAt":   "created_at",
}

const dateLayout = "02 January 2006"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

type quotationListItem struct {
	ID            string `json:"id"`
	No            string `json:"no"`
	Date          string `json:"date"`
	Customer      string `json:"customer"`
	Company       string `json:"company"`
	Subject       string `json:"subject"`
	InquiryMethod string `json:"inquiryMethod"`
	InquiryDate   string `json:"inquiryDate"`
	Location      string `json:"location"`
	PreparedBy    string `json:"preparedBy"`
}

func toListItem(q *models.Quotation) quotationListItem {
	item := quotationListItem{
		ID:            q.ID,
		No:            q.No,
		Date:          formatDate(q.Date),
		Subject:       q.Subject,
		InquiryMethod: util.GetInquiryMethod(q.InquiryMethod),
		InquiryDate:   formatDate(q.InquiryDate),
		Location:      q.Location,
	}
	if q.Staff != nil {
		item.Customer = strings.TrimSpace(
			util.GetTitleCustomer(q.Staff.Title) + " " + q.Staff.Name)
		if q.Staff.Company != nil {
			item.Company = util.GetCompanyType(q.Staff.Company.Type) +
				q.Staff.Company.Company
		}
	}
	if q.User != nil {
		item.PreparedBy = q.User.Name
	}
	return item
}

// ListQuotations returns a filtered, sorted page of quotations with dates
// and konstanta codes rendered as display strings.
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	page := util.ParsePage(c, h.PageSize)
	filter := util.FilterScope(c, quotationColumns)

	var total int64
	if err := h.DB.Model(&models.Quotation{}).Scopes(filter).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var quotations []models.Quotation
	if err := h.DB.Scopes(filter, page.Scope(quotationColumns)).
		Preload("Staff.Company").
		Preload("User").
		Find(&quotations).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	data := make([]quotationListItem, len(quotations))
	for i := range quotations {
		data[i] = toListItem(&quotations[i])
	}

	util.Paginated(c, http.StatusOK, total, page.Page, page.Limit, data)
}

type quotationDetail struct {
	ID              string                        `json:"id"`
	No              string                        `json:"no"`
	Date            string                        `json:"date"`
	Customer        string                        `json:"customer"`
	Company         string                        `json:"company"`
	CompanyAddress  string                        `json:"companyAddress"`
	InquiryMethod   string                        `json:"inquiryMethod"`
	InquiryDate     string                        `json:"inquiryDate"`
	Subject         string                        `json:"subject"`
	TermOfPayment   string                        `json:"termOfPayment"`
	Validity        string                        `json:"validity"`
	Tax             int                           `json:"tax"`
	SupplyAkura     string                        `json:"supplyAkura"`
	SupplyCustomer  string                        `json:"supplyCustomer"`
	Location        string                        `json:"location"`
	Accomplished    string                        `json:"accomplished"`
	DeliveryReports string                        `json:"deliveryReports"`
	Services        []models.QuotationDescription `json:"services"`
	PreparedBy      string                        `json:"preparedBy"`
}

func (h *QuotationHandler) loadQuotation(id string) (*models.Quotation, error) {
	var q models.Quotation
	err := h.DB.
		Preload("Staff.Company").
		Preload("User").
		Preload("Descriptions.Description.Scope.Service").
		Preload("Descriptions.Description.Items").
		Preload("Descriptions.Items").
		First(&q, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func toDetail(q *models.Quotation) quotationDetail {
	detail := quotationDetail{
		ID:              q.ID,
		No:              q.No,
		Date:            formatDate(q.Date),
		InquiryMethod:   util.GetInquiryMethod(q.InquiryMethod),
		InquiryDate:     formatDate(q.InquiryDate),
		Subject:         q.Subject,
		TermOfPayment:   q.TermOfPayment,
		Validity:        q.Validity,
		Tax:             q.Tax,
		SupplyAkura:     q.SupplyAkura,
		SupplyCustomer:  q.SupplyCustomer,
		Location:        q.Location,
		Accomplished:    q.Accomplished,
		DeliveryReports: q.DeliveryReports,
		Services:        q.Descriptions,
	}
	if q.Staff != nil {
		detail.Customer = strings.TrimSpace(
			util.GetTitleCustomer(q.Staff.Title) + " " + q.Staff.Name)
		if q.Staff.Company != nil {
			detail.Company = util.GetCompanyType(q.Staff.Company.Type) +
				q.Staff.Company.Company
			detail.CompanyAddress = q.Staff.Company.Address
		}
	}
	if q.User != nil {
		detail.PreparedBy = q.User.Name
	}
	return detail
}

// GetQuotation returns one quotation as a composed detail view.
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidID)
		return
	}

	q, err := h.loadQuotation(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{"data": toDetail(q)})
}

type quotationServiceRef struct {
	ID string `json:"id" binding:"required"`
}

type createQuotationReq struct {
	StaffID         string                `json:"staffId" binding:"required"`
	InquiryMethod   int                   `json:"inquiryMethod" binding:"required"`
	InquiryDate     string                `json:"inquiryDate" binding:"required"`
	Subject         string                `json:"subject" binding:"required"`
	TermOfPayment   string                `json:"termOfPayment" binding:"required"`
	Validity        string                `json:"validity" binding:"required"`
	Tax             int                   `json:"tax"`
	SupplyAkura     string                `json:"supplyAkura" binding:"required"`
	SupplyCustomer  string                `json:"supplyCustomer" binding:"required"`
	Location        string                `json:"location" binding:"required"`
	Accomplished    string                `json:"accomplished" binding:"required"`
	DeliveryReports string                `json:"deliveryReports" binding:"required"`
	Services        []quotationServiceRef `json:"services" binding:"required,min=1,dive"`
}

// CreateQuotation inserts the quotation, its history row and the service
// description links in one transaction.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req createQuotationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Quotation fields cannot be empty")
		return
	}

	inquiryDate, err := time.Parse("2006-01-02", req.InquiryDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid inquiry date.")
		return
	}

	var staff models.CompanyStaff
	err = h.DB.First(&staff, "id = ?", req.StaffID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	now := time.Now()
	quotation := models.Quotation{
		ID:              uuid.NewString(),
		No:              fmt.Sprintf("Q-%s", now.Format("20060102-150405")),
		Date:            now,
		StaffID:         staff.ID,
		UserID:          user.ID,
		InquiryMethod:   req.InquiryMethod,
		InquiryDate:     inquiryDate,
		Subject:         strings.ToUpper(req.Subject),
		TermOfPayment:   strings.ToUpper(req.TermOfPayment),
		Validity:        strings.ToUpper(req.Validity),
		Tax:             req.Tax,
		SupplyAkura:     strings.ToUpper(req.SupplyAkura),
		SupplyCustomer:  strings.ToUpper(req.SupplyCustomer),
		Location:        strings.ToUpper(req.Location),
		Accomplished:    strings.ToUpper(req.Accomplished),
		DeliveryReports: strings.ToUpper(req.DeliveryReports),
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quotation).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.QuotationHistory{
			QuotationID:  quotation.ID,
			Action:       util.ActionCreate,
			ActionDetail: "Quotation",
			Name:         user.Name,
		}).Error; err != nil {
			return err
		}
		for _, svc := range req.Services {
			if err := tx.Create(&models.QuotationDescription{
				ID:            uuid.NewString(),
				QuotationID:   quotation.ID,
				DescriptionID: svc.ID,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"message": util.MsgCreated("Quotation"),
	})
}

type createQuotationItemReq struct {
	QuotationDescriptionID string `json:"quotationDescriptionId" binding:"required"`
	DescriptionItemID      string `json:"descriptionItemId" binding:"required"`
	Name                   string `json:"name" binding:"required"`
	Quantity               int    `json:"quantity" binding:"required"`
}

// CreateItem adds a line item under a quoted description. The price is
// copied from the catalog item so later catalog changes leave issued
// quotations untouched.
func (h *QuotationHandler) CreateItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req createQuotationItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Item fields cannot be empty")
		return
	}

	var catalogItem models.ServiceDescriptionItem
	err := h.DB.First(&catalogItem, "id = ?", req.DescriptionItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var link models.QuotationDescription
	err = h.DB.First(&link, "id = ?", req.QuotationDescriptionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.QuotationDescriptionItem{
			ID:                     uuid.NewString(),
			QuotationDescriptionID: link.ID,
			Name:                   req.Name,
			Quantity:               req.Quantity,
			Price:                  catalogItem.BasePrice,
			TotalPrice:             catalogItem.BasePrice * float64(req.Quantity),
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.QuotationHistory{
			QuotationID:  link.QuotationID,
			Action:       util.ActionCreate,
			ActionDetail: "Quotation - Item",
			Name:         user.Name,
		}).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"message": util.MsgCreated("Quotation item"),
	})
}

// DeleteQuotation removes a quotation with its links and history.
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidID)
		return
	}

	var quotation models.Quotation
	err := h.DB.First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var linkIDs []string
		if err := tx.Model(&models.QuotationDescription{}).
			Where("quotation_id = ?", quotation.ID).
			Pluck("id", &linkIDs).Error; err != nil {
			return err
		}
		if len(linkIDs) > 0 {
			if err := tx.Where("quotation_description_id IN ?", linkIDs).
				Delete(&models.QuotationDescriptionItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("quotation_id = ?", quotation.ID).
			Delete(&models.QuotationDescription{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quotation_id = ?", quotation.ID).
			Delete(&models.QuotationHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quotation).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": util.MsgDeleted("Quotation"),
	})
}
