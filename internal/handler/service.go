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

// ServiceHandler serves the service/scope/description reference endpoints.
type ServiceHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewServiceHandler(db *gorm.DB, pageSize int) *ServiceHandler {
	return &ServiceHandler{DB: db, PageSize: pageSize}
}

var descriptionColumns = map[string]string{
	"description": "description",
	"created_at":  "created_at",
	"createAt":    "created_at",
}

// ListOptions returns every service with its scopes, for dropdowns.
func (h *ServiceHandler) ListOptions(c *gin.Context) {
	var services []models.Service
	if err := h.DB.Preload("Scopes").Order("name asc").Find(&services).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	util.Success(c, http.StatusOK, util.Response{"data": services})
}

// ListScopes returns every scope with its parent service.
func (h *ServiceHandler) ListScopes(c *gin.Context) {
	var scopes []models.Scope
	if err := h.DB.Preload("Service").Order("name asc").Find(&scopes).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	util.Success(c, http.StatusOK, util.Response{"data": scopes})
}

// ListDescriptions returns a filtered page of descriptions with items.
func (h *ServiceHandler) ListDescriptions(c *gin.Context) {
	page := util.ParsePage(c, h.PageSize)
	filter := util.FilterScope(c, descriptionColumns)

	var total int64
	if err := h.DB.Model(&models.ServiceDescription{}).
		Scopes(filter).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var descriptions []models.ServiceDescription
	if err := h.DB.Scopes(filter, page.Scope(descriptionColumns)).
		Preload("Scope.Service").
		Preload("Items").
		Find(&descriptions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Paginated(c, http.StatusOK, total, page.Page, page.Limit, descriptions)
}

// GetDescription returns one description with scope, service and items.
func (h *ServiceHandler) GetDescription(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidID)
		return
	}

	var description models.ServiceDescription
	err := h.DB.Preload("Scope.Service").Preload("Items").
		First(&description, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{"data": description})
}

type createServiceReq struct {
	Name string `json:"name" binding:"required"`
}

// CreateService adds a service reference.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req createServiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Name cannot be empty")
		return
	}

	name := strings.ToUpper(strings.TrimSpace(req.Name))

	var count int64
	if err := h.DB.Model(&models.Service{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, util.MsgExists("Service"))
		return
	}

	service := models.Service{ID: uuid.NewString(), Name: name}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&service).Error; err != nil {
			return err
		}
		return tx.Create(&models.ServiceHistory{
			ServiceID: service.ID,
			Action:    util.ActionCreate,
			Name:      user.Name,
		}).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"message": util.MsgCreated("Service"),
	})
}

type createScopeReq struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// CreateScope adds a scope under a service.
func (h *ServiceHandler) CreateScope(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req createScopeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Service and name are required")
		return
	}

	var service models.Service
	err := h.DB.First(&service, "id = ?", req.ServiceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	scope := models.Scope{
		ID:        uuid.NewString(),
		ServiceID: service.ID,
		Name:      strings.ToUpper(strings.TrimSpace(req.Name)),
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&scope).Error; err != nil {
			return err
		}
		return tx.Create(&models.ScopeHistory{
			ScopeID: scope.ID,
			Action:  util.ActionCreate,
			Name:    user.Name,
		}).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"message": util.MsgCreated("Scope"),
	})
}

type descriptionItemReq struct {
	Size            string  `json:"size" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required"`
	MeasurementUnit int     `json:"measurementUnit" binding:"required"`
	BasePrice       float64 `json:"basePrice" binding:"required"`
	SpecialPrice    float64 `json:"specialPrice"`
}

type createItemReq struct {
	ScopeID     string               `json:"scopeId" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Items       []descriptionItemReq `json:"items" binding:"required,min=1,dive"`
}

// CreateItem adds a description with its priced items under a scope.
// Duplicate items (same normalized size, quantity, unit and prices) are
// rejected before anything is written.
func (h *ServiceHandler) CreateItem(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req createItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Scope, description and items are required")
		return
	}

	keys := make([]util.DescriptionItemKey, len(req.Items))
	for i, item := range req.Items {
		keys[i] = util.DescriptionItemKey{
			Size:            item.Size,
			Quantity:        item.Quantity,
			MeasurementUnit: item.MeasurementUnit,
			BasePrice:       item.BasePrice,
			SpecialPrice:    item.SpecialPrice,
		}
	}
	if dups := util.FindDuplicateItems(keys); len(dups) > 0 {
		util.Error(c, http.StatusBadRequest, "Duplicate items. Please check again.")
		return
	}

	var scope models.Scope
	err := h.DB.First(&scope, "id = ?", req.ScopeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	description := models.ServiceDescription{
		ID:          uuid.NewString(),
		ScopeID:     scope.ID,
		Description: strings.TrimSpace(req.Description),
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&description).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			if err := tx.Create(&models.ServiceDescriptionItem{
				ID:              uuid.NewString(),
				DescriptionID:   description.ID,
				Size:            item.Size,
				Quantity:        item.Quantity,
				MeasurementUnit: item.MeasurementUnit,
				BasePrice:       item.BasePrice,
				SpecialPrice:    item.SpecialPrice,
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
		"message": util.MsgCreated("Description"),
	})
}

// DeleteService removes a service and everything under it.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
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

	var service models.Service
	err := h.DB.First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).
			Delete(&models.Scope{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.ServiceHistory{
			ServiceID: service.ID,
			Action:    util.ActionDelete,
			Name:      user.Name,
		}).Error; err != nil {
			return err
		}
		return tx.Delete(&service).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": util.MsgDeleted("Service"),
	})
}

// DeleteScope removes a scope.
func (h *ServiceHandler) DeleteScope(c *gin.Context) {
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

	var scope models.Scope
	err := h.DB.First(&scope, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.ScopeHistory{
			ScopeID: scope.ID,
			Action:  util.ActionDelete,
			Name:    user.Name,
		}).Error; err != nil {
			return err
		}
		return tx.Delete(&scope).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": util.MsgDeleted("Scope"),
	})
}

// DeleteItem removes one priced item from a description.
func (h *ServiceHandler) DeleteItem(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidID)
		return
	}

	res := h.DB.Delete(&models.ServiceDescriptionItem{}, "id = ?", id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": util.MsgDeleted("Item"),
	})
}
