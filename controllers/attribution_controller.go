package controllers

import (
	"strconv"
	"time"

	"revsplit/dto"
	"revsplit/response"
	"revsplit/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AttributionController struct {
	attribution *services.AttributionService
}

func NewAttributionController(db *gorm.DB) *AttributionController {
	return &AttributionController{attribution: services.NewAttributionService(db)}
}

// RegisterAttribution đăng ký creator cho item; chỉ có hiệu lực khi creator
// là collaborator của collection
func (ctl *AttributionController) RegisterAttribution(c *gin.Context) {
	var req dto.AttributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu attribution không hợp lệ")
		return
	}

	attribution, err := ctl.attribution.RegisterItemCreator(
		req.CollectionID, req.ItemID, req.ItemType, req.CreatorID, req.OverridePercentage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, attribution)
}

// LookupAttribution attribution active của một item, mặc định tại now
func (ctl *AttributionController) LookupAttribution(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Query("itemId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID item không hợp lệ")
		return
	}
	itemType := c.Query("itemType")

	asOf := time.Now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Định dạng asOf không hợp lệ")
			return
		}
		asOf = parsed
	}

	attribution, err := ctl.attribution.Lookup(uint(itemID), itemType, asOf)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, attribution)
}

// ListAttributions danh sách attribution của collection
func (ctl *AttributionController) ListAttributions(c *gin.Context) {
	collectionID, err := strconv.ParseUint(c.Query("collectionId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID collection không hợp lệ")
		return
	}
	activeOnly := c.Query("activeOnly") == "true"

	attributions, err := ctl.attribution.ListByCollection(uint(collectionID), activeOnly)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, attributions)
}
