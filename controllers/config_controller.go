package controllers

import (
	"strconv"

	"revsplit/dto"
	"revsplit/middleware"
	"revsplit/models"
	"revsplit/response"
	"revsplit/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RevenueConfigController struct {
	registry *services.RegistryService
}

func NewRevenueConfigController(db *gorm.DB) *RevenueConfigController {
	return &RevenueConfigController{registry: services.NewRegistryService(db)}
}

// UpsertConfig tạo/cập nhật cấu hình chia doanh thu của collection
func (ctl *RevenueConfigController) UpsertConfig(c *gin.Context) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.RevenueConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu cấu hình không hợp lệ")
		return
	}

	input := &models.CollectionRevenueConfig{
		OwnerSharePercentage:        req.OwnerSharePercentage,
		EditorSharePercentage:       req.EditorSharePercentage,
		CollaboratorSharePercentage: req.CollaboratorSharePercentage,
		ViewerSharePercentage:       req.ViewerSharePercentage,
		SplitModel:                  req.SplitModel,
		EnableIndividualSplits:      req.EnableIndividualSplits,
		SettlementContract:          req.SettlementContract,
	}

	config, err := ctl.registry.UpsertConfig(auth, req.CollectionID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, config)
}

// GetConfig đọc cấu hình của collection
func (ctl *RevenueConfigController) GetConfig(c *gin.Context) {
	collectionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID collection không hợp lệ")
		return
	}

	config, err := ctl.registry.GetConfig(uint(collectionID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, config)
}
