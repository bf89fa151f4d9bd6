package controllers

import (
	"strconv"
	"time"

	"revsplit/dto"
	"revsplit/middleware"
	"revsplit/models"
	"revsplit/response"
	"revsplit/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ShareController struct {
	registry *services.RegistryService
}

func NewShareController(db *gorm.DB) *ShareController {
	return &ShareController{registry: services.NewRegistryService(db)}
}

// SetIndividualShare ghi share mới cho một beneficiary, share cũ tự deactivate
func (ctl *ShareController) SetIndividualShare(c *gin.Context) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.IndividualShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu share không hợp lệ")
		return
	}

	share := &models.IndividualShare{
		CollectionID:    req.CollectionID,
		UserID:          req.UserID,
		WalletAddress:   req.WalletAddress,
		WalletLabel:     req.WalletLabel,
		ShareType:       req.ShareType,
		SharePercentage: req.SharePercentage,
		FixedAmount:     req.FixedAmount,
		EffectiveUntil:  req.EffectiveUntil,
	}
	if req.EffectiveFrom != nil {
		share.EffectiveFrom = *req.EffectiveFrom
	}

	if err := ctl.registry.SetIndividualShare(auth, share); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, share)
}

// ListActiveShares các share đang hiệu lực của collection, mặc định tại now
func (ctl *ShareController) ListActiveShares(c *gin.Context) {
	collectionID, err := strconv.ParseUint(c.Query("collectionId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID collection không hợp lệ")
		return
	}

	asOf := time.Now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Định dạng asOf không hợp lệ")
			return
		}
		asOf = parsed
	}

	shares, err := ctl.registry.ListActiveShares(uint(collectionID), asOf)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, shares)
}

// DeactivateShare tắt share đang active của beneficiary, giữ lịch sử
func (ctl *ShareController) DeactivateShare(c *gin.Context) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.IndividualShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu share không hợp lệ")
		return
	}

	beneficiary := models.Beneficiary{
		UserID:        req.UserID,
		WalletAddress: req.WalletAddress,
		WalletLabel:   req.WalletLabel,
	}
	if err := ctl.registry.DeactivateShare(auth, req.CollectionID, beneficiary); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, nil)
}
