package controllers

import (
	"revsplit/constants"
	"revsplit/dto"
	"revsplit/errors"
	"revsplit/middleware"
	"revsplit/models"
	"revsplit/response"
	"revsplit/services"
	"revsplit/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CollectionController struct {
	db          *gorm.DB
	attribution *services.AttributionService
	wallets     *services.WalletService
}

func NewCollectionController(db *gorm.DB, rdb *redis.Client) *CollectionController {
	return &CollectionController{
		db:          db,
		attribution: services.NewAttributionService(db),
		wallets:     services.NewWalletService(db, rdb),
	}
}

// CreateCollection tạo collection mới, caller trở thành owner
func (ctl *CollectionController) CreateCollection(c *gin.Context) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu collection không hợp lệ")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	collection := models.Collection{
		Name:    req.Name,
		Slug:    slug,
		OwnerID: auth.UserID,
		Status:  constants.UserStatusActive,
	}

	err := ctl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&collection).Error; err != nil {
			return err
		}
		member := models.CollectionMember{
			CollectionID: collection.ID,
			UserID:       auth.UserID,
			AccessTier:   constants.TierOwner,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, collection)
}

// UpsertMember thêm hoặc đổi tier thành viên collection
func (ctl *CollectionController) UpsertMember(c *gin.Context) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu thành viên không hợp lệ")
		return
	}

	var collection models.Collection
	if err := ctl.db.First(&collection, req.CollectionID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if !auth.CanManageCollection(&collection) {
		response.Forbidden(c)
		return
	}

	var member models.CollectionMember
	err := ctl.db.Where("collection_id = ? AND user_id = ?", req.CollectionID, req.UserID).First(&member).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			response.ServerError(c)
			return
		}
		member = models.CollectionMember{
			CollectionID: req.CollectionID,
			UserID:       req.UserID,
			AccessTier:   req.AccessTier,
		}
		if err := ctl.db.Create(&member).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, member)
		return
	}

	member.AccessTier = req.AccessTier
	if err := ctl.db.Save(&member).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, member)
}

// CreateProduct tạo product; nếu caller là collaborator thì attribution được
// đăng ký tự động ngay trong lúc tạo
func (ctl *CollectionController) CreateProduct(c *gin.Context) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu product không hợp lệ")
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	product := models.Product{
		CollectionID: req.CollectionID,
		CategoryID:   req.CategoryID,
		CreatorID:    auth.UserID,
		Name:         req.Name,
		Price:        req.Price,
		Currency:     currency,
	}
	if err := ctl.db.Create(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Attribution tự động cho collaborator; owner/editor đi theo config mặc định
	if _, err := ctl.attribution.RegisterItemCreator(
		req.CollectionID, product.ID, constants.ItemTypeProduct, auth.UserID, nil); err != nil {
		if errors.IsCode(err, errors.ErrCodeDBError) {
			response.ServerError(c)
			return
		}
		handleServiceError(c, err)
		return
	}

	response.Success(c, product)
}

// UpdateWallet đổi ví nhận tiền của chính caller; lần chia kế tiếp tự resolve
// ví mới mà không cần sửa share nào
func (ctl *CollectionController) UpdateWallet(c *gin.Context) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.WalletUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu ví không hợp lệ")
		return
	}

	if err := ctl.wallets.UpdatePayoutWallet(c.Request.Context(), auth.UserID, req.Address, req.Label); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, nil)
}
