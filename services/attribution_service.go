package services

import (
	"time"

	"revsplit/constants"
	"revsplit/errors"
	"revsplit/models"
	"revsplit/validator"

	"gorm.io/gorm"
)

// AttributionService quản lý index gắn item với collaborator đã tạo nó
type AttributionService struct {
	db *gorm.DB
}

// NewAttributionService tạo instance mới của AttributionService
func NewAttributionService(db *gorm.DB) *AttributionService {
	return &AttributionService{db: db}
}

// RegisterItemCreator ghi attribution khi collaborator tạo item. Chỉ chạy khi
// tier của creator là collaborator; owner/editor đi theo config mặc định chứ
// không theo item. Tỷ lệ lấy theo ưu tiên: override tường minh → share active
// của chính creator → collaborator_share_percentage của collection. Gọi lại
// cho cùng item là idempotent nhờ deactivate-then-insert.
func (s *AttributionService) RegisterItemCreator(collectionID, itemID uint, itemType string, creatorID uint, overridePercentage *float64) (*models.ItemAttribution, error) {
	var member models.CollectionMember
	err := s.db.Where("collection_id = ? AND user_id = ?", collectionID, creatorID).First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // không phải thành viên: không có attribution
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được thành viên collection", err)
	}
	if member.AccessTier != constants.TierCollaborator {
		return nil, nil
	}

	percentage, err := s.resolvePercentage(collectionID, creatorID, overridePercentage)
	if err != nil {
		return nil, err
	}

	attribution := &models.ItemAttribution{
		CollectionID:    collectionID,
		ItemID:          itemID,
		ItemType:        itemType,
		CreatorID:       creatorID,
		SharePercentage: percentage,
		EffectiveFrom:   time.Now(),
		IsActive:        true,
	}
	if err := validator.ValidateAttribution(attribution); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ItemAttribution{}).
			Where("item_id = ? AND item_type = ? AND is_active = ?", itemID, itemType, true).
			Update("is_active", false).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không deactivate được attribution cũ", err)
		}
		if err := tx.Create(attribution).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không ghi được attribution", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attribution, nil
}

// resolvePercentage thứ tự ưu tiên tỷ lệ cho attribution
func (s *AttributionService) resolvePercentage(collectionID, creatorID uint, override *float64) (float64, error) {
	if override != nil {
		if *override < 0 || *override > 100 {
			return 0, errors.NewAppError(errors.ErrCodeInvalidPercentage, "Tỷ lệ override phải nằm trong khoảng từ 0 đến 100", nil)
		}
		return *override, nil
	}

	share, err := findActiveUserShare(s.db, collectionID, creatorID, time.Now())
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được share của creator", err)
	}
	if share != nil && share.ShareType == constants.ShareTypePercentage {
		return share.SharePercentage, nil
	}

	var config models.CollectionRevenueConfig
	if err := s.db.Where("collection_id = ?", collectionID).First(&config).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được cấu hình", err)
	}
	return config.CollaboratorSharePercentage, nil
}

// Lookup attribution active của một item đang hiệu lực tại asOf, nil nếu
// không có
func (s *AttributionService) Lookup(itemID uint, itemType string, asOf time.Time) (*models.ItemAttribution, error) {
	return lookupAttribution(s.db, itemID, itemType, asOf)
}

func lookupAttribution(tx *gorm.DB, itemID uint, itemType string, asOf time.Time) (*models.ItemAttribution, error) {
	var attribution models.ItemAttribution
	err := tx.
		Where("item_id = ? AND item_type = ? AND is_active = ?", itemID, itemType, true).
		Where("effective_from <= ?", asOf).
		Order("effective_from DESC, id DESC").
		First(&attribution).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được attribution", err)
	}
	return &attribution, nil
}

// ListByCollection lịch sử attribution của collection, cả active lẫn đã tắt
func (s *AttributionService) ListByCollection(collectionID uint, activeOnly bool) ([]models.ItemAttribution, error) {
	query := s.db.Where("collection_id = ?", collectionID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var attributions []models.ItemAttribution
	if err := query.Order("id DESC").Find(&attributions).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được danh sách attribution", err)
	}
	return attributions, nil
}
