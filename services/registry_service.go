package services

import (
	"time"

	"revsplit/constants"
	"revsplit/errors"
	"revsplit/models"
	"revsplit/utils"
	"revsplit/validator"

	"gorm.io/gorm"
)

// RegistryService quản lý cấu hình chia doanh thu: config mặc định theo
// collection và các IndividualShare có cửa sổ hiệu lực
type RegistryService struct {
	db *gorm.DB
}

// NewRegistryService tạo instance mới của RegistryService
func NewRegistryService(db *gorm.DB) *RegistryService {
	return &RegistryService{db: db}
}

// UpsertConfig tạo hoặc cập nhật config mặc định của collection. Idempotent:
// gọi lại với cùng giá trị không đổi gì. Validate trước khi chạm store.
func (s *RegistryService) UpsertConfig(auth AuthorizationContext, collectionID uint, input *models.CollectionRevenueConfig) (*models.CollectionRevenueConfig, error) {
	var collection models.Collection
	if err := s.db.First(&collection, collectionID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy collection", err)
	}

	if !auth.CanManageCollection(&collection) {
		return nil, errors.NewAppError(errors.ErrCodePermissionDenied, "Chỉ owner hoặc admin được sửa cấu hình chia doanh thu", nil)
	}

	input.CollectionID = collectionID
	if input.SplitModel == "" {
		input.SplitModel = constants.SplitModelOwnerOnly
	}
	if err := validator.ValidateRevenueConfig(input); err != nil {
		return nil, err
	}

	var config models.CollectionRevenueConfig
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("collection_id = ?", collectionID).First(&config)
		if result.Error != nil {
			if result.Error != gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBError, "Không đọc được cấu hình", result.Error)
			}
			config = *input
			return tx.Create(&config).Error
		}

		config.OwnerSharePercentage = input.OwnerSharePercentage
		config.EditorSharePercentage = input.EditorSharePercentage
		config.CollaboratorSharePercentage = input.CollaboratorSharePercentage
		config.ViewerSharePercentage = input.ViewerSharePercentage
		config.SplitModel = input.SplitModel
		config.EnableIndividualSplits = input.EnableIndividualSplits
		config.SettlementContract = input.SettlementContract
		return tx.Save(&config).Error
	})
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetConfig đọc config của collection, có thể không tồn tại
func (s *RegistryService) GetConfig(collectionID uint) (*models.CollectionRevenueConfig, error) {
	var config models.CollectionRevenueConfig
	if err := s.db.Where("collection_id = ?", collectionID).First(&config).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeConfigNotFound, "Collection chưa bật chia doanh thu", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được cấu hình", err)
	}
	return &config, nil
}

// SetIndividualShare ghi một dòng share mới cho beneficiary: trong một
// transaction, deactivate dòng active cũ của cùng beneficiary rồi insert dòng
// mới - không bao giờ ghi đè, lịch sử luôn truy vấn được. Partial unique index
// trên lát active (config.MigrateDB) chặn đua ghi song song.
func (s *RegistryService) SetIndividualShare(auth AuthorizationContext, share *models.IndividualShare) error {
	var collection models.Collection
	if err := s.db.First(&collection, share.CollectionID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy collection", err)
	}

	if !auth.CanManageCollection(&collection) {
		return errors.NewAppError(errors.ErrCodePermissionDenied, "Chỉ owner hoặc admin được sửa share", nil)
	}

	if share.EffectiveFrom.IsZero() {
		share.EffectiveFrom = time.Now()
	}
	// Nhãn ví độc lập được chuẩn hóa thành slug ascii, phía settlement dùng
	// nó làm khóa đối soát
	if share.WalletLabel != "" {
		share.WalletLabel = utils.Slugify(share.WalletLabel)
	}
	if err := validator.ValidateIndividualShare(share); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		prior := tx.Model(&models.IndividualShare{}).
			Where("collection_id = ? AND is_active = ?", share.CollectionID, true)
		if share.UserID != nil {
			prior = prior.Where("user_id = ?", *share.UserID)
		} else {
			prior = prior.Where("user_id IS NULL AND wallet_address = ?", share.WalletAddress)
		}
		if err := prior.Update("is_active", false).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không deactivate được share cũ", err)
		}

		share.ID = 0
		share.IsActive = true
		if err := tx.Create(share).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không ghi được share mới", err)
		}
		return nil
	})
}

// DeactivateShare tắt share đang active của một beneficiary, giữ lịch sử
func (s *RegistryService) DeactivateShare(auth AuthorizationContext, collectionID uint, beneficiary models.Beneficiary) error {
	var collection models.Collection
	if err := s.db.First(&collection, collectionID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy collection", err)
	}
	if !auth.CanManageCollection(&collection) {
		return errors.NewAppError(errors.ErrCodePermissionDenied, "Chỉ owner hoặc admin được sửa share", nil)
	}

	query := s.db.Model(&models.IndividualShare{}).
		Where("collection_id = ? AND is_active = ?", collectionID, true)
	if beneficiary.IsUser() {
		query = query.Where("user_id = ?", *beneficiary.UserID)
	} else {
		query = query.Where("user_id IS NULL AND wallet_address = ?", beneficiary.WalletAddress)
	}
	return query.Update("is_active", false).Error
}

// ListActiveShares các share đang hiệu lực tại thời điểm asOf
func (s *RegistryService) ListActiveShares(collectionID uint, asOf time.Time) ([]models.IndividualShare, error) {
	return listActiveShares(s.db, collectionID, asOf)
}

func listActiveShares(tx *gorm.DB, collectionID uint, asOf time.Time) ([]models.IndividualShare, error) {
	var shares []models.IndividualShare
	err := tx.
		Where("collection_id = ? AND is_active = ?", collectionID, true).
		Where("effective_from <= ?", asOf).
		Where("effective_until IS NULL OR effective_until > ?", asOf).
		Order("effective_from DESC, id DESC").
		Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

// findActiveUserShare share active đầu tiên của một user, dòng mới nhất thắng
// khi có nhiều cửa sổ hiệu lực chồng nhau
func findActiveUserShare(tx *gorm.DB, collectionID, userID uint, asOf time.Time) (*models.IndividualShare, error) {
	var share models.IndividualShare
	err := tx.
		Where("collection_id = ? AND user_id = ? AND is_active = ?", collectionID, userID, true).
		Where("effective_from <= ?", asOf).
		Where("effective_until IS NULL OR effective_until > ?", asOf).
		Order("effective_from DESC, id DESC").
		First(&share).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &share, nil
}

// Snapshot dựng ConfigSnapshot cho calculator trong transaction của caller.
// Attribution do facade gắn thêm sau khi lookup.
func (s *RegistryService) Snapshot(tx *gorm.DB, collectionID uint, asOf time.Time) (ConfigSnapshot, error) {
	var snap ConfigSnapshot

	var collection models.Collection
	if err := tx.First(&collection, collectionID).Error; err != nil {
		return snap, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy collection", err)
	}
	snap.OwnerID = collection.OwnerID

	var config models.CollectionRevenueConfig
	if err := tx.Where("collection_id = ?", collectionID).First(&config).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return snap, nil // không có config: calculator trả toàn bộ cho owner
		}
		return snap, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được cấu hình", err)
	}
	snap.HasConfig = true
	snap.EnableIndividualSplits = config.EnableIndividualSplits

	if !config.EnableIndividualSplits {
		return snap, nil
	}

	shares, err := listActiveShares(tx, collectionID, asOf)
	if err != nil {
		return snap, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được danh sách share", err)
	}

	tiers, err := memberTiers(tx, collectionID)
	if err != nil {
		return snap, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được thành viên collection", err)
	}

	seen := map[string]bool{}
	for _, share := range shares {
		key := share.Beneficiary().Key()
		if seen[key] {
			continue // cửa sổ chồng nhau: dòng mới nhất đã thắng nhờ thứ tự sort
		}
		seen[key] = true

		item := ShareSnapshot{
			Beneficiary: share.Beneficiary(),
			ShareType:   share.ShareType,
			Percentage:  share.SharePercentage,
			FixedAmount: share.FixedAmount,
		}
		if share.UserID != nil {
			item.AccessTier = tiers[*share.UserID]
		}
		snap.Shares = append(snap.Shares, item)
	}

	return snap, nil
}

// memberTiers map userID → access tier của collection
func memberTiers(tx *gorm.DB, collectionID uint) (map[uint]string, error) {
	var members []models.CollectionMember
	if err := tx.Where("collection_id = ?", collectionID).Find(&members).Error; err != nil {
		return nil, err
	}
	tiers := make(map[uint]string, len(members))
	for _, m := range members {
		tiers[m.UserID] = m.AccessTier
	}
	return tiers, nil
}
