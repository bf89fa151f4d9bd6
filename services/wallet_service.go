package services

import (
	"context"
	"fmt"
	"time"

	"revsplit/models"
	"revsplit/validator"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const walletCacheTTL = 10 * time.Minute

// ResolvedWallet kết quả resolve một beneficiary ra ví nhận tiền cụ thể
type ResolvedWallet struct {
	Address    string
	Label      string
	Unresolved bool
}

// WalletService resolve beneficiary ra địa chỉ ví tại thời điểm tính toán,
// không bao giờ tại thời điểm cấu hình: user đổi ví thì lần chia kế tiếp tự
// nhận ví mới mà không cần sửa share. Cache Redis chỉ là tối ưu đọc; khi
// update ví thì xóa cache để settlement không trả về địa chỉ cũ.
type WalletService struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewWalletService tạo instance mới của WalletService
func NewWalletService(db *gorm.DB, rdb *redis.Client) *WalletService {
	return &WalletService{db: db, rdb: rdb}
}

// Resolve ví cho một beneficiary. Ví độc lập trả nguyên văn sau khi validate
// ngữ pháp địa chỉ. User chưa có ví thì đánh dấu unresolved chứ không lỗi -
// xác nhận thanh toán không bao giờ phụ thuộc cấu hình của người nhận.
func (s *WalletService) Resolve(ctx context.Context, beneficiary models.Beneficiary) (ResolvedWallet, error) {
	if beneficiary.IsStandaloneWallet() {
		if err := validator.ValidateWalletAddress(beneficiary.WalletAddress); err != nil {
			return ResolvedWallet{}, err
		}
		return ResolvedWallet{Address: beneficiary.WalletAddress, Label: beneficiary.WalletLabel}, nil
	}

	if beneficiary.UserID == nil {
		return ResolvedWallet{Unresolved: true}, nil
	}
	return s.resolveUser(ctx, *beneficiary.UserID), nil
}

func (s *WalletService) resolveUser(ctx context.Context, userID uint) ResolvedWallet {
	cacheKey := walletCacheKey(userID)

	if s.rdb != nil {
		var cached ResolvedWallet
		if err := GetFromRedis(ctx, s.rdb, cacheKey, &cached); err == nil && cached.Address != "" {
			return cached
		}
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return ResolvedWallet{Unresolved: true}
	}
	if !user.HasPayoutWallet() {
		return ResolvedWallet{Unresolved: true}
	}

	resolved := ResolvedWallet{Address: user.PayoutWallet, Label: user.WalletLabel}
	if s.rdb != nil {
		_ = SetToRedis(ctx, s.rdb, cacheKey, resolved, walletCacheTTL)
	}
	return resolved
}

// UpdatePayoutWallet đổi ví nhận tiền của user và invalidate cache
func (s *WalletService) UpdatePayoutWallet(ctx context.Context, userID uint, address, label string) error {
	if err := validator.ValidateWalletAddress(address); err != nil {
		return err
	}

	err := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"payout_wallet":  address,
		"wallet_label":   label,
		"wallet_updated": time.Now(),
	}).Error
	if err != nil {
		return err
	}

	if s.rdb != nil {
		_ = DeleteFromRedis(ctx, s.rdb, walletCacheKey(userID))
	}
	return nil
}

func walletCacheKey(userID uint) string {
	return fmt.Sprintf("wallet:user:%d", userID)
}
