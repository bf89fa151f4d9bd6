package services

import (
	"context"
	"time"

	"revsplit/constants"
	"revsplit/models"
	"revsplit/services/logger"
	"revsplit/validator"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RevenueFacade điểm vào cho sự kiện bán hoàn tất: gom registry, attribution,
// calculator, wallet resolver và ledger lại sau một lời gọi duy nhất
type RevenueFacade struct {
	db          *gorm.DB
	registry    *RegistryService
	attribution *AttributionService
	wallets     *WalletService
	log         logger.Logger
}

// NewRevenueFacade tạo instance mới của RevenueFacade
func NewRevenueFacade(db *gorm.DB, rdb *redis.Client) *RevenueFacade {
	return &RevenueFacade{
		db:          db,
		registry:    NewRegistryService(db),
		attribution: NewAttributionService(db),
		wallets:     NewWalletService(db, rdb),
		log:         logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// RevenueEventInput dữ liệu từ phía order/payment cho một lần bán hoàn tất
type RevenueEventInput struct {
	CollectionID   uint
	ProductID      *uint
	CategoryID     *uint
	OrderID        *uint
	SaleActorID    *uint
	TotalAmount    int64
	Currency       string
	SettlementHash string
}

// RecordItemRevenueEvent tính và ghi phân chia doanh thu cho một lần bán,
// trả về ID của event mới. Toàn bộ chạy trong một transaction cùng với sale
// confirmation: snapshot cấu hình không thể đổi giữa chừng, isolation của
// transaction là cơ chế nhất quán duy nhất. Ví không resolve được chỉ gắn
// cờ unresolved_wallet chứ không bao giờ làm hỏng lần bán.
func (f *RevenueFacade) RecordItemRevenueEvent(ctx context.Context, input RevenueEventInput) (uint, error) {
	if err := validator.ValidateAmount(input.TotalAmount); err != nil {
		return 0, err
	}
	if input.Currency == "" {
		input.Currency = "USD"
	}
	if err := validator.ValidateCurrency(input.Currency); err != nil {
		return 0, err
	}

	event := &models.RevenueEvent{
		CollectionID:   input.CollectionID,
		ProductID:      input.ProductID,
		CategoryID:     input.CategoryID,
		OrderID:        input.OrderID,
		SaleActorID:    input.SaleActorID,
		TotalAmount:    input.TotalAmount,
		Currency:       input.Currency,
		SettlementHash: input.SettlementHash,
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		snap, err := f.registry.Snapshot(tx, input.CollectionID, now)
		if err != nil {
			return err
		}

		attr, err := f.lookupSaleAttribution(tx, input, now)
		if err != nil {
			return err
		}
		if attr != nil {
			snap.Attribution = &AttributionSnapshot{
				ItemID:     attr.ItemID,
				ItemType:   attr.ItemType,
				CreatorID:  attr.CreatorID,
				Percentage: attr.SharePercentage,
			}
		}

		sale := SaleContext{
			CollectionID: input.CollectionID,
			TotalAmount:  input.TotalAmount,
			Currency:     input.Currency,
			ProductID:    input.ProductID,
			CategoryID:   input.CategoryID,
			SaleActorID:  input.SaleActorID,
		}
		splits := ComputeSplits(snap, sale)
		splits = f.resolveWallets(ctx, splits)

		raw, err := models.EncodeSplits(splits)
		if err != nil {
			return err
		}
		event.Splits = raw

		return Record(tx, event)
	})
	if err != nil {
		return 0, err
	}

	f.log.Info("Đã ghi revenue event %d cho collection %d, tổng %d %s",
		event.ID, event.CollectionID, event.TotalAmount, event.Currency)
	return event.ID, nil
}

// lookupSaleAttribution tra attribution theo product trước, category sau
func (f *RevenueFacade) lookupSaleAttribution(tx *gorm.DB, input RevenueEventInput, asOf time.Time) (*models.ItemAttribution, error) {
	if input.ProductID != nil {
		attr, err := lookupAttribution(tx, *input.ProductID, constants.ItemTypeProduct, asOf)
		if err != nil || attr != nil {
			return attr, err
		}
	}
	if input.CategoryID != nil {
		return lookupAttribution(tx, *input.CategoryID, constants.ItemTypeCategory, asOf)
	}
	return nil, nil
}

// resolveWallets gắn ví đã resolve vào từng tuple. Cả hai biến thể beneficiary
// đều đi qua WalletService.Resolve: ví độc lập được validate lại ngữ pháp ngay
// tại thời điểm tính, ví user tra theo profile sống. Tuple nào không resolve
// được chỉ đánh dấu unresolved để sửa sau mà không cần tính lại.
func (f *RevenueFacade) resolveWallets(ctx context.Context, splits []models.SplitEntry) []models.SplitEntry {
	for i := range splits {
		var beneficiary models.Beneficiary
		if splits[i].BeneficiaryID != nil {
			id := *splits[i].BeneficiaryID
			beneficiary = models.Beneficiary{UserID: &id}
		} else {
			beneficiary = models.Beneficiary{
				WalletAddress: splits[i].WalletAddress,
				WalletLabel:   splits[i].RecipientLabel,
			}
		}

		resolved, err := f.wallets.Resolve(ctx, beneficiary)
		if err != nil || resolved.Unresolved {
			splits[i].Unresolved = true
			continue
		}
		splits[i].WalletAddress = resolved.Address
		if splits[i].RecipientLabel == "" {
			splits[i].RecipientLabel = resolved.Label
		}
	}
	return splits
}
