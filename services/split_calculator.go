package services

import (
	"math"

	"revsplit/constants"
	"revsplit/models"
)

// SaleContext thông tin một lần bán đã hoàn tất, do phía order/payment đưa sang
type SaleContext struct {
	CollectionID uint
	TotalAmount  int64 // đơn vị nhỏ nhất của tiền tệ
	Currency     string
	ProductID    *uint
	CategoryID   *uint
	SaleActorID  *uint
}

// ShareSnapshot một dòng IndividualShare đang hiệu lực trong snapshot
type ShareSnapshot struct {
	Beneficiary models.Beneficiary
	ShareType   string
	Percentage  float64
	FixedAmount *int64
	AccessTier  string // tier của user beneficiary trong collection, rỗng nếu là ví độc lập
}

// AttributionSnapshot attribution đang hiệu lực cho item của lần bán
type AttributionSnapshot struct {
	ItemID     uint
	ItemType   string
	CreatorID  uint
	Percentage float64
}

// ConfigSnapshot ảnh chụp cấu hình tại thời điểm tính, lấy trong cùng
// transaction với sale confirmation nên không đổi giữa chừng
type ConfigSnapshot struct {
	HasConfig              bool
	OwnerID                uint
	EnableIndividualSplits bool
	Shares                 []ShareSnapshot
	Attribution            *AttributionSnapshot
}

// ComputeSplits hàm thuần túy: (snapshot cấu hình, ngữ cảnh bán) → danh sách
// split. Không ghi gì xuống store; ví của từng tuple được resolve sau bởi
// WalletService. Tổng amount của kết quả luôn đúng bằng sale.TotalAmount.
//
// Pass 1: attribution theo item, carve total * pct / 100, chặn trên bởi phần
// còn lại để chịu được config sửa đè song song với lần bán.
// Pass 2: phần còn lại chia cho các share đang hiệu lực (nếu bật individual
// splits), loại beneficiary đã trả ở pass 1 và các share tier collaborator đã
// được attribution bao phủ; nếu không thì cả phần còn lại về owner.
func ComputeSplits(snap ConfigSnapshot, sale SaleContext) []models.SplitEntry {
	total := sale.TotalAmount
	if total <= 0 {
		return nil
	}

	// Không có cấu hình: toàn bộ về owner
	if !snap.HasConfig {
		return []models.SplitEntry{ownerSplit(snap.OwnerID, total, total)}
	}

	var splits []models.SplitEntry
	remaining := total

	// Pass 1: item attribution
	if attr := snap.Attribution; attr != nil && attr.Percentage > 0 {
		amount := roundShare(total, attr.Percentage)
		if amount > remaining {
			amount = remaining
		}
		creatorID := attr.CreatorID
		itemID := attr.ItemID
		splits = append(splits, models.SplitEntry{
			BeneficiaryID: &creatorID,
			Amount:        amount,
			Percentage:    attr.Percentage,
			ShareType:     constants.SplitTagCollaboratorItem,
			ItemID:        &itemID,
			ItemType:      attr.ItemType,
		})
		remaining -= amount
	}

	// Pass 2: phần còn lại
	pool := remainderPool(snap)
	if snap.EnableIndividualSplits && len(pool) > 0 && remaining > 0 {
		// Share số tiền cố định carve trước, chặn trên bởi phần còn lại
		for _, share := range pool {
			if share.ShareType != constants.ShareTypeFixedAmount || share.FixedAmount == nil {
				continue
			}
			amount := *share.FixedAmount
			if amount > remaining {
				amount = remaining
			}
			splits = append(splits, beneficiarySplit(share, amount, percentageOf(amount, total)))
			remaining -= amount
		}

		// Share theo tỷ lệ tính trên phần còn lại sau attribution và fixed carve
		base := remaining
		for _, share := range pool {
			if share.ShareType != constants.ShareTypePercentage {
				continue
			}
			amount := roundShare(base, share.Percentage)
			if amount > remaining {
				amount = remaining
			}
			splits = append(splits, beneficiarySplit(share, amount, share.Percentage))
			remaining -= amount
		}
	}

	// Phần dư về owner
	if remaining > 0 || len(splits) == 0 {
		splits = append(splits, ownerSplit(snap.OwnerID, remaining, total))
	}

	return foldRemainder(splits, total)
}

// remainderPool lọc các share được tham gia chia phần còn lại: loại beneficiary
// đã trả ở pass attribution, và loại share tier collaborator khi lần bán đã có
// attribution (collaborator không bao giờ được trả hai lần cho một lần bán)
func remainderPool(snap ConfigSnapshot) []ShareSnapshot {
	if len(snap.Shares) == 0 {
		return nil
	}

	var attributedCreator *uint
	if snap.Attribution != nil {
		attributedCreator = &snap.Attribution.CreatorID
	}

	pool := make([]ShareSnapshot, 0, len(snap.Shares))
	for _, share := range snap.Shares {
		if attributedCreator != nil {
			if share.Beneficiary.IsUser() && *share.Beneficiary.UserID == *attributedCreator {
				continue
			}
			if share.AccessTier == constants.TierCollaborator {
				continue
			}
		}
		pool = append(pool, share)
	}
	return pool
}

// foldRemainder dồn phần dư do làm tròn vào tuple owner, không có thì vào
// tuple lớn nhất, để tổng phát ra đúng bằng totalAmount trên mọi nhánh
func foldRemainder(splits []models.SplitEntry, total int64) []models.SplitEntry {
	if len(splits) == 0 {
		return splits
	}

	var sum int64
	for _, s := range splits {
		sum += s.Amount
	}
	diff := total - sum
	if diff == 0 {
		return splits
	}

	target := -1
	for i, s := range splits {
		if s.ShareType == constants.SplitTagOwner {
			target = i
			break
		}
	}
	if target < 0 {
		for i, s := range splits {
			if target < 0 || s.Amount > splits[target].Amount {
				target = i
			}
		}
	}
	splits[target].Amount += diff
	return splits
}

func ownerSplit(ownerID uint, amount, total int64) models.SplitEntry {
	id := ownerID
	return models.SplitEntry{
		BeneficiaryID: &id,
		Amount:        amount,
		Percentage:    percentageOf(amount, total),
		ShareType:     constants.SplitTagOwner,
	}
}

func beneficiarySplit(share ShareSnapshot, amount int64, percentage float64) models.SplitEntry {
	entry := models.SplitEntry{
		Amount:     amount,
		Percentage: percentage,
	}
	if share.Beneficiary.IsUser() {
		id := *share.Beneficiary.UserID
		entry.BeneficiaryID = &id
		entry.ShareType = constants.SplitTagIndividual
	} else {
		entry.WalletAddress = share.Beneficiary.WalletAddress
		entry.RecipientLabel = share.Beneficiary.WalletLabel
		entry.ShareType = constants.SplitTagStandaloneWallet
	}
	if share.ShareType == constants.ShareTypeFixedAmount {
		entry.ShareType = constants.SplitTagFixedAmount
	}
	return entry
}

// roundShare làm tròn base * pct / 100 về đơn vị nhỏ nhất của tiền tệ
func roundShare(base int64, percentage float64) int64 {
	return int64(math.Round(float64(base) * percentage / 100))
}

func percentageOf(amount, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(amount)/float64(total)*10000) / 100
}
