package dto

import "time"

// IndividualShareRequest ghi một share mới cho beneficiary
type IndividualShareRequest struct {
	CollectionID    uint       `json:"collectionId" binding:"required"`
	UserID          *uint      `json:"userId"`
	WalletAddress   string     `json:"walletAddress" binding:"omitempty,wallet_address"`
	WalletLabel     string     `json:"walletLabel"`
	ShareType       string     `json:"shareType" binding:"required"`
	SharePercentage float64    `json:"sharePercentage"`
	FixedAmount     *int64     `json:"fixedAmount"`
	EffectiveFrom   *time.Time `json:"effectiveFrom"`
	EffectiveUntil  *time.Time `json:"effectiveUntil"`
}

// AttributionRequest đăng ký creator cho một item
type AttributionRequest struct {
	CollectionID       uint     `json:"collectionId" binding:"required"`
	ItemID             uint     `json:"itemId" binding:"required"`
	ItemType           string   `json:"itemType" binding:"required,oneof=product category"`
	CreatorID          uint     `json:"creatorId" binding:"required"`
	OverridePercentage *float64 `json:"overridePercentage"`
}

// WalletUpdateRequest đổi ví nhận tiền của user
type WalletUpdateRequest struct {
	Address string `json:"address" binding:"required,wallet_address"`
	Label   string `json:"label"`
}
