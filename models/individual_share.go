package models

import (
	"strconv"
	"time"
)

// Beneficiary là biến thể có gắn nhãn: hoặc user của hệ thống, hoặc ví độc lập
// kèm nhãn. Chỉ được phép đúng một nhánh; xuống tầng lưu trữ thì gập thành hai
// cột nullable trên IndividualShare.
type Beneficiary struct {
	UserID        *uint  `json:"userId,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty"`
	WalletLabel   string `json:"walletLabel,omitempty"`
}

// IsUser nhánh user
func (b Beneficiary) IsUser() bool {
	return b.UserID != nil
}

// IsStandaloneWallet nhánh ví độc lập
func (b Beneficiary) IsStandaloneWallet() bool {
	return b.UserID == nil && b.WalletAddress != ""
}

// Key khóa so trùng beneficiary trong phạm vi một collection
func (b Beneficiary) Key() string {
	if b.IsUser() {
		return "user:" + strconv.FormatUint(uint64(*b.UserID), 10)
	}
	return "wallet:" + b.WalletAddress
}

// IndividualShare một dòng cấu hình chia doanh thu cho một beneficiary.
// Lịch sử giữ bằng cách deactivate rồi insert dòng mới, không bao giờ hard
// delete; mỗi (collection, beneficiary) chỉ có tối đa một dòng active - ràng
// buộc bởi partial unique index tạo trong config.MigrateDB.
type IndividualShare struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	CollectionID uint       `gorm:"not null;index" json:"collectionId"`
	Collection   Collection `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"-"`

	// Beneficiary: đúng một trong hai nhóm cột dưới đây
	UserID        *uint  `gorm:"index" json:"userId,omitempty"`
	User          *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	WalletAddress string `gorm:"type:varchar(128)" json:"walletAddress,omitempty"`
	WalletLabel   string `gorm:"type:varchar(64)" json:"walletLabel,omitempty"`

	ShareType       string     `gorm:"type:varchar(20);not null;default:percentage" json:"shareType"`
	SharePercentage float64    `json:"sharePercentage"`
	FixedAmount     *int64     `json:"fixedAmount,omitempty"`
	EffectiveFrom   time.Time  `gorm:"not null" json:"effectiveFrom"`
	EffectiveUntil  *time.Time `json:"effectiveUntil,omitempty"`
	IsActive        bool       `gorm:"not null;default:true" json:"isActive"`
}

// Beneficiary dựng lại biến thể từ các cột nullable
func (s *IndividualShare) Beneficiary() Beneficiary {
	if s.UserID != nil {
		return Beneficiary{UserID: s.UserID}
	}
	return Beneficiary{WalletAddress: s.WalletAddress, WalletLabel: s.WalletLabel}
}

// EffectiveAt kiểm tra dòng share có hiệu lực tại thời điểm asOf không
func (s *IndividualShare) EffectiveAt(asOf time.Time) bool {
	if !s.IsActive {
		return false
	}
	if s.EffectiveFrom.After(asOf) {
		return false
	}
	if s.EffectiveUntil != nil && !s.EffectiveUntil.After(asOf) {
		return false
	}
	return true
}
