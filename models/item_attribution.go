package models

import "time"

// ItemAttribution gắn một item (product hoặc category) với collaborator đã tạo
// ra nó cùng tỷ lệ chia theo item. Cùng kỷ luật active/history với
// IndividualShare: một dòng active duy nhất cho mỗi item.
type ItemAttribution struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	CollectionID uint       `gorm:"not null;index" json:"collectionId"`
	Collection   Collection `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"-"`

	ItemID          uint      `gorm:"not null;index:idx_item" json:"itemId"`
	ItemType        string    `gorm:"type:varchar(20);not null;index:idx_item" json:"itemType"`
	CreatorID       uint      `gorm:"not null" json:"creatorId"`
	Creator         User      `gorm:"foreignKey:CreatorID" json:"creator"`
	SharePercentage float64   `gorm:"not null" json:"sharePercentage"`
	EffectiveFrom   time.Time `gorm:"not null" json:"effectiveFrom"`
	IsActive        bool      `gorm:"not null;default:true" json:"isActive"`
}
