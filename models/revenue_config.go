package models

import "time"

// CollectionRevenueConfig cấu hình chia doanh thu mặc định của một collection.
// Invariant: tổng bốn tỷ lệ mặc định không vượt quá 100, được kiểm tra tại thời
// điểm ghi (validator.ValidateRevenueConfig), không kiểm tra lại khi tính toán.
type CollectionRevenueConfig struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	CollectionID uint       `gorm:"not null;uniqueIndex" json:"collectionId"`
	Collection   Collection `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"-"`

	OwnerSharePercentage        float64 `gorm:"not null;default:100" json:"ownerSharePercentage"`
	EditorSharePercentage       float64 `gorm:"not null;default:0" json:"editorSharePercentage"`
	CollaboratorSharePercentage float64 `gorm:"not null;default:0" json:"collaboratorSharePercentage"`
	ViewerSharePercentage       float64 `gorm:"not null;default:0" json:"viewerSharePercentage"`

	SplitModel             string `gorm:"type:varchar(30);not null;default:owner_only" json:"splitModel"`
	EnableIndividualSplits bool   `gorm:"default:false" json:"enableIndividualSplits"`
	SettlementContract     string `gorm:"type:varchar(128)" json:"settlementContract,omitempty"`
}

// DefaultsSum tổng bốn tỷ lệ mặc định
func (c *CollectionRevenueConfig) DefaultsSum() float64 {
	return c.OwnerSharePercentage + c.EditorSharePercentage +
		c.CollaboratorSharePercentage + c.ViewerSharePercentage
}
