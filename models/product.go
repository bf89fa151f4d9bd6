package models

import "time"

type Product struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	CollectionID uint       `gorm:"not null" json:"collectionId"`
	Collection   Collection `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"collection"`
	CategoryID   *uint      `json:"categoryId,omitempty"`
	CreatorID    uint       `gorm:"not null" json:"creatorId"`
	Creator      User       `gorm:"foreignKey:CreatorID" json:"creator"`
	Name         string     `gorm:"not null" json:"name"`
	Price        int64      `gorm:"not null" json:"price"` // đơn vị nhỏ nhất của tiền tệ
	Currency     string     `gorm:"type:varchar(8);default:USD" json:"currency"`
	Status       int        `gorm:"default:1" json:"status"`
}

type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	CollectionID uint      `gorm:"not null" json:"collectionId"`
	CreatorID    uint      `gorm:"not null" json:"creatorId"`
	Name         string    `gorm:"not null" json:"name"`
	Status       int       `gorm:"default:1" json:"status"`
}
