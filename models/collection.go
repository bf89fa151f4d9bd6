package models

import (
	"time"

	"github.com/lib/pq"
)

type Collection struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string             `gorm:"not null" json:"name"`
	Slug        string             `gorm:"uniqueIndex;type:varchar(128)" json:"slug"`
	OwnerID     uint               `gorm:"not null" json:"ownerId"`
	Owner       User               `gorm:"foreignKey:OwnerID" json:"owner"`
	Status      int                `gorm:"default:1" json:"status"`
	CategoryIDs pq.Int64Array      `gorm:"type:integer[]" json:"categoryIds"`
	Members     []CollectionMember `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// CollectionMember gắn user vào collection theo access tier
type CollectionMember struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CollectionID uint      `gorm:"not null;uniqueIndex:idx_collection_user" json:"collectionId"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_collection_user" json:"userId"`
	User         User      `gorm:"foreignKey:UserID" json:"user"`
	AccessTier   string    `gorm:"type:varchar(20);not null;default:viewer" json:"accessTier"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
