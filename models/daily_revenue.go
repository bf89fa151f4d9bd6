package models

import "time"

// DailyCollectionRevenue dòng tổng hợp doanh thu theo ngày cho mỗi collection,
// được cron job ghi lúc 0h từ các event đã processed.
type DailyCollectionRevenue struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CollectionID uint      `gorm:"not null;uniqueIndex:idx_collection_date" json:"collection_id"`
	Date         time.Time `gorm:"not null;uniqueIndex:idx_collection_date" json:"date"`
	Revenue      int64     `gorm:"not null" json:"revenue"`
	EventCount   int       `gorm:"not null" json:"event_count"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
