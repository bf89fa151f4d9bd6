package services

import (
	"time"

	"revsplit/models"
	"revsplit/utils"

	"gorm.io/gorm"
)

// RollupService tổng hợp các event đã processed thành dòng doanh thu theo
// ngày cho mỗi collection, chạy bởi cron job lúc 0h
type RollupService struct {
	db *gorm.DB
}

// NewRollupService tạo instance mới của RollupService
func NewRollupService(db *gorm.DB) *RollupService {
	return &RollupService{db: db}
}

// RollupDailyRevenue gom event processed của một ngày theo collection và ghi
// đè dòng tổng hợp của ngày đó (chạy lại an toàn)
func (s *RollupService) RollupDailyRevenue(date time.Time) error {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	type rollupRow struct {
		CollectionID uint
		Revenue      int64
		EventCount   int
	}

	var rows []rollupRow
	err := s.db.Model(&models.RevenueEvent{}).
		Select("collection_id, SUM(total_amount) AS revenue, COUNT(*) AS event_count").
		Where("status = ? AND created_at >= ? AND created_at < ?", models.EventStatusProcessed, dayStart, dayEnd).
		Group("collection_id").
		Scan(&rows).Error
	if err != nil {
		utils.LogError("Không đọc được event để tổng hợp ngày %s: %v", dayStart.Format("2006-01-02"), err)
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			var existing models.DailyCollectionRevenue
			result := tx.Where("collection_id = ? AND date = ?", row.CollectionID, dayStart).First(&existing)
			if result.Error != nil {
				if result.Error != gorm.ErrRecordNotFound {
					return result.Error
				}
				record := models.DailyCollectionRevenue{
					CollectionID: row.CollectionID,
					Date:         dayStart,
					Revenue:      row.Revenue,
					EventCount:   row.EventCount,
				}
				if err := tx.Create(&record).Error; err != nil {
					return err
				}
				continue
			}

			existing.Revenue = row.Revenue
			existing.EventCount = row.EventCount
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.LogError("Không ghi được tổng hợp doanh thu ngày %s: %v", dayStart.Format("2006-01-02"), err)
		return err
	}

	utils.LogInfo("Đã tổng hợp doanh thu ngày %s cho %d collection", dayStart.Format("2006-01-02"), len(rows))
	return nil
}
