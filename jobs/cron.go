package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// RevenueAggregator định nghĩa interface cho việc tổng hợp doanh thu theo ngày
type RevenueAggregator interface {
	RollupDailyRevenue(date time.Time) error
}

var revenueAggregator RevenueAggregator

// SetRevenueAggregator thiết lập implementation cho RevenueAggregator
func SetRevenueAggregator(aggregator RevenueAggregator) {
	revenueAggregator = aggregator
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày: tổng hợp doanh thu của ngày hôm trước
	_, err := c.AddFunc("0 0 * * *", func() {
		yesterday := time.Now().AddDate(0, 0, -1)
		log.Printf("Đang tổng hợp doanh thu theo ngày cho: %v", yesterday.Format("2006-01-02"))
		if revenueAggregator == nil {
			log.Printf("Lỗi: RevenueAggregator chưa được thiết lập")
			return
		}
		if err := revenueAggregator.RollupDailyRevenue(yesterday); err != nil {
			log.Printf("Lỗi khi tổng hợp doanh thu theo ngày: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
