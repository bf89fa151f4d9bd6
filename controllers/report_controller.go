package controllers

import (
	"strconv"

	"revsplit/dto"
	"revsplit/models"
	"revsplit/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct {
	db *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{db: db}
}

// DailyRevenue báo cáo doanh thu theo ngày của collection, do cron job tổng
// hợp từ các event đã processed
func (ctl *ReportController) DailyRevenue(c *gin.Context) {
	collectionID, err := strconv.ParseUint(c.Query("collectionId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID collection không hợp lệ")
		return
	}

	var rows []models.DailyCollectionRevenue
	if err := ctl.db.
		Where("collection_id = ?", collectionID).
		Order("date DESC").
		Limit(90).
		Find(&rows).Error; err != nil {
		response.ServerError(c)
		return
	}

	report := make([]dto.DailyRevenueResponse, 0, len(rows))
	for _, row := range rows {
		report = append(report, dto.DailyRevenueResponse{
			CollectionID: row.CollectionID,
			Date:         row.Date.Format("2006-01-02"),
			Revenue:      row.Revenue,
			EventCount:   row.EventCount,
		})
	}

	response.Success(c, report)
}
