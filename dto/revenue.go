package dto

import "time"

// RevenueConfigRequest cấu hình chia doanh thu của collection
type RevenueConfigRequest struct {
	CollectionID                uint    `json:"collectionId" binding:"required"`
	OwnerSharePercentage        float64 `json:"ownerSharePercentage" binding:"min=0,max=100"`
	EditorSharePercentage       float64 `json:"editorSharePercentage" binding:"min=0,max=100"`
	CollaboratorSharePercentage float64 `json:"collaboratorSharePercentage" binding:"min=0,max=100"`
	ViewerSharePercentage       float64 `json:"viewerSharePercentage" binding:"min=0,max=100"`
	SplitModel                  string  `json:"splitModel"`
	EnableIndividualSplits      bool    `json:"enableIndividualSplits"`
	SettlementContract          string  `json:"settlementContract" binding:"omitempty,wallet_address"`
}

// RevenueEventRequest sự kiện bán hoàn tất từ phía order/payment
type RevenueEventRequest struct {
	CollectionID   uint   `json:"collectionId" binding:"required"`
	ProductID      *uint  `json:"productId"`
	CategoryID     *uint  `json:"categoryId"`
	OrderID        *uint  `json:"orderId"`
	SaleActorID    *uint  `json:"saleActorId"`
	TotalAmount    int64  `json:"totalAmount" binding:"required,gt=0"`
	Currency       string `json:"currency"`
	SettlementHash string `json:"settlementHash"`
}

// RevenueEventResponse ID event vừa ghi
type RevenueEventResponse struct {
	EventID uint `json:"eventId"`
}

// EventStatusRequest chuyển trạng thái event
type EventStatusRequest struct {
	EventID        uint   `json:"eventId" binding:"required"`
	Reason         string `json:"reason"`
	SettlementHash string `json:"settlementHash"`
}

// EventHistoryQuery lọc lịch sử event
type EventHistoryQuery struct {
	CollectionID uint       `form:"collectionId"`
	Status       *int       `form:"status"`
	FromDate     *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate       *time.Time `form:"toDate" time_format:"2006-01-02"`
	Page         int        `form:"page,default=1"`
	Limit        int        `form:"limit,default=10"`
}

// DailyRevenueResponse một dòng báo cáo doanh thu theo ngày
type DailyRevenueResponse struct {
	CollectionID uint   `json:"collectionId"`
	Date         string `json:"date"`
	Revenue      int64  `json:"revenue"`
	EventCount   int    `json:"eventCount"`
}
