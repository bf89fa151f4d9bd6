package controllers

import (
	"strconv"

	"revsplit/dto"
	"revsplit/middleware"
	"revsplit/response"
	"revsplit/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RevenueEventController struct {
	facade *services.RevenueFacade
	ledger *services.LedgerService
}

func NewRevenueEventController(db *gorm.DB, rdb *redis.Client) *RevenueEventController {
	return &RevenueEventController{
		facade: services.NewRevenueFacade(db, rdb),
		ledger: services.NewLedgerService(db),
	}
}

// RecordRevenueEvent entry point cho order service khi một lần bán hoàn tất
func (ctl *RevenueEventController) RecordRevenueEvent(c *gin.Context) {
	var req dto.RevenueEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu sự kiện bán không hợp lệ")
		return
	}

	eventID, err := ctl.facade.RecordItemRevenueEvent(c.Request.Context(), services.RevenueEventInput{
		CollectionID:   req.CollectionID,
		ProductID:      req.ProductID,
		CategoryID:     req.CategoryID,
		OrderID:        req.OrderID,
		SaleActorID:    req.SaleActorID,
		TotalAmount:    req.TotalAmount,
		Currency:       req.Currency,
		SettlementHash: req.SettlementHash,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.RevenueEventResponse{EventID: eventID})
}

// GetEvent chi tiết một event kèm splits đã chốt
func (ctl *RevenueEventController) GetEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID event không hợp lệ")
		return
	}

	event, err := ctl.ledger.GetByID(uint(eventID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, event)
}

// History lịch sử event đã lọc
func (ctl *RevenueEventController) History(c *gin.Context) {
	var query dto.EventHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Tham số lọc không hợp lệ")
		return
	}

	events, total, err := ctl.ledger.History(services.EventFilter{
		CollectionID: query.CollectionID,
		Status:       query.Status,
		FromDate:     query.FromDate,
		ToDate:       query.ToDate,
		Page:         query.Page,
		Limit:        query.Limit,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithPagination(c, events, query.Page, query.Limit, int(total))
}

// MarkProcessed pending → processed sau khi settlement xong
func (ctl *RevenueEventController) MarkProcessed(c *gin.Context) {
	ctl.changeStatus(c, func(auth services.AuthorizationContext, req dto.EventStatusRequest) (interface{}, error) {
		return ctl.ledger.MarkProcessed(auth, req.EventID, req.SettlementHash)
	})
}

// MarkFailed pending → failed
func (ctl *RevenueEventController) MarkFailed(c *gin.Context) {
	ctl.changeStatus(c, func(auth services.AuthorizationContext, req dto.EventStatusRequest) (interface{}, error) {
		return ctl.ledger.MarkFailed(auth, req.EventID, req.Reason)
	})
}

// MarkDisputed processed → disputed
func (ctl *RevenueEventController) MarkDisputed(c *gin.Context) {
	ctl.changeStatus(c, func(auth services.AuthorizationContext, req dto.EventStatusRequest) (interface{}, error) {
		return ctl.ledger.MarkDisputed(auth, req.EventID, req.Reason)
	})
}

// Retry failed → pending
func (ctl *RevenueEventController) Retry(c *gin.Context) {
	ctl.changeStatus(c, func(auth services.AuthorizationContext, req dto.EventStatusRequest) (interface{}, error) {
		return ctl.ledger.Retry(auth, req.EventID)
	})
}

func (ctl *RevenueEventController) changeStatus(c *gin.Context, apply func(services.AuthorizationContext, dto.EventStatusRequest) (interface{}, error)) {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.EventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu chuyển trạng thái không hợp lệ")
		return
	}

	event, err := apply(auth, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, event)
}
