package services

import (
	"time"

	"revsplit/errors"
	"revsplit/models"

	"gorm.io/gorm"
)

// LedgerService sổ cái append-only của các lần chia doanh thu. Splits bất
// biến sau khi ghi; chỉ status được chuyển qua máy trạng thái của event.
type LedgerService struct {
	db *gorm.DB
}

// NewLedgerService tạo instance mới của LedgerService
func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// Record ghi event với splits đã chốt. Có settlement hash ngay lúc tạo thì
// processed, không thì pending.
func Record(tx *gorm.DB, event *models.RevenueEvent) error {
	if event.SettlementHash != "" {
		event.Status = models.EventStatusProcessed
	} else {
		event.Status = models.EventStatusPending
	}
	if err := tx.Create(event).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không ghi được revenue event", err)
	}
	return nil
}

// GetByID đọc một event
func (s *LedgerService) GetByID(eventID uint) (*models.RevenueEvent, error) {
	var event models.RevenueEvent
	if err := s.db.First(&event, eventID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeEventNotFound, "Không tìm thấy revenue event", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được revenue event", err)
	}
	return &event, nil
}

// MarkProcessed pending → processed khi settlement xong
func (s *LedgerService) MarkProcessed(auth AuthorizationContext, eventID uint, settlementHash string) (*models.RevenueEvent, error) {
	return s.transition(auth, eventID, func(event *models.RevenueEvent, state models.EventState) error {
		if err := state.Process(event); err != nil {
			return err
		}
		event.SettlementHash = settlementHash
		return nil
	})
}

// MarkFailed pending → failed, chỉ đổi status, splits giữ nguyên
func (s *LedgerService) MarkFailed(auth AuthorizationContext, eventID uint, reason string) (*models.RevenueEvent, error) {
	return s.transition(auth, eventID, func(event *models.RevenueEvent, state models.EventState) error {
		return state.Fail(event, reason)
	})
}

// MarkDisputed processed → disputed
func (s *LedgerService) MarkDisputed(auth AuthorizationContext, eventID uint, reason string) (*models.RevenueEvent, error) {
	return s.transition(auth, eventID, func(event *models.RevenueEvent, state models.EventState) error {
		return state.Dispute(event, reason)
	})
}

// Retry failed → pending, đường retry duy nhất và do caller chủ động gọi
func (s *LedgerService) Retry(auth AuthorizationContext, eventID uint) (*models.RevenueEvent, error) {
	return s.transition(auth, eventID, func(event *models.RevenueEvent, state models.EventState) error {
		return state.Retry(event)
	})
}

func (s *LedgerService) transition(auth AuthorizationContext, eventID uint, apply func(*models.RevenueEvent, models.EventState) error) (*models.RevenueEvent, error) {
	var event models.RevenueEvent
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, eventID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeEventNotFound, "Không tìm thấy revenue event", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Không đọc được revenue event", err)
		}

		var collection models.Collection
		if err := tx.First(&collection, event.CollectionID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy collection", err)
		}
		if !auth.CanManageCollection(&collection) {
			return errors.NewAppError(errors.ErrCodePermissionDenied, "Chỉ owner hoặc admin được chuyển trạng thái event", nil)
		}

		state := models.GetEventState(event.Status)
		if err := apply(&event, state); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidStateTransition, "Chuyển trạng thái không hợp lệ", err)
		}

		// Chỉ ghi các cột trạng thái, splits không bao giờ chạm tới
		return tx.Model(&event).Select("status", "status_reason", "settlement_hash").Updates(map[string]interface{}{
			"status":          event.Status,
			"status_reason":   event.StatusReason,
			"settlement_hash": event.SettlementHash,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// EventFilter điều kiện lọc lịch sử event
type EventFilter struct {
	CollectionID uint
	Status       *int
	FromDate     *time.Time
	ToDate       *time.Time
	Page         int
	Limit        int
}

// History lịch sử event đã lọc, kèm tổng số dòng cho phân trang
func (s *LedgerService) History(filter EventFilter) ([]models.RevenueEvent, int64, error) {
	query := s.db.Model(&models.RevenueEvent{})
	if filter.CollectionID != 0 {
		query = query.Where("collection_id = ?", filter.CollectionID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("created_at < ?", *filter.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không đếm được revenue event", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	var events []models.RevenueEvent
	err := query.
		Order("id DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&events).Error
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được lịch sử revenue event", err)
	}
	return events, total, nil
}
