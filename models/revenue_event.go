package models

import (
	"encoding/json"
	"time"

	gojson "github.com/goccy/go-json"
)

// Revenue event status constants
const (
	EventStatusPending   = 0
	EventStatusProcessed = 1
	EventStatusFailed    = 2
	EventStatusDisputed  = 3
)

// SplitEntry một tuple chia tiền đã chốt trong RevenueEvent. Đây là hợp đồng
// lưu trữ với phía settlement: tên field JSON không được đổi, field lạ phải
// được bỏ qua khi đọc (forward-compatible).
type SplitEntry struct {
	BeneficiaryID  *uint   `json:"beneficiary_id,omitempty"`
	WalletAddress  string  `json:"wallet_address,omitempty"`
	RecipientLabel string  `json:"recipient_label,omitempty"`
	Amount         int64   `json:"amount"`
	Percentage     float64 `json:"percentage"`
	ShareType      string  `json:"share_type"`
	ItemID         *uint   `json:"item_id,omitempty"`
	ItemType       string  `json:"item_type,omitempty"`
	Unresolved     bool    `json:"unresolved_wallet,omitempty"`
}

// RevenueEvent bản ghi bất biến của một lần bán: splits chốt tại thời điểm
// tạo, không bao giờ sửa; muốn điều chỉnh thì ghi event bù mới. Chỉ Status
// được phép chuyển theo máy trạng thái trong revenue_event_state.go.
type RevenueEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	CollectionID uint      `gorm:"not null;index" json:"collectionId"`
	ProductID    *uint     `json:"productId,omitempty"`
	CategoryID   *uint     `json:"categoryId,omitempty"`
	OrderID      *uint     `gorm:"index" json:"orderId,omitempty"`
	SaleActorID  *uint     `json:"saleActorId,omitempty"`

	TotalAmount    int64           `gorm:"not null" json:"totalAmount"`
	Currency       string          `gorm:"type:varchar(8);not null;default:USD" json:"currency"`
	Splits         json.RawMessage `gorm:"type:json;not null" json:"splits"`
	Status         int             `gorm:"not null;default:0;index" json:"status"`
	StatusReason   string          `gorm:"type:varchar(255)" json:"statusReason,omitempty"`
	SettlementHash string          `gorm:"type:varchar(128)" json:"settlementHash,omitempty"`
}

// EncodeSplits chốt danh sách splits thành cột JSON
func EncodeSplits(splits []SplitEntry) (json.RawMessage, error) {
	raw, err := gojson.Marshal(splits)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// DecodeSplits đọc lại splits đã chốt; field lạ trong JSON được bỏ qua
func (e *RevenueEvent) DecodeSplits() ([]SplitEntry, error) {
	var splits []SplitEntry
	if err := gojson.Unmarshal([]byte(e.Splits), &splits); err != nil {
		return nil, err
	}
	return splits, nil
}
