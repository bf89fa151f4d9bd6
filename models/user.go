package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New User" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"-"`
	Role          int       `gorm:"default:0" json:"role"`
	Status        int       `gorm:"default:1" json:"status"`
	PayoutWallet  string    `gorm:"type:varchar(128)" json:"payoutWallet"`
	WalletLabel   string    `gorm:"type:varchar(64)" json:"walletLabel"`
	WalletUpdated time.Time `json:"walletUpdatedAt"`
}

// HasPayoutWallet kiểm tra user đã cấu hình ví nhận tiền chưa
func (u *User) HasPayoutWallet() bool {
	return u.PayoutWallet != ""
}
