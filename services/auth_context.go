package services

import (
	"revsplit/constants"
	"revsplit/models"
)

// AuthorizationContext capability object do tầng ngoài (middleware) dựng sẵn và
// truyền vào engine; engine tin tưởng nó chứ không tự tra danh tính.
type AuthorizationContext struct {
	UserID uint
	Role   int
}

// IsAdmin quyền admin toàn hệ thống
func (a AuthorizationContext) IsAdmin() bool {
	return a.Role == constants.RoleAdmin
}

// CanManageCollection owner của collection hoặc admin mới được sửa cấu hình
func (a AuthorizationContext) CanManageCollection(collection *models.Collection) bool {
	return a.IsAdmin() || collection.OwnerID == a.UserID
}
