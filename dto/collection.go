package dto

// CollectionRequest tạo collection mới
type CollectionRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// MemberRequest thêm/đổi tier thành viên collection
type MemberRequest struct {
	CollectionID uint   `json:"collectionId" binding:"required"`
	UserID       uint   `json:"userId" binding:"required"`
	AccessTier   string `json:"accessTier" binding:"required,oneof=owner editor collaborator viewer"`
}

// ProductRequest tạo product trong collection
type ProductRequest struct {
	CollectionID uint   `json:"collectionId" binding:"required"`
	CategoryID   *uint  `json:"categoryId"`
	Name         string `json:"name" binding:"required"`
	Price        int64  `json:"price" binding:"required,gt=0"`
	Currency     string `json:"currency"`
}
