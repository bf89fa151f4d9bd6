package dto

// PaginationQuery tham số phân trang chung
type PaginationQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}
