package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken     ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken     ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword  ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Revenue config errors
	ErrCodeInvalidPercentage  ErrorCode = "INVALID_PERCENTAGE"
	ErrCodePercentageSum      ErrorCode = "PERCENTAGE_SUM_EXCEEDED"
	ErrCodeInvalidShareType   ErrorCode = "INVALID_SHARE_TYPE"
	ErrCodeInvalidWallet      ErrorCode = "INVALID_WALLET_ADDRESS"
	ErrCodeInvalidBeneficiary ErrorCode = "INVALID_BENEFICIARY"
	ErrCodeConfigNotFound     ErrorCode = "CONFIG_NOT_FOUND"

	// Ledger errors
	ErrCodeEventNotFound          ErrorCode = "EVENT_NOT_FOUND"
	ErrCodeInvalidStateTransition ErrorCode = "INVALID_STATE_TRANSITION"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// IsCode kiểm tra error có mang ErrorCode tương ứng không
func IsCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUnauthorized = errors.New("unauthorized")

	// Collection errors
	ErrCollectionNotFound = errors.New("collection not found")
	ErrMemberNotFound     = errors.New("collection member not found")

	// Revenue config errors
	ErrConfigNotFound      = errors.New("revenue config not found")
	ErrShareNotFound       = errors.New("individual share not found")
	ErrAttributionNotFound = errors.New("item attribution not found")

	// Ledger errors
	ErrEventNotFound  = errors.New("revenue event not found")
	ErrEventImmutable = errors.New("revenue event splits are immutable")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
