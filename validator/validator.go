package validator

import (
	"regexp"
	"revsplit/constants"
	"revsplit/errors"
	"revsplit/models"
	"time"
)

// ValidateRevenueConfig validate cấu hình chia doanh thu của collection.
// Bốn tỷ lệ mặc định mỗi cái trong [0,100] và tổng không vượt quá 100.
func ValidateRevenueConfig(config *models.CollectionRevenueConfig) error {
	percentages := []float64{
		config.OwnerSharePercentage,
		config.EditorSharePercentage,
		config.CollaboratorSharePercentage,
		config.ViewerSharePercentage,
	}
	for _, pct := range percentages {
		if pct < 0 || pct > 100 {
			return errors.NewAppError(errors.ErrCodeInvalidPercentage, "Tỷ lệ chia phải nằm trong khoảng từ 0 đến 100", nil)
		}
	}

	if config.DefaultsSum() > 100 {
		return errors.NewAppError(errors.ErrCodePercentageSum, "Tổng các tỷ lệ mặc định không được vượt quá 100", nil)
	}

	switch config.SplitModel {
	case constants.SplitModelOwnerOnly, constants.SplitModelEqualSplit,
		constants.SplitModelContributionBased, constants.SplitModelCustom:
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Mô hình chia không hợp lệ: "+config.SplitModel, nil)
	}

	if config.SettlementContract != "" && !isValidWalletAddress(config.SettlementContract) {
		return errors.NewAppError(errors.ErrCodeInvalidWallet, "Địa chỉ hợp đồng settlement không hợp lệ", nil)
	}

	return nil
}

// ValidateBeneficiary validate biến thể beneficiary: đúng một trong hai nhánh
func ValidateBeneficiary(b models.Beneficiary) error {
	if b.UserID != nil && b.WalletAddress != "" {
		return errors.NewAppError(errors.ErrCodeInvalidBeneficiary, "Beneficiary chỉ được là user hoặc ví độc lập, không được cả hai", nil)
	}

	if b.UserID == nil {
		if b.WalletAddress == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Beneficiary phải có user hoặc địa chỉ ví", nil)
		}
		if err := ValidateWalletAddress(b.WalletAddress); err != nil {
			return err
		}
		if b.WalletLabel == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Ví độc lập phải có nhãn", nil)
		}
	}

	return nil
}

// ValidateIndividualShare validate một dòng share trước khi ghi
func ValidateIndividualShare(share *models.IndividualShare) error {
	if share.CollectionID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID collection không được để trống", nil)
	}

	if err := ValidateBeneficiary(share.Beneficiary()); err != nil {
		return err
	}

	switch share.ShareType {
	case constants.ShareTypePercentage:
		if share.SharePercentage <= 0 || share.SharePercentage > 100 {
			return errors.NewAppError(errors.ErrCodeInvalidPercentage, "Tỷ lệ chia phải nằm trong khoảng từ 0 đến 100", nil)
		}
	case constants.ShareTypeFixedAmount:
		if share.FixedAmount == nil {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Share theo số tiền cố định phải có số tiền", nil)
		}
		if *share.FixedAmount <= 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền cố định phải lớn hơn 0", nil)
		}
	default:
		return errors.NewAppError(errors.ErrCodeInvalidShareType, "Loại share không hợp lệ: "+share.ShareType, nil)
	}

	if share.EffectiveUntil != nil && !share.EffectiveUntil.After(share.EffectiveFrom) {
		return errors.NewAppError(errors.ErrCodeValidation, "Thời điểm hết hiệu lực phải sau thời điểm bắt đầu", nil)
	}

	return nil
}

// ValidateAttribution validate attribution trước khi ghi
func ValidateAttribution(attr *models.ItemAttribution) error {
	if attr.ItemID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID item không được để trống", nil)
	}

	if attr.ItemType != constants.ItemTypeProduct && attr.ItemType != constants.ItemTypeCategory {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại item không hợp lệ: "+attr.ItemType, nil)
	}

	if attr.CreatorID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID người tạo không được để trống", nil)
	}

	if attr.SharePercentage < 0 || attr.SharePercentage > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidPercentage, "Tỷ lệ chia phải nằm trong khoảng từ 0 đến 100", nil)
	}

	return nil
}

// ValidateWalletAddress kiểm tra địa chỉ ví theo ngữ pháp cho phép
func ValidateWalletAddress(address string) error {
	if address == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Địa chỉ ví không được để trống", nil)
	}
	if !isValidWalletAddress(address) {
		return errors.NewAppError(errors.ErrCodeInvalidWallet, "Địa chỉ ví không hợp lệ: "+address, nil)
	}
	return nil
}

// ValidateAmount validate số tiền bán
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}
	return nil
}

// ValidateCurrency kiểm tra mã tiền tệ
func ValidateCurrency(currency string) error {
	if !isValidCurrency(currency) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Mã tiền tệ không hợp lệ: "+currency, nil)
	}
	return nil
}

// ValidateEffectiveWindow kiểm tra cửa sổ hiệu lực
func ValidateEffectiveWindow(from time.Time, until *time.Time) error {
	if from.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thời điểm bắt đầu hiệu lực không được để trống", nil)
	}
	if until != nil && !until.After(from) {
		return errors.NewAppError(errors.ErrCodeValidation, "Thời điểm hết hiệu lực phải sau thời điểm bắt đầu", nil)
	}
	return nil
}

// isValidWalletAddress chấp nhận địa chỉ hex 0x 40 ký tự hoặc base58 25-62 ký tự
func isValidWalletAddress(address string) bool {
	return hexAddressRegex.MatchString(address) || base58AddressRegex.MatchString(address)
}

// isValidCurrency kiểm tra mã tiền tệ ISO 4217
func isValidCurrency(currency string) bool {
	return currencyRegex.MatchString(currency)
}

var (
	hexAddressRegex    = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	base58AddressRegex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{25,62}$`)
	currencyRegex      = regexp.MustCompile(`^[A-Z]{3}$`)
)
