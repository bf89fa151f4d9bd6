package validator

import (
	"testing"
	"time"

	"revsplit/constants"
	"revsplit/errors"
	"revsplit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *models.CollectionRevenueConfig {
	return &models.CollectionRevenueConfig{
		CollectionID:                1,
		OwnerSharePercentage:        70,
		EditorSharePercentage:       10,
		CollaboratorSharePercentage: 15,
		ViewerSharePercentage:       0,
		SplitModel:                  constants.SplitModelCustom,
	}
}

func TestValidateRevenueConfig(t *testing.T) {
	require.NoError(t, ValidateRevenueConfig(validConfig()))
}

func TestValidateRevenueConfig_SumExceeds100(t *testing.T) {
	config := validConfig()
	config.CollaboratorSharePercentage = 45

	err := ValidateRevenueConfig(config)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePercentageSum))
}

func TestValidateRevenueConfig_PercentageOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
	}{
		{"âm", -1},
		{"quá 100", 100.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.OwnerSharePercentage = tt.pct
			err := ValidateRevenueConfig(config)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidPercentage))
		})
	}
}

func TestValidateRevenueConfig_UnknownSplitModel(t *testing.T) {
	config := validConfig()
	config.SplitModel = "winner_takes_all"

	err := ValidateRevenueConfig(config)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestValidateBeneficiary(t *testing.T) {
	userID := uint(7)

	tests := []struct {
		name     string
		b        models.Beneficiary
		wantCode errors.ErrorCode
	}{
		{"user hợp lệ", models.Beneficiary{UserID: &userID}, ""},
		{"ví hợp lệ", models.Beneficiary{WalletAddress: "0x52908400098527886E0F7030069857D2E4169EE7", WalletLabel: "quy"}, ""},
		{"cả hai nhánh", models.Beneficiary{UserID: &userID, WalletAddress: "0x52908400098527886E0F7030069857D2E4169EE7"}, errors.ErrCodeInvalidBeneficiary},
		{"không nhánh nào", models.Beneficiary{}, errors.ErrCodeRequiredField},
		{"ví thiếu nhãn", models.Beneficiary{WalletAddress: "0x52908400098527886E0F7030069857D2E4169EE7"}, errors.ErrCodeRequiredField},
		{"ví sai ngữ pháp", models.Beneficiary{WalletAddress: "not-a-wallet", WalletLabel: "quy"}, errors.ErrCodeInvalidWallet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBeneficiary(tt.b)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantCode))
			}
		})
	}
}

func TestValidateIndividualShare(t *testing.T) {
	userID := uint(7)
	fixed := int64(500)
	zero := int64(0)

	tests := []struct {
		name     string
		share    models.IndividualShare
		wantCode errors.ErrorCode
	}{
		{
			"percentage hợp lệ",
			models.IndividualShare{CollectionID: 1, UserID: &userID, ShareType: constants.ShareTypePercentage, SharePercentage: 40},
			"",
		},
		{
			"fixed amount hợp lệ",
			models.IndividualShare{CollectionID: 1, UserID: &userID, ShareType: constants.ShareTypeFixedAmount, FixedAmount: &fixed},
			"",
		},
		{
			"thiếu collection",
			models.IndividualShare{UserID: &userID, ShareType: constants.ShareTypePercentage, SharePercentage: 40},
			errors.ErrCodeRequiredField,
		},
		{
			"percentage bằng 0",
			models.IndividualShare{CollectionID: 1, UserID: &userID, ShareType: constants.ShareTypePercentage, SharePercentage: 0},
			errors.ErrCodeInvalidPercentage,
		},
		{
			"fixed amount thiếu số tiền",
			models.IndividualShare{CollectionID: 1, UserID: &userID, ShareType: constants.ShareTypeFixedAmount},
			errors.ErrCodeRequiredField,
		},
		{
			"fixed amount bằng 0",
			models.IndividualShare{CollectionID: 1, UserID: &userID, ShareType: constants.ShareTypeFixedAmount, FixedAmount: &zero},
			errors.ErrCodeInvalidAmount,
		},
		{
			"loại share lạ",
			models.IndividualShare{CollectionID: 1, UserID: &userID, ShareType: "lottery"},
			errors.ErrCodeInvalidShareType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIndividualShare(&tt.share)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantCode))
			}
		})
	}
}

func TestValidateIndividualShare_WindowInverted(t *testing.T) {
	userID := uint(7)
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	until := from.Add(-time.Hour)
	share := models.IndividualShare{
		CollectionID:    1,
		UserID:          &userID,
		ShareType:       constants.ShareTypePercentage,
		SharePercentage: 40,
		EffectiveFrom:   from,
		EffectiveUntil:  &until,
	}

	err := ValidateIndividualShare(&share)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestValidateWalletAddress(t *testing.T) {
	valid := []string{
		"0x52908400098527886E0F7030069857D2E4169EE7",
		"1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
	}
	for _, addr := range valid {
		assert.NoError(t, ValidateWalletAddress(addr), addr)
	}

	invalid := []string{
		"",
		"0x1234", // hex quá ngắn
		"0x52908400098527886E0F7030069857D2E4169EZZ", // ký tự ngoài hex
		"0OIl1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",     // ký tự cấm trong base58
		"abc",
	}
	for _, addr := range invalid {
		assert.Error(t, ValidateWalletAddress(addr), addr)
	}
}

func TestValidateAttribution(t *testing.T) {
	valid := models.ItemAttribution{ItemID: 5, ItemType: constants.ItemTypeProduct, CollectionID: 1, CreatorID: 7, SharePercentage: 30}
	require.NoError(t, ValidateAttribution(&valid))

	badType := valid
	badType.ItemType = "bundle"
	assert.Error(t, ValidateAttribution(&badType))

	badPct := valid
	badPct.SharePercentage = 101
	err := ValidateAttribution(&badPct)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidPercentage))
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("USD"))
	assert.NoError(t, ValidateCurrency("VND"))
	assert.Error(t, ValidateCurrency("usd"))
	assert.Error(t, ValidateCurrency("DOLLARS"))
	assert.Error(t, ValidateCurrency(""))
}
