package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSplits(t *testing.T) {
	userID := uint(7)
	itemID := uint(5)
	splits := []SplitEntry{
		{BeneficiaryID: &userID, Amount: 3000, Percentage: 30, ShareType: "collaborator_item", ItemID: &itemID, ItemType: "product"},
		{WalletAddress: "0x52908400098527886E0F7030069857D2E4169EE7", RecipientLabel: "quy-tu-thien", Amount: 7000, Percentage: 70, ShareType: "standalone_wallet"},
	}

	raw, err := EncodeSplits(splits)
	require.NoError(t, err)

	event := &RevenueEvent{Splits: raw}
	decoded, err := event.DecodeSplits()
	require.NoError(t, err)
	assert.Equal(t, splits, decoded)
}

// field lạ trong cột splits phải được bỏ qua khi đọc lại
func TestDecodeSplits_IgnoresUnknownFields(t *testing.T) {
	event := &RevenueEvent{
		Splits: json.RawMessage(`[{"amount":500,"share_type":"owner","settlement_batch":"b-01"}]`),
	}

	decoded, err := event.DecodeSplits()
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, int64(500), decoded[0].Amount)
	assert.Equal(t, "owner", decoded[0].ShareType)
}

func TestBeneficiary_Variants(t *testing.T) {
	userID := uint(42)
	user := Beneficiary{UserID: &userID}
	wallet := Beneficiary{WalletAddress: "0x52908400098527886E0F7030069857D2E4169EE7", WalletLabel: "quy"}

	assert.True(t, user.IsUser())
	assert.False(t, user.IsStandaloneWallet())
	assert.Equal(t, "user:42", user.Key())

	assert.False(t, wallet.IsUser())
	assert.True(t, wallet.IsStandaloneWallet())
	assert.Equal(t, "wallet:0x52908400098527886E0F7030069857D2E4169EE7", wallet.Key())
}

func TestIndividualShare_EffectiveAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	until := now.Add(24 * time.Hour)

	tests := []struct {
		name  string
		share IndividualShare
		asOf  time.Time
		want  bool
	}{
		{"trong cửa sổ", IndividualShare{IsActive: true, EffectiveFrom: now.Add(-time.Hour), EffectiveUntil: &until}, now, true},
		{"không giới hạn trên", IndividualShare{IsActive: true, EffectiveFrom: now.Add(-time.Hour)}, now, true},
		{"chưa bắt đầu", IndividualShare{IsActive: true, EffectiveFrom: now.Add(time.Hour)}, now, false},
		{"đã hết hạn", IndividualShare{IsActive: true, EffectiveFrom: now.Add(-48 * time.Hour), EffectiveUntil: &now}, now, false},
		{"đã deactivate", IndividualShare{IsActive: false, EffectiveFrom: now.Add(-time.Hour)}, now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.share.EffectiveAt(tt.asOf))
		})
	}
}
