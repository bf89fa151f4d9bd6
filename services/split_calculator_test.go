package services

import (
	"math/rand"
	"testing"

	"revsplit/constants"
	"revsplit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userBeneficiary(id uint) models.Beneficiary {
	return models.Beneficiary{UserID: &id}
}

func walletBeneficiary(address, label string) models.Beneficiary {
	return models.Beneficiary{WalletAddress: address, WalletLabel: label}
}

func sumAmounts(splits []models.SplitEntry) int64 {
	var sum int64
	for _, s := range splits {
		sum += s.Amount
	}
	return sum
}

func TestComputeSplits_NoConfig(t *testing.T) {
	snap := ConfigSnapshot{OwnerID: 1}
	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 12345})

	require.Len(t, splits, 1)
	assert.Equal(t, uint(1), *splits[0].BeneficiaryID)
	assert.Equal(t, int64(12345), splits[0].Amount)
	assert.Equal(t, float64(100), splits[0].Percentage)
	assert.Equal(t, constants.SplitTagOwner, splits[0].ShareType)
}

func TestComputeSplits_ZeroTotal(t *testing.T) {
	splits := ComputeSplits(ConfigSnapshot{OwnerID: 1}, SaleContext{TotalAmount: 0})
	assert.Nil(t, splits)
}

// owner=70%, collaborator=30%, không có individual splits, collaborator X tạo
// product P, bán 100.00 trên P → X nhận 30.00 theo item, owner nhận 70.00
func TestComputeSplits_ItemAttribution(t *testing.T) {
	snap := ConfigSnapshot{
		HasConfig: true,
		OwnerID:   1,
		Attribution: &AttributionSnapshot{
			ItemID:     5,
			ItemType:   constants.ItemTypeProduct,
			CreatorID:  7,
			Percentage: 30,
		},
	}

	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 10000})

	require.Len(t, splits, 2)
	assert.Equal(t, uint(7), *splits[0].BeneficiaryID)
	assert.Equal(t, int64(3000), splits[0].Amount)
	assert.Equal(t, constants.SplitTagCollaboratorItem, splits[0].ShareType)
	assert.Equal(t, uint(5), *splits[0].ItemID)
	assert.Equal(t, constants.ItemTypeProduct, splits[0].ItemType)

	assert.Equal(t, uint(1), *splits[1].BeneficiaryID)
	assert.Equal(t, int64(7000), splits[1].Amount)
	assert.Equal(t, constants.SplitTagOwner, splits[1].ShareType)

	assert.Equal(t, int64(10000), sumAmounts(splits))
}

// shares [A:60%, B:40%], bán 50.00, không có attribution → [A:30.00, B:20.00]
func TestComputeSplits_IndividualShares(t *testing.T) {
	snap := ConfigSnapshot{
		HasConfig:              true,
		OwnerID:                1,
		EnableIndividualSplits: true,
		Shares: []ShareSnapshot{
			{Beneficiary: userBeneficiary(10), ShareType: constants.ShareTypePercentage, Percentage: 60},
			{Beneficiary: userBeneficiary(11), ShareType: constants.ShareTypePercentage, Percentage: 40},
		},
	}

	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 5000})

	require.Len(t, splits, 2)
	assert.Equal(t, int64(3000), splits[0].Amount)
	assert.Equal(t, int64(2000), splits[1].Amount)
	assert.Equal(t, constants.SplitTagIndividual, splits[0].ShareType)
	assert.Equal(t, int64(5000), sumAmounts(splits))
}

// ví độc lập W:10% + phần còn lại về owner trên lần bán 200.00
func TestComputeSplits_StandaloneWallet(t *testing.T) {
	snap := ConfigSnapshot{
		HasConfig:              true,
		OwnerID:                1,
		EnableIndividualSplits: true,
		Shares: []ShareSnapshot{
			{Beneficiary: walletBeneficiary("0x52908400098527886E0F7030069857D2E4169EE7", "quy-tu-thien"), ShareType: constants.ShareTypePercentage, Percentage: 10},
		},
	}

	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 20000})

	require.Len(t, splits, 2)
	assert.Equal(t, "0x52908400098527886E0F7030069857D2E4169EE7", splits[0].WalletAddress)
	assert.Equal(t, "quy-tu-thien", splits[0].RecipientLabel)
	assert.Equal(t, int64(2000), splits[0].Amount)
	assert.Equal(t, constants.SplitTagStandaloneWallet, splits[0].ShareType)

	assert.Equal(t, int64(18000), splits[1].Amount)
	assert.Equal(t, constants.SplitTagOwner, splits[1].ShareType)
	assert.Equal(t, int64(20000), sumAmounts(splits))
}

// collaborator đã nhận theo item không được nhận thêm từ pool phần còn lại
func TestComputeSplits_CollaboratorNotPaidTwice(t *testing.T) {
	snap := ConfigSnapshot{
		HasConfig:              true,
		OwnerID:                1,
		EnableIndividualSplits: true,
		Attribution: &AttributionSnapshot{
			ItemID:     5,
			ItemType:   constants.ItemTypeProduct,
			CreatorID:  7,
			Percentage: 20,
		},
		Shares: []ShareSnapshot{
			{Beneficiary: userBeneficiary(7), ShareType: constants.ShareTypePercentage, Percentage: 30, AccessTier: constants.TierCollaborator},
			{Beneficiary: userBeneficiary(8), ShareType: constants.ShareTypePercentage, Percentage: 50, AccessTier: constants.TierEditor},
		},
	}

	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 10000})

	require.Len(t, splits, 3)
	assert.Equal(t, uint(7), *splits[0].BeneficiaryID)
	assert.Equal(t, int64(2000), splits[0].Amount)

	assert.Equal(t, uint(8), *splits[1].BeneficiaryID)
	assert.Equal(t, int64(4000), splits[1].Amount) // 50% của 8000 còn lại

	assert.Equal(t, constants.SplitTagOwner, splits[2].ShareType)
	assert.Equal(t, int64(4000), splits[2].Amount)
	assert.Equal(t, int64(10000), sumAmounts(splits))

	// user 7 chỉ xuất hiện một lần
	count := 0
	for _, s := range splits {
		if s.BeneficiaryID != nil && *s.BeneficiaryID == 7 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

// share tier collaborator khác cũng bị loại khỏi pool khi lần bán có attribution
func TestComputeSplits_OtherCollaboratorExcluded(t *testing.T) {
	snap := ConfigSnapshot{
		HasConfig:              true,
		OwnerID:                1,
		EnableIndividualSplits: true,
		Attribution: &AttributionSnapshot{
			ItemID:     5,
			ItemType:   constants.ItemTypeProduct,
			CreatorID:  7,
			Percentage: 20,
		},
		Shares: []ShareSnapshot{
			{Beneficiary: userBeneficiary(9), ShareType: constants.ShareTypePercentage, Percentage: 40, AccessTier: constants.TierCollaborator},
		},
	}

	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 10000})

	require.Len(t, splits, 2)
	assert.Equal(t, uint(7), *splits[0].BeneficiaryID)
	assert.Equal(t, constants.SplitTagOwner, splits[1].ShareType)
	assert.Equal(t, int64(8000), splits[1].Amount)
}

func TestComputeSplits_FixedAmountShare(t *testing.T) {
	fixed := int64(500)
	snap := ConfigSnapshot{
		HasConfig:              true,
		OwnerID:                1,
		EnableIndividualSplits: true,
		Shares: []ShareSnapshot{
			{Beneficiary: userBeneficiary(10), ShareType: constants.ShareTypeFixedAmount, FixedAmount: &fixed},
			{Beneficiary: userBeneficiary(11), ShareType: constants.ShareTypePercentage, Percentage: 50},
		},
	}

	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 2000})

	require.Len(t, splits, 3)
	assert.Equal(t, int64(500), splits[0].Amount)
	assert.Equal(t, constants.SplitTagFixedAmount, splits[0].ShareType)
	assert.Equal(t, int64(750), splits[1].Amount) // 50% của 1500 sau fixed carve
	assert.Equal(t, int64(750), splits[2].Amount)
	assert.Equal(t, int64(2000), sumAmounts(splits))
}

// fixed amount lớn hơn phần còn lại thì bị chặn trên
func TestComputeSplits_FixedAmountClamped(t *testing.T) {
	fixed := int64(99999)
	snap := ConfigSnapshot{
		HasConfig:              true,
		OwnerID:                1,
		EnableIndividualSplits: true,
		Shares: []ShareSnapshot{
			{Beneficiary: userBeneficiary(10), ShareType: constants.ShareTypeFixedAmount, FixedAmount: &fixed},
		},
	}

	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 1000})

	require.NotEmpty(t, splits)
	assert.Equal(t, int64(1000), splits[0].Amount)
	assert.Equal(t, int64(1000), sumAmounts(splits))
}

// phần dư làm tròn được dồn để tổng luôn đúng bằng total
func TestComputeSplits_RoundingRemainder(t *testing.T) {
	snap := ConfigSnapshot{
		HasConfig:              true,
		OwnerID:                1,
		EnableIndividualSplits: true,
		Shares: []ShareSnapshot{
			{Beneficiary: userBeneficiary(10), ShareType: constants.ShareTypePercentage, Percentage: 33.33},
			{Beneficiary: userBeneficiary(11), ShareType: constants.ShareTypePercentage, Percentage: 33.33},
			{Beneficiary: userBeneficiary(12), ShareType: constants.ShareTypePercentage, Percentage: 33.33},
		},
	}

	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 100})

	assert.Equal(t, int64(100), sumAmounts(splits))
}

// property: tổng amount phát ra đúng bằng totalAmount với tỷ lệ và tổng ngẫu
// nhiên, kể cả các giá trị không chia hết
func TestComputeSplits_SumEqualsTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		numShares := rng.Intn(6)
		budget := 100.0
		shares := make([]ShareSnapshot, 0, numShares)
		for j := 0; j < numShares && budget > 0; j++ {
			pct := rng.Float64() * budget
			budget -= pct
			shares = append(shares, ShareSnapshot{
				Beneficiary: userBeneficiary(uint(100 + j)),
				ShareType:   constants.ShareTypePercentage,
				Percentage:  pct,
			})
		}

		snap := ConfigSnapshot{
			HasConfig:              true,
			OwnerID:                1,
			EnableIndividualSplits: true,
			Shares:                 shares,
		}
		if rng.Intn(2) == 0 {
			snap.Attribution = &AttributionSnapshot{
				ItemID:     1,
				ItemType:   constants.ItemTypeProduct,
				CreatorID:  777,
				Percentage: rng.Float64() * 100,
			}
		}

		total := rng.Int63n(10_000_000) + 1
		splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: total})

		require.NotEmpty(t, splits)
		assert.Equal(t, total, sumAmounts(splits), "iteration %d: total=%d", i, total)
		for _, s := range splits {
			assert.GreaterOrEqual(t, s.Amount, int64(0), "iteration %d", i)
		}
	}
}

// attribution pct bị chặn trên bởi phần còn lại để chịu được config đua ghi
func TestComputeSplits_AttributionClampedToTotal(t *testing.T) {
	snap := ConfigSnapshot{
		HasConfig: true,
		OwnerID:   1,
		Attribution: &AttributionSnapshot{
			ItemID:     5,
			ItemType:   constants.ItemTypeProduct,
			CreatorID:  7,
			Percentage: 100,
		},
	}

	splits := ComputeSplits(snap, SaleContext{CollectionID: 1, TotalAmount: 5000})

	assert.Equal(t, int64(5000), sumAmounts(splits))
	assert.Equal(t, int64(5000), splits[0].Amount)
}
