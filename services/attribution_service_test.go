package services

import (
	"testing"
	"time"

	"revsplit/constants"
	"revsplit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// đăng ký lại creator cho cùng item: chỉ còn một attribution active, dòng cũ
// giữ lại trong lịch sử
func TestRegisterItemCreator_Idempotent(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@revsplit.vn")
	creator := seedUser(t, db, "creator@revsplit.vn")
	collection := seedCollection(t, db, owner.ID)
	seedMember(t, db, collection.ID, creator.ID, constants.TierCollaborator)

	svc := NewAttributionService(db)
	override := 30.0

	first, err := svc.RegisterItemCreator(collection.ID, 5, constants.ItemTypeProduct, creator.ID, &override)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.RegisterItemCreator(collection.ID, 5, constants.ItemTypeProduct, creator.ID, &override)
	require.NoError(t, err)
	require.NotNil(t, second)

	var activeCount, totalCount int64
	require.NoError(t, db.Model(&models.ItemAttribution{}).
		Where("item_id = ? AND item_type = ? AND is_active = ?", 5, constants.ItemTypeProduct, true).
		Count(&activeCount).Error)
	require.NoError(t, db.Model(&models.ItemAttribution{}).
		Where("item_id = ? AND item_type = ?", 5, constants.ItemTypeProduct).
		Count(&totalCount).Error)

	assert.Equal(t, int64(1), activeCount)
	assert.Equal(t, int64(2), totalCount)

	found, err := svc.Lookup(5, constants.ItemTypeProduct, time.Now())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, second.ID, found.ID)
}

// tier không phải collaborator thì không có attribution, không lỗi
func TestRegisterItemCreator_NonCollaboratorSkipped(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@revsplit.vn")
	editor := seedUser(t, db, "editor@revsplit.vn")
	collection := seedCollection(t, db, owner.ID)
	seedMember(t, db, collection.ID, editor.ID, constants.TierEditor)

	svc := NewAttributionService(db)

	attribution, err := svc.RegisterItemCreator(collection.ID, 7, constants.ItemTypeProduct, editor.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, attribution)

	found, err := svc.Lookup(7, constants.ItemTypeProduct, time.Now())
	require.NoError(t, err)
	assert.Nil(t, found)
}

// tra cứu lịch sử: asOf trước thời điểm đăng ký thì không thấy attribution
func TestLookup_AsOfBeforeRegistration(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@revsplit.vn")
	creator := seedUser(t, db, "creator@revsplit.vn")
	collection := seedCollection(t, db, owner.ID)
	seedMember(t, db, collection.ID, creator.ID, constants.TierCollaborator)

	svc := NewAttributionService(db)
	override := 20.0
	_, err := svc.RegisterItemCreator(collection.ID, 9, constants.ItemTypeProduct, creator.ID, &override)
	require.NoError(t, err)

	found, err := svc.Lookup(9, constants.ItemTypeProduct, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = svc.Lookup(9, constants.ItemTypeProduct, time.Now())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, float64(20), found.SharePercentage)
}
