package logics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/logics/changetrack"
	"ysphere-server/internal/models"
)

func TestBuildEntry(t *testing.T) {
	operator := &models.User{
		ID:     primitive.NewObjectID(),
		Name:   "張人資",
		UserID: "A1HR001",
	}
	target := logics.AuditTarget{
		ID:    primitive.NewObjectID(),
		Model: models.TargetUsers,
		Info:  models.TargetInfo{Name: "王小明", UserID: "A1IT003"},
	}
	now := time.Date(2024, 11, 29, 10, 0, 0, 0, time.UTC)

	t.Run("empty change set yields no entry", func(t *testing.T) {
		entry, ok := logics.BuildEntry(operator, models.ActionUpdate, target, changetrack.Changes{}, now)
		assert.False(t, ok)
		assert.Nil(t, entry)
	})

	t.Run("entry snapshots operator and target", func(t *testing.T) {
		changes := changetrack.Changes{
			"姓名": {From: "王小明", To: "王大明"},
		}
		entry, ok := logics.BuildEntry(operator, models.ActionUpdate, target, changes, now)
		require.True(t, ok)

		assert.Equal(t, models.ActionUpdate, entry.Action)
		assert.Equal(t, target.ID, entry.TargetID)
		assert.Equal(t, models.TargetUsers, entry.TargetModel)
		assert.Equal(t, "王小明", entry.TargetInfo.Name)
		assert.Equal(t, "A1IT003", entry.TargetInfo.UserID)
		require.NotNil(t, entry.OperatorID)
		assert.Equal(t, operator.ID, *entry.OperatorID)
		assert.Equal(t, "張人資", entry.OperatorInfo.Name)
		assert.Equal(t, "A1HR001", entry.OperatorInfo.UserID)
		assert.Equal(t, now, entry.CreatedAt)
		assert.Equal(t, changes, entry.Changes)
	})

	t.Run("system actions have no operator", func(t *testing.T) {
		changes := changetrack.Changes{"狀態": {From: "待處理", To: "已取消"}}
		entry, ok := logics.BuildEntry(nil, models.ActionUpdate, target, changes, now)
		require.True(t, ok)
		assert.Nil(t, entry.OperatorID)
		assert.Empty(t, entry.OperatorInfo.Name)
	})
}
