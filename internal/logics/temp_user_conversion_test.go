package logics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ysphere-server/configs"
	"ysphere-server/internal/logics/changetrack"
	"ysphere-server/internal/models"
)

type recordedAudit struct {
	action  string
	target  AuditTarget
	changes changetrack.Changes
}

// fakeConversionTxn 記錄轉正式交易的每一步呼叫順序
type fakeConversionTxn struct {
	insertErr error
	auditErr  error
	steps     []string
	audits    []recordedAudit
}

func (f *fakeConversionTxn) InsertUser(user *models.User) error {
	f.steps = append(f.steps, "insertUser")
	return f.insertErr
}

func (f *fakeConversionTxn) MarkTransferred(tempUser *models.TempUser) error {
	f.steps = append(f.steps, "markTransferred")
	return nil
}

func (f *fakeConversionTxn) RecordAudit(action string, target AuditTarget, changes changetrack.Changes) error {
	f.steps = append(f.steps, "recordAudit:"+action)
	if f.auditErr != nil {
		return f.auditErr
	}
	f.audits = append(f.audits, recordedAudit{action: action, target: target, changes: changes})
	return nil
}

func pendingOnboardTempUser() *models.TempUser {
	birth := time.Date(1995, 3, 10, 0, 0, 0, 0, time.UTC)
	company := primitive.NewObjectID()
	department := primitive.NewObjectID()
	return &models.TempUser{
		ID:         primitive.NewObjectID(),
		Name:       "林小華",
		IDNumber:   "A123456789",
		BirthDate:  &birth,
		Status:     models.TempUserPendingOnboard,
		Company:    &company,
		Department: &department,
	}
}

func TestRunConversion(t *testing.T) {
	configs.Configs.Service.EmailDomain = "ystravel.com.tw"

	t.Run("成功時依序寫入並留下兩筆異動紀錄", func(t *testing.T) {
		tempUser := pendingOnboardTempUser()
		user := buildFormalUser(tempUser, "A1OP007", "hashed")
		txn := &fakeConversionTxn{}

		err := runConversion(txn, tempUser, user, "宇順旅行社", "OP部")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"insertUser",
			"markTransferred",
			"recordAudit:" + models.ActionConvert,
			"recordAudit:" + models.ActionUpdate,
		}, txn.steps)

		require.Len(t, txn.audits, 2)
		convert := txn.audits[0]
		assert.Equal(t, models.ActionConvert, convert.action)
		assert.Equal(t, user.ID, convert.target.ID)
		assert.Equal(t, changetrack.Change{From: nil, To: "宇順旅行社"}, convert.changes["所屬公司"])
		assert.Equal(t, changetrack.Change{From: nil, To: "OP部"}, convert.changes["所屬部門"])
		assert.Equal(t, changetrack.Change{From: nil, To: "林小華"}, convert.changes["姓名"])

		status := txn.audits[1]
		assert.Equal(t, models.ActionUpdate, status.action)
		assert.Equal(t, tempUser.ID, status.target.ID)
		assert.Equal(t, changetrack.Change{
			From: models.TempUserPendingOnboard,
			To:   models.TempUserCompleted,
		}, status.changes["狀態"])
	})

	t.Run("Email 重複建檔失敗時後續步驟不執行", func(t *testing.T) {
		tempUser := pendingOnboardTempUser()
		user := buildFormalUser(tempUser, "A1OP008", "hashed")
		txn := &fakeConversionTxn{insertErr: &ConflictError{Message: "Email已註冊"}}

		err := runConversion(txn, tempUser, user, "宇順旅行社", "OP部")
		var ce *ConflictError
		require.ErrorAs(t, err, &ce)
		// 只跑到第一步，狀態更新與異動紀錄都沒發生
		assert.Equal(t, []string{"insertUser"}, txn.steps)
		assert.Empty(t, txn.audits)
		assert.Equal(t, models.TempUserPendingOnboard, tempUser.Status)
		assert.False(t, tempUser.IsTransferred)
	})

	t.Run("異動紀錄寫入失敗讓整筆轉正中止", func(t *testing.T) {
		tempUser := pendingOnboardTempUser()
		user := buildFormalUser(tempUser, "A1OP009", "hashed")
		txn := &fakeConversionTxn{auditErr: assert.AnError}

		err := runConversion(txn, tempUser, user, "宇順旅行社", "OP部")
		require.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, txn.audits)
	})
}
