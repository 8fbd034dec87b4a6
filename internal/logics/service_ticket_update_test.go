package logics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ysphere-server/internal/models"
)

func completedTicket() *models.ServiceTicket {
	return &models.ServiceTicket{
		TicketID:    "IT24110001",
		Title:       "印表機無法列印",
		Description: "三樓印表機卡紙後無法列印",
		Category:    models.TicketHardware,
		Priority:    models.PriorityMedium,
		Status:      models.TicketCompleted,
		Solution:    "更換碳粉匣後恢復正常",
	}
}

func TestApplyTicketUpdate(t *testing.T) {
	t.Run("只改優先等級不會清掉已完成單子的處理方案", func(t *testing.T) {
		proposed, err := applyTicketUpdate(completedTicket(), TicketUpdate{Priority: models.PriorityHigh})
		require.NoError(t, err)
		assert.Equal(t, models.PriorityHigh, proposed.Priority)
		assert.Equal(t, "更換碳粉匣後恢復正常", proposed.Solution)
		assert.Equal(t, models.TicketCompleted, proposed.Status)
	})

	t.Run("空欄位沿用既有內容", func(t *testing.T) {
		original := completedTicket()
		proposed, err := applyTicketUpdate(original, TicketUpdate{})
		require.NoError(t, err)
		assert.Equal(t, original.Title, proposed.Title)
		assert.Equal(t, original.Description, proposed.Description)
		assert.Equal(t, original.Location, proposed.Location)
		assert.Equal(t, original.Solution, proposed.Solution)
	})

	t.Run("沒有處理方案不能結單", func(t *testing.T) {
		original := &models.ServiceTicket{
			Title:       "VPN 連不上",
			Description: "外點同仁無法連回公司",
			Category:    models.TicketNetwork,
			Priority:    models.PriorityHigh,
			Status:      models.TicketConfirming,
		}
		_, err := applyTicketUpdate(original, TicketUpdate{Status: models.TicketCompleted})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Message, "處理方案")
	})

	t.Run("帶處理方案結單", func(t *testing.T) {
		original := &models.ServiceTicket{
			Title:       "VPN 連不上",
			Description: "外點同仁無法連回公司",
			Category:    models.TicketNetwork,
			Priority:    models.PriorityHigh,
			Status:      models.TicketConfirming,
		}
		proposed, err := applyTicketUpdate(original, TicketUpdate{
			Status:   models.TicketCompleted,
			Solution: "重設 VPN 帳號憑證",
		})
		require.NoError(t, err)
		assert.Equal(t, models.TicketCompleted, proposed.Status)
		assert.Equal(t, "重設 VPN 帳號憑證", proposed.Solution)
	})

	t.Run("不合法的狀態轉移", func(t *testing.T) {
		original := &models.ServiceTicket{
			Title:       "要申請新帳號",
			Description: "新進同仁需要帳號",
			Category:    models.TicketAccount,
			Priority:    models.PriorityMedium,
			Status:      models.TicketPending,
		}
		_, err := applyTicketUpdate(original, TicketUpdate{Status: models.TicketCompleted})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Message, "狀態無法")
	})

	t.Run("不合法的類別與優先等級", func(t *testing.T) {
		original := completedTicket()
		_, err := applyTicketUpdate(original, TicketUpdate{Category: "靈異問題"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)

		_, err = applyTicketUpdate(original, TicketUpdate{Priority: "超急"})
		require.ErrorAs(t, err, &ve)
	})
}
