package logics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ysphere-server/internal/models"
)

func TestApplyAnnouncementUpdate(t *testing.T) {
	original := &models.Announcement{
		Title:   "十月員工旅遊報名",
		Content: "請於月底前完成報名",
		Type:    models.AnnouncementActivity,
	}

	t.Run("未帶類型時沿用原類型", func(t *testing.T) {
		proposed, err := applyAnnouncementUpdate(original, &models.Announcement{
			Title:   "十月員工旅遊報名（延長）",
			Content: "報名延長至下月五日",
		})
		require.NoError(t, err)
		assert.Equal(t, models.AnnouncementActivity, proposed.Type)
		assert.Equal(t, "十月員工旅遊報名（延長）", proposed.Title)
	})

	t.Run("帶了類型就必須是合法值", func(t *testing.T) {
		_, err := applyAnnouncementUpdate(original, &models.Announcement{
			Title:   "十月員工旅遊報名",
			Content: "請於月底前完成報名",
			Type:    "緊急插播",
		})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "公告類型不正確", ve.Message)
	})

	t.Run("合法的類型變更", func(t *testing.T) {
		proposed, err := applyAnnouncementUpdate(original, &models.Announcement{
			Title:   "十月員工旅遊報名",
			Content: "請於月底前完成報名",
			Type:    models.AnnouncementImportant,
		})
		require.NoError(t, err)
		assert.Equal(t, models.AnnouncementImportant, proposed.Type)
	})
}
