package logics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ysphere-server/configs"
	"ysphere-server/internal/models"
)

func TestBuildFormalUser(t *testing.T) {
	configs.Configs.Service.EmailDomain = "ystravel.com.tw"

	companyID := primitive.NewObjectID()
	departmentID := primitive.NewObjectID()
	birth := time.Date(1995, 3, 10, 0, 0, 0, 0, time.UTC)
	effective := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)

	tempUser := &models.TempUser{
		ID:               primitive.NewObjectID(),
		Name:             "林小華",
		EnglishName:      "Hua",
		PersonalEmail:    "hua@example.com",
		IDNumber:         "A123456789",
		Gender:           "女",
		Cellphone:        "0912345678",
		BirthDate:        &birth,
		PermanentAddress: "台北市",
		ContactAddress:   "新北市",
		Company:          &companyID,
		Department:       &departmentID,
		JobTitle:         "OP",
		Salary:           "35000",
		EffectiveDate:    &effective,
		Status:           models.TempUserPendingOnboard,
		Note:             "旺季支援",
	}

	user := buildFormalUser(tempUser, "A1OP007", "hashed")

	assert.Equal(t, "林小華", user.Name)
	assert.Equal(t, "A123456789", user.IDNumber)
	assert.Equal(t, "hua@example.com", user.PersonalEmail)
	assert.Equal(t, companyID, user.Company)
	assert.Equal(t, departmentID, user.Department)
	assert.Equal(t, birth, user.BirthDate)
	assert.Equal(t, "旺季支援", user.Note)

	// 編號、公司信箱與預設值
	assert.Equal(t, "A1OP007", user.UserID)
	assert.Equal(t, "a1op007@ystravel.com.tw", user.Email)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.EmploymentActive, user.EmploymentStatus)
	assert.Equal(t, models.FormStatusIncomplete, user.FormStatus)
	assert.True(t, user.IsFirstLogin)
	require.NotNil(t, user.Tokens)
	assert.Empty(t, user.Tokens)

	// 預計入職日期成為入職日期
	assert.Equal(t, effective, user.HireDate)
}

func TestApplyTempUserUpdate(t *testing.T) {
	original := &models.TempUser{
		Name:   "林小華",
		Status: models.TempUserPendingInterview,
	}

	t.Run("未帶狀態時沿用原狀態", func(t *testing.T) {
		proposed, err := applyTempUserUpdate(original, &models.TempUser{Name: "林小華"})
		require.NoError(t, err)
		assert.Equal(t, models.TempUserPendingInterview, proposed.Status)
	})

	t.Run("狀態必須是四個合法值之一", func(t *testing.T) {
		_, err := applyTempUserUpdate(original, &models.TempUser{
			Name:   "林小華",
			Status: "面試中",
		})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "狀態不正確", ve.Message)
	})

	t.Run("已轉正式不能再編輯", func(t *testing.T) {
		transferred := &models.TempUser{
			Name:          "林小華",
			Status:        models.TempUserCompleted,
			IsTransferred: true,
		}
		_, err := applyTempUserUpdate(transferred, &models.TempUser{Name: "林大華"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Message, "正式員工")
	})
}

func TestTicketTransitions(t *testing.T) {
	allowed := [][2]string{
		{models.TicketPending, models.TicketInProgress},
		{models.TicketPending, models.TicketCancelled},
		{models.TicketInProgress, models.TicketConfirming},
		{models.TicketInProgress, models.TicketCompleted},
		{models.TicketInProgress, models.TicketCancelled},
		{models.TicketConfirming, models.TicketCompleted},
		{models.TicketConfirming, models.TicketInProgress},
	}
	for _, pair := range allowed {
		assert.True(t, transitionAllowed(pair[0], pair[1]), "%s → %s", pair[0], pair[1])
	}

	denied := [][2]string{
		{models.TicketPending, models.TicketCompleted},
		{models.TicketCompleted, models.TicketInProgress},
		{models.TicketCancelled, models.TicketPending},
		{models.TicketCompleted, models.TicketCancelled},
	}
	for _, pair := range denied {
		assert.False(t, transitionAllowed(pair[0], pair[1]), "%s → %s", pair[0], pair[1])
	}
}
