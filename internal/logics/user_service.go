package logics

import (
	"context"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"ysphere-server/configs"
	"ysphere-server/internal/logics/changetrack"
	"ysphere-server/internal/models"
	"ysphere-server/internal/repositories"
	"ysphere-server/internal/utils"
)

const (
	resetTokenTTL      = 30 * time.Minute
	resetCooldown      = 5 * time.Minute
	resetTokenAlphabet = "0123456789abcdef"
)

var userDuplicateFields = map[string]string{
	"email":    "Email已註冊",
	"IDNumber": "身分證號碼已註冊",
	"userId":   "員工編號已註冊",
}

// UserService 正式員工的管理與帳號相關操作
type UserService struct {
	users       *mongo.Collection
	companies   *mongo.Collection
	departments *mongo.Collection
	audit       *AuditService
	sequences   *SequenceService
	email       *utils.EmailService
	redis       *redis.Client
}

func NewUserService(audit *AuditService, sequences *SequenceService, email *utils.EmailService) *UserService {
	return &UserService{
		users:       repositories.DBS.DB.Collection("users"),
		companies:   repositories.DBS.DB.Collection("companies"),
		departments: repositories.DBS.DB.Collection("departments"),
		audit:       audit,
		sequences:   sequences,
		email:       email,
		redis:       repositories.DBS.Redis,
	}
}

// CreatedUser 建立結果。初始密碼只在這裡回傳一次，不落地。
type CreatedUser struct {
	User            *models.User `json:"user"`
	InitialPassword string       `json:"initialPassword"`
}

// Create 建立正式員工：部門驗證、取號、產生初始密碼，寫入後記一筆創建異動。
func (s *UserService) Create(ctx context.Context, operator *models.User, input *models.User) (*CreatedUser, error) {
	if input.Name == "" || input.Email == "" || input.IDNumber == "" {
		return nil, &ValidationError{Message: "姓名、Email 與身分證號碼為必填"}
	}
	if input.Company.IsZero() || input.Department.IsZero() {
		return nil, &ValidationError{Message: "請選擇所屬公司與部門"}
	}

	company, department, err := s.loadOrg(ctx, input.Company, input.Department)
	if err != nil {
		return nil, err
	}
	if department.Company != company.ID {
		return nil, &ValidationError{Message: "部門不屬於所選公司"}
	}

	userID, err := s.sequences.NextUserNumber(ctx, department.DepartmentID)
	if err != nil {
		return nil, err
	}
	initialPassword, err := utils.GenerateInitialPassword()
	if err != nil {
		return nil, err
	}
	hashed, err := utils.HashPassword(initialPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := *input
	user.ID = primitive.NewObjectID()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.UserID = userID
	user.Password = hashed
	user.Tokens = []string{}
	user.IsFirstLogin = true
	if user.Role == 0 {
		user.Role = models.RoleUser
	}
	if user.EmploymentStatus == "" {
		user.EmploymentStatus = models.EmploymentActive
	}
	if user.FormStatus == "" {
		user.FormStatus = models.FormStatusIncomplete
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.users.InsertOne(ctx, &user); err != nil {
		return nil, duplicateKeyError(err, userDuplicateFields)
	}

	changes, err := changetrack.Diff(nil, &user, userFieldSpec)
	if err != nil {
		configs.Logger.Error("Failed to diff user for audit", zap.Error(err))
	} else {
		changes["所屬公司"] = changetrack.Change{From: nil, To: company.Name}
		changes["所屬部門"] = changetrack.Change{From: nil, To: department.Name}
		s.audit.Record(ctx, operator, models.ActionCreate, userAuditTarget(&user), changes)
	}

	return &CreatedUser{User: &user, InitialPassword: initialPassword}, nil
}

// Update 編輯員工資料。前端送出完整表單，這裡以現有資料為底套上可編輯欄位後
// 比對差異；沒有任何差異就不寫庫也不記異動。
func (s *UserService) Update(ctx context.Context, operator *models.User, id string, input *models.User) (*models.User, error) {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}

	proposed := *original
	applyEditableFields(&proposed, input)

	changes, err := changetrack.Diff(original, &proposed, userFieldSpec)
	if err != nil {
		return nil, err
	}
	if err := s.appendOrgChanges(ctx, original, &proposed, changes); err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return original, nil
	}

	// 任職狀態離開在職時強制登出
	if proposed.EmploymentStatus != models.EmploymentActive {
		proposed.Tokens = []string{}
	}
	proposed.UpdatedAt = time.Now()

	if _, err := s.users.ReplaceOne(ctx, bson.M{"_id": original.ID}, &proposed); err != nil {
		return nil, duplicateKeyError(err, userDuplicateFields)
	}
	s.audit.Record(ctx, operator, models.ActionUpdate, userAuditTarget(&proposed), changes)
	return &proposed, nil
}

// Delete 刪除員工並把刪除前的完整快照記進異動紀錄。
func (s *UserService) Delete(ctx context.Context, operator *models.User, id string) error {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return err
	}

	changes, diffErr := changetrack.Diff(original, nil, userFieldSpec)
	if diffErr == nil {
		if companyName, departmentName, err := s.orgNames(ctx, original.Company, original.Department); err == nil {
			if companyName != "" {
				changes["所屬公司"] = changetrack.Change{From: companyName, To: nil}
			}
			if departmentName != "" {
				changes["所屬部門"] = changetrack.Change{From: departmentName, To: nil}
			}
		}
	}

	if _, err := s.users.DeleteOne(ctx, bson.M{"_id": original.ID}); err != nil {
		return err
	}
	if diffErr == nil {
		s.audit.Record(ctx, operator, models.ActionDelete, userAuditTarget(original), changes)
	} else {
		configs.Logger.Error("Failed to diff user for audit", zap.Error(diffErr))
	}
	return nil
}

// UserDetail 單筆查詢結果，附上公司與部門資料。
type UserDetail struct {
	models.User
	CompanyInfo    *models.Company    `json:"companyInfo,omitempty"`
	DepartmentInfo *models.Department `json:"departmentInfo,omitempty"`
}

func (s *UserService) Get(ctx context.Context, id string) (*UserDetail, error) {
	user, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, user), nil
}

// Profile 回傳登入者自己的資料
func (s *UserService) Profile(ctx context.Context, user *models.User) *UserDetail {
	return s.detail(ctx, user)
}

func (s *UserService) detail(ctx context.Context, user *models.User) *UserDetail {
	detail := &UserDetail{User: *user}
	if !user.Company.IsZero() {
		var company models.Company
		if err := s.companies.FindOne(ctx, bson.M{"_id": user.Company}).Decode(&company); err == nil {
			detail.CompanyInfo = &company
		}
	}
	if !user.Department.IsZero() {
		var department models.Department
		if err := s.departments.FindOne(ctx, bson.M{"_id": user.Department}).Decode(&department); err == nil {
			detail.DepartmentInfo = &department
		}
	}
	return detail
}

// UserFilter 員工列表查詢條件
type UserFilter struct {
	Search           string
	Company          string
	Department       string
	Role             *int
	EmploymentStatus string
}

func (s *UserService) List(ctx context.Context, filter UserFilter, page utils.PageQuery) (*utils.PageResult, error) {
	query := bson.M{}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"userId": re},
			bson.M{"email": re},
		}
	}
	if filter.Company != "" {
		oid, err := primitive.ObjectIDFromHex(filter.Company)
		if err != nil {
			return nil, &ValidationError{Message: "公司編號格式錯誤"}
		}
		query["company"] = oid
	}
	if filter.Department != "" {
		oid, err := primitive.ObjectIDFromHex(filter.Department)
		if err != nil {
			return nil, &ValidationError{Message: "部門編號格式錯誤"}
		}
		query["department"] = oid
	}
	if filter.Role != nil {
		query["role"] = *filter.Role
	}
	if filter.EmploymentStatus != "" {
		query["employmentStatus"] = filter.EmploymentStatus
	}

	total, err := s.users.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.ItemsPerPage)).
		SetSort(page.Sort("userId"))
	cursor, err := s.users.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return page.Result(users, total), nil
}

// UserSuggestion 搜尋建議的精簡結果
type UserSuggestion struct {
	ID     primitive.ObjectID `bson:"_id" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	UserID string             `bson:"userId" json:"userId"`
	Email  string             `bson:"email" json:"email"`
}

// Suggestions 依姓名、員工編號或 Email 回傳最多 10 筆在職員工。
func (s *UserService) Suggestions(ctx context.Context, search string) ([]UserSuggestion, error) {
	if search == "" {
		return []UserSuggestion{}, nil
	}
	re := primitive.Regex{Pattern: search, Options: "i"}
	query := bson.M{
		"employmentStatus": models.EmploymentActive,
		"$or": bson.A{
			bson.M{"name": re},
			bson.M{"userId": re},
			bson.M{"email": re},
		},
	}
	opts := options.Find().
		SetLimit(10).
		SetProjection(bson.M{"name": 1, "userId": 1, "email": 1}).
		SetSort(bson.D{{Key: "userId", Value: 1}})
	cursor, err := s.users.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	suggestions := []UserSuggestion{}
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// CompanyHeadcount 各公司在職人數
type CompanyHeadcount struct {
	CompanyName string `bson:"companyName" json:"companyName"`
	Count       int64  `bson:"count" json:"count"`
}

func (s *UserService) EmployeeStats(ctx context.Context) ([]CompanyHeadcount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"employmentStatus": models.EmploymentActive}}},
		{{Key: "$group", Value: bson.M{"_id": "$company", "count": bson.M{"$sum": 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "companies",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "companyDoc",
		}}},
		{{Key: "$unwind", Value: "$companyDoc"}},
		{{Key: "$project", Value: bson.M{"companyName": "$companyDoc.name", "count": 1}}},
		{{Key: "$sort", Value: bson.M{"companyName": 1}}},
	}
	cursor, err := s.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	stats := []CompanyHeadcount{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// LoginResult 登入成功的回傳內容
type LoginResult struct {
	Token        string `json:"token"`
	Name         string `json:"name"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Role         int    `json:"role"`
	IsFirstLogin bool   `json:"isFirstLogin"`
	Avatar       string `json:"avatar,omitempty"`
}

// Login 驗證帳密並簽發 token。離職或停用帳號一律擋下。
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil, &ValidationError{Message: "使用者帳號或密碼錯誤"}
	}
	if err != nil {
		return nil, nil, err
	}
	if !utils.CheckPassword(user.Password, password) {
		return nil, nil, &ValidationError{Message: "使用者帳號或密碼錯誤"}
	}
	if user.EmploymentStatus != models.EmploymentActive {
		return nil, nil, &ValidationError{Message: "此帳號已停用"}
	}

	token, err := utils.SignUserToken(user.ID.Hex())
	if err != nil {
		return nil, nil, err
	}
	if _, err := s.users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$push": bson.M{"tokens": token}}); err != nil {
		return nil, nil, err
	}
	configs.Logger.Info("User logged in", zap.String("userId", user.UserID))
	return &LoginResult{
		Token:        token,
		Name:         user.Name,
		UserID:       user.UserID,
		Email:        user.Email,
		Role:         user.Role,
		IsFirstLogin: user.IsFirstLogin,
		Avatar:       user.Avatar,
	}, &user, nil
}

// Logout 移除目前這顆 token
func (s *UserService) Logout(ctx context.Context, user *models.User, token string) error {
	_, err := s.users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$pull": bson.M{"tokens": token}})
	return err
}

// ChangePassword 變更密碼並讓其他裝置全部登出。
func (s *UserService) ChangePassword(ctx context.Context, user *models.User, currentPassword, newPassword string) error {
	if !utils.CheckPassword(user.Password, currentPassword) {
		return &ValidationError{Message: "目前密碼錯誤"}
	}
	if len(newPassword) < 8 {
		return &ValidationError{Message: "新密碼長度至少需要 8 個字元"}
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"password":     hashed,
		"tokens":       []string{},
		"isFirstLogin": false,
		"updatedAt":    time.Now(),
	}}
	if _, err := s.users.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
		return err
	}
	s.audit.Record(ctx, user, models.ActionUpdate, userAuditTarget(user), changetrack.Changes{
		"密碼": {From: "原密碼", To: "新密碼"},
	})
	return nil
}

// ForgotPassword 寄送重設密碼信。五分鐘內只能申請一次，重設連結三十分鐘內有效。
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	cooldownKey := "pwreset:cooldown:" + user.ID.Hex()
	ok, err := s.redis.SetNX(ctx, cooldownKey, 1, resetCooldown).Result()
	if err != nil {
		return err
	}
	if !ok {
		ttl, _ := s.redis.TTL(ctx, cooldownKey).Result()
		return &ValidationError{Message: fmt.Sprintf("請稍後再試，%d 秒後可再次寄送", int(ttl.Seconds()))}
	}

	token, err := gonanoid.Generate(resetTokenAlphabet, 64)
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, "pwreset:token:"+token, user.ID.Hex(), resetTokenTTL).Err(); err != nil {
		return err
	}

	resetUrl := configs.Configs.Email.FrontendUrl + "/reset-password?token=" + token
	html := s.email.GenerateResetPasswordHTML(user.Name, resetUrl)
	if err := s.email.SendEmail(user.Email, "重設密碼通知", html); err != nil {
		configs.Logger.Error("Failed to send reset password email",
			zap.String("userId", user.UserID), zap.Error(err))
		return fmt.Errorf("寄送重設密碼信失敗: %w", err)
	}
	return nil
}

// ResetPassword 以重設連結換新密碼。token 用過即失效。
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return &ValidationError{Message: "新密碼長度至少需要 8 個字元"}
	}
	userHex, err := s.redis.GetDel(ctx, "pwreset:token:"+token).Result()
	if err == redis.Nil {
		return &ValidationError{Message: "重設連結已失效，請重新申請"}
	}
	if err != nil {
		return err
	}
	user, err := s.byHexID(ctx, userHex)
	if err != nil {
		return err
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"password":     hashed,
		"tokens":       []string{},
		"isFirstLogin": false,
		"updatedAt":    time.Now(),
	}}
	if _, err := s.users.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
		return err
	}
	s.audit.Record(ctx, user, models.ActionUpdate, userAuditTarget(user), changetrack.Changes{
		"密碼": {From: "舊密碼", To: "透過郵件重置的新密碼"},
	})
	return nil
}

// ByToken 依 token 內的使用者 ID 載入使用者，並確認 token 尚未被登出。
func (s *UserService) ByToken(ctx context.Context, userHex, token string) (*models.User, error) {
	var user models.User
	oid, err := primitive.ObjectIDFromHex(userHex)
	if err != nil {
		return nil, ErrNotFound
	}
	err = s.users.FindOne(ctx, bson.M{"_id": oid, "tokens": token}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) byHexID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) loadOrg(ctx context.Context, companyID, departmentID primitive.ObjectID) (*models.Company, *models.Department, error) {
	var company models.Company
	if err := s.companies.FindOne(ctx, bson.M{"_id": companyID}).Decode(&company); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, &ValidationError{Message: "查無所選公司"}
		}
		return nil, nil, err
	}
	var department models.Department
	if err := s.departments.FindOne(ctx, bson.M{"_id": departmentID}).Decode(&department); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, &ValidationError{Message: "查無所選部門"}
		}
		return nil, nil, err
	}
	return &company, &department, nil
}

func (s *UserService) orgNames(ctx context.Context, companyID, departmentID primitive.ObjectID) (string, string, error) {
	var companyName, departmentName string
	if !companyID.IsZero() {
		var company models.Company
		if err := s.companies.FindOne(ctx, bson.M{"_id": companyID}).Decode(&company); err == nil {
			companyName = company.Name
		} else if err != mongo.ErrNoDocuments {
			return "", "", err
		}
	}
	if !departmentID.IsZero() {
		var department models.Department
		if err := s.departments.FindOne(ctx, bson.M{"_id": departmentID}).Decode(&department); err == nil {
			departmentName = department.Name
		} else if err != mongo.ErrNoDocuments {
			return "", "", err
		}
	}
	return companyName, departmentName, nil
}

// appendOrgChanges 公司或部門參照有變動時，解析前後名稱補進變更集。
func (s *UserService) appendOrgChanges(ctx context.Context, original, proposed *models.User, changes changetrack.Changes) error {
	if original.Company != proposed.Company {
		company, department, err := s.loadOrg(ctx, proposed.Company, proposed.Department)
		if err != nil {
			return err
		}
		if department.Company != company.ID {
			return &ValidationError{Message: "部門不屬於所選公司"}
		}
		oldCompanyName, _, err := s.orgNames(ctx, original.Company, primitive.NilObjectID)
		if err != nil {
			return err
		}
		changes["所屬公司"] = changetrack.Change{From: nilIfEmpty(oldCompanyName), To: company.Name}
	}
	if original.Department != proposed.Department {
		var department models.Department
		if err := s.departments.FindOne(ctx, bson.M{"_id": proposed.Department}).Decode(&department); err != nil {
			if err == mongo.ErrNoDocuments {
				return &ValidationError{Message: "查無所選部門"}
			}
			return err
		}
		if department.Company != proposed.Company {
			return &ValidationError{Message: "部門不屬於所選公司"}
		}
		_, oldDepartmentName, err := s.orgNames(ctx, primitive.NilObjectID, original.Department)
		if err != nil {
			return err
		}
		changes["所屬部門"] = changetrack.Change{From: nilIfEmpty(oldDepartmentName), To: department.Name}
	}
	return nil
}

// applyEditableFields 把可編輯欄位從輸入覆蓋到既有資料上。
// 員工編號、密碼與 token 不在編輯範圍。
func applyEditableFields(dst, src *models.User) {
	dst.Name = src.Name
	dst.EnglishName = src.EnglishName
	dst.IDNumber = src.IDNumber
	dst.BirthDate = src.BirthDate
	dst.Gender = src.Gender
	dst.PersonalEmail = src.PersonalEmail
	dst.PermanentAddress = src.PermanentAddress
	dst.ContactAddress = src.ContactAddress
	dst.Email = strings.ToLower(strings.TrimSpace(src.Email))
	dst.PhoneNumber = src.PhoneNumber
	dst.Cellphone = src.Cellphone
	dst.Salary = src.Salary
	dst.ExtNumber = src.ExtNumber
	dst.PrintNumber = src.PrintNumber
	dst.EmergencyName = src.EmergencyName
	dst.EmergencyPhoneNumber = src.EmergencyPhoneNumber
	dst.EmergencyCellphone = src.EmergencyCellphone
	dst.EmergencyRelationship = src.EmergencyRelationship
	dst.Company = src.Company
	dst.Department = src.Department
	dst.JobTitle = src.JobTitle
	dst.Role = src.Role
	dst.CowellAccount = src.CowellAccount
	dst.CowellPassword = src.CowellPassword
	dst.EmploymentStatus = src.EmploymentStatus
	dst.HireDate = src.HireDate
	dst.ResignationDate = src.ResignationDate
	dst.Note = src.Note
	dst.HealthInsuranceStartDate = src.HealthInsuranceStartDate
	dst.HealthInsuranceEndDate = src.HealthInsuranceEndDate
	dst.LaborInsuranceStartDate = src.LaborInsuranceStartDate
	dst.LaborInsuranceEndDate = src.LaborInsuranceEndDate
	dst.SalaryBank = src.SalaryBank
	dst.SalaryBankBranch = src.SalaryBankBranch
	dst.SalaryAccountNumber = src.SalaryAccountNumber
	dst.GuideLicense = src.GuideLicense
	dst.TourManager = src.TourManager
	dst.YSRCAccount = src.YSRCAccount
	dst.YSRCPassword = src.YSRCPassword
	dst.YS168Account = src.YS168Account
	dst.YS168Password = src.YS168Password
	dst.DisabilityStatus = src.DisabilityStatus
	dst.IndigenousStatus = src.IndigenousStatus
	dst.VoluntaryPensionRate = src.VoluntaryPensionRate
	dst.VoluntaryPensionStartDate = src.VoluntaryPensionStartDate
	dst.VoluntaryPensionEndDate = src.VoluntaryPensionEndDate
	dst.DependentInsurance = src.DependentInsurance
	dst.TourismReportDate = src.TourismReportDate
	dst.FormStatus = src.FormStatus
	dst.Avatar = src.Avatar
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func userAuditTarget(user *models.User) AuditTarget {
	return AuditTarget{
		ID:    user.ID,
		Model: models.TargetUsers,
		Info: models.TargetInfo{
			Name:   user.Name,
			UserID: user.UserID,
		},
	}
}
