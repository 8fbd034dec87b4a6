package logics

import (
	"context"
	"strings"
	"time"

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

var tempUserFieldSpec = []changetrack.Field[models.TempUser]{
	{Key: "name", Label: "姓名", Get: func(t *models.TempUser) any { return t.Name }},
	{Key: "englishName", Label: "英文名", Get: func(t *models.TempUser) any { return t.EnglishName }},
	{Key: "personalEmail", Label: "個人Email", Get: func(t *models.TempUser) any { return t.PersonalEmail }},
	{Key: "IDNumber", Label: "身分證號碼", Get: func(t *models.TempUser) any { return t.IDNumber }},
	{Key: "gender", Label: "性別", Get: func(t *models.TempUser) any { return t.Gender }},
	{Key: "cellphone", Label: "手機號碼", Get: func(t *models.TempUser) any { return t.Cellphone }},
	{Key: "birthDate", Label: "生日", Get: func(t *models.TempUser) any { return t.BirthDate }, Format: changetrack.Date()},
	{Key: "permanentAddress", Label: "戶籍地址", Get: func(t *models.TempUser) any { return t.PermanentAddress }},
	{Key: "contactAddress", Label: "聯絡地址", Get: func(t *models.TempUser) any { return t.ContactAddress }},
	{Key: "emergencyName", Label: "緊急聯絡人姓名", Get: func(t *models.TempUser) any { return t.EmergencyName }},
	{Key: "emergencyCellphone", Label: "緊急聯絡人手機號碼", Get: func(t *models.TempUser) any { return t.EmergencyCellphone }},
	{Key: "emergencyRelationship", Label: "緊急聯絡人關係", Get: func(t *models.TempUser) any { return t.EmergencyRelationship }},
	{Key: "jobTitle", Label: "職稱", Get: func(t *models.TempUser) any { return t.JobTitle }},
	{Key: "salary", Label: "基本薪資", Get: func(t *models.TempUser) any { return t.Salary }},
	{Key: "extNumber", Label: "分機號碼", Get: func(t *models.TempUser) any { return t.ExtNumber }},
	{Key: "effectiveDate", Label: "預計入職日期", Get: func(t *models.TempUser) any { return t.EffectiveDate }, Format: changetrack.Date()},
	{Key: "status", Label: "狀態", Get: func(t *models.TempUser) any { return t.Status }},
	{Key: "seatDescription", Label: "座位描述", Get: func(t *models.TempUser) any { return t.SeatDescription }},
	{Key: "note", Label: "備註", Get: func(t *models.TempUser) any { return t.Note }},
}

// TempUserService 臨時員工（入職前流程）管理與轉正式。
type TempUserService struct {
	tempUsers   *mongo.Collection
	users       *mongo.Collection
	companies   *mongo.Collection
	departments *mongo.Collection
	audit       *AuditService
	sequences   *SequenceService
}

func NewTempUserService(audit *AuditService, sequences *SequenceService) *TempUserService {
	return &TempUserService{
		tempUsers:   repositories.DBS.DB.Collection("tempUsers"),
		users:       repositories.DBS.DB.Collection("users"),
		companies:   repositories.DBS.DB.Collection("companies"),
		departments: repositories.DBS.DB.Collection("departments"),
		audit:       audit,
		sequences:   sequences,
	}
}

var tempUserStatuses = map[string]struct{}{
	models.TempUserPendingInterview: {},
	models.TempUserPendingOnboard:   {},
	models.TempUserCompleted:        {},
	models.TempUserCancelled:        {},
}

func (s *TempUserService) Create(ctx context.Context, operator *models.User, input *models.TempUser) (*models.TempUser, error) {
	if input.Name == "" {
		return nil, &ValidationError{Message: "姓名為必填"}
	}
	now := time.Now()
	tempUser := *input
	tempUser.ID = primitive.NewObjectID()
	tempUser.IsTransferred = false
	if tempUser.Status == "" {
		tempUser.Status = models.TempUserPendingInterview
	}
	if _, ok := tempUserStatuses[tempUser.Status]; !ok {
		return nil, &ValidationError{Message: "狀態不正確"}
	}
	tempUser.CreatedBy = operator.ID
	tempUser.LastModifiedBy = nil
	tempUser.CreatedAt = now
	tempUser.UpdatedAt = now

	if _, err := s.tempUsers.InsertOne(ctx, &tempUser); err != nil {
		return nil, err
	}
	changes, diffErr := changetrack.Diff(nil, &tempUser, tempUserFieldSpec)
	if diffErr == nil {
		s.appendOrgNames(ctx, nil, &tempUser, changes)
		s.audit.Record(ctx, operator, models.ActionCreate, tempUserAuditTarget(&tempUser), changes)
	}
	return &tempUser, nil
}

func (s *TempUserService) Update(ctx context.Context, operator *models.User, id string, input *models.TempUser) (*models.TempUser, error) {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}
	proposed, err := applyTempUserUpdate(original, input)
	if err != nil {
		return nil, err
	}

	changes, err := changetrack.Diff(original, proposed, tempUserFieldSpec)
	if err != nil {
		return nil, err
	}
	s.appendOrgNames(ctx, original, proposed, changes)
	if len(changes) == 0 {
		return original, nil
	}

	operatorID := operator.ID
	proposed.LastModifiedBy = &operatorID
	proposed.UpdatedAt = time.Now()
	if _, err := s.tempUsers.ReplaceOne(ctx, bson.M{"_id": original.ID}, proposed); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, operator, models.ActionUpdate, tempUserAuditTarget(proposed), changes)
	return proposed, nil
}

// applyTempUserUpdate 把更新內容套在現有臨時員工上。已轉正式的不能再改，
// 狀態未帶時沿用原狀態，帶了就必須是合法值。
func applyTempUserUpdate(original, input *models.TempUser) (*models.TempUser, error) {
	if original.IsTransferred {
		return nil, &ValidationError{Message: "已轉為正式員工，無法再編輯"}
	}
	status := input.Status
	if status == "" {
		status = original.Status
	}
	if _, ok := tempUserStatuses[status]; !ok {
		return nil, &ValidationError{Message: "狀態不正確"}
	}

	proposed := *original
	proposed.Name = input.Name
	proposed.EnglishName = input.EnglishName
	proposed.PersonalEmail = input.PersonalEmail
	proposed.IDNumber = input.IDNumber
	proposed.Gender = input.Gender
	proposed.Cellphone = input.Cellphone
	proposed.BirthDate = input.BirthDate
	proposed.PermanentAddress = input.PermanentAddress
	proposed.ContactAddress = input.ContactAddress
	proposed.EmergencyName = input.EmergencyName
	proposed.EmergencyCellphone = input.EmergencyCellphone
	proposed.EmergencyRelationship = input.EmergencyRelationship
	proposed.Company = input.Company
	proposed.Department = input.Department
	proposed.JobTitle = input.JobTitle
	proposed.Salary = input.Salary
	proposed.ExtNumber = input.ExtNumber
	proposed.EffectiveDate = input.EffectiveDate
	proposed.Status = status
	proposed.SeatDescription = input.SeatDescription
	proposed.Note = input.Note
	return &proposed, nil
}

func (s *TempUserService) Delete(ctx context.Context, operator *models.User, id string) error {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return err
	}
	if original.IsTransferred {
		return &ValidationError{Message: "已轉為正式員工，無法刪除"}
	}
	changes, diffErr := changetrack.Diff(original, nil, tempUserFieldSpec)
	if _, err := s.tempUsers.DeleteOne(ctx, bson.M{"_id": original.ID}); err != nil {
		return err
	}
	if diffErr == nil {
		s.appendOrgNames(ctx, original, nil, changes)
		s.audit.Record(ctx, operator, models.ActionDelete, tempUserAuditTarget(original), changes)
	}
	return nil
}

func (s *TempUserService) Get(ctx context.Context, id string) (*models.TempUser, error) {
	return s.byHexID(ctx, id)
}

// TempUserFilter 臨時員工列表查詢條件
type TempUserFilter struct {
	Search string
	Status string
}

func (s *TempUserService) List(ctx context.Context, filter TempUserFilter, page utils.PageQuery) (*utils.PageResult, error) {
	query := bson.M{}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"personalEmail": re},
			bson.M{"cellphone": re},
		}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	total, err := s.tempUsers.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.ItemsPerPage)).
		SetSort(page.Sort("createdAt"))
	cursor, err := s.tempUsers.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	tempUsers := []models.TempUser{}
	if err := cursor.All(ctx, &tempUsers); err != nil {
		return nil, err
	}
	return page.Result(tempUsers, total), nil
}

// Convert 把臨時員工轉為正式員工。正式員工的建立、臨時員工的狀態更新與
// 異動紀錄放在同一個交易裡，任何一步失敗就整筆回滾。
func (s *TempUserService) Convert(ctx context.Context, operator *models.User, id string) (*CreatedUser, error) {
	tempUser, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tempUser.IsTransferred {
		return nil, &ValidationError{Message: "已轉為正式員工"}
	}
	if tempUser.Status != models.TempUserPendingOnboard {
		return nil, &ValidationError{Message: "只有待入職狀態可以轉為正式員工"}
	}
	if tempUser.Company == nil || tempUser.Department == nil {
		return nil, &ValidationError{Message: "請先填寫所屬公司與部門"}
	}
	if tempUser.IDNumber == "" || tempUser.BirthDate == nil {
		return nil, &ValidationError{Message: "請先填寫身分證號碼與生日"}
	}

	company, department, err := s.loadOrg(ctx, *tempUser.Company, *tempUser.Department)
	if err != nil {
		return nil, err
	}
	if department.Company != company.ID {
		return nil, &ValidationError{Message: "部門不屬於所選公司"}
	}

	// 流水號本身是原子的，交易回滾時號碼作廢不回收。
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

	user := buildFormalUser(tempUser, userID, hashed)

	session, err := repositories.DBS.Mongo.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		txn := &mongoConversionTxn{service: s, sc: sc, operator: operator}
		return nil, runConversion(txn, tempUser, user, company.Name, department.Name)
	})
	if err != nil {
		return nil, err
	}

	configs.Logger.Info("Temp user converted to formal user",
		zap.String("tempUserId", tempUser.ID.Hex()),
		zap.String("userId", user.UserID))
	return &CreatedUser{User: user, InitialPassword: initialPassword}, nil
}

// conversionTxn 轉正式交易裡的寫入步驟。任何一步回傳錯誤就中止，
// 後續步驟不會執行，交易整筆回滾。
type conversionTxn interface {
	InsertUser(user *models.User) error
	MarkTransferred(tempUser *models.TempUser) error
	RecordAudit(action string, target AuditTarget, changes changetrack.Changes) error
}

// runConversion 依序執行轉正式的四個寫入：建正式員工、更新臨時員工狀態、
// 寫轉正異動紀錄、寫臨時員工狀態異動紀錄。
func runConversion(txn conversionTxn, tempUser *models.TempUser, user *models.User, companyName, departmentName string) error {
	if err := txn.InsertUser(user); err != nil {
		return err
	}
	if err := txn.MarkTransferred(tempUser); err != nil {
		return err
	}

	changes, err := changetrack.Diff(nil, user, userFieldSpec)
	if err != nil {
		return err
	}
	changes["所屬公司"] = changetrack.Change{From: nil, To: companyName}
	changes["所屬部門"] = changetrack.Change{From: nil, To: departmentName}
	if err := txn.RecordAudit(models.ActionConvert, userAuditTarget(user), changes); err != nil {
		return err
	}

	tempChanges := changetrack.Changes{
		"狀態": {From: tempUser.Status, To: models.TempUserCompleted},
	}
	return txn.RecordAudit(models.ActionUpdate, tempUserAuditTarget(tempUser), tempChanges)
}

type mongoConversionTxn struct {
	service  *TempUserService
	sc       mongo.SessionContext
	operator *models.User
}

func (t *mongoConversionTxn) InsertUser(user *models.User) error {
	if _, err := t.service.users.InsertOne(t.sc, user); err != nil {
		return duplicateKeyError(err, userDuplicateFields)
	}
	return nil
}

func (t *mongoConversionTxn) MarkTransferred(tempUser *models.TempUser) error {
	update := bson.M{"$set": bson.M{
		"status":         models.TempUserCompleted,
		"isTransferred":  true,
		"lastModifiedBy": t.operator.ID,
		"updatedAt":      time.Now(),
	}}
	_, err := t.service.tempUsers.UpdateOne(t.sc, bson.M{"_id": tempUser.ID}, update)
	return err
}

func (t *mongoConversionTxn) RecordAudit(action string, target AuditTarget, changes changetrack.Changes) error {
	return t.service.audit.RecordInSession(t.sc, t.operator, action, target, changes)
}

// buildFormalUser 依欄位對應把臨時員工資料搬進正式員工。
// 公司信箱用員工編號加公司網域產生。
func buildFormalUser(tempUser *models.TempUser, userID, hashedPassword string) *models.User {
	now := time.Now()
	user := &models.User{
		ID:               primitive.NewObjectID(),
		Name:             tempUser.Name,
		EnglishName:      tempUser.EnglishName,
		IDNumber:         tempUser.IDNumber,
		Gender:           tempUser.Gender,
		PersonalEmail:    tempUser.PersonalEmail,
		PermanentAddress: tempUser.PermanentAddress,
		ContactAddress:   tempUser.ContactAddress,
		Cellphone:        tempUser.Cellphone,
		Salary:           tempUser.Salary,
		ExtNumber:        tempUser.ExtNumber,

		EmergencyName:         tempUser.EmergencyName,
		EmergencyCellphone:    tempUser.EmergencyCellphone,
		EmergencyRelationship: tempUser.EmergencyRelationship,

		Company:    *tempUser.Company,
		Department: *tempUser.Department,
		JobTitle:   tempUser.JobTitle,
		Role:       models.RoleUser,
		UserID:     userID,
		Email:      strings.ToLower(userID) + "@" + configs.Configs.Service.EmailDomain,
		Password:   hashedPassword,
		Tokens:     []string{},

		EmploymentStatus: models.EmploymentActive,
		FormStatus:       models.FormStatusIncomplete,
		Note:             tempUser.Note,
		IsFirstLogin:     true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if tempUser.BirthDate != nil {
		user.BirthDate = *tempUser.BirthDate
	}
	if tempUser.EffectiveDate != nil {
		user.HireDate = *tempUser.EffectiveDate
	}
	return user
}

// appendOrgNames 公司或部門參照有變動時補上名稱變更。original 或 proposed
// 為 nil 時對應建立與刪除。
func (s *TempUserService) appendOrgNames(ctx context.Context, original, proposed *models.TempUser, changes changetrack.Changes) {
	fromCompany, fromDepartment := s.orgNamesOf(ctx, original)
	toCompany, toDepartment := s.orgNamesOf(ctx, proposed)
	if fromCompany != toCompany {
		changes["所屬公司"] = changetrack.Change{From: nilIfEmpty(fromCompany), To: nilIfEmpty(toCompany)}
	}
	if fromDepartment != toDepartment {
		changes["所屬部門"] = changetrack.Change{From: nilIfEmpty(fromDepartment), To: nilIfEmpty(toDepartment)}
	}
}

func (s *TempUserService) orgNamesOf(ctx context.Context, tempUser *models.TempUser) (string, string) {
	if tempUser == nil {
		return "", ""
	}
	var companyName, departmentName string
	if tempUser.Company != nil {
		var company models.Company
		if err := s.companies.FindOne(ctx, bson.M{"_id": *tempUser.Company}).Decode(&company); err == nil {
			companyName = company.Name
		}
	}
	if tempUser.Department != nil {
		var department models.Department
		if err := s.departments.FindOne(ctx, bson.M{"_id": *tempUser.Department}).Decode(&department); err == nil {
			departmentName = department.Name
		}
	}
	return companyName, departmentName
}

func (s *TempUserService) loadOrg(ctx context.Context, companyID, departmentID primitive.ObjectID) (*models.Company, *models.Department, error) {
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

func (s *TempUserService) byHexID(ctx context.Context, id string) (*models.TempUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var tempUser models.TempUser
	err = s.tempUsers.FindOne(ctx, bson.M{"_id": oid}).Decode(&tempUser)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tempUser, nil
}

func tempUserAuditTarget(tempUser *models.TempUser) AuditTarget {
	return AuditTarget{
		ID:    tempUser.ID,
		Model: models.TargetTempUsers,
		Info: models.TargetInfo{
			Name: tempUser.Name,
		},
	}
}
