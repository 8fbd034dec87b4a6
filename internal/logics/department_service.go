package logics

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ysphere-server/internal/logics/changetrack"
	"ysphere-server/internal/models"
	"ysphere-server/internal/repositories"
	"ysphere-server/internal/utils"
)

var departmentFieldSpec = []changetrack.Field[models.Department]{
	{Key: "name", Label: "部門名稱", Get: func(d *models.Department) any { return d.Name }},
	{Key: "departmentId", Label: "部門編號", Get: func(d *models.Department) any { return d.DepartmentID }},
}

var departmentDuplicateFields = map[string]string{
	"departmentId": "部門編號已存在",
	"name":         "同公司下已有相同名稱的部門",
}

// DepartmentService 部門管理
type DepartmentService struct {
	departments *mongo.Collection
	companies   *mongo.Collection
	users       *mongo.Collection
	audit       *AuditService
	sequences   *SequenceService
}

func NewDepartmentService(audit *AuditService, sequences *SequenceService) *DepartmentService {
	return &DepartmentService{
		departments: repositories.DBS.DB.Collection("departments"),
		companies:   repositories.DBS.DB.Collection("companies"),
		users:       repositories.DBS.DB.Collection("users"),
		audit:       audit,
		sequences:   sequences,
	}
}

// Create 在公司底下建立部門。部門編號是公司編號加兩位流水號，
// 同公司超過 99 個部門會回報錯誤而不是默默繞回。
func (s *DepartmentService) Create(ctx context.Context, operator *models.User, name, companyHex string) (*models.Department, error) {
	if name == "" {
		return nil, &ValidationError{Message: "部門名稱為必填"}
	}
	companyOID, err := primitive.ObjectIDFromHex(companyHex)
	if err != nil {
		return nil, &ValidationError{Message: "查無所選公司"}
	}
	var company models.Company
	if err := s.companies.FindOne(ctx, bson.M{"_id": companyOID}).Decode(&company); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &ValidationError{Message: "查無所選公司"}
		}
		return nil, err
	}

	code, err := s.sequences.NextDepartmentCode(ctx, company.CompanyID)
	if err != nil {
		if err == ErrSequenceExhausted {
			return nil, &ValidationError{Message: "此公司的部門數已達上限"}
		}
		return nil, err
	}

	now := time.Now()
	department := &models.Department{
		ID:           primitive.NewObjectID(),
		Name:         name,
		DepartmentID: code,
		Company:      company.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.departments.InsertOne(ctx, department); err != nil {
		return nil, duplicateKeyError(err, departmentDuplicateFields)
	}

	changes, diffErr := changetrack.Diff(nil, department, departmentFieldSpec)
	if diffErr == nil {
		changes["所屬公司"] = changetrack.Change{From: nil, To: company.Name}
		s.audit.Record(ctx, operator, models.ActionCreate, departmentAuditTarget(department), changes)
	}
	return department, nil
}

// Update 部門只能改名。編號含公司前綴，搬移公司會讓既有員工編號失效，不開放。
func (s *DepartmentService) Update(ctx context.Context, operator *models.User, id, name string) (*models.Department, error) {
	if name == "" {
		return nil, &ValidationError{Message: "部門名稱為必填"}
	}
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}
	proposed := *original
	proposed.Name = name

	changes, err := changetrack.Diff(original, &proposed, departmentFieldSpec)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return original, nil
	}
	proposed.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{"name": proposed.Name, "updatedAt": proposed.UpdatedAt}}
	if _, err := s.departments.UpdateOne(ctx, bson.M{"_id": original.ID}, update); err != nil {
		return nil, duplicateKeyError(err, departmentDuplicateFields)
	}
	s.audit.Record(ctx, operator, models.ActionUpdate, departmentAuditTarget(&proposed), changes)
	return &proposed, nil
}

// Delete 刪除部門。還有在職員工時在寫入任何東西之前就擋下，
// 不會留下半筆異動紀錄。
func (s *DepartmentService) Delete(ctx context.Context, operator *models.User, id string) error {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.users.CountDocuments(ctx, bson.M{
		"department":       original.ID,
		"employmentStatus": models.EmploymentActive,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return &ValidationError{Message: fmt.Sprintf("此部門下仍有 %d 名在職員工，無法刪除", count)}
	}

	changes, diffErr := changetrack.Diff(original, nil, departmentFieldSpec)
	var companyName string
	if diffErr == nil {
		var company models.Company
		if err := s.companies.FindOne(ctx, bson.M{"_id": original.Company}).Decode(&company); err == nil {
			companyName = company.Name
		}
	}

	if _, err := s.departments.DeleteOne(ctx, bson.M{"_id": original.ID}); err != nil {
		return err
	}
	if diffErr == nil {
		if companyName != "" {
			changes["所屬公司"] = changetrack.Change{From: companyName, To: nil}
		}
		s.audit.Record(ctx, operator, models.ActionDelete, departmentAuditTarget(original), changes)
	}
	return nil
}

func (s *DepartmentService) Get(ctx context.Context, id string) (*models.Department, error) {
	return s.byHexID(ctx, id)
}

// DepartmentFilter 部門列表查詢條件
type DepartmentFilter struct {
	Search  string
	Company string
}

func (s *DepartmentService) List(ctx context.Context, filter DepartmentFilter, page utils.PageQuery) (*utils.PageResult, error) {
	query := bson.M{}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"departmentId": re},
		}
	}
	if filter.Company != "" {
		oid, err := primitive.ObjectIDFromHex(filter.Company)
		if err != nil {
			return nil, &ValidationError{Message: "公司編號格式錯誤"}
		}
		query["company"] = oid
	}
	total, err := s.departments.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.ItemsPerPage)).
		SetSort(page.Sort("departmentId"))
	cursor, err := s.departments.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	departments := []models.Department{}
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, err
	}
	return page.Result(departments, total), nil
}

// ByCompany 下拉選單用，回傳指定公司的全部部門。
func (s *DepartmentService) ByCompany(ctx context.Context, companyHex string) ([]models.Department, error) {
	oid, err := primitive.ObjectIDFromHex(companyHex)
	if err != nil {
		return nil, &ValidationError{Message: "公司編號格式錯誤"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "departmentId", Value: 1}})
	cursor, err := s.departments.Find(ctx, bson.M{"company": oid}, opts)
	if err != nil {
		return nil, err
	}
	departments := []models.Department{}
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (s *DepartmentService) byHexID(ctx context.Context, id string) (*models.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var department models.Department
	err = s.departments.FindOne(ctx, bson.M{"_id": oid}).Decode(&department)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func departmentAuditTarget(department *models.Department) AuditTarget {
	return AuditTarget{
		ID:    department.ID,
		Model: models.TargetDepartments,
		Info: models.TargetInfo{
			Name:         department.Name,
			DepartmentID: department.DepartmentID,
		},
	}
}
