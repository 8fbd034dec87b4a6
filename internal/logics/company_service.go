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

var companyFieldSpec = []changetrack.Field[models.Company]{
	{Key: "name", Label: "公司名稱", Get: func(c *models.Company) any { return c.Name }},
	{Key: "companyId", Label: "公司編號", Get: func(c *models.Company) any { return c.CompanyID }},
}

var companyDuplicateFields = map[string]string{
	"name":      "公司名稱已存在",
	"companyId": "公司編號已存在",
}

// CompanyService 公司管理
type CompanyService struct {
	companies   *mongo.Collection
	departments *mongo.Collection
	audit       *AuditService
	sequences   *SequenceService
}

func NewCompanyService(audit *AuditService, sequences *SequenceService) *CompanyService {
	return &CompanyService{
		companies:   repositories.DBS.DB.Collection("companies"),
		departments: repositories.DBS.DB.Collection("departments"),
		audit:       audit,
		sequences:   sequences,
	}
}

// Create 建立公司，公司編號由流水號產生（A1～Z9）。
func (s *CompanyService) Create(ctx context.Context, operator *models.User, name string) (*models.Company, error) {
	if name == "" {
		return nil, &ValidationError{Message: "公司名稱為必填"}
	}
	code, err := s.sequences.NextCompanyCode(ctx)
	if err != nil {
		if err == ErrSequenceExhausted {
			return nil, &ValidationError{Message: "公司編號已達上限"}
		}
		return nil, err
	}
	now := time.Now()
	company := &models.Company{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CompanyID: code,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.companies.InsertOne(ctx, company); err != nil {
		return nil, duplicateKeyError(err, companyDuplicateFields)
	}

	changes, diffErr := changetrack.Diff(nil, company, companyFieldSpec)
	if diffErr == nil {
		s.audit.Record(ctx, operator, models.ActionCreate, companyAuditTarget(company), changes)
	}
	return company, nil
}

// Update 公司只有名稱可改，編號發出後不回收也不變更。
func (s *CompanyService) Update(ctx context.Context, operator *models.User, id, name string) (*models.Company, error) {
	if name == "" {
		return nil, &ValidationError{Message: "公司名稱為必填"}
	}
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}
	proposed := *original
	proposed.Name = name

	changes, err := changetrack.Diff(original, &proposed, companyFieldSpec)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return original, nil
	}
	proposed.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{"name": proposed.Name, "updatedAt": proposed.UpdatedAt}}
	if _, err := s.companies.UpdateOne(ctx, bson.M{"_id": original.ID}, update); err != nil {
		return nil, duplicateKeyError(err, companyDuplicateFields)
	}
	s.audit.Record(ctx, operator, models.ActionUpdate, companyAuditTarget(&proposed), changes)
	return &proposed, nil
}

// Delete 刪除公司。底下還有部門時擋下，不寫任何異動紀錄。
func (s *CompanyService) Delete(ctx context.Context, operator *models.User, id string) error {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.departments.CountDocuments(ctx, bson.M{"company": original.ID})
	if err != nil {
		return err
	}
	if count > 0 {
		return &ValidationError{Message: fmt.Sprintf("此公司下仍有 %d 個部門，無法刪除", count)}
	}

	changes, diffErr := changetrack.Diff(original, nil, companyFieldSpec)
	if _, err := s.companies.DeleteOne(ctx, bson.M{"_id": original.ID}); err != nil {
		return err
	}
	if diffErr == nil {
		s.audit.Record(ctx, operator, models.ActionDelete, companyAuditTarget(original), changes)
	}
	return nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*models.Company, error) {
	return s.byHexID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context, search string, page utils.PageQuery) (*utils.PageResult, error) {
	query := bson.M{}
	if search != "" {
		re := primitive.Regex{Pattern: search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"companyId": re},
		}
	}
	total, err := s.companies.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.ItemsPerPage)).
		SetSort(page.Sort("companyId"))
	cursor, err := s.companies.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	companies := []models.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return page.Result(companies, total), nil
}

// All 下拉選單用，全部公司依編號排序。
func (s *CompanyService) All(ctx context.Context) ([]models.Company, error) {
	opts := options.Find().SetSort(bson.D{{Key: "companyId", Value: 1}})
	cursor, err := s.companies.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	companies := []models.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *CompanyService) byHexID(ctx context.Context, id string) (*models.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var company models.Company
	err = s.companies.FindOne(ctx, bson.M{"_id": oid}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func companyAuditTarget(company *models.Company) AuditTarget {
	return AuditTarget{
		ID:    company.ID,
		Model: models.TargetCompanies,
		Info: models.TargetInfo{
			Name:      company.Name,
			CompanyID: company.CompanyID,
		},
	}
}
