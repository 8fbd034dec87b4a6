package logics

import (
	"context"
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

var formTypes = map[string]struct{}{
	models.FormTypeQuotation: {},
	models.FormTypePurchase:  {},
	models.FormTypeLeave:     {},
}

var formTemplateFieldSpec = []changetrack.Field[models.FormTemplate]{
	{Key: "name", Label: "模板名稱", Get: func(t *models.FormTemplate) any { return t.Name }},
	{Key: "type", Label: "表單類型", Get: func(t *models.FormTemplate) any { return t.Type }},
	{Key: "componentName", Label: "元件名稱", Get: func(t *models.FormTemplate) any { return t.ComponentName }},
}

var formTemplateDuplicateFields = map[string]string{
	"name": "模板名稱已存在",
}

// FormTemplateService 表單模板管理
type FormTemplateService struct {
	templates *mongo.Collection
	companies *mongo.Collection
	forms     *mongo.Collection
	audit     *AuditService
}

func NewFormTemplateService(audit *AuditService) *FormTemplateService {
	return &FormTemplateService{
		templates: repositories.DBS.DB.Collection("formTemplates"),
		companies: repositories.DBS.DB.Collection("companies"),
		forms:     repositories.DBS.DB.Collection("forms"),
		audit:     audit,
	}
}

func (s *FormTemplateService) Create(ctx context.Context, operator *models.User, input *models.FormTemplate) (*models.FormTemplate, error) {
	if input.Name == "" || input.ComponentName == "" {
		return nil, &ValidationError{Message: "模板名稱與元件名稱為必填"}
	}
	if _, ok := formTypes[input.Type]; !ok {
		return nil, &ValidationError{Message: "表單類型不正確"}
	}
	var company models.Company
	if err := s.companies.FindOne(ctx, bson.M{"_id": input.Company}).Decode(&company); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &ValidationError{Message: "查無所選公司"}
		}
		return nil, err
	}

	now := time.Now()
	template := *input
	template.ID = primitive.NewObjectID()
	template.CreatedAt = now
	template.UpdatedAt = now

	if _, err := s.templates.InsertOne(ctx, &template); err != nil {
		return nil, duplicateKeyError(err, formTemplateDuplicateFields)
	}
	changes, diffErr := changetrack.Diff(nil, &template, formTemplateFieldSpec)
	if diffErr == nil {
		changes["所屬公司"] = changetrack.Change{From: nil, To: company.Name}
		s.audit.Record(ctx, operator, models.ActionCreate, formTemplateAuditTarget(&template), changes)
	}
	return &template, nil
}

func (s *FormTemplateService) Update(ctx context.Context, operator *models.User, id string, input *models.FormTemplate) (*models.FormTemplate, error) {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Type != "" {
		if _, ok := formTypes[input.Type]; !ok {
			return nil, &ValidationError{Message: "表單類型不正確"}
		}
	}

	proposed := *original
	proposed.Name = input.Name
	proposed.Type = input.Type
	proposed.ComponentName = input.ComponentName

	changes, err := changetrack.Diff(original, &proposed, formTemplateFieldSpec)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return original, nil
	}

	proposed.UpdatedAt = time.Now()
	if _, err := s.templates.ReplaceOne(ctx, bson.M{"_id": original.ID}, &proposed); err != nil {
		return nil, duplicateKeyError(err, formTemplateDuplicateFields)
	}
	s.audit.Record(ctx, operator, models.ActionUpdate, formTemplateAuditTarget(&proposed), changes)
	return &proposed, nil
}

// Delete 刪除模板。已有表單引用時擋下。
func (s *FormTemplateService) Delete(ctx context.Context, operator *models.User, id string) error {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.forms.CountDocuments(ctx, bson.M{"formTemplate": original.ID})
	if err != nil {
		return err
	}
	if count > 0 {
		return &ValidationError{Message: "此模板已有表單使用，無法刪除"}
	}

	changes, diffErr := changetrack.Diff(original, nil, formTemplateFieldSpec)
	if _, err := s.templates.DeleteOne(ctx, bson.M{"_id": original.ID}); err != nil {
		return err
	}
	if diffErr == nil {
		s.audit.Record(ctx, operator, models.ActionDelete, formTemplateAuditTarget(original), changes)
	}
	return nil
}

func (s *FormTemplateService) Get(ctx context.Context, id string) (*models.FormTemplate, error) {
	return s.byHexID(ctx, id)
}

// FormTemplateFilter 模板列表查詢條件
type FormTemplateFilter struct {
	Search  string
	Type    string
	Company string
}

func (s *FormTemplateService) List(ctx context.Context, filter FormTemplateFilter, page utils.PageQuery) (*utils.PageResult, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["name"] = primitive.Regex{Pattern: filter.Search, Options: "i"}
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Company != "" {
		oid, err := primitive.ObjectIDFromHex(filter.Company)
		if err != nil {
			return nil, &ValidationError{Message: "公司編號格式錯誤"}
		}
		query["company"] = oid
	}

	total, err := s.templates.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.ItemsPerPage)).
		SetSort(page.Sort("name"))
	cursor, err := s.templates.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	templates := []models.FormTemplate{}
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return page.Result(templates, total), nil
}

func (s *FormTemplateService) byHexID(ctx context.Context, id string) (*models.FormTemplate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var template models.FormTemplate
	err = s.templates.FindOne(ctx, bson.M{"_id": oid}).Decode(&template)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func formTemplateAuditTarget(template *models.FormTemplate) AuditTarget {
	return AuditTarget{
		ID:    template.ID,
		Model: models.TargetFormTemplates,
		Info: models.TargetInfo{
			Name: template.Name,
		},
	}
}
