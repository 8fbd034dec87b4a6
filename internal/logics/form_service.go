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

var formFieldSpec = []changetrack.Field[models.Form]{
	{Key: "formNumber", Label: "表單編號", Get: func(f *models.Form) any { return f.FormNumber }},
	{Key: "clientName", Label: "客戶名稱", Get: func(f *models.Form) any { return f.ClientName }},
	{Key: "pdfUrl", Label: "PDF連結", Get: func(f *models.Form) any { return f.PdfUrl }},
}

// FormService 依模板建立的表單
type FormService struct {
	forms     *mongo.Collection
	templates *mongo.Collection
	audit     *AuditService
	sequences *SequenceService
}

func NewFormService(audit *AuditService, sequences *SequenceService) *FormService {
	return &FormService{
		forms:     repositories.DBS.DB.Collection("forms"),
		templates: repositories.DBS.DB.Collection("formTemplates"),
		audit:     audit,
		sequences: sequences,
	}
}

// Create 建立表單。編號依模板類型當月獨立遞增。
func (s *FormService) Create(ctx context.Context, operator *models.User, input *models.Form) (*models.Form, error) {
	var template models.FormTemplate
	if err := s.templates.FindOne(ctx, bson.M{"_id": input.FormTemplate}).Decode(&template); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &ValidationError{Message: "查無所選表單模板"}
		}
		return nil, err
	}

	formNumber, err := s.sequences.NextFormNumber(ctx, template.Type, time.Now())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	form := *input
	form.ID = primitive.NewObjectID()
	form.FormNumber = formNumber
	form.Creator = operator.ID
	form.CreatedAt = now
	form.UpdatedAt = now

	if _, err := s.forms.InsertOne(ctx, &form); err != nil {
		return nil, err
	}
	changes, diffErr := changetrack.Diff(nil, &form, formFieldSpec)
	if diffErr == nil {
		changes["表單模板"] = changetrack.Change{From: nil, To: template.Name}
		s.audit.Record(ctx, operator, models.ActionCreate, formAuditTarget(&form), changes)
	}
	return &form, nil
}

func (s *FormService) Update(ctx context.Context, operator *models.User, id string, input *models.Form) (*models.Form, error) {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}
	proposed := *original
	proposed.ClientName = input.ClientName
	proposed.PdfUrl = input.PdfUrl

	changes, err := changetrack.Diff(original, &proposed, formFieldSpec)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return original, nil
	}
	proposed.UpdatedAt = time.Now()
	if _, err := s.forms.ReplaceOne(ctx, bson.M{"_id": original.ID}, &proposed); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, operator, models.ActionUpdate, formAuditTarget(&proposed), changes)
	return &proposed, nil
}

func (s *FormService) Delete(ctx context.Context, operator *models.User, id string) error {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return err
	}
	changes, diffErr := changetrack.Diff(original, nil, formFieldSpec)
	if _, err := s.forms.DeleteOne(ctx, bson.M{"_id": original.ID}); err != nil {
		return err
	}
	if diffErr == nil {
		s.audit.Record(ctx, operator, models.ActionDelete, formAuditTarget(original), changes)
	}
	return nil
}

func (s *FormService) Get(ctx context.Context, id string) (*models.Form, error) {
	return s.byHexID(ctx, id)
}

// FormFilter 表單列表查詢條件
type FormFilter struct {
	Search   string
	Template string
	Creator  *primitive.ObjectID
}

func (s *FormService) List(ctx context.Context, filter FormFilter, page utils.PageQuery) (*utils.PageResult, error) {
	query := bson.M{}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"formNumber": re},
			bson.M{"clientName": re},
		}
	}
	if filter.Template != "" {
		oid, err := primitive.ObjectIDFromHex(filter.Template)
		if err != nil {
			return nil, &ValidationError{Message: "模板編號格式錯誤"}
		}
		query["formTemplate"] = oid
	}
	if filter.Creator != nil {
		query["creator"] = *filter.Creator
	}

	total, err := s.forms.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.ItemsPerPage)).
		SetSort(page.Sort("formNumber"))
	cursor, err := s.forms.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	forms := []models.Form{}
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	return page.Result(forms, total), nil
}

func (s *FormService) byHexID(ctx context.Context, id string) (*models.Form, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var form models.Form
	err = s.forms.FindOne(ctx, bson.M{"_id": oid}).Decode(&form)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func formAuditTarget(form *models.Form) AuditTarget {
	return AuditTarget{
		ID:    form.ID,
		Model: models.TargetForms,
		Info: models.TargetInfo{
			FormNumber: form.FormNumber,
		},
	}
}
