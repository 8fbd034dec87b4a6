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

var announcementTypes = map[string]struct{}{
	models.AnnouncementPinned:    {},
	models.AnnouncementImportant: {},
	models.AnnouncementActivity:  {},
	models.AnnouncementSystem:    {},
	models.AnnouncementGeneral:   {},
}

var announcementFieldSpec = []changetrack.Field[models.Announcement]{
	{Key: "title", Label: "標題", Get: func(a *models.Announcement) any { return a.Title }},
	{Key: "content", Label: "內容", Get: func(a *models.Announcement) any { return a.Content }},
	{Key: "type", Label: "公告類型", Get: func(a *models.Announcement) any { return a.Type }},
	{Key: "expiryDate", Label: "到期日期", Get: func(a *models.Announcement) any { return a.ExpiryDate }, Format: changetrack.Date()},
	{Key: "attachments", Label: "附件", Get: func(a *models.Announcement) any { return a.Attachments }, Format: formatAttachments},
}

// formatAttachments 附件只記檔名清單
func formatAttachments(raw any) any {
	attachments, ok := raw.([]models.Attachment)
	if !ok || len(attachments) == 0 {
		return nil
	}
	names := make([]string, 0, len(attachments))
	for _, a := range attachments {
		names = append(names, a.Filename)
	}
	return names
}

// AnnouncementService 公告管理
type AnnouncementService struct {
	announcements *mongo.Collection
	departments   *mongo.Collection
	audit         *AuditService
}

func NewAnnouncementService(audit *AuditService) *AnnouncementService {
	return &AnnouncementService{
		announcements: repositories.DBS.DB.Collection("announcements"),
		departments:   repositories.DBS.DB.Collection("departments"),
		audit:         audit,
	}
}

func (s *AnnouncementService) Create(ctx context.Context, operator *models.User, input *models.Announcement) (*models.Announcement, error) {
	if input.Title == "" || input.Content == "" {
		return nil, &ValidationError{Message: "標題與內容為必填"}
	}
	if _, ok := announcementTypes[input.Type]; !ok {
		return nil, &ValidationError{Message: "公告類型不正確"}
	}

	now := time.Now()
	announcement := *input
	announcement.ID = primitive.NewObjectID()
	announcement.Author = operator.ID
	if announcement.Attachments == nil {
		announcement.Attachments = []models.Attachment{}
	}
	announcement.CreatedAt = now
	announcement.UpdatedAt = now

	if _, err := s.announcements.InsertOne(ctx, &announcement); err != nil {
		return nil, err
	}
	changes, diffErr := changetrack.Diff(nil, &announcement, announcementFieldSpec)
	if diffErr == nil {
		s.appendDepartmentChange(ctx, nil, &announcement, changes)
		s.audit.Record(ctx, operator, models.ActionCreate, announcementAuditTarget(&announcement), changes)
	}
	return &announcement, nil
}

func (s *AnnouncementService) Update(ctx context.Context, operator *models.User, id string, input *models.Announcement) (*models.Announcement, error) {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}
	proposed, err := applyAnnouncementUpdate(original, input)
	if err != nil {
		return nil, err
	}

	changes, err := changetrack.Diff(original, proposed, announcementFieldSpec)
	if err != nil {
		return nil, err
	}
	s.appendDepartmentChange(ctx, original, proposed, changes)
	if len(changes) == 0 {
		return original, nil
	}

	proposed.UpdatedAt = time.Now()
	if _, err := s.announcements.ReplaceOne(ctx, bson.M{"_id": original.ID}, proposed); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, operator, models.ActionUpdate, announcementAuditTarget(proposed), changes)
	return proposed, nil
}

// applyAnnouncementUpdate 把更新內容套在現有公告上。未帶公告類型時沿用
// 原類型，帶了就必須是合法值。
func applyAnnouncementUpdate(original, input *models.Announcement) (*models.Announcement, error) {
	announcementType := input.Type
	if announcementType == "" {
		announcementType = original.Type
	}
	if _, ok := announcementTypes[announcementType]; !ok {
		return nil, &ValidationError{Message: "公告類型不正確"}
	}

	proposed := *original
	proposed.Title = input.Title
	proposed.Content = input.Content
	proposed.Type = announcementType
	proposed.Department = input.Department
	proposed.ExpiryDate = input.ExpiryDate
	if input.Attachments != nil {
		proposed.Attachments = input.Attachments
	}
	return &proposed, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, operator *models.User, id string) error {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return err
	}
	changes, diffErr := changetrack.Diff(original, nil, announcementFieldSpec)
	if _, err := s.announcements.DeleteOne(ctx, bson.M{"_id": original.ID}); err != nil {
		return err
	}
	if diffErr == nil {
		s.appendDepartmentChange(ctx, original, nil, changes)
		s.audit.Record(ctx, operator, models.ActionDelete, announcementAuditTarget(original), changes)
	}
	return nil
}

func (s *AnnouncementService) Get(ctx context.Context, id string) (*models.Announcement, error) {
	return s.byHexID(ctx, id)
}

// AnnouncementFilter 公告列表查詢條件
type AnnouncementFilter struct {
	Search     string
	Type       string
	Department string
	// IncludeExpired 後台管理用；前台列表只看未到期的公告
	IncludeExpired bool
}

func (s *AnnouncementService) List(ctx context.Context, filter AnnouncementFilter, page utils.PageQuery) (*utils.PageResult, error) {
	query := bson.M{}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"content": re},
		}
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Department != "" {
		oid, err := primitive.ObjectIDFromHex(filter.Department)
		if err != nil {
			return nil, &ValidationError{Message: "部門編號格式錯誤"}
		}
		query["department"] = oid
	}
	if !filter.IncludeExpired {
		query["$and"] = bson.A{bson.M{"$or": bson.A{
			bson.M{"expiryDate": nil},
			bson.M{"expiryDate": bson.M{"$gte": time.Now()}},
		}}}
	}

	total, err := s.announcements.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.ItemsPerPage)).
		SetSort(page.Sort("createdAt"))
	cursor, err := s.announcements.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	announcements := []models.Announcement{}
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return page.Result(announcements, total), nil
}

func (s *AnnouncementService) appendDepartmentChange(ctx context.Context, original, proposed *models.Announcement, changes changetrack.Changes) {
	from := s.departmentNameOf(ctx, original)
	to := s.departmentNameOf(ctx, proposed)
	if from != to {
		changes["發布部門"] = changetrack.Change{From: nilIfEmpty(from), To: nilIfEmpty(to)}
	}
}

func (s *AnnouncementService) departmentNameOf(ctx context.Context, announcement *models.Announcement) string {
	if announcement == nil || announcement.Department == nil {
		return ""
	}
	var department models.Department
	if err := s.departments.FindOne(ctx, bson.M{"_id": *announcement.Department}).Decode(&department); err != nil {
		return ""
	}
	return department.Name
}

func (s *AnnouncementService) byHexID(ctx context.Context, id string) (*models.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var announcement models.Announcement
	err = s.announcements.FindOne(ctx, bson.M{"_id": oid}).Decode(&announcement)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func announcementAuditTarget(announcement *models.Announcement) AuditTarget {
	return AuditTarget{
		ID:    announcement.ID,
		Model: models.TargetAnnouncements,
		Info: models.TargetInfo{
			Name: announcement.Title,
		},
	}
}
