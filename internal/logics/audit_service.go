package logics

import (
	"context"
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

// 編號與異動紀錄的日期一律以台灣時間計算
var displayZone = time.FixedZone("UTC+8", 8*60*60)

// AuditTarget identifies the entity an audit entry is about, with the display
// snapshot that keeps the entry readable after the entity is gone.
type AuditTarget struct {
	ID    primitive.ObjectID
	Model string
	Info  models.TargetInfo
}

// AuditService 寫入與查詢異動紀錄。紀錄只新增；一般路徑寫入失敗不影響
// 已完成的資料異動，只記 operational log。
type AuditService struct {
	coll *mongo.Collection
}

// NewAuditService creates an AuditService backed by the auditLogs collection.
func NewAuditService() *AuditService {
	return &AuditService{coll: repositories.DBS.DB.Collection("auditLogs")}
}

// BuildEntry assembles one audit entry. Returns false when the change set is
// empty: a log entry recording zero changes carries no information and is
// never written.
func BuildEntry(operator *models.User, action string, target AuditTarget, changes changetrack.Changes, now time.Time) (*models.AuditLog, bool) {
	if len(changes) == 0 {
		return nil, false
	}
	entry := &models.AuditLog{
		Action:      action,
		TargetID:    target.ID,
		TargetModel: target.Model,
		TargetInfo:  target.Info,
		Changes:     changes,
		CreatedAt:   now,
	}
	if operator != nil {
		id := operator.ID
		entry.OperatorID = &id
		entry.OperatorInfo = models.OperatorInfo{
			Name:   operator.Name,
			UserID: operator.UserID,
		}
	}
	return entry, true
}

// Record appends one audit entry, best-effort: the entity mutation has already
// been committed, so a failed write is logged and swallowed.
func (s *AuditService) Record(ctx context.Context, operator *models.User, action string, target AuditTarget, changes changetrack.Changes) {
	entry, ok := BuildEntry(operator, action, target, changes, time.Now())
	if !ok {
		return
	}
	if _, err := s.coll.InsertOne(ctx, entry); err != nil {
		configs.Logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("targetModel", target.Model),
			zap.String("targetId", target.ID.Hex()),
			zap.Error(err))
	}
}

// RecordInSession appends one audit entry inside an ongoing transaction.
// 轉正式員工流程需要三筆寫入同生共死，這裡的失敗會讓交易回滾。
func (s *AuditService) RecordInSession(sc mongo.SessionContext, operator *models.User, action string, target AuditTarget, changes changetrack.Changes) error {
	entry, ok := BuildEntry(operator, action, target, changes, time.Now())
	if !ok {
		return nil
	}
	_, err := s.coll.InsertOne(sc, entry)
	return err
}

// AuditLogFilter 異動紀錄查詢條件
type AuditLogFilter struct {
	Operator    string
	Target      string
	Action      string
	TargetModel string
	StartDate   *time.Time
	EndDate     *time.Time
}

// List returns audit entries matching the filter, newest first. Operator and
// target filters match the denormalized name/userId snapshots.
func (s *AuditService) List(ctx context.Context, filter AuditLogFilter, page utils.PageQuery) (*utils.PageResult, error) {
	query := bson.M{}

	if filter.Operator != "" {
		re := primitive.Regex{Pattern: filter.Operator, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"operatorInfo.name": re},
			bson.M{"operatorInfo.userId": re},
		}
	}
	if filter.Target != "" {
		re := primitive.Regex{Pattern: filter.Target, Options: "i"}
		query["$and"] = bson.A{bson.M{"$or": bson.A{
			bson.M{"targetInfo.name": re},
			bson.M{"targetInfo.userId": re},
		}}}
	}
	if filter.Action != "" {
		query["action"] = filter.Action
	}
	if filter.TargetModel != "" {
		query["targetModel"] = filter.TargetModel
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		dateCond := bson.M{}
		if filter.StartDate != nil {
			dateCond["$gte"] = *filter.StartDate
		}
		if filter.EndDate != nil {
			dateCond["$lte"] = *filter.EndDate
		}
		query["createdAt"] = dateCond
	}

	total, err := s.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	// 未指定排序時新的在前
	sort := page.Sort("createdAt")
	if page.SortBy == "" && page.SortOrder == "" {
		sort = bson.D{{Key: "createdAt", Value: -1}}
	}
	opts := options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(int64(page.ItemsPerPage))

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var entries []models.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.AuditLog{}
	}

	return page.Result(entries, total), nil
}
