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

var ticketCategories = map[string]struct{}{
	models.TicketHardware: {},
	models.TicketSoftware: {},
	models.TicketNetwork:  {},
	models.TicketAccount:  {},
	models.TicketOther:    {},
}

var ticketPriorities = map[string]struct{}{
	models.PriorityLow:    {},
	models.PriorityMedium: {},
	models.PriorityHigh:   {},
	models.PriorityUrgent: {},
}

// ticketTransitions 合法的狀態轉移。已完成與已取消是終態。
var ticketTransitions = map[string][]string{
	models.TicketPending:    {models.TicketInProgress, models.TicketCancelled},
	models.TicketInProgress: {models.TicketConfirming, models.TicketCompleted, models.TicketCancelled},
	models.TicketConfirming: {models.TicketCompleted, models.TicketInProgress},
}

var ticketFieldSpec = []changetrack.Field[models.ServiceTicket]{
	{Key: "title", Label: "標題", Get: func(t *models.ServiceTicket) any { return t.Title }},
	{Key: "description", Label: "問題描述", Get: func(t *models.ServiceTicket) any { return t.Description }},
	{Key: "category", Label: "類別", Get: func(t *models.ServiceTicket) any { return t.Category }},
	{Key: "priority", Label: "優先等級", Get: func(t *models.ServiceTicket) any { return t.Priority }},
	{Key: "status", Label: "狀態", Get: func(t *models.ServiceTicket) any { return t.Status }},
	{Key: "location", Label: "地點", Get: func(t *models.ServiceTicket) any { return t.Location }},
	{Key: "solution", Label: "處理方案", Get: func(t *models.ServiceTicket) any { return t.Solution }},
	{Key: "attachments", Label: "附件", Get: func(t *models.ServiceTicket) any { return t.Attachments }, Format: formatAttachments},
}

// ServiceTicketService IT 服務請求管理
type ServiceTicketService struct {
	tickets   *mongo.Collection
	users     *mongo.Collection
	audit     *AuditService
	sequences *SequenceService
}

func NewServiceTicketService(audit *AuditService, sequences *SequenceService) *ServiceTicketService {
	return &ServiceTicketService{
		tickets:   repositories.DBS.DB.Collection("serviceTickets"),
		users:     repositories.DBS.DB.Collection("users"),
		audit:     audit,
		sequences: sequences,
	}
}

// Create 建立服務請求。編號當月遞增，月初從 1 重新起算。
func (s *ServiceTicketService) Create(ctx context.Context, operator *models.User, input *models.ServiceTicket) (*models.ServiceTicket, error) {
	if input.Title == "" || input.Description == "" {
		return nil, &ValidationError{Message: "標題與問題描述為必填"}
	}
	if _, ok := ticketCategories[input.Category]; !ok {
		return nil, &ValidationError{Message: "類別不正確"}
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if _, ok := ticketPriorities[input.Priority]; !ok {
		return nil, &ValidationError{Message: "優先等級不正確"}
	}

	ticketID, err := s.sequences.NextTicketNumber(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket := *input
	ticket.ID = primitive.NewObjectID()
	ticket.TicketID = ticketID
	ticket.RequesterID = operator.ID
	ticket.Status = models.TicketPending
	ticket.AssigneeID = nil
	ticket.Solution = ""
	ticket.SolutionUpdatedAt = nil
	if ticket.Attachments == nil {
		ticket.Attachments = []models.Attachment{}
	}
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	if _, err := s.tickets.InsertOne(ctx, &ticket); err != nil {
		return nil, err
	}
	changes, diffErr := changetrack.Diff(nil, &ticket, ticketFieldSpec)
	if diffErr == nil {
		s.audit.Record(ctx, operator, models.ActionCreate, ticketAuditTarget(&ticket), changes)
	}
	return &ticket, nil
}

// TicketUpdate 服務請求的可更新欄位。一般使用者只能改自己單子的標題與描述，
// 資訊人員才能指派與推進狀態，角色限制在 controller 檢查。
type TicketUpdate struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Priority    string              `json:"priority"`
	Status      string              `json:"status"`
	AssigneeID  *primitive.ObjectID `json:"assigneeId"`
	Location    string              `json:"location"`
	Solution    string              `json:"solution"`
}

func (s *ServiceTicketService) Update(ctx context.Context, operator *models.User, id string, input TicketUpdate) (*models.ServiceTicket, error) {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return nil, err
	}

	proposed, err := applyTicketUpdate(original, input)
	if err != nil {
		return nil, err
	}

	changes, err := changetrack.Diff(original, proposed, ticketFieldSpec)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return original, nil
	}

	now := time.Now()
	if proposed.Solution != original.Solution {
		proposed.SolutionUpdatedAt = &now
	}
	proposed.UpdatedAt = now
	if _, err := s.tickets.ReplaceOne(ctx, bson.M{"_id": original.ID}, proposed); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, operator, models.ActionUpdate, ticketAuditTarget(proposed), changes)
	return proposed, nil
}

// applyTicketUpdate 把更新欄位套在現有單子上。空字串一律視為「未提供」，
// 不會清掉既有內容；只要結果是已完成，處理方案就不能為空。
func applyTicketUpdate(original *models.ServiceTicket, input TicketUpdate) (*models.ServiceTicket, error) {
	proposed := *original
	if input.Title != "" {
		proposed.Title = input.Title
	}
	if input.Description != "" {
		proposed.Description = input.Description
	}
	if input.Category != "" {
		if _, ok := ticketCategories[input.Category]; !ok {
			return nil, &ValidationError{Message: "類別不正確"}
		}
		proposed.Category = input.Category
	}
	if input.Priority != "" {
		if _, ok := ticketPriorities[input.Priority]; !ok {
			return nil, &ValidationError{Message: "優先等級不正確"}
		}
		proposed.Priority = input.Priority
	}
	if input.Location != "" {
		proposed.Location = input.Location
	}
	if input.AssigneeID != nil {
		proposed.AssigneeID = input.AssigneeID
	}
	if input.Solution != "" {
		proposed.Solution = input.Solution
	}

	if input.Status != "" && input.Status != original.Status {
		if !transitionAllowed(original.Status, input.Status) {
			return nil, &ValidationError{
				Message: fmt.Sprintf("狀態無法從「%s」變更為「%s」", original.Status, input.Status),
			}
		}
		proposed.Status = input.Status
	}
	if proposed.Status == models.TicketCompleted && proposed.Solution == "" {
		return nil, &ValidationError{Message: "結單前請填寫處理方案"}
	}
	return &proposed, nil
}

func transitionAllowed(from, to string) bool {
	for _, next := range ticketTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *ServiceTicketService) Delete(ctx context.Context, operator *models.User, id string) error {
	original, err := s.byHexID(ctx, id)
	if err != nil {
		return err
	}
	changes, diffErr := changetrack.Diff(original, nil, ticketFieldSpec)
	if _, err := s.tickets.DeleteOne(ctx, bson.M{"_id": original.ID}); err != nil {
		return err
	}
	if diffErr == nil {
		s.audit.Record(ctx, operator, models.ActionDelete, ticketAuditTarget(original), changes)
	}
	return nil
}

func (s *ServiceTicketService) Get(ctx context.Context, id string) (*models.ServiceTicket, error) {
	return s.byHexID(ctx, id)
}

// TicketFilter 服務請求列表查詢條件。Requester 非空時只回傳該使用者的單子。
type TicketFilter struct {
	Search    string
	Category  string
	Priority  string
	Status    string
	Requester *primitive.ObjectID
}

func (s *ServiceTicketService) List(ctx context.Context, filter TicketFilter, page utils.PageQuery) (*utils.PageResult, error) {
	query := bson.M{}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"ticketId": re},
			bson.M{"title": re},
		}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Requester != nil {
		query["requesterId"] = *filter.Requester
	}

	total, err := s.tickets.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(page.ItemsPerPage)).
		SetSort(page.Sort("ticketId"))
	cursor, err := s.tickets.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	tickets := []models.ServiceTicket{}
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return page.Result(tickets, total), nil
}

func (s *ServiceTicketService) byHexID(ctx context.Context, id string) (*models.ServiceTicket, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var ticket models.ServiceTicket
	err = s.tickets.FindOne(ctx, bson.M{"_id": oid}).Decode(&ticket)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func ticketAuditTarget(ticket *models.ServiceTicket) AuditTarget {
	return AuditTarget{
		ID:    ticket.ID,
		Model: models.TargetTickets,
		Info: models.TargetInfo{
			Name:     ticket.Title,
			TicketID: ticket.TicketID,
		},
	}
}
