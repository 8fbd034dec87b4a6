package logics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ysphere-server/internal/models"
	"ysphere-server/internal/repositories"
)

// ErrSequenceExhausted 流水號已達該序列的位數上限
var ErrSequenceExhausted = errors.New("流水號已超出可用範圍")

// CounterStore atomically advances a named counter and returns the new value.
// Concurrent callers for the same name never see the same value.
type CounterStore interface {
	Next(ctx context.Context, name string) (int64, error)
}

type mongoCounterStore struct {
	coll *mongo.Collection
}

func (s *mongoCounterStore) Next(ctx context.Context, name string) (int64, error) {
	// findAndModify 的 $inc 在 server 端是原子的，不需要讀取後再寫回
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.SequenceCounter
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// SequenceService 產生各類人讀編號：員工編號、部門代碼、公司編號、
// 服務請求編號、表單編號。每個序列有獨立的計數器文件。
type SequenceService struct {
	store CounterStore
}

// NewSequenceService creates a SequenceService backed by the counters collection.
func NewSequenceService() *SequenceService {
	return &SequenceService{
		store: &mongoCounterStore{coll: repositories.DBS.DB.Collection("counters")},
	}
}

// NewSequenceServiceWithStore wires a custom counter store.
func NewSequenceServiceWithStore(store CounterStore) *SequenceService {
	return &SequenceService{store: store}
}

func (s *SequenceService) next(ctx context.Context, name, prefix string, pad int) (string, error) {
	n, err := s.store.Next(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to advance sequence %s: %w", name, err)
	}
	limit := int64(1)
	for i := 0; i < pad; i++ {
		limit *= 10
	}
	if n >= limit {
		return "", ErrSequenceExhausted
	}
	return fmt.Sprintf("%s%0*d", prefix, pad, n), nil
}

// NextUserNumber 依部門代碼產生員工編號，例如 A1IT001。
func (s *SequenceService) NextUserNumber(ctx context.Context, departmentID string) (string, error) {
	return s.next(ctx, "employee:"+departmentID, departmentID, 3)
}

// NextDepartmentCode 在公司底下產生部門代碼（公司編號 + 兩位流水號）。
// 超過 99 個部門時回傳 ErrSequenceExhausted。
func (s *SequenceService) NextDepartmentCode(ctx context.Context, companyID string) (string, error) {
	return s.next(ctx, "department:"+companyID, companyID, 2)
}

// NextTicketNumber 產生當月服務請求編號，例如 IT24110001。
// 月份切換時計數器換新的 key，從 1 重新開始。
func (s *SequenceService) NextTicketNumber(ctx context.Context, now time.Time) (string, error) {
	now = now.In(displayZone)
	name := "ticket:" + now.Format("2006-01")
	prefix := "IT" + now.Format("0601")
	return s.next(ctx, name, prefix, 4)
}

// NextFormNumber 產生表單編號：當天日期 + 當月（依表單類型獨立）流水號。
func (s *SequenceService) NextFormNumber(ctx context.Context, formType string, now time.Time) (string, error) {
	now = now.In(displayZone)
	name := fmt.Sprintf("form:%s:%s", formType, now.Format("2006-01"))
	prefix := now.Format("20060102")
	return s.next(ctx, name, prefix, 4)
}

// NextCompanyCode 產生公司編號：A1 → A2 → … → A9 → B1 → … → Z9。
func (s *SequenceService) NextCompanyCode(ctx context.Context) (string, error) {
	n, err := s.store.Next(ctx, "company")
	if err != nil {
		return "", fmt.Errorf("failed to advance sequence company: %w", err)
	}
	if n > 26*9 {
		return "", ErrSequenceExhausted
	}
	letter := rune('A' + (n-1)/9)
	digit := (n-1)%9 + 1
	return fmt.Sprintf("%c%d", letter, digit), nil
}
