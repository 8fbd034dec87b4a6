package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 服務請求類別
const (
	TicketHardware = "硬體問題"
	TicketSoftware = "軟體問題"
	TicketNetwork  = "網路問題"
	TicketAccount  = "帳號權限"
	TicketOther    = "其他"
)

// 服務請求優先度
const (
	PriorityLow    = "低"
	PriorityMedium = "中"
	PriorityHigh   = "高"
	PriorityUrgent = "緊急"
)

// 服務請求狀態
const (
	TicketPending    = "待處理"
	TicketInProgress = "處理中"
	TicketConfirming = "待確認"
	TicketCompleted  = "已完成"
	TicketCancelled  = "已取消"
)

// ServiceTicket IT 服務請求。TicketID 為 IT + 年月 + 流水號（IT24110001）。
type ServiceTicket struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	TicketID    string              `bson:"ticketId" json:"ticketId"`
	RequesterID primitive.ObjectID  `bson:"requesterId" json:"requesterId"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Category    string              `bson:"category" json:"category"`
	Priority    string              `bson:"priority" json:"priority"`
	Status      string              `bson:"status" json:"status"`
	AssigneeID  *primitive.ObjectID `bson:"assigneeId,omitempty" json:"assigneeId,omitempty"`
	Location    string              `bson:"location" json:"location"`
	Attachments []Attachment        `bson:"attachments" json:"attachments"`
	Solution    string              `bson:"solution,omitempty" json:"solution,omitempty"`
	SolutionUpdatedAt *time.Time    `bson:"solutionUpdatedAt,omitempty" json:"solutionUpdatedAt,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}
