package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ysphere-server/internal/logics/changetrack"
)

// 異動紀錄的操作類型
const (
	ActionCreate  = "創建"
	ActionUpdate  = "修改"
	ActionDelete  = "刪除"
	ActionConvert = "轉為正式"
)

// 異動紀錄的目標集合
const (
	TargetUsers         = "users"
	TargetDepartments   = "departments"
	TargetCompanies     = "companies"
	TargetTempUsers     = "tempUsers"
	TargetAnnouncements = "announcements"
	TargetTickets       = "serviceTickets"
	TargetFormTemplates = "formTemplates"
	TargetForms         = "forms"
)

// OperatorInfo 操作者在寫入當下的快照，操作者被刪除後紀錄仍可讀。
type OperatorInfo struct {
	Name   string `bson:"name" json:"name"`
	UserID string `bson:"userId,omitempty" json:"userId,omitempty"`
}

// TargetInfo 被操作對象的識別快照
type TargetInfo struct {
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	UserID       string `bson:"userId,omitempty" json:"userId,omitempty"`
	DepartmentID string `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	CompanyID    string `bson:"companyId,omitempty" json:"companyId,omitempty"`
	FormNumber   string `bson:"formNumber,omitempty" json:"formNumber,omitempty"`
	TicketID     string `bson:"ticketId,omitempty" json:"ticketId,omitempty"`
}

// AuditLog 異動紀錄。只新增，不修改也不刪除。
type AuditLog struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	OperatorID   *primitive.ObjectID `bson:"operatorId" json:"operatorId"`
	OperatorInfo OperatorInfo        `bson:"operatorInfo" json:"operatorInfo"`
	Action       string              `bson:"action" json:"action"`
	TargetID     primitive.ObjectID  `bson:"targetId" json:"targetId"`
	TargetModel  string              `bson:"targetModel" json:"targetModel"`
	TargetInfo   TargetInfo          `bson:"targetInfo" json:"targetInfo"`
	Changes      changetrack.Changes `bson:"changes" json:"changes"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}
