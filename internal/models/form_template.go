package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 表單類型
const (
	FormTypeQuotation = "quotation"
	FormTypePurchase  = "purchase"
	FormTypeLeave     = "leave"
)

// FormTemplate 表單模板
type FormTemplate struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Company       primitive.ObjectID `bson:"company" json:"company"`
	Type          string             `bson:"type" json:"type"`
	ComponentName string             `bson:"componentName" json:"componentName"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
