package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company 公司。CompanyID 是人讀的公司編號（A1～Z9）。
type Company struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	CompanyID string             `bson:"companyId" json:"companyId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
