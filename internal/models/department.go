package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department 部門。DepartmentID 是人讀的部門代碼（公司編號 + 部門縮寫，例如 A1IT）。
type Department struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	DepartmentID string             `bson:"departmentId" json:"departmentId"`
	Company      primitive.ObjectID `bson:"company" json:"company"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
