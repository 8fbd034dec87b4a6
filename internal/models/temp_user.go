package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 臨時員工狀態
const (
	TempUserPendingInterview = "待面試"
	TempUserPendingOnboard   = "待入職"
	TempUserCompleted        = "已完成"
	TempUserCancelled        = "已取消"
)

// TempUser 臨時員工（入職前流程）。轉正式後 IsTransferred 為 true。
type TempUser struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	EnglishName   string             `bson:"englishName,omitempty" json:"englishName,omitempty"`
	PersonalEmail string             `bson:"personalEmail,omitempty" json:"personalEmail,omitempty"`
	IDNumber      string             `bson:"IDNumber,omitempty" json:"IDNumber,omitempty"`
	Gender        string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Cellphone     string             `bson:"cellphone,omitempty" json:"cellphone,omitempty"`
	BirthDate     *time.Time         `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	PermanentAddress string          `bson:"permanentAddress,omitempty" json:"permanentAddress,omitempty"`
	ContactAddress   string          `bson:"contactAddress,omitempty" json:"contactAddress,omitempty"`

	EmergencyName         string `bson:"emergencyName,omitempty" json:"emergencyName,omitempty"`
	EmergencyCellphone    string `bson:"emergencyCellphone,omitempty" json:"emergencyCellphone,omitempty"`
	EmergencyRelationship string `bson:"emergencyRelationship,omitempty" json:"emergencyRelationship,omitempty"`

	Company       *primitive.ObjectID `bson:"company,omitempty" json:"company,omitempty"`
	Department    *primitive.ObjectID `bson:"department,omitempty" json:"department,omitempty"`
	JobTitle      string              `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	Salary        string              `bson:"salary,omitempty" json:"salary,omitempty"`
	ExtNumber     string              `bson:"extNumber,omitempty" json:"extNumber,omitempty"`
	EffectiveDate *time.Time          `bson:"effectiveDate,omitempty" json:"effectiveDate,omitempty"`
	Status        string              `bson:"status" json:"status"`
	SeatDescription string            `bson:"seatDescription,omitempty" json:"seatDescription,omitempty"`
	Note          string              `bson:"note,omitempty" json:"note,omitempty"`
	IsTransferred bool                `bson:"isTransferred" json:"isTransferred"`

	CreatedBy      primitive.ObjectID  `bson:"createdBy" json:"createdBy"`
	LastModifiedBy *primitive.ObjectID `bson:"lastModifiedBy,omitempty" json:"lastModifiedBy,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}
