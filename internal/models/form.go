package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Form 已建立的表單。FormNumber 為年月日 + 當月流水號（202411290001）。
type Form struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FormNumber   string             `bson:"formNumber" json:"formNumber"`
	ClientName   string             `bson:"clientName,omitempty" json:"clientName,omitempty"`
	FormTemplate primitive.ObjectID `bson:"formTemplate" json:"formTemplate"`
	Creator      primitive.ObjectID `bson:"creator" json:"creator"`
	PdfUrl       string             `bson:"pdfUrl" json:"pdfUrl"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
