package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 公告類型
const (
	AnnouncementPinned    = "置頂"
	AnnouncementImportant = "重要"
	AnnouncementActivity  = "活動"
	AnnouncementSystem    = "系統"
	AnnouncementGeneral   = "一般"
)

// Attachment 公告附件的中繼資料。上傳與實體儲存由外部服務處理。
type Attachment struct {
	Path       string    `bson:"path" json:"path"`
	Filename   string    `bson:"filename" json:"filename"`
	FileType   string    `bson:"fileType" json:"fileType"`
	MimeType   string    `bson:"mimeType" json:"mimeType"`
	Size       int64     `bson:"size" json:"size"`
	UploadDate time.Time `bson:"uploadDate" json:"uploadDate"`
}

// Announcement 公告
type Announcement struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string              `bson:"title" json:"title"`
	Content     string              `bson:"content" json:"content"`
	Type        string              `bson:"type" json:"type"`
	Department  *primitive.ObjectID `bson:"department,omitempty" json:"department,omitempty"`
	Author      primitive.ObjectID  `bson:"author" json:"author"`
	ExpiryDate  *time.Time          `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	DeleteDate  *time.Time          `bson:"deleteDate,omitempty" json:"deleteDate,omitempty"`
	Attachments []Attachment        `bson:"attachments" json:"attachments"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}
