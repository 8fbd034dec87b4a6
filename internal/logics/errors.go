package logics

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound 查詢目標不存在
var ErrNotFound = errors.New("查無資料")

// ValidationError 輸入資料不合法，對應 400
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError 唯一值衝突，對應 409
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// duplicateKeyError 把 mongo 的唯一索引衝突轉成欄位對應的中文訊息。
// fields 的 key 是索引欄位名稱，value 是顯示訊息。
func duplicateKeyError(err error, fields map[string]string) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	for field, message := range fields {
		if strings.Contains(msg, "index: "+field) {
			return &ConflictError{Message: message}
		}
	}
	return &ConflictError{Message: "某些欄位值已註冊"}
}
