package models

// 身分別代碼
const (
	RoleUser  = 1 // 一般員工
	RoleAdmin = 2 // 管理員
	RoleHR    = 3 // 人資
	RoleIT    = 4 // 資訊人員
)

// RoleNames 身分別代碼對應顯示名稱
var RoleNames = map[int]string{
	RoleUser:  "一般員工",
	RoleAdmin: "管理員",
	RoleHR:    "人資",
	RoleIT:    "資訊人員",
}

// GuideLicenseNames 導遊證類別代碼對應顯示名稱，0 代表無
var GuideLicenseNames = map[int]string{
	0: "無",
	1: "華語導遊",
	2: "外語導遊",
	3: "華語領隊",
	4: "外語領隊",
}
