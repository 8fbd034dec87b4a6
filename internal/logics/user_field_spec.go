package logics

import (
	"ysphere-server/internal/logics/changetrack"
	"ysphere-server/internal/models"
)

// userFieldSpec 員工資料異動追蹤的欄位規格。公司與部門是 ObjectID 參照，
// 名稱解析在 service 層做完後另外補進變更集，不放在這裡。
var userFieldSpec = []changetrack.Field[models.User]{
	{Key: "name", Label: "姓名", Get: func(u *models.User) any { return u.Name }},
	{Key: "englishName", Label: "英文名", Get: func(u *models.User) any { return u.EnglishName }},
	{Key: "IDNumber", Label: "身分證號碼", Get: func(u *models.User) any { return u.IDNumber }},
	{Key: "birthDate", Label: "生日", Get: func(u *models.User) any { return u.BirthDate }, Format: changetrack.Date()},
	{Key: "gender", Label: "性別", Get: func(u *models.User) any { return u.Gender }},
	{Key: "personalEmail", Label: "個人Email", Get: func(u *models.User) any { return u.PersonalEmail }},
	{Key: "permanentAddress", Label: "戶籍地址", Get: func(u *models.User) any { return u.PermanentAddress }},
	{Key: "contactAddress", Label: "聯絡地址", Get: func(u *models.User) any { return u.ContactAddress }},
	{Key: "email", Label: "公司Email", Get: func(u *models.User) any { return u.Email }},
	{Key: "phoneNumber", Label: "室內電話", Get: func(u *models.User) any { return u.PhoneNumber }},
	{Key: "cellphone", Label: "手機號碼", Get: func(u *models.User) any { return u.Cellphone }},
	{Key: "salary", Label: "基本薪資", Get: func(u *models.User) any { return u.Salary }},
	{Key: "extNumber", Label: "分機號碼", Get: func(u *models.User) any { return u.ExtNumber }},
	{Key: "printNumber", Label: "列印編號", Get: func(u *models.User) any { return u.PrintNumber }},
	{Key: "emergencyName", Label: "緊急聯絡人姓名", Get: func(u *models.User) any { return u.EmergencyName }},
	{Key: "emergencyPhoneNumber", Label: "緊急聯絡人室內電話", Get: func(u *models.User) any { return u.EmergencyPhoneNumber }},
	{Key: "emergencyCellphone", Label: "緊急聯絡人手機號碼", Get: func(u *models.User) any { return u.EmergencyCellphone }},
	{Key: "emergencyRelationship", Label: "緊急聯絡人關係", Get: func(u *models.User) any { return u.EmergencyRelationship }},
	{Key: "jobTitle", Label: "職稱", Get: func(u *models.User) any { return u.JobTitle }},
	{Key: "role", Label: "身分別", Get: func(u *models.User) any { return u.Role }, Format: changetrack.Coded(models.RoleNames)},
	{Key: "cowellAccount", Label: "科威帳號", Get: func(u *models.User) any { return u.CowellAccount }},
	{Key: "cowellPassword", Label: "科威密碼", Get: func(u *models.User) any { return u.CowellPassword }},
	{Key: "userId", Label: "員工編號", Get: func(u *models.User) any { return u.UserID }},
	{Key: "employmentStatus", Label: "任職狀態", Get: func(u *models.User) any { return u.EmploymentStatus }},
	{Key: "hireDate", Label: "入職日期", Get: func(u *models.User) any { return u.HireDate }, Format: changetrack.Date()},
	{Key: "resignationDate", Label: "離職日期", Get: func(u *models.User) any { return u.ResignationDate }, Format: changetrack.Date()},
	{Key: "note", Label: "備註", Get: func(u *models.User) any { return u.Note }},
	{Key: "healthInsuranceStartDate", Label: "健保加保日期", Get: func(u *models.User) any { return u.HealthInsuranceStartDate }, Format: changetrack.Date()},
	{Key: "healthInsuranceEndDate", Label: "健保退保日期", Get: func(u *models.User) any { return u.HealthInsuranceEndDate }, Format: changetrack.Date()},
	{Key: "laborInsuranceStartDate", Label: "勞保加保日期", Get: func(u *models.User) any { return u.LaborInsuranceStartDate }, Format: changetrack.Date()},
	{Key: "laborInsuranceEndDate", Label: "勞保退保日期", Get: func(u *models.User) any { return u.LaborInsuranceEndDate }, Format: changetrack.Date()},
	{Key: "salaryBank", Label: "薪轉銀行", Get: func(u *models.User) any { return u.SalaryBank }},
	{Key: "salaryBankBranch", Label: "薪轉分行", Get: func(u *models.User) any { return u.SalaryBankBranch }},
	{Key: "salaryAccountNumber", Label: "薪轉帳戶號碼", Get: func(u *models.User) any { return u.SalaryAccountNumber }},
	{Key: "guideLicense", Label: "導遊證", Get: func(u *models.User) any { return u.GuideLicense }, Format: changetrack.MultiCoded(models.GuideLicenseNames, "無")},
	{Key: "tourManager", Label: "旅遊經理人", Get: func(u *models.User) any { return u.TourManager }, Format: changetrack.Bool()},
	{Key: "YSRCAccount", Label: "YSRC帳號", Get: func(u *models.User) any { return u.YSRCAccount }},
	{Key: "YSRCPassword", Label: "YSRC密碼", Get: func(u *models.User) any { return u.YSRCPassword }},
	{Key: "YS168Account", Label: "YS168帳號", Get: func(u *models.User) any { return u.YS168Account }},
	{Key: "YS168Password", Label: "YS168密碼", Get: func(u *models.User) any { return u.YS168Password }},
	{Key: "disabilityStatus", Label: "身心障礙身份", Get: func(u *models.User) any { return u.DisabilityStatus }},
	{Key: "indigenousStatus", Label: "原住民身份", Get: func(u *models.User) any { return u.IndigenousStatus }, Format: changetrack.Bool()},
	{Key: "voluntaryPensionRate", Label: "勞退自提比率", Get: func(u *models.User) any { return u.VoluntaryPensionRate }},
	{Key: "voluntaryPensionStartDate", Label: "勞退自提開始日期", Get: func(u *models.User) any { return u.VoluntaryPensionStartDate }, Format: changetrack.Date()},
	{Key: "voluntaryPensionEndDate", Label: "勞退自提結束日期", Get: func(u *models.User) any { return u.VoluntaryPensionEndDate }, Format: changetrack.Date()},
	{Key: "dependentInsurance", Label: "眷屬保險資料", Get: func(u *models.User) any { return u.DependentInsurance }, Format: formatDependents},
	{Key: "tourismReportDate", Label: "觀光局申報到職日期", Get: func(u *models.User) any { return u.TourismReportDate }, Format: changetrack.Date()},
}

// formatDependents 把眷屬保險子文件轉成中文 key 的快照，日期照一般日期規則顯示。
func formatDependents(raw any) any {
	deps, ok := raw.([]models.DependentInsurance)
	if !ok || len(deps) == 0 {
		return nil
	}
	date := changetrack.Date()
	out := make([]map[string]any, 0, len(deps))
	for _, d := range deps {
		out = append(out, map[string]any{
			"姓名":   d.DependentName,
			"關係":   d.DependentRelationship,
			"生日":   date(d.DependentBirthDate),
			"身分證號": d.DependentIDNumber,
			"加保日期": date(d.DependentInsuranceStartDate),
			"退保日期": date(d.DependentInsuranceEndDate),
		})
	}
	return out
}
