package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 任職狀態
const (
	EmploymentActive   = "在職"
	EmploymentResigned = "離職"
	EmploymentRetired  = "退休"
	EmploymentOnLeave  = "留職停薪"
)

// 表單填寫狀態
const (
	FormStatusIncomplete = "尚未完成"
	FormStatusPartial    = "尚缺資料"
	FormStatusComplete   = "已完成"
)

// DependentInsurance 眷屬保險資料
type DependentInsurance struct {
	DependentName               string     `bson:"dependentName" json:"dependentName"`
	DependentRelationship       string     `bson:"dependentRelationship" json:"dependentRelationship"`
	DependentBirthDate          time.Time  `bson:"dependentBirthDate" json:"dependentBirthDate"`
	DependentIDNumber           string     `bson:"dependentIDNumber" json:"dependentIDNumber"`
	DependentInsuranceStartDate *time.Time `bson:"dependentInsuranceStartDate,omitempty" json:"dependentInsuranceStartDate,omitempty"`
	DependentInsuranceEndDate   *time.Time `bson:"dependentInsuranceEndDate,omitempty" json:"dependentInsuranceEndDate,omitempty"`
}

// User 正式員工資料。欄位名稱沿用既有集合的 key，前端與舊資料相容。
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	EnglishName  string             `bson:"englishName,omitempty" json:"englishName,omitempty"`
	IDNumber     string             `bson:"IDNumber" json:"IDNumber"`
	BirthDate    time.Time          `bson:"birthDate" json:"birthDate"`
	Gender       string             `bson:"gender" json:"gender"`
	PersonalEmail string            `bson:"personalEmail,omitempty" json:"personalEmail,omitempty"`
	PermanentAddress string         `bson:"permanentAddress" json:"permanentAddress"`
	ContactAddress   string         `bson:"contactAddress" json:"contactAddress"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	PhoneNumber  string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Cellphone    string             `bson:"cellphone,omitempty" json:"cellphone,omitempty"`
	Salary       string             `bson:"salary,omitempty" json:"salary,omitempty"`
	ExtNumber    string             `bson:"extNumber,omitempty" json:"extNumber,omitempty"`
	PrintNumber  string             `bson:"printNumber,omitempty" json:"printNumber,omitempty"`
	EmergencyName         string    `bson:"emergencyName,omitempty" json:"emergencyName,omitempty"`
	EmergencyPhoneNumber  string    `bson:"emergencyPhoneNumber,omitempty" json:"emergencyPhoneNumber,omitempty"`
	EmergencyCellphone    string    `bson:"emergencyCellphone,omitempty" json:"emergencyCellphone,omitempty"`
	EmergencyRelationship string    `bson:"emergencyRelationship,omitempty" json:"emergencyRelationship,omitempty"`
	Company      primitive.ObjectID `bson:"company" json:"company"`
	Department   primitive.ObjectID `bson:"department" json:"department"`
	JobTitle     string             `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	Role         int                `bson:"role" json:"role"`
	CowellAccount  string           `bson:"cowellAccount,omitempty" json:"cowellAccount,omitempty"`
	CowellPassword string           `bson:"cowellPassword,omitempty" json:"cowellPassword,omitempty"`
	UserID       string             `bson:"userId" json:"userId"`
	EmploymentStatus string         `bson:"employmentStatus" json:"employmentStatus"`
	HireDate     time.Time          `bson:"hireDate" json:"hireDate"`
	ResignationDate *time.Time      `bson:"resignationDate,omitempty" json:"resignationDate,omitempty"`
	Note         string             `bson:"note,omitempty" json:"note,omitempty"`

	HealthInsuranceStartDate *time.Time `bson:"healthInsuranceStartDate,omitempty" json:"healthInsuranceStartDate,omitempty"`
	HealthInsuranceEndDate   *time.Time `bson:"healthInsuranceEndDate,omitempty" json:"healthInsuranceEndDate,omitempty"`
	LaborInsuranceStartDate  *time.Time `bson:"laborInsuranceStartDate,omitempty" json:"laborInsuranceStartDate,omitempty"`
	LaborInsuranceEndDate    *time.Time `bson:"laborInsuranceEndDate,omitempty" json:"laborInsuranceEndDate,omitempty"`
	SalaryBank          string     `bson:"salaryBank,omitempty" json:"salaryBank,omitempty"`
	SalaryBankBranch    string     `bson:"salaryBankBranch,omitempty" json:"salaryBankBranch,omitempty"`
	SalaryAccountNumber string     `bson:"salaryAccountNumber,omitempty" json:"salaryAccountNumber,omitempty"`
	GuideLicense        []int      `bson:"guideLicense" json:"guideLicense"`
	TourManager         bool       `bson:"tourManager" json:"tourManager"`
	YSRCAccount         string     `bson:"YSRCAccount,omitempty" json:"YSRCAccount,omitempty"`
	YSRCPassword        string     `bson:"YSRCPassword,omitempty" json:"YSRCPassword,omitempty"`
	YS168Account        string     `bson:"YS168Account,omitempty" json:"YS168Account,omitempty"`
	YS168Password       string     `bson:"YS168Password,omitempty" json:"YS168Password,omitempty"`
	DisabilityStatus    string     `bson:"disabilityStatus" json:"disabilityStatus"`
	IndigenousStatus    bool       `bson:"indigenousStatus" json:"indigenousStatus"`
	VoluntaryPensionRate      float64    `bson:"voluntaryPensionRate,omitempty" json:"voluntaryPensionRate,omitempty"`
	VoluntaryPensionStartDate *time.Time `bson:"voluntaryPensionStartDate,omitempty" json:"voluntaryPensionStartDate,omitempty"`
	VoluntaryPensionEndDate   *time.Time `bson:"voluntaryPensionEndDate,omitempty" json:"voluntaryPensionEndDate,omitempty"`
	DependentInsurance  []DependentInsurance `bson:"dependentInsurance" json:"dependentInsurance"`
	TourismReportDate   *time.Time `bson:"tourismReportDate,omitempty" json:"tourismReportDate,omitempty"`

	FormStatus   string    `bson:"formStatus" json:"formStatus"`
	Avatar       string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	IsFirstLogin bool      `bson:"isFirstLogin" json:"isFirstLogin"`
	Tokens       []string  `bson:"tokens" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
