package models

// Industry is a client-supplied code plus a display label.
type Industry struct {
	Code     string `gorm:"primaryKey;size:64" json:"code"`
	Industry string `gorm:"size:128;not null" json:"industry"`
}

// CompanyIndustry is the association row linking one company to one
// industry. The pair is unique.
type CompanyIndustry struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	CompCode     string `gorm:"size:64;not null;uniqueIndex:idx_company_industry_pair" json:"comp_code"`
	IndustryCode string `gorm:"size:64;not null;uniqueIndex:idx_company_industry_pair" json:"industry_code"`

	Company  Company  `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
	Industry Industry `gorm:"foreignKey:IndustryCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the original singular join-table name.
func (CompanyIndustry) TableName() string { return "company_industry" }
