package models

// Applicant - одна поданная анкета. Значения формы хранятся как есть.
type Applicant struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Age         string `gorm:"size:20" json:"age"`
	Gender      string `gorm:"size:20" json:"gender"`
	PhoneNumber string `gorm:"column:phone_number;size:50" json:"phone_number"`
	Address     string `gorm:"size:255" json:"address"`
	ResumeFile  string `gorm:"column:resume_file;size:64" json:"resume_file"` // id документа или NoImage
}

func (Applicant) TableName() string {
	return "applicants"
}

// HasResumeImage reports whether ResumeFile references a stored image.
func (a *Applicant) HasResumeImage() bool {
	return a.ResumeFile != "" && a.ResumeFile != NoImage
}
