package models

type Inquiry struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"size:100" json:"name"`
	Email   string `gorm:"size:255" json:"email"`
	Message string `gorm:"type:text" json:"message"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
