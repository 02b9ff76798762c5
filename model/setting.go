package model

type Setting struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex" json:"name"`
	Value       string `gorm:"size:300" json:"value"`
	Description string `json:"description"`
}

type SettingInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Value       string `json:"value" validate:"omitempty,max=300"`
	Description string `json:"description" validate:"omitempty"`
}
