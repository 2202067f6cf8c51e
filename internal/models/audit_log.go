package models

// AuditLog records sensitive user operations.
type AuditLog struct {
	Base
	UserID       string `gorm:"size:36;not null;index" json:"user_id"`
	Action       string `gorm:"size:64;not null" json:"action"`
	ResourceType string `gorm:"size:32;not null" json:"resource_type"`
	ResourceID   string `gorm:"size:36" json:"resource_id"`
	IPAddress    string `gorm:"size:64" json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
