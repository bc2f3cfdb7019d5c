package domain

import "time"

const (
	SettingsID          = "default"
	DefaultPlatformName = "Binaa Mart"
)

// PlatformSettings is a single row keyed by SettingsID.
type PlatformSettings struct {
	ID           string    `json:"-" gorm:"size:32;primaryKey"`
	PlatformName string    `json:"platformName" gorm:"size:200;not null"`
	PlatformLogo string    `json:"platformLogo,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type SettingsUpdate struct {
	PlatformName *string
	PlatformLogo *string
}

// Notification is a static placeholder shown in the client inbox.
type Notification struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
