package models

// Settings is the singleton shop profile record.
type Settings struct {
	CompanyName string `json:"companyName"`
	Logo        string `json:"logo,omitempty"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Theme       string `json:"theme"`
}

// DefaultSettings returns the values served before the shop saves a profile.
func DefaultSettings() Settings {
	return Settings{
		CompanyName: "Laptop Servis Yönetimi",
		Theme:       "dark",
	}
}

// EmailConfig is the singleton outgoing-mail configuration. Delivery itself
// is handled outside this service; we only store the settings.
type EmailConfig struct {
	Server   string `json:"server"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Secure   bool   `json:"secure"`
}

func DefaultEmailConfig() EmailConfig {
	return EmailConfig{Secure: true}
}
