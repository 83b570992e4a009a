package models

import "time"

// PasswordCategory groups vault entries.
type PasswordCategory struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon,omitempty"`
	IsPersonal bool   `json:"isPersonal"`
}

// Password is a vault entry. Values travel and rest in plaintext, which
// mirrors the mock backend this replaces; a production vault must
// encrypt at rest before this surface is exposed.
type Password struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"companyId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
	Login       string    `json:"login"`
	Password    string    `json:"password"`
	CategoryID  int64     `json:"categoryId,omitempty"`
	IsPersonal  bool      `json:"isPersonal"`
	UpdatedBy   string    `json:"updatedBy,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
