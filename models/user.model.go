package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `gorm:"default:''" json:"name"`
	Picture   string    `gorm:"default:''" json:"picture"`
	Provider  string    `gorm:"default:'google'" json:"provider"`
	LastLogin time.Time `gorm:"default:NULL" json:"last_login"`
	IsDeleted bool      `gorm:"default:false" json:"-"`
}

// HasAllowedDomain reports whether the email belongs to the given organization domain
func HasAllowedDomain(email, domain string) bool {
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(domain))
}
