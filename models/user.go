package models

import (
	"strings"
	"time"
)

type User struct {
	ID       int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nome     string    `gorm:"column:nome;size:100;not null" json:"nome"`
	Email    string    `gorm:"column:email;size:100;not null;unique" json:"email"`
	Senha    string    `gorm:"column:senha;size:200;not null" json:"-"`
	CriadoEm time.Time `gorm:"column:criado_em;not null;autoCreateTime" json:"criado_em"`
}

func (User) TableName() string {
	return "usuarios"
}

// UserSummary is the public view of a user returned by the API.
type UserSummary struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email,omitempty"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Nome: u.Nome, Email: u.Email}
}

type RegisterInput struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginInput struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// NormalizeEmail lowercases and trims an address; the result is the
// uniqueness and lookup key for users.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
