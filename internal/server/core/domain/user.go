package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type SignUpInput struct {
	Name           string
	Email          string
	Password       string
	RepeatPassword string
}
