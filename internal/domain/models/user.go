package models

import "time"

type User struct {
	UserID      int64     `json:"user_id"`
	FirstName   string    `json:"first_name"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserPatch struct {
	FirstName   *string
	Surname     *string
	Email       *string
	PhoneNumber *string
	Role        *string
	Avatar      *string
}
