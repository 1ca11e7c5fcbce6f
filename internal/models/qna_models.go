package models

import "time"

// Question is a customer question, optionally scoped to a store. An answer is
// attached in place by an owner or administrator.
type Question struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id" db:"user_id"`
	StoreID    *int64     `json:"store_id,omitempty" db:"store_id"`
	Title      string     `json:"title" db:"title"`
	Content    string     `json:"content" db:"content"`
	Answer     *string    `json:"answer,omitempty" db:"answer"`
	AnsweredBy *int64     `json:"answered_by,omitempty" db:"answered_by"`
	AnsweredAt *time.Time `json:"answered_at,omitempty" db:"answered_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// QuestionFilters defines the available filters for querying questions.
type QuestionFilters struct {
	UserID     *int64 `form:"user_id"`
	StoreID    *int64 `form:"store_id"`
	Unanswered *bool  `form:"unanswered"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}
