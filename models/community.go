package models

import "time"

// Question is a community question asked by any user.
type Question struct {
	ID        string       `bson:"id" json:"id"`
	UserID    string       `bson:"user_id" json:"-"`
	Question  string       `bson:"question" json:"question"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	User      *UserSummary `bson:"-" json:"user,omitempty"` // filled from the user record on read
}

// Answer is a reply to a community question.
type Answer struct {
	ID         string       `bson:"id" json:"id"`
	QuestionID string       `bson:"question_id" json:"question_id"`
	UserID     string       `bson:"user_id" json:"-"`
	Answer     string       `bson:"answer" json:"answer"`
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
	User       *UserSummary `bson:"-" json:"user,omitempty"`
}
