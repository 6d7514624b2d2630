package domain

import "time"

// NewsletterMessage marks a feedback row as a newsletter sign-up.
const NewsletterMessage = "Newsletter subscription"

type Feedback struct {
	ID      int64
	Name    string
	Email   string
	Message string

	CreatedAt time.Time
}
