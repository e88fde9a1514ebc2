package model

import "time"

// ContactMessage represents an inquiry submitted via the contact form.
// Name, Email, Subject, Message, Phone, Company, IPAddress and UserAgent
// are set once at creation; only the IsRead/IsReplied flags change after
// a record exists.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
	IsReplied bool      `json:"is_replied"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
}

// ContactListOptions carries filter and pagination parameters for listing
// contact messages. Nil filters mean "don't filter on this flag".
type ContactListOptions struct {
	Read    *bool
	Replied *bool
	Limit   int
	Offset  int
}
