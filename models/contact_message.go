package models

import "time"

// MessageStatus enumerates the triage states of a contact message.
type MessageStatus string

const (
	MessageNew      MessageStatus = "new"
	MessageRead     MessageStatus = "read"
	MessageReplied  MessageStatus = "replied"
	MessageArchived MessageStatus = "archived"
)

var messageStatusLabels = map[MessageStatus]string{
	MessageNew:      "New",
	MessageRead:     "Read",
	MessageReplied:  "Replied",
	MessageArchived: "Archived",
}

func (s MessageStatus) Label() string {
	if label, ok := messageStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s MessageStatus) Valid() bool {
	_, ok := messageStatusLabels[s]
	return ok
}

// ContactMessage is an inbound contact-form submission. It is created only by
// the contact intake path; ip_address and user_agent are captured from the
// request at creation and never rewritten.
type ContactMessage struct {
	Model
	Name    string `json:"name" db:"name" gorm:"type:text;not null"`
	Email   string `json:"email" db:"email" gorm:"type:text;not null"`
	Subject string `json:"subject,omitempty" db:"subject" gorm:"type:text"`
	Message string `json:"message" db:"message" gorm:"type:text;not null"`

	Status    MessageStatus `json:"status" db:"status" gorm:"type:text;not null;default:'new'"`
	IPAddress string        `json:"ip_address,omitempty" db:"ip_address" gorm:"type:text"`
	UserAgent string        `json:"user_agent,omitempty" db:"user_agent" gorm:"type:text"`
	IsRead    bool          `json:"is_read" db:"is_read" gorm:"not null;default:false"`
	RepliedAt *time.Time    `json:"replied_at,omitempty" db:"replied_at"`
	Notes     string        `json:"notes,omitempty" db:"notes" gorm:"type:text"`
}
