package entity

import "time"

// InquiryStatus has exactly two states; the only exposed transition is
// new -> replied.
type InquiryStatus string

const (
	InquiryNew     InquiryStatus = "new"
	InquiryReplied InquiryStatus = "replied"
)

func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryNew, InquiryReplied:
		return true
	}
	return false
}

type Inquiry struct {
	ID        string        `json:"id" firestore:"-"`
	Name      string        `json:"name" firestore:"name"`
	Email     string        `json:"email" firestore:"email"`
	Phone     string        `json:"phone" firestore:"phone"`
	Subject   string        `json:"subject" firestore:"subject"`
	Message   string        `json:"message" firestore:"message"`
	Date      string        `json:"date" firestore:"date"`
	Status    InquiryStatus `json:"status" firestore:"status"`
	Type      string        `json:"type" firestore:"type"`
	CreatedAt time.Time     `json:"createdAt,omitempty" firestore:"createdAt"`
}
