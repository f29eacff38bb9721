package sessions

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusApprove Status = "approve"
	StatusReject  Status = "reject"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApprove, StatusReject:
		return true
	}
	return false
}

// Session is a course offering run by a tutor. Dates travel as the strings the
// client sent.
type Session struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TutorEmail        string             `bson:"tutor_email" json:"tutor_email"`
	TutorName         string             `bson:"tutor_name,omitempty" json:"tutor_name,omitempty"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Duration          string             `bson:"duration" json:"duration"`
	Category          string             `bson:"category" json:"category"`
	RegistrationFee   float64            `bson:"registration_fee" json:"registration_fee"`
	Status            Status             `bson:"status" json:"status"`
	RejectionReason   string             `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	Feedback          string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	RegistrationStart string             `bson:"registration_start" json:"registration_start"`
	RegistrationEnd   string             `bson:"registration_end" json:"registration_end"`
	ClassStart        string             `bson:"class_start" json:"class_start"`
	ClassEnd          string             `bson:"class_end" json:"class_end"`
}

type ApproveRequest struct {
	RegAmount *float64 `json:"regAmount"`
}

type RejectRequest struct {
	RejectionReason string `json:"rejectionReason"`
	Feedback        string `json:"feedback"`
}

type StatusRequest struct {
	Status Status `json:"status"`
}

// Patch carries the admin-editable fields; nil fields are left untouched.
type Patch struct {
	TutorName         *string  `json:"tutor_name"`
	Title             *string  `json:"title"`
	Description       *string  `json:"description"`
	Duration          *string  `json:"duration"`
	Category          *string  `json:"category"`
	RegistrationFee   *float64 `json:"registration_fee"`
	RegistrationStart *string  `json:"registration_start"`
	RegistrationEnd   *string  `json:"registration_end"`
	ClassStart        *string  `json:"class_start"`
	ClassEnd          *string  `json:"class_end"`
}

func (p Patch) fields() bson.M {
	set := bson.M{}
	put := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	put("tutor_name", p.TutorName)
	put("title", p.Title)
	put("description", p.Description)
	put("duration", p.Duration)
	put("category", p.Category)
	put("registration_start", p.RegistrationStart)
	put("registration_end", p.RegistrationEnd)
	put("class_start", p.ClassStart)
	put("class_end", p.ClassEnd)
	if p.RegistrationFee != nil {
		set["registration_fee"] = *p.RegistrationFee
	}
	return set
}
