package materials

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material is a link or image a tutor attaches to one of their sessions.
type Material struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TutorEmail   string             `bson:"tutor_email" json:"tutor_email"`
	SessionID    string             `bson:"session_id,omitempty" json:"session_id,omitempty"`
	SessionTitle string             `bson:"session_title" json:"session_title"`
	Link         string             `bson:"link" json:"link"`
	Image        string             `bson:"image" json:"image"`
}

type Patch struct {
	SessionTitle *string `json:"session_title"`
	Link         *string `json:"link"`
	Image        *string `json:"image"`
}

func (p Patch) fields() bson.M {
	set := bson.M{}
	if p.SessionTitle != nil {
		set["session_title"] = *p.SessionTitle
	}
	if p.Link != nil {
		set["link"] = *p.Link
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	return set
}
