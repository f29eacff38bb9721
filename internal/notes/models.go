package notes

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Note struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail   string             `bson:"user_email" json:"user_email"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
}

type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (p Patch) fields() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	return set
}
