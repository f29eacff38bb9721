package users

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is created on first sign-in with no role; only an admin assigns one.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email string             `bson:"user_email" json:"user_email"`
	Name  string             `bson:"user_name" json:"user_name"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}

type CreateRequest struct {
	Email string `json:"user_email"`
	Name  string `json:"user_name"`
}

type RoleRequest struct {
	Role Role `json:"role"`
}

// DuplicateResult is the success-shaped reply to creating an existing email.
type DuplicateResult struct {
	Message    string `json:"message"`
	InsertedID any    `json:"insertedId"`
}

type RoleResponse struct {
	Role *Role `json:"role"`
}
