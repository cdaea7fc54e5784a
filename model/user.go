package model

// Role values recorded on a user. The role is a client-readable flag, not an
// access-control mechanism.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an identity verified by an external login collaborator; this
// service only records it.
type User struct {
	ID       string `json:"id" bson:"_id"`
	Username string `json:"username" bson:"username"`
	Email    string `json:"email" bson:"email"`
	Role     string `json:"role" bson:"role"`
}
