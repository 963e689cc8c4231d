package domain

// User is the profile document paired 1:1 with an identity account.
// Created once at registration; no update or delete path is exposed.
type User struct {
	UID   string `bson:"_id" json:"uid"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role" json:"role"`
}
