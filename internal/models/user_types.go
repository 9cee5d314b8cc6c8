package models

// RoleShopper is the default role assigned to users created at checkout.
const RoleShopper = "shopper"

// User is the single session user. Email acts as the identity key; a later
// login simply overwrites the stored record.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
