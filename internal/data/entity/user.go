package entity

type UserRole string

const (
	RoleClient UserRole = "CLIENT"
	RoleAdmin  UserRole = "ADMIN"
)

type User struct {
	Base
	FullName     string   `db:"full_name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
