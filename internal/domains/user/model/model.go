package model

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldFullName  = "full_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldCreatedAt = "created_at"
)

type User struct {
	ID        int64  `db:"id"`
	FullName  string `db:"full_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Password  string `db:"password"`
	Role      string `db:"role"`
	CreatedAt string `db:"created_at"`
}
