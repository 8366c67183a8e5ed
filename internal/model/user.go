package model

// User represents a registrant in the system.
//
// Password is held in plain form: the whole login flow is a demo that
// never issues tokens, so no credential hashing happens here. The field
// is excluded from JSON so it can never leak through a response; API
// responses use the sanitized projection in the dto package instead.
type User struct {
	ID        int     `db:"id" json:"id"`
	Username  string  `db:"username" json:"username"`
	Password  string  `db:"password" json:"-"`
	Email     string  `db:"email" json:"email"`
	FullName  *string `db:"full_name" json:"fullName"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
}
