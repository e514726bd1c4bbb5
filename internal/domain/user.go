package domain

// User is a registered account in the directory. The password is kept
// as provided; hashing is out of scope for this service and the issued
// token echoes the credential back.
type User struct {
	Username string
	Password string
}
