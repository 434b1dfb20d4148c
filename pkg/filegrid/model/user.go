package model

type FilegridUserStatus int

const (
	NORMAL_USER FilegridUserStatus = 1
	ADMIN FilegridUserStatus = 4
	BANNED FilegridUserStatus = 7
)

func ValidUserName(s string) bool {
	if len(s) <= 0 { return false }
	for _, k := range s {
		if !(('0' <= k && k <= '9') || ('A' <= k && k <= 'Z') || ('a' <= k && k <= 'z') || k == '_' || k == '-') { return false }
	}
	return true
}

type FilegridUser struct {
	// user name.
	Name string `json:"name"`
	// user "title" (display name).
	Title string `json:"title"`
	// user email. delete notifications go here.
	Email string `json:"email"`
	// password hash.
	PasswordHash string `json:"passwordHash"`
	RegisterTime int64 `json:"regTime"`
	Status FilegridUserStatus `json:"status"`
}
