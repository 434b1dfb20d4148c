package templates

type LoginInfoModel struct {
	LoggedIn bool
	UserName string
	UserFullName string
	UserEmail string
	// whether the logged-in user owns the component being viewed.
	// left unset by the generic middleware; each controller fills it
	// in when it has the component at hand.
	IsOwner bool
	IsAdmin bool
}
