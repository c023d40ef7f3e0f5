package auth

const (
	MsgRegisterSuccess = "Thank you for registering."
	MsgLoggedIn        = "Logged in."
	MsgRefreshed       = "Token refreshed."
	MsgUserExists      = "User already exists."
)
