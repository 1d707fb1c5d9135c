package handlers

// Ограничения на присланный access token
const (
	TokenMinLength = 20
	TokenMaxLength = 4096
)
