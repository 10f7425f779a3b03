package constant

const (
	DefaultTokenType = "Bearer"

	// Generic responses for anti-enumeration endpoints. The same body is
	// returned whether or not the account exists.
	GenericResetResponse  = "If the email exists, a reset link has been sent"
	GenericVerifyResponse = "If the email exists, a verification email was sent"

	DefaultPageLimit = 20
	MaxPageLimit     = 200
)
