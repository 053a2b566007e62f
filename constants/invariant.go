package constants

const (
	// public URL
	APP_NAME           = "Midna's Blog"
	PUBLIC_URL         = "https://blog.midnamic.dev"
	POST_DATE_FORMAT   = "January 02, 2006"
	MAX_POST_LENGTH    = 50000
	MAX_COMMENT_LENGTH = 2000
)
