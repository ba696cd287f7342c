package constants

const (
	APP_NAME = "Inkwell"

	// The first account ever registered is the blog owner.
	ADMIN_USER_ID = 1

	MIN_PASSWORD_LENGTH = 6

	// "Month DD, YYYY", stamped once at post creation
	POST_DATE_FORMAT = "January 02, 2006"

	CONTACT_RECIPIENT = "menwa.codes@yahoo.com"

	GRAVATAR_BASE_URL = "https://www.gravatar.com/avatar"
)
