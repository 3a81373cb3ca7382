package messages

// Response messages shared across domains. Wire-visible: clients match on
// these strings, keep them stable.
const (
	GetSuccess          = "data getting successfully"
	NotFound            = "data not found"
	AddedSuccess        = "data added successfully."
	AlreadyExist        = "data already exists."
	UpdateSuccess       = "updated successfully."
	DeleteSuccess       = "data deleted successfully."
	CredentialsNotMatch = "Your credentials does not match."
	LoginSuccess        = "You are login successfully."
	OtpSent             = "Otp send successfully."
	OtpExpired          = "Your otp is expired."
	OtpValidation       = "Please enter correct otp."
	EmailValidation     = "Your email is not registered."
	ImageRequire        = "Image should be required."
	ServerError         = "Internal server error"

	InquirySubject = "Your inquiry has been approved"
	InquiryText    = "Your inquiry details"
	OtpSubject     = "Your Otp for update password"
	EmailText      = "Your details are:"
)
