package parsing

import "regexp"

// Contact presence is a boolean AND of an email-shaped token and a
// phone-shaped token. Neither pattern validates deliverability; they only
// detect that contact details exist somewhere in the text.
var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// 10 contiguous digits, or the (NNN) NNN-NNNN format.
	phoneRe = regexp.MustCompile(`\b\d{10}\b|\(\d{3}\)\s*\d{3}-\d{4}`)
)

func hasContactInfo(text string) bool {
	return emailRe.MatchString(text) && phoneRe.MatchString(text)
}
