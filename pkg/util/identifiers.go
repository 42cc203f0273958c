package util

import (
	"net/url"
	"regexp"
)

// Format rules for the Indian compliance identifiers collected during
// onboarding. All checks are total: they never panic and expect the caller
// to have upper-cased/trimmed the value where the format is case-sensitive.
var (
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][A-Z0-9]Z[A-Z0-9]$`)
	udyamPattern   = regexp.MustCompile(`^UDYAM-[A-Z]{2}-[0-9]{2}-[0-9]{7}$`)
	dpiitPattern   = regexp.MustCompile(`^DPIIT[0-9]{6,}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	mobilePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidPAN reports whether pan matches the ABCDE1234F format.
func IsValidPAN(pan string) bool {
	return panPattern.MatchString(pan)
}

// IsValidGSTIN reports whether gstin matches the 22AAAAA0000A1Z5 format.
func IsValidGSTIN(gstin string) bool {
	return gstinPattern.MatchString(gstin)
}

// IsValidUdyam reports whether the value matches UDYAM-XX-00-0000000.
func IsValidUdyam(udyamNumber string) bool {
	return udyamPattern.MatchString(udyamNumber)
}

// IsValidDPIIT reports whether the value is DPIIT followed by six or more digits.
func IsValidDPIIT(dpiitNumber string) bool {
	return dpiitPattern.MatchString(dpiitNumber)
}

// IsValidPincode reports whether the value is a 6-digit pincode.
func IsValidPincode(pincode string) bool {
	return pincodePattern.MatchString(pincode)
}

// IsValidMobile reports whether the value is a 10-digit mobile number.
func IsValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// IsValidEmail performs a lightweight shape check on an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidWebsite accepts an empty value (the field is optional) or an
// absolute http/https URL.
func IsValidWebsite(website string) bool {
	if website == "" {
		return true
	}
	u, err := url.Parse(website)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
