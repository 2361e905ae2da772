// Package phone turns raw user input into a canonical phone number and
// derives offline metadata for it.
//
// Both operations delegate to github.com/nyaruka/phonenumbers, the Go port
// of Google's libphonenumber. The numbering-plan data ships with the
// library, so nothing in this package performs I/O:
//
//	n, err := phone.Parse("91", "9876543210")
//	if err != nil {
//	    // fatal: no report can be produced
//	}
//	meta := phone.Resolve(n)
//
// Parse is the only fallible step. Resolve always returns a best-effort
// record and is deterministic for a pinned library version.
package phone
