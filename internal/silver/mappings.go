package silver

import "strings"

// Domain value maps. Every map is closed: unrecognized raw codes collapse to
// the "n/a" sentinel (or, for countries, pass through trimmed), so no
// cleansed record ever carries an unmapped code.

const sentinelNA = "n/a"

// maritalStatus maps CRM marital-status codes.
func maritalStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "S":
		return "Single"
	case "M":
		return "Married"
	default:
		return sentinelNA
	}
}

// gender maps single-letter CRM gender codes.
func gender(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "F":
		return "Female"
	case "M":
		return "Male"
	default:
		return sentinelNA
	}
}

// genderToken maps the looser ERP gender tokens, which arrive both as codes
// and as spelled-out words.
func genderToken(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "F", "FEMALE":
		return "Female"
	case "M", "MALE":
		return "Male"
	default:
		return sentinelNA
	}
}

// productLine maps CRM product-line codes.
func productLine(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "M":
		return "Mountain"
	case "R":
		return "Road"
	case "S":
		return "Other Sales"
	case "T":
		return "Touring"
	default:
		return sentinelNA
	}
}

// country normalizes ERP country tokens into canonical names. Unlike the
// other maps this one is open at the edge: an unrecognized non-blank token
// passes through trimmed rather than collapsing to the sentinel.
func country(raw string) string {
	t := strings.TrimSpace(raw)
	switch t {
	case "DE":
		return "Germany"
	case "US", "USA":
		return "United States"
	case "":
		return sentinelNA
	default:
		return t
	}
}
