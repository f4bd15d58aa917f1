package mapper

import (
	"regexp"
	"strings"
)

// Content classifiers: structural predicates over a single cell value,
// used when a header's name says nothing reliable about its column.

var (
	// Letter prefix, a digit run, optional alphanumeric tail.
	serialPrefixRe = regexp.MustCompile(`^[A-Za-z]{1,4}-?\d{4,}[A-Za-z0-9-]*$`)
	// Pure digit strings 10-20 chars.
	serialDigitsRe = regexp.MustCompile(`^\d{10,20}$`)
	// Alphanumeric-only strings 8-20 chars.
	serialAlnumRe = regexp.MustCompile(`^[A-Za-z0-9]{8,20}$`)

	modelBrandRe = regexp.MustCompile(`(?i)^(dell|hp|lenovo|asus|acer|apple|samsung|toshiba|msi|huawei|cisco)[\s-]+[a-z0-9]`)
	modelLineRe  = regexp.MustCompile(`(?i)(latitude|thinkpad|thinkcentre|elitebook|probook|pavilion|inspiron|optiplex|ideapad|vostro|precision|macbook|zenbook|aspire|proliant|poweredge)[\s-]*[a-z0-9]`)

	ownerNameRe = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{00FF}]+(?:[ '-][a-zA-Z\x{00C0}-\x{00FF}]+){1,3}$`)

	shortTokenRe = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)

	phoneRe = regexp.MustCompile(`^\+?\d[\d .-]{7,18}\d$`)
)

// knownBrands are well-known hardware manufacturers, matched as
// substrings case-insensitively.
var knownBrands = []string{
	"dell", "hp", "lenovo", "asus", "acer", "apple", "samsung",
	"toshiba", "msi", "microsoft", "cisco", "huawei", "brother",
	"canon", "epson", "xerox", "kyocera", "fujitsu", "lg", "sony",
	"intel", "ibm", "zebra", "tp-link", "d-link", "netgear",
}

// deviceTypeWords are device category words, English and French.
var deviceTypeWords = []string{
	"pc", "ordinateur", "laptop", "portable", "desktop", "bureau",
	"server", "serveur", "printer", "imprimante", "monitor",
	"moniteur", "ecran", "écran", "screen", "router", "routeur",
	"switch", "commutateur", "phone", "telephone", "téléphone",
	"tablet", "tablette", "scanner", "projector", "projecteur",
	"clavier", "keyboard", "souris", "mouse",
}

// departmentWords are known department names and abbreviations.
var departmentWords = []string{
	"it", "rh", "hr", "finance", "compta", "comptabilité",
	"comptabilite", "marketing", "ventes", "sales", "direction",
	"informatique", "logistique", "achats", "juridique", "legal",
	"support", "production", "qualité", "qualite", "maintenance",
	"commercial",
}

// IsSerialNumber reports whether a value is shaped like a hardware
// serial number. Any structural pattern qualifies; length must be >= 8.
func IsSerialNumber(sample string) bool {
	s := strings.TrimSpace(sample)
	if len(s) < 8 {
		return false
	}
	return serialPrefixRe.MatchString(s) ||
		serialDigitsRe.MatchString(s) ||
		serialAlnumRe.MatchString(s)
}

// IsModel reports whether a value looks like a product model: a known
// brand or product-line name followed by an alphanumeric suffix.
func IsModel(sample string) bool {
	s := strings.TrimSpace(sample)
	if len(s) < 5 {
		return false
	}
	return modelBrandRe.MatchString(s) || modelLineRe.MatchString(s)
}

// IsBrand reports whether a value contains a well-known manufacturer
// name. Long values are rejected to avoid matching full sentences.
func IsBrand(sample string) bool {
	s := strings.TrimSpace(sample)
	if s == "" || len(s) > 20 {
		return false
	}
	lower := strings.ToLower(s)
	for _, b := range knownBrands {
		if strings.Contains(lower, b) {
			return true
		}
	}
	return false
}

// IsDeviceType reports whether a value contains a device category word.
func IsDeviceType(sample string) bool {
	lower := strings.ToLower(strings.TrimSpace(sample))
	if lower == "" {
		return false
	}
	for _, w := range deviceTypeWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// IsOwnerName reports whether a value is shaped like a person's name:
// 2-4 alphabetic words (accents allowed), 3-30 characters total.
func IsOwnerName(sample string) bool {
	s := strings.TrimSpace(sample)
	n := len([]rune(s))
	if n < 3 || n > 30 {
		return false
	}
	return ownerNameRe.MatchString(s)
}

// IsDepartment reports whether a value names a known department or is
// a short alphanumeric token that could abbreviate one.
func IsDepartment(sample string) bool {
	s := strings.TrimSpace(sample)
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, w := range departmentWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return shortTokenRe.MatchString(s)
}

// IsPhoneNumber reports whether a value looks like a subscriber line
// number (used for telecom SIM columns).
func IsPhoneNumber(sample string) bool {
	return phoneRe.MatchString(strings.TrimSpace(sample))
}

// knownProviders are telecom operators, matched as substrings.
var knownProviders = []string{
	"orange", "sfr", "bouygues", "free", "maroc telecom", "iam",
	"inwi", "vodafone", "verizon", "t-mobile", "telefonica",
	"proximus", "swisscom", "telia",
}

var (
	subscriptionRe = regexp.MustCompile(`(?i)(monthly|mensuel|annuel|annual|prepaid|prépayé|prepaye|postpaid|postpayé|forfait|illimité|illimite)`)
	dataPlanRe     = regexp.MustCompile(`(?i)^\d+\s*(gb|go|mb|mo)\b`)
)

// IsProvider reports whether a value names a known telecom operator.
func IsProvider(sample string) bool {
	s := strings.TrimSpace(sample)
	if s == "" || len(s) > 30 {
		return false
	}
	lower := strings.ToLower(s)
	for _, p := range knownProviders {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// IsSubscriptionType reports whether a value names a plan cadence.
func IsSubscriptionType(sample string) bool {
	return subscriptionRe.MatchString(sample)
}

// IsDataPlan reports whether a value is a data volume ("20 Go", "5GB").
func IsDataPlan(sample string) bool {
	return dataPlanRe.MatchString(strings.TrimSpace(sample))
}

// FindInRow returns the first cell value across all original columns
// for which the predicate holds, scanning headers in the given order.
// Fallback synthesis uses it to salvage values from unmapped columns.
func FindInRow(row RawRow, headers []string, match func(string) bool) (string, bool) {
	for _, h := range headers {
		v := strings.TrimSpace(row[h])
		if v != "" && match(v) {
			return v, true
		}
	}
	return "", false
}

// Profile is the "extracted real data" gathered from a sample of rows.
// It seeds value generation when a required field has no mapped column.
type Profile struct {
	Serials []string
	Models  []string
	Brands  []string
	Owners  []string
	Dates   []string
}

// profileSampleSize caps how many leading rows feed the profile.
const profileSampleSize = 10

// BuildProfile runs the classifiers over the first rows of an import
// and collects every value they recognize.
func BuildProfile(rows []RawRow, headers []string) Profile {
	var p Profile
	limit := len(rows)
	if limit > profileSampleSize {
		limit = profileSampleSize
	}
	for _, row := range rows[:limit] {
		for _, h := range headers {
			v := strings.TrimSpace(row[h])
			if v == "" {
				continue
			}
			switch {
			case IsSerialNumber(v):
				p.Serials = append(p.Serials, v)
			case IsModel(v):
				p.Models = append(p.Models, v)
			case IsBrand(v):
				p.Brands = append(p.Brands, v)
			case IsOwnerName(v):
				p.Owners = append(p.Owners, v)
			}
			if _, ok := FormatDate(v); ok {
				p.Dates = append(p.Dates, v)
			}
		}
	}
	return p
}
