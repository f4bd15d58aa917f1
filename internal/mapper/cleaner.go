package mapper

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Cleaner applies a header mapping to raw rows, converts values per
// inferred type, fills required-field defaults and drops rows missing
// every essential field. Clock and randomness are injectable so tests
// can pin synthesized identifiers.
type Cleaner struct {
	kind  AssetKind
	trust float64

	// Now and RandString feed synthesized serial / SIM numbers.
	Now        func() time.Time
	RandString func(n int) string

	// Profile holds real values extracted from the sample rows, used
	// to seed missing model/brand values before falling back to
	// generic descriptions.
	Profile Profile
}

// NewCleaner creates a cleaner for one asset kind.
func NewCleaner(kind AssetKind, cfg Thresholds) *Cleaner {
	return &Cleaner{
		kind:       kind,
		trust:      cfg.Trust,
		Now:        time.Now,
		RandString: randBase36,
	}
}

// CleanRows cleans every raw row. Headers preserve the original column
// order for full-row fallback scans.
func (c *Cleaner) CleanRows(rows []RawRow, headers []string, mappings []ColumnMapping) []CleanedRow {
	cleaned := make([]CleanedRow, 0, len(rows))
	for _, row := range rows {
		out, ok := c.cleanRow(row, headers, mappings)
		if ok {
			cleaned = append(cleaned, out)
		}
	}
	return cleaned
}

// cleanRow converts one raw row; ok=false means the row lacked every
// essential field and was dropped.
func (c *Cleaner) cleanRow(row RawRow, headers []string, mappings []ColumnMapping) (CleanedRow, bool) {
	out := CleanedRow{}
	for _, m := range mappings {
		if m.Confidence <= c.trust || !m.Mapped() {
			continue
		}
		raw := strings.TrimSpace(row[m.OriginalName])
		switch m.DataType {
		case TypeNumber:
			if f, ok := parseNumber(raw); ok {
				out[m.MappedField] = f
			}
		case TypeDate:
			if d, ok := FormatDate(raw); ok {
				out[m.MappedField] = d
			}
		default:
			out[m.MappedField] = raw
		}
	}

	if !c.hasEssential(out) {
		return nil, false
	}

	if c.kind == KindTelecom {
		c.fillTelecomDefaults(out)
	} else {
		c.fillITDefaults(out, row, headers)
	}
	c.fillDateDefault(out, row, headers)
	return out, true
}

// hasEssential enforces the row acceptance invariant before any
// defaulting can mask an empty row.
func (c *Cleaner) hasEssential(row CleanedRow) bool {
	if c.kind == KindIT {
		return strField(row, "device_type") != "" ||
			strField(row, "model") != "" ||
			strField(row, "brand") != ""
	}
	if strField(row, "provider") != "" ||
		strField(row, "sim_number") != "" ||
		strField(row, "sim_owner") != "" {
		return true
	}
	for _, v := range row {
		switch t := v.(type) {
		case string:
			if strings.TrimSpace(t) != "" {
				return true
			}
		case float64:
			return true
		}
	}
	return false
}

func (c *Cleaner) fillITDefaults(row CleanedRow, raw RawRow, headers []string) {
	defaultStr(row, "device_type", "Unknown")
	defaultStr(row, "status", "active")
	defaultStr(row, "department", "IT")
	defaultStr(row, "zone", "Office")
	defaultStr(row, "owner_name", "Unassigned")

	deviceType := strField(row, "device_type")

	if strField(row, "serial_number") == "" {
		if v, ok := FindInRow(raw, headers, IsSerialNumber); ok {
			row["serial_number"] = v
		} else {
			row["serial_number"] = c.synthesizeSerial(deviceType, strField(row, "owner_name"))
		}
	}
	if strField(row, "model") == "" {
		switch {
		case found(row, "model", raw, headers, IsModel):
		case len(c.Profile.Models) > 0:
			row["model"] = c.Profile.Models[0]
		default:
			row["model"] = "Generic " + deviceCategory(deviceType)
		}
	}
	if strField(row, "brand") == "" {
		switch {
		case found(row, "brand", raw, headers, IsBrand):
		case len(c.Profile.Brands) > 0:
			row["brand"] = c.Profile.Brands[0]
		default:
			row["brand"] = deviceCategory(deviceType) + " OEM"
		}
	}
}

func (c *Cleaner) fillTelecomDefaults(row CleanedRow) {
	defaultStr(row, "provider", "Unknown")
	defaultStr(row, "status", "active")
	defaultStr(row, "department", "IT")
	defaultStr(row, "zone", "Office")
	defaultStr(row, "sim_owner", "Unassigned")
	defaultStr(row, "subscription_type", "Monthly")
	defaultStr(row, "data_plan", "Basic")

	if strField(row, "sim_number") == "" {
		row["sim_number"] = fmt.Sprintf("SIM-%d-%s", c.Now().UnixMilli(), c.RandString(9))
	}
}

// fillDateDefault scans the whole raw row for a date-shaped value and
// falls back to the current date.
func (c *Cleaner) fillDateDefault(row CleanedRow, raw RawRow, headers []string) {
	if strField(row, "date") != "" {
		return
	}
	if v, ok := FindInRow(raw, headers, IsDate); ok {
		if d, ok := FormatDate(v); ok {
			row["date"] = d
			return
		}
	}
	row["date"] = c.Now().Format("2006-01-02")
}

// synthesizeSerial builds {prefix}-{unixMillis}-{ownerTag}-{random}.
func (c *Cleaner) synthesizeSerial(deviceType, owner string) string {
	return fmt.Sprintf("%s-%d-%s-%s",
		devicePrefix(deviceType), c.Now().UnixMilli(), ownerTag(owner), c.RandString(9))
}

// devicePrefix derives the serial prefix from device-type keywords,
// English and French.
func devicePrefix(deviceType string) string {
	lower := strings.ToLower(deviceType)
	for _, p := range devicePrefixes {
		if strings.Contains(lower, p.keyword) {
			return p.prefix
		}
	}
	return "DEV"
}

// deviceCategory maps the device type to a category word for generic
// model/brand descriptions.
func deviceCategory(deviceType string) string {
	lower := strings.ToLower(deviceType)
	for _, p := range devicePrefixes {
		if strings.Contains(lower, p.keyword) {
			return p.category
		}
	}
	return "Device"
}

var devicePrefixes = []struct {
	keyword  string
	prefix   string
	category string
}{
	{"pc", "PC", "PC"},
	{"ordinateur", "PC", "PC"},
	{"laptop", "LAP", "Laptop"},
	{"portable", "LAP", "Laptop"},
	{"desktop", "DESK", "Desktop"},
	{"bureau", "DESK", "Desktop"},
	{"server", "SRV", "Server"},
	{"serveur", "SRV", "Server"},
	{"printer", "PRT", "Printer"},
	{"imprimante", "PRT", "Printer"},
	{"monitor", "MON", "Monitor"},
	{"moniteur", "MON", "Monitor"},
	{"router", "RT", "Router"},
	{"routeur", "RT", "Router"},
	{"switch", "SW", "Switch"},
}

// ownerTag is the first three letters of the owner's name, uppercased.
func ownerTag(owner string) string {
	var letters []rune
	for _, r := range strings.ToUpper(owner) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
			if len(letters) == 3 {
				break
			}
		}
	}
	if len(letters) == 0 {
		return "UNK"
	}
	return string(letters)
}

// found scans the raw row with a classifier and stores the first hit.
func found(row CleanedRow, field string, raw RawRow, headers []string, match func(string) bool) bool {
	v, ok := FindInRow(raw, headers, match)
	if ok {
		row[field] = v
	}
	return ok
}

// parseNumber strips everything but digits, dot and minus before
// parsing. Values with no numeric core are dropped, not zeroed.
func parseNumber(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func strField(row CleanedRow, key string) string {
	if v, ok := row[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func defaultStr(row CleanedRow, key, def string) {
	if strField(row, key) == "" {
		row[key] = def
	}
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}
