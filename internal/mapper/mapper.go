package mapper

import (
	"strings"
)

// HeaderMapper resolves raw spreadsheet headers to target schema
// fields. One instance serves one import run: the content fallback
// tracks which fields earlier columns already claimed.
type HeaderMapper struct {
	kind   AssetKind
	fields []string
	cfg    Thresholds
	used   map[string]bool
}

// NewHeaderMapper creates a mapper for one asset kind.
func NewHeaderMapper(kind AssetKind, cfg Thresholds) *HeaderMapper {
	return &HeaderMapper{
		kind:   kind,
		fields: TargetFields(kind),
		cfg:    cfg,
		used:   make(map[string]bool),
	}
}

// strategyFunc attempts one matching strategy for a normalized header
// and its first-row sample value.
type strategyFunc func(norm, sample string) (field string, confidence float64, ok bool)

// MapHeaders runs the matching cascade over every header, using the
// given sample row (normally the first data row) as the content signal.
// Excluded administrative columns are skipped before any strategy runs;
// columns that match nothing and carry no meaningful content are
// omitted entirely.
func MapHeaders(headers []string, sample RawRow, kind AssetKind) []ColumnMapping {
	return NewHeaderMapper(kind, DefaultThresholds()).MapHeaders(headers, sample)
}

// MapHeaders maps all headers of one import in order.
func (m *HeaderMapper) MapHeaders(headers []string, sample RawRow) []ColumnMapping {
	strategies := []struct {
		name string
		fn   strategyFunc
	}{
		{"type-override", m.matchTypeOverride},
		{"exact-field", m.matchExactField},
		{"pattern", m.matchPattern},
		{"synonym", m.matchSynonym},
		{"fuzzy", m.matchFuzzy},
		{"french", m.matchFrench},
		{"content-fallback", m.matchContent},
	}

	var mappings []ColumnMapping
	for _, header := range headers {
		norm := Normalize(header)
		if norm == "" || excludedColumns[norm] {
			continue
		}
		sampleVal := strings.TrimSpace(sample[header])

		matched := false
		for _, s := range strategies {
			field, conf, ok := s.fn(norm, sampleVal)
			if !ok || field == "" {
				continue
			}
			m.used[field] = true
			mappings = append(mappings, ColumnMapping{
				OriginalName: header,
				MappedField:  field,
				Confidence:   conf,
				DataType:     inferDataType(field, norm),
			})
			matched = true
			break
		}
		if !matched && m.meaningful(norm, sampleVal) {
			// Surfaced in the report so a human can map it by hand;
			// never trusted by the cleaner.
			mappings = append(mappings, ColumnMapping{
				OriginalName: header,
				MappedField:  header,
				Confidence:   0,
				DataType:     TypeText,
			})
		}
	}
	return mappings
}

// matchTypeOverride maps a bare "type" header straight to the schema's
// type-like field. Generic "type" columns would otherwise be swallowed
// by lower-confidence synonym rules.
func (m *HeaderMapper) matchTypeOverride(norm, _ string) (string, float64, bool) {
	if norm != "type" {
		return "", 0, false
	}
	if m.schemaHas("device_type") {
		return "device_type", 1.0, true
	}
	if m.schemaHas("subscription_type") {
		return "subscription_type", 1.0, true
	}
	return "", 0, false
}

// matchExactField matches the header against the target field keys
// themselves.
func (m *HeaderMapper) matchExactField(norm, _ string) (string, float64, bool) {
	for _, f := range m.fields {
		if norm == Normalize(f) {
			return f, 1.0, true
		}
	}
	return "", 0, false
}

// matchPattern matches curated per-field header regexes, then falls
// back to the sample value's shape for the strongest content
// signatures.
func (m *HeaderMapper) matchPattern(norm, sample string) (string, float64, bool) {
	for _, f := range m.fields {
		re, ok := fieldPatterns[f]
		if !ok {
			continue
		}
		if re.MatchString(norm) {
			return f, 0.9, true
		}
	}

	if sample == "" {
		return "", 0, false
	}
	if m.schemaHas("serial_number") && IsSerialNumber(sample) {
		return "serial_number", 0.85, true
	}
	if m.schemaHas("sim_number") && IsPhoneNumber(sample) {
		return "sim_number", 0.8, true
	}
	if m.schemaHas("model") && IsModel(sample) {
		return "model", 0.75, true
	}
	return "", 0, false
}

// matchSynonym scores the header against every known alias of every
// schema field and keeps the single best candidate above threshold.
func (m *HeaderMapper) matchSynonym(norm, sample string) (string, float64, bool) {
	bestField := ""
	bestScore := 0.0

	for _, f := range m.fields {
		for _, alias := range synonyms[f] {
			na := Normalize(alias)
			if na == "" {
				continue
			}
			var score float64
			switch {
			case norm == na:
				score = 0.98
			case strings.Contains(norm, na) || strings.Contains(na, norm):
				score = Similarity(norm, na)
				if score < 0.85 {
					score = 0.85
				}
			default:
				score = Similarity(norm, na) + m.contextBoost(f, norm, sample)
			}
			if score > 1.0 {
				score = 1.0
			}
			if score > bestScore {
				bestField, bestScore = f, score
			}
		}
	}

	if bestField != "" && bestScore >= m.cfg.Synonym {
		return bestField, bestScore, true
	}
	return "", 0, false
}

// contextBoost rewards a candidate field when the header resembles its
// canonical abbreviations and when the sample content has its shape.
// The combined boost is capped; see Thresholds.
func (m *HeaderMapper) contextBoost(field, norm, sample string) float64 {
	boost := 0.0
	for _, hint := range headerHints[field] {
		if strings.Contains(norm, hint) {
			boost += m.cfg.HeaderBoost
			break
		}
	}
	if contentMatches(field, sample) {
		boost += m.cfg.ContentBoost
	}
	if boost > m.cfg.ContentBoost {
		boost = m.cfg.ContentBoost
	}
	return boost
}

// matchFuzzy compares the header directly against the field keys with
// a permissive threshold.
func (m *HeaderMapper) matchFuzzy(norm, _ string) (string, float64, bool) {
	bestField := ""
	bestScore := 0.0
	for _, f := range m.fields {
		if s := Similarity(norm, f); s > bestScore {
			bestField, bestScore = f, s
		}
	}
	if bestField != "" && bestScore >= m.cfg.Fuzzy {
		return bestField, bestScore, true
	}
	return "", 0, false
}

// matchFrench consults the curated French stem table: abbreviations
// first, then exact stem equality, then substring containment in table
// order.
func (m *HeaderMapper) matchFrench(norm, _ string) (string, float64, bool) {
	const conf = 0.8

	hasNo := strings.Contains(norm, "n_") || strings.Contains(norm, "no") || strings.Contains(norm, "num")
	if hasNo && strings.Contains(norm, "serie") {
		if m.schemaHas("serial_number") {
			return "serial_number", conf, true
		}
		if m.schemaHas("sim_number") {
			return "sim_number", conf, true
		}
	}
	if (strings.HasPrefix(norm, "mod") || strings.HasPrefix(norm, "ref")) && m.schemaHas("model") {
		return "model", conf, true
	}
	if (strings.HasPrefix(norm, "marq") || strings.HasPrefix(norm, "fab")) && m.schemaHas("brand") {
		return "brand", conf, true
	}

	for _, e := range frenchStems {
		f := e.fieldFor(m.kind)
		if f == "" || !m.schemaHas(f) {
			continue
		}
		if norm == e.stem {
			return f, conf, true
		}
	}
	for _, e := range frenchStems {
		f := e.fieldFor(m.kind)
		if f == "" || !m.schemaHas(f) {
			continue
		}
		if strings.Contains(norm, e.stem) {
			return f, conf, true
		}
	}
	return "", 0, false
}

// matchContent is the last resort for meaningful columns: hand the
// column to whichever still-unused critical field best matches the
// sample's shape, or to the first unused critical field at rock-bottom
// confidence.
func (m *HeaderMapper) matchContent(norm, sample string) (string, float64, bool) {
	if !m.meaningful(norm, sample) {
		return "", 0, false
	}
	for _, f := range criticalFields[m.kind] {
		if m.used[f] {
			continue
		}
		if contentMatches(f, sample) {
			return f, fallbackConfidence[f], true
		}
	}
	for _, f := range criticalFields[m.kind] {
		if !m.used[f] {
			return f, 0.3, true
		}
	}
	return "", 0, false
}

// meaningful filters out empty columns and administrative bookkeeping
// headers before the content fallback may claim them.
func (m *HeaderMapper) meaningful(norm, sample string) bool {
	return norm != "" && sample != "" && !adminHeaderRe.MatchString(norm)
}

func (m *HeaderMapper) schemaHas(field string) bool {
	for _, f := range m.fields {
		if f == field {
			return true
		}
	}
	return false
}

// contentMatches reports whether a sample value has the typical shape
// of a field's values, independent of any header text.
func contentMatches(field, sample string) bool {
	if strings.TrimSpace(sample) == "" {
		return false
	}
	switch field {
	case "serial_number":
		return IsSerialNumber(sample)
	case "sim_number":
		return IsPhoneNumber(sample) || serialDigitsRe.MatchString(strings.TrimSpace(sample))
	case "model":
		return IsModel(sample)
	case "brand":
		return IsBrand(sample)
	case "device_type":
		return IsDeviceType(sample)
	case "owner_name", "sim_owner":
		return IsOwnerName(sample)
	case "provider":
		return IsProvider(sample)
	case "department":
		return IsDepartment(sample)
	case "zone":
		return shortTokenRe.MatchString(strings.TrimSpace(sample))
	case "subscription_type":
		return IsSubscriptionType(sample)
	case "data_plan":
		return IsDataPlan(sample)
	case "date":
		return IsDate(sample)
	}
	return false
}

// inferDataType derives the value type the cleaner will convert to.
// Capacity fields are numbers; date-named fields or headers carrying
// date words (English or French) are dates; everything else is text.
func inferDataType(field, norm string) DataType {
	for _, kw := range []string{"ram", "disk", "memory", "storage"} {
		if strings.Contains(field, kw) {
			return TypeNumber
		}
	}
	for _, tok := range strings.Split(norm, "_") {
		if tok == "gb" || tok == "mb" || tok == "go" || tok == "mo" {
			return TypeNumber
		}
	}
	if strings.Contains(field, "date") {
		return TypeDate
	}
	for _, kw := range []string{"date", "jour", "annee", "year", "mois", "month"} {
		if strings.Contains(norm, kw) {
			return TypeDate
		}
	}
	return TypeText
}
