package mapper

// AssetKind selects which target schema an import maps onto.
type AssetKind string

const (
	KindIT      AssetKind = "it"
	KindTelecom AssetKind = "telecom"
)

// Valid reports whether the kind is one of the two supported schemas.
func (k AssetKind) Valid() bool {
	return k == KindIT || k == KindTelecom
}

// DataType of a mapped column's converted values.
type DataType string

const (
	TypeText   DataType = "text"
	TypeNumber DataType = "number"
	TypeDate   DataType = "date"
)

// RawRow is one input record keyed by the original header string.
// Cell values arrive as strings from the worksheet reader; missing
// cells are absent keys or empty strings.
type RawRow map[string]string

// CleanedRow is one normalized record keyed by target field name.
// Values are string for text/date fields and float64 for numbers.
type CleanedRow map[string]any

// ColumnMapping records where one source column lands in the target
// schema. MappedField echoes OriginalName when the column could not be
// mapped; such entries are report-only and never trusted by the cleaner.
type ColumnMapping struct {
	OriginalName string   `json:"originalName"`
	MappedField  string   `json:"mappedField"`
	Confidence   float64  `json:"confidence"`
	DataType     DataType `json:"dataType"`
}

// Mapped reports whether the column resolved to a real target field.
func (m ColumnMapping) Mapped() bool {
	return m.MappedField != m.OriginalName && m.MappedField != ""
}

// Thresholds are the tunable constants of the mapping cascade. The
// defaults come from hand-tuning against real inventory exports; they
// are configuration, not correctness requirements.
type Thresholds struct {
	// Synonym is the minimum synonym-similarity score to accept.
	Synonym float64
	// Fuzzy is the minimum direct header-to-field similarity to accept.
	Fuzzy float64
	// Trust is the minimum confidence the row cleaner requires before
	// it applies a mapping to data.
	Trust float64
	// HeaderBoost is added when the header itself resembles a canonical
	// abbreviation of the candidate field.
	HeaderBoost float64
	// ContentBoost is added when the sample value's shape matches the
	// candidate field.
	ContentBoost float64
}

// DefaultThresholds returns the tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Synonym:      0.25,
		Fuzzy:        0.40,
		Trust:        0.30,
		HeaderBoost:  0.20,
		ContentBoost: 0.30,
	}
}
