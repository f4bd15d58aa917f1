package mapper

import "regexp"

// Target schemas. Field order matters: the content-based fallback walks
// critical fields in declaration order.
var (
	itFields = []string{
		"device_type", "brand", "model", "serial_number", "owner_name",
		"department", "zone", "status", "ram_gb", "disk_gb", "date",
	}
	telecomFields = []string{
		"provider", "sim_number", "sim_owner", "subscription_type",
		"data_plan", "department", "zone", "status", "date",
	}
)

// TargetFields returns the ordered field list for an asset kind.
func TargetFields(kind AssetKind) []string {
	if kind == KindTelecom {
		return telecomFields
	}
	return itFields
}

// synonyms maps each target field to its known alias spellings,
// French and English mixed. Static configuration, matched after
// normalization so accents and punctuation are irrelevant.
var synonyms = map[string][]string{
	"device_type": {
		"type", "device type", "type d'équipement", "type equipement",
		"type de matériel", "catégorie", "category", "equipment", "device",
	},
	"brand": {
		"marque", "fabricant", "manufacturer", "make", "constructeur",
	},
	"model": {
		"modèle", "modele", "model", "référence", "reference", "ref",
	},
	"serial_number": {
		"serial", "serial number", "serial no", "sn", "s/n",
		"numéro de série", "numero de serie", "n° série", "no serie",
		"num série", "série",
	},
	"owner_name": {
		"owner", "utilisateur", "user", "propriétaire", "affecté à",
		"assigned to", "nom", "employé", "employee", "nom utilisateur",
	},
	"department": {
		"department", "département", "departement", "service",
		"direction", "dept", "division",
	},
	"zone": {
		"zone", "site", "location", "emplacement", "localisation",
		"bureau", "office",
	},
	"status": {
		"status", "statut", "état", "etat", "state",
	},
	"ram_gb": {
		"ram", "mémoire", "memoire", "memory", "ram gb", "ram go",
	},
	"disk_gb": {
		"disk", "disque", "storage", "stockage", "hdd", "ssd",
		"disque dur", "disk gb", "disque go",
	},
	"date": {
		"date", "date d'achat", "date achat", "purchase date",
		"date acquisition", "acquired", "acheté le",
	},
	"provider": {
		"provider", "opérateur", "operateur", "operator", "fournisseur",
		"carrier", "réseau",
	},
	"sim_number": {
		"sim", "sim number", "numéro sim", "numero sim", "msisdn",
		"numéro de téléphone", "phone number", "téléphone", "telephone",
		"ligne", "gsm",
	},
	"sim_owner": {
		"owner", "utilisateur", "titulaire", "propriétaire", "nom",
		"assigned to", "user", "employé",
	},
	"subscription_type": {
		"subscription", "abonnement", "type d'abonnement", "forfait",
		"plan", "contrat", "type contrat",
	},
	"data_plan": {
		"data", "data plan", "forfait data", "volume data", "internet",
		"go data", "quota",
	},
}

// fieldPatterns are curated regexes matched against the normalized
// header. A hit is a strong signal (0.9) short of an exact field match.
var fieldPatterns = map[string]*regexp.Regexp{
	"serial_number":     regexp.MustCompile(`^(serial|serial_number|sn|s_n|id)$`),
	"sim_number":        regexp.MustCompile(`^(sim|sim_number|msisdn|gsm)$`),
	"model":             regexp.MustCompile(`^(model|modele|mod|ref|reference)$`),
	"brand":             regexp.MustCompile(`^(brand|marque|make|fabricant)$`),
	"device_type":       regexp.MustCompile(`^(type|device|categorie|category)$`),
	"owner_name":        regexp.MustCompile(`^(owner|user|utilisateur|nom)$`),
	"sim_owner":         regexp.MustCompile(`^(owner|user|utilisateur|titulaire)$`),
	"provider":          regexp.MustCompile(`^(provider|operateur|operator|carrier)$`),
	"subscription_type": regexp.MustCompile(`^(abonnement|forfait|subscription)$`),
	"department":        regexp.MustCompile(`^(dept|departement|department|service)$`),
	"zone":              regexp.MustCompile(`^(zone|site|location)$`),
	"status":            regexp.MustCompile(`^(status|statut|etat|state)$`),
	"date":              regexp.MustCompile(`^(date|date_achat|purchase_date)$`),
}

// frenchStem is one entry of the language-specific fallback table.
// A stem resolves to a different field per schema when needed
// ("nom" is the device owner for IT but the SIM holder for telecom).
type frenchStem struct {
	stem    string
	it      string
	telecom string
}

// frenchStems is ordered: earlier entries win on substring containment.
var frenchStems = []frenchStem{
	{stem: "marque", it: "brand", telecom: ""},
	{stem: "fabricant", it: "brand", telecom: ""},
	{stem: "modele", it: "model", telecom: ""},
	{stem: "serie", it: "serial_number", telecom: "sim_number"},
	{stem: "numero", it: "serial_number", telecom: "sim_number"},
	{stem: "operateur", it: "", telecom: "provider"},
	{stem: "abonnement", it: "", telecom: "subscription_type"},
	{stem: "forfait", it: "", telecom: "subscription_type"},
	{stem: "utilisateur", it: "owner_name", telecom: "sim_owner"},
	{stem: "titulaire", it: "owner_name", telecom: "sim_owner"},
	{stem: "nom", it: "owner_name", telecom: "sim_owner"},
	{stem: "type", it: "device_type", telecom: "subscription_type"},
	{stem: "service", it: "department", telecom: "department"},
	{stem: "site", it: "zone", telecom: "zone"},
	{stem: "etat", it: "status", telecom: "status"},
	{stem: "achat", it: "date", telecom: "date"},
	{stem: "date", it: "date", telecom: "date"},
}

func (f frenchStem) fieldFor(kind AssetKind) string {
	if kind == KindTelecom {
		return f.telecom
	}
	return f.it
}

// excludedColumns are administrative columns (row counters, quantities,
// free-form notes) skipped before any mapping strategy runs.
var excludedColumns = map[string]bool{
	"nb":           true,
	"nbr":          true,
	"nombre":       true,
	"qte":          true,
	"qty":          true,
	"quantite":     true,
	"quantity":     true,
	"count":        true,
	"total":        true,
	"note":         true,
	"notes":        true,
	"remarque":     true,
	"remarques":    true,
	"commentaire":  true,
	"commentaires": true,
	"comment":      true,
	"comments":     true,
	"observation":  true,
	"observations": true,
}

// adminHeaderRe flags header tokens that carry bookkeeping rather than
// asset data; such columns are never force-assigned by the content
// fallback.
var adminHeaderRe = regexp.MustCompile(`(^|_)(id|no|num|nb|qte|qty|count|total|index|ligne|row)($|_)|note|comment|remarque|observ`)

// criticalFields lists, per schema, the fields worth salvaging from an
// unrecognized but meaningful column, in priority order.
var criticalFields = map[AssetKind][]string{
	KindIT:      {"serial_number", "model", "brand", "zone"},
	KindTelecom: {"sim_number", "sim_owner", "provider", "zone", "department", "subscription_type", "data_plan"},
}

// fallbackConfidence is the confidence granted when a column's content
// shape matches a still-unused critical field.
var fallbackConfidence = map[string]float64{
	"serial_number":     0.9,
	"sim_number":        0.9,
	"model":             0.8,
	"brand":             0.8,
	"provider":          0.75,
	"sim_owner":         0.7,
	"zone":              0.7,
	"department":        0.7,
	"subscription_type": 0.7,
	"data_plan":         0.7,
}

// headerHints are canonical abbreviation fragments per field, used by
// the synonym-matching context boost.
var headerHints = map[string][]string{
	"serial_number":     {"serial", "serie", "sn"},
	"sim_number":        {"sim", "msisdn", "tel", "gsm"},
	"model":             {"model", "modele", "ref"},
	"brand":             {"marque", "brand", "fab"},
	"device_type":       {"type", "categ"},
	"owner_name":        {"nom", "owner", "user", "util"},
	"sim_owner":         {"nom", "owner", "user", "titulaire"},
	"provider":          {"operat", "provider", "fourni"},
	"department":        {"dep", "service"},
	"zone":              {"zone", "site", "lieu"},
	"status":            {"stat", "etat"},
	"ram_gb":            {"ram", "mem"},
	"disk_gb":           {"disk", "disque", "sto"},
	"date":              {"date", "achat"},
	"subscription_type": {"abo", "forfait"},
	"data_plan":         {"data", "quota"},
}
