package mapper

import "testing"

func TestNormalize_Accents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"N° Série", "n_serie"},
		{"Modèle", "modele"},
		{"Numéro de téléphone", "numero_de_telephone"},
		{"Ça dépend", "ca_depend"},
		{"  Type  ", "type"},
		{"RAM (GB)", "ram_gb"},
		{"Date d'achat", "date_d_achat"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) want=%q got=%q", c.in, c.want, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"N° Série", "Type d'équipement", "owner name", "nb", "Übung Straße", "123-456"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
