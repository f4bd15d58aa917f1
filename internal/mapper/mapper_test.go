package mapper

import "testing"

func TestMapHeaders_TypeOverride(t *testing.T) {
	t.Parallel()

	got := MapHeaders([]string{"Type"}, RawRow{"Type": "whatever"}, KindIT)
	if len(got) != 1 || got[0].MappedField != "device_type" || got[0].Confidence != 1.0 {
		t.Fatalf("IT Type mapping want=device_type@1.0 got=%+v", got)
	}

	got = MapHeaders([]string{"Type"}, RawRow{}, KindTelecom)
	if len(got) != 1 || got[0].MappedField != "subscription_type" || got[0].Confidence != 1.0 {
		t.Fatalf("telecom Type mapping want=subscription_type@1.0 got=%+v", got)
	}
}

func TestMapHeaders_ExactFieldKey(t *testing.T) {
	t.Parallel()

	got := MapHeaders([]string{"brand", "serial_number", "RAM (GB)"}, RawRow{}, KindIT)
	if len(got) != 3 {
		t.Fatalf("want 3 mappings got %d: %+v", len(got), got)
	}
	for i, want := range []string{"brand", "serial_number", "ram_gb"} {
		if got[i].MappedField != want || got[i].Confidence != 1.0 {
			t.Fatalf("mapping %d want=%s@1.0 got=%+v", i, want, got[i])
		}
	}
	if got[2].DataType != TypeNumber {
		t.Fatalf("ram_gb data type want=number got=%v", got[2].DataType)
	}
}

func TestMapHeaders_SerialHeader(t *testing.T) {
	t.Parallel()

	// Without a sample the synonym table resolves it, with a sample the
	// content pattern does; both must clear 0.8.
	for _, sample := range []RawRow{{}, {"N° Série": "SN-123456789"}} {
		got := MapHeaders([]string{"N° Série"}, sample, KindIT)
		if len(got) != 1 || got[0].MappedField != "serial_number" {
			t.Fatalf("N° Série mapping got=%+v", got)
		}
		if got[0].Confidence < 0.8 {
			t.Fatalf("N° Série confidence want>=0.8 got=%v", got[0].Confidence)
		}
	}
}

func TestMapHeaders_PatternMarque(t *testing.T) {
	t.Parallel()

	got := MapHeaders([]string{"Marque"}, RawRow{"Marque": "Dell"}, KindIT)
	if len(got) != 1 || got[0].MappedField != "brand" || got[0].Confidence != 0.9 {
		t.Fatalf("Marque mapping want=brand@0.9 got=%+v", got)
	}
}

func TestMapHeaders_DateHeader(t *testing.T) {
	t.Parallel()

	got := MapHeaders([]string{"Date d'achat"}, RawRow{}, KindIT)
	if len(got) != 1 || got[0].MappedField != "date" {
		t.Fatalf("Date d'achat mapping got=%+v", got)
	}
	if got[0].DataType != TypeDate {
		t.Fatalf("Date d'achat data type want=date got=%v", got[0].DataType)
	}
}

func TestMapHeaders_ExcludedColumns(t *testing.T) {
	t.Parallel()

	headers := []string{"Nb", "Notes", "Qté", "Type"}
	sample := RawRow{"Nb": "1", "Notes": "broken screen", "Qté": "3", "Type": "Laptop"}

	got := MapHeaders(headers, sample, KindIT)
	if len(got) != 1 || got[0].OriginalName != "Type" {
		t.Fatalf("administrative columns must be skipped, got=%+v", got)
	}
}

func TestMapHeaders_ContentFallback(t *testing.T) {
	t.Parallel()

	// Header says nothing, content says nothing specific: the column is
	// handed to the first unclaimed critical field at minimum confidence.
	got := MapHeaders([]string{"Qqq"}, RawRow{"Qqq": "xyz 123"}, KindTelecom)
	if len(got) != 1 || got[0].MappedField != "sim_number" || got[0].Confidence != 0.3 {
		t.Fatalf("content fallback want=sim_number@0.3 got=%+v", got)
	}
}

func TestMapHeaders_EchoUnmatched(t *testing.T) {
	t.Parallel()

	headers := []string{"serial_number", "model", "brand", "zone", "Qqqq"}
	sample := RawRow{"Qqqq": "hello world!"}

	got := MapHeaders(headers, sample, KindIT)
	if len(got) != 5 {
		t.Fatalf("want 5 mappings got %d: %+v", len(got), got)
	}
	last := got[4]
	if last.MappedField != "Qqqq" || last.Confidence != 0 {
		t.Fatalf("unmatched column must echo its header at zero confidence, got=%+v", last)
	}
	if last.Mapped() {
		t.Fatal("echoed mapping must not count as mapped")
	}
}

func TestMatchContent_ShapeSalvage(t *testing.T) {
	t.Parallel()

	m := NewHeaderMapper(KindIT, DefaultThresholds())
	field, conf, ok := m.matchContent("zzz", "SN-123456789")
	if !ok || field != "serial_number" || conf != 0.9 {
		t.Fatalf("shape salvage want=serial_number@0.9 got=(%s,%v,%v)", field, conf, ok)
	}

	m.used["serial_number"] = true
	field, conf, ok = m.matchContent("zzz", "Dell Latitude 5520")
	if !ok || field != "model" || conf != 0.8 {
		t.Fatalf("shape salvage want=model@0.8 got=(%s,%v,%v)", field, conf, ok)
	}
}

func TestMatchFrench(t *testing.T) {
	t.Parallel()

	it := NewHeaderMapper(KindIT, DefaultThresholds())
	tel := NewHeaderMapper(KindTelecom, DefaultThresholds())

	cases := []struct {
		m    *HeaderMapper
		norm string
		want string
	}{
		{it, "num_serie", "serial_number"},
		{tel, "num_serie", "sim_number"},
		{it, "modele_pc", "model"},
		{it, "fabrique_par", "brand"},
		{tel, "forfait_mensuel", "subscription_type"},
		{tel, "operateur_mobile", "provider"},
	}
	for _, c := range cases {
		field, conf, ok := c.m.matchFrench(c.norm, "")
		if !ok || field != c.want || conf != 0.8 {
			t.Fatalf("matchFrench(%q) want=%s@0.8 got=(%s,%v,%v)", c.norm, c.want, field, conf, ok)
		}
	}

	if _, _, ok := it.matchFrench("operateur_mobile", ""); ok {
		t.Fatal("operateur must not resolve for the IT schema")
	}
}

func TestContextBoost(t *testing.T) {
	t.Parallel()

	m := NewHeaderMapper(KindIT, DefaultThresholds())

	// Header hint alone.
	if got := m.contextBoost("brand", "marque_pc", "1234"); got != 0.2 {
		t.Fatalf("hint-only boost want=0.2 got=%v", got)
	}
	// Content shape alone.
	if got := m.contextBoost("brand", "xyz", "Dell"); got != 0.3 {
		t.Fatalf("content-only boost want=0.3 got=%v", got)
	}
	// Both: capped at the content boost, never additive past it.
	if got := m.contextBoost("brand", "marque_pc", "Dell"); got != 0.3 {
		t.Fatalf("combined boost want=0.3 got=%v", got)
	}
}
