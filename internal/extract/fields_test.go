package extract

import "testing"

func TestSplitFieldsParen(t *testing.T) {
	f, ok := SplitFields("John Smith (MIT)")
	if !ok {
		t.Fatal("expected a valid split")
	}
	if f.Name != "John Smith" {
		t.Errorf("Name = %q, want John Smith", f.Name)
	}
	if f.Affiliation != "MIT" {
		t.Errorf("Affiliation = %q, want MIT", f.Affiliation)
	}
}

func TestSplitFieldsParenRole(t *testing.T) {
	f, ok := SplitFields("Jane Doe (co-chair)")
	if !ok {
		t.Fatal("expected a valid split")
	}
	if f.Name != "Jane Doe" {
		t.Errorf("Name = %q, want Jane Doe", f.Name)
	}
	if f.Affiliation != "" {
		t.Errorf("Affiliation = %q, want empty", f.Affiliation)
	}
	if f.RoleText != "co-chair" {
		t.Errorf("RoleText = %q, want co-chair", f.RoleText)
	}
}

func TestSplitFieldsDash(t *testing.T) {
	f, ok := SplitFields("Alice Chen – Program Chair")
	if !ok {
		t.Fatal("expected a valid split")
	}
	if f.Name != "Alice Chen" {
		t.Errorf("Name = %q, want Alice Chen", f.Name)
	}
	if f.RoleText != "Program Chair" {
		t.Errorf("RoleText = %q, want Program Chair", f.RoleText)
	}
	if f.Affiliation != "" {
		t.Errorf("Affiliation = %q, want empty", f.Affiliation)
	}
}

func TestSplitFieldsHyphenatedNameNotSplit(t *testing.T) {
	f, ok := SplitFields("Marie Curie-Sklodowska, Sorbonne")
	if !ok {
		t.Fatal("expected a valid split")
	}
	if f.Name != "Marie Curie-Sklodowska" {
		t.Errorf("Name = %q, hyphen inside a name must not split", f.Name)
	}
	if f.Affiliation != "Sorbonne" {
		t.Errorf("Affiliation = %q, want Sorbonne", f.Affiliation)
	}
}

func TestSplitFieldsComma(t *testing.T) {
	f, ok := SplitFields("Bob Lee, Program Committee")
	if !ok {
		t.Fatal("expected a valid split")
	}
	if f.Name != "Bob Lee" {
		t.Errorf("Name = %q, want Bob Lee", f.Name)
	}
	if f.RoleText != "Program Committee" {
		t.Errorf("RoleText = %q, want Program Committee", f.RoleText)
	}
}

func TestSplitFieldsCommaAffiliation(t *testing.T) {
	f, ok := SplitFields("Bob Lee, University of Waterloo")
	if !ok {
		t.Fatal("expected a valid split")
	}
	if f.Affiliation != "University of Waterloo" {
		t.Errorf("Affiliation = %q, want University of Waterloo", f.Affiliation)
	}
}

func TestSplitFieldsSite(t *testing.T) {
	f, ok := SplitFields("Anne Broadbent University of Ottawa Site PC primary chair")
	if !ok {
		t.Fatal("expected a valid split")
	}
	if f.Name != "Anne Broadbent" {
		t.Errorf("Name = %q, want Anne Broadbent", f.Name)
	}
	if f.Affiliation != "University of Ottawa" {
		t.Errorf("Affiliation = %q, want University of Ottawa", f.Affiliation)
	}
	if f.RoleText != "PC primary chair" {
		t.Errorf("RoleText = %q, want PC primary chair", f.RoleText)
	}
}

func TestSplitFieldsSiteGeoPrefix(t *testing.T) {
	f, ok := SplitFields("Jane Doe New York University Site member")
	if !ok {
		t.Fatal("expected a valid split")
	}
	if f.Name != "Jane Doe" {
		t.Errorf("Name = %q, want Jane Doe", f.Name)
	}
	if f.Affiliation != "New York University" {
		t.Errorf("Affiliation = %q, want New York University", f.Affiliation)
	}
}

func TestSplitFieldsBareName(t *testing.T) {
	f, ok := SplitFields("Jane Doe")
	if !ok {
		t.Fatal("expected a valid split")
	}
	if f.Name != "Jane Doe" || f.Affiliation != "" {
		t.Errorf("bare name split = %+v", f)
	}
}

func TestSplitFieldsRejectsBadNames(t *testing.T) {
	bad := []string{
		"BOB LEE, MIT",
		"bob lee, mit",
		"Ab",
	}
	for _, text := range bad {
		if _, ok := SplitFields(text); ok {
			t.Errorf("SplitFields(%q) accepted, want rejection", text)
		}
	}
}
