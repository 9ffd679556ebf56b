package extract

import "testing"

func TestLocalizations(t *testing.T) {
	src := `String title = bundle.getString("page.title");
String err = messages.getMessage("error.notfound");
Locale br = Locale.forLanguageTag("pt-BR");
Locale l = parse("pt_BR");
int count_b = 0;
`
	got := Localizations(src)
	want := []Localization{
		{Kind: "translation_key", Value: "page.title", Line: 1},
		{Kind: "translation_key", Value: "error.notfound", Line: 2},
		{Kind: "translation_key", Value: "pt-BR", Line: 3},
		{Kind: "locale", Value: "pt_BR", Locale: "pt_BR", Line: 4},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d localizations, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("localization %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLocaleFromFilename(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		ok     bool
	}{
		{"messages_en_US.properties", "en_US", true},
		{"messages_de.properties", "de", true},
		{"labels_pt_BR.properties", "pt_BR", true},
		{"messages.properties", "", false},
		{"application.properties", "", false},
		{"messages_en_US.yml", "", false},
	}
	for _, tt := range tests {
		locale, ok := LocaleFromFilename(tt.name)
		if locale != tt.locale || ok != tt.ok {
			t.Errorf("LocaleFromFilename(%q) = %q, %v; want %q, %v", tt.name, locale, ok, tt.locale, tt.ok)
		}
	}
}
