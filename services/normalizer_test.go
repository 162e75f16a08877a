package services

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(DefaultBrand)

	tests := []struct {
		in   string
		want string
	}{
		{"Leite Condensado 395g", "leite condensado"},
		{"Leite Condensado Lata", "leite condensado"},
		{"Leite Condensado Camponesa Lata 395g", "leite condensado"},
		{"Requeijão Cremoso 200g", "requeijao cremoso"},
		{"Leite UHT Integral 1 L", "leite uht integral"},
		{"Creme de Leite 17% Gordura", "creme de leite gordura"},
		{"Doce de Leite (Tradicional) - 400g", "doce de leite"},
		{"Manteiga com Sal Pote 200 g", "manteiga com sal"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := n.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := NewNormalizer(DefaultBrand)

	inputs := []string{
		"Leite Condensado Camponesa Lata 395g",
		"Queijo Minas Frescal Especial 500g",
		"Requeijão Cremoso Copo 200g",
		"Leite em Pó Integral Pacote 400g",
		"Creme de Leite 17% Gordura TetraPack",
	}

	for _, in := range inputs {
		once := n.Normalize(in)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
		if again := n.Normalize(in); again != once {
			t.Errorf("Normalize(%q) not deterministic: %q vs %q", in, once, again)
		}
	}
}

// A packaging word glued to a count ("Cx12") survives the first pass because
// the word boundary only appears once the digits are gone.
func TestNormalizeGluedPackagingNeedsSecondPass(t *testing.T) {
	n := NewNormalizer(DefaultBrand)

	once := n.Normalize("Leite UHT Integral Cx12")
	if once != "leite uht integral cx" {
		t.Fatalf("first pass = %q; want %q", once, "leite uht integral cx")
	}
	if twice := n.Normalize(once); twice != "leite uht integral" {
		t.Errorf("second pass = %q; want %q", twice, "leite uht integral")
	}
}

func TestNormalizeWithoutBrand(t *testing.T) {
	n := NewNormalizer("")
	if got, want := n.Normalize("Leite Condensado Camponesa"), "leite condensado camponesa"; got != want {
		t.Errorf("Normalize = %q; want %q", got, want)
	}
}

func TestFoldAccents(t *testing.T) {
	tests := map[string]string{
		"requeijão": "requeijao",
		"pó":        "po",
		"açúcar":    "acucar",
		"plain":     "plain",
	}
	for in, want := range tests {
		if got := foldAccents(in); got != want {
			t.Errorf("foldAccents(%q) = %q; want %q", in, got, want)
		}
	}
}
