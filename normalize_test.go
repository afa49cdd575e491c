package brfunds

import "testing"

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		in   string
		mode NameMode
		want string
	}{
		{"Ação Fácil", PathMode, "acao-facil"},
		{"Ação Fácil", SearchMode, "acao facil"},
		{"12.345.678/0001-90", PathMode, "12345678000190"},
		{"12.345.678/0001-90", SearchMode, "12345678000190"},
		{"12345678000190", PathMode, "12345678000190"},
		{"Verde  AM - Ações", PathMode, "verde-am-acoes"},
		{" Alaska Black ", PathMode, "alaska-black"},
		{"Itaú+Índice", SearchMode, "itau indice"},
		{"Crédito Privado", SearchMode, "credito privado"},
		{"São João", PathMode, "sao-joao"},
		{"BTG Pactual 2030 2040", PathMode, "btg-pactual-2030-2040"},
		{"Fundo 3 5", PathMode, "fundo-3-5"},
		{"12 345 678 0001 90", PathMode, "12345678000190"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := NormalizeName(tc.in, tc.mode); got != tc.want {
				t.Errorf("NormalizeName(%q, %v) = %q, want %q", tc.in, tc.mode, got, tc.want)
			}
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	names := []string{
		"Ação Fácil",
		"12.345.678/0001-90",
		"Verde  AM - Ações",
		"Itaú+Índice",
		"FUNDO DE INVESTIMENTO EM AÇÕES 3-5",
		"a - - b",
		"BTG Pactual 2030 2040",
		"12 345 678/0001-90",
	}
	for _, mode := range []NameMode{PathMode, SearchMode} {
		for _, name := range names {
			once := NormalizeName(name, mode)
			twice := NormalizeName(once, mode)
			if once != twice {
				t.Errorf("NormalizeName(%q, %v) is not idempotent: %q then %q", name, mode, once, twice)
			}
		}
	}
}

func TestSimplifyName(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"Alaska Black Fundo de Investimento em Ações", "ALASKA BLACK"},
		{"VERDE AM FUNDO DE INVESTIMENTO", "VERDE AM"},
		{"Dynamo Cougar", "DYNAMO COUGAR"},
		{"Fundo Exclusivo", ""},
	}
	for _, tc := range testCases {
		if got := SimplifyName(tc.in); got != tc.want {
			t.Errorf("SimplifyName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
