package db

import "testing"

func TestNormalizeItemName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tomate", "tomate"},
		{"  Tomate  ", "tomate"},
		{"ARROZ", "arroz"},
		{"Pimiento Rojo", "pimiento rojo"},
		{"  aceite de oliva\t", "aceite de oliva"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeItemName(tt.in); got != tt.want {
			t.Errorf("NormalizeItemName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
