package processor

import (
	"path/filepath"
	"testing"

	"energyindicators-migration/utils"
)

func TestParseIntField(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  int
		expectErr bool
	}{
		{name: "plain integer", value: "42", expected: 42},
		{name: "float formatted", value: "3.0", expected: 3},
		{name: "truncates fraction", value: "3.7", expected: 3},
		{name: "empty", value: "", expectErr: true},
		{name: "not a number", value: "abc", expectErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parsed, err := parseIntField(test.value)
			if test.expectErr {
				if err == nil {
					t.Errorf("parseIntField(%q) expected an error", test.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseIntField(%q) unexpected error: %v", test.value, err)
			}
			if parsed != test.expected {
				t.Errorf("parseIntField(%q) = %d, expected %d", test.value, parsed, test.expected)
			}
		})
	}
}

func TestOptionalString(t *testing.T) {
	if optionalString("") != nil {
		t.Error("optionalString(\"\") expected nil")
	}
	value := optionalString("BRA")
	if value == nil || *value != "BRA" {
		t.Errorf("optionalString(\"BRA\") = %v", value)
	}
}

func TestOptionalInt(t *testing.T) {
	if optionalInt("") != nil {
		t.Error("optionalInt(\"\") expected nil")
	}
	if optionalInt("abc") != nil {
		t.Error("optionalInt(\"abc\") expected nil")
	}
	value := optionalInt("2.0")
	if value == nil || *value != 2 {
		t.Errorf("optionalInt(\"2.0\") = %v", value)
	}
}

func TestOptionalFloat(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{value: "", expected: 0.0},
		{value: "abc", expected: 0.0},
		{value: "700.5", expected: 700.5},
	}
	for _, test := range tests {
		if parsed := optionalFloat(test.value); parsed != test.expected {
			t.Errorf("optionalFloat(%q) = %v, expected %v", test.value, parsed, test.expected)
		}
	}
}

func TestNewColumnIndex(t *testing.T) {
	header := []string{"id_pais", "code", "nome"}

	columns, err := newColumnIndex("paises.csv", header, "id_pais", "code", "nome")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	record := []string{"1", "BRA", "Brazil"}
	if columns.value(record, "nome") != "Brazil" {
		t.Errorf("value(nome) = %q, expected Brazil", columns.value(record, "nome"))
	}
	if columns.value(record, "unknown") != "" {
		t.Error("value of an unknown column should be empty")
	}

	_, err = newColumnIndex("paises.csv", header, "id_pais", "ano")
	if err == nil {
		t.Error("expected an error for a missing required column")
	}
}

func TestReadCountryRows(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "paises.csv")
	//Column order differs from the writer on purpose, the reader resolves by name
	err := utils.WriteCSV(fileName, []string{"nome", "id_pais", "code"}, [][]string{
		{"Brazil", "1", "BRA"},
		{"No code", "2", ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	countries, err := readCountryRows(fileName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(countries) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(countries))
	}
	if countries[0].IdPais != 1 || countries[0].Nome != "Brazil" || countries[0].Code == nil || *countries[0].Code != "BRA" {
		t.Errorf("unexpected first row: %+v", countries[0])
	}
	if countries[1].Code != nil {
		t.Errorf("expected nil code for the second row, got %q", *countries[1].Code)
	}
}

func TestReadIndicatorRows(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "indicador_idh.csv")
	err := utils.WriteCSV(fileName, []string{"id_pais", "ano", "valor"}, [][]string{
		{"1", "2020", "0.758"},
		{"1", "2019.0", "0.761"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := readIndicatorRows(fileName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Ano != 2020 || rows[0].Valor != 0.758 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Ano != 2019 {
		t.Errorf("expected the float formatted year to parse to 2019, got %d", rows[1].Ano)
	}
}

func TestReadGeneratingUnitRows(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "unidades_geradoras.csv")
	header := []string{"id_unidade", "cod_equipamento", "nome_unidade", "num_unidade",
		"data_entrada_teste", "data_entrada_operacao", "data_desativacao",
		"potencia_efetiva", "combustivel", "id_usina"}
	err := utils.WriteCSV(fileName, header, [][]string{
		{"1", "UG-1", "Unidade 1", "1", "1984-03-17 00:00:00", "1984-05-05 00:00:00", "", "700", "HÍDRICA", "10"},
		{"2", "UG-2", "Unidade 2", "", "", "", "", "", "HÍDRICA", "10"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	units, err := readGeneratingUnitRows(fileName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(units))
	}

	first := units[0]
	if first.TestEntryDate == nil || *first.TestEntryDate != "1984-03-17" {
		t.Errorf("unexpected test entry date: %v", first.TestEntryDate)
	}
	if first.EffectivePowerMW != 700.0 {
		t.Errorf("EffectivePowerMW = %v, expected 700", first.EffectivePowerMW)
	}

	second := units[1]
	if second.UnitNumber != nil {
		t.Errorf("expected nil unit number, got %v", *second.UnitNumber)
	}
	if second.TestEntryDate != nil {
		t.Errorf("expected nil test entry date, got %v", *second.TestEntryDate)
	}
	if second.EffectivePowerMW != 0.0 {
		t.Errorf("expected 0.0 power for an empty value, got %v", second.EffectivePowerMW)
	}
}
