package models

import "testing"

func TestGetIndicatorSpecs(t *testing.T) {
	specs := GetIndicatorSpecs()
	if len(specs) != 6 {
		t.Fatalf("expected 6 indicator specs, got %d", len(specs))
	}

	fields := map[string]bool{}
	for _, spec := range specs {
		if spec.Table == "" || spec.ValueColumn == "" || spec.Field == "" {
			t.Errorf("incomplete spec: %+v", spec)
		}
		if fields[spec.Field] {
			t.Errorf("duplicate document field: %s", spec.Field)
		}
		fields[spec.Field] = true
	}

	//The per capita series is the only one whose table and document field differ
	found := false
	for _, spec := range specs {
		if spec.Table == "energia_renovavel_per_capita" {
			found = true
			if spec.Field != "geracao_energia_renovavel_per_capita" {
				t.Errorf("unexpected field for per capita series: %s", spec.Field)
			}
		}
	}
	if !found {
		t.Error("missing the energia_renovavel_per_capita spec")
	}
}

func TestAddIndicator(t *testing.T) {
	country := Country{Nome: "Brazil", CodPais: "BRA"}

	country.AddIndicator("idh", 2020, 0.758)
	country.AddIndicator("acesso_eletricidade", 2020, 99.8)
	country.AddIndicator("acesso_energia_renovavel", 2020, 46.2)
	country.AddIndicator("investimento_energia_limpa", 2020, 1234567.89)
	country.AddIndicator("acesso_combustivel_limpo", 2020, 96.0)
	country.AddIndicator("geracao_energia_renovavel_per_capita", 2020, 2500.0)

	if len(country.HDI) != 1 || country.HDI[0].Indice != 0.758 {
		t.Errorf("unexpected HDI series: %+v", country.HDI)
	}
	if len(country.ElectricityAccess) != 1 || country.ElectricityAccess[0].Porcentagem != 99.8 {
		t.Errorf("unexpected electricity access series: %+v", country.ElectricityAccess)
	}
	if len(country.RenewableAccess) != 1 {
		t.Errorf("unexpected renewable access series: %+v", country.RenewableAccess)
	}
	if len(country.CleanEnergyInvestment) != 1 || country.CleanEnergyInvestment[0].ValorDolar != 1234567.89 {
		t.Errorf("unexpected investment series: %+v", country.CleanEnergyInvestment)
	}
	if len(country.CleanCookingAccess) != 1 {
		t.Errorf("unexpected clean cooking series: %+v", country.CleanCookingAccess)
	}
	if len(country.RenewableGenerationPerCapita) != 1 || country.RenewableGenerationPerCapita[0].GeracaoWatts != 2500.0 {
		t.Errorf("unexpected per capita series: %+v", country.RenewableGenerationPerCapita)
	}
}

func TestAddIndicatorUnknownField(t *testing.T) {
	country := Country{Nome: "Brazil", CodPais: "BRA"}
	country.AddIndicator("unknown_series", 2020, 1.0)

	if len(country.HDI) != 0 || len(country.ElectricityAccess) != 0 || len(country.RenewableAccess) != 0 ||
		len(country.CleanEnergyInvestment) != 0 || len(country.CleanCookingAccess) != 0 ||
		len(country.RenewableGenerationPerCapita) != 0 {
		t.Error("an unknown field must not modify any series")
	}
}
