package models

//IndicatorSpec maps one relational indicator table to its field in the country document
type IndicatorSpec struct {
	Table       string //relational table and extract name
	ValueColumn string //value column in the relational table
	Field       string //field name in the country document
}

//GetIndicatorSpecs returns the static mapping rules driving the country document flattening
func GetIndicatorSpecs() []IndicatorSpec {
	return []IndicatorSpec{
		{Table: "idh", ValueColumn: "indice", Field: "idh"},
		{Table: "acesso_eletricidade", ValueColumn: "porcentagem", Field: "acesso_eletricidade"},
		{Table: "acesso_energia_renovavel", ValueColumn: "porcentagem", Field: "acesso_energia_renovavel"},
		{Table: "investimento_energia_limpa", ValueColumn: "valor_dolar", Field: "investimento_energia_limpa"},
		{Table: "acesso_combustivel_limpo", ValueColumn: "porcentagem", Field: "acesso_combustivel_limpo"},
		{Table: "energia_renovavel_per_capita", ValueColumn: "geracao_watts", Field: "geracao_energia_renovavel_per_capita"},
	}
}

//AddIndicator appends one year entry to the indicator series named by field.
//Unknown fields are ignored so that stale extracts cannot corrupt a document.
func (c *Country) AddIndicator(field string, ano int, valor float64) {
	switch field {
	case "idh":
		c.HDI = append(c.HDI, HDIPoint{Ano: ano, Indice: valor})
	case "acesso_eletricidade":
		c.ElectricityAccess = append(c.ElectricityAccess, PercentPoint{Ano: ano, Porcentagem: valor})
	case "acesso_energia_renovavel":
		c.RenewableAccess = append(c.RenewableAccess, PercentPoint{Ano: ano, Porcentagem: valor})
	case "investimento_energia_limpa":
		c.CleanEnergyInvestment = append(c.CleanEnergyInvestment, InvestmentPoint{Ano: ano, ValorDolar: valor})
	case "acesso_combustivel_limpo":
		c.CleanCookingAccess = append(c.CleanCookingAccess, PercentPoint{Ano: ano, Porcentagem: valor})
	case "geracao_energia_renovavel_per_capita":
		c.RenewableGenerationPerCapita = append(c.RenewableGenerationPerCapita, GenerationPoint{Ano: ano, GeracaoWatts: valor})
	}
}
