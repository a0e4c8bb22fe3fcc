package models

import "time"

//MigrationRun describes one execution of a migration stage
type MigrationRun struct {
	MigrationRunId int
	Stage          string
	Threads        int
}

//CountryRow is a row from the Pais table or the paises.csv extract
type CountryRow struct {
	IdPais int
	Code   *string
	Nome   string
}

//IndicatorRow is a year/value pair read from one of the indicator tables
type IndicatorRow struct {
	IdPais int
	Ano    int
	Valor  float64
}

//PlantRow is a joined row from the Usina table or the usinas.csv extract
type PlantRow struct {
	IdUsina       int
	PlantName     string
	CEG           *string
	PlantType     string
	OperationMode string
	OwnerAgent    *string
	StateName     *string
	StateCode     *string
	SubsystemName *string
	SubsystemCode *string
	CountryCode   *string
}

//GeneratingUnitRow is a row from the Unidade_Geradora table or the unidades_geradoras.csv extract.
//Dates are already reduced to date-only strings.
type GeneratingUnitRow struct {
	IdUnidade          int
	IdUsina            int
	EquipmentCode      string
	UnitName           string
	UnitNumber         *int
	TestEntryDate      *string
	OperationEntryDate *string
	DeactivationDate   *string
	EffectivePowerMW   float64
	Fuel               string
}

//Country is the document stored in the paises collection.
//Indicator arrays are omitted entirely when no data exists for the country.
type Country struct {
	Nome                         string            `bson:"nome" json:"nome"`
	CodPais                      string            `bson:"cod_pais" json:"cod_pais"`
	HDI                          []HDIPoint        `bson:"idh,omitempty" json:"idh,omitempty"`
	ElectricityAccess            []PercentPoint    `bson:"acesso_eletricidade,omitempty" json:"acesso_eletricidade,omitempty"`
	RenewableAccess              []PercentPoint    `bson:"acesso_energia_renovavel,omitempty" json:"acesso_energia_renovavel,omitempty"`
	CleanEnergyInvestment        []InvestmentPoint `bson:"investimento_energia_limpa,omitempty" json:"investimento_energia_limpa,omitempty"`
	CleanCookingAccess           []PercentPoint    `bson:"acesso_combustivel_limpo,omitempty" json:"acesso_combustivel_limpo,omitempty"`
	RenewableGenerationPerCapita []GenerationPoint `bson:"geracao_energia_renovavel_per_capita,omitempty" json:"geracao_energia_renovavel_per_capita,omitempty"`
}

//HDIPoint is one year of the human development index series
type HDIPoint struct {
	Ano    int     `bson:"ano" json:"ano"`
	Indice float64 `bson:"indice" json:"indice"`
}

//PercentPoint is one year of a percentage-valued indicator series
type PercentPoint struct {
	Ano         int     `bson:"ano" json:"ano"`
	Porcentagem float64 `bson:"porcentagem" json:"porcentagem"`
}

//InvestmentPoint is one year of the clean energy investment series (USD)
type InvestmentPoint struct {
	Ano        int     `bson:"ano" json:"ano"`
	ValorDolar float64 `bson:"valor_dolar" json:"valor_dolar"`
}

//GenerationPoint is one year of the renewable generation per capita series (watts)
type GenerationPoint struct {
	Ano          int     `bson:"ano" json:"ano"`
	GeracaoWatts float64 `bson:"geracao_watts" json:"geracao_watts"`
}

//PowerPlant is the document stored in the usinas collection
type PowerPlant struct {
	PlantName       string           `bson:"nome_usina" json:"nome_usina"`
	CEG             string           `bson:"ceg" json:"ceg"`
	CountryCode     string           `bson:"cod_pais" json:"cod_pais"`
	PlantType       string           `bson:"tipo_usina" json:"tipo_usina"`
	OperationMode   string           `bson:"modalidade_operacao" json:"modalidade_operacao"`
	OwnerAgent      string           `bson:"agente_proprietario" json:"agente_proprietario"`
	State           State            `bson:"estado" json:"estado"`
	Subsystem       Subsystem        `bson:"subsistema" json:"subsistema"`
	GeneratingUnits []GeneratingUnit `bson:"unidades_geradoras" json:"unidades_geradoras"`
}

//State is the state object nested in a power plant document
type State struct {
	Nome      string `bson:"nome" json:"nome"`
	CodEstado string `bson:"cod_estado" json:"cod_estado"`
}

//Subsystem is the subsystem object nested in a power plant document
type Subsystem struct {
	Nome          string `bson:"nome" json:"nome"`
	CodSubsistema string `bson:"cod_subsistema" json:"cod_subsistema"`
}

//GeneratingUnit is one generating unit record nested in a power plant document.
//Nullable fields stay null in the document, matching the relational source.
type GeneratingUnit struct {
	EquipmentCode      string  `bson:"cod_equipamento" json:"cod_equipamento"`
	UnitName           string  `bson:"nome_unidade" json:"nome_unidade"`
	UnitNumber         *int    `bson:"num_unidade" json:"num_unidade"`
	EffectivePowerMW   float64 `bson:"potencia_efetiva_mw" json:"potencia_efetiva_mw"`
	TestEntryDate      *string `bson:"data_entrada_teste" json:"data_entrada_teste"`
	OperationEntryDate *string `bson:"data_entrada_operacao" json:"data_entrada_operacao"`
	DeactivationDate   *string `bson:"data_desativacao" json:"data_desativacao"`
	Fuel               string  `bson:"combustivel" json:"combustivel"`
}

//ProgressEntry is the per-document progress record stored in the migration_progress collection
type ProgressEntry struct {
	MigrationRunId int       `bson:"migration_run_id" json:"migration_run_id"`
	Stage          string    `bson:"stage" json:"stage"`
	Collection     string    `bson:"collection" json:"collection"`
	DocumentKey    string    `bson:"document_key" json:"document_key"`
	DataFound      bool      `bson:"data_found" json:"data_found"`
	Details        string    `bson:"details" json:"details"`
	RecordedAt     time.Time `bson:"recorded_at" json:"recorded_at"`
}
