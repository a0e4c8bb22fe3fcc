package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"energyindicators-migration/config"
	"energyindicators-migration/models"
	"energyindicators-migration/store"
	"energyindicators-migration/utils"
)

//LoadFromCSV reads the CSV extracts and upserts the documents they describe
func LoadFromCSV(ctx context.Context, st store.Store, csvLocation string, run models.MigrationRun) error {

	err := loadCountries(ctx, st, csvLocation, run)
	if err != nil {
		return err
	}
	return loadPlants(ctx, st, csvLocation, run)
}

func loadCountries(ctx context.Context, st store.Store, csvLocation string, run models.MigrationRun) error {

	countries, err := readCountryRows(filepath.Join(csvLocation, config.GetCountriesCSVName()))
	if err != nil {
		return err
	}
	log.Info("Found " + strconv.Itoa(len(countries)) + " countries to load")

	indicatorsByCountry := map[int]map[string][]models.IndicatorRow{}
	for _, spec := range models.GetIndicatorSpecs() {
		fileName := filepath.Join(csvLocation, config.GetIndicatorCSVName(spec.Table))
		rows, err := readIndicatorRows(fileName)
		if err != nil {
			return err
		}
		GroupIndicatorRows(spec.Field, rows, indicatorsByCountry)
	}

	return UpsertCountries(ctx, st, countries, indicatorsByCountry, run)
}

func loadPlants(ctx context.Context, st store.Store, csvLocation string, run models.MigrationRun) error {

	plants, err := readPlantRows(filepath.Join(csvLocation, config.GetPlantsCSVName()))
	if err != nil {
		return err
	}

	units, err := readGeneratingUnitRows(filepath.Join(csvLocation, config.GetGeneratingUnitsCSVName()))
	if err != nil {
		return err
	}
	unitsByPlant := GroupGeneratingUnitRows(units)

	lookup := func(plantId int) ([]models.GeneratingUnitRow, error) {
		return unitsByPlant[plantId], nil
	}
	return UpsertPlants(ctx, st, plants, lookup, run)
}

func readCountryRows(fileName string) ([]models.CountryRow, error) {

	header, records, err := utils.ReadCSV(fileName)
	if err != nil {
		return nil, err
	}
	columns, err := newColumnIndex(fileName, header, "id_pais", "code", "nome")
	if err != nil {
		return nil, err
	}

	var countries []models.CountryRow
	for _, record := range records {
		idPais, err := parseIntField(columns.value(record, "id_pais"))
		if err != nil {
			log.Error(err)
			return nil, err
		}
		countries = append(countries, models.CountryRow{
			IdPais: idPais,
			Code:   optionalString(columns.value(record, "code")),
			Nome:   columns.value(record, "nome"),
		})
	}
	return countries, nil
}

func readIndicatorRows(fileName string) ([]models.IndicatorRow, error) {

	header, records, err := utils.ReadCSV(fileName)
	if err != nil {
		return nil, err
	}
	columns, err := newColumnIndex(fileName, header, "id_pais", "ano", "valor")
	if err != nil {
		return nil, err
	}

	var rows []models.IndicatorRow
	for _, record := range records {
		idPais, err := parseIntField(columns.value(record, "id_pais"))
		if err != nil {
			log.Error(err)
			return nil, err
		}
		ano, err := parseIntField(columns.value(record, "ano"))
		if err != nil {
			log.Error(err)
			return nil, err
		}
		valor, err := strconv.ParseFloat(columns.value(record, "valor"), 64)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		rows = append(rows, models.IndicatorRow{IdPais: idPais, Ano: ano, Valor: valor})
	}
	return rows, nil
}

func readPlantRows(fileName string) ([]models.PlantRow, error) {

	header, records, err := utils.ReadCSV(fileName)
	if err != nil {
		return nil, err
	}
	columns, err := newColumnIndex(fileName, header, "id_usina", "nome_usina", "ceg", "tipo_usina",
		"modalidade_operacao", "agente_proprietario", "estado_nome", "cod_estado",
		"subsistema_nome", "cod_subsistema", "cod_pais")
	if err != nil {
		return nil, err
	}

	var plants []models.PlantRow
	for _, record := range records {
		idUsina, err := parseIntField(columns.value(record, "id_usina"))
		if err != nil {
			log.Error(err)
			return nil, err
		}
		plants = append(plants, models.PlantRow{
			IdUsina:       idUsina,
			PlantName:     columns.value(record, "nome_usina"),
			CEG:           optionalString(columns.value(record, "ceg")),
			PlantType:     columns.value(record, "tipo_usina"),
			OperationMode: columns.value(record, "modalidade_operacao"),
			OwnerAgent:    optionalString(columns.value(record, "agente_proprietario")),
			StateName:     optionalString(columns.value(record, "estado_nome")),
			StateCode:     optionalString(columns.value(record, "cod_estado")),
			SubsystemName: optionalString(columns.value(record, "subsistema_nome")),
			SubsystemCode: optionalString(columns.value(record, "cod_subsistema")),
			CountryCode:   optionalString(columns.value(record, "cod_pais")),
		})
	}
	return plants, nil
}

func readGeneratingUnitRows(fileName string) ([]models.GeneratingUnitRow, error) {

	header, records, err := utils.ReadCSV(fileName)
	if err != nil {
		return nil, err
	}
	columns, err := newColumnIndex(fileName, header, "id_unidade", "cod_equipamento", "nome_unidade",
		"num_unidade", "data_entrada_teste", "data_entrada_operacao", "data_desativacao",
		"potencia_efetiva", "combustivel", "id_usina")
	if err != nil {
		return nil, err
	}

	var units []models.GeneratingUnitRow
	for _, record := range records {
		idUnidade, err := parseIntField(columns.value(record, "id_unidade"))
		if err != nil {
			log.Error(err)
			return nil, err
		}
		idUsina, err := parseIntField(columns.value(record, "id_usina"))
		if err != nil {
			log.Error(err)
			return nil, err
		}
		units = append(units, models.GeneratingUnitRow{
			IdUnidade:          idUnidade,
			IdUsina:            idUsina,
			EquipmentCode:      columns.value(record, "cod_equipamento"),
			UnitName:           columns.value(record, "nome_unidade"),
			UnitNumber:         optionalInt(columns.value(record, "num_unidade")),
			TestEntryDate:      utils.DateOnlyPointer(columns.value(record, "data_entrada_teste")),
			OperationEntryDate: utils.DateOnlyPointer(columns.value(record, "data_entrada_operacao")),
			DeactivationDate:   utils.DateOnlyPointer(columns.value(record, "data_desativacao")),
			EffectivePowerMW:   optionalFloat(columns.value(record, "potencia_efetiva")),
			Fuel:               columns.value(record, "combustivel"),
		})
	}
	return units, nil
}

//columnIndex resolves extract columns by header name, so column order never matters
type columnIndex struct {
	indexes map[string]int
}

func newColumnIndex(fileName string, header []string, required ...string) (columnIndex, error) {
	indexes := map[string]int{}
	for i, column := range header {
		indexes[column] = i
	}
	for _, column := range required {
		if _, ok := indexes[column]; !ok {
			err := fmt.Errorf("column '%s' is missing in %s", column, fileName)
			log.Error(err)
			return columnIndex{}, err
		}
	}
	return columnIndex{indexes: indexes}, nil
}

func (c columnIndex) value(record []string, column string) string {
	index, ok := c.indexes[column]
	if !ok || index >= len(record) {
		return ""
	}
	return record[index]
}

//parseIntField tolerates float-formatted integers such as "3.0" in the extracts
func parseIntField(value string) (int, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return int(parsed), nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalInt(value string) *int {
	if value == "" {
		return nil
	}
	parsed, err := parseIntField(value)
	if err != nil {
		return nil
	}
	return &parsed
}

//optionalFloat maps empty and unparsable values to 0.0, matching the document default
func optionalFloat(value string) float64 {
	if value == "" {
		return 0.0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0.0
	}
	return parsed
}
