package processor

import (
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"energyindicators-migration/config"
	"energyindicators-migration/models"
	"energyindicators-migration/repository"
	"energyindicators-migration/utils"
)

//ExportCSV writes the relational tables as CSV extracts into the given folder.
//The extracts are the contract between the export and load stages: indicator value
//columns are renamed to "valor" and unit timestamps are reduced to dates.
func ExportCSV(repo repository.Repository, csvLocation string) error {

	err := os.MkdirAll(csvLocation, 0755)
	if err != nil {
		log.Error(err)
		return err
	}

	err = exportCountries(repo, csvLocation)
	if err != nil {
		return err
	}
	err = exportIndicators(repo, csvLocation)
	if err != nil {
		return err
	}
	err = exportPlants(repo, csvLocation)
	if err != nil {
		return err
	}
	return exportGeneratingUnits(repo, csvLocation)
}

func exportCountries(repo repository.Repository, csvLocation string) error {

	countries, err := repo.GetCountries()
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(countries))
	for _, row := range countries {
		records = append(records, []string{
			strconv.Itoa(row.IdPais),
			stringValue(row.Code),
			row.Nome,
		})
	}

	fileName := filepath.Join(csvLocation, config.GetCountriesCSVName())
	log.Info("Exporting " + fileName)
	return utils.WriteCSV(fileName, []string{"id_pais", "code", "nome"}, records)
}

func exportIndicators(repo repository.Repository, csvLocation string) error {

	for _, spec := range models.GetIndicatorSpecs() {
		rows, err := repo.GetIndicatorRows(spec)
		if err != nil {
			return err
		}

		records := make([][]string, 0, len(rows))
		for _, row := range rows {
			records = append(records, []string{
				strconv.Itoa(row.IdPais),
				strconv.Itoa(row.Ano),
				formatFloat(row.Valor),
			})
		}

		fileName := filepath.Join(csvLocation, config.GetIndicatorCSVName(spec.Table))
		log.Info("Exporting " + fileName)
		//The value column is renamed to "valor" so the load stage reads every series the same way
		err = utils.WriteCSV(fileName, []string{"id_pais", "ano", "valor"}, records)
		if err != nil {
			return err
		}
	}
	return nil
}

func exportPlants(repo repository.Repository, csvLocation string) error {

	plants, err := repo.GetPlants(config.GetBrazilCountryCode())
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(plants))
	for _, row := range plants {
		records = append(records, []string{
			strconv.Itoa(row.IdUsina),
			row.PlantName,
			stringValue(row.CEG),
			row.PlantType,
			row.OperationMode,
			stringValue(row.OwnerAgent),
			stringValue(row.StateName),
			stringValue(row.StateCode),
			stringValue(row.SubsystemName),
			stringValue(row.SubsystemCode),
			stringValue(row.CountryCode),
		})
	}

	header := []string{"id_usina", "nome_usina", "ceg", "tipo_usina", "modalidade_operacao",
		"agente_proprietario", "estado_nome", "cod_estado", "subsistema_nome", "cod_subsistema", "cod_pais"}
	fileName := filepath.Join(csvLocation, config.GetPlantsCSVName())
	log.Info("Exporting " + fileName)
	return utils.WriteCSV(fileName, header, records)
}

func exportGeneratingUnits(repo repository.Repository, csvLocation string) error {

	units, err := repo.GetAllGeneratingUnits()
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(units))
	for _, row := range units {
		records = append(records, []string{
			strconv.Itoa(row.IdUnidade),
			row.EquipmentCode,
			row.UnitName,
			intValue(row.UnitNumber),
			stringValue(row.TestEntryDate),
			stringValue(row.OperationEntryDate),
			stringValue(row.DeactivationDate),
			formatFloat(row.EffectivePowerMW),
			row.Fuel,
			strconv.Itoa(row.IdUsina),
		})
	}

	header := []string{"id_unidade", "cod_equipamento", "nome_unidade", "num_unidade",
		"data_entrada_teste", "data_entrada_operacao", "data_desativacao", "potencia_efetiva", "combustivel", "id_usina"}
	fileName := filepath.Join(csvLocation, config.GetGeneratingUnitsCSVName())
	log.Info("Exporting " + fileName)
	return utils.WriteCSV(fileName, header, records)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func intValue(value *int) string {
	if value != nil {
		return strconv.Itoa(*value)
	}
	return ""
}
