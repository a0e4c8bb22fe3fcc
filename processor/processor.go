package processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"energyindicators-migration/config"
	"energyindicators-migration/models"
	"energyindicators-migration/repository"
	"energyindicators-migration/store"
)

var (
	//ErrMissingCountryCode marks a country row whose code column is NULL
	ErrMissingCountryCode = errors.New("country code is missing")
	//ErrInvalidCountryCode marks a country code with no valid characters left after cleaning
	ErrInvalidCountryCode = errors.New("country code has no valid characters")
	//ErrMissingCEG marks a power plant row without a CEG code
	ErrMissingCEG = errors.New("power plant has no CEG code")
)

var invalidCodeCharacters = regexp.MustCompile(`[^A-Z_]`)

//CleanCountryCode strips every character that is not an uppercase letter or underscore
func CleanCountryCode(raw string) string {
	return invalidCodeCharacters.ReplaceAllString(raw, "")
}

//BuildCountryDocument flattens a country row and its indicator series into one document.
//indicators maps document field names to the rows of that series for this country.
func BuildCountryDocument(row models.CountryRow, indicators map[string][]models.IndicatorRow) (models.Country, error) {

	if row.Code == nil {
		return models.Country{}, ErrMissingCountryCode
	}
	code := CleanCountryCode(*row.Code)
	if code == "" {
		return models.Country{}, ErrInvalidCountryCode
	}

	country := models.Country{
		Nome:    row.Nome,
		CodPais: code,
	}
	for _, spec := range models.GetIndicatorSpecs() {
		for _, indicatorRow := range indicators[spec.Field] {
			country.AddIndicator(spec.Field, indicatorRow.Ano, indicatorRow.Valor)
		}
	}
	return country, nil
}

//BuildPlantDocument nests a joined plant row and its generating units into one document
func BuildPlantDocument(row models.PlantRow, units []models.GeneratingUnitRow) (models.PowerPlant, error) {

	if row.CEG == nil {
		return models.PowerPlant{}, ErrMissingCEG
	}

	plant := models.PowerPlant{
		PlantName:     row.PlantName,
		CEG:           *row.CEG,
		CountryCode:   stringValue(row.CountryCode),
		PlantType:     row.PlantType,
		OperationMode: row.OperationMode,
		OwnerAgent:    stringValue(row.OwnerAgent),
		State: models.State{
			Nome:      stringValue(row.StateName),
			CodEstado: stringValue(row.StateCode),
		},
		Subsystem: models.Subsystem{
			Nome:          stringValue(row.SubsystemName),
			CodSubsistema: stringValue(row.SubsystemCode),
		},
		//The array is always present, even for plants without units
		GeneratingUnits: []models.GeneratingUnit{},
	}

	for _, unit := range units {
		plant.GeneratingUnits = append(plant.GeneratingUnits, models.GeneratingUnit{
			EquipmentCode:      unit.EquipmentCode,
			UnitName:           unit.UnitName,
			UnitNumber:         unit.UnitNumber,
			EffectivePowerMW:   unit.EffectivePowerMW,
			TestEntryDate:      unit.TestEntryDate,
			OperationEntryDate: unit.OperationEntryDate,
			DeactivationDate:   unit.DeactivationDate,
			Fuel:               unit.Fuel,
		})
	}
	return plant, nil
}

//GroupIndicatorRows groups the rows of every indicator series by country id
func GroupIndicatorRows(field string, rows []models.IndicatorRow, grouped map[int]map[string][]models.IndicatorRow) {
	for _, row := range rows {
		if grouped[row.IdPais] == nil {
			grouped[row.IdPais] = map[string][]models.IndicatorRow{}
		}
		grouped[row.IdPais][field] = append(grouped[row.IdPais][field], row)
	}
}

//GroupGeneratingUnitRows groups generating unit rows by plant id
func GroupGeneratingUnitRows(rows []models.GeneratingUnitRow) map[int][]models.GeneratingUnitRow {
	grouped := map[int][]models.GeneratingUnitRow{}
	for _, row := range rows {
		grouped[row.IdUsina] = append(grouped[row.IdUsina], row)
	}
	return grouped
}

//MigrateDirect moves both collections straight from the relational database to the document store
func MigrateDirect(ctx context.Context, repo repository.Repository, st store.Store, run models.MigrationRun) error {

	err := MigrateCountries(ctx, repo, st, run)
	if err != nil {
		return err
	}

	plants, err := repo.GetPlants(config.GetBrazilCountryCode())
	if err != nil {
		return err
	}
	return UpsertPlants(ctx, st, plants, repo.GetGeneratingUnits, run)
}

//MigrateCountries builds and upserts every country document from the relational source
func MigrateCountries(ctx context.Context, repo repository.Repository, st store.Store, run models.MigrationRun) error {

	countries, err := repo.GetCountries()
	if err != nil {
		return err
	}
	log.Info("Found " + strconv.Itoa(len(countries)) + " countries to migrate")

	indicatorsByCountry := map[int]map[string][]models.IndicatorRow{}
	for _, spec := range models.GetIndicatorSpecs() {
		rows, err := repo.GetIndicatorRows(spec)
		if err != nil {
			return err
		}
		GroupIndicatorRows(spec.Field, rows, indicatorsByCountry)
	}

	return UpsertCountries(ctx, st, countries, indicatorsByCountry, run)
}

//UpsertCountries builds a document per country row and writes it through the store.
//Rows without a usable country code are skipped and recorded in the progress collection.
func UpsertCountries(ctx context.Context, st store.Store, countries []models.CountryRow,
	indicatorsByCountry map[int]map[string][]models.IndicatorRow, run models.MigrationRun) error {

	for _, row := range countries {
		country, buildErr := BuildCountryDocument(row, indicatorsByCountry[row.IdPais])
		if buildErr != nil {
			log.Debug("Skipping country '", row.Nome, "': ", buildErr)
			recordProgress(ctx, st, run, config.GetCountriesCollectionName(), row.Nome, false, buildErr.Error())
			continue
		}

		err := st.UpsertCountry(ctx, country)
		if err != nil {
			return err
		}
		recordProgress(ctx, st, run, config.GetCountriesCollectionName(), country.CodPais, true, countryDetails(country))
	}
	return nil
}

//UnitsLookup resolves the generating units of one plant, either from the database or from an extract
type UnitsLookup func(plantId int) ([]models.GeneratingUnitRow, error)

//UpsertPlants distributes the plant rows over a pool of workers that build and write the documents
func UpsertPlants(ctx context.Context, st store.Store, plants []models.PlantRow, lookup UnitsLookup, run models.MigrationRun) error {

	log.Info("Found " + strconv.Itoa(len(plants)) + " power plants to migrate")

	//Create the channel that the workers will fetch plants from
	plantChannel := make(chan models.PlantRow, len(plants))
	for _, plant := range plants {
		plantChannel <- plant
	}

	//Close the channel for new entries
	close(plantChannel)

	nWorkers := run.Threads
	if nWorkers <= 0 {
		nWorkers = config.GetDefaultThreads()
	}

	//WaitGroup used to ensure the function doesn't end before all the workers are finished
	wg := sync.WaitGroup{}

	// We just want to return one of the errors from the worker threads (if any)
	resultChannel := make(chan result, nWorkers)

	//Create a number of workers equal to the number in nWorkers
	for worker := 0; worker < nWorkers; worker++ {
		wg.Add(1)
		go func() {
			migrated, err := PlantWorker(ctx, st, plantChannel, lookup, run)

			res := result{migrated: migrated, returnValue: true}
			if err != nil {
				res.returnValue = false
				res.mainErr = err
			}
			resultChannel <- res

			wg.Done()
		}()
	}

	//Wait for all the workers to be done
	wg.Wait()

	// Close the channel for new occurrences
	close(resultChannel)

	migratedTotal := 0
	var mainErr error
	for res := range resultChannel {
		migratedTotal += res.migrated
		if res.returnValue == false {
			mainErr = res.mainErr
		}
	}
	log.Info("Migrated " + strconv.Itoa(migratedTotal) + " power plant documents")
	return mainErr
}

//PlantWorker reads the plant channel and writes one document per plant
func PlantWorker(ctx context.Context, st store.Store, plants <-chan models.PlantRow, lookup UnitsLookup, run models.MigrationRun) (int, error) {

	timer := time.Now()
	migrated := 0

	//For each plant read from the plant channel
	for row := range plants {

		units, err := lookup(row.IdUsina)
		if err != nil {
			log.Error(err)
			return migrated, err
		}

		plant, buildErr := BuildPlantDocument(row, units)
		if buildErr != nil {
			log.Debug("Skipping power plant '", row.PlantName, "': ", buildErr)
			recordProgress(ctx, st, run, config.GetPlantsCollectionName(), row.PlantName, false, buildErr.Error())
			continue
		}

		err = st.UpsertPlant(ctx, plant)
		if err != nil {
			log.Error(err)
			return migrated, err
		}
		details := fmt.Sprintf("generating_units:%d", len(plant.GeneratingUnits))
		recordProgress(ctx, st, run, config.GetPlantsCollectionName(), plant.CEG, true, details)
		migrated++
	}

	log.Debug("Time since PlantWorker started: ", time.Since(timer))
	return migrated, nil
}

//recordProgress writes a progress entry. Progress failures are logged but never abort a run.
func recordProgress(ctx context.Context, st store.Store, run models.MigrationRun, collection, key string, dataFound bool, details string) {
	entry := models.ProgressEntry{
		MigrationRunId: run.MigrationRunId,
		Stage:          run.Stage,
		Collection:     collection,
		DocumentKey:    key,
		DataFound:      dataFound,
		Details:        details,
		RecordedAt:     time.Now().UTC(),
	}
	if err := st.InsertProgress(ctx, entry); err != nil {
		log.Error(err)
	}
}

func countryDetails(country models.Country) string {
	series := 0
	if len(country.HDI) > 0 {
		series++
	}
	if len(country.ElectricityAccess) > 0 {
		series++
	}
	if len(country.RenewableAccess) > 0 {
		series++
	}
	if len(country.CleanEnergyInvestment) > 0 {
		series++
	}
	if len(country.CleanCookingAccess) > 0 {
		series++
	}
	if len(country.RenewableGenerationPerCapita) > 0 {
		series++
	}
	return fmt.Sprintf("indicator_series:%d", series)
}

func stringValue(value *string) string {
	if value != nil {
		return *value
	}
	return ""
}

type result struct {
	mainErr     error
	returnValue bool
	migrated    int
}
