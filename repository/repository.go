package repository

import (
	"database/sql"

	log "github.com/sirupsen/logrus"

	"energyindicators-migration/models"
	"energyindicators-migration/sqls"
	"energyindicators-migration/utils"
)

var sqlstmtSelectGeneratingUnits *sql.Stmt

type Repository interface {
	InitStatements() error
	GetCountries() ([]models.CountryRow, error)
	GetIndicatorRows(spec models.IndicatorSpec) ([]models.IndicatorRow, error)
	GetPlants(countryCode string) ([]models.PlantRow, error)
	GetGeneratingUnits(plantId int) ([]models.GeneratingUnitRow, error)
	GetAllGeneratingUnits() ([]models.GeneratingUnitRow, error)
	Close()
}

var NewRepository = func(db *sql.DB) Repository {
	return &Impl{
		Db: db,
	}
}

type Impl struct {
	Db *sql.DB
}

func (i *Impl) InitStatements() error {
	var err error

	//Prepare the SQL query that retrieves the generating units of one plant.
	//It runs once per plant from the worker pool.
	sqlstmtSelectGeneratingUnits, err = i.Db.Prepare(sqls.GetSQLSelectGeneratingUnits())
	if err != nil {
		log.Error(err)
		return err
	}

	return nil
}

func (i *Impl) Close() {
	if sqlstmtSelectGeneratingUnits != nil {
		sqlstmtSelectGeneratingUnits.Close()
	}
}

//GetCountries retrieves every row from the Pais table
func (i *Impl) GetCountries() ([]models.CountryRow, error) {

	rows, err := i.Db.Query(sqls.GetSQLSelectCountries())
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var countries []models.CountryRow
	var idPais int
	var code sql.NullString
	var nome string

	//Loop through the result from the executed SQL query
	for rows.Next() {
		err = rows.Scan(&idPais, &code, &nome)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		countries = append(countries, models.CountryRow{
			IdPais: idPais,
			Code:   utils.FormatNullStringPointer(code),
			Nome:   nome,
		})
	}
	if err = rows.Err(); err != nil {
		log.Error(err)
		return nil, err
	}
	return countries, nil
}

//GetIndicatorRows retrieves the full series of one indicator table, ordered by country and year
func (i *Impl) GetIndicatorRows(spec models.IndicatorSpec) ([]models.IndicatorRow, error) {

	rows, err := i.Db.Query(sqls.GetSQLSelectIndicator(spec.Table, spec.ValueColumn))
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var indicatorRows []models.IndicatorRow
	var idPais, ano int
	var valor sql.NullFloat64

	for rows.Next() {
		err = rows.Scan(&idPais, &ano, &valor)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		indicatorRows = append(indicatorRows, models.IndicatorRow{
			IdPais: idPais,
			Ano:    ano,
			Valor:  utils.FormatNullFloat(valor),
		})
	}
	if err = rows.Err(); err != nil {
		log.Error(err)
		return nil, err
	}
	return indicatorRows, nil
}

//GetPlants retrieves the joined power plant rows for the given country code
func (i *Impl) GetPlants(countryCode string) ([]models.PlantRow, error) {

	rows, err := i.Db.Query(sqls.GetSQLSelectPlants(), countryCode)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var plants []models.PlantRow
	var idUsina int
	var plantName, plantType, operationMode string
	var ceg, ownerAgent, stateName, stateCode, subsystemName, subsystemCode, codPais sql.NullString

	for rows.Next() {
		err = rows.Scan(&idUsina, &plantName, &ceg, &plantType, &operationMode,
			&ownerAgent, &stateName, &stateCode, &subsystemName, &subsystemCode, &codPais)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		plants = append(plants, models.PlantRow{
			IdUsina:       idUsina,
			PlantName:     plantName,
			CEG:           utils.FormatNullStringPointer(ceg),
			PlantType:     plantType,
			OperationMode: operationMode,
			OwnerAgent:    utils.FormatNullStringPointer(ownerAgent),
			StateName:     utils.FormatNullStringPointer(stateName),
			StateCode:     utils.FormatNullStringPointer(stateCode),
			SubsystemName: utils.FormatNullStringPointer(subsystemName),
			SubsystemCode: utils.FormatNullStringPointer(subsystemCode),
			CountryCode:   utils.FormatNullStringPointer(codPais),
		})
	}
	if err = rows.Err(); err != nil {
		log.Error(err)
		return nil, err
	}
	return plants, nil
}

//GetGeneratingUnits retrieves the generating units of one plant through the prepared statement
func (i *Impl) GetGeneratingUnits(plantId int) ([]models.GeneratingUnitRow, error) {

	rows, err := sqlstmtSelectGeneratingUnits.Query(plantId)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanGeneratingUnits(rows)
}

//GetAllGeneratingUnits retrieves every generating unit, ordered by plant
func (i *Impl) GetAllGeneratingUnits() ([]models.GeneratingUnitRow, error) {

	rows, err := i.Db.Query(sqls.GetSQLSelectAllGeneratingUnits())
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanGeneratingUnits(rows)
}

func scanGeneratingUnits(rows *sql.Rows) ([]models.GeneratingUnitRow, error) {

	var units []models.GeneratingUnitRow
	var idUnidade, idUsina int
	var equipmentCode, unitName, fuel string
	var unitNumber sql.NullInt64
	var testEntryDate, operationEntryDate, deactivationDate sql.NullTime
	var effectivePower sql.NullFloat64

	for rows.Next() {
		err := rows.Scan(&idUnidade, &equipmentCode, &unitName, &unitNumber,
			&testEntryDate, &operationEntryDate, &deactivationDate, &effectivePower, &fuel, &idUsina)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		units = append(units, models.GeneratingUnitRow{
			IdUnidade:          idUnidade,
			IdUsina:            idUsina,
			EquipmentCode:      equipmentCode,
			UnitName:           unitName,
			UnitNumber:         utils.FormatNullIntPointer(unitNumber),
			TestEntryDate:      utils.FormatNullDatePointer(testEntryDate),
			OperationEntryDate: utils.FormatNullDatePointer(operationEntryDate),
			DeactivationDate:   utils.FormatNullDatePointer(deactivationDate),
			EffectivePowerMW:   utils.FormatNullFloat(effectivePower),
			Fuel:               fuel,
		})
	}
	if err := rows.Err(); err != nil {
		log.Error(err)
		return nil, err
	}
	return units, nil
}
