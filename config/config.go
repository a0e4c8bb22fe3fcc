package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tkanos/gonfig"
)

type Configuration struct {
	PG_USERNAME       string
	PG_PASSWORD       string
	PG_HOST           string
	PG_PORT           string
	PG_DBNAME         string
	PG_SSLMODE        string
	MONGO_URI         string
	MONGO_DB_NAME     string
	CSV_LOCATION      string
	RESULT_LOCATION   string
	THREADS           int
	DEBUG_LOGGING     bool
	SKIP_SCHEMA_SETUP bool
	MAX_LOGFILE_SIZE  int64
}

func GetConfig(params ...string) Configuration {
	configuration := Configuration{}
	env := ""
	if len(params) > 0 {
		env = params[0]
	}
	fileName := fmt.Sprintf("./%s_config.json", env)

	gonfig.GetConf(fileName, &configuration)

	log.Info("Using configurations in config file with prefix: ", env)

	return configuration
}

//GetCountriesCollectionName returns the name of the collection holding the country documents
func GetCountriesCollectionName() string {
	return "paises"
}

//GetPlantsCollectionName returns the name of the collection holding the power plant documents
func GetPlantsCollectionName() string {
	return "usinas"
}

//GetProgressCollectionName returns the name of the collection where the migration progress is stored
func GetProgressCollectionName() string {
	return "migration_progress"
}

//GetCountriesCSVName returns the filename of the country extract
func GetCountriesCSVName() string {
	return "paises.csv"
}

//GetPlantsCSVName returns the filename of the power plant extract
func GetPlantsCSVName() string {
	return "usinas.csv"
}

//GetGeneratingUnitsCSVName returns the filename of the generating unit extract
func GetGeneratingUnitsCSVName() string {
	return "unidades_geradoras.csv"
}

//GetIndicatorCSVName returns the filename of the extract for the given indicator table
func GetIndicatorCSVName(tableName string) string {
	return "indicador_" + tableName + ".csv"
}

//GetCSVDateLayout returns the date layout used for the unit dates in the documents and extracts
func GetCSVDateLayout() string {
	return "2006-01-02"
}

//GetFileDateLayout returns the date layout used in archived filenames
func GetFileDateLayout() string {
	return "20060102150405"
}

//GetTmpExtension returns the temporary extension of the result files
func GetTmpExtension() string {
	return ".tmp"
}

//GetResultExtension returns the final extension of the result files
func GetResultExtension() string {
	return ".csv"
}

//GetBrazilCountryCode returns the country code used to scope the power plant migration
func GetBrazilCountryCode() string {
	return "BRA"
}

//GetBrazilCountryName returns the country name as stored in the country documents
func GetBrazilCountryName() string {
	return "Brazil"
}

//GetCountryCodePattern returns the pattern enforced on country codes by the collection validator
func GetCountryCodePattern() string {
	return "^[A-Z_]+$"
}

//GetRenewableFuels returns the fuels counted as renewable in the analytics queries
func GetRenewableFuels() []string {
	return []string{"HÍDRICA", "EÓLICA", "SOLAR", "BIOMASSA"}
}

//GetLogFileName return the name of the log file
func GetLogFileName() string {
	return "./out/energyindicators-migration.log"
}

//GetLogFileNameWithoutExtension returns the log file name without its extension
func GetLogFileNameWithoutExtension() string {
	return "./out/energyindicators-migration"
}

//GetLogFileExtension returns the extension of the log file
func GetLogFileExtension() string {
	return "log"
}

//GetDefaultEnvironment returns the default environment to load configurations for
func GetDefaultEnvironment() string {
	return "PROD"
}

//GetDefaultThreads returns the number of plant workers used when THREADS is not configured
func GetDefaultThreads() int {
	return 4
}

//GetMaxOpenConnections returns the maximum number of open database connections
func GetMaxOpenConnections() int {
	return 4
}

//GetMaxIdleConnections returns the maximum number of idle database connections
func GetMaxIdleConnections() int {
	return 2
}
