package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"energyindicators-migration/config"
	"energyindicators-migration/database"
	"energyindicators-migration/logger"
	"energyindicators-migration/models"
	"energyindicators-migration/processor"
	"energyindicators-migration/queries"
	"energyindicators-migration/repository"
	"energyindicators-migration/store"
)

var (
	sha1ver   string // sha1 revision used to build the program
	buildTime string // when the executable was built
	version   string // custom version number of the program

	flgVersion bool
	flgStage   string
)

func main() {

	parseCmdLineFlags()

	//Store the current time before running the program in order to track execution time
	timer := time.Now()

	//The environment is given as a parameter (defaults to PROD)
	environment := getEnvironment()

	//Get the configurations for the given environment
	configurations := config.GetConfig(environment)

	// Create the log file if it doesn't exist. Append to it if it already exists.
	logFileLogger, err := logger.NewLogger(configurations.MAX_LOGFILE_SIZE)
	defer logFileLogger.Close()

	if configurations.DEBUG_LOGGING {
		log.SetLevel(log.DebugLevel)
	}

	logFileLogger.Info("Using configurations from config file with prefix: " + environment)
	logFileLogger.Info("version = " + version)
	logFileLogger.Info("buildTime = " + buildTime)
	logFileLogger.Info("sha1Version = " + sha1ver)

	stage := strings.ToLower(flgStage)
	needsRelational := stage == "export" || stage == "migrate" || stage == "all"
	needsDocumentStore := stage == "load" || stage == "migrate" || stage == "queries" || stage == "all"
	if !needsRelational && !needsDocumentStore {
		logFileLogger.ErrorWithText("Unknown stage: " + flgStage + " (expected export, load, migrate, queries or all)")
		return
	}

	ctx := context.Background()

	var repo repository.Repository
	if needsRelational {
		connectionString, validatedOK := getConnectionString(configurations, logFileLogger)
		if !validatedOK {
			return
		}
		db, err := database.InitDB(connectionString)
		if err != nil {
			//Only log in file as the DB is not available
			logFileLogger.Fatal(err)
		}
		defer db.Close()

		repo = repository.NewRepository(db)
		err = repo.InitStatements()
		if err != nil {
			logFileLogger.Fatal(err)
		}
		defer repo.Close()
	}

	var st store.Store
	if needsDocumentStore {
		if !validateDocumentStoreConfig(configurations, logFileLogger) {
			return
		}
		client, err := database.InitMongo(configurations.MONGO_URI)
		if err != nil {
			logFileLogger.Fatal(err)
		}
		st = store.NewStore(client, configurations.MONGO_DB_NAME)
		defer st.Close(ctx)

		//The analytics stage only reads, so the validators are left untouched
		if !configurations.SKIP_SCHEMA_SETUP && stage != "queries" {
			err = st.EnsureCollections(ctx)
			if err != nil {
				logFileLogger.Fatal(err)
			}
		}
	}

	run := models.MigrationRun{
		MigrationRunId: int(time.Now().Unix()),
		Stage:          stage,
		Threads:        configurations.THREADS,
	}
	logFileLogger.Info("Starting run id " + strconv.Itoa(run.MigrationRunId) + " with stage " + stage)

	//Store the error message of the failed stage (if any)
	errorMessage := ""

	switch stage {
	case "export":
		err = processor.ExportCSV(repo, configurations.CSV_LOCATION)
	case "load":
		err = processor.LoadFromCSV(ctx, st, configurations.CSV_LOCATION, run)
	case "migrate":
		err = processor.MigrateDirect(ctx, repo, st, run)
	case "queries":
		err = queries.RunAll(ctx, st, configurations.RESULT_LOCATION)
	case "all":
		err = processor.ExportCSV(repo, configurations.CSV_LOCATION)
		if err == nil {
			err = processor.LoadFromCSV(ctx, st, configurations.CSV_LOCATION, run)
		}
		if err == nil {
			err = queries.RunAll(ctx, st, configurations.RESULT_LOCATION)
		}
	}
	if err != nil {
		logFileLogger.Error(err)
		errorMessage = err.Error()
	}

	if errorMessage == "" {
		logFileLogger.Info("Finished run id " + strconv.Itoa(run.MigrationRunId))
	} else {
		logFileLogger.ErrorWithText("Run id " + strconv.Itoa(run.MigrationRunId) + " finished with error: " + errorMessage)
	}

	//Print the time it took to run the program
	logFileLogger.Info(" Execution time: " + time.Since(timer).String())
}

func getConnectionString(configurations config.Configuration, logFileLogger logger.Logger) (string, bool) {

	if configurations.PG_USERNAME == "" {
		logFileLogger.ErrorWithText("PG_USERNAME must be specified in the configuration file")
		return "", false
	}
	if configurations.PG_PASSWORD == "" {
		logFileLogger.ErrorWithText("PG_PASSWORD must be specified in the configuration file")
		return "", false
	}
	if configurations.PG_HOST == "" || configurations.PG_PORT == "" || configurations.PG_DBNAME == "" {
		logFileLogger.ErrorWithText("PG_HOST, PG_PORT and PG_DBNAME must be specified in the configuration file")
		return "", false
	}

	sslMode := configurations.PG_SSLMODE
	if sslMode == "" {
		sslMode = "disable"
	}

	connectionString := "host=" + configurations.PG_HOST +
		" port=" + configurations.PG_PORT +
		" dbname=" + configurations.PG_DBNAME +
		" user=" + configurations.PG_USERNAME +
		" password=" + configurations.PG_PASSWORD +
		" sslmode=" + sslMode
	return connectionString, true
}

func validateDocumentStoreConfig(configurations config.Configuration, logFileLogger logger.Logger) bool {
	if configurations.MONGO_URI == "" {
		logFileLogger.ErrorWithText("MONGO_URI must be specified in the configuration file")
		return false
	}
	if configurations.MONGO_DB_NAME == "" {
		logFileLogger.ErrorWithText("MONGO_DB_NAME must be specified in the configuration file")
		return false
	}
	return true
}

func getEnvironment() string {
	environment := config.GetDefaultEnvironment()
	if flag.Arg(0) != "" {
		environment = flag.Arg(0)
	}
	return environment
}

func parseCmdLineFlags() {
	flag.BoolVar(&flgVersion, "version", false, "if true, print version and exit")
	flag.StringVar(&flgStage, "stage", "all", "stage to run: export, load, migrate, queries or all")
	flag.Parse()
	if flgVersion {
		fmt.Printf("Version %s - build on %s from sha1 %s\n", version, buildTime, sha1ver)
		os.Exit(0)
	}
}
