package database

import (
	"database/sql"

	log "github.com/sirupsen/logrus"

	_ "github.com/lib/pq"

	"energyindicators-migration/config"
)

// InitDB opens a connection to the relational source database
func InitDB(dbConnectionString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbConnectionString)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	db.SetMaxOpenConns(config.GetMaxOpenConnections())
	db.SetMaxIdleConns(config.GetMaxIdleConnections())
	err = db.Ping()
	if err != nil {
		log.Error(err)
		return nil, err
	}
	return db, nil
}
