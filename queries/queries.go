package queries

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"energyindicators-migration/config"
	"energyindicators-migration/store"
	"energyindicators-migration/utils"
)

//RunAll executes every analytics query and serializes the results as CSV files.
//Result files are written with a temporary extension and renamed once every
//query has finished, so a partial run never leaves final-looking files behind.
func RunAll(ctx context.Context, st store.Store, resultLocation string) error {

	err := os.MkdirAll(resultLocation, 0755)
	if err != nil {
		log.Error(err)
		return err
	}

	//Cleanup - remove leftover tmp files from an earlier aborted run
	err = utils.RemoveFiles(resultLocation, config.GetTmpExtension())
	if err != nil {
		return err
	}

	for _, query := range All() {
		log.Info("Executing query: " + query.Name)

		rows, err := st.Aggregate(ctx, query.Collection, query.Pipeline)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			log.Debug("Query returned no results: ", query.Name)
			continue
		}

		records := make([][]string, 0, len(rows))
		for _, row := range rows {
			records = append(records, ResultRecord(query.Columns, row))
		}

		fileName := filepath.Join(resultLocation, query.Name+config.GetTmpExtension())
		err = utils.WriteCSV(fileName, query.Columns, records)
		if err != nil {
			return err
		}
	}

	//Rename .tmp to .csv in the result folder
	filenames, err := utils.RenameFiles(resultLocation, config.GetTmpExtension(), config.GetResultExtension())
	if err != nil {
		return err
	}
	log.Info("Wrote " + strconv.Itoa(len(filenames)) + " result files")
	return nil
}

//ResultRecord serializes one result row in the column order declared by the query
func ResultRecord(columns []string, row bson.M) []string {
	record := make([]string, len(columns))
	for i, column := range columns {
		record[i] = FormatValue(row[column])
	}
	return record
}

//FormatValue renders a decoded BSON value for a CSV cell. Missing and null
//values become empty cells.
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case primitive.Decimal128:
		return v.String()
	default:
		log.Debug("Unexpected result value type: ", value)
		return ""
	}
}
