package utils

import (
	"encoding/csv"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

//WriteCSV writes a header and records to the given file
func WriteCSV(fileName string, header []string, records [][]string) error {
	file, err := os.Create(fileName)
	if err != nil {
		log.Error(err)
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err = writer.Write(header); err != nil {
		log.Error(err)
		return err
	}
	for _, record := range records {
		if err = writer.Write(record); err != nil {
			log.Error(err)
			return err
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		log.Error(err)
		return err
	}
	return nil
}

//ReadCSV reads the given file and returns its header and records
func ReadCSV(fileName string) ([]string, [][]string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		log.Error(err)
		return nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		log.Error(err)
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, column := range rows[0] {
		header[i] = strings.TrimSpace(column)
	}
	return header, rows[1:], nil
}

//RenameFiles changes the extension of the files in the given folder
func RenameFiles(folderName string, oldExtension string, newExtension string) ([]string, error) {
	var filenames []string

	files, err := ioutil.ReadDir(folderName + "/")
	if err != nil {
		log.Error(err)
		return nil, err
	}
	//Find all files with the old extension
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == oldExtension {
			filename := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
			err := os.Rename(folderName+"/"+file.Name(), folderName+"/"+filename+newExtension)
			if err != nil {
				log.Error(err)
			} else {
				filenames = append(filenames, filename+newExtension)
				log.Debug("Result file created: ", filename+newExtension)
			}
		}
	}
	return filenames, nil
}

//RemoveFiles removes the files with the given extension in the given folder
func RemoveFiles(folderName string, extension string) error {
	files, err := ioutil.ReadDir(folderName + "/")
	if err != nil {
		log.Error(err)
		return err
	}
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == extension {
			err := os.Remove(folderName + "/" + file.Name())
			if err != nil {
				log.Error(err)
				return err
			}
		}
	}
	return nil
}
