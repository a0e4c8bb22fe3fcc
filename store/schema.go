package store

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"energyindicators-migration/config"
	"energyindicators-migration/models"
)

//EnsureCollections creates the two document collections with their schema validators and
//unique indexes on the natural keys. Invariants are enforced by the database, not by this code.
func (i *Impl) EnsureCollections(ctx context.Context) error {

	err := i.ensureCollection(ctx, config.GetCountriesCollectionName(), CountryValidator())
	if err != nil {
		return err
	}
	err = i.ensureCollection(ctx, config.GetPlantsCollectionName(), PlantValidator())
	if err != nil {
		return err
	}

	err = i.ensureUniqueIndex(ctx, config.GetCountriesCollectionName(), "cod_pais")
	if err != nil {
		return err
	}
	return i.ensureUniqueIndex(ctx, config.GetPlantsCollectionName(), "ceg")
}

func (i *Impl) ensureCollection(ctx context.Context, name string, validator bson.M) error {

	err := i.Db.CreateCollection(ctx, name, options.CreateCollection().SetValidator(validator))
	if err != nil {
		//An existing collection gets its validator refreshed instead
		if !isNamespaceExists(err) {
			log.Error(err)
			return err
		}
		command := bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}
		if err = i.Db.RunCommand(ctx, command).Err(); err != nil {
			log.Error(err)
			return err
		}
	}
	return nil
}

func (i *Impl) ensureUniqueIndex(ctx context.Context, collectionName, field string) error {

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := i.Db.Collection(collectionName).Indexes().CreateOne(ctx, model)
	if err != nil {
		log.Error(err)
		return err
	}
	return nil
}

func isNamespaceExists(err error) bool {
	if commandErr, ok := err.(mongo.CommandError); ok {
		return commandErr.Code == 48 || commandErr.Name == "NamespaceExists"
	}
	return strings.Contains(err.Error(), "NamespaceExists")
}

//CountryValidator returns the $jsonSchema validator of the paises collection
func CountryValidator() bson.M {

	properties := bson.M{
		"nome": bson.M{"bsonType": "string"},
		"cod_pais": bson.M{
			"bsonType": "string",
			"pattern":  config.GetCountryCodePattern(),
		},
	}
	for _, spec := range models.GetIndicatorSpecs() {
		properties[spec.Field] = yearSeriesSchema(spec.ValueColumn)
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":   "object",
			"required":   bson.A{"nome", "cod_pais"},
			"properties": properties,
		},
	}
}

//yearSeriesSchema builds the schema of one per-year indicator array
func yearSeriesSchema(valueKey string) bson.M {
	return bson.M{
		"bsonType": "array",
		"items": bson.M{
			"bsonType": "object",
			"required": bson.A{"ano", valueKey},
			"properties": bson.M{
				"ano":    bson.M{"bsonType": "int"},
				valueKey: bson.M{"bsonType": bson.A{"double", "int"}},
			},
		},
	}
}

//PlantValidator returns the $jsonSchema validator of the usinas collection
func PlantValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"nome_usina", "ceg", "cod_pais", "estado", "subsistema", "unidades_geradoras"},
			"properties": bson.M{
				"nome_usina":          bson.M{"bsonType": "string"},
				"ceg":                 bson.M{"bsonType": "string"},
				"cod_pais":            bson.M{"bsonType": "string"},
				"tipo_usina":          bson.M{"bsonType": "string"},
				"modalidade_operacao": bson.M{"bsonType": "string"},
				"agente_proprietario": bson.M{"bsonType": "string"},
				"estado": bson.M{
					"bsonType": "object",
					"required": bson.A{"nome", "cod_estado"},
					"properties": bson.M{
						"nome":       bson.M{"bsonType": "string"},
						"cod_estado": bson.M{"bsonType": "string"},
					},
				},
				"subsistema": bson.M{
					"bsonType": "object",
					"required": bson.A{"nome", "cod_subsistema"},
					"properties": bson.M{
						"nome":           bson.M{"bsonType": "string"},
						"cod_subsistema": bson.M{"bsonType": "string"},
					},
				},
				"unidades_geradoras": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"cod_equipamento", "potencia_efetiva_mw", "combustivel"},
						"properties": bson.M{
							"cod_equipamento":       bson.M{"bsonType": "string"},
							"nome_unidade":          bson.M{"bsonType": "string"},
							"num_unidade":           bson.M{"bsonType": bson.A{"int", "null"}},
							"potencia_efetiva_mw":   bson.M{"bsonType": bson.A{"double", "int"}},
							"data_entrada_teste":    bson.M{"bsonType": bson.A{"string", "null"}},
							"data_entrada_operacao": bson.M{"bsonType": bson.A{"string", "null"}},
							"data_desativacao":      bson.M{"bsonType": bson.A{"string", "null"}},
							"combustivel":           bson.M{"bsonType": "string"},
						},
					},
				},
			},
		},
	}
}
