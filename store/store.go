package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"energyindicators-migration/config"
	"energyindicators-migration/models"
)

type Store interface {
	EnsureCollections(ctx context.Context) error
	UpsertCountry(ctx context.Context, country models.Country) error
	UpsertPlant(ctx context.Context, plant models.PowerPlant) error
	InsertProgress(ctx context.Context, entry models.ProgressEntry) error
	Aggregate(ctx context.Context, collectionName string, pipeline mongo.Pipeline) ([]bson.M, error)
	Close(ctx context.Context) error
}

var NewStore = func(client *mongo.Client, dbName string) Store {
	return &Impl{
		Client: client,
		Db:     client.Database(dbName),
	}
}

type Impl struct {
	Client *mongo.Client
	Db     *mongo.Database
}

func (i *Impl) Close(ctx context.Context) error {
	return i.Client.Disconnect(ctx)
}

//UpsertCountry writes a country document keyed on cod_pais, so reruns update instead of duplicating
func (i *Impl) UpsertCountry(ctx context.Context, country models.Country) error {

	filter := bson.M{"cod_pais": country.CodPais}
	update := bson.M{"$set": country}

	_, err := i.Db.Collection(config.GetCountriesCollectionName()).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Error(err)
		return err
	}
	return nil
}

//UpsertPlant writes a power plant document keyed on ceg
func (i *Impl) UpsertPlant(ctx context.Context, plant models.PowerPlant) error {

	filter := bson.M{"ceg": plant.CEG}
	update := bson.M{"$set": plant}

	_, err := i.Db.Collection(config.GetPlantsCollectionName()).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Error(err)
		return err
	}
	return nil
}

//InsertProgress records one processed document in the progress collection
func (i *Impl) InsertProgress(ctx context.Context, entry models.ProgressEntry) error {

	_, err := i.Db.Collection(config.GetProgressCollectionName()).InsertOne(ctx, entry)
	if err != nil {
		log.Error(err)
		return err
	}
	return nil
}

//Aggregate runs a pipeline against the named collection and decodes every result row
func (i *Impl) Aggregate(ctx context.Context, collectionName string, pipeline mongo.Pipeline) ([]bson.M, error) {

	cursor, err := i.Db.Collection(collectionName).Aggregate(ctx, pipeline)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err = cursor.All(ctx, &results); err != nil {
		log.Error(err)
		return nil, err
	}
	return results, nil
}
