package store

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"energyindicators-migration/models"
)

func jsonSchema(t *testing.T, validator bson.M) bson.M {
	t.Helper()
	schema, ok := validator["$jsonSchema"].(bson.M)
	if !ok {
		t.Fatal("validator has no $jsonSchema document")
	}
	return schema
}

func requiredFields(t *testing.T, schema bson.M) map[string]bool {
	t.Helper()
	required, ok := schema["required"].(bson.A)
	if !ok {
		t.Fatal("schema has no required array")
	}
	fields := map[string]bool{}
	for _, field := range required {
		fields[field.(string)] = true
	}
	return fields
}

func TestCountryValidator(t *testing.T) {
	schema := jsonSchema(t, CountryValidator())

	required := requiredFields(t, schema)
	if !required["nome"] || !required["cod_pais"] {
		t.Errorf("expected nome and cod_pais to be required, got %v", required)
	}

	properties, ok := schema["properties"].(bson.M)
	if !ok {
		t.Fatal("schema has no properties document")
	}

	codPais, ok := properties["cod_pais"].(bson.M)
	if !ok {
		t.Fatal("cod_pais property is missing")
	}
	if codPais["pattern"] != "^[A-Z_]+$" {
		t.Errorf("unexpected cod_pais pattern: %v", codPais["pattern"])
	}

	//One array property per indicator series, each requiring ano and its value key
	for _, spec := range models.GetIndicatorSpecs() {
		series, ok := properties[spec.Field].(bson.M)
		if !ok {
			t.Errorf("missing indicator property %s", spec.Field)
			continue
		}
		if series["bsonType"] != "array" {
			t.Errorf("indicator %s is not an array", spec.Field)
		}
		items := series["items"].(bson.M)
		itemRequired := requiredFields(t, items)
		if !itemRequired["ano"] || !itemRequired[spec.ValueColumn] {
			t.Errorf("indicator %s items must require ano and %s", spec.Field, spec.ValueColumn)
		}
	}
}

func TestPlantValidator(t *testing.T) {
	schema := jsonSchema(t, PlantValidator())

	required := requiredFields(t, schema)
	for _, field := range []string{"nome_usina", "ceg", "cod_pais", "estado", "subsistema", "unidades_geradoras"} {
		if !required[field] {
			t.Errorf("expected %s to be required", field)
		}
	}

	properties := schema["properties"].(bson.M)

	state := properties["estado"].(bson.M)
	stateRequired := requiredFields(t, state)
	if !stateRequired["nome"] || !stateRequired["cod_estado"] {
		t.Errorf("estado must require nome and cod_estado, got %v", stateRequired)
	}

	units := properties["unidades_geradoras"].(bson.M)
	if units["bsonType"] != "array" {
		t.Error("unidades_geradoras must be an array")
	}
	items := units["items"].(bson.M)
	itemRequired := requiredFields(t, items)
	for _, field := range []string{"cod_equipamento", "potencia_efetiva_mw", "combustivel"} {
		if !itemRequired[field] {
			t.Errorf("expected generating unit field %s to be required", field)
		}
	}

	itemProperties := items["properties"].(bson.M)
	unitNumber := itemProperties["num_unidade"].(bson.M)
	types, ok := unitNumber["bsonType"].(bson.A)
	if !ok {
		t.Fatal("num_unidade bsonType should list multiple types")
	}
	nullable := false
	for _, bsonType := range types {
		if bsonType == "null" {
			nullable = true
		}
	}
	if !nullable {
		t.Error("num_unidade must be nullable")
	}
}
