package queries

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"energyindicators-migration/config"
)

//Query is one predefined analytics query: the pipeline, the collection it runs
//against, and the column order of its result file.
type Query struct {
	Name       string
	Collection string
	Columns    []string
	Pipeline   mongo.Pipeline
}

//All returns the eight analytics queries in execution order
func All() []Query {
	return []Query{
		electricityAccessComparison(),
		topRenewableAccess(),
		hdiGenerationCorrelation(),
		ownersWithMultiplePlants(),
		plantsByFuel(),
		capacityByState(),
		renewableShareByState(),
		renewableCapacityVsInvestment(),
	}
}

func renewableFuels() bson.A {
	fuels := bson.A{}
	for _, fuel := range config.GetRenewableFuels() {
		fuels = append(fuels, fuel)
	}
	return fuels
}

//electricityAccessComparison compares Brazil's electricity access against the
//global average, per year
func electricityAccessComparison() Query {
	return Query{
		Name:       "1_comparacao_acesso_eletricidade",
		Collection: config.GetCountriesCollectionName(),
		Columns:    []string{"ano", "media_global", "acesso_brasil"},
		Pipeline: mongo.Pipeline{
			{{Key: "$unwind", Value: "$acesso_eletricidade"}},
			{{Key: "$group", Value: bson.M{
				"_id":          "$acesso_eletricidade.ano",
				"media_global": bson.M{"$avg": "$acesso_eletricidade.porcentagem"},
				"dados_brasil": bson.M{
					"$push": bson.M{
						"$cond": bson.A{
							bson.M{"$eq": bson.A{"$nome", config.GetBrazilCountryName()}},
							"$acesso_eletricidade.porcentagem",
							"$$REMOVE",
						},
					},
				},
			}}},
			{{Key: "$project", Value: bson.M{
				"_id":           0,
				"ano":           "$_id",
				"media_global":  bson.M{"$round": bson.A{"$media_global", 2}},
				"acesso_brasil": bson.M{"$arrayElemAt": bson.A{"$dados_brasil", 0}},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "ano", Value: 1}}}},
		},
	}
}

//topRenewableAccess ranks the ten countries with the highest renewable energy
//access share in 2020
func topRenewableAccess() Query {
	return Query{
		Name:       "2_top10_paises_energia_renovavel",
		Collection: config.GetCountriesCollectionName(),
		Columns:    []string{"pais", "ano", "pct_renovavel"},
		Pipeline: mongo.Pipeline{
			{{Key: "$match", Value: bson.M{
				"acesso_energia_renovavel": bson.M{"$exists": true, "$ne": bson.A{}},
			}}},
			{{Key: "$unwind", Value: "$acesso_energia_renovavel"}},
			{{Key: "$match", Value: bson.M{"acesso_energia_renovavel.ano": 2020}}},
			{{Key: "$sort", Value: bson.D{{Key: "acesso_energia_renovavel.porcentagem", Value: -1}}}},
			{{Key: "$limit", Value: 10}},
			{{Key: "$project", Value: bson.M{
				"_id":           0,
				"pais":          "$nome",
				"ano":           "$acesso_energia_renovavel.ano",
				"pct_renovavel": "$acesso_energia_renovavel.porcentagem",
			}}},
		},
	}
}

//hdiGenerationCorrelation computes the per-year Pearson correlation between HDI
//and renewable generation per capita. The whole computation stays in the pipeline:
//matching years are kept with $redact, covariance and standard deviations come
//from $reduce over the pushed value arrays.
func hdiGenerationCorrelation() Query {
	return Query{
		Name:       "3_correlacao_idh_geracao_renovavel",
		Collection: config.GetCountriesCollectionName(),
		Columns:    []string{"ano", "correlacao_idh_geracao"},
		Pipeline: mongo.Pipeline{
			{{Key: "$unwind", Value: "$idh"}},
			{{Key: "$unwind", Value: "$geracao_energia_renovavel_per_capita"}},
			{{Key: "$match", Value: bson.M{
				"idh.ano":                                  bson.M{"$exists": true},
				"geracao_energia_renovavel_per_capita.ano": bson.M{"$exists": true},
			}}},
			{{Key: "$redact", Value: bson.M{
				"$cond": bson.M{
					"if":   bson.M{"$eq": bson.A{"$idh.ano", "$geracao_energia_renovavel_per_capita.ano"}},
					"then": "$$DESCEND",
					"else": "$$PRUNE",
				},
			}}},
			{{Key: "$group", Value: bson.M{
				"_id":             "$idh.ano",
				"idh_valores":     bson.M{"$push": "$idh.indice"},
				"geracao_valores": bson.M{"$push": "$geracao_energia_renovavel_per_capita.geracao_watts"},
				"sum_idh":         bson.M{"$sum": "$idh.indice"},
				"sum_geracao":     bson.M{"$sum": "$geracao_energia_renovavel_per_capita.geracao_watts"},
				"count":           bson.M{"$sum": 1},
			}}},
			{{Key: "$project", Value: bson.M{
				"_id":             0,
				"ano":             "$_id",
				"idh_valores":     1,
				"geracao_valores": 1,
				"mean_idh":        bson.M{"$divide": bson.A{"$sum_idh", "$count"}},
				"mean_geracao":    bson.M{"$divide": bson.A{"$sum_geracao", "$count"}},
			}}},
			{{Key: "$addFields", Value: bson.M{
				"covariance": bson.M{
					"$reduce": bson.M{
						"input":        bson.M{"$zip": bson.M{"inputs": bson.A{"$idh_valores", "$geracao_valores"}}},
						"initialValue": 0,
						"in": bson.M{
							"$add": bson.A{
								"$$value",
								bson.M{
									"$multiply": bson.A{
										bson.M{"$subtract": bson.A{bson.M{"$arrayElemAt": bson.A{"$$this", 0}}, "$mean_idh"}},
										bson.M{"$subtract": bson.A{bson.M{"$arrayElemAt": bson.A{"$$this", 1}}, "$mean_geracao"}},
									},
								},
							},
						},
					},
				},
				"stdDevIdh": bson.M{
					"$sqrt": bson.M{
						"$reduce": bson.M{
							"input":        "$idh_valores",
							"initialValue": 0,
							"in": bson.M{
								"$add": bson.A{
									"$$value",
									bson.M{"$pow": bson.A{bson.M{"$subtract": bson.A{"$$this", "$mean_idh"}}, 2}},
								},
							},
						},
					},
				},
				"stdDevGeracao": bson.M{
					"$sqrt": bson.M{
						"$reduce": bson.M{
							"input":        "$geracao_valores",
							"initialValue": 0,
							"in": bson.M{
								"$add": bson.A{
									"$$value",
									bson.M{"$pow": bson.A{bson.M{"$subtract": bson.A{"$$this", "$mean_geracao"}}, 2}},
								},
							},
						},
					},
				},
			}}},
			{{Key: "$project", Value: bson.M{
				"ano": 1,
				"correlacao_idh_geracao": bson.M{
					"$cond": bson.A{
						bson.M{"$or": bson.A{
							bson.M{"$eq": bson.A{"$stdDevIdh", 0}},
							bson.M{"$eq": bson.A{"$stdDevGeracao", 0}},
						}},
						0,
						bson.M{"$divide": bson.A{"$covariance", bson.M{"$multiply": bson.A{"$stdDevIdh", "$stdDevGeracao"}}}},
					},
				},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "ano", Value: 1}}}},
		},
	}
}

//ownersWithMultiplePlants lists owner agents holding more than one plant
func ownersWithMultiplePlants() Query {
	return Query{
		Name:       "4_agentes_com_multiplas_usinas",
		Collection: config.GetPlantsCollectionName(),
		Columns:    []string{"agente", "total_usinas"},
		Pipeline: mongo.Pipeline{
			{{Key: "$group", Value: bson.M{
				"_id":          "$agente_proprietario",
				"total_usinas": bson.M{"$sum": 1},
			}}},
			{{Key: "$match", Value: bson.M{"total_usinas": bson.M{"$gt": 1}}}},
			{{Key: "$project", Value: bson.M{
				"_id":          0,
				"agente":       "$_id",
				"total_usinas": "$total_usinas",
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "total_usinas", Value: -1}}}},
		},
	}
}

//plantsByFuel counts distinct plants per fuel type
func plantsByFuel() Query {
	return Query{
		Name:       "5_usinas_por_combustivel",
		Collection: config.GetPlantsCollectionName(),
		Columns:    []string{"combustivel", "qtd_usinas"},
		Pipeline: mongo.Pipeline{
			{{Key: "$unwind", Value: "$unidades_geradoras"}},
			{{Key: "$group", Value: bson.M{
				"_id":              "$unidades_geradoras.combustivel",
				"usinas_distintas": bson.M{"$addToSet": "$_id"},
			}}},
			{{Key: "$project", Value: bson.M{
				"_id":         0,
				"combustivel": "$_id",
				"qtd_usinas":  bson.M{"$size": "$usinas_distintas"},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "qtd_usinas", Value: -1}}}},
		},
	}
}

//capacityByState sums the effective generation capacity per state
func capacityByState() Query {
	return Query{
		Name:       "6_capacidade_por_estado",
		Collection: config.GetPlantsCollectionName(),
		Columns:    []string{"estado", "capacidade_total_mw"},
		Pipeline: mongo.Pipeline{
			{{Key: "$unwind", Value: "$unidades_geradoras"}},
			{{Key: "$group", Value: bson.M{
				"_id":                 "$estado.nome",
				"capacidade_total_mw": bson.M{"$sum": "$unidades_geradoras.potencia_efetiva_mw"},
			}}},
			{{Key: "$project", Value: bson.M{
				"_id":                 0,
				"estado":              "$_id",
				"capacidade_total_mw": bson.M{"$round": bson.A{"$capacidade_total_mw", 2}},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "capacidade_total_mw", Value: -1}}}},
		},
	}
}

//renewableShareByState computes the share of renewable plants per state by
//merging two $facet branches: plant totals and renewable plant counts
func renewableShareByState() Query {
	return Query{
		Name:       "7_percentual_usinas_renovaveis_estado",
		Collection: config.GetPlantsCollectionName(),
		Columns:    []string{"estado", "total_usinas", "usinas_renovaveis", "perc_renovaveis"},
		Pipeline: mongo.Pipeline{
			{{Key: "$facet", Value: bson.M{
				"total_por_estado": bson.A{
					bson.D{{Key: "$group", Value: bson.M{
						"_id":   "$estado.nome",
						"total": bson.M{"$sum": 1},
					}}},
				},
				"renovaveis_por_estado": bson.A{
					bson.D{{Key: "$match", Value: bson.M{
						"unidades_geradoras.combustivel": bson.M{"$in": renewableFuels()},
					}}},
					bson.D{{Key: "$group", Value: bson.M{
						"_id":        "$estado.nome",
						"renovaveis": bson.M{"$sum": 1},
					}}},
				},
			}}},
			{{Key: "$project", Value: bson.M{
				"all_data": bson.M{"$concatArrays": bson.A{"$total_por_estado", "$renovaveis_por_estado"}},
			}}},
			{{Key: "$unwind", Value: "$all_data"}},
			{{Key: "$group", Value: bson.M{
				"_id":        "$all_data._id",
				"total":      bson.M{"$sum": "$all_data.total"},
				"renovaveis": bson.M{"$sum": "$all_data.renovaveis"},
			}}},
			{{Key: "$project", Value: bson.M{
				"_id":               0,
				"estado":            "$_id",
				"total_usinas":      "$total",
				"usinas_renovaveis": bson.M{"$ifNull": bson.A{"$renovaveis", 0}},
			}}},
			{{Key: "$project", Value: bson.M{
				"estado":            1,
				"total_usinas":      1,
				"usinas_renovaveis": 1,
				"perc_renovaveis": bson.M{
					"$cond": bson.A{
						bson.M{"$eq": bson.A{"$total_usinas", 0}},
						0,
						bson.M{"$round": bson.A{
							bson.M{"$multiply": bson.A{
								bson.M{"$divide": bson.A{"$usinas_renovaveis", "$total_usinas"}},
								100,
							}},
							2,
						}},
					},
				},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "perc_renovaveis", Value: -1}}}},
		},
	}
}

//renewableCapacityVsInvestment relates per-state renewable capacity to the
//national total and joins in Brazil's clean energy investment sum via $lookup
func renewableCapacityVsInvestment() Query {
	return Query{
		Name:       "8_analise_capacidade_vs_investimento",
		Collection: config.GetPlantsCollectionName(),
		Columns:    []string{"estado", "capacidade_renovavel_mw", "percentual_do_total_nacional", "investimento_nacional_total_usd"},
		Pipeline: mongo.Pipeline{
			{{Key: "$facet", Value: bson.M{
				"capacidade_por_estado": bson.A{
					bson.D{{Key: "$match", Value: bson.M{
						"unidades_geradoras.combustivel": bson.M{"$in": renewableFuels()},
					}}},
					bson.D{{Key: "$unwind", Value: "$unidades_geradoras"}},
					bson.D{{Key: "$match", Value: bson.M{
						"unidades_geradoras.combustivel": bson.M{"$in": renewableFuels()},
					}}},
					bson.D{{Key: "$group", Value: bson.M{
						"_id":                     "$estado.nome",
						"capacidade_renovavel_mw": bson.M{"$sum": "$unidades_geradoras.potencia_efetiva_mw"},
					}}},
				},
				"total_nacional": bson.A{
					bson.D{{Key: "$match", Value: bson.M{
						"unidades_geradoras.combustivel": bson.M{"$in": renewableFuels()},
					}}},
					bson.D{{Key: "$unwind", Value: "$unidades_geradoras"}},
					bson.D{{Key: "$match", Value: bson.M{
						"unidades_geradoras.combustivel": bson.M{"$in": renewableFuels()},
					}}},
					bson.D{{Key: "$group", Value: bson.M{
						"_id":      nil,
						"total_mw": bson.M{"$sum": "$unidades_geradoras.potencia_efetiva_mw"},
					}}},
				},
			}}},
			{{Key: "$unwind", Value: "$total_nacional"}},
			{{Key: "$unwind", Value: "$capacidade_por_estado"}},
			{{Key: "$lookup", Value: bson.M{
				"from": config.GetCountriesCollectionName(),
				"pipeline": bson.A{
					bson.D{{Key: "$match", Value: bson.M{"nome": config.GetBrazilCountryName()}}},
				},
				"as": "dados_brasil",
			}}},
			{{Key: "$unwind", Value: "$dados_brasil"}},
			{{Key: "$project", Value: bson.M{
				"_id":                     0,
				"estado":                  "$capacidade_por_estado._id",
				"capacidade_renovavel_mw": bson.M{"$round": bson.A{"$capacidade_por_estado.capacidade_renovavel_mw", 2}},
				"percentual_do_total_nacional": bson.M{
					"$cond": bson.A{
						bson.M{"$eq": bson.A{"$total_nacional.total_mw", 0}},
						0,
						bson.M{"$round": bson.A{
							bson.M{"$multiply": bson.A{
								bson.M{"$divide": bson.A{"$capacidade_por_estado.capacidade_renovavel_mw", "$total_nacional.total_mw"}},
								100,
							}},
							2,
						}},
					},
				},
				"investimento_nacional_total_usd": bson.M{"$sum": "$dados_brasil.investimento_energia_limpa.valor_dolar"},
			}}},
			{{Key: "$sort", Value: bson.D{{Key: "capacidade_renovavel_mw", Value: -1}}}},
		},
	}
}
