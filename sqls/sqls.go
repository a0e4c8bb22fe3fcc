package sqls

import "fmt"

//GetSQLSelectCountries returns the SQL statement used to retrieve the countries
func GetSQLSelectCountries() string {
	return `SELECT id_pais, code, nome FROM Pais ORDER BY id_pais`
}

//GetSQLSelectIndicator returns the SQL statement used to retrieve one indicator series.
//The table and value column come from the static indicator mapping, never from user input.
func GetSQLSelectIndicator(tableName, valueColumn string) string {
	return fmt.Sprintf(`SELECT id_pais, ano, %s FROM %s ORDER BY id_pais, ano`, valueColumn, tableName)
}

//GetSQLSelectPlants returns the SQL statement used to retrieve the joined power plant rows
func GetSQLSelectPlants() string {

	//Create the main body of the SQL statement
	sql := `
    SELECT
        u.id_usina,
        u.nome AS nome_usina,
        u.ceg,
        u.tipo AS tipo_usina,
        u.modalidade_operacao,
        ap.nome AS agente_proprietario,
        e.nome AS estado_nome,
        e.cod_estado,
        s.nome AS subsistema_nome,
        s.cod_subsistema,
        p.code AS cod_pais
    FROM Usina u
    LEFT JOIN Agente_Proprietario ap ON u.id_agente_proprietario = ap.id_agente
    LEFT JOIN Estado e ON u.id_estado = e.id_estado
    LEFT JOIN Subsistema_estado se ON e.id_estado = se.id_estado
    LEFT JOIN Subsistema s ON se.id_subsistema = s.id_subsistema
    LEFT JOIN Pais p ON s.id_pais = p.id_pais
    WHERE p.code = $1`

	//Set the order of the SQL statement
	sqlOrder := ` ORDER BY u.id_usina`

	return sql + sqlOrder
}

//GetSQLSelectGeneratingUnits returns the SQL statement used to retrieve the generating units of one plant
func GetSQLSelectGeneratingUnits() string {
	return `
    SELECT
        id_unidade,
        cod_equipamento,
        nome_unidade,
        num_unidade,
        data_entrada_teste,
        data_entrada_operacao,
        data_desativacao,
        potencia_efetiva,
        combustivel,
        id_usina
    FROM Unidade_Geradora
    WHERE id_usina = $1
    ORDER BY id_unidade`
}

//GetSQLSelectAllGeneratingUnits returns the SQL statement used to retrieve every generating unit
func GetSQLSelectAllGeneratingUnits() string {
	return `
    SELECT
        id_unidade,
        cod_equipamento,
        nome_unidade,
        num_unidade,
        data_entrada_teste,
        data_entrada_operacao,
        data_desativacao,
        potencia_efetiva,
        combustivel,
        id_usina
    FROM Unidade_Geradora
    ORDER BY id_usina, id_unidade`
}
