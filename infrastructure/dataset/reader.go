package dataset

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// RawRow é uma linha do CSV ainda não limpa, indexada pelo nome da coluna
type RawRow map[string]string

// Colunas reconhecidas do dataset. xyz_campaign_id é o nome usado na
// exportação original do Kaggle; campaign_id é o nome canônico.
var columnAliases = map[string]string{
	"ad_id":               "ad_id",
	"campaign_id":         "campaign_id",
	"xyz_campaign_id":     "campaign_id",
	"fb_campaign_id":      "fb_campaign_id",
	"age":                 "age",
	"gender":              "gender",
	"interest":            "interest",
	"impressions":         "impressions",
	"clicks":              "clicks",
	"spent":               "spent",
	"total_conversion":    "total_conversion",
	"approved_conversion": "approved_conversion",
	"reporting_start":     "reporting_start",
	"reporting_end":       "reporting_end",
}

// ReadFile lê um arquivo CSV de campanhas e retorna as linhas brutas e o
// checksum SHA-256 do conteúdo, usado para detectar reimportações
func ReadFile(path string) ([]RawRow, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "erro ao abrir o arquivo %s", path)
	}
	defer file.Close()

	hasher := sha256.New()
	reader := csv.NewReader(io.TeeReader(file, hasher))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao ler o cabeçalho do CSV")
	}

	// Mapear posição -> nome canônico da coluna; colunas desconhecidas são ignoradas
	columns := make(map[int]string, len(header))
	for i, name := range header {
		canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]
		if ok {
			columns[i] = canonical
		}
	}

	if len(columns) == 0 {
		return nil, "", errors.New("nenhuma coluna reconhecida no cabeçalho do CSV")
	}

	rows := make([]RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", errors.Wrap(err, "erro ao ler linha do CSV")
		}

		row := make(RawRow, len(columns))
		for i, canonical := range columns {
			if i < len(record) {
				row[canonical] = record[i]
			}
		}
		rows = append(rows, row)
	}

	checksum := hex.EncodeToString(hasher.Sum(nil))

	return rows, checksum, nil
}
