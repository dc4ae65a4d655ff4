package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// Loader carrega e limpa arquivos CSV do diretório de dados
type Loader interface {
	// Load lê e limpa um arquivo, retornando os registros, o relatório de
	// qualidade e o checksum do arquivo
	Load(path string) ([]*domain.AdRecord, *domain.QualityReport, string, error)

	// ListFiles lista os arquivos CSV disponíveis no diretório de dados
	ListFiles() ([]string, error)

	// Resolve monta o caminho absoluto de um arquivo dentro do diretório de
	// dados, rejeitando tentativas de escapar dele
	Resolve(filename string) (string, error)
}

type loader struct {
	dataDir string
	cleaner *Cleaner
}

func NewLoader(dataDir string) Loader {
	return &loader{
		dataDir: dataDir,
		cleaner: NewCleaner(),
	}
}

func (l *loader) Load(path string) ([]*domain.AdRecord, *domain.QualityReport, string, error) {
	logrus.WithField("path", path).Info("Carregando arquivo de dataset")

	rows, checksum, err := ReadFile(path)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "erro ao carregar dataset")
	}

	records, quality := l.cleaner.Clean(rows)

	logrus.WithFields(logrus.Fields{
		"path":               path,
		"rows_read":          quality.RowsRead,
		"rows_kept":          quality.RowsKept,
		"duplicates_removed": quality.DuplicatesRemoved,
		"negatives_clamped":  quality.NegativesClamped,
		"missing_filled":     quality.MissingFilled,
		"invalid_dates":      quality.InvalidDates,
	}).Info("Limpeza do dataset concluída")

	if quality.NegativeDurations > 0 {
		logrus.Warnf("%d linhas com duração de campanha negativa encontradas", quality.NegativeDurations)
	}

	return records, quality, checksum, nil
}

func (l *loader) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(l.dataDir)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar o diretório de dados %s", l.dataDir)
	}

	files := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

func (l *loader) Resolve(filename string) (string, error) {
	if filename == "" {
		return "", errors.New("nome do arquivo é obrigatório")
	}

	if filepath.Base(filename) != filename {
		return "", errors.Errorf("nome de arquivo inválido: %s", filename)
	}

	return filepath.Join(l.dataDir, filename), nil
}
