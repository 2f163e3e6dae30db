package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/diillson/agent-pricing-factory/internal/domain/repository"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Variáveis de ambiente reconhecidas pela aplicação.
const (
	EnvAddr       = "AGENT_PRICING_ADDR"
	EnvReportDir  = "AGENT_PRICING_REPORT_DIR"
	EnvConfigFile = "AGENT_PRICING_CONFIG_FILE"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// decoders associa cada extensão ao formato e à função de decodificação.
var decoders = map[string]struct {
	format    string
	unmarshal func([]byte, interface{}) error
}{
	".toml": {"TOML", toml.Unmarshal},
	".yaml": {"YAML", yaml.Unmarshal},
	".yml":  {"YAML", yaml.Unmarshal},
	".json": {"JSON", json.Unmarshal},
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON,
// escolhido pela extensão, e valida os tipos de relatório declarados.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	decoder, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedConfigFormat, ext)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg types.Config
	if err := decoder.unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s file: %w", decoder.format, err)
	}

	for i, reportType := range cfg.ReportType {
		cfg.ReportType[i] = strings.ToLower(strings.TrimSpace(reportType))
		if !slices.Contains(types.ReportTypes, cfg.ReportType[i]) {
			return nil, fmt.Errorf("%s: %w: %s", filePath, types.ErrUnsupportedReportType, reportType)
		}
	}
	return &cfg, nil
}

// LoadEnvFile carrega variáveis de um arquivo .env sem sobrescrever as que
// já existem no ambiente. Um arquivo ausente não é erro.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}
	return nil
}

// EnvDefaults aplica ao CLIArgs os valores de ambiente para os campos que
// não foram informados na linha de comando.
func EnvDefaults(args *types.CLIArgs) {
	if args.ConfigFile == "" {
		args.ConfigFile = os.Getenv(EnvConfigFile)
	}
	if args.Dir == "" {
		args.Dir = os.Getenv(EnvReportDir)
	}
	if args.Addr == "" {
		args.Addr = os.Getenv(EnvAddr)
	}
}
