package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/internal/domain/repository"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
)

// ParameterStoreImpl implementa o ParameterStore em memória. Guarda apenas
// os valores definidos explicitamente; o restante vem do catálogo.
// Não é seguro para uso concorrente: cada requisição trabalha sobre um Clone.
type ParameterStoreImpl struct {
	values map[string]interface{}
}

// NewParameterStore cria um store contendo apenas os valores padrão.
func NewParameterStore() repository.ParameterStore {
	return &ParameterStoreImpl{values: make(map[string]interface{})}
}

// Get retorna o valor atual da chave, explícito ou padrão.
func (s *ParameterStoreImpl) Get(key string) (interface{}, bool) {
	if _, ok := index[key]; !ok {
		return nil, false
	}
	return s.resolve(key), true
}

// Set define o valor de uma chave do catálogo. Um valor nil restaura o padrão.
func (s *ParameterStoreImpl) Set(key string, value interface{}) error {
	if _, ok := index[key]; !ok {
		return fmt.Errorf("%w: %s", types.ErrUnknownParameter, key)
	}
	if value == nil {
		delete(s.values, key)
		return nil
	}

	v, err := normalise(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrInvalidParameters, key, err)
	}
	s.values[key] = v
	return nil
}

// Keys retorna todas as chaves do catálogo em ordem alfabética.
func (s *ParameterStoreImpl) Keys() []string {
	keys := make([]string, 0, len(definitions))
	for _, d := range definitions {
		keys = append(keys, d.key)
	}
	sort.Strings(keys)
	return keys
}

// Describe lista as chaves do namespace na ordem do catálogo.
func (s *ParameterStoreImpl) Describe(namespace string) []entity.ParameterInfo {
	infos := make([]entity.ParameterInfo, 0, len(definitions))
	for _, d := range definitions {
		if !strings.HasPrefix(d.key, namespace) {
			continue
		}
		infos = append(infos, entity.ParameterInfo{
			Key:         d.key,
			Namespace:   namespaceOf(d.key),
			Default:     defaultOf(d.key),
			Value:       s.resolve(d.key),
			Description: d.description,
		})
	}
	return infos
}

// Export retorna os valores atuais de todas as chaves do namespace.
func (s *ParameterStoreImpl) Export(namespace string) map[string]interface{} {
	out := make(map[string]interface{})
	for _, d := range definitions {
		if strings.HasPrefix(d.key, namespace) {
			out[d.key] = s.resolve(d.key)
		}
	}
	return out
}

// Import aplica um documento JSON plano. Chaves fora do namespace são
// ignoradas. O documento é validado por inteiro antes de qualquer escrita,
// então um erro deixa o store inalterado.
func (s *ParameterStoreImpl) Import(data []byte, namespace string) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrMalformedProfile, err)
	}
	if raw == nil {
		return 0, fmt.Errorf("%w: expected a JSON object", types.ErrMalformedProfile)
	}

	staged := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		if !strings.HasPrefix(key, namespace) {
			continue
		}
		if _, ok := index[key]; !ok {
			return 0, fmt.Errorf("%w: %s", types.ErrUnknownParameter, key)
		}
		if value == nil {
			staged[key] = nil
			continue
		}
		v, err := normalise(value)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", types.ErrMalformedProfile, key, err)
		}
		staged[key] = v
	}

	for key, value := range staged {
		if value == nil {
			delete(s.values, key)
			continue
		}
		s.values[key] = value
	}
	return len(staged), nil
}

// Clone retorna uma cópia independente do store.
func (s *ParameterStoreImpl) Clone() repository.ParameterStore {
	values := make(map[string]interface{}, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}
	return &ParameterStoreImpl{values: values}
}

func (s *ParameterStoreImpl) resolve(key string) interface{} {
	if v, ok := s.values[key]; ok {
		return v
	}
	if d := index[key]; d.fallback != "" {
		return s.resolve(d.fallback)
	}
	return index[key].value
}

func defaultOf(key string) float64 {
	d := index[key]
	if d.fallback != "" {
		return defaultOf(d.fallback)
	}
	return d.value
}

// normalise reduces any accepted input to float64 or string. Numeric
// strings become numbers.
func normalise(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", value)
	}
}
