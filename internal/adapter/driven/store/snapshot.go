package store

import (
	"errors"
	"fmt"
	"math"

	"github.com/diillson/agent-pricing-factory/internal/domain/entity"
	"github.com/diillson/agent-pricing-factory/internal/shared/types"
)

// Snapshot valida os valores atuais e monta o entity.Parameters que o
// motor de cálculo consome. Todas as violações são reportadas juntas.
func (s *ParameterStoreImpl) Snapshot() (entity.Parameters, error) {
	r := &reader{store: s}

	params := entity.Parameters{
		Cost: entity.CostProfile{
			IdentitySetup:             r.number("tco_one_time_identity"),
			NetworkingSetup:           r.number("tco_one_time_vpc"),
			ObservabilitySetup:        r.number("tco_one_time_observability"),
			SecuritySetup:             r.number("tco_one_time_security"),
			MinAgents:                 r.integer("tco_min_agents"),
			AvgTokensPerInteraction:   r.number("tco_avg_tokens_interaction"),
			InteractionsPerAgentMonth: r.number("tco_interactions_per_agent_month"),
			TokenPricePer1K:           r.number("tco_token_price_per_1k"),
			RuntimeCostPerCall:        r.number("tco_agent_runtime_cost_per_call"),
			RecurringLicenseMonthly:   r.number("tco_recurring_license_monthly"),
			VectorDBMonthly:           r.number("tco_vector_db_monthly"),
			EmbeddingMonthly:          r.number("tco_embedding_monthly"),
			LoggingMonthly:            r.number("tco_logging_monthly"),
			APIGatewayMonthly:         r.number("tco_api_gateway_monthly"),
			CICDMonthly:               r.number("tco_cicd_monthly"),
			RPALicense:                r.number("tco_one_time_rpa_license"),
			OrchestrationLicense:      r.number("tco_one_time_orch_license"),
			AnalyticsLicense:          r.number("tco_one_time_analytics_license"),
			OtherLicense:              r.number("tco_one_time_other_license"),
		},
		Tiers: make(map[entity.Tier]entity.TierParameters, len(entity.Tiers)),
		Simulation: entity.SimulationParameters{
			TotalHours:           r.number("sim_hours"),
			AgentRatioPct:        r.number("sim_agent_ratio_pct"),
			AgentCMPct:           r.number("sim_agent_cm_pct"),
			AgentTrioPct:         r.number("sim_agent_trio_pct"),
			HumanProdHrsPerMonth: r.number("sim_prod_human"),
			HumanBlendCostHr:     r.number("sim_human_blend_cost_hr"),
			HumanCMPct:           r.number("sim_human_cm_pct"),
			HumanTrioPct:         r.number("sim_human_trio_pct"),
			HumanInLoopFraction:  r.number("sim_human_inloop_pct_global"),
		},
		Efficiency: entity.EfficiencyParameters{
			Cases:        r.number("ae_cases"),
			FTEHoursYear: r.number("ae_fte_hours"),
			HumanCostHr:  r.number("ae_human_cost_hr"),
			ModeMinutes:  make(map[entity.Mode]float64, len(entity.Modes)),
			MarginPct:    r.number("ae_margin_pct"),
		},
		Model1: entity.Model1Parameters{
			CurrentFTEs:       r.number("m1_cur_ftes"),
			HumanCostHr:       r.number("m1_human_cost_hr"),
			HumanProdHrsMonth: r.number("m1_human_prod_hrs"),
			AgentMarginPct:    r.number("m1_agent_margin"),
			AgentProdHrsMonth: r.number("m1_agent_prod_hrs"),
		},
		Model2: entity.Model2Parameters{
			CasesPerYear:    r.number("m2_cases"),
			BaseMinutesCase: r.number("m2_base_time"),
			NewMinutesCase:  r.number("m2_new_time"),
			HumanCostHr:     r.number("m2_human_cost_hr"),
			FTEHoursYear:    r.number("m2_fte_hours"),
		},
		Model4: entity.Model4Parameters{
			TotalHours:         r.number("m4_total_hours"),
			AgentCoveragePct:   r.number("m4_agent_cov"),
			BurstPct:           r.number("m4_burst_pct"),
			HumanCostHr:        r.number("m4_human_cost_hr"),
			AgentPriceOverride: r.number("m4_agent_price_override"),
			AgentProdHrsMonth:  r.number("m4_agent_prod_hrs"),
		},
	}

	for _, t := range entity.Tiers {
		k := t.Key()
		params.Tiers[t] = entity.TierParameters{
			BuildHours:         r.number("tco_build_hours_" + k),
			HourlyRate:         r.number("tco_hourly_" + k),
			MaintenancePctYear: r.number("tco_maint_pct_" + k),
			EnhancementPctYear: r.number("tco_enh_pct_" + k),
			MaintPerSlab:       r.number("tco_maint_per_slab_" + k),
			MaintSlabSize:      r.integer("tco_maint_slab_" + k),
			AgentHoursPerMonth: r.number("tco_agent_hours_" + k),
			HumanInLoopPct:     r.number("tco_human_pct_" + k),
			HumanHourlyRate:    r.number("tco_human_rate_" + k),
			Count:              r.integer("sim_count_" + k),
			ProdHrsPerMonth:    r.number("sim_agent_prodhrs_" + k),
		}
	}
	for _, m := range entity.Modes {
		params.Efficiency.ModeMinutes[m] = r.number("ae_time_" + string(m))
	}

	if len(r.errs) > 0 {
		return entity.Parameters{}, fmt.Errorf("%w: %w", types.ErrInvalidParameters, errors.Join(r.errs...))
	}
	return params, nil
}

// maxCount limita contagens e slabs ao que cabe em qualquer int.
const maxCount = math.MaxInt32

// reader lê chaves do store acumulando violações em vez de parar na primeira.
type reader struct {
	store *ParameterStoreImpl
	errs  []error
}

func (r *reader) number(key string) float64 {
	raw := r.store.resolve(key)
	f, ok := raw.(float64)
	if !ok {
		r.errs = append(r.errs, fmt.Errorf("%s: %q is not a number", key, raw))
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		r.errs = append(r.errs, fmt.Errorf("%s: value is not finite", key))
		return 0
	}
	if err := check(index[key].kind, f); err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %v %w", key, f, err))
	}
	return f
}

// integer só converte valores dentro do intervalo de contagem; fora dele
// a violação já foi registrada por number e o resultado é 0.
func (r *reader) integer(key string) int {
	f := math.Trunc(r.number(key))
	if f < 0 || f > maxCount {
		return 0
	}
	return int(f)
}

func check(k kind, f float64) error {
	switch k {
	case kindPercent:
		if f < 0 || f > 100 {
			return errors.New("is outside [0,100]")
		}
	case kindFraction:
		if f < 0 || f > 1 {
			return errors.New("is outside [0,1]")
		}
	case kindPositive:
		if f <= 0 {
			return errors.New("must be greater than 0")
		}
	case kindCount, kindSlab:
		if f != math.Trunc(f) {
			return errors.New("must be a whole number")
		}
		if f > maxCount {
			return fmt.Errorf("must not exceed %d", maxCount)
		}
		if k == kindSlab && f < 1 {
			return errors.New("must be at least 1")
		}
		if f < 0 {
			return errors.New("must not be negative")
		}
	default:
		if f < 0 {
			return errors.New("must not be negative")
		}
	}
	return nil
}
