package wellness

import (
	"fmt"

	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
)

// NoDataSummaryPhrase is the fixed marker included in the summary of a month
// without any assessments. An existing consumer matches on this exact
// substring to distinguish "no data" from a legitimately low-signal month,
// so the text must not change.
const NoDataSummaryPhrase = "Nenhum dado de autoavaliação"

// MonthlyReport is the organization-wide report for one calendar month.
// Averages are 0 when the month has no data; KeyFindings and
// SuggestedActions are empty in that case, never nil in JSON terms.
type MonthlyReport struct {
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	AverageMood      float64  `json:"average_mood"`
	AverageStress    float64  `json:"average_stress"`
	AverageWorkload  float64  `json:"average_workload"`
	Summary          string   `json:"summary"`
	KeyFindings      []string `json:"key_findings"`
	SuggestedActions []string `json:"suggested_actions"`
}

// Sentences holds the report-scoped wording for one category: a finding
// sentence and a suggested-action sentence.
type Sentences struct {
	Finding string
	Action  string
}

// SentenceTable maps categories to their report sentences. Like the
// recommendation templates, it is loaded once and read-only afterwards.
type SentenceTable map[Category]Sentences

// DefaultSentences returns the standard report wording. The onboarding
// category never surfaces in a monthly report (a month with data always has
// history), so it carries no entry here.
func DefaultSentences() SentenceTable {
	return SentenceTable{
		CategoryStressManagement: {
			Finding: "O nível médio de estresse da equipe ficou elevado neste mês.",
			Action:  "Promover práticas de gestão de estresse, como pausas programadas e acesso a apoio psicológico.",
		},
		CategoryWorkload: {
			Finding: "A carga de trabalho média ultrapassou o limite considerado saudável.",
			Action:  "Rever a distribuição de tarefas e os prazos dos projetos em andamento.",
		},
		CategoryWorkLifeBalance: {
			Finding: "O humor médio da equipe ficou abaixo do esperado.",
			Action:  "Incentivar o equilíbrio entre vida pessoal e profissional e momentos de descompressão.",
		},
	}
}

// Composer builds monthly reports. It shares the rule engine with the
// per-user recommendation path so both consume the same thresholds.
type Composer struct {
	engine    *Engine
	sentences SentenceTable
}

// NewComposer creates a Composer with the given engine and sentence table.
func NewComposer(engine *Engine, sentences SentenceTable) *Composer {
	return &Composer{engine: engine, sentences: sentences}
}

// ComposeMonthly derives the report for one calendar month from the supplied
// records. The caller is responsible for restricting the records to
// [startOfMonth, startOfNextMonth) in UTC; the composer does not re-filter.
//
// Year and month bounds are rechecked here even though callers validate
// them first, because an out-of-range period would silently label the
// report wrong.
func (c *Composer) ComposeMonthly(
	year, month int,
	records []domain.Assessment,
) (*MonthlyReport, error) {
	if year < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	window, err := Aggregate(records)
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{
		Year:             year,
		Month:            month,
		AverageMood:      window.MeanMood,
		AverageStress:    window.MeanStress,
		AverageWorkload:  window.MeanWorkload,
		KeyFindings:      []string{},
		SuggestedActions: []string{},
	}

	if !window.HasData() {
		report.Summary = fmt.Sprintf(
			"%s foi registrado em %02d/%d.", NoDataSummaryPhrase, month, year)
		return report, nil
	}

	report.Summary = fmt.Sprintf(
		"Em %02d/%d foram registradas %d autoavaliações. "+
			"Médias do período: humor %.2f, estresse %.2f e carga de trabalho %.2f.",
		month, year, window.Count,
		window.MeanMood, window.MeanStress, window.MeanWorkload)

	for _, category := range c.engine.Evaluate(window, true) {
		s, ok := c.sentences[category]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingSentence, category)
		}
		report.KeyFindings = append(report.KeyFindings, s.Finding)
		report.SuggestedActions = append(report.SuggestedActions, s.Action)
	}

	return report, nil
}
