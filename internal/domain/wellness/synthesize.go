package wellness

import "fmt"

// Recommendation is a plain output value handed back to the caller.
// Recommendations are never persisted.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Template holds the user-facing text for one recommendation category.
type Template struct {
	Title       string
	Description string
}

// TemplateTable maps categories to their recommendation text. The table is
// loaded once at startup and read-only afterwards.
type TemplateTable map[Category]Template

// DefaultTemplates returns the standard recommendation texts.
func DefaultTemplates() TemplateTable {
	return TemplateTable{
		CategoryOnboarding: {
			Title: "Bem-vindo ao acompanhamento de bem-estar",
			Description: "Você ainda não registrou nenhuma autoavaliação. " +
				"Registre como está seu humor, estresse e carga de trabalho para " +
				"receber recomendações personalizadas.",
		},
		CategoryStressManagement: {
			Title: "Gerencie seu estresse",
			Description: "Seu nível médio de estresse está elevado. Experimente " +
				"pausas curtas ao longo do dia, técnicas de respiração e converse " +
				"com sua liderança sobre prioridades.",
		},
		CategoryWorkload: {
			Title: "Revise sua carga de trabalho",
			Description: "Sua carga de trabalho média está acima do saudável. " +
				"Avalie redistribuir tarefas, negociar prazos e sinalizar " +
				"sobrecarga ao seu time.",
		},
		CategoryWorkLifeBalance: {
			Title: "Equilibre trabalho e vida pessoal",
			Description: "Seu humor médio está baixo. Reserve tempo para descanso " +
				"e atividades fora do trabalho, e procure apoio se o desânimo " +
				"persistir.",
		},
	}
}

// Synthesize maps matched categories to Recommendations, one per category,
// preserving the order produced by the Engine.
//
// A category with no registered template is a configuration error: the whole
// call fails with an error naming the missing category, and no partial list
// is returned. Silently dropping the category would hide a rule/template
// mismatch behind seemingly valid output.
func Synthesize(categories []Category, templates TemplateTable) ([]Recommendation, error) {
	recommendations := make([]Recommendation, 0, len(categories))
	for _, c := range categories {
		tmpl, ok := templates[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, c)
		}
		recommendations = append(recommendations, Recommendation{
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Category:    c,
		})
	}
	return recommendations, nil
}
