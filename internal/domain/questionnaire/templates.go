package questionnaire

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
)

//go:embed templates.yaml
var templatesYAML []byte

// Question is a single template question delivered to a supplier.
type Question struct {
	Key  string `yaml:"key" json:"key"`
	Text string `yaml:"text" json:"text"`
}

type templateTier struct {
	Tier      entities.QuestionnaireType `yaml:"tier"`
	Extends   entities.QuestionnaireType `yaml:"extends"`
	Questions []Question                 `yaml:"questions"`
}

type templateFile struct {
	Tiers []templateTier `yaml:"tiers"`
}

var (
	templateOnce sync.Once
	templateErr  error
	templates    map[entities.QuestionnaireType][]Question
)

func loadTemplates() {
	var file templateFile
	if templateErr = yaml.Unmarshal(templatesYAML, &file); templateErr != nil {
		templateErr = fmt.Errorf("parsing questionnaire templates: %w", templateErr)
		return
	}
	byTier := make(map[entities.QuestionnaireType]templateTier, len(file.Tiers))
	for _, t := range file.Tiers {
		byTier[t.Tier] = t
	}
	templates = make(map[entities.QuestionnaireType][]Question, len(file.Tiers))
	for _, t := range file.Tiers {
		var resolved []Question
		// Walk the extends chain so each tier includes its parents' questions.
		seen := map[entities.QuestionnaireType]bool{}
		for cur, ok := t, true; ok; cur, ok = byTier[cur.Extends] {
			if seen[cur.Tier] {
				templateErr = fmt.Errorf("questionnaire template cycle at tier %s", cur.Tier)
				return
			}
			seen[cur.Tier] = true
			resolved = append(append([]Question(nil), cur.Questions...), resolved...)
			if cur.Extends == "" {
				break
			}
		}
		templates[t.Tier] = resolved
	}
}

// Template returns the full question list for a tier, parents included.
func Template(tier entities.QuestionnaireType) ([]Question, error) {
	templateOnce.Do(loadTemplates)
	if templateErr != nil {
		return nil, templateErr
	}
	qs, ok := templates[tier]
	if !ok {
		return nil, fmt.Errorf("no questionnaire template for tier %s", tier)
	}
	return qs, nil
}

// TemplateKeys returns just the question keys for a tier, in delivery order.
func TemplateKeys(tier entities.QuestionnaireType) ([]string, error) {
	qs, err := Template(tier)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(qs))
	for i, q := range qs {
		keys[i] = q.Key
	}
	return keys, nil
}
