package quiz

import (
	"strings"

	"art-atlas/internal/domain"
)

const titlePlaceholder = "{title}"

// template is a prewritten question whose prompt may mention the item title.
type template struct {
	prompt      string
	correct     string
	distractors []string
}

func (t template) render(title string) (prompt, correct string, distractors []string) {
	return strings.ReplaceAll(t.prompt, titlePlaceholder, title), t.correct, append([]string(nil), t.distractors...)
}

var templateBank = map[domain.QuestionCategory][]template{
	domain.CategoryPhilosophy: {
		{
			prompt:  `According to African aesthetic philosophy, what is the primary purpose of art like "{title}"?`,
			correct: "To serve functional, spiritual, and social purposes in the community",
			distractors: []string{
				"To create realistic representations of nature",
				"To display individual artistic expression",
				"To decorate spaces for visual pleasure only",
			},
		},
		{
			prompt:  `In African art philosophy, how is beauty typically defined in works like "{title}"?`,
			correct: "Beauty comes from functionality, symbolism, and cultural meaning",
			distractors: []string{
				"Beauty is based on realistic proportions and naturalism",
				"Beauty is purely subjective and individual",
				"Beauty follows European classical standards",
			},
		},
		{
			prompt:  `What role does rhythm play in African aesthetic philosophy as seen in "{title}"?`,
			correct: "Rhythm creates visual harmony and reflects life's natural patterns",
			distractors: []string{
				"Rhythm is used only in musical performances",
				"Rhythm disrupts the visual composition",
				"Rhythm is considered unimportant in visual arts",
			},
		},
	},
	domain.CategoryAesthetics: {
		{
			prompt:  `What aesthetic principle is most important in African art like "{title}"?`,
			correct: "The integration of form, function, and meaning",
			distractors: []string{
				"Perfect anatomical accuracy",
				"Abstract expressionism",
				"Photographic realism",
			},
		},
		{
			prompt:  `How do African artists typically approach proportion in works like "{title}"?`,
			correct: "Proportions emphasize spiritual and symbolic importance",
			distractors: []string{
				"Proportions must follow mathematical ratios",
				"Proportions should be anatomically correct",
				"Proportions are randomly determined",
			},
		},
		{
			prompt:  "What makes African art aesthetically successful according to traditional criteria?",
			correct: "When it effectively communicates cultural values and serves its intended purpose",
			distractors: []string{
				"When it looks exactly like the subject",
				"When it follows Western art standards",
				"When it uses expensive materials",
			},
		},
	},
	domain.CategoryCulturalContext: {
		{
			prompt:  `What is the typical social function of African art like "{title}"?`,
			correct: "To strengthen community bonds and transmit cultural knowledge",
			distractors: []string{
				"To entertain wealthy patrons",
				"To compete with other artists",
				"To sell in international markets",
			},
		},
		{
			prompt:  `How does African art like "{title}" relate to daily life?`,
			correct: "It is integrated into ceremonies, rituals, and everyday activities",
			distractors: []string{
				"It is kept separate from daily activities",
				"It is only displayed in special museums",
				"It has no connection to daily life",
			},
		},
		{
			prompt:  `What role do artists play in African communities that create works like "{title}"?`,
			correct: "They are respected community members who preserve and transmit cultural knowledge",
			distractors: []string{
				"They are isolated individuals working alone",
				"They are considered less important than other professions",
				"They only work for foreign collectors",
			},
		},
	},
	domain.CategorySymbolism: {
		{
			prompt:  `What do geometric patterns in African art like "{title}" typically represent?`,
			correct: "Cosmic order, spiritual beliefs, and cultural identity",
			distractors: []string{
				"Random decorative elements",
				"Mathematical concepts only",
				"European influence",
			},
		},
		{
			prompt:  `How do colors function symbolically in African art like "{title}"?`,
			correct: "Colors carry specific cultural meanings related to spirituality and social status",
			distractors: []string{
				"Colors are chosen purely for visual appeal",
				"Colors have no symbolic meaning",
				"Colors follow Western color theory",
			},
		},
		{
			prompt:  "What do animal motifs in African art typically symbolize?",
			correct: "Spiritual power, ancestral connections, and cultural values",
			distractors: []string{
				"Literal representations of zoo animals",
				"Hunting trophies",
				"Decorative elements with no meaning",
			},
		},
	},
}

// fieldPrompts are the field-based prompt formats, keyed by category.
var fieldPrompts = map[domain.QuestionCategory]string{
	domain.CategoryDate:     `What is the approximate date or century for the artwork: "{title}"?`,
	domain.CategoryArtist:   `Which artist or culture created the artwork: "{title}"?`,
	domain.CategoryMedium:   `What is the primary medium or material of the artwork: "{title}"?`,
	domain.CategoryMovement: `The artwork "{title}" is associated with which movement or period?`,
}

func fieldValue(item *domain.ArtItem, c domain.QuestionCategory) string {
	switch c {
	case domain.CategoryDate:
		return item.DateOriginal
	case domain.CategoryArtist:
		return item.ArtistOrCulture
	case domain.CategoryMedium:
		return item.MediumOrMaterial
	case domain.CategoryMovement:
		return item.MovementOrPeriod
	}
	return ""
}
