package task

import "strings"

// Labels are the line prefixes the parser scans for, colon included.
// Matching is case-insensitive. The values are a deployment rule, not a
// protocol: a different sheet language swaps these without touching the
// pipeline.
type Labels struct {
	Name     string
	Tag      string
	Deadline string
	Priority string
	Desc     string
}

// Defaults fill fields the model left blank.
type Defaults struct {
	Tag      string
	Deadline string
	Desc     string
}

// Parser turns the model's free-text response into a StructuredTask.
type Parser struct {
	Labels   Labels
	Defaults Defaults

	// Substrings (lowercase) that map the raw priority text to a level.
	// High wins over medium; anything unmatched is normal.
	HighKeywords   []string
	MediumKeywords []string
}

// NewParser returns a parser with the production labels and defaults.
func NewParser() *Parser {
	return &Parser{
		Labels: Labels{
			Name:     "Назва:",
			Tag:      "Тег:",
			Deadline: "Дедлайн:",
			Priority: "Пріоритет:",
			Desc:     "Опис:",
		},
		Defaults: Defaults{
			Tag:      "#інше",
			Deadline: "не вказано",
			Desc:     "(без опису)",
		},
		HighKeywords:   []string{"висок", "терміново", "негайно", "сьогодні", "зараз"},
		MediumKeywords: []string{"сер", "тижня"},
	}
}

// Parse extracts a StructuredTask from the model response. The second
// return is false when the response is unusable (no name line), which the
// commit pipeline treats the same as the model being unavailable.
func (p *Parser) Parse(s string) (StructuredTask, bool) {
	if strings.TrimSpace(s) == "" {
		return StructuredTask{}, false
	}

	var lines []string
	for _, ln := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}

	take := func(label string) string {
		low := strings.ToLower(label)
		for _, ln := range lines {
			if strings.HasPrefix(strings.ToLower(ln), low) {
				return strings.TrimSpace(ln[len(label):])
			}
		}
		return ""
	}

	name := take(p.Labels.Name)
	if name == "" {
		return StructuredTask{}, false
	}

	// The description may span several lines; everything after its label
	// line belongs to it.
	desc := ""
	lowDesc := strings.ToLower(p.Labels.Desc)
	for i, ln := range lines {
		if strings.HasPrefix(strings.ToLower(ln), lowDesc) {
			parts := append([]string{strings.TrimSpace(ln[len(p.Labels.Desc):])}, lines[i+1:]...)
			desc = strings.TrimSpace(strings.Join(parts, "\n"))
			break
		}
	}
	if desc == "" {
		desc = take(p.Labels.Desc)
	}
	if desc == "" {
		desc = p.Defaults.Desc
	}

	tag := take(p.Labels.Tag)
	if tag == "" {
		tag = p.Defaults.Tag
	} else if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}

	deadline := take(p.Labels.Deadline)
	if deadline == "" {
		deadline = p.Defaults.Deadline
	}

	return StructuredTask{
		Name:     name,
		Tag:      tag,
		Deadline: deadline,
		Priority: p.derivePriority(take(p.Labels.Priority)),
		Desc:     desc,
	}, true
}

func (p *Parser) derivePriority(raw string) Priority {
	low := strings.ToLower(strings.TrimSpace(raw))
	if low == "" {
		return PriorityNormal
	}
	for _, kw := range p.HighKeywords {
		if strings.Contains(low, kw) {
			return PriorityHigh
		}
	}
	for _, kw := range p.MediumKeywords {
		if strings.Contains(low, kw) {
			return PriorityMedium
		}
	}
	return PriorityNormal
}
