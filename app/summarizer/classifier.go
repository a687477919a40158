package summarizer

import (
	"strings"

	"github.com/samber/lo"

	"github.com/Semior001/paper2note/app/paper"
)

type field struct {
	name     string
	triggers []string
}

// fields maps research field names to lowercase trigger substrings.
var fields = []field{
	{name: "AI/ML", triggers: []string{
		"machine learning", "artificial intelligence", "deep learning", "neural network", "llm", "large language model",
	}},
	{name: "NLP", triggers: []string{
		"natural language", "nlp", "text", "language model", "transformer", "bert", "gpt",
	}},
	{name: "Computer Vision", triggers: []string{
		"computer vision", "image", "visual", "cv", "detection", "recognition",
	}},
	{name: "Robotics", triggers: []string{"robot", "robotics", "autonomous", "control"}},
	{name: "Education", triggers: []string{
		"education", "learning", "teaching", "pedagogy", "classroom", "student",
	}},
	{name: "Healthcare", triggers: []string{"health", "medical", "clinical", "patient", "diagnosis"}},
	{name: "Finance", triggers: []string{"finance", "financial", "trading", "investment", "banking"}},
	{name: "HCI", triggers: []string{"human-computer interaction", "hci", "user interface", "ux", "usability"}},
	{name: "Software Engineering", triggers: []string{
		"software", "development", "programming", "code", "engineering",
	}},
	{name: "Data Science", triggers: []string{"data", "analytics", "statistics", "mining", "big data"}},
}

// Classify detects research fields of the paper by matching trigger
// substrings against its title and abstract. The order of the result
// is not part of the contract.
func Classify(info paper.Info) []string {
	title, abstract := strings.ToLower(info.Title), strings.ToLower(info.Abstract)

	matched := make([]string, 0, len(fields))
	for _, f := range fields {
		hit := lo.ContainsBy(f.triggers, func(trigger string) bool {
			return strings.Contains(title, trigger) || strings.Contains(abstract, trigger)
		})
		if hit {
			matched = append(matched, f.name)
		}
	}

	return lo.Uniq(matched)
}
