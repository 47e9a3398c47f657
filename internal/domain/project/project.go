package project

import (
	"context"
	"errors"
)

type Category string

const (
	CategoryDataScience     Category = "data-science"
	CategoryAILLMs          Category = "ai-llms"
	CategoryMachineLearning Category = "machine-learning"
	CategoryDataAnalytics   Category = "data-analytics"
)

// UploadedDescription is the description given to every project created from an uploaded file.
const UploadedDescription = "Uploaded project file from your system."

// CategoryInfo is the display metadata of a category tab.
type CategoryInfo struct {
	Key          Category `json:"key"`
	Label        string   `json:"label"`
	SectionTitle string   `json:"section_title"`
	Description  string   `json:"description"`
}

var categories = []CategoryInfo{
	{CategoryDataScience, "Data Science", "Data Science Projects", "Notebooks, pipelines and end-to-end DS workflows."},
	{CategoryAILLMs, "AI & LLMs", "AI and LLMs Projects", "LLM apps, prompt engineering and retrieval pipelines."},
	{CategoryMachineLearning, "Machine Learning", "Machine Learning Projects", "Classical ML models, MLOps experiments and model evaluation."},
	{CategoryDataAnalytics, "Data Analytics", "Data Analytics Projects", "Dashboards, reports and analytics case studies."},
}

var ErrUnknownCategory = errors.New("unknown project category")

// Categories returns the fixed category set in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if string(c.Key) == s {
			return c.Key, nil
		}
	}
	return "", ErrUnknownCategory
}

func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

func (c Category) Info() CategoryInfo {
	for _, info := range categories {
		if info.Key == c {
			return info
		}
	}
	return CategoryInfo{Key: c}
}

type Project struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Link        *string `json:"link,omitempty"`
}

type Repository interface {
	ListByCategory(ctx context.Context, c Category) ([]Project, error)
	ListAll(ctx context.Context) (map[Category][]Project, error)
	// Append adds projects at the end of the category, preserving the supplied order.
	Append(ctx context.Context, c Category, projects []Project) error
}
