// Package seed holds the content the portfolio starts with on every process start.
package seed

import (
	"github.com/pranavsangichetty/portfolio/internal/domain/certificate"
	"github.com/pranavsangichetty/portfolio/internal/domain/project"
	"github.com/pranavsangichetty/portfolio/internal/domain/resume"
)

type Content struct {
	Resumes      []resume.Resume
	Projects     map[project.Category][]project.Project
	Certificates []certificate.Certificate
}

func link(s string) *string { return &s }

// Default returns a fresh copy of the initial content on each call.
func Default() Content {
	return Content{
		Resumes: []resume.Resume{
			{ID: 1, Title: "Data Science Resume", Type: "DS", URL: "/resumes/data-science-resume.pdf"},
			{ID: 2, Title: "Data Analytics Resume", Type: "DA", URL: "/resumes/data-analytics-resume.pdf"},
			{ID: 3, Title: "General Tech Resume", Type: "General", URL: "/resumes/general-tech-resume.pdf"},
		},
		Projects: map[project.Category][]project.Project{
			project.CategoryDataScience: {
				{ID: 1, Title: "Customer Churn Prediction", Description: "Predict churn using supervised learning and feature engineering.", Link: link("#")},
			},
			project.CategoryAILLMs: {
				{ID: 2, Title: "LLM-Powered Chatbot", Description: "Domain-specific assistant for answering business queries.", Link: link("#")},
			},
			project.CategoryMachineLearning: {
				{ID: 3, Title: "Lead Scoring Model", Description: "Logistic regression model to rank and prioritize sales leads.", Link: link("#")},
			},
			project.CategoryDataAnalytics: {
				{ID: 4, Title: "Sales Performance Dashboard", Description: "Interactive dashboard for tracking KPIs across regions.", Link: link("#")},
			},
		},
		Certificates: []certificate.Certificate{},
	}
}
