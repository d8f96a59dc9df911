// Package keywords extracts recognized industry terms and experience requirements from job description text.
package keywords

import "sort"

// industryTerms is the fixed vocabulary of terms the extractor recognizes in
// job descriptions, grouped by theme.
var industryTerms = []string{
	// Strategy & Leadership
	"product strategy", "product vision", "roadmap", "strategic", "vision",
	"go-to-market", "gtm", "product-led growth", "plg", "north star",
	"okrs", "kpis", "metrics", "product-market fit", "pmf",

	// AI/ML
	"ai", "ml", "machine learning", "artificial intelligence", "deep learning",
	"nlp", "natural language processing", "llm", "large language model",
	"genai", "generative ai", "agentic", "autonomous", "intelligent",
	"recommendation", "recommender", "predictive", "computer vision",

	// Product Management
	"product management", "product lifecycle", "0-1", "zero-to-one",
	"discovery", "validation", "mvp", "iteration", "experimentation",
	"a/b testing", "ab testing", "hypothesis", "user research",
	"customer discovery", "customer-centric", "user-centric",
	"design thinking", "jtbd", "jobs to be done",

	// Growth & Metrics
	"growth", "acquisition", "retention", "engagement", "conversion",
	"arr", "revenue", "arpu", "ltv", "cltv", "churn", "nps",
	"adoption", "activation", "onboarding", "funnel",

	// Technical
	"saas", "b2b", "b2c", "b2b2c", "platform", "api", "integration",
	"data-driven", "analytics", "data strategy", "scalable", "scale",

	// Leadership & Team
	"cross-functional", "stakeholder", "executive", "leadership",
	"team management", "mentorship", "coaching", "collaboration",
	"high-performing", "building teams", "scaling teams",

	// Methodologies
	"agile", "scrum", "lean", "kanban", "sprint", "velocity",

	// Domains
	"fintech", "healthtech", "automotive", "enterprise", "consumer",
	"e-commerce", "ecommerce", "web3", "blockchain",
}

// termScanOrder holds industryTerms sorted alphabetically. Scanning in a
// fixed order keeps extraction output identical across runs.
var termScanOrder = sortedTerms()

func sortedTerms() []string {
	terms := make([]string, len(industryTerms))
	copy(terms, industryTerms)
	sort.Strings(terms)
	return terms
}
