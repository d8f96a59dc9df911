package keywords

import "github.com/jonathan/resume-tailor/internal/types"

// Category membership sets. A term can only belong to one: the first match
// in Categorize wins, and anything unlisted is a generic skill.
var (
	strategyTerms = map[string]bool{
		"product strategy": true, "product vision": true, "roadmap": true, "strategic": true, "vision": true,
		"go-to-market": true, "gtm": true, "north star": true, "product-market fit": true, "pmf": true,
	}

	aiMLTerms = map[string]bool{
		"ai": true, "ml": true, "machine learning": true, "artificial intelligence": true, "deep learning": true,
		"nlp": true, "natural language processing": true, "llm": true, "large language model": true,
		"genai": true, "generative ai": true, "agentic": true, "autonomous": true, "intelligent": true,
		"recommendation": true, "recommender": true, "predictive": true, "computer vision": true,
	}

	outcomeTerms = map[string]bool{
		"growth": true, "acquisition": true, "retention": true, "engagement": true, "conversion": true,
		"arr": true, "revenue": true, "arpu": true, "ltv": true, "cltv": true, "churn": true, "nps": true,
		"adoption": true, "activation": true,
	}

	methodologyTerms = map[string]bool{
		"agile": true, "scrum": true, "lean": true, "kanban": true, "design thinking": true,
		"a/b testing": true, "ab testing": true, "experimentation": true, "jtbd": true,
	}

	leadershipTerms = map[string]bool{
		"cross-functional": true, "stakeholder": true, "executive": true, "leadership": true,
		"team management": true, "mentorship": true, "coaching": true, "collaboration": true,
		"high-performing": true, "building teams": true, "scaling teams": true,
	}

	domainTerms = map[string]bool{
		"fintech": true, "healthtech": true, "automotive": true, "enterprise": true, "consumer": true,
		"e-commerce": true, "ecommerce": true, "web3": true, "blockchain": true, "saas": true,
		"b2b": true, "b2c": true,
	}
)

// Categorize maps a recognized term to its keyword category.
func Categorize(term string) string {
	switch {
	case strategyTerms[term]:
		return types.CategoryStrategy
	case aiMLTerms[term]:
		return types.CategoryAIML
	case outcomeTerms[term]:
		return types.CategoryOutcome
	case methodologyTerms[term]:
		return types.CategoryMethodology
	case leadershipTerms[term]:
		return types.CategoryLeadership
	case domainTerms[term]:
		return types.CategoryDomain
	default:
		return types.CategorySkill
	}
}
