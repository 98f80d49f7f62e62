package archive

// Rule assigns Domain to certificates whose title or folder mentions any of
// Keywords. Rules are tried in order; the first hit wins.
type Rule struct {
	Domain   string   `yaml:"domain"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules is the stock domain classification.
func DefaultRules() []Rule {
	return []Rule{
		{Domain: "programming", Keywords: []string{"java", "python", "javascript", "programming", "spring", "maven", "object-oriented", "refactoring", "code"}},
		{Domain: "cloud", Keywords: []string{"aws", "azure", "google cloud", "cloud", "gcp", "ccv2", "btp"}},
		{Domain: "frontend", Keywords: []string{"css", "html", "frontend", "web developers", "visual studio code", "web"}},
		{Domain: "devops", Keywords: []string{"git", "docker", "kubernetes", "jenkins", "ci/cd", "devops", "infrastructure", "version control"}},
		{Domain: "ai", Keywords: []string{"ai", "artificial intelligence", "machine learning", "chatgpt", "gpt", "openai", "claude", "gemini", "copilot", "mcp", "agentic"}},
		{Domain: "agile", Keywords: []string{"agile", "scrum", "project management", "kanban"}},
		{Domain: "ecommerce", Keywords: []string{"e-commerce", "ecommerce", "seo", "commerce", "sap commerce"}},
		{Domain: "communication", Keywords: []string{"communication", "meeting", "presentation", "business", "marketing"}},
		{Domain: "tools", Keywords: []string{"visual studio code", "postman", "confluence", "microsoft 365", "excel", "windows", "macos"}},
		{Domain: "security", Keywords: []string{"security", "owasp", "api security"}},
		{Domain: "data", Keywords: []string{"data", "analytics", "excel", "chatgpt data"}},
		{Domain: "api", Keywords: []string{"api", "rest", "swagger", "openapi", "postman", "api testing", "api documentation"}},
	}
}

// DefaultTechKeywords are the technologies recorded as skills when mentioned.
func DefaultTechKeywords() []string {
	return []string{"java", "python", "spring", "git", "docker", "kubernetes", "api", "ai", "chatgpt",
		"aws", "azure", "javascript", "typescript", "react", "node", "postman", "maven"}
}
