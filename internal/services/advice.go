package services

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// technicalQuestionBank maps vocabulary skills to a canned question pair
// used when that skill shows up as a gap.
var technicalQuestionBank = map[string]string{
	// Languages
	"python":     "Explain the difference between deep copy and shallow copy. What are decorators?",
	"java":       "Explain the difference between JDK, JRE, and JVM. How does Garbage Collection work?",
	"c++":        "What are virtual functions? Explain the difference between pointers and references.",
	"javascript": "Explain Closures and Hoisting. What is the difference between '==' and '==='?",
	"typescript": "What are Interfaces vs Types? How do you handle generics in TypeScript?",
	"c#":         "What is the difference between ref and out parameters? Explain Boxing and Unboxing.",
	"go":         "What are Goroutines? Explain the difference between arrays and slices.",
	"ruby":       "What is a Gem? Explain the difference between Proc and Lambda.",
	"php":        "What are the superglobal variables in PHP? Explain strict types.",
	"swift":      "What are Optionals? Explain the difference between struct and class in Swift.",

	// Frontend
	"html":     "What are semantic tags? Explain the difference between localStorage, sessionStorage, and cookies.",
	"css":      "Explain the Box Model. What is the difference between Flexbox and Grid?",
	"react":    "What are the rules of Hooks? Explain the useEffect dependency array and React Fiber.",
	"angular":  "What is Dependency Injection? Explain the difference between Observables and Promises.",
	"vue":      "Explain the Vue lifecycle. What is the difference between v-show and v-if?",
	"redux":    "Explain the Redux data flow. What are Actions and Reducers?",
	"tailwind": "What are the benefits of utility-first CSS? How do you configure a custom theme?",

	// Backend
	"node":        "Explain the Event Loop. What is the difference between process.nextTick() and setImmediate()?",
	"express":     "What is Middleware in Express? How do you handle error handling globally?",
	"django":      "Explain the MVT architecture. What is the purpose of migrations?",
	"flask":       "What is a Blueprint in Flask? How do you handle request contexts?",
	"spring boot": "What is Auto-configuration? Explain the @SpringBootApplication annotation.",
	"rest api":    "What are the idempotent HTTP methods? Explain status codes 401 vs 403.",
	"graphql":     "What is the difference between Query and Mutation? How do you solve the N+1 problem?",

	// Database
	"sql":        "Write a query to find duplicates in a table. Explain Indexing and Normalization.",
	"postgresql": "What is MVCC? Explain the difference between JSON and JSONB types.",
	"mongodb":    "What is the Aggregation Framework? Explain Sharding vs Replication.",
	"redis":      "What are the common data types in Redis? How is it used for Caching?",

	// Cloud & DevOps
	"aws":        "Explain the difference between S3, EBS, and EFS. What is a VPC?",
	"azure":      "What is an Azure Resource Manager template? Explain Blob Storage.",
	"docker":     "Explain the difference between ENTRYPOINT and CMD. What is a Docker Volume?",
	"kubernetes": "What is a Pod? Explain the difference between a Deployment and a StatefulSet.",
	"jenkins":    "How do you create a Multibranch Pipeline? What are Jenkins shared libraries?",
	"git":        "Explain 'git rebase' vs 'git merge'. How do you resolve a merge conflict?",
	"terraform":  "What is State in Terraform? Explain 'terraform plan' vs 'terraform apply'.",

	// Data & ML
	"machine learning": "Explain the Bias-Variance tradeoff. What is Cross-Validation?",
	"deep learning":    "What is Backpropagation? Explain the Vanishing Gradient problem.",
	"nlp":              "What is Tokenization? Explain Word Embeddings (Word2Vec/GloVe).",
	"pandas":           "How do you handle missing data? Explain the difference between loc and iloc.",
	"tensorflow":       "What are Tensors? Explain the difference between Sequential and Functional APIs.",
	"scikit-learn":     "What is a Pipeline? How do you perform hyperparameter tuning using GridSearch?",

	// General / Tools
	"system design": "Design a URL shortener (like Bit.ly). How would you handle scaling?",
	"agile":         "What are the ceremonies in Scrum? Explain the difference between Kanban and Scrum.",
	"microservices": "What are the advantages of Microservices? How do services communicate?",
	"linux":         "What is the difference between 'grep', 'awk', and 'sed'? Check process usage with 'top'.",
	"excel":         "Explain VLOOKUP vs INDEX-MATCH. How do you create a Pivot Table?",
}

var behavioralQuestionBank = []string{
	"Tell me about a time you had a conflict with a coworker. How did you resolve it?",
	"Describe a situation where you had to meet a tight deadline. How did you prioritize?",
	"Tell me about a time you failed. What did you learn from it?",
	"Describe a complex problem you solved. What was your thought process?",
	"How do you handle constructive criticism?",
	"Tell me about a time you showed leadership skills.",
	"Why do you want to work for this specific role/industry?",
	"Describe a time you had to learn a new technology quickly.",
	"Tell me about a time you disagreed with a supervisor's decision.",
	"Describe a time you went above and beyond for a project.",
	"How do you handle working with a difficult client or stakeholder?",
	"Tell me about a mistake you made. How did you fix it?",
	"Describe a time you had to persuade others to your way of thinking.",
	"How do you stay organized when you have multiple projects?",
	"Tell me about a time you had to adapt to a significant change at work.",
	"Describe a time you mentored a junior team member.",
	"What is your proudest professional achievement?",
	"Tell me about a time you identified a process inefficiency and fixed it.",
	"How do you maintain motivation during repetitive tasks?",
	"Describe a time you had to deliver bad news to a team or client.",
}

var strategicTipsBank = []string{
	"**The 'So What?' Test:** For every answer, explain the impact. Don't just say what you did; say why it mattered to the business.",
	"**Body Language:** Maintain eye contact (even on Zoom, look at the camera). Keep your hands visible to build trust.",
	"**The Reverse Interview:** Ask them: 'What is the biggest challenge the team is facing right now?' It shows you care about solving problems.",
	"**STAR Method:** Always structure behavioral answers with Situation, Task, Action, and Result.",
	"**Research Competitors:** Mentioning a competitor's recent move shows you understand the market landscape.",
	"**Silence is Okay:** It's better to pause for 5 seconds to think than to ramble for 2 minutes.",
	"**Quantify Results:** Use numbers wherever possible (e.g., 'Improved load time by 20%', 'Managed a budget of $50k').",
	"**The 'Weakness' Question:** Choose a real weakness but explain the specific steps you are taking to improve it.",
	"**Cultural Fit:** Use keywords from their 'About Us' page (e.g., 'Innovation', 'Customer Obsession') in your answers.",
	"**First 5 Minutes:** The impression is often made in the intro. Have a polished 'Tell me about yourself' pitch ready.",
	"**Technical Clarity:** If you don't know a technical answer, explain how you would find out (e.g., 'I would check the documentation for X').",
	"**Post-Interview Note:** Send a thank-you email within 24 hours referencing a specific topic you discussed.",
	"**Mock Interviews:** Record yourself answering common questions to catch filler words like 'um' and 'like'.",
	"**Salary Negotiation:** Don't give a number first. Ask for the budget range for the role.",
	"**LinkedIn Alignment:** Ensure your resume dates and titles match your LinkedIn profile exactly.",
	"**Github Readme:** If sharing code, ensure your repositories have a README explaining what the project does and how to run it.",
	"**Soft Skills:** Highlight communication and teamwork, not just coding. Engineering is a team sport.",
	"**Ask About Success:** Ask 'What does success look like in this role for the first 90 days?'",
	"**Handling Stress:** Be ready to explain your personal strategies for managing burnout and tight deadlines.",
	"**Continuous Learning:** Mention a podcast, book, or course you are currently consuming to show you stay updated.",
}

// Category-specific closing tips, tested in priority order.
var (
	frontendSkillSet = []string{"react", "angular", "vue", "html", "css"}
	dataSkillSet     = []string{"machine learning", "pandas", "sql"}
	cloudSkillSet    = []string{"aws", "docker", "kubernetes"}
)

const (
	frontendTip = "**Frontend Specific:** Ensure your GitHub links are working and your portfolio site is mobile-responsive."
	dataTip     = "**Data Specific:** Don't just show numbers. Explain *why* the data matters to the business decision."
	cloudTip    = "**Cloud Specific:** Be ready to draw system architecture diagrams on a whiteboard."
)

const (
	maxTechnicalQuestions = 5
	behavioralSampleSize  = 3
	strategicSampleSize   = 3
)

// AdviceGenerator assembles interview-preparation text from the missing
// skill set. The random source is injected so tests can fix a seed; the
// mutex guards it because one generator serves concurrent requests and
// rand.Rand is not safe for concurrent use.
type AdviceGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewAdviceGenerator(rng *rand.Rand) *AdviceGenerator {
	return &AdviceGenerator{rng: rng}
}

// Generate returns the three-section prep text: targeted technical
// questions for up to five gaps, three behavioral questions, and three
// strategic tips plus at most one category-specific tip.
func (g *AdviceGenerator) Generate(missingSkills []string) string {
	var b strings.Builder
	b.WriteString("### Customized Interview Prep\n\n")

	if len(missingSkills) > 0 {
		b.WriteString("**1. Targeted Technical Questions (Based on your gaps):**\n")
		count := 0
		for _, skill := range missingSkills {
			if question, ok := technicalQuestionBank[skill]; ok {
				fmt.Fprintf(&b, "- **%s:** %s\n", titleCase(skill), question)
				count++
			}
			if count >= maxTechnicalQuestions {
				break
			}
		}
		if count == 0 {
			b.WriteString("- **General:** Since your gaps are niche, focus on the fundamentals of the job description's core domain.\n")
		}
	} else {
		b.WriteString("**1. Technical Questions:**\n- Your skills match perfectly! Expect advanced system design, architecture, or behavioral questions.\n")
	}

	b.WriteString("\n**2. Behavioral Questions (Practice these):**\n")
	for _, q := range g.sample(behavioralQuestionBank, behavioralSampleSize) {
		fmt.Fprintf(&b, "- %s\n", q)
	}

	b.WriteString("\n**3. Strategic Tips:**\n")
	for _, tip := range g.sample(strategicTipsBank, strategicSampleSize) {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	if tip, ok := categoryTip(missingSkills); ok {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	return b.String()
}

// sample draws k distinct items uniformly without replacement.
func (g *AdviceGenerator) sample(bank []string, k int) []string {
	if k > len(bank) {
		k = len(bank)
	}
	g.mu.Lock()
	perm := g.rng.Perm(len(bank))
	g.mu.Unlock()

	out := make([]string, 0, k)
	for _, i := range perm[:k] {
		out = append(out, bank[i])
	}
	return out
}

func categoryTip(missingSkills []string) (string, bool) {
	switch {
	case intersects(missingSkills, frontendSkillSet):
		return frontendTip, true
	case intersects(missingSkills, dataSkillSet):
		return dataTip, true
	case intersects(missingSkills, cloudSkillSet):
		return cloudTip, true
	}
	return "", false
}

func intersects(a, b []string) bool {
	return len(IntersectSkills(a, b)) > 0
}

// titleCase capitalizes the first letter of each word; enough for skill
// names like "spring boot" or "c++".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
