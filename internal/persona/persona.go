// Package persona owns the assistant's fixed identity: the fact base about
// the site's subject, the behavioral rules, and every canned string the chat
// surface uses. All of it is immutable at runtime and lives server-side, so
// clients cannot alter who the assistant claims to be or what it knows.
package persona

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Profile is the structured knowledge base. The same data backs the public
// profile endpoint and the prompt context sent to the model.
type Profile struct {
	Name     string `json:"name"`
	BotName  string `json:"bot_name"`
	Location string `json:"location"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`

	Education    Education    `json:"education"`
	Skills       []SkillGroup `json:"skills"`
	Projects     []Project    `json:"projects"`
	Leadership   []Position   `json:"leadership"`
	Achievements []string     `json:"achievements"`
}

type Education struct {
	Degree     string   `json:"degree"`
	School     string   `json:"school"`
	Duration   string   `json:"duration"`
	CGPA       string   `json:"cgpa"`
	Coursework []string `json:"coursework"`
}

type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Project struct {
	Title        string   `json:"title"`
	Technologies []string `json:"technologies"`
	Highlights   []string `json:"highlights"`
}

type Position struct {
	Title      string   `json:"title"`
	Org        string   `json:"org"`
	Duration   string   `json:"duration"`
	Highlights []string `json:"highlights"`
}

var defaultProfile = &Profile{
	Name:     "Hrushi Bhanvadiya",
	BotName:  "HrushiBot",
	Location: "Ahmedabad, Gujarat, India",
	Email:    "hrushibhanvadiya@gmail.com",
	LinkedIn: "linkedin.com/in/hrushi-bhanvadiya-081818280/",
	Education: Education{
		Degree:   "B.Tech. in Computer Science and Engineering",
		School:   "Nirma University, Ahmedabad, Gujarat",
		Duration: "Jul 2023 - Present",
		CGPA:     "8.72 / 10",
		Coursework: []string{
			"Natural Language Processing", "Computer Vision & Deep Learning",
			"Reinforcement Learning", "Operating Systems", "Cloud Computing",
			"Computer Networks", "Data Structures & Algorithms",
		},
	},
	Skills: []SkillGroup{
		{Category: "Programming Languages", Items: []string{"C", "C++", "Java", "Python", "SQL"}},
		{Category: "Web Technologies", Items: []string{"HTML", "CSS", "JavaScript", "TypeScript", "React.js", "Next.js", "Node.js", "Tailwind CSS"}},
		{Category: "AI / ML", Items: []string{"Retrieval-Augmented Generation", "Embeddings", "Vector Search", "Natural Language Processing"}},
		{Category: "Systems / Tools", Items: []string{"Git", "GitHub", "Linux", "Flask", "PostgreSQL", "MongoDB Atlas"}},
	},
	Projects: []Project{
		{
			Title:        "FinGuide - Neurodivergent-First Fintech Application",
			Technologies: []string{"React", "Node.js", "PostgreSQL", "Gemini API"},
			Highlights: []string{
				"Developed an accessible, full-stack financial platform designed to reduce cognitive load for users with ADHD, dyslexia, and anxiety during the Manipal Hackathon.",
				"Engineered a dynamic React/TypeScript frontend featuring three adaptive UI modes that automatically simplify the interface based on user stress detection.",
				"Integrated the Google Gemini API to power a personalized financial assistant and implemented critical accessibility features, including OpenDyslexic font support and an emergency panic button.",
			},
		},
		{
			Title:        "Axon OS - Browser-Based Portfolio Operating System",
			Technologies: []string{"Next.js", "Rust", "WebGPU"},
			Highlights: []string{
				"Engineered a browser-native operating system featuring a virtual file system and window management, achieving zero-perceived latency for a seamless user experience.",
				"Designed a persistent AI copilot using Gemini with contextual UI awareness and system-level command execution.",
				"Architected a high-concurrency Rust backend (Axum, Tokio) with WebSocket integration, streaming real-time system metrics to simulate a native desktop environment.",
			},
		},
		{
			Title:        "Financial Document Retrieval-Augmented Generation System",
			Technologies: []string{"Python", "Flask", "Pinecone", "FinBERT"},
			Highlights: []string{
				"Built a retrieval-augmented generation (RAG) system capable of parsing and querying complex, 550+ page financial documents.",
				"Integrated semantic chunking, FinBERT embeddings, and Pinecone vector indexing to achieve a highly responsive 350ms retrieval latency for citation-grounded QA.",
			},
		},
	},
	Leadership: []Position{
		{
			Title:    "Joint Secretary",
			Org:      "Computer Society of India, Nirma University",
			Duration: "Aug 2025 - Present",
			Highlights: []string{
				"Directed technical initiatives and managed event lifecycles for 1200+ students, structuring the scheduling for the largest offline hackathon in Gujarat.",
				"Led the Graphic Design Division, leveraging CorelDraw and typography principles to establish visual branding.",
			},
		},
	},
	Achievements: []string{
		"LeetCode: Ranked in the Top 7.76% globally (Rating: 1798). Username: Hrushi2501",
		"Codeforces: Peak rating of 1217 (Pupil). Username: Hrushi2501",
	},
}

// Default returns the process-wide profile. Callers must treat it as
// read-only.
func Default() *Profile {
	return defaultProfile
}

// Render builds the full persona context injected as the first prompt turn.
func (p *Profile) Render() string {
	var b strings.Builder

	// Layer 1 - Role and tone
	fmt.Fprintf(&b, "You are %s, a friendly AI assistant on %s's personal portfolio website. ", p.BotName, p.Name)
	fmt.Fprintf(&b, "You answer questions about %s in a professional, concise, and helpful manner. ", firstName(p.Name))
	b.WriteString("Use a friendly tone. Keep answers short (2-4 sentences max) unless asked for detail.\n\n")

	// Layer 2 - Fact base
	fmt.Fprintf(&b, "Here is everything you know about %s:\n\n", firstName(p.Name))

	b.WriteString("## Personal Info\n")
	fmt.Fprintf(&b, "- Full Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Location: %s\n", p.Location)
	fmt.Fprintf(&b, "- Email: %s\n", p.Email)
	fmt.Fprintf(&b, "- LinkedIn: %s\n\n", p.LinkedIn)

	b.WriteString("## Education\n")
	fmt.Fprintf(&b, "- %s at %s\n", p.Education.Degree, p.Education.School)
	fmt.Fprintf(&b, "- Duration: %s\n", p.Education.Duration)
	fmt.Fprintf(&b, "- CGPA: %s\n", p.Education.CGPA)
	fmt.Fprintf(&b, "- Relevant Coursework: %s.\n\n", strings.Join(p.Education.Coursework, ", "))

	b.WriteString("## Technical Skills\n")
	for _, g := range p.Skills {
		fmt.Fprintf(&b, "- %s: %s\n", g.Category, strings.Join(g.Items, ", "))
	}
	b.WriteString("\n## Projects\n")
	for i, proj := range p.Projects {
		fmt.Fprintf(&b, "\n### %d. %s\n", i+1, proj.Title)
		fmt.Fprintf(&b, "Technologies: %s\n", strings.Join(proj.Technologies, ", "))
		for _, h := range proj.Highlights {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}

	b.WriteString("\n## Leadership & Responsibilities\n")
	for _, pos := range p.Leadership {
		fmt.Fprintf(&b, "- %s, %s - %s\n", pos.Title, pos.Org, pos.Duration)
		for _, h := range pos.Highlights {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}

	b.WriteString("\n## Achievements\n")
	for _, a := range p.Achievements {
		fmt.Fprintf(&b, "- %s\n", a)
	}

	// Layer 3 - Behavioral rules
	b.WriteString("\nIMPORTANT RULES:\n")
	fmt.Fprintf(&b, "1. Only answer questions about %s. If asked about unrelated topics, politely redirect.\n", firstName(p.Name))
	b.WriteString("2. Never make up information not listed above.\n")
	b.WriteString("3. Be concise and professional.\n")
	fmt.Fprintf(&b, "4. If you don't know something about %s, say \"I don't have that information, but you can reach out to %s directly at %s\".\n",
		firstName(p.Name), firstName(p.Name), p.Email)
	b.WriteString("5. Use a warm, slightly enthusiastic tone - like a helpful portfolio assistant.\n")

	return b.String()
}

// Acknowledgment is the fixed second prompt turn establishing the
// assistant's identity before any history is replayed.
func (p *Profile) Acknowledgment() string {
	return fmt.Sprintf("Understood! I'm %s, ready to answer questions about %s. How can I help?", p.BotName, p.Name)
}

// Greeting seeds every new chat session.
func (p *Profile) Greeting() string {
	n := firstName(p.Name)
	return fmt.Sprintf("Hi! I'm %s. Ask me anything about %s: his skills, projects, achievements, or how to reach him!", p.BotName, n)
}

// Suggestions are canned questions offered while the session is still empty.
func (p *Profile) Suggestions() []string {
	n := firstName(p.Name)
	return []string{
		fmt.Sprintf("What projects has %s built?", n),
		fmt.Sprintf("What are %s's skills?", n),
		fmt.Sprintf("Tell me about %s's education", n),
		fmt.Sprintf("How can I contact %s?", n),
	}
}

// UnavailableReply is the verbatim-stable reply used when no upstream
// credential is configured.
func (p *Profile) UnavailableReply() string {
	return fmt.Sprintf("The chatbot is currently unavailable - API key not configured. You can reach %s directly at %s!",
		firstName(p.Name), p.Email)
}

// apologyDiagnosticLimit bounds how much of an upstream error message leaks
// into the user-facing apology.
const apologyDiagnosticLimit = 100

// ApologyReply wraps a truncated upstream diagnostic in a success-shaped
// reply so the chat UI never has to render an error state. Truncation backs
// up to a rune boundary so a multi-byte character is never split.
func (p *Profile) ApologyReply(diag string) string {
	if len(diag) > apologyDiagnosticLimit {
		cut := apologyDiagnosticLimit
		for cut > 0 && !utf8.RuneStart(diag[cut]) {
			cut--
		}
		diag = diag[:cut]
	}
	return fmt.Sprintf("I ran into an issue: %s. You can reach %s directly at %s!", diag, firstName(p.Name), p.Email)
}

// EmptyReply covers the rare case of the model returning no text at all.
func (p *Profile) EmptyReply() string {
	return fmt.Sprintf("I don't have an answer for that right now. You can reach %s directly at %s!",
		firstName(p.Name), p.Email)
}

// ConnectivityReply is the client-local apology appended when the proxy
// itself cannot be reached.
func (p *Profile) ConnectivityReply() string {
	return fmt.Sprintf("I'm having trouble connecting. Try again or reach %s at %s!", firstName(p.Name), p.Email)
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
