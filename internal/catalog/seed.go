package catalog

import "github.com/HammerMeetNail/aistackhub/internal/models"

// Tool identifiers referenced by the default recommendation rules.
const (
	ToolRunway      = "runway"
	ToolChatGPTPlus = "chatgpt-plus"
	ToolCanvaPro    = "canva-pro"
	ToolNotionAI    = "notion-ai"
	ToolClaudePro   = "claude-pro"
)

// DefaultDefinition returns the built-in directory content.
func DefaultDefinition() Definition {
	return Definition{
		Tools: []models.Tool{
			{
				ID:           ToolRunway,
				Name:         "Runway",
				Category:     "video",
				MonthlyPrice: 12,
				Description:  "AI video generation and editing with text-to-video and green screen.",
				Website:      "https://runwayml.com",
				Tags:         []string{"video", "editing", "generation"},
			},
			{
				ID:           ToolChatGPTPlus,
				Name:         "ChatGPT Plus",
				Category:     "writing",
				MonthlyPrice: 20,
				Description:  "General-purpose chat assistant for drafting, editing and brainstorming copy.",
				Website:      "https://chat.openai.com",
				Tags:         []string{"writing", "chat", "assistant"},
			},
			{
				ID:           ToolCanvaPro,
				Name:         "Canva Pro",
				Category:     "design",
				MonthlyPrice: 15,
				Description:  "Design platform with Magic Design, background removal and brand kits.",
				Website:      "https://www.canva.com",
				Tags:         []string{"design", "social", "templates"},
			},
			{
				ID:           ToolNotionAI,
				Name:         "Notion AI",
				Category:     "productivity",
				MonthlyPrice: 8,
				Description:  "Workspace assistant that summarizes notes, databases and reports.",
				Website:      "https://www.notion.so",
				Tags:         []string{"analytics", "notes", "productivity"},
			},
			{
				ID:           ToolClaudePro,
				Name:         "Claude Pro",
				Category:     "assistant",
				MonthlyPrice: 20,
				Description:  "Long-context assistant for analysis, writing and coding tasks.",
				Website:      "https://claude.ai",
				Tags:         []string{"assistant", "writing", "coding"},
			},
			{
				ID:           "midjourney",
				Name:         "Midjourney",
				Category:     "design",
				MonthlyPrice: 10,
				Description:  "Image generation from text prompts with strong stylistic control.",
				Website:      "https://www.midjourney.com",
				Tags:         []string{"design", "images"},
			},
			{
				ID:           "github-copilot",
				Name:         "GitHub Copilot",
				Category:     "coding",
				MonthlyPrice: 10,
				Description:  "Code completion and chat inside the editor.",
				Website:      "https://github.com/features/copilot",
				Tags:         []string{"coding", "developer"},
			},
			{
				ID:           "zapier",
				Name:         "Zapier",
				Category:     "automation",
				MonthlyPrice: 20,
				Description:  "No-code automation that connects apps with AI-assisted steps.",
				Website:      "https://zapier.com",
				Tags:         []string{"automation", "integrations"},
			},
			{
				ID:           "buffer",
				Name:         "Buffer",
				Category:     "social",
				MonthlyPrice: 6,
				Description:  "Social scheduling with an AI assistant for post ideas.",
				Website:      "https://buffer.com",
				Tags:         []string{"social", "scheduling"},
			},
			{
				ID:           "elevenlabs",
				Name:         "ElevenLabs",
				Category:     "audio",
				MonthlyPrice: 5,
				Description:  "Realistic text-to-speech and voice cloning.",
				Website:      "https://elevenlabs.io",
				Tags:         []string{"audio", "voice", "video"},
			},
			{
				ID:           "perplexity-pro",
				Name:         "Perplexity Pro",
				Category:     "research",
				MonthlyPrice: 20,
				Description:  "Answer engine with cited web sources.",
				Website:      "https://www.perplexity.ai",
				Tags:         []string{"research", "search"},
			},
		},
		FocusRules: map[models.Focus]Rule{
			models.FocusVideo: {
				ToolID:      ToolRunway,
				MatchReason: "Fast video creation and editing for your content pipeline",
			},
			models.FocusWriting: {
				ToolID:      ToolChatGPTPlus,
				MatchReason: "Drafts and polishes written content in minutes",
			},
			models.FocusDesign: {
				ToolID:      ToolCanvaPro,
				MatchReason: "Professional visuals without a design team",
			},
			models.FocusAnalytics: {
				ToolID:      ToolNotionAI,
				MatchReason: "Turns notes and data into summaries and insights",
			},
		},
		Fallback: Rule{
			ToolID:      ToolClaudePro,
			MatchReason: "A general assistant that covers everyday tasks",
		},
		RoleSavings: map[models.Role]int{
			models.RoleContentCreator: 2000,
			models.RoleMarketer:       2500,
			models.RoleDeveloper:      3000,
			models.RoleDesigner:       2200,
			models.RoleEntrepreneur:   5000,
			models.RoleConsultant:     4000,
		},
		Workflows: []models.Workflow{
			{
				Slug:        "youtube-video-pipeline",
				Title:       "YouTube Video Pipeline",
				Description: "Script, voice over and edit a video end to end.",
				Category:    "video",
				Difficulty:  models.DifficultyMedium,
				ToolIDs:     []string{ToolChatGPTPlus, "elevenlabs", ToolRunway},
				HoursSaved:  8,
			},
			{
				Slug:        "blog-to-social",
				Title:       "Blog Post to Social Campaign",
				Description: "Turn one article into a week of scheduled social posts.",
				Category:    "marketing",
				Difficulty:  models.DifficultyEasy,
				ToolIDs:     []string{ToolChatGPTPlus, ToolCanvaPro, "buffer"},
				HoursSaved:  5,
			},
			{
				Slug:        "research-report",
				Title:       "Research Report",
				Description: "Collect cited sources, analyze them and publish a summary.",
				Category:    "research",
				Difficulty:  models.DifficultyEasy,
				ToolIDs:     []string{"perplexity-pro", ToolClaudePro, ToolNotionAI},
				HoursSaved:  6,
			},
			{
				Slug:        "developer-assistant",
				Title:       "Developer Assistant Setup",
				Description: "Pair in-editor completion with a long-context reviewer.",
				Category:    "coding",
				Difficulty:  models.DifficultyMedium,
				ToolIDs:     []string{"github-copilot", ToolClaudePro},
				HoursSaved:  10,
			},
			{
				Slug:        "lead-automation",
				Title:       "Lead Capture Automation",
				Description: "Route form leads into your CRM with AI-written follow ups.",
				Category:    "automation",
				Difficulty:  models.DifficultyHard,
				ToolIDs:     []string{"zapier", ToolChatGPTPlus},
				HoursSaved:  7,
			},
		},
	}
}

// Default returns a catalog built from DefaultDefinition.
func Default() *Catalog {
	c, err := New(DefaultDefinition())
	if err != nil {
		panic("catalog: invalid default definition: " + err.Error())
	}
	return c
}
