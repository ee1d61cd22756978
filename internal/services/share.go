package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/aistackhub/internal/logging"
	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/questionnaire"
)

const defaultShareTTL = 90 * 24 * time.Hour

var (
	ErrSharedStackNotFound = errors.New("shared stack not found")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
)

type ExportFormat string

const (
	ExportText     ExportFormat = "text"
	ExportMarkdown ExportFormat = "markdown"
)

// ShareResult is returned when a stack is shared. When the stack could not be
// stored, Persisted is false and only Text is set so the caller can still
// copy the summary.
type ShareResult struct {
	ID        string     `json:"id,omitempty"`
	URL       string     `json:"url,omitempty"`
	Text      string     `json:"text"`
	Persisted bool       `json:"persisted"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type ShareService struct {
	db      DB
	engine  questionnaire.Recommender
	baseURL string
	ttl     time.Duration
	now     func() time.Time
}

func NewShareService(db DB, engine questionnaire.Recommender, baseURL string, ttl time.Duration) *ShareService {
	if ttl <= 0 {
		ttl = defaultShareTTL
	}
	return &ShareService{
		db:      db,
		engine:  engine,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create regenerates the stack for profile and stores it under a new id.
// Prices and reasons always come from the catalog, never from the caller.
func (s *ShareService) Create(ctx context.Context, profile models.CompleteProfile) (*ShareResult, error) {
	stack := s.engine.Recommend(profile)
	text, err := s.Export(stack, ExportText)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(stack)
	if err != nil {
		return nil, fmt.Errorf("encoding stack: %w", err)
	}

	id := uuid.New()
	createdAt := s.now().UTC()
	expiresAt := createdAt.Add(s.ttl)

	_, err = s.db.Exec(ctx,
		`INSERT INTO shared_stacks (id, payload, role, total_cost, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, payload, string(profile.Role()), stack.TotalCost, createdAt, expiresAt,
	)
	if err != nil {
		// Sharing degrades to copy-to-clipboard text rather than failing.
		logging.Warn("Failed to persist shared stack", map[string]interface{}{
			"error": err.Error(),
			"role":  string(profile.Role()),
		})
		return &ShareResult{Text: text}, nil
	}

	url := s.shareURL(id.String())
	return &ShareResult{
		ID:        id.String(),
		URL:       url,
		Text:      text + "\n" + url,
		Persisted: true,
		ExpiresAt: &expiresAt,
	}, nil
}

// Get loads a shared stack and counts the view. Expired stacks are reported
// as not found.
func (s *ShareService) Get(ctx context.Context, id uuid.UUID) (*models.SharedStack, error) {
	var (
		payload   []byte
		createdAt time.Time
		expiresAt *time.Time
		views     int
	)
	err := s.db.QueryRow(ctx,
		`UPDATE shared_stacks SET view_count = view_count + 1
		 WHERE id = $1 AND (expires_at IS NULL OR expires_at > $2)
		 RETURNING payload, created_at, expires_at, view_count`,
		id, s.now().UTC(),
	).Scan(&payload, &createdAt, &expiresAt, &views)
	if errors.Is(err, ErrNoRows) {
		return nil, ErrSharedStackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading shared stack: %w", err)
	}

	shared := &models.SharedStack{
		ID:        id.String(),
		CreatedAt: createdAt,
		Views:     views,
	}
	if expiresAt != nil {
		shared.ExpiresAt = *expiresAt
	}
	// The row filter compares against the same clock, but a payload that
	// raced its expiry is still not served.
	if shared.Expired(s.now().UTC()) {
		return nil, ErrSharedStackNotFound
	}
	if err := json.Unmarshal(payload, &shared.Stack); err != nil {
		return nil, fmt.Errorf("decoding shared stack: %w", err)
	}
	return shared, nil
}

// DeleteExpired removes shared stacks whose expiry has passed.
func (s *ShareService) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx,
		"DELETE FROM shared_stacks WHERE expires_at IS NOT NULL AND expires_at <= $1",
		s.now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting expired shared stacks: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *ShareService) shareURL(id string) string {
	return s.baseURL + "/s/" + id
}

// Export renders a stack for copying or downloading.
func (s *ShareService) Export(stack models.ToolStack, format ExportFormat) (string, error) {
	return RenderStack(stack, format)
}

// RenderStack renders stack in format. An empty format means text.
func RenderStack(stack models.ToolStack, format ExportFormat) (string, error) {
	switch format {
	case ExportText, "":
		return renderText(stack), nil
	case ExportMarkdown:
		return renderMarkdown(stack), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func budgetLabel(stack models.ToolStack) string {
	if stack.BudgetMatch {
		return "within budget"
	}
	return "over budget"
}

func renderText(stack models.ToolStack) string {
	var b strings.Builder
	p := stack.Profile
	fmt.Fprintf(&b, "My AI tool stack (%s, $%d/mo budget):\n", p.Role(), p.Budget())
	for _, t := range stack.Tools {
		fmt.Fprintf(&b, "- %s ($%d/mo): %s\n", t.Name, t.MonthlyPrice, t.MatchReason)
	}
	fmt.Fprintf(&b, "Total: $%d/mo (%s)\n", stack.TotalCost, budgetLabel(stack))
	fmt.Fprintf(&b, "Estimated savings: %d hours/week, $%d/month", stack.Savings.TimePerWeekHours, stack.Savings.CostPerMonth)
	return b.String()
}

func renderMarkdown(stack models.ToolStack) string {
	var b strings.Builder
	p := stack.Profile
	fmt.Fprintf(&b, "# AI Tool Stack: %s\n\n", p.Role())
	fmt.Fprintf(&b, "- **Budget:** $%d/mo\n", p.Budget())
	if len(p.Focus()) > 0 {
		focus := make([]string, 0, len(p.Focus()))
		for _, f := range p.Focus() {
			focus = append(focus, string(f))
		}
		fmt.Fprintf(&b, "- **Focus:** %s\n", strings.Join(focus, ", "))
	}
	if p.Industry() != "" {
		fmt.Fprintf(&b, "- **Industry:** %s\n", p.Industry())
	}
	b.WriteString("\n| Tool | Category | Price | Why |\n|------|----------|-------|-----|\n")
	for _, t := range stack.Tools {
		fmt.Fprintf(&b, "| %s | %s | $%d/mo | %s |\n", t.Name, t.Category, t.MonthlyPrice, strings.ReplaceAll(t.MatchReason, "|", `\|`))
	}
	fmt.Fprintf(&b, "\n**Total:** $%d/mo (%s)\n\n", stack.TotalCost, budgetLabel(stack))
	fmt.Fprintf(&b, "**Estimated savings:** %d hours/week, $%d/month\n", stack.Savings.TimePerWeekHours, stack.Savings.CostPerMonth)
	return b.String()
}
