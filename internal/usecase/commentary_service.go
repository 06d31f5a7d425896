package usecase

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/riskibarqy/football-ai/internal/domain/match"
	"github.com/riskibarqy/football-ai/internal/platform/cache"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"
	"gopkg.in/yaml.v3"
)

type CommentaryStyle string

const (
	StyleFormal    CommentaryStyle = "formal"
	StyleFunny     CommentaryStyle = "funny"
	StyleTechnical CommentaryStyle = "technical"
)

var commentaryTones = map[CommentaryStyle]string{
	StyleFormal:    "Use a lively, professional, and insightful tone, making the commentary appealing to fans of all knowledge levels.",
	StyleFunny:     "Use a playful, witty tone full of light-hearted jokes and banter, while keeping every fact accurate.",
	StyleTechnical: "Use a precise, tactical tone: formations, pressing, build-up patterns and player roles, as a coach would explain them.",
}

// ParseCommentaryStyle accepts formal, funny or technical; empty means formal.
func ParseCommentaryStyle(raw string) (CommentaryStyle, error) {
	style := CommentaryStyle(strings.ToLower(strings.TrimSpace(raw)))
	if style == "" {
		return StyleFormal, nil
	}
	if _, ok := commentaryTones[style]; !ok {
		return "", fmt.Errorf("%w: style must be one of formal, funny, technical", ErrInvalidInput)
	}
	return style, nil
}

var commentaryPrompt = template.Must(template.New("commentary").Parse(`You are a sports commentator with expertise in football (soccer). Respond as
if you are delivering an engaging analysis for a TV audience. Here is the
information to include:

Instructions:
1. Game Overview:
    - Always mention the scoreline and the teams involved.
    - Describe the importance of the game (league match, knockout, rivalry, etc.).
    - Specify when and where the game took place.
    - Provide the final result.
2. Analysis of the Starting XI:
    - Evaluate the starting lineups for both teams.
    - Highlight key players and their roles.
    - Mention any surprising decisions or notable absences.
3. Contextual Insights:
    - Explain the broader implications of the match (rivalry, league standings, or storylines).
4. Engaging Delivery:
    - {{.Tone}}

The match details are provided as follows:
{{.MatchDetails}}
The team lineups are provided here:
{{.Lineups}}
Provide the expert commentary on the match as you are in a sports broadcast.
Start your analysis now and engage the audience with your insights.

Say: "Hello everyone, I've watched the match between {{.Home}} and {{.Away}}..."
`))

type commentaryPromptData struct {
	Tone         string
	MatchDetails string
	Lineups      string
	Home         string
	Away         string
}

// CommentaryService writes a specialist's commentary of a match from its details
// and starting lineups.
type CommentaryService struct {
	matches   *MatchService
	model     agent.Model
	maxTokens int
	cache     *cache.Store
	logger    *logging.Logger
}

func NewCommentaryService(matches *MatchService, model agent.Model, maxTokens int, store *cache.Store, logger *logging.Logger) *CommentaryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CommentaryService{
		matches:   matches,
		model:     model,
		maxTokens: maxTokens,
		cache:     store,
		logger:    logger,
	}
}

func (s *CommentaryService) Comment(ctx context.Context, ref MatchRef, style CommentaryStyle) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommentaryService.Comment")
	defer span.End()

	if err := ref.validate(); err != nil {
		return "", err
	}
	if style == "" {
		style = StyleFormal
	}
	if _, ok := commentaryTones[style]; !ok {
		return "", fmt.Errorf("%w: unknown commentary style %q", ErrInvalidInput, style)
	}
	if s.model == nil {
		return "", fmt.Errorf("%w: language model is not configured", ErrDependencyUnavailable)
	}

	key := cache.Key("commentary", ref.CompetitionID, ref.SeasonID, ref.MatchID, style)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (string, error) {
		prompt, err := s.buildPrompt(ctx, ref, style)
		if err != nil {
			return "", err
		}

		resp, err := s.model.Generate(ctx, agent.Request{
			Messages:  []agent.Message{{Role: agent.RoleUser, Content: prompt}},
			MaxTokens: s.maxTokens,
		}, nil)
		if err != nil {
			return "", fmt.Errorf("%w: generate commentary: %v", ErrDependencyUnavailable, err)
		}
		text := strings.TrimSpace(resp.Text)
		if text == "" {
			return "", fmt.Errorf("%w: could not generate match summary", ErrNotFound)
		}
		return text, nil
	})
}

func (s *CommentaryService) buildPrompt(ctx context.Context, ref MatchRef, style CommentaryStyle) (string, error) {
	var (
		details match.Match
		xi      map[string][]match.StartingPlayer
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		details, err = s.matches.GetMatch(ctx, ref)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		xi, err = s.matches.StartingXI(ctx, ref.MatchID)
		return err
	})
	if err := p.Wait(); err != nil {
		return "", err
	}

	detailsYAML, err := yaml.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("render match details: %w", err)
	}
	lineupsYAML, err := yaml.Marshal(xi)
	if err != nil {
		return "", fmt.Errorf("render lineups: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := commentaryPrompt.Execute(buf, commentaryPromptData{
		Tone:         commentaryTones[style],
		MatchDetails: string(detailsYAML),
		Lineups:      string(lineupsYAML),
		Home:         details.HomeTeam,
		Away:         details.AwayTeam,
	}); err != nil {
		return "", fmt.Errorf("render commentary prompt: %w", err)
	}
	return buf.String(), nil
}
