package agent

import (
	"strings"
	"text/template"

	"github.com/valyala/bytebufferpool"
)

// MatchContext identifies the match a conversation is about.
type MatchContext struct {
	MatchID       int64
	CompetitionID int64
	SeasonID      int64
	MatchName     string
}

type promptData struct {
	Match     MatchContext
	ToolNames string
}

var systemPrompt = template.Must(template.New("system").Parse(`You are a helpful AI assistant tasked with analyzing a football match.
Your goal is to provide insights and perform analyses based on the {{.Match.MatchName}} match's details.
The match is identified by its unique database ID: {{.Match.MatchID}}.
The competition ID: {{.Match.CompetitionID}}.
The season ID: {{.Match.SeasonID}}.

The task involves multiple aspects:
1. Analyze match details such as date, location, competition, and result.
2. Provide context about the match's importance (e.g., stage, rivalry, stakes).
3. Analyze and comment on the starting XI of both teams, including key players, tactical insights, or notable absences.
4. Perform any other relevant tasks requested by the user regarding the match.

You have access to the following tools: {{.ToolNames}}.
Every tool takes a single JSON object, for example:
{"match_id": {{.Match.MatchID}}, "competition_id": {{.Match.CompetitionID}}, "season_id": {{.Match.SeasonID}}}

Guidelines:
- First decide whether you need a tool at all or can answer directly.
- Use the tool results to decide the next step; call another tool if more data is needed.
- A tool result starting with "error:" means the call failed; fix the input or try another tool.
- Avoid generating code; get the data from the available tools.
- When the analysis is complete, reply with the final answer only.`))

// RenderSystemPrompt fills the system prompt for m.
func RenderSystemPrompt(m MatchContext, toolNames []string) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if m.MatchName == "" {
		m.MatchName = "selected"
	}
	if err := systemPrompt.Execute(buf, promptData{Match: m, ToolNames: strings.Join(toolNames, ", ")}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
