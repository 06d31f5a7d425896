package tools

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-ai/internal/usecase"
)

// ID is an integer identifier that models may send either as a JSON number or
// as a numeric string.
type ID int64

func (id *ID) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		if err := sonic.Unmarshal(raw, &text); err != nil {
			return err
		}
	}
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return fmt.Errorf("%s is not an integer", string(raw))
	}
	*id = ID(v)
	return nil
}

type matchArgs struct {
	MatchID ID `json:"match_id" validate:"gt=0"`
}

type matchRefArgs struct {
	CompetitionID ID `json:"competition_id" validate:"gt=0"`
	SeasonID      ID `json:"season_id" validate:"gt=0"`
	MatchID       ID `json:"match_id" validate:"gt=0"`
}

func (a matchRefArgs) ref() usecase.MatchRef {
	return usecase.MatchRef{
		CompetitionID: int64(a.CompetitionID),
		SeasonID:      int64(a.SeasonID),
		MatchID:       int64(a.MatchID),
	}
}

type windowArgs struct {
	MatchID ID     `json:"match_id" validate:"gt=0"`
	Time    string `json:"time" validate:"omitempty,oneof=whole_match first_half second_half overtime"`
}

type playerArgs struct {
	MatchID    ID     `json:"match_id" validate:"gt=0"`
	PlayerName string `json:"player_name" validate:"required"`
	Time       string `json:"time" validate:"omitempty,oneof=whole_match first_half second_half overtime"`
}

type commentaryArgs struct {
	matchRefArgs
	Style string `json:"style" validate:"omitempty,oneof=formal funny technical"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeArgs parses the single JSON object argument and validates it. Every
// failure wraps usecase.ErrInvalidInput.
func decodeArgs(input []byte, target any) error {
	input = bytes.TrimSpace(input)
	if len(input) == 0 || input[0] != '{' {
		return fmt.Errorf("%w: tool input must be a JSON object", usecase.ErrInvalidInput)
	}
	if err := sonic.Unmarshal(input, target); err != nil {
		return fmt.Errorf("%w: malformed tool input: %v", usecase.ErrInvalidInput, err)
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "gt":
			parts = append(parts, field+" must be a positive integer")
		case "required":
			parts = append(parts, field+" is required")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
