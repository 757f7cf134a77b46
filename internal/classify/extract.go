package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedOutput marks model output from which no usable JSON result could
// be recovered. It is a hard failure: the controller falls back to the generic
// reply and nothing is persisted.
var ErrMalformedOutput = errors.New("malformed model output")

type wireResult struct {
	Categorie     string          `json:"categorie"`
	Resume        string          `json:"resume"`
	Details       json.RawMessage `json:"details"`
	ReponseVocale string          `json:"reponse_vocale"`
}

// Result is the structured outcome of classifying one recording.
type Result struct {
	Category   Category
	Summary    string
	Details    json.RawMessage
	VoiceReply string
}

// ParseModelOutput recovers a Result from the model's free text. The text is
// expected to contain one JSON object, possibly wrapped in markdown fences or
// padded with prose; the first balanced object is parsed. A missing object or
// missing required field is malformed output, while an unrecognized category
// value only degrades to AUTRE.
func ParseModelOutput(raw string) (Result, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return Result{}, err
	}

	var wire wireResult
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if strings.TrimSpace(wire.Categorie) == "" {
		return Result{}, fmt.Errorf("%w: missing categorie field", ErrMalformedOutput)
	}
	if strings.TrimSpace(wire.ReponseVocale) == "" {
		return Result{}, fmt.Errorf("%w: missing reponse_vocale field", ErrMalformedOutput)
	}

	details := wire.Details
	if len(details) == 0 {
		details = json.RawMessage("{}")
	}

	return Result{
		Category:   NormalizeCategory(wire.Categorie),
		Summary:    strings.TrimSpace(wire.Resume),
		Details:    details,
		VoiceReply: strings.TrimSpace(wire.ReponseVocale),
	}, nil
}

// extractJSONObject returns the first balanced JSON object in the text,
// skipping anything around it (```json fences, prose).
func extractJSONObject(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", fmt.Errorf("%w: no JSON object found", ErrMalformedOutput)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: unbalanced JSON object", ErrMalformedOutput)
}
