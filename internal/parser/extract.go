package parser

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Draft is an untyped field mapping as recovered from the model's answer,
// before field normalization. Values may be strings, numbers, or nil.
type Draft map[string]interface{}

// listKey is the array key the extraction prompt asks the model to use.
const listKey = "cheques"

// recognizedFields are the cheque field names a flat object must carry at
// least one of to count as a draft.
var recognizedFields = []string{
	"cuit_librador",
	"banco",
	"fecha_emision",
	"fecha_pago",
	"importe",
	"numero_cheque",
	"cbu_beneficiario",
}

// strategy attempts to recover drafts from the raw model text. It reports
// false when it found nothing, letting the next strategy try.
type strategy func(text string) ([]Draft, bool)

var strategies = []strategy{
	extractFencedJSON,
	extractBareJSON,
	extractKeyValues,
}

var (
	fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

	// key/value recovery patterns for degraded answers, per field
	kvPatterns = map[string]*regexp.Regexp{
		"cuit_librador": regexp.MustCompile(`(?i)["']?cuit_librador["']?\s*[:=]\s*["']?([^"',}\]\n]+)`),
		"banco":         regexp.MustCompile(`(?i)["']?banco["']?\s*[:=]\s*["']?([^"',}\]\n]+)`),
		"importe":       regexp.MustCompile(`(?i)["']?importe["']?\s*[:=]\s*["']?([0-9.,]+)`),
		"numero_cheque": regexp.MustCompile(`(?i)["']?numero_cheque["']?\s*[:=]\s*["']?([^"',}\]\n]+)`),
	}
)

// ExtractDrafts turns the model's raw answer into zero or more drafts.
// Strategies are tried in order and the first that yields anything wins.
// "nothing recognizable" is a valid outcome: the result is simply empty.
func ExtractDrafts(text string) []Draft {
	for _, s := range strategies {
		if drafts, ok := s(text); ok {
			return drafts
		}
	}
	return nil
}

// extractFencedJSON looks for a JSON payload inside a fenced code block,
// language-tagged or not.
func extractFencedJSON(text string) ([]Draft, bool) {
	for _, m := range fencedBlock.FindAllStringSubmatch(text, -1) {
		if drafts, ok := draftsFromJSON(strings.TrimSpace(m[1])); ok {
			return drafts, true
		}
	}
	return nil, false
}

// extractBareJSON takes the widest {...} (or [...]) span in the text and
// tries to decode it. Greedy-but-bounded: first opener to last closer.
func extractBareJSON(text string) ([]Draft, bool) {
	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(text, pair[0])
		end := strings.LastIndex(text, pair[1])
		if start < 0 || end <= start {
			continue
		}
		if drafts, ok := draftsFromJSON(text[start : end+1]); ok {
			return drafts, true
		}
	}
	return nil, false
}

// draftsFromJSON decodes a candidate JSON span into drafts:
// an object with an array-valued key is a list of instruments, a top-level
// array is the list directly, and a flat object with recognizable field
// names wraps into a one-element list.
func draftsFromJSON(raw string) ([]Draft, bool) {
	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, false
	}

	switch v := decoded.(type) {
	case []interface{}:
		return draftsFromList(v)
	case map[string]interface{}:
		if list, ok := v[listKey].([]interface{}); ok {
			// Designated array key present: it is the record list,
			// even when empty (the model saw no cheque).
			drafts, _ := draftsFromList(list)
			return drafts, true
		}
		for _, val := range v {
			if list, ok := val.([]interface{}); ok {
				if drafts, ok := draftsFromList(list); ok {
					return drafts, true
				}
			}
		}
		if hasRecognizedField(v) {
			return []Draft{Draft(v)}, true
		}
	}
	return nil, false
}

func draftsFromList(list []interface{}) ([]Draft, bool) {
	drafts := make([]Draft, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			drafts = append(drafts, Draft(m))
		}
	}
	if len(drafts) == 0 && len(list) > 0 {
		return nil, false
	}
	return drafts, true
}

func hasRecognizedField(m map[string]interface{}) bool {
	for _, f := range recognizedFields {
		if _, ok := m[f]; ok {
			return true
		}
	}
	return false
}

// extractKeyValues is the last-resort recovery: independent per-field regex
// matches over the raw text, producing at most one degraded draft.
func extractKeyValues(text string) ([]Draft, bool) {
	draft := Draft{}
	for field, re := range kvPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			draft[field] = strings.TrimSpace(m[1])
		}
	}
	if len(draft) == 0 {
		return nil, false
	}
	return []Draft{draft}, true
}
