package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// FieldError is the single offending field reported to the client.
// Validation stops at the first failing rule; remaining rules and fields
// are not evaluated.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

// Messages overrides the default text per rule. Empty entries fall back
// to a generic message built from the field name.
type Messages struct {
	Required string
	Empty    string
	Type     string
	Min      string
	Max      string
	Email    string
	Pattern  string
	Enum     string
}

// Field is one declarative rule set. Rules run in a fixed order:
// presence, type, emptiness, min, max, email, pattern, enum.
type Field struct {
	Name     string
	Required bool
	MinLen   int
	MaxLen   int
	Email    bool
	Pattern  *regexp.Regexp
	Enum     []string
	Messages Messages
}

// Schema is an ordered set of field rules. Fields are validated in
// declaration order. MinFields, when positive, requires that many known
// fields to be present in the input (used by update schemas).
type Schema struct {
	Fields           []Field
	MinFields        int
	MinFieldsMessage string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks raw input against the schema. On success it returns the
// sanitized record: unknown fields stripped, absent optional fields
// (missing, null or empty string) omitted. On failure it returns the
// first offending field.
func (s *Schema) Validate(raw map[string]any) (map[string]any, *FieldError) {
	sanitized := make(map[string]any, len(s.Fields))
	present := 0

	for i := range s.Fields {
		f := &s.Fields[i]
		v, ok := raw[f.Name]
		if ok {
			present++
		}

		if !ok || v == nil {
			if f.Required {
				return nil, &FieldError{Field: f.Name, Message: f.msg(f.Messages.Required, "%s is required"), Value: v}
			}
			continue
		}

		str, isString := v.(string)
		if !isString {
			return nil, &FieldError{Field: f.Name, Message: f.msg(f.Messages.Type, "%s must be a string"), Value: v}
		}

		if str == "" {
			if f.Required {
				msg := f.Messages.Empty
				if msg == "" {
					msg = f.msg(f.Messages.Required, "%s cannot be empty")
				}
				return nil, &FieldError{Field: f.Name, Message: msg, Value: str}
			}
			// Optional fields treat "" the same as absent.
			continue
		}

		// Length bounds count characters, not bytes.
		length := utf8.RuneCountInString(str)
		if f.MinLen > 0 && length < f.MinLen {
			return nil, &FieldError{Field: f.Name, Message: f.msg(f.Messages.Min, "%s is too short"), Value: str}
		}
		if f.MaxLen > 0 && length > f.MaxLen {
			return nil, &FieldError{Field: f.Name, Message: f.msg(f.Messages.Max, "%s is too long"), Value: str}
		}
		if f.Email && !emailPattern.MatchString(str) {
			return nil, &FieldError{Field: f.Name, Message: f.msg(f.Messages.Email, "%s must be a valid email"), Value: str}
		}
		if f.Pattern != nil && !f.Pattern.MatchString(str) {
			return nil, &FieldError{Field: f.Name, Message: f.msg(f.Messages.Pattern, "%s has an invalid format"), Value: str}
		}
		if len(f.Enum) > 0 && !contains(f.Enum, str) {
			return nil, &FieldError{Field: f.Name, Message: f.msg(f.Messages.Enum, "%s has an invalid value"), Value: str}
		}

		sanitized[f.Name] = str
	}

	if s.MinFields > 0 && present < s.MinFields {
		return nil, &FieldError{Field: "", Message: s.MinFieldsMessage, Value: nil}
	}

	return sanitized, nil
}

func (f *Field) msg(custom, format string) string {
	if custom != "" {
		return custom
	}
	return fmt.Sprintf(format, f.Name)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
