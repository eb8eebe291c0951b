package errors

import "unicode"

// ValidateNodeID validates a roadmap node identifier.
//
// Node ids come straight out of roadmap source data, so the rules are
// intentionally conservative:
//   - No empty ids
//   - No control characters
//   - Maximum length of 256 characters
//
// Roadmap-format-specific validation belongs to the parsing collaborator.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNodeID, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNodeID, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNodeID, "node id contains invalid control characters")
		}
	}

	return nil
}
