package validation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// LoadEdits reads a proposed-edits JSON file. The content is checked against
// the edits schema before unmarshaling, so malformed input fails before any
// validation runs.
func LoadEdits(path string) ([]types.ProposedEdit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Message: fmt.Sprintf("file not found: %s", path), Cause: err}
		}
		return nil, &LoadError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}

	if err := schemas.Validate(schemas.EditsSchema, data); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("%s does not match the edits schema", path), Cause: err}
	}

	var edits []types.ProposedEdit
	if err := json.Unmarshal(data, &edits); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to parse %s", path), Cause: err}
	}
	return edits, nil
}
