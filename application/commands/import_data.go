package commands

import (
	"lawmap/domain/userdata"
	apperrors "lawmap/pkg/errors"
)

// ImportDataCommand replaces or combines the current document with a
// previously exported backup. Payload is the raw JSON of the backup file;
// parsing and validation happen inside the handler so a malformed file
// never touches the stored document.
type ImportDataCommand struct {
	Payload  []byte
	Strategy userdata.ImportStrategy
}

// Validate validates the command
func (cmd ImportDataCommand) Validate() error {
	if len(cmd.Payload) == 0 {
		return apperrors.NewValidationError("import payload is empty")
	}
	if !cmd.Strategy.Valid() {
		return apperrors.NewValidationError("strategy must be one of: replace, merge, append")
	}
	return nil
}
