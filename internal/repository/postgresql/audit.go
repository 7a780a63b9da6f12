package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/audit"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.Repository {
	return &auditRepository{db: db}
}

// Record implements audit.Repository.
func (r *auditRepository) Record(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	var newData []byte
	if entry.NewData != nil {
		var err error
		newData, err = json.Marshal(entry.NewData)
		if err != nil {
			return fmt.Errorf("failed to marshal audit data: %w", err)
		}
	}

	query := `
		INSERT INTO audit_log (user_id, action, table_name, record_id, new_data)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := q.Exec(ctx, query, entry.UserID, entry.Action, entry.TableName, entry.RecordID, newData); err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return nil
}
