// Package authorization holds the role guard used by administrative
// operations. Role state is resolved from the database on every call;
// nothing is cached between requests.
package authorization

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"maintdesk/internal/domain/user"
	"maintdesk/internal/shared/db"
	"maintdesk/internal/shared/errors"
)

// RoleChecker resolves a user's role code via a join against the role
// table and gates administrative operations on it.
type RoleChecker struct {
	db *gorm.DB
}

func NewRoleChecker(gdb *gorm.DB) *RoleChecker {
	return &RoleChecker{db: gdb}
}

// ResolveRole returns the role code of the given user, or a forbidden
// error when the user or its role cannot be resolved.
func (c *RoleChecker) ResolveRole(ctx context.Context, userID uint) (string, error) {
	tx := db.GetTxFromContext(ctx, c.db)

	var code string
	result := tx.Raw(
		`SELECT r.code FROM users u JOIN roles r ON r.id = u.role_id WHERE u.id = ?`,
		userID,
	).Scan(&code)
	if result.Error != nil {
		return "", fmt.Errorf("failed to resolve user role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", errors.NewForbiddenError("user role could not be resolved")
	}
	return code, nil
}

// EnsureAdmin permits the operation only when the user's role code is
// exactly ADMIN.
func (c *RoleChecker) EnsureAdmin(ctx context.Context, userID uint) error {
	code, err := c.ResolveRole(ctx, userID)
	if err != nil {
		return err
	}
	if code != user.RoleCodeAdmin {
		return errors.NewForbiddenError("admin access required")
	}
	return nil
}
