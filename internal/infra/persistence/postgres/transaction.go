package postgres

import (
	"context"
	"fmt"

	"accounts/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create repository
// instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction handle is also a *gorm.DB
}

// UserRepo creates a user repository bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// WorkspaceRepo creates a workspace repository bound to the transaction.
func (f *gormRepositoryFactory) WorkspaceRepo() repository.WorkspaceRepository {
	return NewWorkspaceRepository(f.tx)
}

// OrganizationRepo creates an organization repository bound to the transaction.
func (f *gormRepositoryFactory) OrganizationRepo() repository.OrganizationRepository {
	return NewOrganizationRepository(f.tx)
}

// MembershipRepo creates a membership repository bound to the transaction.
func (f *gormRepositoryFactory) MembershipRepo() repository.MembershipRepository {
	return NewMembershipRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction,
// committing on success and rolling back on error or panic.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic so a failed unit of work never leaks an open
	// transaction, then re-panic for the caller.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the original business error; the rollback failure is secondary.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
