package customer

import (
	"context"
	"errors"
	"fmt"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	repo "github.com/amirasaad/ledger/pkg/repository/customer"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed Account Store using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Migrate creates or updates the tables backing the store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Customer{}, &Entry{})
}

func preloadEntries(db *gorm.DB) *gorm.DB {
	return db.Order("statement_entries.id")
}

// FindByCPF implements customer.Repository.
func (r *repository) FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error) {
	var m Customer
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Preload("Entries", preloadEntries).
			Where("cpf = ?", cpf).
			First(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return mapModelToCustomer(&m)
}

// Exists implements customer.Repository.
func (r *repository) Exists(ctx context.Context, cpf string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Customer{}).Where("cpf = ?", cpf).Count(&count).Error; err != nil {
		return false, infrarepo.MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

// Insert implements customer.Repository.
func (r *repository) Insert(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return fmt.Errorf("%w: nil customer", domain.ErrValidation)
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&Customer{}).Where("cpf = ?", c.CPF).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ErrAlreadyExists
			}
			m := Customer{
				ExternalID: c.ID,
				CPF:        c.CPF,
				Name:       c.Name,
				CreatedAt:  c.CreatedAt,
			}
			if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
				return err
			}
			if len(c.Statement) == 0 {
				return nil
			}
			entries := make([]Entry, 0, len(c.Statement))
			for _, e := range c.Statement {
				entries = append(entries, mapEntryToModel(m.ID, e))
			}
			return tx.Create(&entries).Error
		})
	})
}

// Remove implements customer.Repository. The row is matched on both CPF and ID.
func (r *repository) Remove(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return domain.ErrNotFound
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			m, err := r.lockRecord(tx, c)
			if err != nil {
				return err
			}
			if err := tx.Where("customer_id = ?", m.ID).Delete(&Entry{}).Error; err != nil {
				return err
			}
			return tx.Delete(&Customer{}, m.ID).Error
		})
	})
}

// UpdateName implements customer.Repository.
func (r *repository) UpdateName(ctx context.Context, c *customer.Customer, name string) error {
	if c == nil {
		return domain.ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&Customer{}).
		Where("cpf = ? AND external_id = ?", c.CPF, c.ID).
		Update("name", name)
	if res.Error != nil {
		return infrarepo.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendEntry implements customer.Repository. The guard and the insert share one
// transaction holding the customer row lock.
func (r *repository) AppendEntry(
	ctx context.Context,
	c *customer.Customer,
	entry customer.Entry,
	guard repo.Guard,
) error {
	if c == nil {
		return domain.ErrNotFound
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			m, err := r.lockRecord(tx, c)
			if err != nil {
				return err
			}
			if guard != nil {
				var current []Entry
				if err := tx.Where("customer_id = ?", m.ID).Order("id").Find(&current).Error; err != nil {
					return err
				}
				if err := guard(mapModelToEntries(current)); err != nil {
					return err
				}
			}
			row := mapEntryToModel(m.ID, entry)
			return tx.Create(&row).Error
		})
	})
}

// List implements customer.Repository.
func (r *repository) List(ctx context.Context) ([]*customer.Customer, error) {
	var models []Customer
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Preload("Entries", preloadEntries).
			Order("id").
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	out := make([]*customer.Customer, 0, len(models))
	for i := range models {
		c, err := mapModelToCustomer(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// lockRecord loads the row c identifies with a row lock where the dialect supports one.
func (r *repository) lockRecord(tx *gorm.DB, c *customer.Customer) (*Customer, error) {
	var m Customer
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("cpf = ? AND external_id = ?", c.CPF, c.ID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
