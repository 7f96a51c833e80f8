// Package schema declares the tables BrewWolf persists and applies them to a
// database.
//
// The record types are listed explicitly, in dependency order, and handed to
// gorm's auto-migration, which acts as the migration engine.
package schema

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BrewWolf/pkg/model"
)

type Column struct {
	Name       string
	References string
}

type Table struct {
	Name    string
	Columns []Column
}

// Models returns the persisted record types. Referenced tables come first.
func Models() []any {
	return []any{&model.User{}, &model.Beer{}, &model.Rating{}}
}

// Tables describes the layout produced for the record types owned by this
// service. The users table belongs to the auth subsystem and is left out.
func Tables(db *gorm.DB) ([]Table, error) {
	tables := make([]Table, 0, 2)

	for _, record := range []any{&model.Beer{}, &model.Rating{}} {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(record); err != nil {
			return nil, fmt.Errorf("parsing %T: %w", record, err)
		}

		table := Table{Name: stmt.Schema.Table}

		for _, dbName := range stmt.Schema.DBNames {
			column := Column{Name: dbName}

			for _, rel := range stmt.Schema.Relationships.BelongsTo {
				for _, ref := range rel.References {
					if ref.ForeignKey.DBName == dbName {
						column.References = rel.FieldSchema.Table + "." + ref.PrimaryKey.DBName
					}
				}
			}

			table.Columns = append(table.Columns, column)
		}

		tables = append(tables, table)
	}

	return tables, nil
}

// Apply creates or alters every table in one transaction.
func Apply(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	models := Models()

	logger.Info("applying schema", zap.Int("tables", len(models)))

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.AutoMigrate(models...)
	})
	if err != nil {
		logger.Error("schema migration failed", zap.Error(err))

		return err
	}

	logger.Info("schema applied")

	return nil
}
