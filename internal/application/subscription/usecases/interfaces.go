package usecases

import (
	"context"

	"officetools/internal/domain/catalog"
)

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type PlanLookup interface {
	Get(name string) (catalog.Plan, bool)
}

type ToolLookup interface {
	Get(slug string) (catalog.Tool, bool)
}
