package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles all database repositories
type Repositories struct {
	Analyses *AnalysisRepository
}

// NewRepositories creates all repositories sharing one pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Analyses: NewAnalysisRepository(pool),
	}
}
