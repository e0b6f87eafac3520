package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// accountQueries holds the statements of one account table. Every select list
// yields the same eleven columns so a single scan serves all kinds.
type accountQueries struct {
	insert     string
	selectCols string
	table      string
}

var accountSQL = map[domain.AccountKind]accountQueries{
	domain.AccountUser: {
		insert: `INSERT INTO users (external_id, name, email, password_hash)
                 VALUES ($1, $2, $3, $4)
                 RETURNING id, created_at, updated_at`,
		selectCols: `id, external_id::text, name, 0, '', '', email, password_hash, '', created_at, updated_at`,
		table:      "users",
	},
	domain.AccountCandidate: {
		insert: `INSERT INTO candidates (external_id, name, age, username, email, password_hash)
                 VALUES ($1, $2, $3, $4, $5, $6)
                 RETURNING id, created_at, updated_at`,
		selectCols: `id, external_id::text, name, age, COALESCE(username, ''), '', email,
                     COALESCE(password_hash, ''), 'CANDIDATE', created_at, updated_at`,
		table: "candidates",
	},
	domain.AccountRecruiter: {
		insert: `INSERT INTO recruiters (external_id, name, age, username, company, email, password_hash, role)
                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                 RETURNING id, created_at, updated_at`,
		selectCols: `id, external_id::text, name, age, username, company, email, password_hash, role, created_at, updated_at`,
		table:      "recruiters",
	},
}

type accountRepo struct {
	db      *pgxpool.Pool
	kind    domain.AccountKind
	queries accountQueries
}

// NewAccountRepository returns the store of one account kind.
func NewAccountRepository(db *pgxpool.Pool, kind domain.AccountKind) domain.AccountRepository {
	queries, ok := accountSQL[kind]
	if !ok {
		panic(fmt.Sprintf("postgres: unknown account kind %q", kind))
	}
	return &accountRepo{db: db, kind: kind, queries: queries}
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	var args []interface{}
	switch r.kind {
	case domain.AccountUser:
		args = []interface{}{account.ExternalID, account.Name, account.Email, account.PasswordHash}
	case domain.AccountCandidate:
		args = []interface{}{account.ExternalID, account.Name, account.Age, account.Username, account.Email, account.PasswordHash}
	case domain.AccountRecruiter:
		args = []interface{}{account.ExternalID, account.Name, account.Age, account.Username, account.Company,
			account.Email, account.PasswordHash, string(account.Role)}
	}

	err := r.db.QueryRow(ctx, r.queries.insert, args...).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if pgErr, ok := pgError(err, pgUniqueViolation); ok {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return apperror.Conflict("User already taken")
			}
			return apperror.Conflict("Email already taken")
		}
		if _, ok := pgError(err, pgNumericOutOfRange); ok {
			return apperror.BadRequest("Value out of range")
		}
		return apperror.Internal(err)
	}
	account.Kind = r.kind
	return nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, "email", email)
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if !r.kind.HasProfileFields() {
		return nil, nil
	}
	return r.getOne(ctx, "username", username)
}

// getOne looks up a single account; column is always one of the literals above.
func (r *accountRepo) getOne(ctx context.Context, column, value string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, r.queries.selectCols, r.queries.table, column)

	var (
		account domain.Account
		role    string
	)
	err := r.db.QueryRow(ctx, query, value).Scan(
		&account.ID, &account.ExternalID, &account.Name, &account.Age, &account.Username, &account.Company,
		&account.Email, &account.PasswordHash, &role, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	account.Kind = r.kind
	account.Role = domain.Role(role)
	return &account, nil
}
