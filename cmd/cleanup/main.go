// Command cleanup is the offline maintenance tool for stored data.
//
//	cleanup scan [-dry-run]   find (and delete) records carrying injection
//	                          payloads or junk names
//	cleanup fix-passwords     bcrypt any plaintext passwords left at rest
//
// scan uses the same deny-list as request-time validation, so anything that
// would be rejected today is exactly what gets flagged in old data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"jobboard-backend/config"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/hash"
	"jobboard-backend/pkg/validation"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "scan":
		fs := flag.NewFlagSet("scan", flag.ExitOnError)
		dryRun := fs.Bool("dry-run", false, "report suspicious records without deleting them")
		_ = fs.Parse(os.Args[2:])
		if err := scan(ctx, pool, *dryRun); err != nil {
			log.Fatalf("scan failed: %v", err)
		}
	case "fix-passwords":
		candidates := postgres.NewCandidateRepository(pool)
		employers := postgres.NewEmployerRepository(pool)
		if err := fixPasswords(ctx, candidates, employers); err != nil {
			log.Fatalf("fix-passwords failed: %v", err)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cleanup <scan [-dry-run] | fix-passwords>")
	os.Exit(2)
}

// suspicious applies the shared deny-list plus the junk-name check: a name
// whose trimmed length is under two characters is test noise, not a person.
func suspicious(name string, fields ...string) bool {
	if len(strings.TrimSpace(name)) < 2 {
		return true
	}
	return validation.MatchesInjectionPattern(append(fields, name)...)
}

type scanTarget struct {
	table   string
	columns []string
}

var scanTargets = []scanTarget{
	{"candidates", []string{"name", "email", "phone", "nationality", "location", "qualification", "experience", "role"}},
	{"employers", []string{"company_name", "email", "phone", "location", "industry"}},
	{"contacts", []string{"name", "email", "phone", "message"}},
}

func scan(ctx context.Context, pool *pgxpool.Pool, dryRun bool) error {
	totalFlagged := 0

	for _, target := range scanTargets {
		query := fmt.Sprintf("SELECT id, %s FROM %s ORDER BY id",
			strings.Join(target.columns, ", "), target.table)

		rows, err := pool.Query(ctx, query)
		if err != nil {
			return fmt.Errorf("query %s: %w", target.table, err)
		}

		var flagged []int64
		for rows.Next() {
			id := int64(0)
			values := make([]string, len(target.columns))
			dest := make([]interface{}, 0, len(values)+1)
			dest = append(dest, &id)
			for i := range values {
				dest = append(dest, &values[i])
			}
			if err := rows.Scan(dest...); err != nil {
				rows.Close()
				return fmt.Errorf("scan %s row: %w", target.table, err)
			}
			if suspicious(values[0], values[1:]...) {
				flagged = append(flagged, id)
				fmt.Printf("%s id=%d flagged: %q\n", target.table, id, values[0])
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		totalFlagged += len(flagged)

		if dryRun || len(flagged) == 0 {
			continue
		}
		tag, err := pool.Exec(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE id = ANY($1)", target.table), flagged)
		if err != nil {
			return fmt.Errorf("delete from %s: %w", target.table, err)
		}
		fmt.Printf("%s: deleted %d records\n", target.table, tag.RowsAffected())
	}

	if dryRun {
		fmt.Printf("dry run: %d suspicious records found, nothing deleted\n", totalFlagged)
	} else {
		fmt.Printf("done: %d suspicious records removed\n", totalFlagged)
	}
	return nil
}

// fixPasswords hashes any stored password that does not carry the bcrypt
// prefix. Already-hashed values are left untouched, so the command is safe to
// re-run.
func fixPasswords(ctx context.Context, candidates domain.CandidateRepository, employers domain.EmployerRepository) error {
	cands, err := candidates.List(ctx)
	if err != nil {
		return fmt.Errorf("list candidates: %w", err)
	}
	fixed := 0
	for _, c := range cands {
		if hash.IsHashed(c.Password) {
			continue
		}
		hashed, err := hash.Password(c.Password)
		if err != nil {
			return fmt.Errorf("hash password for candidate id=%d: %w", c.ID, err)
		}
		if err := candidates.UpdatePassword(ctx, c.ID, hashed); err != nil {
			return fmt.Errorf("update candidate id=%d: %w", c.ID, err)
		}
		fixed++
	}
	fmt.Printf("candidates: hashed %d plaintext passwords\n", fixed)

	emps, err := employers.List(ctx)
	if err != nil {
		return fmt.Errorf("list employers: %w", err)
	}
	fixed = 0
	for _, e := range emps {
		if hash.IsHashed(e.Password) {
			continue
		}
		hashed, err := hash.Password(e.Password)
		if err != nil {
			return fmt.Errorf("hash password for employer id=%d: %w", e.ID, err)
		}
		if err := employers.UpdatePassword(ctx, e.ID, hashed); err != nil {
			return fmt.Errorf("update employer id=%d: %w", e.ID, err)
		}
		fixed++
	}
	fmt.Printf("employers: hashed %d plaintext passwords\n", fixed)
	return nil
}
