package migrate

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"strings"
)

var (
	sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

	// Postgres-only or sqlite-only constructs. The key-value table is migrated
	// on both dialects so these are rejected outside comments.
	nonPortableRe = regexp.MustCompile(`(?i)\b(JSONB|SERIAL|BIGSERIAL|TIMESTAMPTZ|AUTOINCREMENT|UUID_GENERATE_V4|GEN_RANDOM_UUID|CREATE\s+EXTENSION)\b`)
)

// ValidateDir validates the migrations in a directory on disk.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}
	return ValidateFS(os.DirFS(dir), ".")
}

// ValidateEmbedded validates the migrations compiled into the binary.
func ValidateEmbedded() error {
	return ValidateFS(Migrations, embeddedDir)
}

// ValidateFS checks every .sql file under dir: goose filename, unique
// version, Up and Down sections, and dialect portable statements.
func ValidateFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	versions := make(map[string]string, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}
		if prev, ok := versions[m[1]]; ok {
			return fmt.Errorf("duplicate migration version %s in %q and %q", m[1], prev, name)
		}
		versions[m[1]] = name

		b, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read file %q: %w", name, err)
		}
		if err := validateBody(name, string(b)); err != nil {
			return err
		}
	}
	return nil
}

func validateBody(name, body string) error {
	var up, down bool
	scanner := bufio.NewScanner(strings.NewReader(body))
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(text, "-- +goose Up"):
			up = true
		case strings.HasPrefix(text, "-- +goose Down"):
			if !up {
				return fmt.Errorf("migration %q has Down before Up", name)
			}
			down = true
		case strings.HasPrefix(text, "--"):
		default:
			if kw := nonPortableRe.FindString(text); kw != "" {
				return fmt.Errorf("migration %q line %d uses %s, which does not run on both sqlite and postgres", name, line, strings.ToUpper(kw))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %q: %w", name, err)
	}
	if !up {
		return fmt.Errorf("migration %q missing \"-- +goose Up\"", name)
	}
	if !down {
		return fmt.Errorf("migration %q missing \"-- +goose Down\"", name)
	}
	return nil
}
