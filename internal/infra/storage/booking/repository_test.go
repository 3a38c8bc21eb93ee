package booking

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// migratedBookingColumns extracts the column names the initial migration
// defines for the bookings table.
func migratedBookingColumns(t *testing.T) map[string]struct{} {
	t.Helper()

	path := filepath.Join("..", "..", "..", "..", "migrations", "000001_init.up.sql")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS bookings \((.*?)\n\);`)
	match := re.FindStringSubmatch(string(data))
	require.NotNil(t, match, "bookings table definition not found in migration")

	columns := make(map[string]struct{})
	for _, line := range strings.Split(match[1], "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := fields[0]
		// Skip constraint continuation lines like CHECK (...)
		if name == strings.ToUpper(name) {
			continue
		}
		columns[name] = struct{}{}
	}
	return columns
}

func TestBookingColumnsMatchMigration(t *testing.T) {
	defined := migratedBookingColumns(t)

	for _, col := range bookingColumns {
		assert.Contains(t, defined, col, "repository references column %q which the migration does not define", col)
	}
}
