// internal/repository/postgres/routines_test.go
package postgres

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	plpgsqlRoutine = regexp.MustCompile(`(?s)CREATE OR REPLACE FUNCTION (\w+)\([^$]*?LANGUAGE plpgsql AS \$\$(.*?)END \$\$;`)
	assignment     = regexp.MustCompile(`\b([a-z_]+) = ([A-Za-z_.]+)`)
)

// In plpgsql a parameter spelled like a column in scope makes the statement
// fail with an ambiguous reference, so the bodies must qualify it.
func TestRoutines_PlpgsqlParametersAreQualified(t *testing.T) {
	src, err := os.ReadFile("../../../scripts/routines.sql")
	require.NoError(t, err)

	routines := plpgsqlRoutine.FindAllStringSubmatch(string(src), -1)
	require.NotEmpty(t, routines)

	checked := map[string]bool{}
	for _, r := range routines {
		name, body := r[1], r[2]
		checked[name] = true
		for _, a := range assignment.FindAllStringSubmatch(body, -1) {
			assert.False(t, strings.EqualFold(a[1], a[2]),
				"%s: %q must be qualified as %s.%s", name, a[0], name, a[2])
		}
	}
	for _, name := range []string{"sp_UpdateOwner", "sp_UpdateProperty", "sp_UpdatePropertyImage", "sp_UpdatePropertyTrace", "sp_UpdateUser"} {
		assert.True(t, checked[name], "%s not found", name)
	}
}
