package database

import (
	"io/fs"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/orgdirectory/organizations/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreEmbedded(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"migrations/000001_create_organizations.down.sql",
		"migrations/000001_create_organizations.up.sql",
	}, files)

	up, err := fs.ReadFile(migrationsFS, "migrations/000001_create_organizations.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS organizations")
}

func TestRunMigrationsRejectsUnknownDirection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrations(db, "sideways")

	assert.EqualError(t, err, `invalid migration direction "sideways"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenGormSharesConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := OpenGorm(db)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "organizations" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Acme"))

	organizations, err := models.NewOrganizationsRepository(gdb).GetAllOrganizations()

	require.NoError(t, err)
	require.Len(t, organizations, 1)
	assert.Equal(t, "Acme", organizations[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
