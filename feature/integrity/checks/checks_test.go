package checks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"moodbank/core/build"
	"moodbank/core/database"
	"moodbank/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func objects(items ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(items))
	for _, it := range items {
		ch <- it
	}
	close(ch)
	return ch
}

func TestCheckProject(t *testing.T) {
	t.Run("MissingRoot", func(t *testing.T) {
		report, err := CheckProject(filepath.Join(t.TempDir(), "nope"), "dist")
		require.NoError(t, err)
		assert.False(t, report.Exists)
		assert.Equal(t, "error", report.Status)
		assert.Equal(t, []string{"index.html"}, report.Missing)
	})

	t.Run("RootIsFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		report, err := CheckProject(file, "dist")
		require.NoError(t, err)
		assert.False(t, report.Exists)
		assert.Equal(t, "error", report.Status)
	})

	t.Run("MissingIndex", func(t *testing.T) {
		root := t.TempDir()
		report, err := CheckProject(root, filepath.Join(root, "dist"))
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.Equal(t, []string{"index.html"}, report.Missing)
		assert.False(t, report.Built)
	})

	t.Run("Built", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0o644))
		b, err := build.NewBuilder(root, build.Config{OutDir: "dist", EmptyOutDir: true}, nil)
		require.NoError(t, err)
		_, err = b.Build(context.Background())
		require.NoError(t, err)

		report, err := CheckProject(root, b.OutDir())
		require.NoError(t, err)
		assert.Equal(t, "ok", report.Status)
		assert.Empty(t, report.Missing)
		assert.True(t, report.Built)
		assert.Equal(t, 1, report.Files)
	})
}

type probe struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, db.Table("probes").AutoMigrate(&probe{}))

	report, err := CheckSchema(db, "probes", []string{"id", "name"})
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Empty(t, report.MissingColumns)

	report, err = CheckSchema(db, "probes", []string{"id", "name", "extra"})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"extra"}, report.MissingColumns)

	report, err = CheckSchema(db, "absent", []string{"id"})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"id"}, report.MissingColumns)
}

func TestCheckSchema_MySQL(t *testing.T) {
	t.Run("NilDB", func(t *testing.T) {
		report, err := CheckSchema(nil, "mood_entries", []string{"id"})
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("Matched", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "varchar(36)", "NO", "PRI", nil, "").
			AddRow("mood", "varchar(64)", "NO", "", nil, "")
		mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `mood_entries`")).WillReturnRows(rows)

		report, err := CheckSchema(db, "mood_entries", []string{"id", "mood"})
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InspectFailure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `mood_entries`")).WillReturnError(errors.New("table missing"))

		report, err := CheckSchema(db, "mood_entries", []string{"id"})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "table missing")
	})
}

func TestCheckPublished(t *testing.T) {
	m := &build.Manifest{Files: []build.Entry{{Path: "index.html"}, {Path: "css/app.css"}}}

	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "site").Return(false, nil)

		_, err := CheckPublished(context.Background(), client, "site", "", m)
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("ReportsMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "site").Return(true, nil)
		client.On("ListObjects", mock.Anything, "site", minio.ListObjectsOptions{Prefix: "web/", Recursive: true}).
			Return(objects(minio.ObjectInfo{Key: "web/index.html"}, minio.ObjectInfo{Key: "web/" + build.ManifestName}))

		missing, err := CheckPublished(context.Background(), client, "site", "/web/", m)
		require.NoError(t, err)
		assert.Equal(t, []string{"css/app.css"}, missing)
		client.AssertExpectations(t)
	})

	t.Run("ListError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "site").Return(true, nil)
		client.On("ListObjects", mock.Anything, "site", mock.Anything).
			Return(objects(minio.ObjectInfo{Err: errors.New("denied")}))

		_, err := CheckPublished(context.Background(), client, "site", "", m)
		assert.ErrorContains(t, err, "denied")
	})
}
