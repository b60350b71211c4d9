//go:build integration
// +build integration

package tests

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/funkybooboo/alle-sub000/internal/adapter/db"
)

const defaultTestDSN = "root:root@tcp(127.0.0.1:3306)/alle_test?parseTime=true"

// IntegrationSuiteBase owns a throwaway MySQL database named by
// ALLE_TEST_MYSQL_DSN. The database name must end in _test because it is
// dropped when the suite finishes.
type IntegrationSuiteBase struct {
	suite.Suite

	server *sqlx.DB
	DB     *sqlx.DB
	DSN    string
	dbName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	dsn := os.Getenv("ALLE_TEST_MYSQL_DSN")
	if dsn == "" {
		dsn = defaultTestDSN
	}
	cfg, err := mysql.ParseDSN(dsn)
	s.Require().NoError(err)
	s.Require().True(strings.HasSuffix(cfg.DBName, "_test"), "test database %q must end in _test", cfg.DBName)

	serverCfg := cfg.Clone()
	serverCfg.DBName = ""
	server, err := sqlx.Connect("mysql", serverCfg.FormatDSN())
	if err != nil {
		s.T().Skipf("mysql unavailable: %v", err)
	}
	s.server = server

	_, err = server.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", cfg.DBName))
	s.Require().NoError(err)

	s.DSN = dsn
	s.dbName = cfg.DBName
	s.DB, err = sqlx.Connect("mysql", dsn)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.server == nil {
		return
	}
	_, err := s.server.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.dbName))
	s.Require().NoError(err)
	s.Require().NoError(s.server.Close())
}

var tables = []string{
	"tasks",
	"someday_lists",
	"trash_items",
	"task_tags",
	"task_links",
	"task_attachments",
	"user_settings",
	"tag_presets",
	"color_presets",
}

// ResetDatabase recreates the schema so each test starts from empty tables.
func (s *IntegrationSuiteBase) ResetDatabase() {
	for _, table := range tables {
		_, err := s.DB.Exec("DROP TABLE IF EXISTS " + table)
		s.Require().NoError(err)
	}
	s.Require().NoError(dbadapter.Migrate(context.Background(), s.DB))
}

func translationFolder(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "..", "pkg", "translator", "translation")
}
