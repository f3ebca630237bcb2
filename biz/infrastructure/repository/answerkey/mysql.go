package answerkey

import (
	"context"
	"database/sql"
	"time"

	"essay-grader/biz/infrastructure/config"
	"essay-grader/biz/infrastructure/consts"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLMapper 标准答案目录：(年级, 答案类别) 到存储对象名。
// 未配置 DSN 时 mapper 为 nil，调用方回落到内置映射表。
type MySQLMapper struct {
	db *sql.DB
}

func NewMySQLMapper(cfg *config.Config) (*MySQLMapper, error) {
	if cfg.MySQL.DSN == "" {
		return nil, nil
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err = db.Ping(); err != nil {
		return nil, err
	}
	return &MySQLMapper{db: db}, nil
}

// Lookup 查询答案文件的对象名，查不到返回 ErrNotFound
func (m *MySQLMapper) Lookup(ctx context.Context, gradeLevel, category string) (string, error) {
	var objectKey string
	err := m.db.QueryRowContext(ctx,
		"SELECT object_key FROM answer_key WHERE grade_level = ? AND category = ?",
		gradeLevel, category,
	).Scan(&objectKey)
	switch {
	case err == sql.ErrNoRows:
		return "", consts.ErrNotFound
	case err != nil:
		return "", err
	}
	return objectKey, nil
}

func (m *MySQLMapper) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}
