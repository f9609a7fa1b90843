package connector

import (
	"context"
	"database/sql"
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"

	"github.com/seam-db/seam/dialect"
)

type mysqlProvider struct{}

func init() {
	Register("mysql", mysqlProvider{})
}

func (mysqlProvider) Dialect() dialect.Dialect {
	return dialect.NewMySQLDialect()
}

func (p mysqlProvider) Connect(ctx context.Context, cfg Config) (Connection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withPoolDefaults()

	mc := mysqldrv.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Database
	mc.ParseTime = true
	if len(cfg.Params) > 0 {
		mc.Params = make(map[string]string, len(cfg.Params))
		for k, v := range cfg.Params {
			mc.Params[k] = v
		}
	}

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("connector: open mysql: %w", err)
	}
	applyPool(db, cfg)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connector: ping mysql: %w", err)
	}
	return &sqlConnection{db: db, dialect: p.Dialect()}, nil
}
