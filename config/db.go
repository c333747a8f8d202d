package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"langham-hms/models"
)

// DSN resolves the MySQL data source name. MYSQL_URL wins over DATABASE_URL,
// and either may be a mysql:// URL or a driver DSN; otherwise the DB_* parts
// are assembled.
func (d Database) DSN() (string, error) {
	raw := strings.TrimSpace(d.URL)
	if raw == "" {
		raw = strings.TrimSpace(d.FallbackURL)
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			cfg, err := mysqlConfigFromURL(raw)
			if err != nil {
				return "", err
			}
			return cfg.FormatDSN(), nil
		}
		cfg, err := mysql.ParseDSN(raw)
		if err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return cfg.FormatDSN(), nil
	}

	cfg := mysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Pass
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(d.Host, d.Port)
	cfg.DBName = d.Name
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN(), nil
}

func mysqlConfigFromURL(raw string) (*mysql.Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql url: %w", err)
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return nil, fmt.Errorf("mysql url missing database name")
	}
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	cfg := mysql.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{}

	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		v := values[0]
		switch key {
		case "parseTime":
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("invalid parseTime %q: %w", v, err)
			}
			cfg.ParseTime = b
		case "loc":
			loc, err := time.LoadLocation(v)
			if err != nil {
				return nil, fmt.Errorf("invalid loc %q: %w", v, err)
			}
			cfg.Loc = loc
		default:
			cfg.Params[key] = v
		}
	}
	if cfg.Params["charset"] == "" {
		cfg.Params["charset"] = "utf8mb4"
	}
	return cfg, nil
}

// ConnectDatabase opens the archive database and migrates bill_records.
func ConnectDatabase(d Database, log *logrus.Logger) (*gorm.DB, error) {
	dsn, err := d.DSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		log,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.AutoMigrate(&models.BillRecord{}); err != nil {
		return nil, fmt.Errorf("migrate bill_records: %w", err)
	}
	return db, nil
}
