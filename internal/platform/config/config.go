package config

import (
	"errors"
	"io/fs"
	"strings"

	"petrecord/internal/platform/logger"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const (
	DefaultPort   = "5000"
	DefaultDBPath = "db/petrecord.db"
	DefaultApp    = "petrecord"
)

// Config agrupa todo lo configurable del proceso. Se arma desde flags;
// cada flag también lee su variable de entorno.
type Config struct {
	Port   string
	DBPath string
	// DBDSN, si viene, usa Postgres en lugar de SQLite.
	DBDSN string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	// Seed inserta datos de ejemplo cuando la tabla pets está vacía.
	Seed bool

	CORSOrigins []string
}

// Addr devuelve la dirección de escucha. Acepta "5000" o ":5000"/"host:5000".
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// LoadDotEnv carga variables desde .env si existe. No pisa variables ya definidas.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Flags devuelve un set nuevo en cada llamada (cli no comparte flags entre comandos).
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   DefaultPort,
			Usage:   "HTTP listen port",
			Sources: cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:    "db-path",
			Value:   DefaultDBPath,
			Usage:   "SQLite database file",
			Sources: cli.EnvVars("PETRECORD_DB_PATH"),
		},
		&cli.StringFlag{
			Name:    "db-dsn",
			Usage:   "Postgres DSN; when set, SQLite is not used",
			Sources: cli.EnvVars("DB_DSN"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "debug|info|warn|error",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   string(logger.FormatText),
			Usage:   "text|json",
			Sources: cli.EnvVars("LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:    "app-name",
			Value:   DefaultApp,
			Usage:   "value of the app field in log lines",
			Sources: cli.EnvVars("APP_NAME"),
		},
		&cli.BoolFlag{
			Name:    "seed",
			Value:   true,
			Usage:   "insert sample pets and logs when the store is empty",
			Sources: cli.EnvVars("PETRECORD_SEED"),
		},
		&cli.StringSliceFlag{
			Name:    "cors-origins",
			Value:   []string{"*"},
			Usage:   "allowed CORS origins",
			Sources: cli.EnvVars("CORS_ALLOWED_ORIGINS"),
		},
	}
}

func FromCommand(cmd *cli.Command) Config {
	origins := make([]string, 0)
	for _, o := range cmd.StringSlice("cors-origins") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:        strings.TrimSpace(cmd.String("port")),
		DBPath:      strings.TrimSpace(cmd.String("db-path")),
		DBDSN:       strings.TrimSpace(cmd.String("db-dsn")),
		LogLevel:    logger.ParseLevel(cmd.String("log-level")),
		LogFormat:   logger.ParseFormat(cmd.String("log-format")),
		AppName:     strings.TrimSpace(cmd.String("app-name")),
		Seed:        cmd.Bool("seed"),
		CORSOrigins: origins,
	}
}

func (c Config) Logger() logger.Logger {
	return logger.New(logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		App:    c.AppName,
	})
}
