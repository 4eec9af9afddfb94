package config

import (
	"time"
)

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"300s"`
}

// Auth configures the placeholder login. PasswordHash, when set, takes
// precedence over Password and must be a bcrypt hash.
type Auth struct {
	User         string `envconfig:"LOGIN_USER" default:"admin"`
	Password     string `envconfig:"LOGIN_PASSWORD" default:"123"`
	PasswordHash string `envconfig:"LOGIN_PASSWORD_HASH"`
	Jwt          *Jwt   `envconfig:"JWT"`
}

type Store struct {
	Driver string `envconfig:"DRIVER" default:"memory"`
	URL    string `envconfig:"URL"`
}

type Redis struct {
	URL       string `envconfig:"URL"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"ledger:revoked:"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Ledger struct {
	TimeZone string `envconfig:"TIMEZONE" default:"Local"`
}

// Location resolves the configured time zone used to group entries by calendar date.
func (l *Ledger) Location() (*time.Location, error) {
	if l == nil || l.TimeZone == "" || l.TimeZone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(l.TimeZone)
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3031"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Auth      *Auth      `envconfig:"AUTH"`
	Store     *Store     `envconfig:"STORE"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Ledger    *Ledger    `envconfig:"LEDGER"`
}
