package filegrid

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

type FilegridConfig struct {
	FilePath string `json:"-"`
	// the version of the configuration file. currently only 0 is
	// allowed.
	Version int `json:"version"`

	// the name of the site (i.e. what's displayed at the top of every
	// page).
	SiteName string `json:"siteName"`

	// the directory holding static assets (stylesheets, scripts and
	// the grid icon set). served under /static/.
	StaticAssetDirectory string `json:"staticAssetDirectory"`

	// http host name. used when composing absolute links (e.g. the
	// links put in notification mails).
	HttpHostName string `json:"hostName"`
	properHttpHostName string

	BindAddress string `json:"bindAddress"`
	BindPort int `json:"bindPort"`

	// secret used to sign download tokens for files of private
	// components. must not be empty when private components exist.
	DownloadTokenSecret string `json:"downloadTokenSecret"`
	// lifetime of a download token in minutes. 0 means the default
	// of 30 minutes.
	DownloadTokenExpireMinute int `json:"downloadTokenExpireMinute"`

	// per-ip request rate limit. 0 disables rate limiting.
	MaxRequestInSecond int `json:"maxRequestInSecond"`

	// when set to true, the owner of a component receives a mail
	// whenever a file is deleted through the web interface. requires
	// a working mailer config.
	NotifyOnFileDelete bool `json:"notifyOnFileDelete"`

	Database FilegridDatabaseConfig `json:"database"`
	Session FilegridSessionConfig `json:"session"`
	Mailer FilegridMailerConfig `json:"mailer"`
}

type FilegridDatabaseConfig struct {
	// database type. currently supports "sqlite" and "postgres".
	Type string `json:"type"`
	// path to the database file. valid only when type is sqlite.
	Path string `json:"path"`
	properPath string
	// url to the database. valid only when type is a db that is
	// "hosted" as a server (unlike sqlite which is just one file).
	URL string `json:"url"`
	UserName string `json:"userName"`
	DatabaseName string `json:"databaseName"`
	Password string `json:"password"`
	// table prefix - in case you need to share the database with
	// other things.
	TablePrefix string `json:"tablePrefix"`
}

type FilegridSessionConfig struct {
	// session store type. currently supports:
	// + "sqlite"
	// + redis-like dbs: "redis", "keydb", "valkey"
	// + "memcached"
	Type string `json:"type"`
	// session database path. valid only when type is sqlite.
	Path string `json:"path"`
	properPath string
	// used as table prefix when type is "sqlite" and key prefix
	// otherwise.
	TablePrefix string `json:"tablePrefix"`
	Host string `json:"host"`
	UserName string `json:"userName"`
	Password string `json:"password"`
	DatabaseNumber int `json:"databaseNumber"`
}

type FilegridMailerConfig struct {
	// mailer type. currently only "smtp" is supported. leave empty
	// to disable outgoing mail.
	Type string `json:"type"`
	SMTPServer string `json:"smtpServer"`
	SMTPPort int `json:"smtpPort"`
	SMTPAuth string `json:"smtpAuth"`
	User string `json:"user"`
	Password string `json:"password"`
}

func LoadConfigFile(p string) (*FilegridConfig, error) {
	f, err := os.ReadFile(p)
	if err != nil { return nil, errors.Wrapf(err, "failed to read config file %s", p) }
	var res FilegridConfig
	err = json.Unmarshal(f, &res)
	if err != nil { return nil, errors.Wrapf(err, "failed to parse config file %s", p) }
	if res.Version != 0 {
		return nil, errors.Errorf("unsupported config version %d in %s", res.Version, p)
	}
	res.FilePath = p
	res.recalculateProperPath()
	return &res, nil
}

func (cfg *FilegridConfig) Sync() error {
	s, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil { return errors.Wrap(err, "failed to serialize config") }
	err = os.WriteFile(cfg.FilePath, s, 0644)
	if err != nil { return errors.Wrapf(err, "failed to write config file %s", cfg.FilePath) }
	return nil
}

// relative paths in the config file are considered to be relative to
// the directory of the config file itself, not the working directory
// of the process.
func (cfg *FilegridConfig) recalculateProperPath() {
	base := path.Dir(cfg.FilePath)
	if len(cfg.Database.Path) > 0 && !path.IsAbs(cfg.Database.Path) {
		cfg.Database.properPath = path.Join(base, cfg.Database.Path)
	} else {
		cfg.Database.properPath = cfg.Database.Path
	}
	if len(cfg.Session.Path) > 0 && !path.IsAbs(cfg.Session.Path) {
		cfg.Session.properPath = path.Join(base, cfg.Session.Path)
	} else {
		cfg.Session.properPath = cfg.Session.Path
	}
	s := strings.TrimSuffix(cfg.HttpHostName, "/")
	if len(s) > 0 && !strings.Contains(s, "://") {
		s = "http://" + s
	}
	cfg.properHttpHostName = s
}

// the full host name with the scheme part and no trailing slash.
func (cfg *FilegridConfig) ProperHTTPHostName() string {
	if len(cfg.properHttpHostName) <= 0 { cfg.recalculateProperPath() }
	return cfg.properHttpHostName
}

func (cfg *FilegridConfig) ProperDatabasePath() string {
	if len(cfg.Database.properPath) <= 0 { cfg.recalculateProperPath() }
	return cfg.Database.properPath
}

func (cfg *FilegridConfig) ProperSessionPath() string {
	if len(cfg.Session.properPath) <= 0 { cfg.recalculateProperPath() }
	return cfg.Session.properPath
}

func (cfg *FilegridConfig) ProperBindAddress() string {
	return fmt.Sprintf("%s:%d", cfg.BindAddress, cfg.BindPort)
}

func (cfg *FilegridConfig) DownloadTokenLifetimeMinute() int {
	if cfg.DownloadTokenExpireMinute <= 0 { return 30 }
	return cfg.DownloadTokenExpireMinute
}
