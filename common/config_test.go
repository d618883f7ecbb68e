package common

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "eventsite")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(`
[main]
webServerAddr = "127.0.0.1:9090"
logfile = "/var/log/eventsite.log"
origin = "https://events.example.org/"
default_locale = "EN"
locales = ["hu"]

[events]
addr = "https://api.example.org/"
api_prefix = "/v2/"
timeout = 3

[redis]
ttl = 120
`), 0644))

	c := &config{}
	logfile := c.readFrom(path)
	c.checkAndSetDefault()

	assert.Equal(t, "/var/log/eventsite.log", logfile)
	assert.Equal(t, "127.0.0.1:9090", c.WebServerAddr)
	assert.Equal(t, "https://events.example.org", c.Origin)
	assert.Equal(t, "en", c.DefaultLocale)
	assert.Equal(t, []string{"hu", "en"}, c.Locales)
	assert.Equal(t, "https://api.example.org", c.EventsConfig.Addr)
	assert.Equal(t, "v2", c.EventsConfig.ApiPrefix)
	assert.Equal(t, 3*time.Second, c.EventsConfig.Timeout)
	assert.Equal(t, DefaultEventsService, c.EventsConfig.ServiceName)
	assert.Equal(t, 120*time.Second, c.RedisTTL())
	assert.Equal(t, DefaultMysqlPort, c.mysqlConfig.port)
}

func TestMissingConfigUsesDefaults(t *testing.T) {
	c := &config{}
	assert.Empty(t, c.readFrom("/nonexistent/config.toml"))
	c.checkAndSetDefault()

	assert.Equal(t, DefaultWebServerAddr, c.WebServerAddr)
	assert.Equal(t, DefaultLocale, c.DefaultLocale)
	assert.Equal(t, DefaultLocales, c.Locales)
	assert.Equal(t, DefaultShutdownTimeout*time.Second, c.ShutdownTimeout)
	assert.Equal(t, DefaultEventsTimeout*time.Second, c.EventsConfig.Timeout)
	assert.Equal(t, DefaultRedisTTL*time.Second, c.RedisTTL())
	assert.Equal(t, DefaultMysqlHost, c.mysqlConfig.host)
}

func TestMysqlDSN(t *testing.T) {
	m := mysqlConfig{host: "db", port: 3307, user: "u", password: "p", database: "eventsite", connParams: map[string]string{"charset": "utf8mb4"}}
	dsn := m.dsn()
	assert.Contains(t, dsn, "u:p@tcp(db:3307)/eventsite?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}
