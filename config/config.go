package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultWorkerPort         = 8081

	// DefaultGeofenceRadiusMeters is the radius of every reminder geofence.
	DefaultGeofenceRadiusMeters = 500.0
	// DefaultGeofenceExpiration bounds how long a registered geofence stays monitored.
	DefaultGeofenceExpiration = 24 * time.Hour

	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"

	GeofenceProviderMemory = "memory"
	GeofenceProviderValkey = "valkey"

	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Geofence configuration for the server-side geofence registry
	Geofence GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Valkey connection, required when geofence.provider is "valkey"
	Valkey *ValkeyConfig `json:"valkey" yaml:"valkey"`

	// Firebase configuration for push notifications and ID-token verification
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// PubSub configuration for geofence transition events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// NATS connection, required when pubsub.provider is "nats"
	NATS *NATSConfig `json:"nats" yaml:"nats"`

	// Worker configuration for the transition worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// QRCode configuration for reminder share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	// AllowedOrigins feeds CORS and the WebSocket origin check. Empty allows any origin.
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
	Timeouts       struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

// StorageConfig selects the reminder store backend
type StorageConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the database file, ":memory:" keeps everything in process
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	// AutoMigrate creates tables on start instead of relying on cmd/migrate
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// GeofenceConfig defines the geofence registry and request defaults
type GeofenceConfig struct {
	// Provider is "memory" or "valkey"
	Provider     string        `json:"provider" yaml:"provider"`
	RadiusMeters float64       `json:"radiusMeters" yaml:"radiusMeters"`
	Expiration   time.Duration `json:"expiration" yaml:"expiration"`
}

type ValkeyConfig struct {
	Addresses []string `json:"addresses" yaml:"addresses"`
	Password  string   `json:"password" yaml:"password"`
	KeyPrefix string   `json:"keyPrefix" yaml:"keyPrefix"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// AuthConfig defines how bearer tokens are verified
type AuthConfig struct {
	// Provider is "firebase" or "jwt"
	Provider string `json:"provider" yaml:"provider"`

	// JWTSecret signs local development tokens when provider is "jwt"
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// JWTIssuer is checked when set
	JWTIssuer string `json:"jwtIssuer" yaml:"jwtIssuer"`
}

// PubSubConfig defines how geofence transitions reach the worker
type PubSubConfig struct {
	// Provider type: "local", "google", "nats" or "noop"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type NATSConfig struct {
	URL        string `json:"url" yaml:"url"`
	Stream     string `json:"stream" yaml:"stream"`
	Subject    string `json:"subject" yaml:"subject"`
	Durable    string `json:"durable" yaml:"durable"`
	MaxDeliver int    `json:"maxDeliver" yaml:"maxDeliver"`
}

// WorkerConfig defines push endpoint verification for the geoworker
type WorkerConfig struct {
	// Port of the worker HTTP server, defaults to 8081
	Port int `json:"port" yaml:"port"`

	// VerifyPushToken enables OIDC verification of Pub/Sub push requests
	VerifyPushToken bool `json:"verifyPushToken" yaml:"verifyPushToken"`

	// PushAudience is the expected token audience, usually the push endpoint URL
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushServiceAccount is the expected email claim when set
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// GEOFENCE_RADIUSMETERS -> geofence.radiusMeters
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverPostgres
	}
	if c.Storage.Driver == StorageDriverSQLite && c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = "reminders.db"
	}
	if c.Geofence.Provider == "" {
		c.Geofence.Provider = GeofenceProviderMemory
	}
	if c.Geofence.RadiusMeters <= 0 {
		c.Geofence.RadiusMeters = DefaultGeofenceRadiusMeters
	}
	if c.Geofence.Expiration <= 0 {
		c.Geofence.Expiration = DefaultGeofenceExpiration
	}
	if c.Auth.Provider == "" {
		c.Auth.Provider = AuthProviderFirebase
	}
	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = defaultWorkerPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Postgres == nil {
			return errors.New("storage.driver is postgres but postgres section is missing")
		}
	case StorageDriverSQLite:
	default:
		return errors.Errorf("unsupported storage driver: %s", c.Storage.Driver)
	}

	switch c.Geofence.Provider {
	case GeofenceProviderMemory:
	case GeofenceProviderValkey:
		if c.Valkey == nil || len(c.Valkey.Addresses) == 0 {
			return errors.New("geofence.provider is valkey but valkey.addresses is empty")
		}
	default:
		return errors.Errorf("unsupported geofence provider: %s", c.Geofence.Provider)
	}

	switch c.Auth.Provider {
	case AuthProviderFirebase:
		if c.Firebase == nil {
			return errors.New("auth.provider is firebase but firebase section is missing")
		}
	case AuthProviderJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.provider is jwt but auth.jwtSecret is empty")
		}
	default:
		return errors.Errorf("unsupported auth provider: %s", c.Auth.Provider)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
