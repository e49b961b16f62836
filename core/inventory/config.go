package inventory

// Config holds configuration for reaching the inventory service through the gateway.
type Config struct {
	// BaseURL is the gateway base URL. Only https is accepted.
	BaseURL string `mapstructure:"base_url" default:"https://gateway.local:8443"`
	// CertFile is the PEM client certificate presented to the gateway.
	CertFile string `mapstructure:"cert_file" default:"/etc/replenishment/certs/replenishment-client.crt"`
	// KeyFile is the PEM private key of the client certificate.
	KeyFile string `mapstructure:"key_file" default:"/etc/replenishment/certs/replenishment-client.key"`
	// CAFile is the PEM trust anchor used to verify the gateway. Empty uses the system pool.
	CAFile string `mapstructure:"ca_file" default:"/etc/replenishment/certs/demo-root.crt"`
	// ServerName overrides the name verified against the gateway certificate.
	ServerName string `mapstructure:"server_name" default:""`
	// Token is an optional internal token sent as X-Internal-Token.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds bounds a single snapshot request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
