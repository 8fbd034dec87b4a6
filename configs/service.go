package configs

type ServiceConfig struct {
	Name           string   `yaml:"name"`
	Port           string   `yaml:"port"`
	Debug          bool     `yaml:"debug"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	EmailDomain    string   `yaml:"email_domain"`
}
